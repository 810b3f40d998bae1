package codec

import (
	"fmt"
)

// MaxRunLength is the largest run a single (count, value) pair can describe.
// The count field is one byte, so longer runs are split across pairs.
const MaxRunLength = 255

// Encode compresses data using byte-oriented run-length encoding.
// Output is a sequence of (count, value) byte pairs, one pair per run.
// A run longer than MaxRunLength is emitted as repeated (255, value)
// pairs followed by a remainder pair, so every count fits in one byte.
// Encode is total: any input is valid and the result is always even-length.
func Encode(data []byte) []byte {
	// Worst case (no repeats) doubles the input.
	encoded := make([]byte, 0, 2*len(data))

	i := 0
	for i < len(data) {
		value := data[i]
		runLen := 1
		for i+runLen < len(data) && data[i+runLen] == value {
			runLen++
		}
		i += runLen

		for runLen > MaxRunLength {
			encoded = append(encoded, MaxRunLength, value)
			runLen -= MaxRunLength
		}
		encoded = append(encoded, byte(runLen), value)
	}

	return encoded
}

// Decode expands run-length encoded data back to the original bytes.
// The input is read two bytes at a time as (count, value) pairs; each pair
// contributes count copies of value. A zero count is accepted and
// contributes nothing. Odd-length input is structurally invalid and fails
// with ErrMalformedInput.
func Decode(encoded []byte) ([]byte, error) {
	if len(encoded)%2 != 0 {
		return nil, fmt.Errorf("odd-length run-code (%d bytes): %w", len(encoded), ErrMalformedInput)
	}

	// Size the output in one pass over the counts before expanding.
	total := 0
	for i := 0; i < len(encoded); i += 2 {
		total += int(encoded[i])
	}

	decoded := make([]byte, 0, total)
	for i := 0; i < len(encoded); i += 2 {
		count := int(encoded[i])
		value := encoded[i+1]
		for j := 0; j < count; j++ {
			decoded = append(decoded, value)
		}
	}

	return decoded, nil
}
