package codec

import (
	"bytes"
	"errors"
	"testing"
)

func TestEncode(t *testing.T) {
	testCases := []struct {
		name     string
		input    []byte
		expected []byte
	}{
		{
			name:     "empty input",
			input:    []byte{},
			expected: []byte{},
		},
		{
			name:     "single byte",
			input:    []byte{0x41},
			expected: []byte{1, 0x41},
		},
		{
			name:     "mixed runs",
			input:    []byte("aaabbbbbc"),
			expected: []byte{3, 'a', 5, 'b', 1, 'c'},
		},
		{
			name:     "no repeats doubles the input",
			input:    []byte("abc"),
			expected: []byte{1, 'a', 1, 'b', 1, 'c'},
		},
		{
			name:     "zero bytes are ordinary values",
			input:    []byte{0x00, 0x00, 0x00},
			expected: []byte{3, 0x00},
		},
		{
			name:     "run of exactly 255",
			input:    bytes.Repeat([]byte{0x41}, 255),
			expected: []byte{255, 0x41},
		},
		{
			name:     "run of 256 splits",
			input:    bytes.Repeat([]byte{0x41}, 256),
			expected: []byte{255, 0x41, 1, 0x41},
		},
		{
			name:     "run of 300 splits",
			input:    bytes.Repeat([]byte{0x41}, 300),
			expected: []byte{255, 0x41, 45, 0x41},
		},
		{
			name:     "run of 510 splits into two full pairs",
			input:    bytes.Repeat([]byte{0x7f}, 510),
			expected: []byte{255, 0x7f, 255, 0x7f},
		},
		{
			name:     "run of 600 splits into three pairs",
			input:    bytes.Repeat([]byte{0x42}, 600),
			expected: []byte{255, 0x42, 255, 0x42, 90, 0x42},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			encoded := Encode(tc.input)
			if !bytes.Equal(encoded, tc.expected) {
				t.Errorf("Encode mismatch: got %v, want %v", encoded, tc.expected)
			}
			if len(encoded)%2 != 0 {
				t.Errorf("Encode produced odd-length output: %d bytes", len(encoded))
			}
		})
	}
}

func TestDecode(t *testing.T) {
	testCases := []struct {
		name     string
		input    []byte
		expected []byte
	}{
		{
			name:     "empty input",
			input:    []byte{},
			expected: []byte{},
		},
		{
			name:     "single pair",
			input:    []byte{1, 0x41},
			expected: []byte{0x41},
		},
		{
			name:     "multiple pairs",
			input:    []byte{3, 'a', 5, 'b', 1, 'c'},
			expected: []byte("aaabbbbbc"),
		},
		{
			name:     "zero count contributes nothing",
			input:    []byte{0x00, 0x41},
			expected: []byte{},
		},
		{
			name:     "zero count between pairs",
			input:    []byte{2, 'x', 0, 'y', 1, 'z'},
			expected: []byte("xxz"),
		},
		{
			name:     "split long run reassembles",
			input:    []byte{255, 0x41, 45, 0x41},
			expected: bytes.Repeat([]byte{0x41}, 300),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			decoded, err := Decode(tc.input)
			if err != nil {
				t.Fatalf("Decode failed: %v", err)
			}
			if !bytes.Equal(decoded, tc.expected) {
				t.Errorf("Decode mismatch: got %v, want %v", decoded, tc.expected)
			}
		})
	}
}

func TestDecode_OddLength(t *testing.T) {
	testCases := []struct {
		name  string
		input []byte
	}{
		{
			name:  "single unpaired byte",
			input: []byte{0x03},
		},
		{
			name:  "trailing unpaired count",
			input: []byte{1, 0x41, 0x05},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode(tc.input)
			if err == nil {
				t.Fatal("Expected decode to fail for odd-length input, but it succeeded")
			}
			if !errors.Is(err, ErrMalformedInput) {
				t.Errorf("Expected ErrMalformedInput, got %v", err)
			}
		})
	}
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	testCases := []struct {
		name  string
		input []byte
	}{
		{
			name:  "empty",
			input: []byte{},
		},
		{
			name:  "ascii text",
			input: []byte("the quick brown fox"),
		},
		{
			name:  "binary data",
			input: []byte{0x00, 0x01, 0x02, 0xFF, 0xFF, 0xFE},
		},
		{
			name:  "long homogeneous run",
			input: bytes.Repeat([]byte{0xAA}, 100000),
		},
		{
			name:  "alternating bytes",
			input: bytes.Repeat([]byte{0x00, 0x01}, 1000),
		},
		{
			name:  "all byte values",
			input: allByteValues(),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			encoded := Encode(tc.input)
			decoded, err := Decode(encoded)
			if err != nil {
				t.Fatalf("Decode failed: %v", err)
			}
			if !bytes.Equal(decoded, tc.input) {
				t.Errorf("Round-trip mismatch: got %d bytes, want %d bytes", len(decoded), len(tc.input))
			}
		})
	}
}

func allByteValues() []byte {
	data := make([]byte, 256)
	for i := range data {
		data[i] = byte(i)
	}
	return data
}
