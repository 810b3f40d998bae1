package codec

import (
	"encoding/hex"
	"fmt"
)

// BytesToHex renders data as a hex string, two lowercase digits per byte.
// It is the display form used by the text mode and never fails.
func BytesToHex(data []byte) string {
	return hex.EncodeToString(data)
}

// HexToBytes parses a hex string back into bytes. Input may use upper or
// lower case digits. An odd-length string or a non-hex character fails
// with ErrMalformedInput; a trailing unpaired digit is never silently
// dropped.
func HexToBytes(s string) ([]byte, error) {
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("odd-length hex string (%d chars): %w", len(s), ErrMalformedInput)
	}

	data, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, ErrMalformedInput)
	}

	return data, nil
}
