package codec_test

import (
	"fmt"

	"github.com/rlepack/rlepack/pkg/codec"
)

// ExampleEncode demonstrates basic run-length encoding
func ExampleEncode() {
	encoded := codec.Encode([]byte("aaabbbbbc"))

	fmt.Printf("%v\n", encoded)

	// Output:
	// [3 97 5 98 1 99]
}

// ExampleDecode demonstrates decoding and its only failure mode
func ExampleDecode() {
	decoded, err := codec.Decode([]byte{3, 'a', 5, 'b', 1, 'c'})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%s\n", decoded)

	// Odd-length input is malformed
	_, err = codec.Decode([]byte{0x03})
	fmt.Println(err)

	// Output:
	// aaabbbbbc
	// odd-length run-code (1 bytes): malformed input
}

// ExampleEncode_longRun demonstrates the count-overflow split
func ExampleEncode_longRun() {
	data := make([]byte, 300)
	for i := range data {
		data[i] = 0x41
	}

	encoded := codec.Encode(data)
	fmt.Printf("%v\n", encoded)

	// Output:
	// [255 65 45 65]
}

// ExampleBytesToHex demonstrates the text mode representation
func ExampleBytesToHex() {
	encoded := codec.Encode([]byte("aaabbbbbc"))
	fmt.Println(codec.BytesToHex(encoded))

	// Output:
	// 036105620163
}

// ExampleHexToBytes demonstrates parsing the text mode back to bytes
func ExampleHexToBytes() {
	encoded, err := codec.HexToBytes("036105620163")
	if err != nil {
		fmt.Println(err)
		return
	}

	decoded, err := codec.Decode(encoded)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%s\n", decoded)

	// Output:
	// aaabbbbbc
}
