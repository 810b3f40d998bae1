// Package codec provides byte-oriented run-length encoding for rlepack.
//
// The codec package implements the core RLE transforms: a pure encoder
// from raw bytes to run-coded bytes, its inverse decoder, and a hex
// adapter for the text mode. This is the foundation every other rlepack
// surface (CLI, archive, HTTP API) is built on.
//
// # Run-Code Format
//
// Encoded data is a flat sequence of two-byte pairs:
//
//	[count(1)][value(1)][count(1)][value(1)]...
//
// Fields:
//   - count: number of copies of value, 1-255. The encoder never emits a
//     zero count; the decoder accepts one and expands it to nothing.
//   - value: the repeated byte.
//
// A well-formed run-code is always even-length. Because count is a single
// byte, a run longer than 255 is split into repeated (255, value) pairs
// followed by a remainder pair. This split is a correctness requirement,
// not an optimization: without it a long run silently overflows the count
// field.
//
// The format carries no header, magic number, or length prefix. An encoded
// file is nothing but the raw pairs, which keeps it compatible with the
// canonical on-disk layout but means it cannot be self-identified.
//
// # Hex Adapter
//
// The text mode displays and accepts run-codes as hex strings, two
// lowercase digits per byte. BytesToHex is total; HexToBytes rejects
// odd-length strings and non-hex characters with ErrMalformedInput instead
// of dropping a trailing digit.
//
// # Usage
//
// Basic encoding and decoding:
//
//	encoded := codec.Encode(data)
//
//	decoded, err := codec.Decode(encoded)
//	if err != nil {
//	    return err // odd-length input
//	}
//
// Streaming forms are available for large inputs:
//
//	enc := codec.NewStreamEncoder(dst)
//	if _, err := io.Copy(enc, src); err != nil {
//	    return err
//	}
//	if err := enc.Close(); err != nil {
//	    return err
//	}
//
// # Error Handling
//
// Encode and BytesToHex are total and cannot fail. Decode and HexToBytes
// fail only with ErrMalformedInput, always detected locally at the point
// of parsing and reported as a typed error, never a panic or an
// out-of-bounds read. Failures are deterministic; retrying never helps.
//
// # Properties
//
//	Decode(Encode(b)) == b            for every byte slice b
//	HexToBytes(BytesToHex(b)) == b    for every byte slice b
//	len(Encode(b)) % 2 == 0           for every byte slice b
//
// Decode-of-decode is undefined: decoder output is not generally valid
// run-code input.
//
// # Thread Safety
//
// Encode, Decode, BytesToHex and HexToBytes are pure functions over their
// inputs and safe for concurrent use without synchronization. The
// streaming types carry state and are not safe for concurrent use of a
// single instance.
//
// Run-length encoding is a naive counting scheme, not a general-purpose
// compressor: input without repeats doubles in size. Callers wanting real
// compression should reach for a real compressor.
package codec
