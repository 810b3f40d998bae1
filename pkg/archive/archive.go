// Package archive implements the file mode: encoding a file on disk into a
// sibling run-coded file and back. The on-disk format is the raw run-code
// bytes with no header, so a decoded file is only meaningful when the
// caller knows it was produced by the encoder.
package archive

import (
	"bufio"
	"io"
	"os"

	"github.com/rlepack/rlepack/pkg/codec"
)

// Default output naming, matching the historical convention
const (
	DefaultEncodedSuffix = ".encoded"
	DefaultDecodedSuffix = ".decoded"
)

const defaultBufferSize = 64 * 1024

// Options configures output naming and buffering for file transforms
type Options struct {
	EncodedSuffix string // Suffix for encoded output ("" = ".encoded")
	DecodedSuffix string // Suffix for decoded output ("" = ".decoded")
	BufferSize    int    // Read/write buffer size (0 = 64 KiB)
}

func (o Options) encodedSuffix() string {
	if o.EncodedSuffix == "" {
		return DefaultEncodedSuffix
	}
	return o.EncodedSuffix
}

func (o Options) decodedSuffix() string {
	if o.DecodedSuffix == "" {
		return DefaultDecodedSuffix
	}
	return o.DecodedSuffix
}

func (o Options) bufferSize() int {
	if o.BufferSize <= 0 {
		return defaultBufferSize
	}
	return o.BufferSize
}

// EncodeFile run-length encodes the file at path and writes the result to
// path plus the encoded suffix. It returns the output path. File handles
// are released on every exit path and a partial output file is removed on
// failure.
func EncodeFile(path string, opts Options) (string, error) {
	outPath := path + opts.encodedSuffix()
	if err := transform(path, outPath, opts.bufferSize(), encodeTo); err != nil {
		return "", err
	}
	return outPath, nil
}

// DecodeFile decodes a run-coded file at path and writes the result to
// path plus the decoded suffix. A structurally invalid source (odd length)
// fails with codec.ErrMalformedInput and leaves no output file behind.
func DecodeFile(path string, opts Options) (string, error) {
	outPath := path + opts.decodedSuffix()
	if err := transform(path, outPath, opts.bufferSize(), decodeTo); err != nil {
		return "", err
	}
	return outPath, nil
}

// transform streams src through fn into dst
func transform(src, dst string, bufSize int, fn func(io.Writer, io.Reader) error) error {
	in, err := os.Open(src)
	if err != nil {
		return &IOError{Op: "open", Path: src, Err: err}
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return &IOError{Op: "create", Path: dst, Err: err}
	}

	if err := run(out, in, bufSize, fn, src, dst); err != nil {
		// The transform error wins over any close failure
		_ = out.Close()
		os.Remove(dst)
		return err
	}

	if err := out.Close(); err != nil {
		os.Remove(dst)
		return &IOError{Op: "close", Path: dst, Err: err}
	}

	return nil
}

func run(out *os.File, in *os.File, bufSize int, fn func(io.Writer, io.Reader) error, src, dst string) error {
	w := bufio.NewWriterSize(out, bufSize)
	r := bufio.NewReaderSize(in, bufSize)

	// Tag both sides so a failure mid-copy carries the same typed error as
	// one caught at flush. A buffered write only hits the disk when the
	// buffer spills, so an untagged stream would surface ENOSPC raw for
	// files larger than the buffer and typed for smaller ones.
	tr := &taggedReader{r: r, path: src}
	tw := &taggedWriter{w: w, path: dst}

	if err := fn(tw, tr); err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return &IOError{Op: "write", Path: dst, Err: err}
	}
	if err := out.Sync(); err != nil {
		return &IOError{Op: "sync", Path: dst, Err: err}
	}
	return nil
}

func encodeTo(w io.Writer, r io.Reader) error {
	enc := codec.NewStreamEncoder(w)
	if _, err := io.Copy(enc, r); err != nil {
		return err
	}
	return enc.Close()
}

func decodeTo(w io.Writer, r io.Reader) error {
	_, err := io.Copy(w, codec.NewStreamDecoder(r))
	return err
}

// taggedReader wraps source read failures in *IOError at the point they
// happen. EOF passes through untouched so stream termination still works.
type taggedReader struct {
	r    io.Reader
	path string
}

func (t *taggedReader) Read(p []byte) (int, error) {
	n, err := t.r.Read(p)
	if err != nil && err != io.EOF {
		return n, &IOError{Op: "read", Path: t.path, Err: err}
	}
	return n, err
}

// taggedWriter wraps destination write failures in *IOError
type taggedWriter struct {
	w    io.Writer
	path string
}

func (t *taggedWriter) Write(p []byte) (int, error) {
	n, err := t.w.Write(p)
	if err != nil {
		return n, &IOError{Op: "write", Path: t.path, Err: err}
	}
	return n, nil
}
