package archive

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rlepack/rlepack/pkg/codec"
)

func writeTemp(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0600); err != nil {
		t.Fatalf("Failed to write temp file: %v", err)
	}
	return path
}

func TestEncodeFile(t *testing.T) {
	testCases := []struct {
		name string
		data []byte
	}{
		{
			name: "text with runs",
			data: []byte("aaabbbbbc"),
		},
		{
			name: "empty file",
			data: []byte{},
		},
		{
			name: "long run",
			data: bytes.Repeat([]byte{0x41}, 300),
		},
		{
			name: "binary data larger than buffer",
			data: bytes.Repeat([]byte{0x00, 0x00, 0x01}, 100000),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			src := writeTemp(t, "input.bin", tc.data)

			outPath, err := EncodeFile(src, Options{})
			if err != nil {
				t.Fatalf("EncodeFile failed: %v", err)
			}
			if outPath != src+".encoded" {
				t.Errorf("Unexpected output path: %s", outPath)
			}

			got, err := os.ReadFile(outPath)
			if err != nil {
				t.Fatalf("Failed to read output: %v", err)
			}
			if !bytes.Equal(got, codec.Encode(tc.data)) {
				t.Errorf("Encoded file mismatch: got %d bytes, want %d bytes",
					len(got), len(codec.Encode(tc.data)))
			}
		})
	}
}

func TestDecodeFile(t *testing.T) {
	original := []byte("aaabbbbbcddddddddddd")
	src := writeTemp(t, "input.encoded", codec.Encode(original))

	outPath, err := DecodeFile(src, Options{})
	if err != nil {
		t.Fatalf("DecodeFile failed: %v", err)
	}
	if outPath != src+".decoded" {
		t.Errorf("Unexpected output path: %s", outPath)
	}

	got, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("Failed to read output: %v", err)
	}
	if !bytes.Equal(got, original) {
		t.Errorf("Decoded file mismatch: got %q, want %q", got, original)
	}
}

func TestFileRoundTrip(t *testing.T) {
	original := bytes.Repeat([]byte{0xAA, 0xBB, 0xBB, 0xBB, 0xCC}, 50000)
	src := writeTemp(t, "data.bin", original)

	encodedPath, err := EncodeFile(src, Options{})
	if err != nil {
		t.Fatalf("EncodeFile failed: %v", err)
	}

	decodedPath, err := DecodeFile(encodedPath, Options{})
	if err != nil {
		t.Fatalf("DecodeFile failed: %v", err)
	}

	got, err := os.ReadFile(decodedPath)
	if err != nil {
		t.Fatalf("Failed to read decoded file: %v", err)
	}
	if !bytes.Equal(got, original) {
		t.Errorf("Round-trip mismatch: got %d bytes, want %d bytes", len(got), len(original))
	}
}

func TestDecodeFile_Malformed(t *testing.T) {
	src := writeTemp(t, "bad.encoded", []byte{3, 'a', 0x05})

	_, err := DecodeFile(src, Options{})
	if err == nil {
		t.Fatal("Expected DecodeFile to fail for odd-length input, but it succeeded")
	}
	if !errors.Is(err, codec.ErrMalformedInput) {
		t.Errorf("Expected codec.ErrMalformedInput, got %v", err)
	}

	// The partial output must not be left behind
	if _, statErr := os.Stat(src + ".decoded"); !os.IsNotExist(statErr) {
		t.Error("Expected no output file after failed decode")
	}
}

func TestEncodeFile_MissingSource(t *testing.T) {
	_, err := EncodeFile(filepath.Join(t.TempDir(), "nope.bin"), Options{})
	if err == nil {
		t.Fatal("Expected EncodeFile to fail for missing source, but it succeeded")
	}

	var ioErr *IOError
	if !errors.As(err, &ioErr) {
		t.Fatalf("Expected *IOError, got %T: %v", err, err)
	}
	if ioErr.Op != "open" {
		t.Errorf("Expected op %q, got %q", "open", ioErr.Op)
	}
	if errors.Is(err, codec.ErrMalformedInput) {
		t.Error("IO failure must not be reported as malformed input")
	}
}

// brokenWriter fails every write, like a full disk
type brokenWriter struct {
	err error
}

func (b brokenWriter) Write(p []byte) (int, error) {
	return 0, b.err
}

// brokenReader fails after serving its prefix
type brokenReader struct {
	data []byte
	err  error
}

func (b *brokenReader) Read(p []byte) (int, error) {
	if len(b.data) == 0 {
		return 0, b.err
	}
	n := copy(p, b.data)
	b.data = b.data[n:]
	return n, nil
}

func TestEncode_MidStreamWriteFailureIsTyped(t *testing.T) {
	diskFull := errors.New("no space left on device")
	tw := &taggedWriter{w: brokenWriter{err: diskFull}, path: "data.bin.encoded"}

	err := encodeTo(tw, bytes.NewReader(bytes.Repeat([]byte{0xAA}, 1024)))
	if err == nil {
		t.Fatal("Expected encode to fail on a broken writer, but it succeeded")
	}

	var ioErr *IOError
	if !errors.As(err, &ioErr) {
		t.Fatalf("Expected *IOError, got %T: %v", err, err)
	}
	if ioErr.Op != "write" {
		t.Errorf("Expected op %q, got %q", "write", ioErr.Op)
	}
	if !errors.Is(err, diskFull) {
		t.Error("Expected the underlying write error to be reachable via errors.Is")
	}
	if errors.Is(err, codec.ErrMalformedInput) {
		t.Error("IO failure must not be reported as malformed input")
	}
}

func TestDecode_MidStreamReadFailureIsTyped(t *testing.T) {
	readErr := errors.New("input/output error")
	tr := &taggedReader{
		r:    &brokenReader{data: []byte{3, 'a', 5, 'b'}, err: readErr},
		path: "data.encoded",
	}

	err := decodeTo(&bytes.Buffer{}, tr)
	if err == nil {
		t.Fatal("Expected decode to fail on a broken reader, but it succeeded")
	}

	var ioErr *IOError
	if !errors.As(err, &ioErr) {
		t.Fatalf("Expected *IOError, got %T: %v", err, err)
	}
	if ioErr.Op != "read" {
		t.Errorf("Expected op %q, got %q", "read", ioErr.Op)
	}
	if errors.Is(err, codec.ErrMalformedInput) {
		t.Error("IO failure must not be reported as malformed input")
	}
}

func TestOptions_CustomSuffixes(t *testing.T) {
	src := writeTemp(t, "input.bin", []byte("zzz"))

	outPath, err := EncodeFile(src, Options{EncodedSuffix: ".rle"})
	if err != nil {
		t.Fatalf("EncodeFile failed: %v", err)
	}
	if outPath != src+".rle" {
		t.Errorf("Expected custom suffix, got %s", outPath)
	}
}
