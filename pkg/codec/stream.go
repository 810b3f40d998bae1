package codec

import (
	"fmt"
	"io"
)

// StreamEncoder run-length encodes bytes incrementally, carrying run state
// across Write calls so a file can be encoded without buffering it twice.
// Close must be called to flush the final run.
type StreamEncoder struct {
	w       io.Writer
	value   byte
	runLen  int
	started bool
}

// NewStreamEncoder creates an encoder that writes pairs to w
func NewStreamEncoder(w io.Writer) *StreamEncoder {
	return &StreamEncoder{w: w}
}

// Write consumes raw bytes. It only emits pairs for runs that have ended;
// the trailing run stays pending until the next Write or Close.
func (e *StreamEncoder) Write(p []byte) (int, error) {
	for i, b := range p {
		if e.started && b == e.value {
			e.runLen++
			continue
		}
		if e.started {
			if err := e.emit(); err != nil {
				return i, err
			}
		}
		e.value = b
		e.runLen = 1
		e.started = true
	}
	return len(p), nil
}

// Close flushes the pending run. It does not close the underlying writer.
func (e *StreamEncoder) Close() error {
	if !e.started {
		return nil
	}
	e.started = false
	return e.emit()
}

// emit writes the pending run as one or more (count, value) pairs
func (e *StreamEncoder) emit() error {
	runLen := e.runLen
	for runLen > MaxRunLength {
		if _, err := e.w.Write([]byte{MaxRunLength, e.value}); err != nil {
			return err
		}
		runLen -= MaxRunLength
	}
	_, err := e.w.Write([]byte{byte(runLen), e.value})
	return err
}

// StreamDecoder expands run-length encoded bytes read from r.
// It implements io.Reader over the decoded byte stream.
type StreamDecoder struct {
	r       io.Reader
	value   byte
	pending int
}

// NewStreamDecoder creates a decoder that reads pairs from r
func NewStreamDecoder(r io.Reader) *StreamDecoder {
	return &StreamDecoder{r: r}
}

// Read fills p with decoded bytes. A truncated trailing pair in the source
// fails with ErrMalformedInput rather than being dropped.
func (d *StreamDecoder) Read(p []byte) (int, error) {
	n := 0
	for n < len(p) {
		if d.pending > 0 {
			for n < len(p) && d.pending > 0 {
				p[n] = d.value
				n++
				d.pending--
			}
			continue
		}

		var pair [2]byte
		if _, err := io.ReadFull(d.r, pair[:]); err != nil {
			if err == io.EOF {
				if n > 0 {
					return n, nil
				}
				return 0, io.EOF
			}
			if err == io.ErrUnexpectedEOF {
				return n, fmt.Errorf("odd-length run-code: %w", ErrMalformedInput)
			}
			return n, err
		}
		d.pending = int(pair[0])
		d.value = pair[1]
	}
	return n, nil
}
