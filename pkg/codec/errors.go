package codec

// Errors
var (
	// ErrMalformedInput reports structurally invalid encoded or hex input:
	// an odd-length run-code buffer, an odd-length hex string, or an
	// invalid hex digit. It is the only failure the codec can produce.
	ErrMalformedInput = &CodecError{"malformed input"}
)

// CodecError represents a codec domain error
type CodecError struct {
	Message string
}

func (e *CodecError) Error() string {
	return e.Message
}
