package archive

import "fmt"

// IOError reports a file-system failure (missing file, permission denied,
// partial write). It is a distinct kind from codec.ErrMalformedInput: an
// unreadable file and a structurally invalid one are different problems.
type IOError struct {
	Op   string // Failing operation: open, create, write, sync, close
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}
