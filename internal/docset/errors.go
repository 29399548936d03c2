package docset

import (
	"errors"
	"fmt"
	"io/fs"
)

// IOError reports a filesystem failure while loading documents. It is fatal
// for a doctor run.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	// A PathError already names the operation and path.
	var pathErr *fs.PathError
	if errors.As(e.Err, &pathErr) {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }
