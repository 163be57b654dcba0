package sitegen

import (
	"errors"
	"fmt"
)

// ErrUnsafePath is wrapped by an FSError when a table path is empty, absolute
// or climbs out of the output directory.
var ErrUnsafePath = errors.New("path is not local to the output directory")

// FSError is the single failure kind of a generator run: a directory could
// not be created or a file could not be written.
type FSError struct {
	Op   string // "mkdir", "write", "chmod" or "resolve"
	Path string
	Err  error
}

func (e *FSError) Error() string {
	return fmt.Sprintf("sitegen: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FSError) Unwrap() error {
	return e.Err
}
