package detect

import (
	"errors"
	"fmt"
)

// ErrNoProjectFound is returned when no ancestor up to the home boundary
// matches any detection rule.
var ErrNoProjectFound = errors.New("no project found")

// NotFoundError wraps ErrNoProjectFound with the searched range.
type NotFoundError struct {
	StartDir string
	Boundary string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no project found between %s and %s", e.StartDir, e.Boundary)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNoProjectFound
}

// IOError reports a directory that could not be inspected during detection.
// It is surfaced rather than skipped: an unreadable directory could hide a
// real project.
type IOError struct {
	Dir string
	Err error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("failed to inspect %s: %v", e.Dir, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}
