package catalog

import (
	"errors"
	"fmt"
)

// ErrNoScripts is returned when a manifest parses cleanly but declares zero
// scripts. Kept distinct from ParseError so the user knows the file was
// valid but empty.
var ErrNoScripts = errors.New("no scripts found")

// ParseError reports a malformed manifest.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// NotFoundError is returned when a requested script name resolves to
// nothing, neither literally nor through the synonym table.
type NotFoundError struct {
	Name       string
	Suggestion string
}

func (e *NotFoundError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("script %q not found (did you mean %q?)", e.Name, e.Suggestion)
	}
	return fmt.Sprintf("script %q not found", e.Name)
}
