package cli

import (
	"errors"
	"fmt"
)

// ExitError carries a child script's non-zero exit code up to main so the
// process can exit with the same code instead of a generic failure.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("script exited with code %d", e.Code)
}

// ExitCode extracts the process exit code an error asks for. Plain errors
// map to 1.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return 1
}
