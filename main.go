package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/psrun/psrun/internal/cli"
)

func main() {
	err := cli.Execute()
	if err == nil {
		return
	}

	// A child script's exit code passes through silently; the script
	// already wrote its own output.
	var exitErr *cli.ExitError
	if !errors.As(err, &exitErr) {
		_, _ = fmt.Fprintln(os.Stderr, "Error:", err)
	}
	os.Exit(cli.ExitCode(err))
}
