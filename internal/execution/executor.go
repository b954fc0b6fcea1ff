// Package execution runs a catalog entry as a child process attached to the
// current terminal.
package execution

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"os/signal"

	"github.com/charmbracelet/log"
)

// Request describes one script invocation: a complete shell command line,
// explicitly appended arguments, and environment overrides layered on top
// of the parent environment.
type Request struct {
	Dir     string
	Command string
	Args    []string
	Env     map[string]string
}

// SpawnError reports a command that could not be started at all, as opposed
// to one that ran and exited non-zero.
type SpawnError struct {
	Command string
	Err     error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("failed to start %q: %v", e.Command, e.Err)
}

func (e *SpawnError) Unwrap() error {
	return e.Err
}

// Executor spawns script child processes. One child at a time; the caller
// owns terminal state around the call.
type Executor struct{}

func New() *Executor {
	return &Executor{}
}

// Run executes the request attached to the current stdio and blocks until
// the child exits. The command line is handed to the shell as one opaque
// string; extra arguments surface as the script's positional parameters.
// A non-zero exit is not an error: it is returned as the exit code. An
// interrupt during the run is forwarded to the child, which keeps the
// decision about dying with the child rather than killing the session.
func (e *Executor) Run(ctx context.Context, req Request) (int, error) {
	shellArgs := []string{"-c", req.Command + ` "$@"`, "sh"}
	shellArgs = append(shellArgs, req.Args...)

	cmd := exec.CommandContext(ctx, "sh", shellArgs...)
	cmd.Dir = req.Dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = BuildEnv(os.Environ(), req.Env)

	log.Debug("running script", "command", req.Command, "args", req.Args, "dir", req.Dir)

	if err := cmd.Start(); err != nil {
		return -1, &SpawnError{Command: req.Command, Err: err}
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)
	done := make(chan struct{})
	go func() {
		for {
			select {
			case sig := <-sigCh:
				_ = cmd.Process.Signal(sig)
			case <-done:
				return
			}
		}
	}()
	defer func() {
		signal.Stop(sigCh)
		close(done)
	}()

	if err := cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), nil
		}
		return -1, fmt.Errorf("failed to run %q: %w", req.Command, err)
	}
	return 0, nil
}

// BuildEnv layers overrides onto a base environment in KEY=VALUE form.
func BuildEnv(base []string, overrides map[string]string) []string {
	if len(overrides) == 0 {
		return base
	}
	env := make([]string, 0, len(base)+len(overrides))
	env = append(env, base...)
	for key, value := range overrides {
		env = append(env, key+"="+value)
	}
	return env
}
