// Package termguard provides scoped raw-mode acquisition with guaranteed
// restoration. Restoration must hold on every exit path, including a
// termination signal arriving while a child process owns the terminal, so
// the guard registers a signal hook for the lifetime of the acquisition.
package termguard

import (
	"os"
	"os/signal"
	"sync"
	"syscall"

	"golang.org/x/term"
)

// Guard holds the terminal's saved state between Acquire and Release.
// Release is idempotent: the deferred call, the signal path, and an explicit
// call can all race without double-restoring.
type Guard struct {
	fd    int
	state *term.State
	sigCh chan os.Signal
	once  sync.Once
}

// Acquire puts stdin into raw mode and arms signal-driven restoration. On
// SIGINT/SIGTERM the terminal is restored and the signal's conventional
// exit code is used; the process never leaves a raw terminal behind.
func Acquire() (*Guard, error) {
	fd := int(os.Stdin.Fd())
	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, err
	}

	g := &Guard{fd: fd, state: state, sigCh: make(chan os.Signal, 1)}
	signal.Notify(g.sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig, ok := <-g.sigCh
		if !ok {
			return
		}
		g.Release()
		os.Exit(128 + int(sig.(syscall.Signal)))
	}()
	return g, nil
}

// Release restores the saved terminal state and disarms the signal hook.
func (g *Guard) Release() {
	g.once.Do(func() {
		_ = term.Restore(g.fd, g.state)
		signal.Stop(g.sigCh)
		close(g.sigCh)
	})
}

// IsTerminal reports whether stdin is attached to a terminal; interactive
// modes refuse to start without one.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}
