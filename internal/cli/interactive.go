package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/psrun/psrun/internal/config"
	"github.com/psrun/psrun/internal/execution"
	"github.com/psrun/psrun/internal/models"
	"github.com/psrun/psrun/internal/session"
	"github.com/psrun/psrun/internal/termguard"
	"github.com/psrun/psrun/internal/tui"
)

// runCliList drives the line-oriented interactive listing. The terminal is
// held in raw mode for single-keypress selection and released for the
// lifetime of each child process; the guard restores it on every exit path.
func (c *RunCommand) runCliList(ctx context.Context, cat *models.Catalog, theme config.Theme, showEmoji bool) error {
	ctrl := session.New(cat, session.ModeCliList)
	view := &listView{ctrl: ctrl, styles: tui.NewStyles(theme), showEmoji: showEmoji}
	reader := bufio.NewReader(os.Stdin)

	guard, err := termguard.Acquire()
	if err != nil {
		return fmt.Errorf("failed to enter raw mode: %w", err)
	}
	defer func() { guard.Release() }()

	for {
		view.render(os.Stdout)

		ev, ok := readEvent(reader)
		if !ok {
			return nil
		}

		switch ctrl.Handle(ev) {
		case session.ActionExit:
			return nil
		case session.ActionRun:
			entry, env := ctrl.Pending()

			guard.Release()
			code, err := execution.New().Run(ctx, execution.Request{
				Dir:     cat.Project.Root,
				Command: entry.Invoke,
				Env:     env,
			})
			if err != nil {
				var spawnErr *execution.SpawnError
				if !errors.As(err, &spawnErr) {
					return err
				}
				_, _ = fmt.Fprintf(os.Stderr, "%v\n", err)
				ctrl.FinishRun(-1)
			} else {
				ctrl.FinishRun(code)
				if code == 0 && !c.loop {
					return nil
				}
			}

			guard, err = termguard.Acquire()
			if err != nil {
				return fmt.Errorf("failed to re-enter raw mode: %w", err)
			}
		}

		// The 't' key hands the session over to the full-screen interface.
		if ctrl.Mode() == session.ModeTui {
			guard.Release()
			return c.runTui(ctrl, theme, showEmoji)
		}
	}
}

// readEvent decodes one keypress into a session event. Arrow keys arrive as
// CSI sequences; a lone escape byte with nothing buffered behind it is the
// escape key itself. Returns ok=false on EOF or ctrl+c.
func readEvent(r *bufio.Reader) (session.Event, bool) {
	ch, _, err := r.ReadRune()
	if err != nil {
		return session.Event{}, false
	}

	switch ch {
	case 0x1b:
		if r.Buffered() == 0 {
			return session.Event{Key: session.KeyEsc}, true
		}
		next, _, _ := r.ReadRune()
		if next != '[' {
			return session.Event{Key: session.KeyEsc}, true
		}
		final, _, _ := r.ReadRune()
		switch final {
		case 'A':
			return session.Event{Key: session.KeyUp}, true
		case 'B':
			return session.Event{Key: session.KeyDown}, true
		}
		return session.Event{Key: session.KeyEsc}, true
	case '\r', '\n':
		return session.Event{Key: session.KeyEnter}, true
	case 0x7f, 0x08:
		return session.Event{Key: session.KeyBackspace}, true
	case 0x03:
		return session.Event{}, false
	}

	return session.RuneEvent(ch), true
}

// listView renders the line-oriented views. Raw mode needs explicit
// carriage returns, so lines are collected and joined with CRLF.
type listView struct {
	ctrl      *session.Controller
	styles    *tui.Styles
	showEmoji bool
}

func (v *listView) render(w io.Writer) {
	var lines []string
	switch v.ctrl.Mode() {
	case session.ModeErrorSplash:
		lines = v.splashLines()
	default:
		lines = v.listLines()
	}

	// Clear and repaint the whole frame.
	_, _ = fmt.Fprint(w, "\x1b[2J\x1b[H")
	_, _ = fmt.Fprint(w, strings.Join(lines, "\r\n"))
}

func (v *listView) listLines() []string {
	project := v.ctrl.Catalog().Project

	lines := []string{
		v.styles.Title.Render("psrun") + " " +
			v.styles.Project.Render(fmt.Sprintf("%s · %s · %s", project.Name, project.Type, project.Root)),
		"Available scripts (press key to select):",
	}

	visible := v.ctrl.Visible()
	var unbound []models.ScriptEntry
	for i, entry := range visible {
		if entry.Shortcut == 0 {
			unbound = append(unbound, entry)
			continue
		}
		lines = append(lines, v.entryLine(entry, i == v.ctrl.Cursor()))
	}

	if len(unbound) > 0 {
		lines = append(lines, "---")
		lines = append(lines, "Additional scripts (select with enter or search):")
		for _, entry := range unbound {
			lines = append(lines, "    "+v.styles.Item.Render(entry.Name)+" "+
				v.styles.Command.Render("("+entry.Command+")"))
		}
	}

	lines = append(lines, "---")
	lines = append(lines, v.styles.Shortcut.Render("[t]")+" Switch to TUI mode")

	if v.ctrl.Mode() == session.ModeSearch {
		lines = append(lines, "", v.styles.Search.Render("search> "+v.ctrl.Query()))
	} else {
		lines = append(lines, "",
			v.styles.Help.Render("Press a key to select, '/' to search, or 'q' to quit> "))
	}
	return lines
}

func (v *listView) entryLine(entry models.ScriptEntry, selected bool) string {
	label := entry.Name
	if v.showEmoji {
		if icon := tui.CategoryIcon(entry.Category); icon != "" {
			label = icon + " " + label
		}
	}

	style := v.styles.Item
	prefix := "  "
	if selected {
		style = v.styles.Selected
		prefix = v.styles.Selected.Render("› ")
	}

	return prefix + v.styles.Shortcut.Render(fmt.Sprintf("[%c]", entry.Shortcut)) + " " +
		style.Render(label) + " " + v.styles.Command.Render("("+entry.Command+")")
}

func (v *listView) splashLines() []string {
	return []string{
		v.styles.Error.Render("Script Error"),
		"",
		fmt.Sprintf("The script exited with code %d", v.ctrl.LastExit()),
		"",
		v.styles.Help.Render("Press any key to continue"),
	}
}
