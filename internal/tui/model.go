// Package tui renders the full-screen interactive view over a session
// controller. All state transitions live in the controller; the model only
// translates bubbletea input into session events and draws the result.
package tui

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/psrun/psrun/internal/config"
	"github.com/psrun/psrun/internal/execution"
	"github.com/psrun/psrun/internal/session"
)

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Run    key.Binding
	Search key.Binding
	Quit   key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Run, k.Search, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Run, k.Search, k.Quit}}
}

var defaultKeyMap = keyMap{
	Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Run:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "run")),
	Search: key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
	Quit:   key.NewBinding(key.WithKeys("q", "esc"), key.WithHelp("q", "quit")),
}

// execFinishedMsg reports the outcome of a script child process.
type execFinishedMsg struct {
	code int
	err  error
}

// Options configure the full-screen view.
type Options struct {
	Theme     config.Theme
	ShowEmoji bool
	// Loop keeps the session alive after a successful script run instead
	// of exiting.
	Loop bool
}

// Model is the bubbletea model for the full-screen session view.
type Model struct {
	ctrl      *session.Controller
	styles    *Styles
	keys      keyMap
	help      help.Model
	showEmoji bool
	loop      bool
	width     int
	runErr    error
}

// NewModel wraps a controller for full-screen display.
func NewModel(ctrl *session.Controller, opts Options) Model {
	return Model{
		ctrl:      ctrl,
		styles:    NewStyles(opts.Theme),
		keys:      defaultKeyMap,
		help:      help.New(),
		showEmoji: opts.ShowEmoji,
		loop:      opts.Loop,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case execFinishedMsg:
		m.runErr = msg.err
		m.ctrl.FinishRun(msg.code)
		if msg.code == 0 && !m.loop {
			return m, tea.Quit
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		ev, ok := translateKey(msg)
		if !ok {
			return m, nil
		}
		switch m.ctrl.Handle(ev) {
		case session.ActionExit:
			return m, tea.Quit
		case session.ActionRun:
			return m, m.execPending()
		}
		return m, nil
	}
	return m, nil
}

// translateKey maps bubbletea keys onto session events.
func translateKey(msg tea.KeyMsg) (session.Event, bool) {
	switch msg.Type {
	case tea.KeyEnter:
		return session.Event{Key: session.KeyEnter}, true
	case tea.KeyEsc:
		return session.Event{Key: session.KeyEsc}, true
	case tea.KeyUp:
		return session.Event{Key: session.KeyUp}, true
	case tea.KeyDown:
		return session.Event{Key: session.KeyDown}, true
	case tea.KeyBackspace:
		return session.Event{Key: session.KeyBackspace}, true
	case tea.KeySpace:
		return session.RuneEvent(' '), true
	case tea.KeyRunes:
		if len(msg.Runes) == 1 {
			return session.RuneEvent(msg.Runes[0]), true
		}
	}
	return session.Event{}, false
}

// execPending releases the terminal to the pending script's child process.
// tea.ExecProcess restores the terminal around the child on every path,
// which carries the scoped-acquisition guarantee through the handoff.
func (m Model) execPending() tea.Cmd {
	entry, env := m.ctrl.Pending()
	project := m.ctrl.Catalog().Project

	cmd := exec.Command("sh", "-c", entry.Invoke)
	cmd.Dir = project.Root
	cmd.Env = execution.BuildEnv(os.Environ(), env)

	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		if err == nil {
			return execFinishedMsg{code: 0}
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return execFinishedMsg{code: exitErr.ExitCode()}
		}
		return execFinishedMsg{code: -1, err: err}
	})
}

func (m Model) View() string {
	switch m.ctrl.Mode() {
	case session.ModeRunning:
		// The child owns the terminal.
		return ""
	case session.ModeErrorSplash:
		return m.viewErrorSplash()
	case session.ModeExiting:
		return ""
	default:
		return m.viewList()
	}
}

func (m Model) viewList() string {
	var b strings.Builder

	project := m.ctrl.Catalog().Project
	b.WriteString(m.styles.Title.Render("psrun"))
	b.WriteString(" ")
	b.WriteString(m.styles.Project.Render(fmt.Sprintf("%s · %s", project.Name, project.Type)))
	b.WriteString("\n\n")

	visible := m.ctrl.Visible()
	if len(visible) == 0 {
		b.WriteString(m.styles.Desc.Render("no scripts match"))
		b.WriteString("\n")
	}
	for i, entry := range visible {
		cursor := "  "
		style := m.styles.Item
		if i == m.ctrl.Cursor() {
			cursor = m.styles.Selected.Render("› ")
			style = m.styles.Selected
		}

		shortcut := "   "
		if entry.Shortcut != 0 {
			shortcut = m.styles.Shortcut.Render(fmt.Sprintf("[%c]", entry.Shortcut))
		}

		label := entry.Name
		if m.showEmoji {
			if icon := CategoryIcon(entry.Category); icon != "" {
				label = icon + " " + label
			}
		}

		b.WriteString(fmt.Sprintf("%s%s %s %s\n",
			cursor, shortcut, style.Render(label), m.styles.Command.Render(entry.Command)))
		if entry.Description != "" {
			b.WriteString("        " + m.styles.Desc.Render(entry.Description) + "\n")
		}
	}

	if m.ctrl.Mode() == session.ModeSearch {
		b.WriteString("\n")
		b.WriteString(m.styles.Search.Render("/" + m.ctrl.Query()))
		b.WriteString(m.styles.Desc.Render("▌"))
		b.WriteString("\n")
	}

	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) viewErrorSplash() string {
	detail := fmt.Sprintf("The script exited with code %d", m.ctrl.LastExit())
	if m.runErr != nil {
		detail = fmt.Sprintf("The script could not be started: %v", m.runErr)
	}

	content := m.styles.Error.Render("Script Error") + "\n\n" +
		detail + "\n\n" +
		m.styles.Desc.Render("Press any key to continue")
	return m.styles.Splash.Render(content)
}
