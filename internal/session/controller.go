// Package session drives the interactive state machine over a finished
// catalog: listing, searching, navigating, invoking scripts, and reporting
// their outcome. The controller owns all mutable session state; everything
// upstream of it is immutable once built.
package session

import (
	"github.com/psrun/psrun/internal/catalog"
	"github.com/psrun/psrun/internal/models"
)

// Controller is the interactive session state machine. It is single
// threaded: transitions complete synchronously against the in-memory
// catalog, and the controller blocks only in Running, while a child process
// owns the terminal.
type Controller struct {
	catalog *models.Catalog

	mode Mode
	// returnTo is the interactive mode to re-enter when Search, Running,
	// or ErrorSplash hands control back.
	returnTo Mode

	cursor   int
	query    string
	lastExit int

	pending    models.ScriptEntry
	pendingEnv map[string]string
}

// New creates a controller in the initial mode, which must be ModeCliList
// or ModeTui.
func New(c *models.Catalog, initial Mode) *Controller {
	if initial != ModeTui {
		initial = ModeCliList
	}
	return &Controller{
		catalog:  c,
		mode:     initial,
		returnTo: initial,
	}
}

func (s *Controller) Mode() Mode {
	return s.mode
}

func (s *Controller) Catalog() *models.Catalog {
	return s.catalog
}

func (s *Controller) Query() string {
	return s.query
}

func (s *Controller) Cursor() int {
	return s.cursor
}

func (s *Controller) LastExit() int {
	return s.lastExit
}

// Visible returns the catalog view narrowed by the active search query, in
// catalog order. An empty query yields the full, original-order view.
func (s *Controller) Visible() []models.ScriptEntry {
	if s.query == "" {
		return s.catalog.Entries()
	}
	var visible []models.ScriptEntry
	for _, e := range s.catalog.Entries() {
		if e.MatchesSearch(s.query) {
			visible = append(visible, e)
		}
	}
	return visible
}

// Selected returns the entry under the cursor in the current filtered view.
func (s *Controller) Selected() (models.ScriptEntry, bool) {
	visible := s.Visible()
	if len(visible) == 0 || s.cursor >= len(visible) {
		return models.ScriptEntry{}, false
	}
	return visible[s.cursor], true
}

// Pending returns the entry and environment overrides picked for execution.
func (s *Controller) Pending() (models.ScriptEntry, map[string]string) {
	return s.pending, s.pendingEnv
}

// Handle applies one input event to the current mode and returns what the
// front end should do next. Events arriving in Running or Exiting are
// ignored; Running input belongs to the child process.
func (s *Controller) Handle(ev Event) Action {
	switch s.mode {
	case ModeCliList, ModeTui:
		return s.handleList(ev)
	case ModeSearch:
		return s.handleSearch(ev)
	case ModeErrorSplash:
		return s.handleErrorSplash(ev)
	default:
		return ActionNone
	}
}

func (s *Controller) handleList(ev Event) Action {
	switch ev.Key {
	case KeyEsc:
		s.mode = ModeExiting
		return ActionExit
	case KeyUp:
		s.moveCursor(-1)
	case KeyDown:
		s.moveCursor(1)
	case KeyEnter:
		return s.runSelected()
	case KeyRune:
		switch ev.Rune {
		case 'q':
			s.mode = ModeExiting
			return ActionExit
		case '/':
			s.returnTo = s.mode
			s.mode = ModeSearch
			return ActionNone
		case 't':
			if s.mode == ModeCliList {
				s.mode = ModeTui
				s.returnTo = ModeTui
				return ActionNone
			}
			return s.runShortcut(ev.Rune)
		case 'k':
			s.moveCursor(-1)
		case 'j':
			s.moveCursor(1)
		default:
			return s.runShortcut(ev.Rune)
		}
	}
	return ActionNone
}

func (s *Controller) handleSearch(ev Event) Action {
	switch ev.Key {
	case KeyEsc:
		s.query = ""
		s.cursor = 0
		s.mode = s.returnTo
	case KeyEnter:
		return s.runSelected()
	case KeyBackspace:
		if s.query != "" {
			runes := []rune(s.query)
			s.query = string(runes[:len(runes)-1])
		}
		s.clampCursor()
	case KeyUp:
		s.moveCursor(-1)
	case KeyDown:
		s.moveCursor(1)
	case KeyRune:
		s.query += string(ev.Rune)
		s.clampCursor()
	}
	return ActionNone
}

func (s *Controller) handleErrorSplash(Event) Action {
	s.mode = s.returnTo
	return ActionNone
}

// BeginRun records the chosen entry and hands the session to the child
// process. env carries synonym-contract overrides, nil otherwise.
func (s *Controller) BeginRun(entry models.ScriptEntry, env map[string]string) {
	if s.mode.Interactive() {
		if s.mode == ModeSearch {
			// Search is a sub-mode; the child returns to the view the
			// search was opened from.
			s.query = ""
			s.cursor = 0
		} else {
			s.returnTo = s.mode
		}
	}
	s.pending = entry
	s.pendingEnv = env
	s.mode = ModeRunning
}

// FinishRun records the child's exit code and transitions out of Running:
// ErrorSplash for a non-zero exit, otherwise back to the mode the user was
// in before.
func (s *Controller) FinishRun(exitCode int) {
	s.lastExit = exitCode
	s.pending = models.ScriptEntry{}
	s.pendingEnv = nil
	if exitCode != 0 {
		s.mode = ModeErrorSplash
		return
	}
	s.mode = s.returnTo
}

func (s *Controller) runSelected() Action {
	entry, ok := s.Selected()
	if !ok {
		return ActionNone
	}
	s.BeginRun(entry, nil)
	return ActionRun
}

func (s *Controller) runShortcut(r rune) Action {
	entry, ok := s.catalog.ByShortcut(r)
	if !ok {
		return ActionNone
	}
	s.BeginRun(entry, nil)
	return ActionRun
}

// Resolve maps a typed script name through the synonym table, for front
// ends that accept names as well as shortcuts.
func (s *Controller) Resolve(name string) (catalog.Resolution, error) {
	return catalog.Resolve(s.catalog, name)
}

// moveCursor shifts the cursor within the filtered view, clamped to its
// bounds with no wraparound.
func (s *Controller) moveCursor(delta int) {
	s.cursor += delta
	s.clampCursor()
}

func (s *Controller) clampCursor() {
	max := len(s.Visible()) - 1
	if s.cursor > max {
		s.cursor = max
	}
	if s.cursor < 0 {
		s.cursor = 0
	}
}
