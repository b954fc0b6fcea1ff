package session

// Key discriminates input events the controller understands. Front ends
// (the plain list loop and the bubbletea model) translate their raw input
// into these before calling Handle.
type Key int

const (
	KeyRune Key = iota
	KeyEnter
	KeyEsc
	KeyUp
	KeyDown
	KeyBackspace
)

// Event is one keystroke. Rune is set only for KeyRune events.
type Event struct {
	Key  Key
	Rune rune
}

// RuneEvent builds a printable-character event.
func RuneEvent(r rune) Event {
	return Event{Key: KeyRune, Rune: r}
}

// Action tells the front end what to do after a transition.
type Action int

const (
	// ActionNone means state changed (or not); keep reading input.
	ActionNone Action = iota
	// ActionRun means a script was selected; the caller must execute the
	// pending entry and report back through FinishRun.
	ActionRun
	// ActionExit means the session reached Exiting.
	ActionExit
)
