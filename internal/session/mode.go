package session

// Mode is the session's current state. A single tagged enum, not scattered
// flags, so illegal combinations like searching-while-running cannot be
// represented.
type Mode int

const (
	ModeCliList Mode = iota
	ModeTui
	ModeSearch
	ModeRunning
	ModeErrorSplash
	ModeExiting
)

var modeNames = map[Mode]string{
	ModeCliList:     "cli-list",
	ModeTui:         "tui",
	ModeSearch:      "search",
	ModeRunning:     "running",
	ModeErrorSplash: "error-splash",
	ModeExiting:     "exiting",
}

func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return "unknown"
}

// Interactive reports whether the mode accepts navigation input.
func (m Mode) Interactive() bool {
	return m == ModeCliList || m == ModeTui || m == ModeSearch
}
