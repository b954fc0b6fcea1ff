package models

import "strings"

// Category classifies a script by what it does. Inference happens once at
// catalog construction time, see catalog.InferCategory.
type Category int

const (
	CategoryOther Category = iota
	CategoryDev
	CategoryStart
	CategoryBuild
	CategoryTest
	CategoryLint
	CategoryFormat
	CategoryWatch
	CategoryClean
	CategoryDeploy
)

var categoryNames = map[Category]string{
	CategoryOther:  "other",
	CategoryDev:    "dev",
	CategoryStart:  "start",
	CategoryBuild:  "build",
	CategoryTest:   "test",
	CategoryLint:   "lint",
	CategoryFormat: "format",
	CategoryWatch:  "watch",
	CategoryClean:  "clean",
	CategoryDeploy: "deploy",
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return "other"
}

// ScriptEntry is one runnable script. Command is the verbatim text from the
// manifest; Invoke is the complete command line handed to the shell when the
// entry is run. They differ for manager-backed scripts ("jest" vs
// "npm run test") and coincide for synthesized entries ("cargo build").
// Immutable after catalog construction.
type ScriptEntry struct {
	Name        string
	Command     string
	Invoke      string
	Description string
	Category    Category
	// Shortcut is a single letter or digit bound to this entry, or zero
	// when the entry is reachable only by name or cursor.
	Shortcut rune
}

// MatchesSearch reports whether the entry matches a case-insensitive
// substring query against its name, command text, or description.
func (s ScriptEntry) MatchesSearch(query string) bool {
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(s.Name), q) ||
		strings.Contains(strings.ToLower(s.Command), q) ||
		strings.Contains(strings.ToLower(s.Description), q)
}
