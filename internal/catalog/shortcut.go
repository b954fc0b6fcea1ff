package catalog

import "github.com/psrun/psrun/internal/models"

// shortcutPrecedence fixes which categories receive a letter shortcut and in
// which order the letters are claimed. Lint and Deploy entries go to the
// numeric pool like everything else.
var shortcutPrecedence = []struct {
	category models.Category
	letter   rune
}{
	{models.CategoryDev, 'd'},
	{models.CategoryStart, 's'},
	{models.CategoryBuild, 'b'},
	{models.CategoryTest, 't'},
	{models.CategoryWatch, 'w'},
	{models.CategoryFormat, 'f'},
	{models.CategoryClean, 'c'},
}

// AssignShortcuts annotates entries with quick-access keys, deterministic
// for a given input ordering. Each category letter is claimed at most once,
// by the first entry of that category in catalog order; a letter already
// claimed by an earlier category is never reassigned, and the candidate
// falls through to the numeric pool. Remaining entries receive digits 1-9
// in catalog order; anything beyond nine gets no shortcut.
func AssignShortcuts(entries []models.ScriptEntry) []models.ScriptEntry {
	out := make([]models.ScriptEntry, len(entries))
	copy(out, entries)

	claimed := make(map[rune]bool)
	assigned := make(map[int]bool)

	for _, prec := range shortcutPrecedence {
		if claimed[prec.letter] {
			continue
		}
		for i := range out {
			if assigned[i] || out[i].Category != prec.category {
				continue
			}
			out[i].Shortcut = prec.letter
			claimed[prec.letter] = true
			assigned[i] = true
			break
		}
	}

	digit := '1'
	for i := range out {
		if assigned[i] {
			continue
		}
		if digit > '9' {
			out[i].Shortcut = 0
			continue
		}
		out[i].Shortcut = digit
		digit++
	}

	return out
}
