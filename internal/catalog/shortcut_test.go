package catalog

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/psrun/psrun/internal/models"
)

func entriesWithCategories(categories ...models.Category) []models.ScriptEntry {
	entries := make([]models.ScriptEntry, len(categories))
	for i, c := range categories {
		entries[i] = models.ScriptEntry{
			Name:     fmt.Sprintf("script-%d", i),
			Command:  "true",
			Invoke:   "true",
			Category: c,
		}
	}
	return entries
}

func shortcuts(entries []models.ScriptEntry) []rune {
	keys := make([]rune, len(entries))
	for i, e := range entries {
		keys[i] = e.Shortcut
	}
	return keys
}

func TestAssignShortcuts_CategoryLetters(t *testing.T) {
	entries := entriesWithCategories(
		models.CategoryDev,
		models.CategoryBuild,
		models.CategoryTest,
		models.CategoryOther,
	)

	out := AssignShortcuts(entries)
	assert.Equal(t, []rune{'d', 'b', 't', '1'}, shortcuts(out))
}

func TestAssignShortcuts_FirstEntryPerCategoryWins(t *testing.T) {
	entries := entriesWithCategories(
		models.CategoryTest,
		models.CategoryTest,
		models.CategoryTest,
	)

	out := AssignShortcuts(entries)
	assert.Equal(t, []rune{'t', '1', '2'}, shortcuts(out))
}

func TestAssignShortcuts_Deterministic(t *testing.T) {
	entries := entriesWithCategories(
		models.CategoryOther,
		models.CategoryDev,
		models.CategoryLint,
		models.CategoryOther,
		models.CategoryClean,
	)

	first := AssignShortcuts(entries)
	second := AssignShortcuts(entries)
	require.Equal(t, shortcuts(first), shortcuts(second))

	// Lint has no letter in the precedence table: numeric pool.
	assert.Equal(t, []rune{'1', 'd', '2', '3', 'c'}, shortcuts(first))
}

func TestAssignShortcuts_NumericPoolCapsAtNine(t *testing.T) {
	entries := entriesWithCategories(
		models.CategoryOther, models.CategoryOther, models.CategoryOther,
		models.CategoryOther, models.CategoryOther, models.CategoryOther,
		models.CategoryOther, models.CategoryOther, models.CategoryOther,
		models.CategoryOther, models.CategoryOther,
	)

	out := AssignShortcuts(entries)
	keys := shortcuts(out)
	assert.Equal(t, '1', keys[0])
	assert.Equal(t, '9', keys[8])
	// Entries beyond the ninth remaining one are reachable only by name
	// or cursor navigation.
	assert.Equal(t, rune(0), keys[9])
	assert.Equal(t, rune(0), keys[10])
}

func TestAssignShortcuts_InputUnchanged(t *testing.T) {
	entries := entriesWithCategories(models.CategoryDev)
	_ = AssignShortcuts(entries)
	assert.Equal(t, rune(0), entries[0].Shortcut)
}
