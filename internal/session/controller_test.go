package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/psrun/psrun/internal/models"
)

func testCatalog() *models.Catalog {
	entries := []models.ScriptEntry{
		{Name: "build", Command: "tsc", Invoke: "npm run build", Category: models.CategoryBuild, Shortcut: 'b'},
		{Name: "test", Command: "jest", Invoke: "npm run test", Category: models.CategoryTest, Shortcut: 't'},
		{Name: "deploy", Command: "wrangler deploy", Invoke: "npm run deploy", Category: models.CategoryDeploy, Shortcut: '1'},
		{Name: "docs", Command: "typedoc", Invoke: "npm run docs", Shortcut: '2'},
	}
	return models.NewCatalog(models.Project{Type: models.ProjectTypeNpm, Root: "/p", Name: "p"}, entries)
}

func TestController_InitialMode(t *testing.T) {
	assert.Equal(t, ModeCliList, New(testCatalog(), ModeCliList).Mode())
	assert.Equal(t, ModeTui, New(testCatalog(), ModeTui).Mode())
	// Running is not a legal initial mode; fall back to the default.
	assert.Equal(t, ModeCliList, New(testCatalog(), ModeRunning).Mode())
}

func TestController_SwitchToTuiAndExit(t *testing.T) {
	s := New(testCatalog(), ModeCliList)

	assert.Equal(t, ActionNone, s.Handle(RuneEvent('t')))
	assert.Equal(t, ModeTui, s.Mode())

	assert.Equal(t, ActionExit, s.Handle(RuneEvent('q')))
	assert.Equal(t, ModeExiting, s.Mode())
}

func TestController_EscExitsFromEitherListMode(t *testing.T) {
	s := New(testCatalog(), ModeTui)
	assert.Equal(t, ActionExit, s.Handle(Event{Key: KeyEsc}))
	assert.Equal(t, ModeExiting, s.Mode())
}

func TestController_CursorClampsNoWraparound(t *testing.T) {
	s := New(testCatalog(), ModeCliList)

	s.Handle(Event{Key: KeyUp})
	assert.Equal(t, 0, s.Cursor())

	for i := 0; i < 10; i++ {
		s.Handle(Event{Key: KeyDown})
	}
	assert.Equal(t, 3, s.Cursor())

	s.Handle(RuneEvent('k'))
	assert.Equal(t, 2, s.Cursor())
	s.Handle(RuneEvent('j'))
	assert.Equal(t, 3, s.Cursor())
}

func TestController_SearchNarrowsAndRestores(t *testing.T) {
	s := New(testCatalog(), ModeCliList)
	original := s.Visible()

	s.Handle(RuneEvent('/'))
	require.Equal(t, ModeSearch, s.Mode())

	s.Handle(RuneEvent('d'))
	s.Handle(RuneEvent('o'))
	assert.Equal(t, "do", s.Query())

	visible := s.Visible()
	require.Len(t, visible, 1)
	assert.Equal(t, "docs", visible[0].Name)

	// Esc clears the filter and returns to the prior mode with the
	// original order intact.
	s.Handle(Event{Key: KeyEsc})
	assert.Equal(t, ModeCliList, s.Mode())
	assert.Equal(t, "", s.Query())
	assert.Equal(t, original, s.Visible())
}

func TestController_SearchMatchesCommandAndDescription(t *testing.T) {
	entries := []models.ScriptEntry{
		{Name: "a", Command: "wrangler deploy", Invoke: "a"},
		{Name: "b", Command: "true", Description: "Wrangle the docs", Invoke: "b"},
		{Name: "c", Command: "true", Invoke: "c"},
	}
	s := New(models.NewCatalog(models.Project{}, entries), ModeCliList)

	s.Handle(RuneEvent('/'))
	for _, r := range "wrang" {
		s.Handle(RuneEvent(r))
	}
	assert.Len(t, s.Visible(), 2)
}

func TestController_EmptyQueryReturnsFullView(t *testing.T) {
	s := New(testCatalog(), ModeCliList)
	assert.Len(t, s.Visible(), 4)

	s.Handle(RuneEvent('/'))
	s.Handle(RuneEvent('x'))
	s.Handle(RuneEvent('y'))
	assert.Empty(t, s.Visible())

	s.Handle(Event{Key: KeyBackspace})
	s.Handle(Event{Key: KeyBackspace})
	assert.Len(t, s.Visible(), 4)
}

func TestController_SearchCursorClampedToFilteredView(t *testing.T) {
	s := New(testCatalog(), ModeCliList)
	for i := 0; i < 3; i++ {
		s.Handle(Event{Key: KeyDown})
	}
	require.Equal(t, 3, s.Cursor())

	s.Handle(RuneEvent('/'))
	s.Handle(RuneEvent('t'))
	// "t" matches test, tsc (build) and docs? no: build(tsc), test(jest).
	visible := s.Visible()
	assert.True(t, s.Cursor() < len(visible))
}

func TestController_EnterRunsSelected(t *testing.T) {
	s := New(testCatalog(), ModeCliList)
	s.Handle(Event{Key: KeyDown})

	action := s.Handle(Event{Key: KeyEnter})
	require.Equal(t, ActionRun, action)
	assert.Equal(t, ModeRunning, s.Mode())

	entry, env := s.Pending()
	assert.Equal(t, "test", entry.Name)
	assert.Nil(t, env)
}

func TestController_ShortcutRuns(t *testing.T) {
	s := New(testCatalog(), ModeCliList)

	action := s.Handle(RuneEvent('b'))
	require.Equal(t, ActionRun, action)

	entry, _ := s.Pending()
	assert.Equal(t, "build", entry.Name)
}

func TestController_UnknownShortcutIgnored(t *testing.T) {
	s := New(testCatalog(), ModeCliList)
	assert.Equal(t, ActionNone, s.Handle(RuneEvent('z')))
	assert.Equal(t, ModeCliList, s.Mode())
}

func TestController_RunningIgnoresInput(t *testing.T) {
	s := New(testCatalog(), ModeCliList)
	s.Handle(Event{Key: KeyEnter})
	require.Equal(t, ModeRunning, s.Mode())

	assert.Equal(t, ActionNone, s.Handle(RuneEvent('q')))
	assert.Equal(t, ModeRunning, s.Mode())
}

func TestController_FinishRunSuccessReturnsToPriorMode(t *testing.T) {
	s := New(testCatalog(), ModeTui)
	s.Handle(Event{Key: KeyEnter})

	s.FinishRun(0)
	assert.Equal(t, ModeTui, s.Mode())
	assert.Equal(t, 0, s.LastExit())
}

func TestController_FinishRunFailureShowsErrorSplash(t *testing.T) {
	s := New(testCatalog(), ModeCliList)
	s.Handle(Event{Key: KeyEnter})

	s.FinishRun(2)
	assert.Equal(t, ModeErrorSplash, s.Mode())
	assert.Equal(t, 2, s.LastExit())

	// Any key dismisses the splash back to the prior interactive mode.
	s.Handle(RuneEvent('x'))
	assert.Equal(t, ModeCliList, s.Mode())
}

func TestController_RunFromSearchReturnsToOriginMode(t *testing.T) {
	s := New(testCatalog(), ModeTui)
	s.Handle(RuneEvent('/'))
	for _, r := range "test" {
		s.Handle(RuneEvent(r))
	}

	action := s.Handle(Event{Key: KeyEnter})
	require.Equal(t, ActionRun, action)

	s.FinishRun(0)
	assert.Equal(t, ModeTui, s.Mode())
	assert.Equal(t, "", s.Query())
}
