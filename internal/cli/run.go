package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/psrun/psrun/internal/catalog"
	"github.com/psrun/psrun/internal/config"
	"github.com/psrun/psrun/internal/detect"
	"github.com/psrun/psrun/internal/execution"
	"github.com/psrun/psrun/internal/filesystem"
	"github.com/psrun/psrun/internal/models"
	"github.com/psrun/psrun/internal/session"
	"github.com/psrun/psrun/internal/termguard"
	"github.com/psrun/psrun/internal/tui"
)

// RunCommand handles the root command: detection, catalog construction, and
// the one-shot, listing, and interactive paths.
type RunCommand struct {
	fs filesystem.FileSystem

	dir      string
	project  string
	listOnly bool
	tui      bool
	theme    string
	loop     bool
	verbose  bool
}

// Run executes the root command
func (c *RunCommand) Run(cmd *cobra.Command, args []string) error {
	if c.theme != "" {
		if _, err := config.ParseTheme(c.theme); err != nil {
			return err
		}
	}

	settings, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	startDir, err := c.resolveStartDir(settings)
	if err != nil {
		return err
	}

	project, err := detect.New(c.fs).Detect(startDir)
	if err != nil {
		return fmt.Errorf("failed to detect project: %w", err)
	}

	cat, err := catalog.NewBuilder(c.fs).Build(project)
	if err != nil {
		return fmt.Errorf("failed to build script catalog: %w", err)
	}

	if c.listOnly {
		return renderList(cmd.OutOrStdout(), cat)
	}

	if len(args) > 0 {
		return c.runOnce(cmd.Context(), cat, args[0], args[1:])
	}

	if !termguard.IsTerminal() {
		return fmt.Errorf("interactive mode requires a terminal (use --list or a script name)")
	}

	theme := settings.EffectiveTheme(c.theme)
	if c.tui {
		return c.runTui(session.New(cat, session.ModeTui), theme, settings.ShowEmoji)
	}
	return c.runCliList(cmd.Context(), cat, theme, settings.ShowEmoji)
}

// resolveStartDir picks the detector's starting directory: a saved project
// alias wins over --dir, which wins over the working directory.
func (c *RunCommand) resolveStartDir(settings *config.Settings) (string, error) {
	if c.project != "" {
		path, ok := settings.ProjectPath(c.project)
		if !ok {
			return "", fmt.Errorf("no saved project named %q (see 'psrun projects list')", c.project)
		}
		return path, nil
	}
	if c.dir != "" {
		return c.dir, nil
	}
	cwd, err := c.fs.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to resolve working directory: %w", err)
	}
	return cwd, nil
}

// runOnce resolves a script name through the synonym table and runs it in
// the foreground. A missing name is fatal here; only interactive sessions
// recover from it.
func (c *RunCommand) runOnce(ctx context.Context, cat *models.Catalog, name string, extra []string) error {
	res, err := catalog.Resolve(cat, name)
	if err != nil {
		return err
	}

	code, err := execution.New().Run(ctx, execution.Request{
		Dir:     cat.Project.Root,
		Command: res.Entry.Invoke,
		Args:    extra,
		Env:     res.Env,
	})
	if err != nil {
		return err
	}
	if code != 0 {
		return &ExitError{Code: code}
	}
	return nil
}

func (c *RunCommand) runTui(ctrl *session.Controller, theme config.Theme, showEmoji bool) error {
	model := tui.NewModel(ctrl, tui.Options{
		Theme:     theme,
		ShowEmoji: showEmoji,
		Loop:      c.loop,
	})

	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("failed to run interface: %w", err)
	}
	return nil
}
