package cli

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/psrun/psrun/internal/config"
	"github.com/psrun/psrun/internal/filesystem"
)

// ProjectsCommand handles the projects subcommands
type ProjectsCommand struct {
	fs filesystem.FileSystem

	// yes skips the confirmation prompt on remove.
	yes bool
}

// NewProjectsCommand creates the projects command group
func NewProjectsCommand(fs filesystem.FileSystem) *cobra.Command {
	cmd := &ProjectsCommand{fs: fs}

	projectsCmd := &cobra.Command{
		Use:   "projects",
		Short: "Manage saved project aliases",
		Long: `Saved projects map a short alias to a project directory, so scripts can
be run from anywhere with 'psrun -p <alias>'.`,
	}

	addCmd := &cobra.Command{
		Use:   "add <name> <path>",
		Short: "Save a project alias",
		Args:  cobra.ExactArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			return cmd.RunAdd(c, args[0], args[1])
		},
	}

	removeCmd := &cobra.Command{
		Use:   "remove <name>",
		Short: "Remove a saved project",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return cmd.RunRemove(c, args[0])
		},
	}
	removeCmd.Flags().BoolVarP(&cmd.yes, "yes", "y", false, "skip the confirmation prompt")

	renameCmd := &cobra.Command{
		Use:   "rename <old> <new>",
		Short: "Rename a saved project",
		Args:  cobra.ExactArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			return cmd.RunRename(c, args[0], args[1])
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List saved projects",
		Args:  cobra.NoArgs,
		RunE:  cmd.RunList,
	}

	projectsCmd.AddCommand(addCmd, removeCmd, renameCmd, listCmd)
	return projectsCmd
}

// RunAdd saves a new alias, normalizing the path to absolute so the alias
// keeps working from other directories.
func (c *ProjectsCommand) RunAdd(cmd *cobra.Command, name, path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve path %s: %w", path, err)
	}
	if !c.fs.Exists(abs) {
		return fmt.Errorf("directory %s does not exist", abs)
	}

	settings, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	if err := settings.AddProject(name, abs); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Added project '%s' at '%s'\n", name, abs)
	return nil
}

// RunRemove deletes an alias after an interactive confirmation.
func (c *ProjectsCommand) RunRemove(cmd *cobra.Command, name string) error {
	settings, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	if _, ok := settings.ProjectPath(name); !ok {
		return fmt.Errorf("no saved project named %q", name)
	}

	if !c.yes {
		confirmed := false
		form := huh.NewForm(huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Remove saved project '%s'?", name)).
				Value(&confirmed),
		))
		if err := form.Run(); err != nil {
			return fmt.Errorf("failed to run confirmation prompt: %w", err)
		}
		if !confirmed {
			return nil
		}
	}

	if err := settings.RemoveProject(name); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Removed project '%s'\n", name)
	return nil
}

// RunRename moves an alias to a new name, keeping its path.
func (c *ProjectsCommand) RunRename(cmd *cobra.Command, oldName, newName string) error {
	settings, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	if err := settings.RenameProject(oldName, newName); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Renamed project '%s' to '%s'\n", oldName, newName)
	return nil
}

// RunList prints the alias store in name order.
func (c *ProjectsCommand) RunList(cmd *cobra.Command, _ []string) error {
	settings, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	names := settings.ProjectNames()
	if len(names) == 0 {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No saved projects")
		return nil
	}

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Saved projects:")
	for _, name := range names {
		path, _ := settings.ProjectPath(name)
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "  %s -> %s\n", name, path)
	}
	return nil
}
