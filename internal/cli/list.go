package cli

import (
	"fmt"
	"io"

	"github.com/psrun/psrun/internal/models"
)

// renderList prints the non-interactive script listing, one script per line
// in catalog order: shortcut, name, command. Plain text with a fixed shape
// so the output stays grep and pipe friendly.
func renderList(w io.Writer, c *models.Catalog) error {
	_, _ = fmt.Fprintln(w, "Available scripts:")
	for _, entry := range c.Entries() {
		shortcut := "[ ]"
		if entry.Shortcut != 0 {
			shortcut = fmt.Sprintf("[%c]", entry.Shortcut)
		}
		_, _ = fmt.Fprintf(w, "%s %s - %s\n", shortcut, entry.Name, entry.Command)
	}
	return nil
}
