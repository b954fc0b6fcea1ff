package models

// Catalog is the normalized, ordered collection of script entries derived
// from one project's manifest, with lookups by name and by shortcut. Built
// once per session; a directory change rebuilds it wholesale.
type Catalog struct {
	Project Project
	entries []ScriptEntry

	byName     map[string]int
	byShortcut map[rune]int
}

// NewCatalog builds a catalog from shortcut-annotated entries. Duplicate
// names must have been collapsed by the builder already; duplicate shortcuts
// would violate the assigner's contract, so the later one is dropped here
// rather than shadowing the earlier.
func NewCatalog(project Project, entries []ScriptEntry) *Catalog {
	c := &Catalog{
		Project:    project,
		entries:    entries,
		byName:     make(map[string]int, len(entries)),
		byShortcut: make(map[rune]int),
	}
	for i, e := range entries {
		c.byName[e.Name] = i
		if e.Shortcut != 0 {
			if _, taken := c.byShortcut[e.Shortcut]; !taken {
				c.byShortcut[e.Shortcut] = i
			}
		}
	}
	return c
}

// Entries returns the entries in catalog order.
func (c *Catalog) Entries() []ScriptEntry {
	return c.entries
}

func (c *Catalog) Len() int {
	return len(c.entries)
}

// Get looks up an entry by exact name.
func (c *Catalog) Get(name string) (ScriptEntry, bool) {
	i, ok := c.byName[name]
	if !ok {
		return ScriptEntry{}, false
	}
	return c.entries[i], true
}

// ByShortcut looks up an entry by its quick-access key.
func (c *Catalog) ByShortcut(key rune) (ScriptEntry, bool) {
	i, ok := c.byShortcut[key]
	if !ok {
		return ScriptEntry{}, false
	}
	return c.entries[i], true
}

// Names returns all script names in catalog order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.entries))
	for i, e := range c.entries {
		names[i] = e.Name
	}
	return names
}
