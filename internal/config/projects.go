package config

import (
	"fmt"
	"sort"
)

// AddProject saves a named project alias. Fails when the name is taken.
func (s *Settings) AddProject(name, path string) error {
	if _, exists := s.Projects[name]; exists {
		return fmt.Errorf("project %q already exists", name)
	}
	s.Projects[name] = path
	return s.Save()
}

// RemoveProject deletes a saved alias.
func (s *Settings) RemoveProject(name string) error {
	if _, exists := s.Projects[name]; !exists {
		return fmt.Errorf("project %q not found", name)
	}
	delete(s.Projects, name)
	return s.Save()
}

// RenameProject moves an alias to a new name.
func (s *Settings) RenameProject(oldName, newName string) error {
	path, exists := s.Projects[oldName]
	if !exists {
		return fmt.Errorf("project %q not found", oldName)
	}
	if _, taken := s.Projects[newName]; taken {
		return fmt.Errorf("project %q already exists", newName)
	}
	delete(s.Projects, oldName)
	s.Projects[newName] = path
	return s.Save()
}

// ProjectPath resolves a saved alias to its directory.
func (s *Settings) ProjectPath(name string) (string, bool) {
	path, ok := s.Projects[name]
	return path, ok
}

// ProjectNames returns the saved alias names sorted for stable listings.
func (s *Settings) ProjectNames() []string {
	names := make([]string, 0, len(s.Projects))
	for name := range s.Projects {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
