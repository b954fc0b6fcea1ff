package catalog

import (
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/psrun/psrun/internal/models"
)

// taskfile is the subset of Taskfile.yml the builder consumes. A task body
// may be a plain command string or a mapping with cmds and desc.
type taskfile struct {
	Tasks map[string]taskDef `yaml:"tasks"`
}

type taskDef struct {
	command     string
	description string
}

func (t *taskDef) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		return node.Decode(&t.command)
	}

	var body struct {
		Cmds []string `yaml:"cmds"`
		Desc string   `yaml:"desc"`
	}
	if err := node.Decode(&body); err != nil {
		return err
	}
	t.command = strings.Join(body.Cmds, " && ")
	t.description = body.Desc
	return nil
}

func (b *Builder) parseTaskfile(project models.Project) ([]models.ScriptEntry, error) {
	path := filepath.Join(project.Root, "Taskfile.yml")
	if !b.fs.Exists(path) {
		path = filepath.Join(project.Root, "Taskfile.yaml")
	}
	data, err := b.fs.ReadFile(path)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	var tf taskfile
	if err := yaml.Unmarshal(data, &tf); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	entries := make([]models.ScriptEntry, 0, len(tf.Tasks))
	for name, def := range tf.Tasks {
		entries = append(entries, newEntry(
			name,
			def.command,
			"task "+name,
			def.description,
		))
	}
	return entries, nil
}
