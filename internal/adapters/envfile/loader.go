// Package envfile loads externally authored environment-description files
// (conda's environment.yml format) and checks them against a project's
// declared env specs.
package envfile

import (
	"os"
	"path/filepath"

	"github.com/Global19-atlassian-net/kapsel/internal/core/domain"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.EnvFileLoader.
type Loader struct{}

// NewLoader creates a new environment-file Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// envFile mirrors the top-level structure of an environment.yml. Every field
// is a raw node so that a wrong-typed field degrades to a default instead of
// failing the whole document. Unknown top-level keys are ignored.
type envFile struct {
	Name         yaml.Node `yaml:"name"`
	Prefix       yaml.Node `yaml:"prefix"`
	Dependencies yaml.Node `yaml:"dependencies"`
	Channels     yaml.Node `yaml:"channels"`
}

// Load reads the file at path as an environment description and returns an
// env spec with no inheritance link. It returns nil when the file cannot be
// read or is not valid YAML; callers must treat nil as "nothing to
// synchronize", never as a failure.
//
// Field extraction is deliberately lenient: wrong-typed or misshapen entries
// are skipped silently. Full validation happens later, if and when the spec
// is imported into the project configuration.
func (l *Loader) Load(path string) *domain.EnvSpec {
	data, err := os.ReadFile(path) //nolint:gosec // Path is provided by caller
	if err != nil {
		return nil
	}

	var file envFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil
	}

	name := stringValue(&file.Name)
	if name == "" {
		if prefix := stringValue(&file.Prefix); prefix != "" {
			name = filepath.Base(prefix)
		}
	}
	if name == "" {
		name = filepath.Base(path)
	}

	condaPackages, pipPackages := dependencyLists(&file.Dependencies)
	channels := stringList(&file.Channels)

	spec, err := domain.NewEnvSpec(name, condaPackages, channels, pipPackages, "", "", nil)
	if err != nil {
		return nil
	}
	return spec
}

// dependencyLists splits a dependencies sequence into conda and pip package
// specs. Plain strings are conda specs; a {pip: [...]} mapping contributes
// its string elements as pip specs; anything else is skipped.
func dependencyLists(node *yaml.Node) (condaPackages, pipPackages []string) {
	if node.Kind != yaml.SequenceNode {
		return nil, nil
	}
	for _, entry := range node.Content {
		if s, ok := scalarString(entry); ok {
			condaPackages = append(condaPackages, s)
			continue
		}
		if entry.Kind != yaml.MappingNode {
			continue
		}
		var pipDict struct {
			Pip yaml.Node `yaml:"pip"`
		}
		if err := entry.Decode(&pipDict); err != nil {
			continue
		}
		pipPackages = append(pipPackages, stringList(&pipDict.Pip)...)
	}
	return condaPackages, pipPackages
}

// stringList extracts the string elements of a sequence node, skipping
// anything that is not a plain string.
func stringList(node *yaml.Node) []string {
	if node.Kind != yaml.SequenceNode {
		return nil
	}
	var out []string
	for _, entry := range node.Content {
		if s, ok := scalarString(entry); ok {
			out = append(out, s)
		}
	}
	return out
}

// stringValue extracts a scalar string value, or "" for anything else.
func stringValue(node *yaml.Node) string {
	s, _ := scalarString(node)
	return s
}

// scalarString accepts only genuine string scalars. yaml.v3 will happily
// decode ints and bools into a Go string, which would let a bare 42 pass as a
// package name, so the check is on the resolved tag, not on Decode.
func scalarString(node *yaml.Node) (string, bool) {
	if node.Kind != yaml.ScalarNode || node.Tag != "!!str" {
		return "", false
	}
	return node.Value, true
}
