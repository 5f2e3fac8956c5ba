// Package config provides the project configuration loader for kapsel.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/Global19-atlassian-net/kapsel/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ProjectLoader by reading kapsel.yml from a project
// directory.
type Loader struct{}

// NewLoader creates a new project configuration Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads and validates the project configuration. An unreadable or
// syntactically invalid file is an error; issues inside a parsed file (bad
// field types, invalid package specs, broken inheritance) accumulate as
// problems on the returned project so they can be presented and fixed.
func (l *Loader) Load(dir string) (*domain.Project, error) {
	path := filepath.Join(dir, ProjectFilename)
	data, err := os.ReadFile(path) //nolint:gosec // Path is provided by user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read project file"), "path", path)
	}

	var file projectFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse project file"), "path", path)
	}

	b := &projectBuilder{file: &file}
	return b.build(dir), nil
}

// projectBuilder accumulates problems while turning a parsed project file
// into a domain.Project.
type projectBuilder struct {
	file     *projectFile
	problems []string
}

func (b *projectBuilder) problemf(format string, args ...any) {
	b.problems = append(b.problems, fmt.Sprintf(format, args...))
}

func (b *projectBuilder) build(dir string) *domain.Project {
	project := &domain.Project{
		Dir:            dir,
		EnvSpecs:       make(map[string]*domain.EnvSpec),
		SkipImportHash: b.file.SkipImports.EnvironmentYml,
	}

	project.Name = b.stringField(&b.file.Name, "name")
	if project.Name == "" {
		project.Name = filepath.Base(dir)
	}
	project.Description = b.stringField(&b.file.Description, "description")

	// Top-level packages and channels are shared: they prepend into every
	// env spec's own lists.
	sharedConda, sharedPip := b.packageLists(&b.file.Packages)
	sharedChannels := b.channelList(&b.file.Channels)

	attrs, order := b.parseEnvSpecs(sharedConda, sharedPip, sharedChannels)

	// Build specs root-first so each child can carry its resolved parent.
	for _, name := range order {
		b.makeEnvSpec(project, attrs, name, nil)
	}
	for _, name := range order {
		if _, ok := project.EnvSpecs[name]; ok {
			project.EnvSpecNames = append(project.EnvSpecNames, name)
		}
	}

	if len(order) == 0 {
		b.problemf("%s has an empty env_specs section.", ProjectFilename)
	}

	switch {
	case project.EnvSpecs["default"] != nil:
		project.DefaultEnvSpecName = "default"
	case len(project.EnvSpecNames) > 0:
		project.DefaultEnvSpecName = project.EnvSpecNames[0]
	}

	project.Problems = b.problems
	return project
}

// envSpecAttrs holds one env spec's raw attributes before inheritance resolution.
type envSpecAttrs struct {
	name            string
	description     string
	condaPackages   []string
	pipPackages     []string
	channels        []string
	inheritFromName string
}

// parseEnvSpecs parses the env_specs section into per-spec attributes in
// declaration order, merging in the shared top-level lists.
func (b *projectBuilder) parseEnvSpecs(sharedConda, sharedPip, sharedChannels []string) (map[string]*envSpecAttrs, []string) {
	attrs := make(map[string]*envSpecAttrs)
	var order []string

	section := &b.file.EnvSpecs
	if section.Kind == 0 || section.Tag == "!!null" {
		return attrs, order
	}
	if section.Kind != yaml.MappingNode {
		b.problemf("%s: env_specs should be a mapping from environment name to environment attributes", ProjectFilename)
		return attrs, order
	}

	for i := 0; i+1 < len(section.Content); i += 2 {
		keyNode, valueNode := section.Content[i], section.Content[i+1]
		name, ok := scalarString(keyNode)
		if !ok || name == "" {
			b.problemf("%s: environment spec name cannot be empty", ProjectFilename)
			continue
		}

		var dto envSpecDTO
		if err := valueNode.Decode(&dto); err != nil {
			b.problemf("%s: env spec %s should be a mapping of attributes", ProjectFilename, name)
			continue
		}

		description, ok := optionalString(&dto.Description)
		if !ok {
			b.problemf("%s: 'description' field of environment %s must be a string", ProjectFilename, name)
			continue
		}
		inheritFromName, ok := optionalString(&dto.InheritFrom)
		if !ok {
			b.problemf("%s: 'inherit_from' field of environment %s must be a string", ProjectFilename, name)
			continue
		}

		conda, pip := b.packageLists(&dto.Packages)
		channels := b.channelList(&dto.Channels)

		attrs[name] = &envSpecAttrs{
			name:            name,
			description:     description,
			condaPackages:   slices.Concat(sharedConda, conda),
			pipPackages:     slices.Concat(sharedPip, pip),
			channels:        slices.Concat(sharedChannels, channels),
			inheritFromName: inheritFromName,
		}
		order = append(order, name)
	}

	return attrs, order
}

// makeEnvSpec constructs the named spec, resolving its parent first. The
// trail detects inheritance cycles; a cycle is a problem, and the affected
// specs are still constructed with unresolved parent references so they can
// be edited to fix the problem.
func (b *projectBuilder) makeEnvSpec(project *domain.Project, attrs map[string]*envSpecAttrs, name string, trail []string) *domain.EnvSpec {
	if spec, ok := project.EnvSpecs[name]; ok {
		return spec
	}

	a := attrs[name]
	wasCycle := slices.Contains(trail, name)
	if wasCycle {
		b.problemf("%s: 'inherit_from' fields create circular inheritance among these env specs: %s",
			ProjectFilename, strings.Join(trail, ", "))
	}
	trail = append(trail, name)

	var inheritFrom *domain.EnvSpec
	if a.inheritFromName != "" && !wasCycle {
		if _, known := attrs[a.inheritFromName]; !known {
			b.problemf("%s: 'inherit_from' field of environment %s does not match the name of another env spec",
				ProjectFilename, name)
		} else {
			inheritFrom = b.makeEnvSpec(project, attrs, a.inheritFromName, trail)
		}
	}

	spec, err := domain.NewEnvSpec(
		a.name, a.condaPackages, a.channels, a.pipPackages,
		a.description, a.inheritFromName, inheritFrom,
	)
	if err != nil {
		// Unreachable for attrs built above; surface it as a problem anyway.
		b.problemf("%s: env spec %s: %v", ProjectFilename, name, err)
		return nil
	}

	project.EnvSpecs[name] = spec
	return spec
}

// packageLists parses a packages sequence into conda and pip spec strings.
// Invalid entries and malformed specs become problems; the valid remainder
// is kept.
func (b *projectBuilder) packageLists(node *yaml.Node) (condaPackages, pipPackages []string) {
	if node.Kind == 0 || node.Tag == "!!null" {
		return nil, nil
	}
	if node.Kind != yaml.SequenceNode {
		b.problemf("%s: packages: value should be a list of package names", ProjectFilename)
		return nil, nil
	}

	for _, entry := range node.Content {
		if s, ok := scalarString(entry); ok {
			if _, err := domain.ParseCondaSpec(s); err != nil {
				b.problemf("%s: invalid package specification: %s", ProjectFilename, s)
				continue
			}
			condaPackages = append(condaPackages, s)
			continue
		}

		if entry.Kind == yaml.MappingNode {
			var pipDict struct {
				Pip yaml.Node `yaml:"pip"`
			}
			// Multiple pip: mappings are allowed; each contributes in order.
			if err := entry.Decode(&pipDict); err == nil && pipDict.Pip.Kind == yaml.SequenceNode {
				for _, pipEntry := range pipDict.Pip.Content {
					s, ok := scalarString(pipEntry)
					if !ok {
						b.problemf("%s: pip: value should be a pip package name (as a string)", ProjectFilename)
						continue
					}
					if _, err := domain.ParsePipSpec(s); err != nil {
						b.problemf("%s: invalid pip package specifier: %s", ProjectFilename, s)
						continue
					}
					pipPackages = append(pipPackages, s)
				}
				continue
			}
		}

		b.problemf("%s: packages: value should be a package name (as a string)", ProjectFilename)
	}

	return condaPackages, pipPackages
}

// channelList parses a channels sequence; non-string entries are problems.
func (b *projectBuilder) channelList(node *yaml.Node) []string {
	if node.Kind == 0 || node.Tag == "!!null" {
		return nil
	}
	if node.Kind != yaml.SequenceNode {
		b.problemf("%s: channels: value should be a list of channel names", ProjectFilename)
		return nil
	}

	var channels []string
	for _, entry := range node.Content {
		s, ok := scalarString(entry)
		if !ok {
			b.problemf("%s: channels: value should be a channel name (as a string)", ProjectFilename)
			continue
		}
		channels = append(channels, s)
	}
	return channels
}

// stringField extracts an optional top-level scalar string, recording a
// problem for wrong-typed values.
func (b *projectBuilder) stringField(node *yaml.Node, field string) string {
	s, ok := optionalString(node)
	if !ok {
		b.problemf("%s: %s: field should have a string value", ProjectFilename, field)
		return ""
	}
	return s
}

// optionalString returns ("", true) for an absent or null node, the value for
// a string scalar, and ok=false for anything else.
func optionalString(node *yaml.Node) (string, bool) {
	if node.Kind == 0 || node.Tag == "!!null" {
		return "", true
	}
	return scalarString(node)
}

// scalarString accepts only genuine string scalars; yaml.v3 would otherwise
// decode ints and bools into a Go string without complaint.
func scalarString(node *yaml.Node) (string, bool) {
	if node.Kind != yaml.ScalarNode || node.Tag != "!!str" {
		return "", false
	}
	return node.Value, true
}
