package config

import "gopkg.in/yaml.v3"

// ProjectFilename is the project configuration file read from a project directory.
const ProjectFilename = "kapsel.yml"

// projectFile mirrors the kapsel.yml structure. Sections whose shape varies
// (mixed string/mapping sequences, ordered mappings) stay raw nodes and are
// validated field by field in the loader.
type projectFile struct {
	Name        yaml.Node      `yaml:"name"`
	Description yaml.Node      `yaml:"description"`
	Packages    yaml.Node      `yaml:"packages"`
	Channels    yaml.Node      `yaml:"channels"`
	EnvSpecs    yaml.Node      `yaml:"env_specs"`
	SkipImports skipImportsDTO `yaml:"skip_imports"`
}

type skipImportsDTO struct {
	EnvironmentYml string `yaml:"environment_yml"`
}

// envSpecDTO is one entry of the env_specs mapping.
type envSpecDTO struct {
	Description yaml.Node `yaml:"description"`
	Packages    yaml.Node `yaml:"packages"`
	Channels    yaml.Node `yaml:"channels"`
	InheritFrom yaml.Node `yaml:"inherit_from"`
}
