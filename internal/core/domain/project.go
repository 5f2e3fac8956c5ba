package domain

// Project is the validated view of a project configuration file: the env
// specs it declares plus any problems found while reading them.
type Project struct {
	// Name is the project's human-readable name.
	Name string

	// Description is an optional project summary.
	Description string

	// Dir is the project directory the configuration was loaded from.
	Dir string

	// EnvSpecs maps env spec names to their constructed specs.
	EnvSpecs map[string]*EnvSpec

	// EnvSpecNames preserves the declaration order of the env_specs section.
	EnvSpecNames []string

	// DefaultEnvSpecName is "default" when such a spec exists, otherwise the
	// first-declared spec name. Empty when the project declares no specs.
	DefaultEnvSpecName string

	// SkipImportHash is a previously recorded channels-and-packages hash of an
	// external environment file the user chose not to import. A sync candidate
	// carrying this hash is suppressed.
	SkipImportHash string

	// Problems describes configuration issues that did not prevent loading.
	Problems []string
}

// OrderedEnvSpecs returns the project's env specs in declaration order.
func (p *Project) OrderedEnvSpecs() []*EnvSpec {
	specs := make([]*EnvSpec, 0, len(p.EnvSpecNames))
	for _, name := range p.EnvSpecNames {
		if spec, ok := p.EnvSpecs[name]; ok {
			specs = append(specs, spec)
		}
	}
	return specs
}

// DefaultEnvSpec returns the default env spec, or nil when there is none.
func (p *Project) DefaultEnvSpec() *EnvSpec {
	if p.DefaultEnvSpecName == "" {
		return nil
	}
	return p.EnvSpecs[p.DefaultEnvSpecName]
}

// OutOfSyncSpec is a sync-check finding: an env spec loaded from an external
// environment file that no project spec matches by name and hash.
type OutOfSyncSpec struct {
	// Spec is the loaded external spec, never nil.
	Spec *EnvSpec

	// Filename is the base name of the external file the spec came from.
	Filename string
}
