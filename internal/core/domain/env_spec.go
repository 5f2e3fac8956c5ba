// Package domain holds the pure model for environment specs: the EnvSpec
// entity with its inheritance merge, content hash, diff, and serialization.
package domain

import (
	"crypto/sha1" //nolint:gosec // Hash is an inequality signal, not an identity key
	"encoding/hex"
	"path/filepath"

	"go.trai.ch/zerr"
)

// EnvSpec is a named, potentially inheriting declaration of the conda
// packages, pip packages, and channels an environment requires.
//
// An EnvSpec is immutable after construction. The "own" lists hold only what
// this spec declares itself; the effective lists returned by CondaPackages,
// PipPackages, and Channels merge the parent's effective lists with the own
// lists via combine-keeping-last-duplicate.
type EnvSpec struct {
	name            string
	condaPackages   []string
	channels        []string
	pipPackages     []string
	description     string
	inheritFromName string
	inheritFrom     *EnvSpec

	// Computed once at construction. Specs are shared across goroutines by
	// the sync checker, so nothing may write fields after NewEnvSpec returns.
	hash string
}

// NewEnvSpec constructs an immutable env spec.
//
// inheritFromName alone records an unresolved weak reference to a parent;
// inheritFrom may additionally carry the resolved parent once lookup has
// succeeded. Supplying a resolved parent whose name disagrees with
// inheritFromName is a programming error and fails construction with
// ErrInheritanceMismatch.
func NewEnvSpec(
	name string,
	condaPackages []string,
	channels []string,
	pipPackages []string,
	description string,
	inheritFromName string,
	inheritFrom *EnvSpec,
) (*EnvSpec, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if inheritFrom != nil {
		if inheritFromName == "" || inheritFromName != inheritFrom.Name() {
			// Wrap keeps the sentinel in the chain for errors.Is.
			err := zerr.With(zerr.Wrap(ErrInheritanceMismatch, "constructing env spec"), "env_spec", name)
			err = zerr.With(err, "inherit_from_name", inheritFromName)
			err = zerr.With(err, "parent_name", inheritFrom.Name())
			return nil, err
		}
	}

	spec := &EnvSpec{
		name:            name,
		condaPackages:   copyStrings(condaPackages),
		channels:        copyStrings(channels),
		pipPackages:     copyStrings(pipPackages),
		description:     description,
		inheritFromName: inheritFromName,
		inheritFrom:     inheritFrom,
	}
	spec.hash = spec.computeHash()
	return spec, nil
}

// Name returns the spec's name, unique within a project.
func (s *EnvSpec) Name() string {
	return s.name
}

// Description returns the human-readable summary, falling back to the name.
func (s *EnvSpec) Description() string {
	if s.description == "" {
		return s.name
	}
	return s.description
}

// InheritFromName returns the declared parent name, or "" when not inheriting.
func (s *EnvSpec) InheritFromName() string {
	return s.inheritFromName
}

// InheritFrom returns the resolved parent spec, or nil when the reference is
// unresolved or the spec does not inherit.
func (s *EnvSpec) InheritFrom() *EnvSpec {
	return s.inheritFrom
}

// OwnCondaPackages returns only the conda package specs this spec declares itself.
func (s *EnvSpec) OwnCondaPackages() []string {
	return copyStrings(s.condaPackages)
}

// OwnChannels returns only the channels this spec declares itself.
func (s *EnvSpec) OwnChannels() []string {
	return copyStrings(s.channels)
}

// OwnPipPackages returns only the pip package specs this spec declares itself.
func (s *EnvSpec) OwnPipPackages() []string {
	return copyStrings(s.pipPackages)
}

// CondaPackages returns the effective conda package specs after inheritance.
func (s *EnvSpec) CondaPackages() []string {
	if s.inheritFrom == nil {
		return copyStrings(s.condaPackages)
	}
	return combineKeepingLastDuplicate(s.inheritFrom.CondaPackages(), s.condaPackages)
}

// Channels returns the effective channels after inheritance.
func (s *EnvSpec) Channels() []string {
	if s.inheritFrom == nil {
		return copyStrings(s.channels)
	}
	return combineKeepingLastDuplicate(s.inheritFrom.Channels(), s.channels)
}

// PipPackages returns the effective pip package specs after inheritance.
func (s *EnvSpec) PipPackages() []string {
	if s.inheritFrom == nil {
		return copyStrings(s.pipPackages)
	}
	return combineKeepingLastDuplicate(s.inheritFrom.PipPackages(), s.pipPackages)
}

// ChannelsAndPackagesHash returns a hex digest over the effective conda
// packages, pip packages, and channels, in that order. Order matters: a
// reorder counts as a change, since list order affects install precedence.
//
// Entries are hashed back to back with no delimiters, so differently
// segmented lists with the same concatenation collide (["ab"] vs ["a","b"]).
// That is a known limitation kept for compatibility with recorded hash
// values; the hash is only a fast inequality signal, never an identity key.
func (s *EnvSpec) ChannelsAndPackagesHash() string {
	return s.hash
}

func (s *EnvSpec) computeHash() string {
	h := sha1.New() //nolint:gosec // See ChannelsAndPackagesHash doc comment
	for _, p := range s.CondaPackages() {
		h.Write([]byte(p))
	}
	for _, p := range s.PipPackages() {
		h.Write([]byte(p))
	}
	for _, c := range s.Channels() {
		h.Write([]byte(c))
	}
	return hex.EncodeToString(h.Sum(nil))
}

// CondaPackageNamesSet returns the bare names of the effective conda packages.
// Specs are assumed pre-validated at this point; a malformed spec is an error.
func (s *EnvSpec) CondaPackageNamesSet() (map[string]struct{}, error) {
	names := make(map[string]struct{})
	for _, raw := range s.CondaPackages() {
		spec, err := ParseCondaSpec(raw)
		if err != nil {
			return nil, err
		}
		names[spec.Name] = struct{}{}
	}
	return names, nil
}

// PipPackageNamesSet returns the bare names of the effective pip packages.
// Specs are assumed pre-validated at this point; a malformed spec is an error.
func (s *EnvSpec) PipPackageNamesSet() (map[string]struct{}, error) {
	names := make(map[string]struct{})
	for _, raw := range s.PipPackages() {
		spec, err := ParsePipSpec(raw)
		if err != nil {
			return nil, err
		}
		names[spec.Name] = struct{}{}
	}
	return names, nil
}

// EnvPath returns the default filesystem prefix for an environment built from
// this spec inside the given project directory.
func (s *EnvSpec) EnvPath(projectDir string) string {
	return filepath.Join(projectDir, "envs", s.name)
}

// ToJSON returns the project-native serialized form of this spec: a mapping
// with "packages" (own conda specs plus a trailing {pip: [...]} entry when own
// pip specs exist), "channels" (own channels), and "inherit_from" when
// inheriting. Only own values are emitted; inherited content is re-derived at
// load time through the parent reference, so edits to a parent never require
// rewriting its children.
func (s *EnvSpec) ToJSON() map[string]any {
	packages := make([]any, 0, len(s.condaPackages)+1)
	for _, p := range s.condaPackages {
		packages = append(packages, p)
	}
	if len(s.pipPackages) > 0 {
		packages = append(packages, map[string]any{"pip": copyStrings(s.pipPackages)})
	}

	result := map[string]any{
		"packages": packages,
		"channels": copyStrings(s.channels),
	}
	if s.inheritFromName != "" {
		result["inherit_from"] = s.inheritFromName
	}
	return result
}

// combineKeepingLastDuplicate merges a parent's effective sequence with a
// child's own sequence. Parent entries keep their relative order except that
// any entry also present in the child is dropped from the parent's position;
// the child's entries are appended afterwards in the child's declared order.
// Override-by-key wins and moves to the end, deliberately not an in-place
// replace.
func combineKeepingLastDuplicate(base, own []string) []string {
	ownKeys := make(map[string]struct{}, len(own))
	for _, item := range own {
		ownKeys[item] = struct{}{}
	}

	combined := make([]string, 0, len(base)+len(own))
	for _, item := range base {
		if _, overridden := ownKeys[item]; !overridden {
			combined = append(combined, item)
		}
	}
	return append(combined, own...)
}

func copyStrings(strs []string) []string {
	if len(strs) == 0 {
		return nil
	}
	out := make([]string, len(strs))
	copy(out, strs)
	return out
}
