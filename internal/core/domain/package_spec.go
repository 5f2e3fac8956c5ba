package domain

import (
	"regexp"
	"strings"

	"go.trai.ch/zerr"
)

// PackageSpec is a parsed package requirement: a bare name plus whatever
// version constraint followed it, verbatim.
type PackageSpec struct {
	Name       string
	Constraint string
}

var (
	// Conda match specs: "name", "name=1.0", "name=1.0=py36_0", and the
	// pip-style comparison operators conda also accepts.
	condaSpecRe = regexp.MustCompile(`^([A-Za-z0-9][A-Za-z0-9._-]*)\s*((?:[=<>!~][=<>]?.*)?)$`)

	// Pip requirement strings, PEP 508 name rules with optional comparison
	// clauses ("flask", "flask>=1.0", "flask >=1.0, <2.0").
	pipSpecRe = regexp.MustCompile(`^([A-Za-z0-9][A-Za-z0-9._-]*)\s*((?:(?:==|>=|<=|!=|~=|===|>|<)\s*[^,\s]+)(?:\s*,\s*(?:==|>=|<=|!=|~=|===|>|<)\s*[^,\s]+)*)?$`)
)

// ParseCondaSpec parses a single conda package spec string.
func ParseCondaSpec(spec string) (PackageSpec, error) {
	trimmed := strings.TrimSpace(spec)
	m := condaSpecRe.FindStringSubmatch(trimmed)
	if m == nil || m[1] == "" {
		// Wrap keeps the sentinel in the chain for errors.Is.
		err := zerr.With(zerr.Wrap(ErrInvalidPackageSpec, "parsing conda package spec"), "spec", spec)
		return PackageSpec{}, zerr.With(err, "kind", "conda")
	}
	return PackageSpec{Name: m[1], Constraint: m[2]}, nil
}

// ParsePipSpec parses a single pip requirement string.
func ParsePipSpec(spec string) (PackageSpec, error) {
	trimmed := strings.TrimSpace(spec)
	m := pipSpecRe.FindStringSubmatch(trimmed)
	if m == nil || m[1] == "" {
		err := zerr.With(zerr.Wrap(ErrInvalidPackageSpec, "parsing pip requirement"), "spec", spec)
		return PackageSpec{}, zerr.With(err, "kind", "pip")
	}
	return PackageSpec{Name: m[1], Constraint: strings.TrimSpace(m[2])}, nil
}
