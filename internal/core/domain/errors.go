package domain

import "go.trai.ch/zerr"

var (
	// ErrEmptyName is returned when constructing an env spec without a name.
	ErrEmptyName = zerr.New("env spec name must not be empty")

	// ErrInheritanceMismatch is returned when a resolved parent spec is supplied
	// whose name does not agree with the declared inherit_from name.
	ErrInheritanceMismatch = zerr.New("resolved parent does not match inherit_from name")

	// ErrInvalidPackageSpec is returned when a package spec string cannot be parsed.
	ErrInvalidPackageSpec = zerr.New("invalid package spec")

	// ErrEnvSpecNotFound is returned when a requested env spec is not in the project.
	ErrEnvSpecNotFound = zerr.New("env spec not found")

	// ErrSpecsOutOfSync is reported when an external environment file describes
	// an env spec the project does not know about in its current form.
	ErrSpecsOutOfSync = zerr.New("environment file out of sync with project")
)
