package domain_test

import (
	"testing"

	"github.com/Global19-atlassian-net/kapsel/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCondaSpec(t *testing.T) {
	tests := []struct {
		spec       string
		name       string
		constraint string
	}{
		{"numpy", "numpy", ""},
		{"numpy=1.24", "numpy", "=1.24"},
		{"numpy=1.24=py311_0", "numpy", "=1.24=py311_0"},
		{"python>=3.9", "python", ">=3.9"},
		{"zope.interface", "zope.interface", ""},
		{"ruamel_yaml", "ruamel_yaml", ""},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			parsed, err := domain.ParseCondaSpec(tt.spec)
			require.NoError(t, err)
			assert.Equal(t, tt.name, parsed.Name)
			assert.Equal(t, tt.constraint, parsed.Constraint)
		})
	}
}

func TestParseCondaSpec_Invalid(t *testing.T) {
	for _, spec := range []string{"", "=1.0", "  ", "foo bar"} {
		t.Run(spec, func(t *testing.T) {
			_, err := domain.ParseCondaSpec(spec)
			require.ErrorIs(t, err, domain.ErrInvalidPackageSpec)
		})
	}
}

func TestParsePipSpec(t *testing.T) {
	tests := []struct {
		spec       string
		name       string
		constraint string
	}{
		{"flask", "flask", ""},
		{"flask==2.3.2", "flask", "==2.3.2"},
		{"Flask>=1.0,<3.0", "Flask", ">=1.0,<3.0"},
		{"typing-extensions~=4.7", "typing-extensions", "~=4.7"},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			parsed, err := domain.ParsePipSpec(tt.spec)
			require.NoError(t, err)
			assert.Equal(t, tt.name, parsed.Name)
			assert.Equal(t, tt.constraint, parsed.Constraint)
		})
	}
}

func TestParsePipSpec_Invalid(t *testing.T) {
	for _, spec := range []string{"", ">=1.0", "flask =="} {
		t.Run(spec, func(t *testing.T) {
			_, err := domain.ParsePipSpec(spec)
			require.ErrorIs(t, err, domain.ErrInvalidPackageSpec)
		})
	}
}
