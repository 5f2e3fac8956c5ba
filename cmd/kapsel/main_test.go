package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
}

func TestRun(t *testing.T) {
	const projectContent = `
env_specs:
  default:
    packages:
      - numpy
    channels:
      - conda-forge
`

	tests := []struct {
		name         string
		setup        func(t *testing.T, dir string)
		args         []string
		expectedExit int
	}{
		{
			name: "check with in-sync project",
			setup: func(t *testing.T, dir string) {
				writeFile(t, dir, "kapsel.yml", projectContent)
			},
			args:         []string{"check"},
			expectedExit: 0,
		},
		{
			name: "check with drifted environment file",
			setup: func(t *testing.T, dir string) {
				writeFile(t, dir, "kapsel.yml", projectContent)
				writeFile(t, dir, "environment.yml", `
name: default
dependencies:
  - numpy
  - pandas
channels:
  - conda-forge
`)
			},
			args:         []string{"check"},
			expectedExit: 1,
		},
		{
			name:         "check with missing project file",
			setup:        func(t *testing.T, dir string) {},
			args:         []string{"check"},
			expectedExit: 1,
		},
		{
			name: "envs lists specs",
			setup: func(t *testing.T, dir string) {
				writeFile(t, dir, "kapsel.yml", projectContent)
			},
			args:         []string{"envs"},
			expectedExit: 0,
		},
		{
			name:         "version",
			setup:        func(t *testing.T, dir string) {},
			args:         []string{"version"},
			expectedExit: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			tt.setup(t, dir)

			exit := run(append(tt.args, "--project", dir))
			assert.Equal(t, tt.expectedExit, exit)
		})
	}
}
