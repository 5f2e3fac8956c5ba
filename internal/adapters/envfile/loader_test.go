package envfile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Global19-atlassian-net/kapsel/internal/adapters/envfile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeEnvFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Basic(t *testing.T) {
	path := writeEnvFile(t, "environment.yml", `
name: foo
dependencies:
  - numpy
  - pip:
      - flask
channels:
  - conda-forge
`)

	spec := envfile.NewLoader().Load(path)
	require.NotNil(t, spec)
	assert.Equal(t, "foo", spec.Name())
	assert.Equal(t, []string{"numpy"}, spec.CondaPackages())
	assert.Equal(t, []string{"flask"}, spec.PipPackages())
	assert.Equal(t, []string{"conda-forge"}, spec.Channels())
	assert.Empty(t, spec.InheritFromName())
	assert.Nil(t, spec.InheritFrom())
}

func TestLoad_UnreadablePathReturnsNil(t *testing.T) {
	spec := envfile.NewLoader().Load(filepath.Join(t.TempDir(), "missing.yml"))
	assert.Nil(t, spec)
}

func TestLoad_MalformedYAMLReturnsNil(t *testing.T) {
	path := writeEnvFile(t, "environment.yml", "name: [unclosed")
	assert.Nil(t, envfile.NewLoader().Load(path))
}

func TestLoad_NameFallsBackToPrefixBasename(t *testing.T) {
	path := writeEnvFile(t, "environment.yml", `
prefix: /opt/envs/myenv
dependencies:
  - numpy
`)

	spec := envfile.NewLoader().Load(path)
	require.NotNil(t, spec)
	assert.Equal(t, "myenv", spec.Name())
}

func TestLoad_NameFallsBackToFileBasename(t *testing.T) {
	path := writeEnvFile(t, "environment.yml", "dependencies:\n  - numpy\n")

	spec := envfile.NewLoader().Load(path)
	require.NotNil(t, spec)
	assert.Equal(t, "environment.yml", spec.Name())
}

func TestLoad_NonStringNameFallsBackToFileBasename(t *testing.T) {
	path := writeEnvFile(t, "environment.yml", "name: 42\ndependencies:\n  - numpy\n")

	spec := envfile.NewLoader().Load(path)
	require.NotNil(t, spec)
	assert.Equal(t, "environment.yml", spec.Name())
}

func TestLoad_LenientFieldExtraction(t *testing.T) {
	// Wrong-typed fields degrade to empty defaults; misshapen entries inside
	// otherwise valid sequences are skipped silently.
	path := writeEnvFile(t, "environment.yml", `
name: lenient
dependencies:
  - numpy
  - 42
  - [not, a, dep]
  - pip: not-a-list
  - pip:
      - flask
      - {nested: map}
channels:
  - conda-forge
  - {weird: channel}
unknown_key: ignored
`)

	spec := envfile.NewLoader().Load(path)
	require.NotNil(t, spec)
	assert.Equal(t, "lenient", spec.Name())
	assert.Equal(t, []string{"numpy"}, spec.CondaPackages())
	assert.Equal(t, []string{"flask"}, spec.PipPackages())
	assert.Equal(t, []string{"conda-forge"}, spec.Channels())
}

func TestLoad_NonSequenceDependencies(t *testing.T) {
	path := writeEnvFile(t, "environment.yml", `
name: odd
dependencies: not-a-sequence
channels: {also: wrong}
`)

	spec := envfile.NewLoader().Load(path)
	require.NotNil(t, spec)
	assert.Empty(t, spec.CondaPackages())
	assert.Empty(t, spec.PipPackages())
	assert.Empty(t, spec.Channels())
}
