package logger_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/Global19-atlassian-net/kapsel/internal/adapters/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_Output(t *testing.T) {
	log := logger.New()
	concrete, ok := log.(*logger.Logger)
	require.True(t, ok)

	var buf bytes.Buffer
	concrete.SetOutput(&buf)

	log.Info("loaded project")
	log.Warn("spec drift detected")
	log.Error(errors.New("boom"))

	out := buf.String()
	assert.Contains(t, out, "level=INFO")
	assert.Contains(t, out, "loaded project")
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "spec drift detected")
	assert.Contains(t, out, "level=ERROR")
	assert.Contains(t, out, "boom")
}
