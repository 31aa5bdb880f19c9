package configcmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dwomick/adoc-mode/internal/config"
)

func TestRunClear_RemovesFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	path := config.DefaultConfigPath()
	require.NoError(t, config.Default().Save(path))

	require.NoError(t, runClear("", true))

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestRunClear_ExplicitPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "custom.yml")
	require.NoError(t, config.Default().Save(path))

	require.NoError(t, runClear(path, true))

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestRunClear_NoFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(t.TempDir(), "empty"))
	require.NoError(t, runClear("", true))
}
