package init

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dwomick/adoc-mode/internal/config"
)

func TestRunInit_Defaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	require.NoError(t, runInit("", "", true))

	cfg, err := config.Load(config.DefaultConfigPath())
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestRunInit_PrefillFormat(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	require.NoError(t, runInit("", "json", true))

	cfg, err := config.Load(config.DefaultConfigPath())
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.OutputFormat)
}

func TestRunInit_RejectsBadPrefill(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	err := runInit("", "yaml", true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")

	_, statErr := os.Stat(config.DefaultConfigPath())
	assert.True(t, os.IsNotExist(statErr))
}

func TestConfigFilePermissions_DirectoryCreation(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "nested", "deeply", "config.yml")

	// Save should create the directory structure
	require.NoError(t, config.Default().Save(configPath))

	_, err := os.Stat(configPath)
	require.NoError(t, err)

	dirInfo, err := os.Stat(filepath.Dir(configPath))
	require.NoError(t, err)
	assert.True(t, dirInfo.IsDir())
}

func TestNewCmdInit_Flags(t *testing.T) {
	cmd := NewCmdInit()

	assert.Equal(t, "init", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)

	formatFlag := cmd.Flags().Lookup("output-format")
	require.NotNil(t, formatFlag)
	assert.Equal(t, "", formatFlag.DefValue)

	defaultsFlag := cmd.Flags().Lookup("defaults")
	require.NotNil(t, defaultsFlag)
	assert.Equal(t, "false", defaultsFlag.DefValue)
}
