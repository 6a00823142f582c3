package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTestEnvironment(t *testing.T) {
	t.Setenv("HELPDOC_MODE", "ansi")

	env := NewTestEnvironment(t)

	assert.Equal(t, env.ConfigHome, xdg.ConfigHome)
	assert.Equal(t, env.StateHome, xdg.StateHome)

	_, set := os.LookupEnv("HELPDOC_MODE")
	assert.False(t, set, "HELPDOC_ variables should be cleared")
}

func TestWriteConfig(t *testing.T) {
	env := NewTestEnvironment(t)

	path := env.WriteConfig("config.toml", "mode = \"plain\"\n")
	assert.Equal(t, env.ConfigPath("config.toml"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "mode = \"plain\"\n", string(data))

	found, err := xdg.SearchConfigFile(filepath.Join("helpdoc", "config.toml"))
	require.NoError(t, err)
	assert.Equal(t, path, found)
}

func TestCreateDir(t *testing.T) {
	dir := CreateDir(t, t.TempDir(), "a/b")
	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
