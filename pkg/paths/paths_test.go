package paths

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/helpdoc/pkg/testutil"
	"github.com/stretchr/testify/assert"
)

func TestXDGLocations(t *testing.T) {
	env := testutil.NewTestEnvironment(t)

	assert.Equal(t, filepath.Join(env.ConfigHome, "helpdoc"), ConfigDir())
	assert.Equal(t, env.ConfigPath("config.toml"), ConfigFile())
	assert.Equal(t, env.LogPath(), LogFilePath())
}

func TestFindConfigFile(t *testing.T) {
	env := testutil.NewTestEnvironment(t)

	assert.Empty(t, FindConfigFile())

	yamlPath := env.WriteConfig("config.yaml", "mode: plain\n")
	assert.Equal(t, yamlPath, FindConfigFile())

	// toml is preferred over yaml
	tomlPath := env.WriteConfig("config.toml", "mode = \"plain\"\n")
	assert.Equal(t, tomlPath, FindConfigFile())
}

func TestTopicDirs(t *testing.T) {
	testutil.NewTestEnvironment(t)

	dirs := TopicDirs()
	assert.Equal(t, filepath.Join("cmd", "helpdoc", "topics"), dirs[len(dirs)-1])

	t.Setenv(EnvTopicsDir, "/opt/helpdoc/topics")
	assert.Equal(t, "/opt/helpdoc/topics", TopicDirs()[0])
}

func TestExpandHome(t *testing.T) {
	t.Setenv("HOME", "/home/someone")

	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"/abs/path", "/abs/path"},
		{"relative", "relative"},
		{"~", "/home/someone"},
		{"~/config.toml", "/home/someone/config.toml"},
		{"~other/x", "~other/x"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ExpandHome(tt.in), tt.in)
	}
}
