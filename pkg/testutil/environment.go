package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/adrg/xdg"
)

// envPrefix matches config.EnvPrefix; config imports testutil in its tests
const envPrefix = "HELPDOC_"

// TestEnvironment isolates a test from the user's XDG directories and
// helpdoc environment variables
type TestEnvironment struct {
	ConfigHome string
	StateHome  string

	t *testing.T
}

// NewTestEnvironment creates the isolated directories and reloads xdg.
// Everything is restored when the test completes.
func NewTestEnvironment(t *testing.T) *TestEnvironment {
	t.Helper()

	env := &TestEnvironment{
		ConfigHome: t.TempDir(),
		StateHome:  t.TempDir(),
		t:          t,
	}

	t.Setenv("XDG_CONFIG_HOME", env.ConfigHome)
	t.Setenv("XDG_CONFIG_DIRS", filepath.Join(env.ConfigHome, "system"))
	t.Setenv("XDG_STATE_HOME", env.StateHome)
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	t.Setenv("NO_COLOR", "")
	clearPrefixed(t, envPrefix)

	xdg.Reload()
	t.Cleanup(xdg.Reload)

	return env
}

// ConfigPath returns where helpdoc looks for the named config file
func (e *TestEnvironment) ConfigPath(name string) string {
	return filepath.Join(e.ConfigHome, "helpdoc", name)
}

// WriteConfig writes a config file into the isolated config home
func (e *TestEnvironment) WriteConfig(name, content string) string {
	e.t.Helper()
	return CreateFile(e.t, filepath.Join(e.ConfigHome, "helpdoc"), name, content)
}

// LogPath returns where helpdoc writes its log file
func (e *TestEnvironment) LogPath() string {
	return filepath.Join(e.StateHome, "helpdoc", "helpdoc.log")
}

// clearPrefixed unsets every variable starting with prefix for the
// duration of the test
func clearPrefixed(t *testing.T, prefix string) {
	t.Helper()
	for _, kv := range os.Environ() {
		key, _, _ := strings.Cut(kv, "=")
		if !strings.HasPrefix(key, prefix) {
			continue
		}
		// Setenv registers the restore, Unsetenv removes it for now
		t.Setenv(key, "")
		_ = os.Unsetenv(key)
	}
}
