// Package paths provides centralized path handling for helpdoc.
// Every file helpdoc reads or writes outside the current directory is
// located through the XDG Base Directory specification.
package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// Default directories and files
const (
	// AppDirName is the directory helpdoc uses inside each XDG base directory
	AppDirName = "helpdoc"

	// ConfigFileName is the config file genconfig writes
	ConfigFileName = "config.toml"

	// LogFileName is the name of the log file
	LogFileName = "helpdoc.log"

	// TopicsDirName is the directory of help topic files
	TopicsDirName = "topics"

	// EnvTopicsDir points at an explicit topics directory
	EnvTopicsDir = "HELPDOC_TOPICS"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// ConfigFileNames are searched in order by FindConfigFile
var ConfigFileNames = []string{"config.toml", "config.yaml", "config.yml"}

// ConfigDir returns $XDG_CONFIG_HOME/helpdoc
func ConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppDirName)
}

// ConfigFile returns the path genconfig writes to
func ConfigFile() string {
	return filepath.Join(ConfigDir(), ConfigFileName)
}

// FindConfigFile returns the first helpdoc config file in the XDG config
// directories, or "" when there is none
func FindConfigFile() string {
	for _, name := range ConfigFileNames {
		if path, err := xdg.SearchConfigFile(filepath.Join(AppDirName, name)); err == nil {
			return path
		}
	}
	return ""
}

// LogFilePath returns the path to the helpdoc log file.
// Respects XDG_STATE_HOME if set.
func LogFilePath() string {
	return filepath.Join(xdg.StateHome, AppDirName, LogFileName)
}

// TopicDirs lists the directories that may hold help topics, most
// specific first. Existence is not checked.
func TopicDirs() []string {
	var dirs []string
	if dir := os.Getenv(EnvTopicsDir); dir != "" {
		dirs = append(dirs, ExpandHome(dir))
	}
	if exe, err := os.Executable(); err == nil {
		dirs = append(dirs,
			filepath.Join(filepath.Dir(exe), TopicsDirName),
			filepath.Join(filepath.Dir(exe), "..", "..", "cmd", "helpdoc", TopicsDirName),
		)
	}
	dirs = append(dirs,
		filepath.Join(xdg.DataHome, AppDirName, TopicsDirName),
		filepath.Join("cmd", "helpdoc", TopicsDirName),
	)
	return dirs
}

// ExpandHome expands a leading ~ to the home directory
func ExpandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Fallback to HOME env var
		homeDir = os.Getenv(EnvHome)
		if homeDir == "" {
			// Can't expand, return as-is
			return path
		}
	}

	if len(path) == 1 {
		return homeDir
	}

	// Handle both ~/ and ~
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:])
	}

	// ~something (not the user's home)
	return path
}
