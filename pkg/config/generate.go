package config

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/arthur-debert/helpdoc/pkg/errors"
	"github.com/arthur-debert/helpdoc/pkg/paths"
	toml "github.com/pelletier/go-toml/v2"
)

// Default returns the configuration used when no source overrides anything
func Default() *Config {
	return &Config{
		Mode:        "auto",
		Width:       0,
		IndentWidth: 4,
		Extra:       map[string]any{},
	}
}

// Generate renders cfg as a TOML config file
func Generate(cfg *Config) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("# helpdoc configuration\n\n")

	enc := toml.NewEncoder(&buf)
	if err := enc.Encode(cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode config")
	}
	return buf.Bytes(), nil
}

// DefaultPath is where a generated config file goes
func DefaultPath() string {
	return paths.ConfigFile()
}

// WriteFile writes cfg to path, refusing to replace an existing file
// unless force is set
func WriteFile(path string, cfg *Config, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return errors.Newf(errors.ErrFileWrite, "%s already exists", path).WithDetail("path", path)
	}

	data, err := Generate(cfg)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to create %s", filepath.Dir(path))
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", path)
	}
	return nil
}
