package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/helpdoc/pkg/errors"
	"github.com/arthur-debert/helpdoc/pkg/logging"
	"github.com/arthur-debert/helpdoc/pkg/paths"
	"github.com/arthur-debert/helpdoc/pkg/style"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes every environment variable helpdoc reads
const EnvPrefix = "HELPDOC_"

// Config holds the rendering options
type Config struct {
	Mode        string         `koanf:"mode" toml:"mode" yaml:"mode"`
	Width       int            `koanf:"width" toml:"width" yaml:"width"`
	IndentWidth int            `koanf:"indent_width" toml:"indent_width" yaml:"indent_width"`
	Extra       map[string]any `koanf:"-" toml:"-" yaml:"-"`
}

var knownKeys = map[string]bool{
	"mode":         true,
	"width":        true,
	"indent_width": true,
}

// Options tells Load where to look
type Options struct {
	// Path is an explicit config file. When empty the XDG config
	// directories are searched.
	Path string
	// Overrides are applied last, keyed like the config file
	Overrides map[string]any
}

// Load reads the layered configuration
func Load(opts Options) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	path := paths.ExpandHome(opts.Path)
	if path == "" {
		path = paths.FindConfigFile()
	} else if _, err := os.Stat(path); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "cannot read config file %s", path)
	}

	if path != "" {
		parser := koanf.Parser(toml.Parser())
		switch strings.ToLower(filepath.Ext(path)) {
		case ".yaml", ".yml":
			parser = yaml.Parser()
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path)
		}
		logger.Debug().Str("path", path).Msg("Loaded config file")
	}

	// An empty key makes the provider skip the variable
	envProvider := env.Provider(EnvPrefix, ".", func(s string) string {
		if s == paths.EnvTopicsDir {
			return ""
		}
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment")
	}

	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to decode config")
	}

	cfg.Extra = make(map[string]any)
	for _, key := range k.Keys() {
		if !knownKeys[key] {
			cfg.Extra[key] = k.Get(key)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks value ranges
func (c *Config) Validate() error {
	if c.IndentWidth < 0 {
		return errors.Newf(errors.ErrConfigValid, "indent_width must not be negative, got %d", c.IndentWidth).
			WithDetail("indent_width", c.IndentWidth)
	}
	if c.Width < 0 {
		return errors.Newf(errors.ErrConfigValid, "width must not be negative, got %d", c.Width).
			WithDetail("width", c.Width)
	}
	if _, err := style.ParseMode(c.Mode); err != nil {
		return errors.Wrap(err, errors.ErrConfigValid, "invalid mode")
	}
	return nil
}

// StyleMode returns the parsed mode. Validate has already rejected bad values.
func (c *Config) StyleMode() style.Mode {
	mode, _ := style.ParseMode(c.Mode)
	return mode
}

// StyleOptions builds the options for a style instance
func (c *Config) StyleOptions(doANSI bool) style.Options {
	return style.Options{
		IndentWidth: c.IndentWidth,
		DoANSI:      doANSI,
		Extra:       c.Extra,
	}
}
