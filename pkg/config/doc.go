// Package config loads helpdoc's rendering options.
//
// Sources are layered, later ones overriding earlier ones:
//
//  1. embedded defaults (embedded/defaults.toml)
//  2. the user config file, $XDG_CONFIG_HOME/helpdoc/config.{toml,yaml,yml},
//     or the file given explicitly
//  3. HELPDOC_* environment variables (HELPDOC_INDENT_WIDTH=2)
//  4. overrides passed by the caller, normally changed command-line flags
//
// Keys helpdoc does not know are kept in Config.Extra.
package config
