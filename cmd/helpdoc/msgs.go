package helpdoc

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Render CLI help documents for the terminal"
	MsgRenderShort     = "Render a help document"
	MsgDumpShort       = "Print the paragraph model of a help document"
	MsgGenConfigShort  = "Write a configuration file with the default settings"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Flag descriptions
	MsgFlagVerbose     = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig      = "Config file (default $XDG_CONFIG_HOME/helpdoc/config.toml)"
	MsgFlagMode        = "Decoration mode: auto, ansi or plain"
	MsgFlagWidth       = "Wrap width in columns (0 uses the terminal width)"
	MsgFlagIndentWidth = "Spaces per indentation level"
	MsgFlagFormat      = "Output format: yaml or toml"
	MsgFlagForce       = "Overwrite an existing config file"
	MsgFlagStdout      = "Print the config instead of writing it"

	// Status messages
	MsgConfigWritten = "Wrote %s\n"
	MsgVersionFormat = "helpdoc version %s\n  commit: %s\n  built:  %s\n"

	// Error messages
	MsgErrNoCommand     = "no command specified"
	MsgErrReadInput     = "failed to read %s"
	MsgErrUnknownFormat = "unknown dump format %q"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/render-long.txt
	msgRenderLongRaw string
	MsgRenderLong    = strings.TrimSpace(msgRenderLongRaw)

	//go:embed msgs/render-example.txt
	msgRenderExampleRaw string
	MsgRenderExample    = strings.TrimRight(msgRenderExampleRaw, "\n")

	//go:embed msgs/dump-long.txt
	msgDumpLongRaw string
	MsgDumpLong    = strings.TrimSpace(msgDumpLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw) + "\n"
)
