package style

import (
	"fmt"
	"os"
	"strings"

	"github.com/arthur-debert/helpdoc/pkg/document"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Mode selects how the decision to emit escape sequences is made
type Mode int

const (
	// ModeAuto decides from the output's terminal capabilities
	ModeAuto Mode = iota
	// ModeANSI always emits escape sequences
	ModeANSI
	// ModePlain never emits escape sequences
	ModePlain
)

// String returns the string representation of the mode
func (m Mode) String() string {
	switch m {
	case ModeAuto:
		return "auto"
	case ModeANSI:
		return "ansi"
	case ModePlain:
		return "plain"
	default:
		return "unknown"
	}
}

// ParseMode parses a string into a Mode value
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "auto", "":
		return ModeAuto, nil
	case "ansi", "term", "terminal":
		return ModeANSI, nil
	case "plain", "text":
		return ModePlain, nil
	default:
		return ModeAuto, fmt.Errorf("unknown mode: %s", s)
	}
}

// DoANSI resolves the mode against an output file
func (m Mode) DoANSI(output *os.File) bool {
	switch m {
	case ModeANSI:
		return true
	case ModePlain:
		return false
	default:
		return Detect(output)
	}
}

// Detect reports whether output can display escape sequences
func Detect(output *os.File) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}

	if output == nil {
		return false
	}

	// Piped or redirected
	if !isatty.IsTerminal(output.Fd()) && !isatty.IsCygwinTerminal(output.Fd()) {
		return false
	}

	return termenv.ColorProfile() != termenv.Ascii
}

// Select builds the style for a rendering pass. Every mode lays text out
// with ANSIStyle so lists and headings keep their shape; the mode only
// decides whether escape sequences are emitted. BaseStyle stays available
// through New.
func Select(doc *document.Document, opts Options, mode Mode, output *os.File) Style {
	opts.DoANSI = mode.DoANSI(output)
	return NewANSIStyle(doc, opts)
}
