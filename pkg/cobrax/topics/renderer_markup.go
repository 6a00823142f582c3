package topics

import (
	"os"

	"github.com/arthur-debert/helpdoc/pkg/document"
	"github.com/arthur-debert/helpdoc/pkg/logging"
	"github.com/arthur-debert/helpdoc/pkg/markup"
	"github.com/arthur-debert/helpdoc/pkg/style"
)

// MarkupRenderer renders help markup topics through a style
type MarkupRenderer struct {
	Mode    style.Mode
	Options style.Options
	Width   int
	// Output is inspected by style.ModeAuto; nil means not a terminal
	Output *os.File
}

// NewMarkupRenderer creates a renderer for .xml topics
func NewMarkupRenderer(mode style.Mode, opts style.Options, width int, output *os.File) *MarkupRenderer {
	return &MarkupRenderer{
		Mode:    mode,
		Options: opts,
		Width:   width,
		Output:  output,
	}
}

// Render lays out markup content. Content that fails to render is returned
// unchanged.
func (r *MarkupRenderer) Render(content string, format string) string {
	s := style.Select(document.New(), r.Options, r.Mode, r.Output)

	rendered, err := markup.Render(content, s, r.Width)
	if err != nil {
		logger := logging.GetLogger("topics")
		logger.Warn().Err(err).Str("format", format).Msg("Failed to render markup topic, showing source")
		return content
	}
	return rendered
}
