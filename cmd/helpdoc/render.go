package helpdoc

import (
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/helpdoc/pkg/config"
	"github.com/arthur-debert/helpdoc/pkg/document"
	"github.com/arthur-debert/helpdoc/pkg/errors"
	"github.com/arthur-debert/helpdoc/pkg/logging"
	"github.com/arthur-debert/helpdoc/pkg/markup"
	"github.com/arthur-debert/helpdoc/pkg/style"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"
)

// defaultWidth is used when neither the config nor the terminal give a width
const defaultWidth = 80

// renderFlags are shared by the commands that lay out a document
type renderFlags struct {
	mode        string
	width       int
	indentWidth int
}

func addRenderFlags(fs *pflag.FlagSet, f *renderFlags) {
	fs.StringVarP(&f.mode, "mode", "m", "auto", MsgFlagMode)
	fs.IntVarP(&f.width, "width", "w", 0, MsgFlagWidth)
	fs.IntVar(&f.indentWidth, "indent-width", style.DefaultIndentWidth, MsgFlagIndentWidth)
}

// overrides returns the flags the user actually set, keyed like the config file
func (f *renderFlags) overrides(fs *pflag.FlagSet) map[string]any {
	out := make(map[string]any)
	if fs.Changed("mode") {
		out["mode"] = f.mode
	}
	if fs.Changed("width") {
		out["width"] = f.width
	}
	if fs.Changed("indent-width") {
		out["indent_width"] = f.indentWidth
	}
	return out
}

func loadConfig(cmd *cobra.Command, f *renderFlags) (*config.Config, error) {
	path, _ := cmd.Root().PersistentFlags().GetString("config")
	return config.Load(config.Options{
		Path:      path,
		Overrides: f.overrides(cmd.Flags()),
	})
}

// readInput reads the named file, or the command's stdin when args is empty
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", errors.Wrapf(err, errors.ErrFileAccess, MsgErrReadInput, "standard input")
		}
		return string(data), nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrFileAccess, MsgErrReadInput, args[0])
	}
	return string(data), nil
}

// outputFile returns the command's output when it is a file, for terminal detection
func outputFile(cmd *cobra.Command) *os.File {
	if f, ok := cmd.OutOrStdout().(*os.File); ok {
		return f
	}
	return nil
}

// terminalWidth picks the wrap width: the configured one, else the
// terminal's, else defaultWidth
func terminalWidth(f *os.File, configured int) int {
	if configured > 0 {
		return configured
	}
	if f != nil && term.IsTerminal(int(f.Fd())) {
		if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
			return w
		}
	}
	return defaultWidth
}

// buildDocument parses input into a fresh document using the configured style
func buildDocument(input string, cfg *config.Config, out *os.File) (style.Style, error) {
	s := style.Select(document.New(), cfg.StyleOptions(false), cfg.StyleMode(), out)
	if err := markup.NewWalker(s).Feed(input); err != nil {
		return nil, err
	}
	return s, nil
}

func newRenderCmd() *cobra.Command {
	var flags renderFlags

	cmd := &cobra.Command{
		Use:     "render [file]",
		Short:   MsgRenderShort,
		Long:    MsgRenderLong,
		Example: MsgRenderExample,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.render")

			cfg, err := loadConfig(cmd, &flags)
			if err != nil {
				return err
			}

			input, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			out := outputFile(cmd)
			width := terminalWidth(out, cfg.Width)
			logger.Debug().
				Str("mode", cfg.Mode).
				Int("width", width).
				Int("indentWidth", cfg.IndentWidth).
				Msg("Rendering help document")

			done := logging.LogOperationStart(logger, "render")
			s, err := buildDocument(input, cfg, out)
			done()
			if err != nil {
				return err
			}

			rendered := s.Document().Render(width, s.Options().IndentWidth)
			_, err = fmt.Fprint(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	addRenderFlags(cmd.Flags(), &flags)
	return cmd
}
