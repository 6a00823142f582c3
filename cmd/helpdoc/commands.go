package helpdoc

import (
	"fmt"
	"os"

	"github.com/arthur-debert/helpdoc/internal/version"
	"github.com/arthur-debert/helpdoc/pkg/cobrax/topics"
	"github.com/arthur-debert/helpdoc/pkg/config"
	"github.com/arthur-debert/helpdoc/pkg/errors"
	"github.com/arthur-debert/helpdoc/pkg/logging"
	"github.com/arthur-debert/helpdoc/pkg/paths"
	"github.com/arthur-debert/helpdoc/pkg/style"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	var (
		verbosity  int
		configPath string
	)

	rootCmd := &cobra.Command{
		Use:     "helpdoc",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			logging.LogCommand(cmd.Name(), args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return errors.New(errors.ErrInvalidInput, MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", MsgFlagConfig)

	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newRenderCmd())
	rootCmd.AddCommand(newDumpCmd())
	rootCmd.AddCommand(newGenConfigCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	initTopics(rootCmd)

	return rootCmd
}

// initTopics wires the topic-based help system to the first topics
// directory that exists
func initTopics(rootCmd *cobra.Command) {
	// Topics are rendered with the defaults; flags are not parsed yet.
	cfg := config.Default()
	mode := style.ModeAuto
	doANSI := mode.DoANSI(os.Stdout)

	heading := lipgloss.NewStyle()
	if doANSI {
		heading = heading.Bold(true)
	}

	for _, helpPath := range paths.TopicDirs() {
		if _, err := os.Stat(helpPath); err != nil {
			continue
		}

		opts := topics.Options{
			Renderer: &topics.FormatRenderer{
				Renderers: map[string]topics.Renderer{
					".md":  &topics.GlamourRenderer{Style: "auto", NoColor: !doANSI},
					".xml": topics.NewMarkupRenderer(mode, cfg.StyleOptions(doANSI), terminalWidth(os.Stdout, cfg.Width), os.Stdout),
				},
			},
			Heading: heading,
		}

		if err := topics.InitializeWithOptions(rootCmd, helpPath, opts); err == nil {
			log.Debug().Str("path", helpPath).Msg("Help topics loaded")
			break
		}
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(cmd.OutOrStdout())
			case "zsh":
				return cmd.Root().GenZshCompletion(cmd.OutOrStdout())
			case "fish":
				return cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true)
			default:
				return cmd.Root().GenPowerShellCompletionWithDesc(cmd.OutOrStdout())
			}
		},
	}
}
