package helpdoc

import (
	"fmt"

	"github.com/arthur-debert/helpdoc/pkg/document"
	"github.com/arthur-debert/helpdoc/pkg/errors"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// dumpDocument is the top level of the dump output
type dumpDocument struct {
	Paragraphs []document.ParagraphData `yaml:"paragraphs" toml:"paragraphs"`
}

func newDumpCmd() *cobra.Command {
	var (
		flags  renderFlags
		format string
	)

	cmd := &cobra.Command{
		Use:   "dump [file]",
		Short: MsgDumpShort,
		Long:  MsgDumpLong,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "yaml" && format != "toml" {
				return errors.Newf(errors.ErrInvalidInput, MsgErrUnknownFormat, format)
			}

			cfg, err := loadConfig(cmd, &flags)
			if err != nil {
				return err
			}

			input, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			s, err := buildDocument(input, cfg, outputFile(cmd))
			if err != nil {
				return err
			}

			dump := dumpDocument{Paragraphs: s.Document().Data()}
			w := cmd.OutOrStdout()

			if format == "toml" {
				if err := toml.NewEncoder(w).Encode(dump); err != nil {
					return errors.Wrap(err, errors.ErrRender, "failed to encode toml")
				}
				return nil
			}

			enc := yaml.NewEncoder(w)
			enc.SetIndent(2)
			if err := enc.Encode(dump); err != nil {
				return errors.Wrap(err, errors.ErrRender, "failed to encode yaml")
			}
			if err := enc.Close(); err != nil {
				return fmt.Errorf("failed to flush yaml: %w", err)
			}
			return nil
		},
	}

	addRenderFlags(cmd.Flags(), &flags)
	cmd.Flags().StringVarP(&format, "format", "f", "yaml", MsgFlagFormat)
	return cmd
}
