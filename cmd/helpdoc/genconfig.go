package helpdoc

import (
	"fmt"

	"github.com/arthur-debert/helpdoc/pkg/config"
	"github.com/arthur-debert/helpdoc/pkg/paths"
	"github.com/spf13/cobra"
)

func newGenConfigCmd() *cobra.Command {
	var (
		force  bool
		stdout bool
	)

	cmd := &cobra.Command{
		Use:   "genconfig",
		Short: MsgGenConfigShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if stdout {
				data, err := config.Generate(config.Default())
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}

			path, _ := cmd.Root().PersistentFlags().GetString("config")
			path = paths.ExpandHome(path)
			if path == "" {
				path = config.DefaultPath()
			}
			if err := config.WriteFile(path, config.Default(), force); err != nil {
				return err
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), MsgConfigWritten, path)
			return err
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, MsgFlagForce)
	cmd.Flags().BoolVar(&stdout, "stdout", false, MsgFlagStdout)
	return cmd
}
