package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/plus3/blockfall/internal/config"
)

// NewConfigCommand creates the config command.
func NewConfigCommand(rootOpts *RootOptions) *cobra.Command {
	var showPath bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long: `Print the configuration after defaults, the config file, BLOCKFALL_*
environment variables and flags are merged. The output is valid
config.yaml content.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if showPath {
				fmt.Fprintln(cmd.OutOrStdout(), config.Dir())
				return nil
			}
			out, err := rootOpts.Config.YAML()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}

	cmd.Flags().BoolVar(&showPath, "path", false, "print the config directory instead")
	addScoresFlags(cmd)

	return cmd
}
