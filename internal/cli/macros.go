package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"macro-synth/internal/expand"
	"macro-synth/internal/logger"
)

// NewMacrosCommand creates the macros command.
func NewMacrosCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "macros",
		Short: "List the registered macro identities",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			cfg := GetConfig(cmd.Context())
			engine := expand.New(cfg.Engine(logger.FromContext(cmd.Context())))

			for _, name := range engine.Macros() {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), name)
			}
		},
	}
}
