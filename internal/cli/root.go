// Package cli provides the command-line interface for macro-synth.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"macro-synth/internal/config"
	"macro-synth/internal/logger"
)

// Version information (set at build time).
var (
	Version   = "0.1.0"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// ErrExpansionFailed is returned when at least one request failed or
// produced an error diagnostic. The details have already been reported.
var ErrExpansionFailed = errors.New("expansion produced errors")

// configKey is used to store config in context.
type configKey struct{}

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "macro-synth",
		Short: "Compile-time code synthesis for annotated declarations",
		Long: `macro-synth expands macro usages into generated source.

Requests come either from YAML/TOML request files (expand) or from
//synth: directives in Go packages (scan).`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfg, err := config.Load(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}

			lc := cfg.Logger()
			lc.Output = cmd.ErrOrStderr()
			log := logger.NewLogger(lc)

			if cfg.FileUsed != "" {
				log.Debug("using config file", "path", cfg.FileUsed)
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			ctx = context.WithValue(ctx, configKey{}, cfg)
			ctx = logger.ContextWithLogger(ctx, log)
			cmd.SetContext(ctx)

			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate(`{{.Name}} {{.Version}}
`)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default: ./macro-synth.yaml)")
	flags.String("log-level", "info", "Log level (debug|info|warn|error|disabled)")
	flags.StringP("output", "o", config.OutputText, "Output format (text|yaml)")
	flags.String("color", config.ColorAuto, "Colorize diagnostics (auto|on|off)")
	flags.IntP("jobs", "j", 0, "Concurrent expansions (0 means GOMAXPROCS)")
	flags.String("out-dir", "", "Write one file per expansion into this directory")
	flags.Bool("dump", false, "Dump loaded requests at debug level")

	_ = rootCmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{config.OutputText, config.OutputYAML}, cobra.ShellCompDirectiveNoFileComp
	})
	_ = rootCmd.RegisterFlagCompletionFunc("color", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{config.ColorAuto, config.ColorOn, config.ColorOff}, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(NewExpandCommand())
	rootCmd.AddCommand(NewScanCommand())
	rootCmd.AddCommand(NewMacrosCommand())
	rootCmd.AddCommand(NewVersionCommand())

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, ErrExpansionFailed) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}

		return err
	}

	return nil
}

// GetConfig retrieves the config from the command context.
func GetConfig(ctx context.Context) *config.Config {
	if c, ok := ctx.Value(configKey{}).(*config.Config); ok {
		return c
	}

	return config.Default()
}
