// Package cli wires the counting library into a cobra command tree. Every
// command is a constructor taking the shared RootOptions, writes through
// cmd.OutOrStdout() so tests can capture output, and returns errors instead
// of printing them (the root silences cobra's own reporting; main owns the
// exit path).
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// RootOptions holds the global flags and the logger shared by all commands.
type RootOptions struct {
	Verbose bool

	// Logger is built by the root's PersistentPreRunE; subcommands
	// constructed standalone (as tests do) may leave it nil and get
	// no-op logging downstream.
	Logger *zap.Logger
}

// NewRootCommand assembles the monotone CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "monotone",
		Short: "Exact counting of non-monotone sequences",
		Long: `monotone counts, exactly, the length-l sequences over an ordered
n-symbol alphabet that are neither non-decreasing nor non-increasing.

Three independent strategies (closed form, dynamic-programming reducer,
brute-force enumeration) compute the same arbitrary-precision integer;
the verify command cross-checks them against each other.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config := zap.NewProductionConfig()
			if opts.Verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}

			logger, err := config.Build()
			if err != nil {
				return fmt.Errorf("initialize logger: %w", err)
			}
			opts.Logger = logger

			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.Logger != nil {
				_ = opts.Logger.Sync()
			}
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false,
		"enable debug logging")

	cmd.AddCommand(NewCountCommand(opts))
	cmd.AddCommand(NewClassifyCommand(opts))
	cmd.AddCommand(NewVerifyCommand(opts))
	cmd.AddCommand(NewBenchCommand(opts))

	return cmd
}

// logger returns the shared logger, or a no-op one when the command runs
// outside the root's PersistentPreRunE (standalone construction in tests).
func (o *RootOptions) logger() *zap.Logger {
	if o == nil || o.Logger == nil {
		return zap.NewNop()
	}

	return o.Logger
}
