// SPDX-License-Identifier: EPL-2.0

// Package cli implements the audring command line.
package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ik5/audring"
	"github.com/ik5/audring/audio"
)

// app is the state shared by every subcommand of one invocation.
type app struct {
	verbose  bool
	logger   *zap.Logger
	registry *audio.Registry
}

// NewRootCommand returns the audring command with all subcommands attached.
// The decoders come from audring.DefaultRegistry.
func NewRootCommand() *cobra.Command {
	return newRootCommand(audring.DefaultRegistry())
}

func newRootCommand(registry *audio.Registry) *cobra.Command {
	a := &app{
		logger:   zap.NewNop(),
		registry: registry,
	}

	rootCommand := &cobra.Command{
		Use:           "audring",
		Short:         "Decode, dump, compare and comb-filter audio files",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			a.logger = newLogger(cmd.ErrOrStderr(), a.verbose)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			// Sync on a terminal fails with EINVAL.
			_ = a.logger.Sync()
		},
	}

	rootCommand.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Log at DEBUG level")

	rootCommand.AddCommand(a.dumpCommand())
	rootCommand.AddCommand(a.combCommand())
	rootCommand.AddCommand(a.diffCommand())
	rootCommand.AddCommand(a.formatsCommand())

	return rootCommand
}
