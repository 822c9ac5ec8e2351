// SPDX-License-Identifier: MIT

// Package cli implements the histalg command tree.
package cli

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
)

// RootOptions holds global flags and what PersistentPreRunE derives from
// them.
type RootOptions struct {
	ConfigPath string
	LogLevel   string

	Config Config
	Logger *slog.Logger
}

// NewRootCommand creates the root command.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "histalg",
		Short: "Evaluate operations on prebinned histograms",
		Long: `Project, slice and normalize prebinned histograms with their
covariance matrices, and print the results as JSON.`,
		SilenceUsage:  true,
		SilenceErrors: true, // main reports the error
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level, err := parseLevel(opts.LogLevel)
			if err != nil {
				return err
			}
			opts.Logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
			if opts.ConfigPath == "" {
				return nil
			}
			if opts.Config, err = LoadConfig(opts.ConfigPath); err != nil {
				return err
			}
			opts.Logger.Debug("config.loaded", "path", opts.ConfigPath, "labels", len(opts.Config.Labels))

			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "YAML file with labels, radial axes and clip ranges")
	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "warn", "log level (debug|info|warn|error)")

	cmd.AddCommand(NewEvalCommand(opts))
	cmd.AddCommand(NewBinningCommand(opts))
	cmd.AddCommand(NewMatrixCommand(opts))
	cmd.AddCommand(NewNameCommand(opts))

	return cmd
}

func parseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", s)
	}

	return l, nil
}
