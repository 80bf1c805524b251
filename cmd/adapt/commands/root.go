// Copyright © 2025 tjj
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package commands

import (
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/china-tjj/adapt"
)

type options struct {
	verbose  bool
	location string
	registry *adapt.Registry
}

// NewRootCmd builds the command tree. The registry is created before any
// subcommand runs.
func NewRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "adapt",
		Short:         "Convert text to typed values with the adapt registry",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelWarn
			if opts.verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

			loc := time.Local
			if opts.location != "" {
				var err error
				if loc, err = time.LoadLocation(opts.location); err != nil {
					return err
				}
			}
			opts.registry = adapt.NewRegistry(adapt.WithLogger(logger), adapt.WithLocation(loc))
			return nil
		},
	}

	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log registry activity at debug level")
	root.PersistentFlags().StringVar(&opts.location, "location", "", "time zone for date parsing (default local)")

	root.AddCommand(convertCmd(opts), formatsCmd(), adaptersCmd(opts))
	return root
}

func Execute() error {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		slog.New(slog.NewTextHandler(os.Stderr, nil)).Error("adapt failed", slog.Any("err", err))
		return err
	}
	return nil
}
