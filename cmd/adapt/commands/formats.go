// Copyright © 2025 tjj
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/china-tjj/adapt"
)

func formatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "Print the date patterns in matching order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "#\tPATTERN\tLAYOUT\tREGEXP")
			for i, format := range adapt.DateFormats() {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", i+1, format.Pattern, format.Layout, format.Regexp)
			}
			return w.Flush()
		},
	}
}

func adaptersCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "adapters",
		Short: "Print the registered adapters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "FROM\tTO\t")
			for _, entry := range opts.registry.Entries() {
				state := ""
				if entry.Disabled {
					state = "disabled"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\n", entry.From, entry.To, state)
			}
			return w.Flush()
		},
	}
}
