// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"github.com/invowk/linetools/internal/textutil"

	"github.com/spf13/cobra"
)

func newUniqCommand(app *App) *cobra.Command {
	var opts textutil.UniqOptions

	cmd := &cobra.Command{
		Use:   "uniq [INPUT [OUTPUT]]",
		Short: "Collapse adjacent repeated lines",
		Long: `Collapse adjacent matching lines of INPUT (default standard input),
writing to OUTPUT (default standard output). Lines that differ only in
trailing whitespace match.

Unlike the other utilities, an INPUT that cannot be opened is an error.`,
		Args: usageArgs(cobra.MaximumNArgs(2)),
		RunE: func(_ *cobra.Command, args []string) error {
			var input, output string
			if len(args) > 0 {
				input = args[0]
			}
			if len(args) > 1 {
				output = args[1]
			}

			return app.runUtility(func(hc *textutil.HandlerContext) error {
				return textutil.Uniq(hc, opts, input, output)
			})
		},
	}

	cmd.Flags().BoolVarP(&opts.Count, "count", "c", false, "prefix lines by the number of occurrences")
	cmd.Flags().BoolVarP(&opts.Repeated, "repeated", "d", false, "only print duplicate lines, one for each group")
	cmd.Flags().BoolVarP(&opts.Unique, "unique", "u", false, "only print unique lines")
	cmd.Flags().BoolVarP(&opts.IgnoreCase, "ignore-case", "i", false, "ignore differences in case when comparing")

	return cmd
}
