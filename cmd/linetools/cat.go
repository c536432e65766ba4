// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"github.com/invowk/linetools/internal/textutil"

	"github.com/spf13/cobra"
)

func newCatCommand(app *App) *cobra.Command {
	var opts textutil.CatOptions

	cmd := &cobra.Command{
		Use:   "cat [FILE...]",
		Short: "Concatenate files, optionally numbering lines",
		Long: `Concatenate FILEs to standard output. With no FILE, or when FILE is -,
read standard input.

Line numbers continue across files. -b numbers only non-blank lines and
takes precedence over -n.`,
		RunE: func(_ *cobra.Command, args []string) error {
			return app.runUtility(func(hc *textutil.HandlerContext) error {
				return textutil.Cat(hc, opts, args)
			})
		},
	}

	cmd.Flags().BoolVarP(&opts.Number, "number", "n", false, "number all output lines")
	cmd.Flags().BoolVarP(&opts.NumberNonblank, "number-nonblank", "b", false, "number non-blank output lines")

	return cmd
}
