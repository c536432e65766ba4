// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"github.com/invowk/linetools/internal/textutil"

	"github.com/spf13/cobra"
)

func newEchoCommand(app *App) *cobra.Command {
	var opts textutil.EchoOptions

	cmd := &cobra.Command{
		Use:   "echo TEXT...",
		Short: "Print text separated by spaces",
		Args:  usageArgs(cobra.MinimumNArgs(1)),
		RunE: func(_ *cobra.Command, args []string) error {
			return app.runUtility(func(hc *textutil.HandlerContext) error {
				return textutil.Echo(hc.Stdout, opts, args)
			})
		},
	}

	cmd.Flags().BoolVarP(&opts.OmitNewline, "no-newline", "n", false, "do not print the trailing newline")

	return cmd
}
