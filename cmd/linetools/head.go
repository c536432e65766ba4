// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/invowk/linetools/internal/config"
	"github.com/invowk/linetools/internal/textutil"

	"github.com/spf13/cobra"
)

func newHeadCommand(app *App) *cobra.Command {
	var opts textutil.HeadOptions

	cmd := &cobra.Command{
		Use:   "head [FILE...]",
		Short: "Print the first lines or bytes of files",
		Long: `Print the first lines of each FILE. With more than one FILE, precede
each with a "==> FILE <==" header. With no FILE, or when FILE is -, read
standard input.

The default line count comes from head.lines in the configuration.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			linesSet := cmd.Flags().Changed("lines")
			opts.ByteMode = cmd.Flags().Changed("bytes")
			if linesSet && opts.ByteMode {
				return usageError(fmt.Errorf("head: %w", textutil.ErrConflictingFlags))
			}
			if !linesSet {
				opts.Lines = app.cfg.Head.Lines
			}

			return app.runUtility(func(hc *textutil.HandlerContext) error {
				return textutil.Head(hc, opts, args)
			})
		},
	}

	cmd.Flags().Int64VarP(&opts.Lines, "lines", "n", config.DefaultHeadLines, "print the first NUM lines")
	cmd.Flags().Int64VarP(&opts.Bytes, "bytes", "c", 0, "print the first NUM bytes")

	return cmd
}
