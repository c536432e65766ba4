// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"github.com/invowk/linetools/internal/textutil"

	"github.com/spf13/cobra"
)

func newWcCommand(app *App) *cobra.Command {
	var opts textutil.WcOptions

	cmd := &cobra.Command{
		Use:   "wc [FILE...]",
		Short: "Print line, word, character and byte counts",
		Long: `Print line, word, character and byte counts for each FILE, and a total
row when more than one FILE is given. With no FILE, or when FILE is -,
read standard input.

Columns always appear in the order lines, words, characters, bytes.
Without flags, lines, words and bytes are printed. Files that cannot be
opened are reported on stderr and skipped.`,
		Example: `  linetools wc notes.txt
  linetools wc -lw *.md
  printf 'a b\n' | linetools wc -w`,
		RunE: func(_ *cobra.Command, args []string) error {
			return app.runUtility(func(hc *textutil.HandlerContext) error {
				return textutil.Wc(hc, opts, args)
			})
		},
	}

	cmd.Flags().BoolVarP(&opts.Lines, "lines", "l", false, "print the line counts")
	cmd.Flags().BoolVarP(&opts.Words, "words", "w", false, "print the word counts")
	cmd.Flags().BoolVarP(&opts.Chars, "chars", "m", false, "print the character counts")
	cmd.Flags().BoolVarP(&opts.Bytes, "bytes", "c", false, "print the byte counts")

	return cmd
}
