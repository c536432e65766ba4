// SPDX-License-Identifier: MPL-2.0

package textutil

import (
	"context"
	"io"

	"github.com/invowk/linetools/internal/count"
	"github.com/invowk/linetools/internal/textio"

	"github.com/dustin/go-humanize"
)

type (
	// WcOptions selects the metrics to print. When none is set, lines, words
	// and bytes are printed.
	WcOptions struct {
		Lines bool
		Words bool
		Chars bool
		Bytes bool
	}

	// wcCommand implements the wc (word count) builtin.
	wcCommand struct {
		builtin
	}
)

// newWcCommand creates a new wc command.
func newWcCommand() *wcCommand {
	return &wcCommand{
		builtin: builtin{
			name: "wc",
			flags: []FlagInfo{
				{Name: "lines", ShortName: "l", Description: "print the newline counts"},
				{Name: "words", ShortName: "w", Description: "print the word counts"},
				{Name: "chars", ShortName: "m", Description: "print the character counts"},
				{Name: "bytes", ShortName: "c", Description: "print the byte counts"},
			},
		},
	}
}

// Selection converts the options into a metric selection.
func (o WcOptions) Selection() count.Selection {
	var ms []count.Metric
	if o.Lines {
		ms = append(ms, count.Lines)
	}
	if o.Words {
		ms = append(ms, count.Words)
	}
	if o.Chars {
		ms = append(ms, count.Chars)
	}
	if o.Bytes {
		ms = append(ms, count.Bytes)
	}
	return count.Select(ms...).OrDefault()
}

// Run executes the wc command.
func (c *wcCommand) Run(ctx context.Context, args []string) error {
	hc := GetHandlerContext(ctx)

	var opts WcOptions
	fs := c.flagSet()
	fs.BoolVarP(&opts.Lines, "lines", "l", false, "print the newline counts")
	fs.BoolVarP(&opts.Words, "words", "w", false, "print the word counts")
	fs.BoolVarP(&opts.Chars, "chars", "m", false, "print the character counts")
	fs.BoolVarP(&opts.Bytes, "bytes", "c", false, "print the byte counts")
	if err := c.parse(fs, args); err != nil {
		return err
	}

	return c.wrapError(Wc(hc, opts, fs.Args()))
}

// Wc counts every file and prints one row per file that could be opened,
// plus a total row when more than one file was named. No file names means
// stdin.
//
// Files that cannot be opened are reported on hc.Stderr and skipped. A read
// failure aborts before anything is printed and is returned as a
// *textio.ReadError.
func Wc(hc *HandlerContext, opts WcOptions, files []string) error {
	if len(files) == 0 {
		files = []string{textio.StdinName}
	}

	var records []count.Record
	err := hc.Opener().Process(files,
		func(r io.Reader, name string, _, _ int) error {
			counts, err := count.Accumulate(r)
			if err != nil {
				return &textio.ReadError{Name: name, Err: err}
			}
			hc.log().Debug("counted input",
				"file", name,
				"lines", counts.Lines,
				"words", counts.Words,
				"size", humanize.IBytes(uint64(counts.Bytes)))

			records = append(records, count.FileRecord(name, counts))
			return nil
		},
		hc.reportOpenError)
	if err != nil {
		return err
	}

	sel := opts.Selection()
	hc.log().Debug("rendering report", "metrics", sel.String(), "rows", len(records))
	return count.Render(hc.Stdout, records, sel, len(files) > 1)
}
