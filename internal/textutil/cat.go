// SPDX-License-Identifier: MPL-2.0

package textutil

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/invowk/linetools/internal/textio"

	"go.uber.org/multierr"
)

type (
	// CatOptions controls line numbering.
	CatOptions struct {
		// Number numbers every output line.
		Number bool
		// NumberNonblank numbers only non-empty lines and overrides Number.
		NumberNonblank bool
	}

	// catCommand implements the cat builtin.
	catCommand struct {
		builtin
	}
)

// newCatCommand creates a new cat command.
func newCatCommand() *catCommand {
	return &catCommand{
		builtin: builtin{
			name: "cat",
			flags: []FlagInfo{
				{Name: "number", ShortName: "n", Description: "number all output lines"},
				{Name: "number-nonblank", ShortName: "b", Description: "number nonempty output lines, overrides -n"},
			},
		},
	}
}

// Run executes the cat command.
func (c *catCommand) Run(ctx context.Context, args []string) error {
	hc := GetHandlerContext(ctx)

	var opts CatOptions
	fs := c.flagSet()
	fs.BoolVarP(&opts.Number, "number", "n", false, "number all output lines")
	fs.BoolVarP(&opts.NumberNonblank, "number-nonblank", "b", false, "number nonempty output lines")
	if err := c.parse(fs, args); err != nil {
		return err
	}

	return c.wrapError(Cat(hc, opts, fs.Args()))
}

// Cat copies each file to hc.Stdout. Line numbers continue across files.
func Cat(hc *HandlerContext, opts CatOptions, files []string) (err error) {
	if len(files) == 0 {
		files = []string{textio.StdinName}
	}

	out := bufio.NewWriter(hc.Stdout)
	defer func() {
		err = multierr.Append(err, out.Flush())
	}()

	lineNo := 0
	return hc.Opener().Process(files,
		func(r io.Reader, name string, _, _ int) error {
			in := bufio.NewReader(r)
			for {
				line, readErr := in.ReadString('\n')
				if line != "" {
					lineNo = writeNumbered(out, opts, trimEOL(line), lineNo)
				}
				if readErr != nil {
					if errors.Is(readErr, io.EOF) {
						return nil
					}
					return &textio.ReadError{Name: name, Err: readErr}
				}
			}
		},
		hc.reportOpenError)
}

// writeNumbered writes one line and returns the updated line number.
func writeNumbered(w *bufio.Writer, opts CatOptions, line string, lineNo int) int {
	switch {
	case opts.NumberNonblank && line == "":
		w.WriteByte('\n')
	case opts.NumberNonblank, opts.Number:
		lineNo++
		fmt.Fprintf(w, "%6d\t%s\n", lineNo, line)
	default:
		w.WriteString(line)
		w.WriteByte('\n')
	}
	return lineNo
}

// trimEOL strips a trailing "\n" or "\r\n". A lone "\r" at the end of the
// stream is content and stays.
func trimEOL(line string) string {
	if !strings.HasSuffix(line, "\n") {
		return line
	}
	return strings.TrimSuffix(line[:len(line)-1], "\r")
}
