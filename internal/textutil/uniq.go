// SPDX-License-Identifier: MPL-2.0

package textutil

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/invowk/linetools/internal/textio"

	"go.uber.org/multierr"
)

type (
	// UniqOptions controls which runs uniq prints and how.
	UniqOptions struct {
		// Count prefixes each line with the length of its run.
		Count bool
		// Repeated prints only runs longer than one line.
		Repeated bool
		// Unique prints only runs of exactly one line.
		Unique bool
		// IgnoreCase compares lines case-insensitively.
		IgnoreCase bool
	}

	// uniqCommand implements the uniq builtin.
	uniqCommand struct {
		builtin
	}

	// runWriter emits one collapsed run at a time.
	runWriter struct {
		out  *bufio.Writer
		opts UniqOptions
	}
)

// newUniqCommand creates a new uniq command.
func newUniqCommand() *uniqCommand {
	return &uniqCommand{
		builtin: builtin{
			name: "uniq",
			flags: []FlagInfo{
				{Name: "count", ShortName: "c", Description: "prefix lines by the number of occurrences"},
				{Name: "repeated", ShortName: "d", Description: "only print duplicate lines, one for each group"},
				{Name: "unique", ShortName: "u", Description: "only print unique lines"},
				{Name: "ignore-case", ShortName: "i", Description: "ignore differences in case when comparing"},
			},
		},
	}
}

// Run executes the uniq command.
func (c *uniqCommand) Run(ctx context.Context, args []string) error {
	hc := GetHandlerContext(ctx)

	var opts UniqOptions
	fs := c.flagSet()
	fs.BoolVarP(&opts.Count, "count", "c", false, "show count")
	fs.BoolVarP(&opts.Repeated, "repeated", "d", false, "duplicates only")
	fs.BoolVarP(&opts.Unique, "unique", "u", false, "unique only")
	fs.BoolVarP(&opts.IgnoreCase, "ignore-case", "i", false, "ignore case")
	if err := c.parse(fs, args); err != nil {
		return err
	}
	if fs.NArg() > 2 {
		return c.wrapError(fmt.Errorf("%w: extra operand %q", ErrUsage, fs.Arg(2)))
	}

	return c.wrapError(Uniq(hc, opts, fs.Arg(0), fs.Arg(1)))
}

// Uniq collapses adjacent equal lines of input into output. An empty input
// means stdin and an empty output means hc.Stdout.
//
// Lines are compared with trailing whitespace removed, and each run is
// written as its first line without trailing whitespace. Unlike the other
// utilities, failing to open input is an error.
func Uniq(hc *HandlerContext, opts UniqOptions, input, output string) (err error) {
	if input == "" {
		input = textio.StdinName
	}

	in, err := hc.Opener().Open(input)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := in.Close(); closeErr != nil {
			err = multierr.Append(err, &textio.ReadError{Name: input, Err: closeErr})
		}
	}()

	var w io.Writer = hc.Stdout
	if output != "" {
		f, createErr := hc.Opener().Create(output)
		if createErr != nil {
			return createErr
		}
		defer func() {
			err = multierr.Append(err, f.Close())
		}()
		w = f
	}

	rw := runWriter{out: bufio.NewWriter(w), opts: opts}
	defer func() {
		err = multierr.Append(err, rw.out.Flush())
	}()

	if err := collapseRuns(in, opts.IgnoreCase, rw.write); err != nil {
		return &textio.ReadError{Name: input, Err: err}
	}
	return nil
}

// collapseRuns reads lines from r and calls emit once per run of equal lines.
func collapseRuns(r io.Reader, ignoreCase bool, emit func(line string, n int)) error {
	var (
		br      = bufio.NewReader(r)
		prev    string
		prevKey string
		n       int
	)
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			text := strings.TrimRightFunc(line, unicode.IsSpace)
			key := text
			if ignoreCase {
				key = strings.ToLower(text)
			}

			if n > 0 && key == prevKey {
				n++
			} else {
				if n > 0 {
					emit(prev, n)
				}
				prev, prevKey, n = text, key, 1
			}
		}
		if err != nil {
			if !errors.Is(err, io.EOF) {
				return err
			}
			break
		}
	}
	if n > 0 {
		emit(prev, n)
	}
	return nil
}

func (w runWriter) write(line string, n int) {
	if w.opts.Repeated && n < 2 {
		return
	}
	if w.opts.Unique && n > 1 {
		return
	}
	if w.opts.Count {
		fmt.Fprintf(w.out, "%7d %s\n", n, line)
		return
	}
	w.out.WriteString(line)
	w.out.WriteByte('\n')
}
