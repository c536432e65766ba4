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

// DefaultHeadLines is the number of lines head prints when not told otherwise.
const DefaultHeadLines = 10

var (
	// ErrInvalidCount is returned for negative line or byte counts.
	ErrInvalidCount = errors.New("invalid count")
	// ErrConflictingFlags is returned when -n and -c are both given.
	ErrConflictingFlags = errors.New("the -n and -c flags cannot be used together")
)

type (
	// HeadOptions selects how much of each file head prints.
	HeadOptions struct {
		// Lines is the number of lines to print.
		Lines int64
		// Bytes is the number of bytes to print when ByteMode is set.
		Bytes int64
		// ByteMode switches from lines to bytes.
		ByteMode bool
	}

	// headCommand implements the head builtin.
	headCommand struct {
		builtin
		defaultLines int64
	}
)

// newHeadCommand creates a new head command.
func newHeadCommand(defaultLines int64) *headCommand {
	return &headCommand{
		builtin: builtin{
			name: "head",
			flags: []FlagInfo{
				{Name: "lines", ShortName: "n", Description: "print the first NUM lines", TakesValue: true},
				{Name: "bytes", ShortName: "c", Description: "print the first NUM bytes", TakesValue: true},
			},
		},
		defaultLines: defaultLines,
	}
}

// Validate rejects negative counts.
func (o HeadOptions) Validate() error {
	if o.Lines < 0 {
		return fmt.Errorf("%w: %d lines", ErrInvalidCount, o.Lines)
	}
	if o.ByteMode && o.Bytes < 0 {
		return fmt.Errorf("%w: %d bytes", ErrInvalidCount, o.Bytes)
	}
	return nil
}

// Run executes the head command.
func (c *headCommand) Run(ctx context.Context, args []string) error {
	hc := GetHandlerContext(ctx)

	opts := HeadOptions{Lines: c.defaultLines}
	fs := c.flagSet()
	fs.Int64VarP(&opts.Lines, "lines", "n", c.defaultLines, "number of lines")
	fs.Int64VarP(&opts.Bytes, "bytes", "c", 0, "number of bytes")
	if err := c.parse(fs, args); err != nil {
		return err
	}
	if fs.Changed("lines") && fs.Changed("bytes") {
		return c.wrapError(fmt.Errorf("%w: %w", ErrUsage, ErrConflictingFlags))
	}
	opts.ByteMode = fs.Changed("bytes")

	return c.wrapError(Head(hc, opts, fs.Args()))
}

// Head prints the beginning of each file. With more than one file every
// section is introduced by a "==> name <==" header, and sections after the
// first are separated by a blank line.
func Head(hc *HandlerContext, opts HeadOptions, files []string) (err error) {
	if err := opts.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}
	if len(files) == 0 {
		files = []string{textio.StdinName}
	}

	out := bufio.NewWriter(hc.Stdout)
	defer func() {
		err = multierr.Append(err, out.Flush())
	}()

	return hc.Opener().Process(files,
		func(r io.Reader, name string, index, total int) error {
			if total > 1 {
				if index > 0 {
					out.WriteByte('\n')
				}
				fmt.Fprintf(out, "==> %s <==\n", name)
			}

			var copyErr error
			if opts.ByteMode {
				copyErr = headBytes(out, r, opts.Bytes)
			} else {
				copyErr = headLines(out, r, opts.Lines)
			}
			if copyErr != nil {
				return &textio.ReadError{Name: name, Err: copyErr}
			}
			return nil
		},
		hc.reportOpenError)
}

// headLines copies the first n lines, terminators included.
func headLines(out *bufio.Writer, in io.Reader, n int64) error {
	br := bufio.NewReader(in)
	for i := int64(0); i < n; i++ {
		line, err := br.ReadString('\n')
		out.WriteString(line)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
	}
	return nil
}

// headBytes copies the first n bytes. A multi-byte character cut at the limit
// is written as U+FFFD.
func headBytes(out *bufio.Writer, in io.Reader, n int64) error {
	var sb strings.Builder
	if _, err := io.Copy(&sb, io.LimitReader(in, n)); err != nil {
		return err
	}
	out.WriteString(strings.ToValidUTF8(sb.String(), "\uFFFD"))
	return nil
}
