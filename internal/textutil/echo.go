// SPDX-License-Identifier: MPL-2.0

package textutil

import (
	"context"
	"io"
	"strings"
)

type (
	// EchoOptions controls the trailing newline.
	EchoOptions struct {
		OmitNewline bool
	}

	// echoCommand implements the echo builtin.
	echoCommand struct {
		builtin
	}
)

// newEchoCommand creates a new echo command.
func newEchoCommand() *echoCommand {
	return &echoCommand{
		builtin: builtin{
			name: "echo",
			flags: []FlagInfo{
				{Name: "no-newline", ShortName: "n", Description: "do not output the trailing newline"},
			},
		},
	}
}

// Run executes the echo command.
func (c *echoCommand) Run(ctx context.Context, args []string) error {
	hc := GetHandlerContext(ctx)

	var opts EchoOptions
	fs := c.flagSet()
	fs.BoolVarP(&opts.OmitNewline, "no-newline", "n", false, "do not output the trailing newline")
	if err := c.parse(fs, args); err != nil {
		return err
	}

	return c.wrapError(Echo(hc.Stdout, opts, fs.Args()))
}

// Echo writes text joined by single spaces.
func Echo(w io.Writer, opts EchoOptions, text []string) error {
	line := strings.Join(text, " ")
	if !opts.OmitNewline {
		line += "\n"
	}
	_, err := io.WriteString(w, line)
	return err
}
