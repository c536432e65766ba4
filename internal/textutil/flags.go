// SPDX-License-Identifier: MPL-2.0

package textutil

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/pflag"
)

// ErrUsage marks errors caused by a malformed argument vector.
var ErrUsage = errors.New("usage error")

// builtin holds the name and flag documentation shared by every utility.
type builtin struct {
	name  string
	flags []FlagInfo
}

// Name returns the command name.
func (b *builtin) Name() string {
	return b.name
}

// SupportedFlags returns the flags supported by this command.
func (b *builtin) SupportedFlags() []FlagInfo {
	return b.flags
}

// flagSet returns a silent pflag set. pflag splits POSIX combined short flags
// ("-lw") on its own, so builtins need no argument preprocessing.
func (b *builtin) flagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet(b.name, pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

// parse parses args[1:]; args[0] is the command name.
func (b *builtin) parse(fs *pflag.FlagSet, args []string) error {
	var rest []string
	if len(args) > 1 {
		rest = args[1:]
	}
	if err := fs.Parse(rest); err != nil {
		return b.wrapError(fmt.Errorf("%w: %w", ErrUsage, err))
	}
	return nil
}

// wrapError prefixes err with the command name. Returns nil if err is nil.
func (b *builtin) wrapError(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", b.name, err)
}
