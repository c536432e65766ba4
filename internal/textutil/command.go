// SPDX-License-Identifier: MPL-2.0

package textutil

import "context"

type (
	// Command defines the interface for builtin utility implementations.
	Command interface {
		// Name returns the command name (e.g., "wc", "head").
		Name() string

		// Run executes the command with the given context and arguments.
		// The context carries the HandlerContext with stdin/stdout/stderr.
		// args[0] is the command name, args[1:] are the arguments.
		// Returns nil on success, or an error prefixed with "<cmd>:".
		Run(ctx context.Context, args []string) error

		// SupportedFlags returns the flags this implementation supports.
		// This is used for documentation and introspection.
		SupportedFlags() []FlagInfo
	}

	// FlagInfo describes a supported flag for a builtin command.
	FlagInfo struct {
		// Name is the long flag name without dashes (e.g., "lines" for --lines).
		Name string
		// ShortName is the single-character alias (e.g., "l" for -l).
		// Empty if no short form exists.
		ShortName string
		// Description explains what the flag does.
		Description string
		// TakesValue indicates if the flag requires a value (e.g., -n 10).
		TakesValue bool
	}
)
