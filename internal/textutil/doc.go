// SPDX-License-Identifier: MPL-2.0

// Package textutil provides the line utilities of linetools: wc, cat, head,
// uniq and echo.
//
// Each utility is available two ways. The exported functions (Wc, Cat, Head,
// Uniq, Echo) take already-parsed options and are called by the Cobra command
// tree. The Command implementations returned by NewBuiltinRegistry parse a raw
// argument vector with pflag and back the builtins of the embedded shell, so a
// script such as
//
//	echo one two | wc -w
//
// runs without any host binary.
//
// # File arguments
//
// Every utility that reads files resolves them through textio.Opener: "-"
// means the HandlerContext's stdin and relative paths are joined to its Dir.
// Files that cannot be opened are reported on stderr as "<name>: <cause>" and
// skipped, except for uniq whose single input is mandatory.
//
// # Errors
//
// Read failures are returned as *textio.ReadError and end the utility. Errors
// returned from Command.Run are prefixed with the command name:
//
//	wc: big.log: input/output error
package textutil
