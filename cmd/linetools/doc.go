// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for linetools.
//
// This package implements the Cobra command hierarchy: one subcommand per
// line utility (wc, cat, head, uniq, echo), the embedded shell (sh) and
// configuration management (config). Handlers never call os.Exit; they
// return *ExitError and Execute maps it to the process status.
package cmd
