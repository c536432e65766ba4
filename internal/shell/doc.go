// SPDX-License-Identifier: MPL-2.0

// Package shell embeds a POSIX shell interpreter whose external commands
// resolve to the line utilities first.
package shell
