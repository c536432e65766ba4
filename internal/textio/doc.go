// SPDX-License-Identifier: MPL-2.0

// Package textio resolves file name tokens to readable streams for the line
// utilities.
//
// The token "-" always stands for the caller's standard input. Every other
// token is a filesystem path, resolved against a working directory when it is
// relative. Utilities never open files themselves; they go through an Opener so
// that the stdin convention and the error format stay identical across the
// suite:
//
//	missing.txt: no such file or directory
//
// Streams are owned by the caller of Open and must be closed once drained.
// Process does this for a whole argument list, one file at a time.
package textio
