// SPDX-License-Identifier: MPL-2.0

// Package count implements the counting core of wc: a single-pass
// accumulator over a byte stream and a column renderer shared by every row of
// one report.
//
// Rendering is deliberately a second pass. The column width depends on the
// byte counts of all files and of their total, so no row can be written until
// every input has been drained.
package count
