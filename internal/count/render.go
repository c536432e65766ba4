// SPDX-License-Identifier: MPL-2.0

package count

import (
	"bufio"
	"io"
	"strconv"

	"go.uber.org/multierr"
)

// totalName is printed in place of a file name on the total row.
const totalName = "total"

// stdinName is the token whose rows carry no name segment.
const stdinName = "-"

// Width returns the column width shared by every row of one report.
//
//   - With more than one input (includeTotal): the digit count of the largest
//     byte count among the files and their total.
//   - With one input and several metrics: the digit count of that input's
//     byte count.
//   - Otherwise 1, which leaves every number at its natural width.
//
// A width of zero is raised to 1 so that all-zero counts still print "0".
func Width(records []Record, sel Selection, includeTotal bool) int {
	var width int
	switch {
	case includeTotal:
		largest := Sum(records).Bytes
		for _, r := range records {
			largest = max(largest, r.Bytes)
		}
		width = digits(largest)
	case sel.OrDefault().Len() > 1:
		if len(records) > 0 {
			width = digits(records[0].Bytes)
		}
	default:
		width = 1
	}
	return max(width, 1)
}

// Render writes one row per record and, when includeTotal is set, a total row.
// Callers set includeTotal when more than one input was supplied, even if
// some of them failed to open. An empty selection renders DefaultSelection.
func Render(w io.Writer, records []Record, sel Selection, includeTotal bool) (err error) {
	sel = sel.OrDefault()
	width := Width(records, sel, includeTotal)

	bw := bufio.NewWriter(w)
	defer func() {
		err = multierr.Append(err, bw.Flush())
	}()

	for _, r := range records {
		if err := writeRow(bw, r, sel, width); err != nil {
			return err
		}
	}
	if includeTotal {
		return writeRow(bw, Sum(records), sel, width)
	}
	return nil
}

// writeRow renders the selected metrics right-aligned to width, separated by
// single spaces, followed by the label.
func writeRow(w *bufio.Writer, r Record, sel Selection, width int) error {
	buf := make([]byte, 0, 64)
	for i, m := range sel.Metrics() {
		if i > 0 {
			buf = append(buf, ' ')
		}
		buf = appendPadded(buf, r.Get(m), width)
	}

	switch label := r.Label.(type) {
	case File:
		if label.Name != stdinName {
			buf = append(buf, ' ')
			buf = append(buf, label.Name...)
		}
	case Total:
		buf = append(buf, ' ')
		buf = append(buf, totalName...)
	}
	buf = append(buf, '\n')

	_, err := w.Write(buf)
	return err
}

func appendPadded(buf []byte, v int64, width int) []byte {
	num := strconv.FormatInt(v, 10)
	for pad := width - len(num); pad > 0; pad-- {
		buf = append(buf, ' ')
	}
	return append(buf, num...)
}

// digits returns the number of decimal digits in n, or 0 for n == 0.
func digits(n int64) int {
	d := 0
	for n > 0 {
		n /= 10
		d++
	}
	return d
}
