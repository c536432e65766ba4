// SPDX-License-Identifier: MPL-2.0

package count

import (
	"fmt"
	"strings"
)

const (
	// Lines counts line terminators, plus a final unterminated line.
	Lines Metric = iota
	// Words counts maximal runs of non-whitespace characters.
	Words
	// Chars counts decoded code points.
	Chars
	// Bytes counts raw bytes.
	Bytes
)

// DefaultSelection is used when no metric was requested.
var DefaultSelection = Select(Lines, Words, Bytes)

// metrics lists every metric in column order.
var metrics = [...]Metric{Lines, Words, Chars, Bytes}

type (
	// Metric is one of the four countable quantities.
	Metric uint8

	// Selection is a set of metrics. The zero value is empty.
	Selection uint8

	// Counts holds one value per metric.
	Counts struct {
		Lines int64
		Words int64
		Chars int64
		Bytes int64
	}
)

// String returns the metric name.
func (m Metric) String() string {
	switch m {
	case Lines:
		return "lines"
	case Words:
		return "words"
	case Chars:
		return "chars"
	case Bytes:
		return "bytes"
	default:
		return fmt.Sprintf("Metric(%d)", uint8(m))
	}
}

// Select builds a Selection from individual metrics.
func Select(ms ...Metric) Selection {
	var s Selection
	for _, m := range ms {
		s |= 1 << m
	}
	return s
}

// Has reports whether m is selected.
func (s Selection) Has(m Metric) bool { return s&(1<<m) != 0 }

// Len returns the number of selected metrics.
func (s Selection) Len() int {
	n := 0
	for _, m := range metrics {
		if s.Has(m) {
			n++
		}
	}
	return n
}

// OrDefault returns DefaultSelection when s is empty.
func (s Selection) OrDefault() Selection {
	if s == 0 {
		return DefaultSelection
	}
	return s
}

// Metrics returns the selected metrics in column order.
func (s Selection) Metrics() []Metric {
	out := make([]Metric, 0, len(metrics))
	for _, m := range metrics {
		if s.Has(m) {
			out = append(out, m)
		}
	}
	return out
}

// String joins the selected metric names with commas.
func (s Selection) String() string {
	names := make([]string, 0, len(metrics))
	for _, m := range s.Metrics() {
		names = append(names, m.String())
	}
	return strings.Join(names, ",")
}

// Get returns the value of metric m.
func (c Counts) Get(m Metric) int64 {
	switch m {
	case Lines:
		return c.Lines
	case Words:
		return c.Words
	case Chars:
		return c.Chars
	case Bytes:
		return c.Bytes
	default:
		return 0
	}
}

// Add returns the field-wise sum of c and o.
func (c Counts) Add(o Counts) Counts {
	return Counts{
		Lines: c.Lines + o.Lines,
		Words: c.Words + o.Words,
		Chars: c.Chars + o.Chars,
		Bytes: c.Bytes + o.Bytes,
	}
}
