// SPDX-License-Identifier: MPL-2.0

package count

import (
	"bufio"
	"errors"
	"io"
	"unicode"
	"unicode/utf8"
)

// Accumulate drains r one line at a time and counts it.
//
// Each line is read together with its terminator. A final line without a
// terminator still counts as a line. Invalid UTF-8 is not an error: every
// byte that does not start a valid sequence counts as one replacement
// character, and replacement characters are not whitespace. This differs
// from lossy decoders that replace each maximal invalid subsequence with a
// single U+FFFD: the truncated sequence "\xe2\x82" counts as two characters
// here, not one.
//
// A read error other than io.EOF discards everything counted so far; the
// caller gets either the counts of the whole stream or nothing.
func Accumulate(r io.Reader) (Counts, error) {
	var (
		br     = bufio.NewReader(r)
		counts Counts
	)
	for {
		line, err := br.ReadBytes('\n')
		if len(line) > 0 && (err == nil || errors.Is(err, io.EOF)) {
			counts.Lines++
			counts.Bytes += int64(len(line))
			chars, words := scanLine(line)
			counts.Chars += chars
			counts.Words += words
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return counts, nil
			}
			return Counts{}, err
		}
	}
}

// scanLine returns the number of decoded characters and words in line.
func scanLine(line []byte) (chars, words int64) {
	inWord := false
	for len(line) > 0 {
		ru, size := utf8.DecodeRune(line)
		line = line[size:]
		chars++

		if unicode.IsSpace(ru) {
			inWord = false
		} else if !inWord {
			inWord = true
			words++
		}
	}
	return chars, words
}
