// SPDX-License-Identifier: MIT
// Package: selfsim/dataset
//
// scanner.go — streaming (u, v) pair scanner over edge-list text.
//
// Contract:
//   • Input is whitespace/tab-delimited; the first two fields of a data
//     line are the endpoints, extra columns (weights, timestamps) are
//     ignored.
//   • Blank lines and lines starting with "%" (KONECT) or "#" (SNAP) are
//     skipped.
//   • A data line with fewer than two fields or a non-integer endpoint is
//     an error carrying its line number — datasets fail loudly, they do
//     not shrink silently.
//   • Scanner implements core.PairSource: Next returns io.EOF when the
//     input is exhausted.

package dataset

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrMalformedLine indicates an edge-list data line that does not parse
// into two integer endpoints.
var ErrMalformedLine = errors.New("dataset: malformed edge-list line")

// pairFields is the number of leading fields a data line must carry.
const pairFields = 2

// Comment prefixes by convention: KONECT and SNAP respectively.
const (
	commentKONECT = "%"
	commentSNAP   = "#"
)

// Scanner streams integer pairs from an edge-list reader.
type Scanner struct {
	in   *bufio.Scanner
	line int
}

// NewScanner wraps r in a pair scanner. The reader is consumed lazily,
// one line per Next call.
func NewScanner(r io.Reader) *Scanner {
	return &Scanner{in: bufio.NewScanner(r)}
}

// Next returns the next (u, v) pair, io.EOF at end of input, or a wrapped
// ErrMalformedLine / read error. Satisfies core.PairSource.
// Complexity: O(line length) per call.
func (s *Scanner) Next() (u, v int64, err error) {
	for s.in.Scan() {
		s.line++
		text := strings.TrimSpace(s.in.Text())

		// Skip blanks and both comment conventions.
		if text == "" || strings.HasPrefix(text, commentKONECT) || strings.HasPrefix(text, commentSNAP) {
			continue
		}

		fields := strings.Fields(text)
		if len(fields) < pairFields {
			return 0, 0, fmt.Errorf("line %d: %d field(s): %w", s.line, len(fields), ErrMalformedLine)
		}
		if u, err = strconv.ParseInt(fields[0], 10, 64); err != nil {
			return 0, 0, fmt.Errorf("line %d: field %q: %w", s.line, fields[0], ErrMalformedLine)
		}
		if v, err = strconv.ParseInt(fields[1], 10, 64); err != nil {
			return 0, 0, fmt.Errorf("line %d: field %q: %w", s.line, fields[1], ErrMalformedLine)
		}

		return u, v, nil
	}

	if err = s.in.Err(); err != nil {
		return 0, 0, fmt.Errorf("line %d: %w", s.line, err)
	}

	return 0, 0, io.EOF
}
