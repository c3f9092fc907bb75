// Package summer adds up per-line two-digit values from a byte stream.
//
// Each line contributes first*10 + last, where first and last are the first
// and last digits a digit.Recognizer finds on it. Lines without a digit
// contribute nothing. A final line without a trailing newline counts like any
// other.
package summer

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/agenthands/trebuchet/pkg/digit"
)

var (
	ErrRead = errors.New("summer: read input")
)

const unset = -1

// Stats describes the most recent Sum call.
type Stats struct {
	Lines   int // lines seen, including an unterminated last line
	Matched int // lines that contained at least one digit
	Digits  int // digit occurrences recognized
}

// Summer scans a stream once and accumulates the running sum.
// A Summer is not safe for concurrent use.
type Summer struct {
	rec    digit.Recognizer
	reader *bufio.Reader
	window digit.Window

	first, last int
	pending     bool // bytes seen since the last newline
	total       int
	stats       Stats
}

// New returns a Summer that recognizes digits with rec.
func New(rec digit.Recognizer) *Summer {
	s := &Summer{rec: rec}
	s.Reset()
	return s
}

// Reset clears all state left by a previous Sum.
func (s *Summer) Reset() {
	s.window.Reset()
	s.first, s.last = unset, unset
	s.pending = false
	s.total = 0
	s.stats = Stats{}
}

// Sum consumes r to end of stream and returns the total.
//
// A read error ends the scan exactly like end of stream: the pending line is
// folded in and the total so far is returned alongside an error wrapping
// ErrRead.
func (s *Summer) Sum(r io.Reader) (int, error) {
	s.Reset()
	if s.reader == nil {
		s.reader = bufio.NewReader(r)
	} else {
		s.reader.Reset(r)
	}
	defer s.reader.Reset(nil)

	var err error
	for {
		c, rerr := s.reader.ReadByte()
		if rerr != nil {
			if rerr != io.EOF {
				err = fmt.Errorf("%w: %w", ErrRead, rerr)
			}
			break
		}
		s.feed(c)
	}
	s.endLine()
	return s.total, err
}

// Total returns the sum accumulated so far.
func (s *Summer) Total() int {
	return s.total
}

// Stats returns counters for the most recent Sum call.
func (s *Summer) Stats() Stats {
	return s.stats
}

func (s *Summer) feed(c byte) {
	s.window.Push(c)
	if d, ok := s.rec.Recognize(&s.window, c); ok {
		if s.first == unset {
			s.first = d
		}
		s.last = d
		s.stats.Digits++
	}
	s.pending = true
	if c == '\n' {
		s.endLine()
	}
}

// endLine folds the current line into the total and starts a new one.
func (s *Summer) endLine() {
	if !s.pending {
		return
	}
	s.stats.Lines++
	if s.first != unset {
		s.total += s.first*10 + s.last
		s.stats.Matched++
	}
	s.first, s.last = unset, unset
	s.pending = false
}
