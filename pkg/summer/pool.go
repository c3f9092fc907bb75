package summer

import (
	"sync"

	"github.com/agenthands/trebuchet/pkg/digit"
)

var pools = map[digit.Mode]*sync.Pool{
	digit.ModeWords:   {New: func() any { return New(digit.ModeWords.Recognizer()) }},
	digit.ModeLiteral: {New: func() any { return New(digit.ModeLiteral.Recognizer()) }},
}

// Get returns a reset Summer for mode from the pool.
func Get(mode digit.Mode) *Summer {
	p, ok := pools[mode]
	if !ok {
		return New(mode.Recognizer())
	}
	s := p.Get().(*Summer)
	s.Reset()
	return s
}

// Put returns s to the pool for mode.
func Put(mode digit.Mode, s *Summer) {
	if p, ok := pools[mode]; ok {
		p.Put(s)
	}
}
