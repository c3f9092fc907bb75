package digit

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownMode = errors.New("digit: unknown mode")
)

// Recognizer decides whether the byte just pushed onto the window completes a
// digit. It is called once per input byte, after Push.
type Recognizer interface {
	Recognize(w *Window, c byte) (int, bool)
}

// Literal recognizes ASCII digits only.
type Literal struct{}

// Recognize implements Recognizer.
func (Literal) Recognize(_ *Window, c byte) (int, bool) {
	if isDigit(c) {
		return int(c - '0'), true
	}
	return 0, false
}

// Spelled recognizes ASCII digits and the words "one" through "nine".
// A word matches at the position of its final byte; each position is checked
// on its own, so words that share letters ("eightwo") both match.
type Spelled struct{}

// Recognize implements Recognizer.
func (Spelled) Recognize(w *Window, c byte) (int, bool) {
	if isDigit(c) {
		return int(c - '0'), true
	}
	for i, word := range words {
		if w.HasSuffix(word) {
			return i + 1, true
		}
	}
	return 0, false
}

// Mode selects a Recognizer.
type Mode uint8

const (
	ModeWords Mode = iota
	ModeLiteral
)

func (m Mode) String() string {
	switch m {
	case ModeWords:
		return "words"
	case ModeLiteral:
		return "literal"
	}
	return fmt.Sprintf("Mode(%d)", uint8(m))
}

// ParseMode converts a mode name ("words" or "literal") into a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "words":
		return ModeWords, nil
	case "literal":
		return ModeLiteral, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// Recognizer returns the strategy for m. Unknown modes fall back to Spelled.
func (m Mode) Recognizer() Recognizer {
	if m == ModeLiteral {
		return Literal{}
	}
	return Spelled{}
}
