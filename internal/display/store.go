// internal/display/store.go
package display

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/rs/zerolog/log"
)

var (
	ErrLineOutOfRange = errors.New("display: line must be between 1 and 4")
	ErrInvalidValue   = errors.New("display: invalid value")
)

// Store holds the declarative state of the four sign lines.
// Setters only record state; rendering happens in Compile.
// Lines are addressed 1..4. A rejected call changes nothing.
type Store struct {
	lines [LineCount]Line
}

// NewStore returns a store with every line at its defaults.
// Line 1 starts enabled, the rest disabled.
func NewStore() *Store {
	s := &Store{}
	s.Reset()
	return s
}

// Reset restores every line to its defaults.
func (s *Store) Reset() {
	for i := range s.lines {
		s.lines[i] = DefaultLine()
	}
	s.lines[0].Enabled = true
}

// Lines returns a copy of the current line state.
func (s *Store) Lines() [LineCount]Line {
	return s.lines
}

// Line returns one line (1-based).
func (s *Store) Line(n int) (Line, error) {
	if err := checkLine(n); err != nil {
		return Line{}, err
	}
	return s.lines[n-1], nil
}

func (s *Store) SetLine(n int, enabled bool) error {
	return s.apply(n, "enabled", func(l *Line) error {
		l.Enabled = enabled
		return nil
	})
}

func (s *Store) SetColor(n int, c Color) error {
	return s.apply(n, "color", func(l *Line) error {
		if _, ok := colorNames[c]; !ok {
			return fmt.Errorf("%w: color %d", ErrInvalidValue, c)
		}
		l.Color = c
		return nil
	})
}

// SetTextSize takes the user-facing size 0 (smallest) .. 11 (largest).
func (s *Store) SetTextSize(n int, size int) error {
	return s.apply(n, "text size", func(l *Line) error {
		if size < 0 || size > MaxTextSize {
			return fmt.Errorf("%w: text size %d (0-%d)", ErrInvalidValue, size, MaxTextSize)
		}
		l.TextSize = CharSet(size)
		return nil
	})
}

func (s *Store) SetScrollType(n int, st ScrollType) error {
	return s.apply(n, "scroll type", func(l *Line) error {
		if _, ok := scrollNames[st]; !ok {
			return fmt.Errorf("%w: scroll type %d", ErrInvalidValue, st)
		}
		l.Scroll = st
		return nil
	})
}

func (s *Store) SetScrollSpeed(n int, sp Speed) error {
	return s.apply(n, "scroll speed", func(l *Line) error {
		if _, ok := speedNames[sp]; !ok {
			return fmt.Errorf("%w: scroll speed %d", ErrInvalidValue, sp)
		}
		l.Speed = sp
		return nil
	})
}

func (s *Store) SetBlink(n int, b Blink) error {
	return s.apply(n, "blink", func(l *Line) error {
		if _, ok := blinkNames[b]; !ok {
			return fmt.Errorf("%w: blink %d", ErrInvalidValue, b)
		}
		l.Blink = b
		return nil
	})
}

// SetText replaces the literal text of a line.
// Text longer than MaxTextChars bytes is truncated on a character boundary.
func (s *Store) SetText(n int, text string) error {
	return s.apply(n, "text", func(l *Line) error {
		if len(text) > MaxTextChars {
			log.Warn().Int("line", n).Int("len", len(text)).Msg("line text truncated")
			cut := MaxTextChars
			for cut > 0 && !utf8.RuneStart(text[cut]) {
				cut--
			}
			text = text[:cut]
		}
		l.Text = text
		return nil
	})
}

// apply runs fn against a scratch copy and commits only on success.
func (s *Store) apply(n int, field string, fn func(*Line) error) error {
	if err := checkLine(n); err != nil {
		log.Warn().Int("line", n).Str("field", field).Msg("line selected must be between 1 and 4")
		return err
	}

	l := s.lines[n-1]
	if err := fn(&l); err != nil {
		log.Warn().Int("line", n).Str("field", field).Err(err).Msg("line setting rejected")
		return err
	}
	s.lines[n-1] = l
	return nil
}

func checkLine(n int) error {
	if n < 1 || n > LineCount {
		return fmt.Errorf("%w: got %d", ErrLineOutOfRange, n)
	}
	return nil
}
