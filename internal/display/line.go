// internal/display/line.go
package display

import (
	"fmt"
	"strings"
)

// LineCount is the number of text regions on the sign.
const LineCount = 4

// MaxTextChars bounds the literal text of one line.
const MaxTextChars = 255

// MaxTextSize is the largest user-facing text size.
const MaxTextSize = 11

type Color int

const (
	Green Color = iota
	Red
	Amber
)

type ScrollType int

const (
	ScrollLeft ScrollType = iota
	ScrollRight
	ScrollUp
	ScrollDown
	LeftJustified
	CenterJustified
	RightJustified
)

// Justified reports whether the type positions text instead of moving it.
func (s ScrollType) Justified() bool {
	return s >= LeftJustified && s <= RightJustified
}

type Speed int

const (
	Slow Speed = iota
	Medium
	Fast
)

type Blink int

const (
	BlinkSlow Blink = iota
	BlinkMedium
	BlinkFast
	BlinkNone
)

// TestPattern is the maintenance test state of the sign.
// Any value other than TestNone replaces all line rendering.
type TestPattern int

const (
	TestGreen TestPattern = iota
	TestRed
	TestAmber
	TestAdvanced
	TestNone
)

// Line holds the visual attributes of one text region.
// TextSize is stored in device character-set order, not user order.
type Line struct {
	Enabled  bool
	Color    Color
	TextSize int
	Scroll   ScrollType
	Speed    Speed
	Blink    Blink
	Text     string
}

// DefaultLine returns the power-on attributes of a line.
func DefaultLine() Line {
	return Line{
		Color:    Green,
		TextSize: CharSet(0),
		Scroll:   LeftJustified,
		Speed:    Medium,
		Blink:    BlinkNone,
	}
}

// CharSet maps a user-facing text size (smallest 0 .. largest 11) to the
// sign's character set number. The device orders sets 2,0,1,3,4,...
func CharSet(size int) int {
	switch size {
	case 0:
		return 2
	case 1:
		return 0
	case 2:
		return 1
	default:
		return size
	}
}

// ---- names ----

var colorNames = map[Color]string{
	Green: "green",
	Red:   "red",
	Amber: "amber",
}

var scrollNames = map[ScrollType]string{
	ScrollLeft:      "scroll_left",
	ScrollRight:     "scroll_right",
	ScrollUp:        "scroll_up",
	ScrollDown:      "scroll_down",
	LeftJustified:   "left_justified",
	CenterJustified: "center_justified",
	RightJustified:  "right_justified",
}

var speedNames = map[Speed]string{
	Slow:   "slow",
	Medium: "medium",
	Fast:   "fast",
}

var blinkNames = map[Blink]string{
	BlinkSlow:   "slow",
	BlinkMedium: "medium",
	BlinkFast:   "fast",
	BlinkNone:   "none",
}

var testNames = map[TestPattern]string{
	TestGreen:    "green",
	TestRed:      "red",
	TestAmber:    "amber",
	TestAdvanced: "advanced",
	TestNone:     "none",
}

func (c Color) String() string       { return name(colorNames, c) }
func (s ScrollType) String() string  { return name(scrollNames, s) }
func (s Speed) String() string       { return name(speedNames, s) }
func (b Blink) String() string       { return name(blinkNames, b) }
func (p TestPattern) String() string { return name(testNames, p) }

func ParseColor(s string) (Color, error)             { return parse(colorNames, "color", s) }
func ParseScrollType(s string) (ScrollType, error)   { return parse(scrollNames, "scroll type", s) }
func ParseSpeed(s string) (Speed, error)             { return parse(speedNames, "speed", s) }
func ParseBlink(s string) (Blink, error)             { return parse(blinkNames, "blink", s) }
func ParseTestPattern(s string) (TestPattern, error) { return parse(testNames, "test pattern", s) }

func name[T comparable](names map[T]string, v T) string {
	if n, ok := names[v]; ok {
		return n
	}
	return fmt.Sprintf("invalid(%d)", any(v))
}

func parse[T comparable](names map[T]string, kind, s string) (T, error) {
	want := strings.ToLower(strings.TrimSpace(s))
	for v, n := range names {
		if n == want {
			return v, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("%w: unknown %s %q", ErrInvalidValue, kind, s)
}
