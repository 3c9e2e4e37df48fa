// internal/display/compile.go
package display

import (
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/tamzrod/viewmarq/internal/registers"
)

// Sign geometry.
const (
	lineHeight  = 8
	windowWidth = "287"
)

var scrollTags = map[ScrollType]string{
	ScrollLeft:      "<SL>",
	ScrollRight:     "<SR>",
	ScrollUp:        "<SU>",
	ScrollDown:      "<SD>",
	LeftJustified:   "<LJ>",
	CenterJustified: "<CJ>",
	RightJustified:  "<RJ>",
}

var colorTags = map[Color]string{
	Green: "<GRN>",
	Red:   "<RED>",
	Amber: "<AMB>",
}

var rateLetters = map[Speed]string{
	Slow:   "S",
	Medium: "M",
	Fast:   "F",
}

var blinkLetters = map[Blink]string{
	BlinkSlow:   "S",
	BlinkMedium: "M",
	BlinkFast:   "F",
	BlinkNone:   "N",
}

// Compile renders the sign command for the given lines.
//
// Layout:
//
//	<ID n><CLR><MTN d>                 test pattern active
//	<ID n><CLR>{block for each enabled line, top to bottom}
//
// Bytes <= 0x19 are dropped from the result and the result is capped at
// registers.MaxCommandChars.
func Compile(lines [LineCount]Line, id int, pattern TestPattern) string {
	var b strings.Builder

	b.WriteString("<ID ")
	b.WriteString(strconv.Itoa(id))
	b.WriteString("><CLR>")

	if pattern != TestNone {
		b.WriteString("<MTN ")
		b.WriteString(strconv.Itoa(int(pattern)))
		b.WriteString(">")
	} else {
		for i := range lines {
			if lines[i].Enabled {
				writeLine(&b, lines, i)
			}
		}
	}

	out := stripControl(b.String())
	if len(out) > registers.MaxCommandChars {
		log.Warn().Int("len", len(out)).Int("max", registers.MaxCommandChars).Msg("command truncated")
		out = out[:registers.MaxCommandChars]
	}
	return out
}

// writeLine renders the block of line i (0-based).
//
// Retention: a tag the enabled line above already set is not repeated.
//   - window (and with it scroll) when the scroll type matches
//   - color when the color matches
//
// Justified scroll types are always re-emitted.
func writeLine(b *strings.Builder, lines [LineCount]Line, i int) {
	l := lines[i]
	top := i * lineHeight

	var winRetained, colorRetained bool
	if i > 0 && lines[i-1].Enabled {
		winRetained = lines[i-1].Scroll == l.Scroll
		colorRetained = lines[i-1].Color == l.Color
	}

	if !winRetained {
		// window extends over following lines that are off or scroll the same way
		below := 0
		for j := i + 1; j < LineCount; j++ {
			if lines[j].Scroll != l.Scroll && lines[j].Enabled {
				break
			}
			below++
		}
		bottom := top + lineHeight + below*lineHeight - 1

		b.WriteString("<WIN 0 ")
		b.WriteString(strconv.Itoa(top))
		b.WriteString(" " + windowWidth + " ")
		b.WriteString(twoDigits(bottom))
		b.WriteString(">")
	}

	b.WriteString("<POS 0 ")
	b.WriteString(strconv.Itoa(top))
	b.WriteString(">")

	if !winRetained || l.Scroll.Justified() {
		b.WriteString(scrollTags[l.Scroll])
		if !l.Scroll.Justified() {
			b.WriteString("<S ")
			b.WriteString(rateLetters[l.Speed])
			b.WriteString(">")
		}
	}

	b.WriteString("<BL ")
	b.WriteString(blinkLetters[l.Blink])
	b.WriteString(">")

	b.WriteString("<CS ")
	b.WriteString(strconv.Itoa(l.TextSize))
	b.WriteString(">")

	if !colorRetained {
		b.WriteString(colorTags[l.Color])
	}

	b.WriteString("<T>")
	b.WriteString(l.Text)
	b.WriteString("</T>")
}

// twoDigits renders window bottoms, which the sign reads as two digits.
func twoDigits(v int) string {
	if v < 10 {
		return "0" + strconv.Itoa(v)
	}
	return strconv.Itoa(v)
}

func stripControl(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] > 0x19 {
			out = append(out, s[i])
		}
	}
	return string(out)
}
