// internal/display/store_test.go
package display

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStore_Defaults(t *testing.T) {
	s := NewStore()
	lines := s.Lines()

	assert.True(t, lines[0].Enabled)
	for i := 1; i < LineCount; i++ {
		assert.False(t, lines[i].Enabled, "line %d", i+1)
	}
	for i, l := range lines {
		assert.Equal(t, Green, l.Color, "line %d", i+1)
		assert.Equal(t, 2, l.TextSize, "line %d", i+1)
		assert.Equal(t, LeftJustified, l.Scroll, "line %d", i+1)
		assert.Equal(t, Medium, l.Speed, "line %d", i+1)
		assert.Equal(t, BlinkNone, l.Blink, "line %d", i+1)
		assert.Empty(t, l.Text, "line %d", i+1)
	}
}

func TestStore_LineOutOfRange(t *testing.T) {
	s := NewStore()
	before := s.Lines()

	for _, n := range []int{0, 5, -1} {
		assert.ErrorIs(t, s.SetLine(n, true), ErrLineOutOfRange)
		assert.ErrorIs(t, s.SetColor(n, Red), ErrLineOutOfRange)
		assert.ErrorIs(t, s.SetTextSize(n, 4), ErrLineOutOfRange)
		assert.ErrorIs(t, s.SetScrollType(n, ScrollUp), ErrLineOutOfRange)
		assert.ErrorIs(t, s.SetScrollSpeed(n, Fast), ErrLineOutOfRange)
		assert.ErrorIs(t, s.SetBlink(n, BlinkFast), ErrLineOutOfRange)
		assert.ErrorIs(t, s.SetText(n, "x"), ErrLineOutOfRange)
		_, err := s.Line(n)
		assert.ErrorIs(t, err, ErrLineOutOfRange)
	}

	assert.Equal(t, before, s.Lines())
}

func TestStore_InvalidValueRejected(t *testing.T) {
	s := NewStore()
	before := s.Lines()

	assert.ErrorIs(t, s.SetColor(1, Color(7)), ErrInvalidValue)
	assert.ErrorIs(t, s.SetTextSize(1, 12), ErrInvalidValue)
	assert.ErrorIs(t, s.SetTextSize(1, -1), ErrInvalidValue)
	assert.ErrorIs(t, s.SetScrollType(1, ScrollType(9)), ErrInvalidValue)
	assert.ErrorIs(t, s.SetScrollSpeed(1, Speed(3)), ErrInvalidValue)
	assert.ErrorIs(t, s.SetBlink(1, Blink(4)), ErrInvalidValue)

	assert.Equal(t, before, s.Lines())
}

func TestStore_SetAndRead(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.SetLine(3, true))
	require.NoError(t, s.SetColor(3, Amber))
	require.NoError(t, s.SetTextSize(3, 1))
	require.NoError(t, s.SetScrollType(3, ScrollDown))
	require.NoError(t, s.SetScrollSpeed(3, Slow))
	require.NoError(t, s.SetBlink(3, BlinkMedium))
	require.NoError(t, s.SetText(3, "LINE 3"))

	l, err := s.Line(3)
	require.NoError(t, err)
	assert.Equal(t, Line{
		Enabled:  true,
		Color:    Amber,
		TextSize: 0,
		Scroll:   ScrollDown,
		Speed:    Slow,
		Blink:    BlinkMedium,
		Text:     "LINE 3",
	}, l)
}

func TestStore_TextTruncated(t *testing.T) {
	s := NewStore()
	long := make([]byte, MaxTextChars+10)
	for i := range long {
		long[i] = 'a'
	}
	require.NoError(t, s.SetText(1, string(long)))

	l, err := s.Line(1)
	require.NoError(t, err)
	assert.Len(t, l.Text, MaxTextChars)
}

func TestStore_TextTruncatedOnCharBoundary(t *testing.T) {
	s := NewStore()
	text := strings.Repeat("a", MaxTextChars-1) + "°C"
	require.NoError(t, s.SetText(1, text))

	l, err := s.Line(1)
	require.NoError(t, err)
	assert.True(t, utf8.ValidString(l.Text))
	assert.Equal(t, strings.Repeat("a", MaxTextChars-1), l.Text)
}

func TestStore_Reset(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.SetLine(1, false))
	require.NoError(t, s.SetLine(4, true))
	require.NoError(t, s.SetColor(2, Red))
	require.NoError(t, s.SetText(4, "x"))

	s.Reset()
	assert.Equal(t, NewStore().Lines(), s.Lines())
}

func TestParse(t *testing.T) {
	c, err := ParseColor("Amber")
	require.NoError(t, err)
	assert.Equal(t, Amber, c)

	st, err := ParseScrollType("center_justified")
	require.NoError(t, err)
	assert.Equal(t, CenterJustified, st)

	sp, err := ParseSpeed("fast")
	require.NoError(t, err)
	assert.Equal(t, Fast, sp)

	b, err := ParseBlink("none")
	require.NoError(t, err)
	assert.Equal(t, BlinkNone, b)

	p, err := ParseTestPattern("advanced")
	require.NoError(t, err)
	assert.Equal(t, TestAdvanced, p)

	_, err = ParseColor("blue")
	assert.ErrorIs(t, err, ErrInvalidValue)

	assert.Equal(t, "scroll_left", ScrollLeft.String())
	assert.Equal(t, "invalid(9)", Color(9).String())
}
