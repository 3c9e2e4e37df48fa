// internal/command/command.go
package command

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"

	"github.com/tamzrod/viewmarq/internal/registers"
)

// Live variable field markers.
//
// A numeric field looks like "DEC v W P ..." and a string field like
// "STR v W>", where W is the width (digit or character count) starting
// at offset 6 from the marker. For numeric fields the decimal point
// position P follows W after one space.
const (
	DecimalMarker = "DEC"
	StringMarker  = "STR"

	widthOffset = 6
)

// MaxDecimalDigits is the widest numeric field the sign renders.
const MaxDecimalDigits = 11

var (
	ErrNoField        = errors.New("command: live variable field not present")
	ErrZeroDigits     = errors.New("command: zero digit width")
	ErrFieldTooWide   = errors.New("command: field width out of range")
	ErrMalformedField = errors.New("command: malformed field")
)

// Command is the last rendered sign command.
// Width edits happen in place and may grow or shrink the buffer.
type Command struct {
	buf []byte
}

// New wraps a command string.
func New(s string) *Command {
	return &Command{buf: []byte(s)}
}

func (c *Command) String() string { return string(c.buf) }
func (c *Command) Len() int       { return len(c.buf) }

// Set replaces the whole command.
func (c *Command) Set(s string) { c.buf = append(c.buf[:0], s...) }

// Reset clears the command.
func (c *Command) Reset() { c.buf = c.buf[:0] }

// FitDecimal rewrites the first numeric field so it is digits wide and,
// when places >= 0, shows places decimal digits.
// It reports whether the command changed.
func (c *Command) FitDecimal(digits, places int) (bool, error) {
	loc := bytes.Index(c.buf, []byte(DecimalMarker))
	if loc < 0 {
		return false, ErrNoField
	}
	if digits == 0 {
		return false, ErrZeroDigits
	}
	if digits < 0 || digits > MaxDecimalDigits {
		return false, fmt.Errorf("%w: %d digits (max %d)", ErrFieldTooWide, digits, MaxDecimalDigits)
	}
	if places > 9 {
		return false, fmt.Errorf("%w: %d decimal places", ErrFieldTooWide, places)
	}

	// width is one digit followed by a space, or two digits
	start := loc + widthOffset
	if start+2 > len(c.buf) {
		return false, fmt.Errorf("%w: %s at %d", ErrMalformedField, DecimalMarker, loc)
	}
	if !isDigit(c.buf[start]) {
		return false, fmt.Errorf("%w: %s at %d has no width", ErrMalformedField, DecimalMarker, loc)
	}
	end := start + 1
	if isDigit(c.buf[start+1]) {
		end = start + 2
	}
	if places >= 0 && (end+1 >= len(c.buf) || c.buf[end] != ' ' || !isDigit(c.buf[end+1])) {
		return false, fmt.Errorf("%w: %s at %d has no decimal places", ErrMalformedField, DecimalMarker, loc)
	}

	changed := c.replace(start, end, strconv.Itoa(digits))

	if places >= 0 {
		p := start + len(strconv.Itoa(digits)) + 1
		want := byte('0' + places)
		if c.buf[p] != want {
			c.buf[p] = want
			changed = true
		}
	}

	return changed, nil
}

// FitString rewrites the first string field so it is chars wide.
// It reports whether the command changed.
func (c *Command) FitString(chars int) (bool, error) {
	loc := bytes.Index(c.buf, []byte(StringMarker))
	if loc < 0 {
		return false, ErrNoField
	}
	if chars < 0 || chars > registers.StringMaxChars {
		return false, fmt.Errorf("%w: %d chars (max %d)", ErrFieldTooWide, chars, registers.StringMaxChars)
	}

	start := loc + widthOffset
	if start >= len(c.buf) {
		return false, fmt.Errorf("%w: %s at %d", ErrMalformedField, StringMarker, loc)
	}
	end := bytes.IndexByte(c.buf[start:], '>')
	if end < 1 {
		return false, fmt.Errorf("%w: %s at %d is not closed", ErrMalformedField, StringMarker, loc)
	}

	return c.replace(start, start+end, strconv.Itoa(chars)), nil
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// replace swaps buf[start:end] for s, shifting the tail as needed.
func (c *Command) replace(start, end int, s string) bool {
	if string(c.buf[start:end]) == s {
		return false
	}

	tail := append([]byte(nil), c.buf[end:]...)
	c.buf = append(append(c.buf[:start], s...), tail...)
	return true
}
