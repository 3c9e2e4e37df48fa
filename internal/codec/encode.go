// internal/codec/encode.go
package codec

import (
	"errors"
	"fmt"

	"github.com/tamzrod/viewmarq/internal/registers"
)

// Terminator closes every command message.
// The sign stops reading the command area at this sequence.
var Terminator = [3]byte{0x0D, 0x0D, 0xCC}

var ErrStringTooLong = errors.New("codec: string variable too long")

// PackCommand converts an ASCII command into command-area words.
// Each word carries two characters, earlier character in the low byte.
// The result always ends on the terminator:
//   - odd length: last char pairs with Terminator[0], then Terminator[1..2]
//   - even length: one final word of Terminator[0..1]
//
// len(result) is the authoritative message length.
// No IO. No side effects.
func PackCommand(cmd string) []uint16 {
	b := []byte(cmd)
	words := make([]uint16, 0, len(b)/2+2)

	i := 0
	for ; i+1 < len(b); i += 2 {
		words = append(words, pair(b[i], b[i+1]))
	}

	if i < len(b) {
		words = append(words,
			pair(b[i], Terminator[0]),
			pair(Terminator[1], Terminator[2]),
		)
		return words
	}

	return append(words, pair(Terminator[0], Terminator[1]))
}

// PackString converts string variable text into a full 50-register slot.
// Characters are paired like PackCommand; an odd trailing character sits
// alone in the low byte. Unused registers are zero.
func PackString(text string) ([]uint16, error) {
	b := []byte(text)
	if len(b) > registers.StringMaxChars {
		return nil, fmt.Errorf("%w: %d chars (max %d)", ErrStringTooLong, len(b), registers.StringMaxChars)
	}

	regs := make([]uint16, registers.StringRegisters)
	for i := 0; i < len(b); i += 2 {
		var next byte
		if i+1 < len(b) {
			next = b[i+1]
		}
		regs[i/2] = pair(b[i], next)
	}

	return regs, nil
}

// SplitInt32 splits a signed 32-bit value into its low and high words.
func SplitInt32(v int32) (lo, hi uint16) {
	u := uint32(v)
	return uint16(u), uint16(u >> 16)
}

// Chunk splits words into consecutive slices of at most max words.
// The returned slices alias words.
func Chunk(words []uint16, max int) [][]uint16 {
	if max <= 0 || len(words) == 0 {
		return nil
	}

	out := make([][]uint16, 0, (len(words)+max-1)/max)
	for start := 0; start < len(words); start += max {
		end := start + max
		if end > len(words) {
			end = len(words)
		}
		out = append(out, words[start:end])
	}
	return out
}

func pair(first, second byte) uint16 {
	return uint16(second)<<8 | uint16(first)
}
