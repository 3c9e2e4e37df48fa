// internal/sign/variables.go
package sign

import (
	"context"
	"fmt"

	"github.com/tamzrod/viewmarq/internal/codec"
	"github.com/tamzrod/viewmarq/internal/registers"
)

// ErrSlotOutOfRange is returned for a variable slot the sign does not have.
var ErrSlotOutOfRange = registers.ErrSlotOutOfRange

// UpdateDecimal stores an integer in numeric variable slot (1..32).
//
// With adjust set, the DEC field of the current command is resized to the
// value's digit count first. A resized command is resent before the value
// is written; an unchanged one is left alone.
func (s *Sign) UpdateDecimal(ctx context.Context, slot int, v int32, adjust bool) error {
	return s.updateDecimal(ctx, slot, v, -1, adjust)
}

// UpdateReal stores a real value in numeric variable slot (1..32).
// The value is scaled to an integer by its significant fractional digits;
// with adjust set, the DEC field also gets the matching decimal places.
func (s *Sign) UpdateReal(ctx context.Context, slot int, v float64, adjust bool) error {
	scaled, places, err := codec.ScaleReal(v)
	if err != nil {
		return fmt.Errorf("sign: decimal %d: %w", slot, err)
	}
	return s.updateDecimal(ctx, slot, scaled, places, adjust)
}

func (s *Sign) updateDecimal(ctx context.Context, slot int, v int32, places int, adjust bool) error {
	hiAddr, loAddr, err := registers.DecimalAddrs(slot)
	if err != nil {
		return fmt.Errorf("sign: %w", err)
	}

	if adjust {
		changed, err := s.cmd.FitDecimal(codec.DigitCount(int64(v)), places)
		if err != nil && !skipFit(err, slot, "decimal") {
			return fmt.Errorf("sign: decimal %d: %w", slot, err)
		}
		if changed {
			if err := s.resend(ctx); err != nil {
				return err
			}
		}
	}

	lo, hi := codec.SplitInt32(v)
	if err := s.sess.WriteRegisters(ctx, loAddr, []uint16{lo}); err != nil {
		return err
	}
	return s.sess.WriteRegisters(ctx, hiAddr, []uint16{hi})
}

// UpdateString stores up to 100 characters in string variable slot (1..16).
//
// With adjust set, the STR field of the current command is resized to the
// text length first, resending the command when it changed.
func (s *Sign) UpdateString(ctx context.Context, slot int, text string, adjust bool) error {
	addr, err := registers.StringAddr(slot)
	if err != nil {
		return fmt.Errorf("sign: %w", err)
	}
	regs, err := codec.PackString(text)
	if err != nil {
		return fmt.Errorf("sign: string %d: %w", slot, err)
	}

	if adjust {
		changed, err := s.cmd.FitString(len(text))
		if err != nil && !skipFit(err, slot, "string") {
			return fmt.Errorf("sign: string %d: %w", slot, err)
		}
		if changed {
			if err := s.resend(ctx); err != nil {
				return err
			}
		}
	}

	return s.sess.WriteRegisters(ctx, addr, regs)
}
