// internal/registers/address.go
package registers

import (
	"errors"
	"fmt"
)

// ErrSlotOutOfRange reports a variable slot number the sign does not have.
var ErrSlotOutOfRange = errors.New("registers: variable slot out of range")

// DecimalAddrs returns the high and low word registers of decimal variable n (1-based).
func DecimalAddrs(n int) (hi, lo uint16, err error) {
	if n < 1 || n > DecimalSlots {
		return 0, 0, fmt.Errorf("%w: decimal variable %d not in 1-%d", ErrSlotOutOfRange, n, DecimalSlots)
	}
	hi = DecimalBase + uint16((n-1)*DecimalRegisters)
	return hi, hi + 1, nil
}

// StringAddr returns the first register of string variable n (1-based).
func StringAddr(n int) (uint16, error) {
	if n < 1 || n > StringSlots {
		return 0, fmt.Errorf("%w: string variable %d not in 1-%d", ErrSlotOutOfRange, n, StringSlots)
	}
	return StringBase + uint16((n-1)*StringRegisters), nil
}
