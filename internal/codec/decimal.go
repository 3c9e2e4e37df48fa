// internal/codec/decimal.go
package codec

import (
	"errors"
	"fmt"
	"math"
)

// MaxPlaces is the largest decimal point position the DEC field can encode.
const MaxPlaces = 9

var ErrOverflow = errors.New("codec: value does not fit a 32-bit register pair")

// FractionDigits counts the significant fractional decimal digits of v.
// Digits are peeled off one at a time until the residual is within ~1%
// of a whole digit in either direction.
func FractionDigits(v float64) int {
	frac := math.Abs(v)
	frac -= math.Trunc(frac)

	places := 0
	for frac >= 0.01 && frac < 0.999 && places < MaxPlaces {
		frac *= 10
		frac -= math.Trunc(frac)
		places++
	}
	return places
}

// ScaleReal converts a real value into the integer the sign stores and the
// decimal point position that renders it back.
func ScaleReal(v float64) (scaled int32, places int, err error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, 0, fmt.Errorf("%w: %v", ErrOverflow, v)
	}

	places = FractionDigits(v)
	s := math.Round(v * math.Pow10(places))
	if s > math.MaxInt32 || s < math.MinInt32 {
		return 0, 0, fmt.Errorf("%w: %v scaled by 10^%d", ErrOverflow, v, places)
	}
	return int32(s), places, nil
}

// DigitCount returns the number of decimal digits in |v|. Zero has none.
func DigitCount(v int64) int {
	n := 0
	for v != 0 {
		v /= 10
		n++
	}
	return n
}
