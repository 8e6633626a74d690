// README: Common money value object used across modules.
package types

import (
	"fmt"
	"math"
	"strconv"
)

// Money is an amount in integer cents. Checkout math happens in cents
// so repeated rounding cannot drift.
type Money int64

// FromDollars converts a decimal dollar amount, rounding halves away
// from zero at the cent. Amounts like 1.005 have no exact float64 form
// (1.005*100 is 100.4999...), so the product is nudged toward the
// nearest representable half cent before rounding.
func FromDollars(v float64) Money {
	cents := v * 100
	return Money(math.Round(cents + math.Copysign(1e-6, cents)))
}

func (m Money) Dollars() float64 {
	return float64(m) / 100
}

func (m Money) String() string {
	return fmt.Sprintf("$%.2f", float64(m)/100)
}

// MarshalJSON renders the amount as a plain two-decimal number, the
// format the ordering and runner clients expect.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatFloat(float64(m)/100, 'f', 2, 64)), nil
}

func (m *Money) UnmarshalJSON(b []byte) error {
	v, err := strconv.ParseFloat(string(b), 64)
	if err != nil {
		return err
	}
	*m = FromDollars(v)
	return nil
}
