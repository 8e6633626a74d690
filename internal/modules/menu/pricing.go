// README: Checkout pricing: 7% tax, flat service fee, integer-cent totals.
package menu

import (
	"math"

	"gameday/internal/types"
)

const (
	// TaxRate applies to the item subtotal only.
	TaxRate = 0.07
	// ServiceFee is a flat per-order charge.
	ServiceFee = types.Money(199)
)

// Pricing implements the order module's pricing dependency.
type Pricing struct{}

func NewPricing() *Pricing {
	return &Pricing{}
}

// Quote computes tax on the subtotal (rounded at the cent), the flat
// service fee, and the grand total including tip.
func (p *Pricing) Quote(subtotal, tip types.Money) (tax, serviceFee, total types.Money) {
	tax = types.Money(math.Round(float64(subtotal) * TaxRate))
	serviceFee = ServiceFee
	total = subtotal + tax + serviceFee + tip
	return tax, serviceFee, total
}
