package billing

import "strconv"

// DefaultTaxPercent is the tax rate pre-filled on new line items. It is
// stored per line for display but does not feed the aggregate tax math.
const DefaultTaxPercent = 18

// Calculator computes the derived amount of a single line item.
//
// ClampNegative controls what happens when the discount exceeds
// quantity x rate. The default (false) lets the amount go negative,
// matching the behavior the billing rules were transcribed from.
type Calculator struct {
	ClampNegative bool
}

// ComputeAmount returns quantity x rate - discount.
func (c Calculator) ComputeAmount(quantity, rate, discount float64) float64 {
	amount := quantity*rate - discount
	if c.ClampNegative && amount < 0 {
		return 0
	}
	return amount
}

// ParseNumber parses a numeric form field leniently: any input that fails
// to parse as a number is treated as zero. This is a deliberate recovery
// policy, not an error path.
func ParseNumber(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
