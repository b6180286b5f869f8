package billing

import (
	"math"

	"github.com/ssautomart/vehicle-invoice-service/internal/domain"
)

// CGSTRate and SGSTRate are the two components of the fixed tax regime.
// Both are applied to the part and labor subtotals; the tax percent stored
// on individual line items is display-only and never enters this math.
const (
	CGSTRate = 0.09
	SGSTRate = 0.09
)

// Totals holds the aggregate monetary figures of one invoice. Only
// GrandTotalRounded carries rounding; every other field is an exact sum.
type Totals struct {
	PartSubTotal  float64
	LaborSubTotal float64

	CGSTOnPart  float64
	SGSTOnPart  float64
	CGSTOnLabor float64
	SGSTOnLabor float64

	PartTotal  float64
	LaborTotal float64

	TotalAmount       float64
	GrandTotalRounded float64
}

// ComputeTotals aggregates part and labor line items into the invoice
// summary figures. It is a pure function of its inputs and is safe to
// invoke redundantly: identical inputs always produce identical output.
func ComputeTotals(parts, labor []domain.LineItem) Totals {
	var t Totals
	for _, li := range parts {
		t.PartSubTotal += li.Amount
	}
	for _, li := range labor {
		t.LaborSubTotal += li.Amount
	}

	t.CGSTOnPart = t.PartSubTotal * CGSTRate
	t.SGSTOnPart = t.PartSubTotal * SGSTRate
	t.CGSTOnLabor = t.LaborSubTotal * CGSTRate
	t.SGSTOnLabor = t.LaborSubTotal * SGSTRate

	t.PartTotal = t.PartSubTotal + t.CGSTOnPart + t.SGSTOnPart
	t.LaborTotal = t.LaborSubTotal + t.CGSTOnLabor + t.SGSTOnLabor

	t.TotalAmount = t.PartTotal + t.LaborTotal
	t.GrandTotalRounded = RoundHalfUp(t.TotalAmount)

	return t
}

// RoundHalfUp rounds to the nearest integer with halves going up
// (floor(x+0.5), the rounding rule used on the grand total).
func RoundHalfUp(x float64) float64 {
	return math.Floor(x + 0.5)
}
