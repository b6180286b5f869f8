package billing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ssautomart/vehicle-invoice-service/internal/domain"
)

const tolerance = 1e-9

func item(amount float64) domain.LineItem {
	return domain.LineItem{Description: "x", Amount: amount}
}

func TestComputeTotalsSubtotals(t *testing.T) {
	parts := []domain.LineItem{item(218.64), item(33.88), item(366.94)}
	labor := []domain.LineItem{item(575.00), item(681.00)}

	got := ComputeTotals(parts, labor)

	assert.InDelta(t, 619.46, got.PartSubTotal, tolerance)
	assert.InDelta(t, 1256.00, got.LaborSubTotal, tolerance)
}

func TestComputeTotalsTaxSplit(t *testing.T) {
	parts := []domain.LineItem{item(1000)}
	labor := []domain.LineItem{item(500)}

	got := ComputeTotals(parts, labor)

	// CGST and SGST are identical fixed 9% levies on each subtotal.
	assert.InDelta(t, 90, got.CGSTOnPart, tolerance)
	assert.InDelta(t, 90, got.SGSTOnPart, tolerance)
	assert.InDelta(t, 45, got.CGSTOnLabor, tolerance)
	assert.InDelta(t, 45, got.SGSTOnLabor, tolerance)
	assert.Equal(t, got.CGSTOnPart, got.SGSTOnPart)
	assert.Equal(t, got.CGSTOnLabor, got.SGSTOnLabor)

	assert.InDelta(t, 1180, got.PartTotal, tolerance)
	assert.InDelta(t, 590, got.LaborTotal, tolerance)
	assert.InDelta(t, 1770, got.TotalAmount, tolerance)
	assert.InDelta(t, 1770, got.GrandTotalRounded, tolerance)
}

func TestComputeTotalsLineTaxPercentIgnored(t *testing.T) {
	base := []domain.LineItem{{Description: "x", TaxPercent: 18, Amount: 1000}}
	modified := []domain.LineItem{{Description: "x", TaxPercent: 28, Amount: 1000}}

	// The per-line tax percent is captured for display only; the aggregate
	// tax math must not change when it does.
	assert.Equal(t, ComputeTotals(base, nil), ComputeTotals(modified, nil))
}

func TestComputeTotalsEndToEndScenario(t *testing.T) {
	parts := []domain.LineItem{{Code: "08M9858100", Quantity: 1, Rate: 218.64, Amount: 218.64}}
	labor := []domain.LineItem{{Code: "A10AAACDVASEB", Quantity: 1, Rate: 575.00, Amount: 575.00}}

	got := ComputeTotals(parts, labor)

	assert.InDelta(t, 218.64, got.PartSubTotal, tolerance)
	assert.InDelta(t, 575.00, got.LaborSubTotal, tolerance)
	assert.InDelta(t, 19.6776, got.CGSTOnPart, tolerance)
	assert.InDelta(t, 19.6776, got.SGSTOnPart, tolerance)
	assert.InDelta(t, 51.75, got.CGSTOnLabor, tolerance)
	assert.InDelta(t, 51.75, got.SGSTOnLabor, tolerance)
	assert.InDelta(t, 936.4952, got.TotalAmount, 1e-6)
	assert.Equal(t, 936.0, got.GrandTotalRounded)
}

func TestComputeTotalsIdempotent(t *testing.T) {
	parts := []domain.LineItem{item(6053.38), item(-12.5)}
	labor := []domain.LineItem{item(3798.00)}

	first := ComputeTotals(parts, labor)
	second := ComputeTotals(parts, labor)

	assert.Equal(t, first, second)
}

func TestComputeTotalsEmpty(t *testing.T) {
	got := ComputeTotals(nil, nil)

	assert.Zero(t, got.PartSubTotal)
	assert.Zero(t, got.LaborSubTotal)
	assert.Zero(t, got.TotalAmount)
	assert.Zero(t, got.GrandTotalRounded)
}

func TestRoundHalfUp(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{916.50, 917},
		{916.49, 916},
		{936.4952, 936},
		{0.5, 1},
		{11625.0, 11625},
		{-0.5, 0}, // floor(-0.5 + 0.5), Math.round semantics
	}
	for _, tt := range tests {
		if got := RoundHalfUp(tt.in); got != tt.want {
			t.Errorf("RoundHalfUp(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestRoundedGrandTotalStaysWithinOneUnit(t *testing.T) {
	parts := []domain.LineItem{item(6053.38)}
	labor := []domain.LineItem{item(3798.00)}

	got := ComputeTotals(parts, labor)

	diff := got.GrandTotalRounded - got.TotalAmount
	assert.Less(t, diff, 1.0)
	assert.Greater(t, diff, -1.0)
}
