package billing

import (
	"math"
	"testing"
)

func TestComputeAmount(t *testing.T) {
	calc := Calculator{}

	tests := []struct {
		name     string
		qty      float64
		rate     float64
		discount float64
		want     float64
	}{
		{"simple", 1, 218.64, 0, 218.64},
		{"quantity_multiplies", 2, 16.94, 0, 33.88},
		{"fractional_quantity", 3.60, 974.58, 0, 3508.488},
		{"flat_discount", 1, 500, 50, 450},
		{"discount_exceeds_value", 1, 100, 150, -50},
		{"all_zero", 0, 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calc.ComputeAmount(tt.qty, tt.rate, tt.discount)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("ComputeAmount(%v, %v, %v) = %v, want %v", tt.qty, tt.rate, tt.discount, got, tt.want)
			}
		})
	}
}

func TestComputeAmountClampNegative(t *testing.T) {
	calc := Calculator{ClampNegative: true}

	if got := calc.ComputeAmount(1, 100, 150); got != 0 {
		t.Errorf("clamped ComputeAmount = %v, want 0", got)
	}
	if got := calc.ComputeAmount(1, 100, 50); got != 50 {
		t.Errorf("ComputeAmount = %v, want 50", got)
	}
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"218.64", 218.64},
		{"0", 0},
		{"-12.5", -12.5},
		{"", 0},
		{"abc", 0},
		{"12,5", 0},
	}
	for _, tt := range tests {
		if got := ParseNumber(tt.in); got != tt.want {
			t.Errorf("ParseNumber(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
