package utils

import "testing"

func TestRoundFloat(t *testing.T) {
	tests := []struct {
		val  float64
		want float64
	}{
		{10.004, 10.0},
		{10.006, 10.01},
		// Scaling by 100 lands the x.xx5 inputs on an exact .5
		// midpoint, so they round half-up.
		{10.005, 10.01},
		{10.015, 10.02},
		{10.025, 10.03},
		{0, 0},
		{-2.5, -2.5},
	}

	for _, tc := range tests {
		if got := RoundFloat(tc.val, 2); got != tc.want {
			t.Fatalf("RoundFloat(%v, 2) = %v, want %v", tc.val, got, tc.want)
		}
	}
}

func TestRoundFloatIdempotent(t *testing.T) {
	vals := []float64{10.005, 3.14159, 0.333, 99.999, 0.005}
	for _, v := range vals {
		once := RoundFloat(v, 2)
		twice := RoundFloat(once, 2)
		if once != twice {
			t.Fatalf("re-rounding %v changed %v to %v", v, once, twice)
		}
	}
}
