package utility

import (
	"math"
	"testing"
)

// TestAggregateIdentity verifies equal scores aggregate to themselves
func TestAggregateIdentity(t *testing.T) {
	for _, s := range []float64{0.1, 0.5, 0.9, 1} {
		for n := 1; n <= 6; n++ {
			scores := make([]float64, n)
			for i := range scores {
				scores[i] = s
			}
			if got := Aggregate(scores); math.Abs(got-s) > 1e-12 {
				t.Errorf("Aggregate(%d x %v) = %v", n, s, got)
			}
		}
	}
}

// TestAggregateVeto verifies any non-positive score zeroes the result
func TestAggregateVeto(t *testing.T) {
	tests := [][]float64{
		{0.5, 0, 0.8},
		{0.5, -0.1, 0.8},
		{0, 1, 1},
		{1, 1, 0},
		{0.9, math.NaN()},
	}
	for _, scores := range tests {
		if got := Aggregate(scores); got != 0 {
			t.Errorf("Aggregate(%v) = %v, want 0", scores, got)
		}
	}
	if got := Aggregate(nil); got != 0 {
		t.Errorf("Aggregate(nil) = %v, want 0", got)
	}
}

// TestAggregateGeometric verifies a mixed list
func TestAggregateGeometric(t *testing.T) {
	got := Aggregate([]float64{0.25, 1})
	if math.Abs(got-0.5) > 1e-12 {
		t.Errorf("Aggregate([0.25 1]) = %v, want 0.5", got)
	}
}

// TestApplyWeight verifies plain unclamped multiplication
func TestApplyWeight(t *testing.T) {
	if got := ApplyWeight(0.8, 1.3); math.Abs(got-1.04) > 1e-12 {
		t.Errorf("ApplyWeight(0.8,1.3) = %v", got)
	}
	if got := ApplyWeight(0, 5); got != 0 {
		t.Errorf("ApplyWeight(0,5) = %v", got)
	}
	if got := ApplyWeight(0.37, 1); got != 0.37 {
		t.Errorf("ApplyWeight(0.37,1) = %v", got)
	}
}
