package utility

import "testing"

// TestCalculateDurationFixed verifies the no-jitter paths
func TestCalculateDurationFixed(t *testing.T) {
	tests := []struct {
		base     int
		variance float64
		want     int
	}{
		{100, 0, 100},
		{1, 0.5, 1},
		{300, 0, 255},
		{0, 0.5, 1},
		{-5, 0, 1},
		{40, -0.1, 40},
	}
	for _, tt := range tests {
		if got := CalculateDuration(tt.base, tt.variance, 7); got != tt.want {
			t.Errorf("CalculateDuration(%d,%v) = %d, want %d", tt.base, tt.variance, got, tt.want)
		}
		if got := RandomDuration(tt.base, tt.variance); got != tt.want {
			t.Errorf("RandomDuration(%d,%v) = %d, want %d", tt.base, tt.variance, got, tt.want)
		}
	}
}

// TestCalculateDurationRange verifies jitter bounds over many seeds
func TestCalculateDurationRange(t *testing.T) {
	tests := []struct {
		base     int
		variance float64
		lo, hi   int
	}{
		{200, 0.5, 100, 255},
		{10, 0.2, 8, 12},
		{16, 0.2, 12, 19},
		{8, 0.5, 4, 12},
	}
	for _, tt := range tests {
		for seed := int64(0); seed < 2000; seed++ {
			got := CalculateDuration(tt.base, tt.variance, seed)
			if got < tt.lo || got > tt.hi {
				t.Fatalf("CalculateDuration(%d,%v,%d) = %d outside [%d,%d]", tt.base, tt.variance, seed, got, tt.lo, tt.hi)
			}
		}
		for i := 0; i < 200; i++ {
			if got := RandomDuration(tt.base, tt.variance); got < tt.lo || got > tt.hi {
				t.Fatalf("RandomDuration(%d,%v) = %d outside [%d,%d]", tt.base, tt.variance, got, tt.lo, tt.hi)
			}
		}
	}
}

// TestCalculateDurationDeterministic verifies a fixed seed gives a fixed duration
func TestCalculateDurationDeterministic(t *testing.T) {
	for _, seed := range []int64{0, 1, 100, 10100, 999999} {
		a := CalculateDuration(32, 0.3, seed)
		b := CalculateDuration(32, 0.3, seed)
		if a != b {
			t.Errorf("seed %d: %d != %d", seed, a, b)
		}
	}
	if CalculateDuration(32, 0.3, 0) != CalculateDuration(32, 0.3, 1) {
		t.Error("seed 0 should behave as seed 1")
	}
}

// TestLockSeed verifies the actor stride
func TestLockSeed(t *testing.T) {
	if got := LockSeed(0, 100); got != 100 {
		t.Errorf("LockSeed(0,100) = %d", got)
	}
	if got := LockSeed(3, 7); got != 30007 {
		t.Errorf("LockSeed(3,7) = %d", got)
	}
}
