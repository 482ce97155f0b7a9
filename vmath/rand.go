package vmath

// SeededRandom returns a deterministic value in [0,1) from one xorshift32 step
// The low 32 bits of seed are the state; a zero state is remapped to 1
// Shifts follow a signed 32-bit register so sequences match replays recorded elsewhere
func SeededRandom(seed int64) float64 {
	x := int32(uint32(seed))
	if x == 0 {
		x = 1
	}
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	return float64(uint32(x)) / (1 << 32)
}

// FastRand is a xorshift64 stream used for world population and scenario noise
type FastRand struct {
	state uint64
}

// NewFastRand creates a stream; seed 0 is remapped to 1
func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

// Next advances the stream
func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 7
	x ^= x << 17
	r.state = x
	return x
}

// Intn returns a value in [0,n); non-positive n returns 0
func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Range returns a value in [lo,hi]
func (r *FastRand) Range(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.Intn(hi-lo+1)
}

// Float64 returns a value in [0,1)
func (r *FastRand) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}
