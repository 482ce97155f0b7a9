package utility

import (
	"math"
	"math/rand/v2"

	"github.com/lixenwraith/iaus/core"
	"github.com/lixenwraith/iaus/parameter"
	"github.com/lixenwraith/iaus/vmath"
)

// LockSeed derives the duration seed of an actor at a tick
func LockSeed(e core.Entity, tick uint32) int64 {
	return int64(e)*parameter.LockSeedActorStride + int64(tick)
}

// CalculateDuration jitters base ticks by up to ±base*variance using a seeded draw
// Result is always within [MinLockTicks, MaxLockTicks]
func CalculateDuration(base int, variance float64, seed int64) int {
	return jitter(base, variance, vmath.SeededRandom(seed))
}

// RandomDuration is CalculateDuration with a non-deterministic draw
func RandomDuration(base int, variance float64) int {
	return jitter(base, variance, rand.Float64())
}

func jitter(base int, variance, r float64) int {
	if !(variance > 0) || base <= 1 {
		return clampTicks(base)
	}
	offset := math.Floor((r - 0.5) * 2 * float64(base) * variance)
	return clampTicks(base + int(offset))
}

func clampTicks(t int) int {
	return max(parameter.MinLockTicks, min(parameter.MaxLockTicks, t))
}
