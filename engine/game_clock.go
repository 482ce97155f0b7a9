package engine

import (
	"math"

	"github.com/lixenwraith/iaus/parameter"
)

// GameMinuteOfDay returns the in-world minute within the day for a tick
func GameMinuteOfDay(tick uint32) float64 {
	return math.Mod(float64(tick)*parameter.TickGameMinutes, parameter.GameMinutesPerDay)
}

// GameHour returns the in-world hour [0,23] for a tick
func GameHour(tick uint32) int {
	return int(math.Floor(GameMinuteOfDay(tick) / 60))
}

// GameDay returns the zero-based in-world day for a tick
func GameDay(tick uint32) int {
	return int(tick / parameter.TicksPerGameDay)
}

// RealSecondsToTicks converts wall-clock seconds to whole ticks, rounding down
func RealSecondsToTicks(seconds float64) int {
	return int(math.Floor(seconds / parameter.RealSecondsPerTick))
}

// TicksToGameMinutes converts ticks to in-world minutes
func TicksToGameMinutes(ticks int) float64 {
	return float64(ticks) * parameter.TickGameMinutes
}

// TicksToGameHours converts ticks to fractional in-world hours
func TicksToGameHours(ticks int) float64 {
	return TicksToGameMinutes(ticks) / 60
}
