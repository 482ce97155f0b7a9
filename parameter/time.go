package parameter

// In-world Clock
const (
	// TickGameMinutes is the in-world minutes elapsed per simulation tick
	TickGameMinutes = 1.875

	// TicksPerGameHour is 60 / TickGameMinutes
	TicksPerGameHour = 32

	// TicksPerGameDay is 24 * TicksPerGameHour
	TicksPerGameDay = 768

	// GameMinutesPerDay wraps the in-world clock
	GameMinutesPerDay = 1440

	// RealSecondsPerTick is the wall-clock seconds one tick represents at 1x speed
	RealSecondsPerTick = 75

	// MaxLockTicks is the 8-bit ceiling of an action lock
	MaxLockTicks = 255

	// MinLockTicks is the floor of any computed action duration
	MinLockTicks = 1
)
