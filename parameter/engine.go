package parameter

import "time"

// Scheduler & Frame Timing
const (
	// FrameUpdateInterval is the sandbox redraw interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// GameUpdateInterval is the default wall-clock interval between simulation ticks
	GameUpdateInterval = 100 * time.Millisecond

	// MinUpdateInterval bounds speed-up requests in the sandbox
	MinUpdateInterval = 5 * time.Millisecond

	// MaxUpdateInterval bounds slow-down requests in the sandbox
	MaxUpdateInterval = 2 * time.Second
)

// Store Capacities
const (
	// MaxEntities is the fixed capacity of every per-actor store
	MaxEntities = 2000

	// MaxArchetypes is the fixed capacity of the archetype registry
	MaxArchetypes = 64
)
