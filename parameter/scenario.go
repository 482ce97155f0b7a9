package parameter

// Scenario Drift
const (
	// RestDriftTicks is the number of ticks per rest level change (half an in-world hour)
	RestDriftTicks = 16

	// DangerHitOdds is the one-in-N chance per actor per danger tick of taking a hit
	DangerHitOdds = 16

	// DangerHitMax is the largest HP loss of a single danger hit
	DangerHitMax = 6

	// ChaosHighLevel and ChaosLowLevel feed ChaosPassiveDamage
	ChaosHighLevel = 1.0
	ChaosLowLevel  = 0.0

	// ChaosHighPenalty and ChaosLowPenalty reduce natural HP recovery inside chaos
	ChaosHighPenalty = 0.5
	ChaosLowPenalty  = 0.25
)

// Simulation Defaults
const (
	DefaultPopulation = 200
	DefaultSeed       = 1
	DefaultRunTicks   = TicksPerGameDay
	DefaultWorkers    = 0 // Serial
)
