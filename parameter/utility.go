package parameter

// Evaluation Pipeline
const (
	// SituationMatchScore is the situation factor when the action's situation is current
	SituationMatchScore = 1.0

	// SituationMismatchScore is the soft penalty factor otherwise
	SituationMismatchScore = 0.5

	// NeutralDirectionWeight is used for actions without an active/passive/social direction
	NeutralDirectionWeight = 50

	// DirectionWeightMax is the top of the archetype direction weight scale
	DirectionWeightMax = 100

	// TagMatchBaseline is the neutral tag match score
	TagMatchBaseline = 0.5

	// TagMatchMarkBonus is added when the actor's world mark equals the action's mark
	TagMatchMarkBonus = 0.3

	// LockSeedActorStride separates per-actor duration seeds within one tick
	LockSeedActorStride = 10000

	// CurveLUTResolution is the default sample count of a curve lookup table
	CurveLUTResolution = 256

	// LogitEpsilon keeps logit input away from 0 and 1
	LogitEpsilon = 1e-6

	// LogitRescaleOffset and LogitRescaleSpan map log-odds roughly into [0,1]
	LogitRescaleOffset = 5.0
	LogitRescaleSpan   = 10.0

	// MaxDurationVariance is the upper bound of a decision's duration variance
	MaxDurationVariance = 0.5
)

// Character Vitals
const (
	// BondsMax is the ceiling of the bonds amount
	BondsMax = 100

	// BondsRecoveryPerHour is regained per in-world hour outside chaos
	BondsRecoveryPerHour = 10

	// ChaosPassiveDamageBase is bonds lost per in-world hour in chaos at level 0
	ChaosPassiveDamageBase = 5

	// HPBaseRecoveryRate is the fraction of max HP regained per in-world hour
	HPBaseRecoveryRate = 0.02

	// HPBoneBloodConFactor is the CON multiplier for bone and blood marks
	HPBoneBloodConFactor = 2.0

	// HPDefaultConFactor is the CON multiplier for every other mark
	HPDefaultConFactor = 1.5
)
