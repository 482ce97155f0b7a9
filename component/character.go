package component

// RestState is the depth of rest an actor is currently in
type RestState uint8

const (
	RestActive RestState = iota // No rest
	RestLight
	RestSleep
	RestFull
)

// HPStage is the display bucket of an HP percentage
type HPStage uint8

const (
	HPHealthy     HPStage = iota // 100%
	HPLightInjury                // 75-99%
	HPInjured                    // 50-74%
	HPSerious                    // 25-49%
	HPCritical                   // 1-24%
	HPDead                       // 0
)

// BondsStage is the display bucket of the bonds amount (0-100)
type BondsStage uint8

const (
	BondsFull       BondsStage = iota // 100
	BondsEnriched                     // 90-99
	BondsGood                         // 80-89
	BondsStable                       // 70-79
	BondsMaintained                   // 60-69
	BondsHalved                       // 50-59
	BondsUnstable                     // 40-49
	BondsThin                         // 30-39
	BondsDanger                       // 20-29
	BondsVanishing                    // 1-19
	BondsIsolated                     // 0
)

var restStateNames = [...]string{"active", "light_rest", "sleep", "full_rest"}

var hpStageNames = [...]string{"healthy", "light_injury", "injured", "serious", "critical", "dead"}

// hpRecoveryCoeff scales natural recovery per stage; dead actors never recover
var hpRecoveryCoeff = [...]float64{1.0, 1.0, 0.75, 0.5, 0.25, 0}

// restRecoveryBonus is the additive recovery bonus per rest state
var restRecoveryBonus = [...]float64{0, 0.15, 0.30, 0.50}

func (r RestState) String() string { return enumName(restStateNames[:], int(r)) }
func (s HPStage) String() string   { return enumName(hpStageNames[:], int(s)) }

// ParseRestState resolves a lowercase name, false if unknown
func ParseRestState(name string) (RestState, bool) {
	i, ok := enumIndex(restStateNames[:], name)
	return RestState(i), ok
}

// RestNeed maps rest state onto an 8-bit need scale: active is 255, full rest is 0
func RestNeed(r RestState) float64 {
	return float64(3-int(r)) * 85
}

// RestBonus returns the recovery bonus fraction for a rest state
func RestBonus(r RestState) float64 {
	if int(r) >= len(restRecoveryBonus) {
		return 0
	}
	return restRecoveryBonus[r]
}

// StageOfHP buckets current/max HP; non-positive values are dead
func StageOfHP(hp, maxHP int) HPStage {
	if maxHP <= 0 || hp <= 0 {
		return HPDead
	}
	pct := float64(hp) / float64(maxHP) * 100
	switch {
	case pct >= 100:
		return HPHealthy
	case pct >= 75:
		return HPLightInjury
	case pct >= 50:
		return HPInjured
	case pct >= 25:
		return HPSerious
	default:
		return HPCritical
	}
}

// RecoveryCoeff returns the natural recovery multiplier of a stage
func (s HPStage) RecoveryCoeff() float64 {
	if int(s) >= len(hpRecoveryCoeff) {
		return 0
	}
	return hpRecoveryCoeff[s]
}

// StageOfBonds buckets a bonds amount in tens
func StageOfBonds(bonds int) BondsStage {
	switch {
	case bonds >= 100:
		return BondsFull
	case bonds <= 0:
		return BondsIsolated
	case bonds < 20:
		return BondsVanishing
	default:
		// 90-99 -> 1 ... 20-29 -> 8
		return BondsStage(10 - bonds/10)
	}
}
