package engine

import (
	"math"

	"github.com/lixenwraith/iaus/component"
	"github.com/lixenwraith/iaus/core"
	"github.com/lixenwraith/iaus/parameter"
)

// CharacterStore holds per-actor vitals as parallel fixed-capacity arrays
// Index validity is the caller's responsibility
type CharacterStore struct {
	hp          []uint16
	maxHP       []uint16
	bonds       []uint8
	restState   []uint8
	archetypeID []uint8
}

// HPDamage is the outcome of an HP hit
type HPDamage struct {
	NewHP  int
	Actual int
	Dead   bool
}

// ChaosHit is the outcome of a chaos attack absorbed by bonds first
type ChaosHit struct {
	BondsAbsorbed int
	HPDamage      int
	NewBonds      int
	NewHP         int
	Dead          bool
}

// NewCharacterStore allocates a store for capacity actors
func NewCharacterStore(capacity int) *CharacterStore {
	return &CharacterStore{
		hp:          make([]uint16, capacity),
		maxHP:       make([]uint16, capacity),
		bonds:       make([]uint8, capacity),
		restState:   make([]uint8, capacity),
		archetypeID: make([]uint8, capacity),
	}
}

// Capacity returns the number of actor slots
func (s *CharacterStore) Capacity() int {
	return len(s.hp)
}

// Reset zeroes one actor's slots
func (s *CharacterStore) Reset(e core.Entity) {
	s.hp[e] = 0
	s.maxHP[e] = 0
	s.bonds[e] = 0
	s.restState[e] = 0
	s.archetypeID[e] = 0
}

func (s *CharacterStore) HP(e core.Entity) int    { return int(s.hp[e]) }
func (s *CharacterStore) MaxHP(e core.Entity) int { return int(s.maxHP[e]) }
func (s *CharacterStore) Bonds(e core.Entity) int { return int(s.bonds[e]) }

func (s *CharacterStore) RestState(e core.Entity) component.RestState {
	return component.RestState(s.restState[e])
}

func (s *CharacterStore) ArchetypeID(e core.Entity) int {
	return int(s.archetypeID[e])
}

// SetHP stores current HP clamped to the 16-bit range
func (s *CharacterStore) SetHP(e core.Entity, hp int) {
	s.hp[e] = clampU16(hp)
}

// SetMaxHP stores max HP clamped to the 16-bit range
func (s *CharacterStore) SetMaxHP(e core.Entity, maxHP int) {
	s.maxHP[e] = clampU16(maxHP)
}

// SetBonds stores bonds clamped to [0, BondsMax]
func (s *CharacterStore) SetBonds(e core.Entity, bonds int) {
	s.bonds[e] = uint8(clampInt(bonds, 0, parameter.BondsMax))
}

// SetRestState stores the rest state, clamped to full rest
func (s *CharacterStore) SetRestState(e core.Entity, r component.RestState) {
	if r > component.RestFull {
		r = component.RestFull
	}
	s.restState[e] = uint8(r)
}

// SetArchetypeID stores the archetype id clamped to the registry range
func (s *CharacterStore) SetArchetypeID(e core.Entity, id int) {
	s.archetypeID[e] = uint8(clampInt(id, 0, parameter.MaxArchetypes-1))
}

// MaxHPFor derives max HP from strength and constitution
// Bone and blood marks weigh constitution heavier
func MaxHPFor(str, con int, mark component.WorldMark) int {
	factor := parameter.HPDefaultConFactor
	if mark == component.WorldMarkBone || mark == component.WorldMarkBlood {
		factor = parameter.HPBoneBloodConFactor
	}
	return str + int(math.Floor(float64(con)*factor))
}

// InitHP sets max HP from stats and fills current HP
func (s *CharacterStore) InitHP(e core.Entity, str, con int, mark component.WorldMark) {
	maxHP := MaxHPFor(str, con, mark)
	s.SetMaxHP(e, maxHP)
	s.SetHP(e, maxHP)
}

// Stage returns the HP display bucket
func (s *CharacterStore) Stage(e core.Entity) component.HPStage {
	return component.StageOfHP(s.HP(e), s.MaxHP(e))
}

// IsDead reports zero HP
func (s *CharacterStore) IsDead(e core.Entity) bool {
	return s.hp[e] == 0
}

// Damage removes up to amount HP; non-positive amounts change nothing
func (s *CharacterStore) Damage(e core.Entity, amount int) HPDamage {
	cur := s.HP(e)
	if amount <= 0 {
		return HPDamage{NewHP: cur, Dead: cur <= 0}
	}
	actual := min(amount, cur)
	s.SetHP(e, cur-actual)
	return HPDamage{NewHP: cur - actual, Actual: actual, Dead: cur-actual <= 0}
}

// Heal adds HP capped at max and returns the new HP
func (s *CharacterStore) Heal(e core.Entity, amount int) int {
	cur := s.HP(e)
	if amount <= 0 {
		return cur
	}
	next := min(cur+amount, s.MaxHP(e))
	s.SetHP(e, next)
	return next
}

// HPRecovery computes natural recovery over elapsed in-world hours
// mitigation in [0,1] lifts the stage penalty toward 1; envPenalty in [0,0.5] scales recovery down
func HPRecovery(hp, maxHP int, rest component.RestState, mitigation, envPenalty, hours float64) int {
	if maxHP <= 0 || hp <= 0 || hp >= maxHP {
		return 0
	}
	coeff := component.StageOfHP(hp, maxHP).RecoveryCoeff()
	if coeff <= 0 {
		return 0
	}
	mitigation = math.Max(0, math.Min(1, mitigation))
	envPenalty = math.Max(0, math.Min(0.5, envPenalty))

	mult := coeff + (1-coeff)*mitigation
	rate := parameter.HPBaseRecoveryRate * mult * (1 + component.RestBonus(rest)) * (1 - envPenalty)
	recovery := int(math.Floor(float64(maxHP) * rate * hours))
	return min(recovery, maxHP-hp)
}

// RecoverHP applies natural recovery and returns the amount healed
func (s *CharacterStore) RecoverHP(e core.Entity, mitigation, envPenalty, hours float64) int {
	r := HPRecovery(s.HP(e), s.MaxHP(e), s.RestState(e), mitigation, envPenalty, hours)
	if r > 0 {
		s.Heal(e, r)
	}
	return r
}

// DamageBonds removes up to amount bonds and returns the actual loss
func (s *CharacterStore) DamageBonds(e core.Entity, amount int) int {
	if amount <= 0 {
		return 0
	}
	cur := s.Bonds(e)
	actual := min(amount, cur)
	s.SetBonds(e, cur-actual)
	return actual
}

// HealBonds adds bonds capped at BondsMax and returns the new amount
func (s *CharacterStore) HealBonds(e core.Entity, amount int) int {
	if amount > 0 {
		s.SetBonds(e, s.Bonds(e)+amount)
	}
	return s.Bonds(e)
}

// BondsRecovery computes hourly bonds regain; chaos areas block it
func BondsRecovery(bonds int, inChaos bool, hours float64) int {
	if inChaos || bonds >= parameter.BondsMax || hours <= 0 {
		return 0
	}
	r := int(math.Floor(parameter.BondsRecoveryPerHour * hours))
	return min(r, parameter.BondsMax-bonds)
}

// RecoverBonds applies BondsRecovery and returns the amount regained
func (s *CharacterStore) RecoverBonds(e core.Entity, inChaos bool, hours float64) int {
	r := BondsRecovery(s.Bonds(e), inChaos, hours)
	if r > 0 {
		s.SetBonds(e, s.Bonds(e)+r)
	}
	return r
}

// ChaosPassiveDamage computes bonds erosion for a chaos level over elapsed hours
func ChaosPassiveDamage(level, hours float64) int {
	if hours <= 0 || level < 0 {
		return 0
	}
	return int(math.Floor(parameter.ChaosPassiveDamageBase * (1 + level) * hours))
}

// ChaosAttack lets bonds absorb a hit; the overflow penetrates to HP
func (s *CharacterStore) ChaosAttack(e core.Entity, amount int) ChaosHit {
	bonds, hp := s.Bonds(e), s.HP(e)
	if amount <= 0 {
		return ChaosHit{NewBonds: bonds, NewHP: hp, Dead: hp <= 0}
	}

	absorbed := min(amount, bonds)
	bonds -= absorbed
	s.SetBonds(e, bonds)

	hit := ChaosHit{BondsAbsorbed: absorbed, NewBonds: bonds, NewHP: hp}
	if overflow := amount - absorbed; overflow > 0 {
		hit.HPDamage = min(overflow, hp)
		hit.NewHP = hp - hit.HPDamage
		s.SetHP(e, hit.NewHP)
	}
	hit.Dead = hit.NewHP <= 0
	return hit
}

func clampU16(v int) uint16 {
	return uint16(clampInt(v, 0, math.MaxUint16))
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
