package utility

import (
	"github.com/lixenwraith/iaus/component"
	"github.com/lixenwraith/iaus/core"
	"github.com/lixenwraith/iaus/parameter"
	"github.com/lixenwraith/iaus/vmath"
)

// ConsiderationID is the dense key of a scoring factor
type ConsiderationID uint8

const (
	OwnHPRatio ConsiderationID = iota
	OwnHPCritical
	OwnBondsRatio
	OwnBondsCritical
	TagMatch
	DirectionAffinity
	SituationMatch
	TimeOfDay
	RestNeed
	ConsiderationCount
)

var considerationNames = [ConsiderationCount]string{
	"own_hp_ratio",
	"own_hp_critical",
	"own_bonds_ratio",
	"own_bonds_critical",
	"tag_match",
	"direction_affinity",
	"situation_match",
	"time_of_day",
	"rest_need",
}

// String returns the config key of the factor
func (c ConsiderationID) String() string {
	if c < ConsiderationCount {
		return considerationNames[c]
	}
	return "unknown"
}

// ParseConsiderationID resolves a config key, false if unknown
func ParseConsiderationID(name string) (ConsiderationID, bool) {
	for i, n := range considerationNames {
		if n == name {
			return ConsiderationID(i), true
		}
	}
	return 0, false
}

// ConsiderationDef describes how one factor is normalized and curved
type ConsiderationDef struct {
	ID       ConsiderationID
	Curve    vmath.CurveType
	Params   vmath.CurveParams
	InputMin float64
	InputMax float64
}

// Name returns the config key of the factor
func (d ConsiderationDef) Name() string {
	return d.ID.String()
}

// InputFunc extracts one raw, unnormalized fact about an actor
type InputFunc func(e core.Entity, ctx Context, sys Systems) float64

func hpRatio(e core.Entity, _ Context, sys Systems) float64 {
	maxHP := sys.Characters.MaxHP(e)
	if maxHP == 0 {
		// Uninitialized vitals read as healthy
		return 1
	}
	return float64(sys.Characters.HP(e)) / float64(maxHP)
}

func bondsRatio(e core.Entity, _ Context, sys Systems) float64 {
	return float64(sys.Characters.Bonds(e)) / parameter.BondsMax
}

// Computed by the evaluator from world marks
func tagMatchPlaceholder(core.Entity, Context, Systems) float64 {
	return 0
}

func directionTag(e core.Entity, _ Context, sys Systems) float64 {
	return float64(sys.Tags.Direction(e))
}

func currentSituation(_ core.Entity, ctx Context, _ Systems) float64 {
	return float64(ctx.Situation)
}

func gameHour(_ core.Entity, ctx Context, _ Systems) float64 {
	return float64(ctx.GameHour)
}

func restNeed(e core.Entity, _ Context, sys Systems) float64 {
	return component.RestNeed(sys.Characters.RestState(e))
}

// inputs is indexed by ConsiderationID; ratio and critical views share one reader
var inputs = [ConsiderationCount]InputFunc{
	OwnHPRatio:        hpRatio,
	OwnHPCritical:     hpRatio,
	OwnBondsRatio:     bondsRatio,
	OwnBondsCritical:  bondsRatio,
	TagMatch:          tagMatchPlaceholder,
	DirectionAffinity: directionTag,
	SituationMatch:    currentSituation,
	TimeOfDay:         gameHour,
	RestNeed:          restNeed,
}

// Input returns the raw input of a factor; unknown ids yield 0
func Input(id ConsiderationID, e core.Entity, ctx Context, sys Systems) float64 {
	if id >= ConsiderationCount {
		return 0
	}
	return inputs[id](e, ctx, sys)
}

// InputByName resolves a config key and returns its raw input; unknown or empty keys yield 0
func InputByName(name string, e core.Entity, ctx Context, sys Systems) float64 {
	id, ok := ParseConsiderationID(name)
	if !ok {
		return 0
	}
	return Input(id, e, ctx, sys)
}

// DefaultConsiderations returns the stock factor definitions keyed by id
func DefaultConsiderations() map[ConsiderationID]ConsiderationDef {
	defs := []ConsiderationDef{
		{OwnHPRatio, vmath.CurveLinear, vmath.LinearStandard, 0, 1},
		{OwnHPCritical, vmath.CurveLogistic, vmath.CriticalDetector, 0, 1},
		{OwnBondsRatio, vmath.CurveLinear, vmath.LinearStandard, 0, 1},
		{OwnBondsCritical, vmath.CurveLogistic, vmath.CriticalDetector, 0, 1},
		{TagMatch, vmath.CurveLinear, vmath.LinearHalf, -500, 500},
		{DirectionAffinity, vmath.CurveLinear, vmath.LinearStandard, 0, 1},
		{SituationMatch, vmath.CurveLinear, vmath.LinearStandard, 0, 1},
		{TimeOfDay, vmath.CurveLinear, vmath.LinearStandard, 0, 23},
		{RestNeed, vmath.CurvePolynomial, vmath.LateWeight, 0, 255},
	}
	m := make(map[ConsiderationID]ConsiderationDef, len(defs))
	for _, d := range defs {
		m[d.ID] = d
	}
	return m
}
