package utility

import (
	"github.com/lixenwraith/iaus/component"
)

// DecisionID is a decision's index in its catalog
type DecisionID uint8

// Stock decision ids, index into DefaultDecisions
const (
	DecisionRest DecisionID = iota
	DecisionEat
	DecisionSleep
	DecisionWorkCraft
	DecisionWorkTrade
	DecisionWorkGuard
	DecisionWorkFarm
	DecisionTalk
	DecisionGreet
	DecisionTravel
	DecisionWander
	DecisionAttack
	DecisionDefend
	DecisionFlee
	DecisionHealSelf
	DecisionWait
	DecisionPray
	DecisionExplore
	DecisionInvestigate
)

// DecisionDef is one candidate action
// Weight is an unbounded importance multiplier; DurationVariance is a fraction in [0,0.5]
type DecisionDef struct {
	ID                DecisionID
	Name              string
	Direction         component.Direction
	WorldMark         component.WorldMark
	Situation         component.Situation
	Considerations    []ConsiderationID
	Weight            float64
	BaseDurationTicks int
	DurationVariance  float64
}

func cons(ids ...ConsiderationID) []ConsiderationID { return ids }

// DefaultDecisions returns the stock catalog in id order
func DefaultDecisions() []DecisionDef {
	const (
		active   = component.DirectionActive
		passive  = component.DirectionPassive
		social   = component.DirectionSocial
		peaceful = component.SituationPeaceful
		danger   = component.SituationDanger
	)
	return []DecisionDef{
		// Basic needs
		{DecisionRest, "rest", passive, component.WorldMarkBone, peaceful,
			cons(OwnHPRatio, RestNeed), 1.0, 16, 0.2},
		{DecisionEat, "eat", passive, component.WorldMarkBone, peaceful,
			cons(TimeOfDay), 1.0, 16, 0.3},
		{DecisionSleep, "sleep", passive, component.WorldMarkBone, peaceful,
			cons(RestNeed, TimeOfDay), 1.2, 200, 0.15},

		// Work
		{DecisionWorkCraft, "work_craft", active, component.WorldMarkSkin, peaceful,
			cons(OwnHPRatio, TagMatch, DirectionAffinity), 1.0, 32, 0.25},
		{DecisionWorkTrade, "work_trade", social, component.WorldMarkBreath, peaceful,
			cons(OwnHPRatio, TagMatch, DirectionAffinity), 1.0, 24, 0.25},
		{DecisionWorkGuard, "work_guard", active, component.WorldMarkBone, component.SituationNone,
			cons(OwnHPRatio, TagMatch, DirectionAffinity, SituationMatch), 1.0, 48, 0.2},
		{DecisionWorkFarm, "work_farm", active, component.WorldMarkSkin, peaceful,
			cons(OwnHPRatio, TagMatch, DirectionAffinity, TimeOfDay), 1.0, 32, 0.2},

		// Social
		{DecisionTalk, "talk", social, component.WorldMarkBreath, peaceful,
			cons(OwnHPRatio, DirectionAffinity, RestNeed), 0.9, 8, 0.3},
		{DecisionGreet, "greet", social, component.WorldMarkBreath, peaceful,
			cons(DirectionAffinity, TimeOfDay), 0.7, 4, 0.2},

		// Movement
		{DecisionTravel, "travel", active, component.WorldMarkBlood, peaceful,
			cons(OwnHPRatio, OwnBondsRatio), 0.8, 32, 0.3},
		{DecisionWander, "wander", active, component.WorldMarkBlood, peaceful,
			cons(RestNeed, DirectionAffinity), 0.5, 16, 0.4},

		// Combat
		{DecisionAttack, "attack", active, component.WorldMarkBlood, danger,
			cons(OwnHPRatio, OwnHPCritical, DirectionAffinity, SituationMatch), 1.1, 8, 0.3},
		{DecisionDefend, "defend", passive, component.WorldMarkBone, danger,
			cons(OwnHPCritical, SituationMatch, DirectionAffinity), 1.0, 8, 0.2},
		{DecisionFlee, "flee", active, component.WorldMarkShadow, danger,
			cons(OwnHPCritical, OwnBondsCritical, SituationMatch), 1.3, 8, 0.3},

		// Self care and idle
		{DecisionHealSelf, "heal_self", passive, component.WorldMarkTear, peaceful,
			cons(OwnHPRatio, OwnHPCritical, TagMatch), 1.1, 16, 0.2},
		{DecisionWait, "wait", passive, component.WorldMarkNone, peaceful,
			cons(RestNeed), 0.3, 8, 0.5},
		{DecisionPray, "pray", passive, component.WorldMarkTear, peaceful,
			cons(OwnBondsRatio, TagMatch, TimeOfDay), 0.8, 16, 0.3},

		// Discovery
		{DecisionExplore, "explore", active, component.WorldMarkEye, peaceful,
			cons(OwnHPRatio, OwnBondsRatio, DirectionAffinity, TagMatch), 0.9, 32, 0.3},
		{DecisionInvestigate, "investigate", active, component.WorldMarkEye, peaceful,
			cons(OwnHPRatio, TagMatch, DirectionAffinity), 0.8, 24, 0.25},
	}
}
