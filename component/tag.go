package component

// Direction is the behavioral orientation of an actor or action
type Direction uint8

const (
	DirectionNone    Direction = iota
	DirectionActive            // Outward, physical
	DirectionPassive           // Inward, restorative
	DirectionSocial            // Interpersonal
)

// Axis is a personality axis; values pair up as opposites (1-2, 3-4, ...)
type Axis uint8

const (
	AxisNone Axis = iota
	AxisOrder
	AxisChaos
	AxisIntro
	AxisExtra
	AxisStable
	AxisReactive
	AxisCautious
	AxisBold
	AxisSelf
	AxisOthers
)

// Motivation is the core drive of an actor; values group into categories of three
type Motivation uint8

const (
	MotivationNone Motivation = iota
	MotivationMastery
	MotivationPower
	MotivationWealth
	MotivationBelonging
	MotivationRecognition
	MotivationLove
	MotivationKnowledge
	MotivationCreation
	MotivationFreedom
	MotivationProtection
	MotivationJustice
	MotivationSurvival
)

// Situation is the ambient condition an actor is currently in
type Situation uint8

const (
	SituationNone Situation = iota
	SituationDanger
	SituationPeaceful
	SituationChaosHigh
	SituationChaosLow
	SituationCrowd
	SituationQuiet
)

// WorldMark is the thematic affinity mark shared by actors, archetypes and actions
type WorldMark uint8

const (
	WorldMarkNone WorldMark = iota
	WorldMarkBone
	WorldMarkBlood
	WorldMarkBreath
	WorldMarkTear
	WorldMarkEye
	WorldMarkShadow
	WorldMarkEar
	WorldMarkSkin
)

var directionNames = [...]string{"none", "active", "passive", "social"}

var axisNames = [...]string{
	"none", "order", "chaos", "intro", "extra", "stable",
	"reactive", "cautious", "bold", "self", "others",
}

var motivationNames = [...]string{
	"none", "mastery", "power", "wealth", "belonging", "recognition", "love",
	"knowledge", "creation", "freedom", "protection", "justice", "survival",
}

var situationNames = [...]string{"none", "danger", "peaceful", "chaos_high", "chaos_low", "crowd", "quiet"}

var worldMarkNames = [...]string{"none", "bone", "blood", "breath", "tear", "eye", "shadow", "ear", "skin"}

func (d Direction) String() string  { return enumName(directionNames[:], int(d)) }
func (a Axis) String() string       { return enumName(axisNames[:], int(a)) }
func (m Motivation) String() string { return enumName(motivationNames[:], int(m)) }
func (s Situation) String() string  { return enumName(situationNames[:], int(s)) }
func (w WorldMark) String() string  { return enumName(worldMarkNames[:], int(w)) }

// ParseDirection resolves a lowercase name, false if unknown
func ParseDirection(name string) (Direction, bool) {
	i, ok := enumIndex(directionNames[:], name)
	return Direction(i), ok
}

// ParseAxis resolves a lowercase name, false if unknown
func ParseAxis(name string) (Axis, bool) {
	i, ok := enumIndex(axisNames[:], name)
	return Axis(i), ok
}

// ParseMotivation resolves a lowercase name, false if unknown
func ParseMotivation(name string) (Motivation, bool) {
	i, ok := enumIndex(motivationNames[:], name)
	return Motivation(i), ok
}

// ParseSituation resolves a lowercase name, false if unknown
func ParseSituation(name string) (Situation, bool) {
	i, ok := enumIndex(situationNames[:], name)
	return Situation(i), ok
}

// ParseWorldMark resolves a lowercase name, false if unknown
func ParseWorldMark(name string) (WorldMark, bool) {
	i, ok := enumIndex(worldMarkNames[:], name)
	return WorldMark(i), ok
}

// OppositeAxes reports whether two axes are the two poles of one pair
// Pairs are (1,2), (3,4), ...: poles share ceil(v/2)
func OppositeAxes(a, b Axis) bool {
	if a == AxisNone || b == AxisNone || a == b {
		return false
	}
	return (a+1)/2 == (b+1)/2
}

// SameMotivationCategory reports whether two motivations fall in the same group of three
func SameMotivationCategory(a, b Motivation) bool {
	if a == MotivationNone || b == MotivationNone {
		return false
	}
	return (a+2)/3 == (b+2)/3
}

func enumName(names []string, i int) string {
	if i < 0 || i >= len(names) {
		return "unknown"
	}
	return names[i]
}

func enumIndex(names []string, name string) (int, bool) {
	for i, n := range names {
		if n == name {
			return i, true
		}
	}
	return 0, false
}
