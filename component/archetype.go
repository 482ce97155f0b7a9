package component

// ArchetypeDef is the registration payload of a behavioral profile
// Direction weights are 0-100 preferences for active/passive/social actions
type ArchetypeDef struct {
	Name          string
	Direction     Direction
	PrimaryAxis   Axis
	SecondaryAxis Axis
	Motivation    Motivation
	WorldMark     WorldMark
	WeightActive  int
	WeightPassive int
	WeightSocial  int
}

// Default archetype ids, index into DefaultArchetypes
const (
	ArchetypeGuardian = iota
	ArchetypeSentinel
	ArchetypeDefender
	ArchetypeWarden
	ArchetypeCommander
	ArchetypeDiplomat
	ArchetypeMerchant
	ArchetypePreacher
	ArchetypeScholar
	ArchetypeInvestigator
	ArchetypeSage
	ArchetypeArchivist
	ArchetypeArtisan
	ArchetypeBuilder
	ArchetypeHealer
	ArchetypeCultivator
	ArchetypeExplorer
	ArchetypePioneer
	ArchetypeNomad
	ArchetypeWanderer
	ArchetypeBerserker
	ArchetypeDuelist
	ArchetypeHunter
	ArchetypeVeteran
	ArchetypeAssassin
	ArchetypeThief
	ArchetypeSpy
	ArchetypeTrickster
	ArchetypeSurvivor
	ArchetypeHermit
	ArchetypeRebel
	ArchetypeOutcast
	DefaultArchetypeCount
)

// DefaultArchetypes returns the 32 stock profiles in id order
// Grouped in fours: protectors, speakers, thinkers, makers, roamers, fighters, shadows, loners
func DefaultArchetypes() []ArchetypeDef {
	return []ArchetypeDef{
		// Protectors: order + others
		{"Guardian", DirectionActive, AxisOrder, AxisOthers, MotivationProtection, WorldMarkBone, 80, 40, 45},
		{"Sentinel", DirectionPassive, AxisOrder, AxisStable, MotivationProtection, WorldMarkEye, 45, 80, 30},
		{"Defender", DirectionActive, AxisOrder, AxisStable, MotivationJustice, WorldMarkBone, 85, 35, 30},
		{"Warden", DirectionPassive, AxisOrder, AxisCautious, MotivationJustice, WorldMarkEar, 40, 75, 35},

		// Speakers: extraversion
		{"Commander", DirectionSocial, AxisExtra, AxisOrder, MotivationPower, WorldMarkBlood, 60, 20, 80},
		{"Diplomat", DirectionSocial, AxisExtra, AxisOthers, MotivationBelonging, WorldMarkBreath, 25, 35, 85},
		{"Merchant", DirectionSocial, AxisExtra, AxisCautious, MotivationWealth, WorldMarkBreath, 35, 30, 80},
		{"Preacher", DirectionSocial, AxisExtra, AxisOthers, MotivationRecognition, WorldMarkTear, 20, 40, 90},

		// Thinkers: caution
		{"Scholar", DirectionPassive, AxisCautious, AxisIntro, MotivationKnowledge, WorldMarkEye, 20, 85, 30},
		{"Investigator", DirectionActive, AxisCautious, AxisIntro, MotivationKnowledge, WorldMarkEye, 70, 50, 30},
		{"Sage", DirectionPassive, AxisCautious, AxisStable, MotivationMastery, WorldMarkTear, 15, 90, 40},
		{"Archivist", DirectionPassive, AxisCautious, AxisOrder, MotivationKnowledge, WorldMarkEar, 15, 85, 20},

		// Makers: stability
		{"Artisan", DirectionPassive, AxisStable, AxisSelf, MotivationCreation, WorldMarkSkin, 45, 75, 25},
		{"Builder", DirectionPassive, AxisStable, AxisOrder, MotivationCreation, WorldMarkBone, 55, 70, 25},
		{"Healer", DirectionSocial, AxisStable, AxisOthers, MotivationProtection, WorldMarkTear, 25, 50, 80},
		{"Cultivator", DirectionPassive, AxisStable, AxisCautious, MotivationCreation, WorldMarkSkin, 50, 70, 20},

		// Roamers: boldness
		{"Explorer", DirectionActive, AxisBold, AxisExtra, MotivationFreedom, WorldMarkEye, 85, 20, 45},
		{"Pioneer", DirectionActive, AxisBold, AxisOrder, MotivationFreedom, WorldMarkBreath, 80, 25, 40},
		{"Nomad", DirectionActive, AxisBold, AxisIntro, MotivationFreedom, WorldMarkEar, 80, 35, 15},
		{"Wanderer", DirectionActive, AxisBold, AxisReactive, MotivationFreedom, WorldMarkBreath, 75, 30, 35},

		// Fighters: reactivity
		{"Berserker", DirectionActive, AxisReactive, AxisBold, MotivationSurvival, WorldMarkBlood, 95, 10, 20},
		{"Duelist", DirectionActive, AxisReactive, AxisSelf, MotivationMastery, WorldMarkBlood, 90, 20, 25},
		{"Hunter", DirectionActive, AxisReactive, AxisCautious, MotivationMastery, WorldMarkBlood, 85, 35, 15},
		{"Veteran", DirectionActive, AxisReactive, AxisStable, MotivationProtection, WorldMarkBone, 80, 45, 30},

		// Shadows: self
		{"Assassin", DirectionActive, AxisSelf, AxisReactive, MotivationPower, WorldMarkShadow, 90, 25, 10},
		{"Thief", DirectionActive, AxisSelf, AxisCautious, MotivationWealth, WorldMarkShadow, 75, 35, 30},
		{"Spy", DirectionPassive, AxisSelf, AxisIntro, MotivationKnowledge, WorldMarkShadow, 40, 75, 45},
		{"Trickster", DirectionSocial, AxisSelf, AxisChaos, MotivationFreedom, WorldMarkShadow, 45, 20, 80},

		// Loners: chaos
		{"Survivor", DirectionPassive, AxisChaos, AxisReactive, MotivationSurvival, WorldMarkSkin, 55, 70, 15},
		{"Hermit", DirectionPassive, AxisChaos, AxisIntro, MotivationSurvival, WorldMarkEar, 30, 85, 15},
		{"Rebel", DirectionActive, AxisChaos, AxisBold, MotivationFreedom, WorldMarkBlood, 85, 15, 40},
		{"Outcast", DirectionPassive, AxisChaos, AxisSelf, MotivationSurvival, WorldMarkShadow, 35, 75, 10},
	}
}
