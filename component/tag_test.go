package component

import "testing"

func TestEnumNames(t *testing.T) {
	if DirectionSocial.String() != "social" || Direction(9).String() != "unknown" {
		t.Errorf("direction names: %s, %s", DirectionSocial, Direction(9))
	}
	for m := WorldMarkNone; m <= WorldMarkSkin; m++ {
		got, ok := ParseWorldMark(m.String())
		if !ok || got != m {
			t.Errorf("ParseWorldMark(%q) = %v, %v", m.String(), got, ok)
		}
	}
	for s := SituationNone; s <= SituationQuiet; s++ {
		got, ok := ParseSituation(s.String())
		if !ok || got != s {
			t.Errorf("ParseSituation(%q) = %v, %v", s.String(), got, ok)
		}
	}
	if _, ok := ParseAxis("sideways"); ok {
		t.Error("parsed unknown axis")
	}
	if m, ok := ParseMotivation("knowledge"); !ok || m != MotivationKnowledge {
		t.Errorf("ParseMotivation(knowledge) = %v, %v", m, ok)
	}
	if d, ok := ParseDirection("passive"); !ok || d != DirectionPassive {
		t.Errorf("ParseDirection(passive) = %v, %v", d, ok)
	}
}

func TestOppositeAxes(t *testing.T) {
	pairs := [][2]Axis{
		{AxisOrder, AxisChaos},
		{AxisIntro, AxisExtra},
		{AxisStable, AxisReactive},
		{AxisCautious, AxisBold},
		{AxisSelf, AxisOthers},
	}
	for _, p := range pairs {
		if !OppositeAxes(p[0], p[1]) || !OppositeAxes(p[1], p[0]) {
			t.Errorf("%s/%s should be opposite", p[0], p[1])
		}
	}
	if OppositeAxes(AxisChaos, AxisIntro) || OppositeAxes(AxisBold, AxisSelf) {
		t.Error("adjacent poles of different pairs are not opposite")
	}
}

func TestSameMotivationCategory(t *testing.T) {
	groups := [][]Motivation{
		{MotivationMastery, MotivationPower, MotivationWealth},
		{MotivationBelonging, MotivationRecognition, MotivationLove},
		{MotivationKnowledge, MotivationCreation, MotivationFreedom},
		{MotivationProtection, MotivationJustice, MotivationSurvival},
	}
	for gi, g := range groups {
		for _, a := range g {
			for _, b := range g {
				if !SameMotivationCategory(a, b) {
					t.Errorf("%s/%s should share a category", a, b)
				}
			}
			if next := groups[(gi+1)%len(groups)][0]; SameMotivationCategory(a, next) {
				t.Errorf("%s/%s should not share a category", a, next)
			}
		}
	}
	if SameMotivationCategory(MotivationNone, MotivationNone) {
		t.Error("none never shares a category")
	}
}

func TestDefaultArchetypes(t *testing.T) {
	defs := DefaultArchetypes()
	if len(defs) != DefaultArchetypeCount {
		t.Fatalf("Expected %d archetypes, got %d", DefaultArchetypeCount, len(defs))
	}
	want := map[int]string{
		ArchetypeGuardian:  "Guardian",
		ArchetypeDiplomat:  "Diplomat",
		ArchetypeScholar:   "Scholar",
		ArchetypeBerserker: "Berserker",
		ArchetypeHermit:    "Hermit",
		ArchetypeOutcast:   "Outcast",
	}
	for id, name := range want {
		if defs[id].Name != name {
			t.Errorf("archetype %d = %s, want %s", id, defs[id].Name, name)
		}
	}
	seen := make(map[string]bool)
	for _, d := range defs {
		if seen[d.Name] {
			t.Errorf("duplicate archetype %s", d.Name)
		}
		seen[d.Name] = true
		for _, w := range []int{d.WeightActive, d.WeightPassive, d.WeightSocial} {
			if w < 0 || w > 100 {
				t.Errorf("%s weight %d out of range", d.Name, w)
			}
		}
		if d.Direction == DirectionNone || d.PrimaryAxis == AxisNone || d.WorldMark == WorldMarkNone {
			t.Errorf("%s has an empty profile tag", d.Name)
		}
	}
	g := defs[ArchetypeGuardian]
	if g.WeightActive != 80 || g.WeightPassive != 40 || g.WeightSocial != 45 {
		t.Errorf("guardian weights = %d/%d/%d", g.WeightActive, g.WeightPassive, g.WeightSocial)
	}
}
