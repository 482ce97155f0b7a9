package utility

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lixenwraith/iaus/component"
	"github.com/lixenwraith/iaus/vmath"
)

// TestDefaultCatalogValid verifies the stock table passes validation
func TestDefaultCatalogValid(t *testing.T) {
	if err := DefaultCatalog().Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

// TestDefaultDecisionOrder pins names, weights and durations by id
func TestDefaultDecisionOrder(t *testing.T) {
	type row struct {
		Name     string
		Weight   float64
		Base     int
		Variance float64
	}
	want := []row{
		{"rest", 1.0, 16, 0.2}, {"eat", 1.0, 16, 0.3}, {"sleep", 1.2, 200, 0.15},
		{"work_craft", 1.0, 32, 0.25}, {"work_trade", 1.0, 24, 0.25}, {"work_guard", 1.0, 48, 0.2},
		{"work_farm", 1.0, 32, 0.2}, {"talk", 0.9, 8, 0.3}, {"greet", 0.7, 4, 0.2},
		{"travel", 0.8, 32, 0.3}, {"wander", 0.5, 16, 0.4}, {"attack", 1.1, 8, 0.3},
		{"defend", 1.0, 8, 0.2}, {"flee", 1.3, 8, 0.3}, {"heal_self", 1.1, 16, 0.2},
		{"wait", 0.3, 8, 0.5}, {"pray", 0.8, 16, 0.3}, {"explore", 0.9, 32, 0.3},
		{"investigate", 0.8, 24, 0.25},
	}
	var got []row
	for i, d := range DefaultDecisions() {
		if int(d.ID) != i {
			t.Errorf("%s: id %d at index %d", d.Name, d.ID, i)
		}
		got = append(got, row{d.Name, d.Weight, d.BaseDurationTicks, d.DurationVariance})
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("catalog mismatch (-want +got):\n%s", diff)
	}
}

// TestDefaultDecisionTags spot-checks affinity tags
func TestDefaultDecisionTags(t *testing.T) {
	d := DefaultDecisions()
	if d[DecisionFlee].Direction != component.DirectionActive || d[DecisionFlee].WorldMark != component.WorldMarkShadow || d[DecisionFlee].Situation != component.SituationDanger {
		t.Errorf("flee tags = %+v", d[DecisionFlee])
	}
	if d[DecisionWorkGuard].Situation != component.SituationNone {
		t.Errorf("work_guard situation = %v, want none", d[DecisionWorkGuard].Situation)
	}
	if d[DecisionWait].WorldMark != component.WorldMarkNone {
		t.Errorf("wait mark = %v, want none", d[DecisionWait].WorldMark)
	}
	want := []ConsiderationID{OwnHPCritical, OwnBondsCritical, SituationMatch}
	if diff := cmp.Diff(want, d[DecisionFlee].Considerations); diff != "" {
		t.Errorf("flee considerations (-want +got):\n%s", diff)
	}
}

// TestValidateReportsAll verifies every problem is joined under ErrInvalidCatalog
func TestValidateReportsAll(t *testing.T) {
	c := DefaultCatalog()
	c.Decisions[2].ID = 9
	c.Decisions[3].DurationVariance = 0.7
	c.Decisions[4].Weight = -1
	c.Decisions[5].Name = "rest"
	delete(c.Considerations, TimeOfDay)
	def := c.Considerations[RestNeed]
	def.InputMin, def.InputMax = 10, 0
	c.Considerations[RestNeed] = def
	hp := c.Considerations[OwnHPRatio]
	hp.Curve = vmath.CurveType(42)
	c.Considerations[OwnHPRatio] = hp

	err := c.Validate()
	if !errors.Is(err, ErrInvalidCatalog) {
		t.Fatalf("Validate = %v, want ErrInvalidCatalog", err)
	}
	msg := err.Error()
	for _, frag := range []string{
		"id 9 at index 2",
		"variance 0.7",
		"negative weight",
		"duplicate name",
		"undefined consideration time_of_day",
		"rest_need: input range",
		"own_hp_ratio: unknown curve",
	} {
		if !strings.Contains(msg, frag) {
			t.Errorf("error missing %q:\n%s", frag, msg)
		}
	}
	if _, err := NewEvaluator(c); err == nil {
		t.Error("NewEvaluator accepted an invalid catalog")
	}
}

// TestValidateEmpty verifies an empty table is rejected
func TestValidateEmpty(t *testing.T) {
	c := &Catalog{Considerations: DefaultConsiderations()}
	if err := c.Validate(); !errors.Is(err, ErrInvalidCatalog) {
		t.Errorf("Validate = %v", err)
	}
}

// TestCloneIndependent verifies edits to a clone do not leak
func TestCloneIndependent(t *testing.T) {
	a := DefaultCatalog()
	b := a.Clone()
	b.Decisions[0].Weight = 9
	b.Decisions[0].Considerations[0] = TimeOfDay
	delete(b.Considerations, RestNeed)

	if a.Decisions[0].Weight != 1.0 || a.Decisions[0].Considerations[0] != OwnHPRatio {
		t.Error("clone shares decision data")
	}
	if _, ok := a.Considerations[RestNeed]; !ok {
		t.Error("clone shares consideration map")
	}
}

// TestDecisionByName verifies lookups
func TestDecisionByName(t *testing.T) {
	c := DefaultCatalog()
	d, ok := c.DecisionByName("pray")
	if !ok || d.ID != DecisionPray {
		t.Errorf("DecisionByName(pray) = %v, %v", d.ID, ok)
	}
	if _, ok := c.DecisionByName("dance"); ok {
		t.Error("found unknown decision")
	}
	if c.Name(DecisionID(250)) != "unknown" {
		t.Error("out of range name")
	}
}
