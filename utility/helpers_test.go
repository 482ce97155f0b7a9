package utility

import (
	"testing"

	"github.com/lixenwraith/iaus/component"
	"github.com/lixenwraith/iaus/core"
	"github.com/lixenwraith/iaus/engine"
)

// actorSpec describes one test actor
type actorSpec struct {
	archetype int
	hp, maxHP int
	bonds     int
	rest      component.RestState
	mark      component.WorldMark
}

// newTestWorld builds a world with the stock archetypes and the given actors
func newTestWorld(t *testing.T, actors ...actorSpec) (*engine.World, Systems) {
	t.Helper()
	w := engine.NewWorld(64)
	if err := w.Archetypes.RegisterAll(component.DefaultArchetypes()); err != nil {
		t.Fatalf("register archetypes: %v", err)
	}
	for _, a := range actors {
		e, err := w.Spawn()
		if err != nil {
			t.Fatalf("spawn: %v", err)
		}
		w.Characters.SetArchetypeID(e, a.archetype)
		w.Characters.SetMaxHP(e, a.maxHP)
		w.Characters.SetHP(e, a.hp)
		w.Characters.SetBonds(e, a.bonds)
		w.Characters.SetRestState(e, a.rest)
		w.Tags.SetWorldMark(e, a.mark)
	}
	return w, Systems{Characters: w.Characters, Tags: w.Tags, Archetypes: w.Archetypes}
}

func newTestEvaluator(t *testing.T) *Evaluator {
	t.Helper()
	ev, err := NewEvaluator(DefaultCatalog())
	if err != nil {
		t.Fatalf("NewEvaluator: %v", err)
	}
	return ev
}

func guardian() actorSpec {
	return actorSpec{
		archetype: component.ArchetypeGuardian,
		hp:        100,
		maxHP:     100,
		bonds:     100,
		rest:      component.RestActive,
		mark:      component.WorldMarkBone,
	}
}

// recorder captures cache and lock writes
type recorder struct {
	results map[core.Entity]Result
	locks   map[core.Entity]int
}

func newRecorder() *recorder {
	return &recorder{results: make(map[core.Entity]Result), locks: make(map[core.Entity]int)}
}

func (r *recorder) SetResult(e core.Entity, decision int, score float64, _ uint32) {
	r.results[e] = Result{Decision: DecisionID(decision), Score: score}
}

func (r *recorder) SetLock(e core.Entity, ticks int, _ int) {
	r.locks[e] = ticks
}

func coreEntity(i int) core.Entity {
	return core.Entity(i)
}
