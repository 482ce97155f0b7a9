package system

import (
	"errors"
	"testing"

	"github.com/lixenwraith/iaus/component"
	"github.com/lixenwraith/iaus/core"
	"github.com/lixenwraith/iaus/engine"
	"github.com/lixenwraith/iaus/journal"
	"github.com/lixenwraith/iaus/utility"
)

func newWorld(t *testing.T, capacity int) *engine.World {
	t.Helper()
	w := engine.NewWorld(capacity)
	if err := w.Archetypes.RegisterAll(component.DefaultArchetypes()); err != nil {
		t.Fatalf("register archetypes: %v", err)
	}
	return w
}

func spawnGuardian(t *testing.T, w *engine.World) core.Entity {
	t.Helper()
	e, err := w.Spawn()
	if err != nil {
		t.Fatalf("spawn: %v", err)
	}
	w.Characters.SetArchetypeID(e, component.ArchetypeGuardian)
	w.Characters.SetMaxHP(e, 100)
	w.Characters.SetHP(e, 100)
	w.Characters.SetBonds(e, 100)
	w.Tags.SetWorldMark(e, component.WorldMarkBone)
	return e
}

func newEvaluator(t *testing.T) *utility.Evaluator {
	t.Helper()
	ev, err := utility.NewEvaluator(utility.DefaultCatalog())
	if err != nil {
		t.Fatalf("NewEvaluator: %v", err)
	}
	return ev
}

// memRecorder keeps every recorded tick
type memRecorder struct {
	ticks [][]journal.Entry
	fail  bool
}

func (r *memRecorder) Record(entries []journal.Entry) error {
	if r.fail {
		return errors.New("disk full")
	}
	r.ticks = append(r.ticks, append([]journal.Entry(nil), entries...))
	return nil
}
