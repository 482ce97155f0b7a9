package utility

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lixenwraith/iaus/component"
	"github.com/lixenwraith/iaus/core"
	"github.com/lixenwraith/iaus/engine"
	"github.com/lixenwraith/iaus/vmath"
)

// TestEvaluateBatchDeterministic verifies seeded locks repeat across runs and differ across actors
func TestEvaluateBatchDeterministic(t *testing.T) {
	run := func() (*engine.World, []int) {
		w, sys := newTestWorld(t, guardian(), guardian())
		ev := newTestEvaluator(t)
		ids := []core.Entity{0, 1}
		ctx := Context{Tick: 100, Situation: peaceful.Situation, GameHour: engine.GameHour(100)}
		ev.EvaluateBatch(ids, ctx, sys, w.Cache, w.Locks)
		return w, []int{w.Locks.Remaining(0), w.Locks.Remaining(1)}
	}

	w1, first := run()
	_, second := run()
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("durations differ between runs (-first +second):\n%s", diff)
	}
	if first[0] == first[1] {
		t.Errorf("actors 0 and 1 share duration %d despite different seeds", first[0])
	}

	// Both pick rest (base 16, variance 0.2) with seeds 100 and 10100
	want := []int{12, 16}
	if got := []int{CalculateDuration(16, 0.2, 100), CalculateDuration(16, 0.2, 10100)}; !cmp.Equal(want, got) {
		t.Fatalf("CalculateDuration = %v, want %v", got, want)
	}
	if diff := cmp.Diff(want, first); diff != "" {
		t.Errorf("durations (-want +got):\n%s", diff)
	}

	for _, e := range []core.Entity{0, 1} {
		if w1.Cache.Decision(e) != int(DecisionRest) || w1.Locks.CurrentAction(e) != int(DecisionRest) {
			t.Errorf("actor %d decision = %d, action = %d", e, w1.Cache.Decision(e), w1.Locks.CurrentAction(e))
		}
		if w1.Cache.LastEvaluatedTick(e) != 100 {
			t.Errorf("actor %d tick = %d", e, w1.Cache.LastEvaluatedTick(e))
		}
		if w1.Cache.Score(e) <= 0 {
			t.Errorf("actor %d cached score = %v", e, w1.Cache.Score(e))
		}
	}
}

// TestEvaluateBatchSkipsUnlisted verifies only listed actors are written
func TestEvaluateBatchSkipsUnlisted(t *testing.T) {
	_, sys := newTestWorld(t, guardian(), guardian(), guardian())
	ev := newTestEvaluator(t)
	rec := newRecorder()
	ev.EvaluateBatch([]core.Entity{2, 0}, peaceful, sys, rec, rec)

	if len(rec.results) != 2 || len(rec.locks) != 2 {
		t.Fatalf("writes = %d results, %d locks", len(rec.results), len(rec.locks))
	}
	if _, ok := rec.results[1]; ok {
		t.Error("unlisted actor 1 was evaluated")
	}
}

// TestEvaluateBatchParallelMatchesSerial verifies fan-out produces identical writes
func TestEvaluateBatchParallelMatchesSerial(t *testing.T) {
	build := func() (*engine.World, Systems) {
		w := engine.NewWorld(512)
		if err := w.Archetypes.RegisterAll(component.DefaultArchetypes()); err != nil {
			t.Fatalf("register archetypes: %v", err)
		}
		if _, err := engine.Populate(w, 400, 1234); err != nil {
			t.Fatalf("Populate: %v", err)
		}
		return w, Systems{Characters: w.Characters, Tags: w.Tags, Archetypes: w.Archetypes}
	}
	ev := newTestEvaluator(t)
	ctx := Context{Tick: 4321, Situation: peaceful.Situation, GameHour: engine.GameHour(4321)}

	serial, ssys := build()
	ev.EvaluateBatch(serial.Active(), ctx, ssys, serial.Cache, serial.Locks)

	parallel, psys := build()
	if err := ev.EvaluateBatchParallel(context.Background(), parallel.Active(), ctx, psys, parallel.Cache, parallel.Locks, 6); err != nil {
		t.Fatalf("EvaluateBatchParallel: %v", err)
	}

	for _, e := range serial.Active() {
		if serial.Cache.Decision(e) != parallel.Cache.Decision(e) ||
			serial.Cache.Score(e) != parallel.Cache.Score(e) ||
			serial.Locks.Remaining(e) != parallel.Locks.Remaining(e) {
			t.Fatalf("actor %d differs: serial %d/%v/%d parallel %d/%v/%d", e,
				serial.Cache.Decision(e), serial.Cache.Score(e), serial.Locks.Remaining(e),
				parallel.Cache.Decision(e), parallel.Cache.Score(e), parallel.Locks.Remaining(e))
		}
	}
}

// TestEvaluateBatchParallelCancelled verifies a cancelled context is reported
func TestEvaluateBatchParallelCancelled(t *testing.T) {
	_, sys := newTestWorld(t, guardian())
	ev := newTestEvaluator(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ids := make([]core.Entity, 0, 40)
	for i := 0; i < 40; i++ {
		ids = append(ids, 0)
	}
	rec := newRecorder()
	err := ev.EvaluateBatchParallel(ctx, ids, peaceful, sys, rec, rec, 4)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

// TestLUTMatchesCurveForDefaults verifies sampled curves stay close for every default factor
func TestLUTMatchesCurveForDefaults(t *testing.T) {
	for id, d := range DefaultConsiderations() {
		lut := vmath.DefaultLUT(d.Curve, d.Params)
		for x := 0.0; x <= 1; x += 1.0 / 64 {
			want := vmath.EvaluateCurve(x, d.Curve, d.Params)
			// Steepest default is the critical detector, slope <= 15/4
			if got := lut.Lookup(x); got-want > 0.01 || want-got > 0.01 {
				t.Errorf("%s at %v: lut %v curve %v", id, x, got, want)
			}
		}
	}
}
