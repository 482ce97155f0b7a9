package system

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lixenwraith/iaus/component"
	"github.com/lixenwraith/iaus/logging"
	"github.com/lixenwraith/iaus/utility"
)

func newTestSession(t *testing.T, seed uint64, rec Recorder, workers int) *Session {
	t.Helper()
	s, err := NewSession(SessionConfig{
		Population: 60,
		Seed:       seed,
		Workers:    workers,
		Schedule:   DefaultSchedule(),
		Recorder:   rec,
		Logger:     logging.Discard(),
	})
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	return s
}

func TestSessionWiring(t *testing.T) {
	s := newTestSession(t, 3, nil, 0)

	if got := len(s.Actors); got != 60 {
		t.Errorf("Expected 60 actors, got %d", got)
	}
	if got := s.World.Archetypes.Count(); got != len(component.DefaultArchetypes()) {
		t.Errorf("Expected stock archetypes, got %d", got)
	}
	names := []string{}
	for _, sys := range s.World.Systems() {
		names = append(names, sys.Name())
	}
	if diff := cmp.Diff([]string{"scenario", "decision"}, names); diff != "" {
		t.Errorf("system order mismatch (-want +got):\n%s", diff)
	}
	if len(s.Catalog().Decisions) != len(s.Decision.Evaluator().Catalog().Decisions) {
		t.Error("Catalog should expose the evaluator catalog")
	}
}

func TestSessionDeterministic(t *testing.T) {
	a, b := &memRecorder{}, &memRecorder{}
	sa := newTestSession(t, 11, a, 0)
	sb := newTestSession(t, 11, b, 4)

	for _, s := range []*Session{sa, sb} {
		if n, err := s.Run(context.Background(), 200); err != nil || n != 200 {
			t.Fatalf("Run = %d, %v", n, err)
		}
	}
	if len(a.ticks) == 0 {
		t.Fatal("Expected recorded ticks")
	}
	if diff := cmp.Diff(a.ticks, b.ticks); diff != "" {
		t.Errorf("same seed diverged (-serial +parallel):\n%s", diff)
	}
}

func TestSessionRunCancelled(t *testing.T) {
	s := newTestSession(t, 1, nil, 0)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	n, err := s.Run(ctx, 10)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
	if n != 0 || s.World.Tick() != 0 {
		t.Errorf("Expected no ticks, got n=%d tick=%d", n, s.World.Tick())
	}
}

func TestSessionExplain(t *testing.T) {
	s := newTestSession(t, 5, nil, 0)
	s.World.Step()

	bs, err := s.Explain(0)
	if err != nil {
		t.Fatalf("Explain: %v", err)
	}
	if len(bs) != len(s.Catalog().Decisions) {
		t.Fatalf("Expected %d breakdowns, got %d", len(s.Catalog().Decisions), len(bs))
	}

	best := 0
	for i, b := range bs {
		if b.Final > bs[best].Final {
			best = i
		}
	}
	// Explain reads the same tick the decision system evaluated
	if got := s.World.Cache.Decision(s.Actors[0]); got != best {
		t.Errorf("cached decision %d, best breakdown %d", got, best)
	}

	if _, err := s.Explain(len(s.Actors)); err == nil {
		t.Error("Expected out of range error")
	}
}

func TestSessionBadCatalog(t *testing.T) {
	s, err := NewSession(SessionConfig{
		Population: 1,
		Catalog:    &utility.Catalog{},
		Logger:     logging.Discard(),
	})
	if err == nil || s != nil {
		t.Fatal("Expected invalid catalog error")
	}
}
