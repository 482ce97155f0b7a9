package engine

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/lixenwraith/iaus/parameter"
)

type countingSystem struct {
	calls atomic.Int32
}

func (s *countingSystem) Name() string    { return "counter" }
func (s *countingSystem) Priority() int   { return 0 }
func (s *countingSystem) Update(_ uint32) { s.calls.Add(1) }

func TestClockSchedulerStepOnce(t *testing.T) {
	w := NewWorld(1)
	sys := &countingSystem{}
	w.AddSystem(sys)

	cs, ticks := NewClockScheduler(w, 50*time.Millisecond)
	cs.Pause()
	if got := cs.StepOnce(); got != 1 {
		t.Errorf("Expected tick 1, got %d", got)
	}
	select {
	case tick := <-ticks:
		if tick != 1 {
			t.Errorf("Expected published tick 1, got %d", tick)
		}
	default:
		t.Error("Expected a published tick")
	}
	if sys.calls.Load() != 1 {
		t.Errorf("Expected 1 update, got %d", sys.calls.Load())
	}
	if got := w.Status.Ints.Get("engine.ticks").Load(); got != 1 {
		t.Errorf("Expected engine.ticks 1, got %d", got)
	}
}

func TestClockSchedulerIntervalClamp(t *testing.T) {
	cs, _ := NewClockScheduler(NewWorld(1), time.Nanosecond)
	if cs.Interval() != parameter.MinUpdateInterval {
		t.Errorf("Expected %v, got %v", parameter.MinUpdateInterval, cs.Interval())
	}
	cs.SetInterval(time.Hour)
	if cs.Interval() != parameter.MaxUpdateInterval {
		t.Errorf("Expected %v, got %v", parameter.MaxUpdateInterval, cs.Interval())
	}
}

func TestClockSchedulerRunAndStop(t *testing.T) {
	w := NewWorld(1)
	sys := &countingSystem{}
	w.AddSystem(sys)

	cs, ticks := NewClockScheduler(w, parameter.MinUpdateInterval)
	cs.Start()
	defer cs.Stop()

	deadline := time.After(2 * time.Second)
	for seen := 0; seen < 3; {
		select {
		case <-ticks:
			seen++
		case <-deadline:
			t.Fatalf("Expected 3 ticks within 2s, saw %d", seen)
		}
	}

	cs.Stop()
	stopped := w.Tick()
	time.Sleep(4 * parameter.MinUpdateInterval)
	if w.Tick() != stopped {
		t.Errorf("Expected no ticks after Stop, tick moved %d -> %d", stopped, w.Tick())
	}
	if int(sys.calls.Load()) != int(w.Tick()) {
		t.Errorf("Expected one update per tick, got %d updates for %d ticks", sys.calls.Load(), w.Tick())
	}
}

func TestClockSchedulerPause(t *testing.T) {
	w := NewWorld(1)
	cs, _ := NewClockScheduler(w, parameter.MinUpdateInterval)
	cs.Pause()
	if !cs.IsPaused() {
		t.Fatal("Expected paused")
	}
	cs.Start()
	time.Sleep(6 * parameter.MinUpdateInterval)
	if w.Tick() != 0 {
		t.Errorf("Expected no ticks while paused, got %d", w.Tick())
	}
	cs.Resume()
	cs.Stop()
	if cs.IsPaused() {
		t.Error("Expected resumed")
	}
}
