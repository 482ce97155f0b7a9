package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/iaus/core"
	"github.com/lixenwraith/iaus/parameter"
)

// ClockScheduler steps the world on a fixed wall-clock interval
// Handles pause and speed changes without busy-wait
type ClockScheduler struct {
	world *World

	isPaused atomic.Bool
	interval atomic.Int64 // time.Duration

	// Tick deadline for drift correction
	nextTickDeadline time.Time
	mu               sync.Mutex

	// Control channels
	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool

	// Signals a completed tick; dropped when the reader is behind
	updateDone chan uint32

	statTicks    *atomic.Int64
	statOverruns *atomic.Int64
}

// NewClockScheduler creates a scheduler and returns it with its tick notification channel
func NewClockScheduler(world *World, interval time.Duration) (*ClockScheduler, <-chan uint32) {
	cs := &ClockScheduler{
		world:        world,
		stopChan:     make(chan struct{}),
		updateDone:   make(chan uint32, 1),
		statTicks:    world.Status.Ints.Get("engine.ticks"),
		statOverruns: world.Status.Ints.Get("engine.overruns"),
	}
	cs.SetInterval(interval)
	return cs, cs.updateDone
}

// SetInterval changes the tick interval, clamped to the configured bounds
func (cs *ClockScheduler) SetInterval(d time.Duration) {
	d = max(parameter.MinUpdateInterval, min(parameter.MaxUpdateInterval, d))
	cs.interval.Store(int64(d))
}

// Interval returns the current tick interval
func (cs *ClockScheduler) Interval() time.Duration {
	return time.Duration(cs.interval.Load())
}

// Pause stops ticking until Resume
func (cs *ClockScheduler) Pause() { cs.isPaused.Store(true) }

// Resume continues ticking from now
func (cs *ClockScheduler) Resume() {
	if cs.isPaused.CompareAndSwap(true, false) {
		cs.mu.Lock()
		cs.nextTickDeadline = time.Now().Add(cs.Interval())
		cs.mu.Unlock()
	}
}

// IsPaused returns the pause state
func (cs *ClockScheduler) IsPaused() bool { return cs.isPaused.Load() }

// StepOnce runs a single tick regardless of pause state
func (cs *ClockScheduler) StepOnce() uint32 {
	return cs.processTick()
}

// Start begins the scheduler loop
func (cs *ClockScheduler) Start() {
	if cs.running.CompareAndSwap(false, true) {
		cs.wg.Add(1)
		core.Go(cs.schedulerLoop)
	}
}

// Stop halts the scheduler loop and waits for it to exit
func (cs *ClockScheduler) Stop() {
	cs.stopOnce.Do(func() {
		if cs.running.CompareAndSwap(true, false) {
			close(cs.stopChan)
			cs.wg.Wait()
		}
	})
}

// schedulerLoop runs ticks at deadlines with pause awareness
func (cs *ClockScheduler) schedulerLoop() {
	defer cs.wg.Done()

	cs.mu.Lock()
	cs.nextTickDeadline = time.Now().Add(cs.Interval())
	cs.mu.Unlock()

	timer := time.NewTimer(cs.Interval())
	defer timer.Stop()

	for {
		var sleep time.Duration
		interval := cs.Interval()

		if cs.isPaused.Load() {
			// Longer sleep while paused to save CPU
			sleep = interval * 2
		} else {
			now := time.Now()
			cs.mu.Lock()
			deadline := cs.nextTickDeadline
			cs.mu.Unlock()

			if !now.Before(deadline) {
				cs.processTick()

				cs.mu.Lock()
				cs.nextTickDeadline = deadline.Add(interval)
				// Drop missed ticks instead of bursting to catch up
				if now.Sub(cs.nextTickDeadline) > interval*2 {
					cs.nextTickDeadline = now.Add(interval)
					cs.statOverruns.Add(1)
				}
				deadline = cs.nextTickDeadline
				cs.mu.Unlock()
			}
			sleep = max(0, time.Until(deadline))
		}

		timer.Reset(sleep)
		select {
		case <-timer.C:
		case <-cs.stopChan:
			return
		}
	}
}

// processTick steps the world once and publishes the tick
func (cs *ClockScheduler) processTick() uint32 {
	tick := cs.world.Step()
	cs.statTicks.Store(int64(tick))

	select {
	case cs.updateDone <- tick:
	default:
	}
	return tick
}
