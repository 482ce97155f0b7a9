package engine

import (
	"errors"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/lixenwraith/iaus/core"
	"github.com/lixenwraith/iaus/parameter"
	"github.com/lixenwraith/iaus/status"
)

// ErrWorldFull is returned when spawning past store capacity
var ErrWorldFull = errors.New("world full")

// System is a per-tick participant of the world update
type System interface {
	Name() string
	Priority() int // Lower values run first
	Update(tick uint32)
}

// World bundles the fixed-capacity actor stores and the registered systems
type World struct {
	mu sync.RWMutex

	Characters *CharacterStore
	Tags       *TagStore
	Archetypes *ArchetypeStore
	Cache      *DecisionCache
	Locks      *ActionLock
	Status     *status.Registry

	active []core.Entity
	tick   atomic.Uint32

	systems     []System
	updateMutex sync.Mutex
}

// NewWorld allocates every store at the given actor capacity
func NewWorld(capacity int) *World {
	if capacity <= 0 {
		capacity = parameter.MaxEntities
	}
	return &World{
		Characters: NewCharacterStore(capacity),
		Tags:       NewTagStore(capacity),
		Archetypes: NewArchetypeStore(parameter.MaxArchetypes),
		Cache:      NewDecisionCache(capacity),
		Locks:      NewActionLock(capacity),
		Status:     status.NewRegistry(),
		active:     make([]core.Entity, 0, capacity),
	}
}

// Capacity returns the actor capacity
func (w *World) Capacity() int {
	return w.Characters.Capacity()
}

// Spawn activates the next free actor slot
// Slots are never recycled; identity management beyond this is the host's concern
func (w *World) Spawn() (core.Entity, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	n := len(w.active)
	if n >= w.Capacity() {
		return 0, ErrWorldFull
	}
	e := core.Entity(n)
	w.active = append(w.active, e)
	return e, nil
}

// Active returns the active actors in spawn order
// The returned slice is shared; callers must not modify it
func (w *World) Active() []core.Entity {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.active
}

// Count returns the number of active actors
func (w *World) Count() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.active)
}

// Clear deactivates all actors and zeroes their slots
func (w *World) Clear() {
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, e := range w.active {
		w.Characters.Reset(e)
		w.Tags.Reset(e)
		w.Cache.Reset(e)
		w.Locks.ClearLock(e)
	}
	w.active = w.active[:0]
	w.tick.Store(0)
}

// Tick returns the last completed tick
func (w *World) Tick() uint32 {
	return w.tick.Load()
}

// AddSystem registers a system keeping priority order
func (w *World) AddSystem(system System) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.systems = append(w.systems, system)
	sort.SliceStable(w.systems, func(i, j int) bool {
		return w.systems[i].Priority() < w.systems[j].Priority()
	})
}

// Systems returns a copy of all registered systems
func (w *World) Systems() []System {
	w.mu.RLock()
	defer w.mu.RUnlock()
	result := make([]System, len(w.systems))
	copy(result, w.systems)
	return result
}

// RunSafe executes a function while holding the world's update lock
func (w *World) RunSafe(fn func()) {
	w.updateMutex.Lock()
	defer w.updateMutex.Unlock()
	fn()
}

// Step advances the tick and runs all systems under the update lock
func (w *World) Step() uint32 {
	var tick uint32
	w.RunSafe(func() {
		tick = w.StepLocked()
	})
	return tick
}

// StepLocked advances the tick and runs all systems, caller holds the update lock
func (w *World) StepLocked() uint32 {
	tick := w.tick.Add(1)

	w.mu.RLock()
	systems := make([]System, len(w.systems))
	copy(systems, w.systems)
	w.mu.RUnlock()

	for _, s := range systems {
		s.Update(tick)
	}
	return tick
}
