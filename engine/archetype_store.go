package engine

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/iaus/component"
	"github.com/lixenwraith/iaus/core"
	"github.com/lixenwraith/iaus/parameter"
)

// ErrArchetypeStoreFull is returned when registering past capacity
var ErrArchetypeStoreFull = errors.New("archetype store full")

// ArchetypeStore is the append-only archetype registry
type ArchetypeStore struct {
	names         []string
	direction     []uint8
	primaryAxis   []uint8
	secondaryAxis []uint8
	motivation    []uint8
	worldMark     []uint8
	weightActive  []uint8
	weightPassive []uint8
	weightSocial  []uint8
	count         int
}

// NewArchetypeStore allocates a registry for capacity archetypes
func NewArchetypeStore(capacity int) *ArchetypeStore {
	return &ArchetypeStore{
		names:         make([]string, capacity),
		direction:     make([]uint8, capacity),
		primaryAxis:   make([]uint8, capacity),
		secondaryAxis: make([]uint8, capacity),
		motivation:    make([]uint8, capacity),
		worldMark:     make([]uint8, capacity),
		weightActive:  make([]uint8, capacity),
		weightPassive: make([]uint8, capacity),
		weightSocial:  make([]uint8, capacity),
	}
}

// Register appends a definition and returns its id
// Direction weights are clamped to [0,100]
func (s *ArchetypeStore) Register(def component.ArchetypeDef) (int, error) {
	if s.count >= len(s.names) {
		return 0, fmt.Errorf("register %q: %w", def.Name, ErrArchetypeStoreFull)
	}
	id := s.count
	s.names[id] = def.Name
	s.direction[id] = uint8(def.Direction)
	s.primaryAxis[id] = uint8(def.PrimaryAxis)
	s.secondaryAxis[id] = uint8(def.SecondaryAxis)
	s.motivation[id] = uint8(def.Motivation)
	s.worldMark[id] = uint8(def.WorldMark)
	s.weightActive[id] = clampWeight(def.WeightActive)
	s.weightPassive[id] = clampWeight(def.WeightPassive)
	s.weightSocial[id] = clampWeight(def.WeightSocial)
	s.count++
	return id, nil
}

// RegisterAll registers definitions in order, stopping at the first failure
func (s *ArchetypeStore) RegisterAll(defs []component.ArchetypeDef) error {
	for _, d := range defs {
		if _, err := s.Register(d); err != nil {
			return err
		}
	}
	return nil
}

// Clear drops every registration
func (s *ArchetypeStore) Clear() {
	for i := 0; i < s.count; i++ {
		s.names[i] = ""
		s.direction[i] = 0
		s.primaryAxis[i] = 0
		s.secondaryAxis[i] = 0
		s.motivation[i] = 0
		s.worldMark[i] = 0
		s.weightActive[i] = 0
		s.weightPassive[i] = 0
		s.weightSocial[i] = 0
	}
	s.count = 0
}

// Count returns the number of registered archetypes
func (s *ArchetypeStore) Count() int {
	return s.count
}

// Capacity returns the registry size
func (s *ArchetypeStore) Capacity() int {
	return len(s.names)
}

// Info returns the definition of a registered archetype
func (s *ArchetypeStore) Info(id int) (component.ArchetypeDef, bool) {
	if id < 0 || id >= s.count {
		return component.ArchetypeDef{}, false
	}
	return component.ArchetypeDef{
		Name:          s.names[id],
		Direction:     component.Direction(s.direction[id]),
		PrimaryAxis:   component.Axis(s.primaryAxis[id]),
		SecondaryAxis: component.Axis(s.secondaryAxis[id]),
		Motivation:    component.Motivation(s.motivation[id]),
		WorldMark:     component.WorldMark(s.worldMark[id]),
		WeightActive:  int(s.weightActive[id]),
		WeightPassive: int(s.weightPassive[id]),
		WeightSocial:  int(s.weightSocial[id]),
	}, true
}

// Name returns the archetype name, empty if unregistered
func (s *ArchetypeStore) Name(id int) string {
	if id < 0 || id >= s.count {
		return ""
	}
	return s.names[id]
}

// ByName returns the id of the first archetype with the given name
func (s *ArchetypeStore) ByName(name string) (int, bool) {
	for i := 0; i < s.count; i++ {
		if s.names[i] == name {
			return i, true
		}
	}
	return 0, false
}

// Weight accessors; unregistered ids read 0
func (s *ArchetypeStore) WeightActive(id int) int  { return s.weight(s.weightActive, id) }
func (s *ArchetypeStore) WeightPassive(id int) int { return s.weight(s.weightPassive, id) }
func (s *ArchetypeStore) WeightSocial(id int) int  { return s.weight(s.weightSocial, id) }

func (s *ArchetypeStore) weight(w []uint8, id int) int {
	if id < 0 || id >= len(w) {
		return 0
	}
	return int(w[id])
}

// SetWeights overrides direction weights of a registered archetype
func (s *ArchetypeStore) SetWeights(id, active, passive, social int) bool {
	if id < 0 || id >= s.count {
		return false
	}
	s.weightActive[id] = clampWeight(active)
	s.weightPassive[id] = clampWeight(passive)
	s.weightSocial[id] = clampWeight(social)
	return true
}

// Compatibility scores how well two archetypes get along
// Opposite primary axes cost 20; unregistered ids score 0
func (s *ArchetypeStore) Compatibility(a, b int) int {
	if a < 0 || b < 0 || a >= s.count || b >= s.count {
		return 0
	}
	score := 0

	if d := s.direction[a]; d != 0 && d == s.direction[b] {
		score += 20
	}

	ax1, ax2 := component.Axis(s.primaryAxis[a]), component.Axis(s.primaryAxis[b])
	if ax1 != 0 && ax1 == ax2 {
		score += 30
	} else if component.OppositeAxes(ax1, ax2) {
		score -= 20
	}

	ax1s, ax2s := component.Axis(s.secondaryAxis[a]), component.Axis(s.secondaryAxis[b])
	if ax1 != 0 && ax1 == ax2s {
		score += 15
	}
	if ax2 != 0 && ax2 == ax1s {
		score += 15
	}
	if ax1s != 0 && ax1s == ax2s {
		score += 10
	}

	m1, m2 := component.Motivation(s.motivation[a]), component.Motivation(s.motivation[b])
	if m1 != 0 && m1 == m2 {
		score += 30
	} else if component.SameMotivationCategory(m1, m2) {
		score += 10
	}

	if w := s.worldMark[a]; w != 0 && w == s.worldMark[b] {
		score += 20
	}
	return score
}

// EntityAffinity scores how well an actor's tags fit an archetype
func (s *ArchetypeStore) EntityAffinity(id int, tags *TagStore, e core.Entity) int {
	if id < 0 || id >= s.count {
		return 0
	}
	t := tags.Get(e)
	score := 0

	if t.Direction != 0 && t.Direction == component.Direction(s.direction[id]) {
		score += 20
	}

	aAx, aAx2 := component.Axis(s.primaryAxis[id]), component.Axis(s.secondaryAxis[id])
	switch {
	case t.Axis != 0 && t.Axis == aAx:
		score += 30
	case t.Axis != 0 && t.Axis == aAx2:
		score += 15
	case t.Axis2 != 0 && t.Axis2 == aAx:
		score += 15
	case t.Axis2 != 0 && t.Axis2 == aAx2:
		score += 10
	}
	if component.OppositeAxes(t.Axis, aAx) {
		score -= 20
	}

	aMot := component.Motivation(s.motivation[id])
	if t.Motivation != 0 && t.Motivation == aMot {
		score += 30
	} else if component.SameMotivationCategory(t.Motivation, aMot) {
		score += 10
	}

	aMark := component.WorldMark(s.worldMark[id])
	if t.WorldMark != 0 && t.WorldMark == aMark {
		score += 20
	} else if t.WorldMark2 != 0 && t.WorldMark2 == aMark {
		score += 10
	}
	return score
}

// BestArchetypeFor returns the registered archetype with the highest entity affinity
// Ties resolve to the lowest id
func (s *ArchetypeStore) BestArchetypeFor(tags *TagStore, e core.Entity) (int, int) {
	best, bestScore := 0, -1<<31
	for id := 0; id < s.count; id++ {
		if sc := s.EntityAffinity(id, tags, e); sc > bestScore {
			best, bestScore = id, sc
		}
	}
	return best, bestScore
}

func clampWeight(w int) uint8 {
	return uint8(clampInt(w, 0, parameter.DirectionWeightMax))
}
