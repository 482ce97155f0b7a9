package engine

import (
	"github.com/lixenwraith/iaus/component"
	"github.com/lixenwraith/iaus/core"
)

// TagStore holds per-actor personality and affinity tags
type TagStore struct {
	direction  []uint8
	axis       []uint8
	axis2      []uint8
	motivation []uint8
	worldMark  []uint8
	worldMark2 []uint8
}

// TagSet is a full tag profile used for bulk assignment
type TagSet struct {
	Direction  component.Direction
	Axis       component.Axis
	Axis2      component.Axis
	Motivation component.Motivation
	WorldMark  component.WorldMark
	WorldMark2 component.WorldMark
}

// NewTagStore allocates a store for capacity actors
func NewTagStore(capacity int) *TagStore {
	return &TagStore{
		direction:  make([]uint8, capacity),
		axis:       make([]uint8, capacity),
		axis2:      make([]uint8, capacity),
		motivation: make([]uint8, capacity),
		worldMark:  make([]uint8, capacity),
		worldMark2: make([]uint8, capacity),
	}
}

// Capacity returns the number of actor slots
func (s *TagStore) Capacity() int {
	return len(s.direction)
}

func (s *TagStore) Direction(e core.Entity) component.Direction {
	return component.Direction(s.direction[e])
}

func (s *TagStore) Axis(e core.Entity) component.Axis {
	return component.Axis(s.axis[e])
}

func (s *TagStore) Axis2(e core.Entity) component.Axis {
	return component.Axis(s.axis2[e])
}

func (s *TagStore) Motivation(e core.Entity) component.Motivation {
	return component.Motivation(s.motivation[e])
}

func (s *TagStore) WorldMark(e core.Entity) component.WorldMark {
	return component.WorldMark(s.worldMark[e])
}

func (s *TagStore) WorldMark2(e core.Entity) component.WorldMark {
	return component.WorldMark(s.worldMark2[e])
}

func (s *TagStore) SetDirection(e core.Entity, d component.Direction) { s.direction[e] = uint8(d) }
func (s *TagStore) SetWorldMark(e core.Entity, m component.WorldMark) { s.worldMark[e] = uint8(m) }

// Set writes a whole tag profile
func (s *TagStore) Set(e core.Entity, t TagSet) {
	s.direction[e] = uint8(t.Direction)
	s.axis[e] = uint8(t.Axis)
	s.axis2[e] = uint8(t.Axis2)
	s.motivation[e] = uint8(t.Motivation)
	s.worldMark[e] = uint8(t.WorldMark)
	s.worldMark2[e] = uint8(t.WorldMark2)
}

// Get reads a whole tag profile
func (s *TagStore) Get(e core.Entity) TagSet {
	return TagSet{
		Direction:  s.Direction(e),
		Axis:       s.Axis(e),
		Axis2:      s.Axis2(e),
		Motivation: s.Motivation(e),
		WorldMark:  s.WorldMark(e),
		WorldMark2: s.WorldMark2(e),
	}
}

// Reset zeroes one actor's tags
func (s *TagStore) Reset(e core.Entity) {
	s.Set(e, TagSet{})
}
