package utility

import (
	"github.com/lixenwraith/iaus/component"
	"github.com/lixenwraith/iaus/core"
)

// Context is the read-only per-tick snapshot shared by every evaluation in that tick
type Context struct {
	Tick      uint32
	Situation component.Situation
	GameHour  int
}

// CharacterReader exposes actor vitals
type CharacterReader interface {
	HP(e core.Entity) int
	MaxHP(e core.Entity) int
	Bonds(e core.Entity) int
	RestState(e core.Entity) component.RestState
	ArchetypeID(e core.Entity) int
}

// TagReader exposes actor affinity tags
type TagReader interface {
	Direction(e core.Entity) component.Direction
	WorldMark(e core.Entity) component.WorldMark
}

// ArchetypeReader exposes archetype direction weights (0-100)
type ArchetypeReader interface {
	WeightActive(id int) int
	WeightPassive(id int) int
	WeightSocial(id int) int
}

// ResultWriter receives the chosen decision per actor
type ResultWriter interface {
	SetResult(e core.Entity, decision int, score float64, tick uint32)
}

// LockWriter receives the lock countdown per actor
type LockWriter interface {
	SetLock(e core.Entity, ticks int, action int)
}

// Systems bundles the collaborator stores read during evaluation
type Systems struct {
	Characters CharacterReader
	Tags       TagReader
	Archetypes ArchetypeReader
}
