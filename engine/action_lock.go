package engine

import (
	"github.com/lixenwraith/iaus/core"
	"github.com/lixenwraith/iaus/parameter"
)

// ActionLock holds the per-actor countdown until the next evaluation
// remaining 0 means the actor is eligible every tick until locked again
type ActionLock struct {
	remaining []uint8
	action    []uint8
}

// NewActionLock allocates a lock store for capacity actors
func NewActionLock(capacity int) *ActionLock {
	return &ActionLock{
		remaining: make([]uint8, capacity),
		action:    make([]uint8, capacity),
	}
}

// SetLock starts a countdown of ticks clamped to [0, MaxLockTicks]
func (l *ActionLock) SetLock(e core.Entity, ticks int, action int) {
	l.remaining[e] = uint8(clampInt(ticks, 0, parameter.MaxLockTicks))
	l.action[e] = uint8(action)
}

// ClearLock zeroes both countdown and action
func (l *ActionLock) ClearLock(e core.Entity) {
	l.remaining[e] = 0
	l.action[e] = 0
}

// IsLocked reports a running countdown
func (l *ActionLock) IsLocked(e core.Entity) bool {
	return l.remaining[e] > 0
}

func (l *ActionLock) Remaining(e core.Entity) int     { return int(l.remaining[e]) }
func (l *ActionLock) CurrentAction(e core.Entity) int { return int(l.action[e]) }

// Capacity returns the number of actor slots
func (l *ActionLock) Capacity() int {
	return len(l.remaining)
}

// Advance counts down each listed actor and appends the eligible ones to dst
// An actor is eligible when its countdown reaches 0 on this call or was already 0
// Actors not listed are untouched
func (l *ActionLock) Advance(ids []core.Entity, dst []core.Entity) []core.Entity {
	for _, e := range ids {
		r := l.remaining[e]
		if r == 0 {
			dst = append(dst, e)
			continue
		}
		r--
		l.remaining[e] = r
		if r == 0 {
			dst = append(dst, e)
		}
	}
	return dst
}
