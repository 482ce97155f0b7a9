package engine

import (
	"slices"
	"testing"

	"github.com/lixenwraith/iaus/core"
)

func TestActionLockCountdown(t *testing.T) {
	l := NewActionLock(4)
	l.SetLock(0, 3, 7)
	l.SetLock(2, 5, 1)

	ids := []core.Entity{0, 1}
	var eligible []core.Entity
	for call := 1; call <= 3; call++ {
		eligible = l.Advance(ids, eligible[:0])
		want := []core.Entity{1}
		if call == 3 {
			want = []core.Entity{0, 1}
		}
		if !slices.Equal(eligible, want) {
			t.Errorf("call %d: eligible %v, want %v", call, eligible, want)
		}
	}
	if l.IsLocked(0) {
		t.Error("Expected actor 0 unlocked after countdown")
	}
	if l.CurrentAction(0) != 7 {
		t.Errorf("Expected action kept after countdown, got %d", l.CurrentAction(0))
	}
	if l.Remaining(2) != 5 {
		t.Errorf("Expected unlisted actor untouched, got %d", l.Remaining(2))
	}
}

func TestActionLockClamp(t *testing.T) {
	l := NewActionLock(2)
	l.SetLock(0, 300, 2)
	if l.Remaining(0) != 255 {
		t.Errorf("Expected 255, got %d", l.Remaining(0))
	}
	l.SetLock(1, -4, 2)
	if l.IsLocked(1) {
		t.Error("Expected negative lock to read as unlocked")
	}
	l.ClearLock(0)
	if l.IsLocked(0) || l.CurrentAction(0) != 0 {
		t.Error("ClearLock left state behind")
	}
}

func TestDecisionCache(t *testing.T) {
	c := NewDecisionCache(3)
	c.SetResult(2, 13, 0.75, 42)
	if c.Decision(2) != 13 || c.Score(2) != 0.75 || c.LastEvaluatedTick(2) != 42 {
		t.Errorf("cache = %d/%v/%d", c.Decision(2), c.Score(2), c.LastEvaluatedTick(2))
	}
	c.Reset(2)
	if c.Decision(2) != 0 || c.Score(2) != 0 || c.LastEvaluatedTick(2) != 0 {
		t.Error("Reset left data behind")
	}
	if c.Capacity() != 3 {
		t.Errorf("Capacity = %d", c.Capacity())
	}
}
