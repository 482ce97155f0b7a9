package journal

import (
	"fmt"

	"github.com/lixenwraith/iaus/core"
)

// Divergence is the first point where two runs disagree
// A or B is nil when that run ended first
type Divergence struct {
	Tick  uint32
	Actor core.Entity
	A, B  *Entry
}

func (d *Divergence) String() string {
	switch {
	case d.A == nil:
		return fmt.Sprintf("tick %d actor %d: only second run has %s", d.Tick, d.Actor, d.B.Name)
	case d.B == nil:
		return fmt.Sprintf("tick %d actor %d: only first run has %s", d.Tick, d.Actor, d.A.Name)
	}
	return fmt.Sprintf("tick %d actor %d: %s/%.6f/%d vs %s/%.6f/%d", d.Tick, d.Actor,
		d.A.Name, d.A.Score, d.A.Lock, d.B.Name, d.B.Score, d.B.Lock)
}

// Compare walks two runs in (tick, actor) order and returns the first divergence
// Identical runs return nil
func (j *Journal) Compare(a, b string) (*Divergence, error) {
	ea, err := j.Entries(a)
	if err != nil {
		return nil, fmt.Errorf("run %s: %w", a, err)
	}
	eb, err := j.Entries(b)
	if err != nil {
		return nil, fmt.Errorf("run %s: %w", b, err)
	}
	return Diff(ea, eb), nil
}

// Diff compares two ordered entry lists
func Diff(a, b []Entry) *Divergence {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		x, y := &a[i], &b[i]
		if before(x, y) {
			return &Divergence{Tick: x.Tick, Actor: x.Actor, A: x}
		}
		if before(y, x) {
			return &Divergence{Tick: y.Tick, Actor: y.Actor, B: y}
		}
		if x.Decision != y.Decision || x.Score != y.Score || x.Lock != y.Lock {
			return &Divergence{Tick: x.Tick, Actor: x.Actor, A: x, B: y}
		}
	}
	switch {
	case len(a) > n:
		return &Divergence{Tick: a[n].Tick, Actor: a[n].Actor, A: &a[n]}
	case len(b) > n:
		return &Divergence{Tick: b[n].Tick, Actor: b[n].Actor, B: &b[n]}
	}
	return nil
}

func before(x, y *Entry) bool {
	if x.Tick != y.Tick {
		return x.Tick < y.Tick
	}
	return x.Actor < y.Actor
}
