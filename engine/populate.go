package engine

import (
	"fmt"

	"github.com/lixenwraith/iaus/component"
	"github.com/lixenwraith/iaus/core"
	"github.com/lixenwraith/iaus/vmath"
)

// Stat ranges for generated actors
const (
	populateStatMin  = 8
	populateStatMax  = 18
	populateBondsMin = 40
)

// Populate spawns n actors with archetypes drawn from the registry
// Tags mirror the archetype profile with a random secondary mark; vitals are randomized
// The same seed over the same registry yields the same world
func Populate(w *World, n int, seed uint64) ([]core.Entity, error) {
	count := w.Archetypes.Count()
	if count == 0 {
		return nil, fmt.Errorf("populate: no archetypes registered")
	}

	rng := vmath.NewFastRand(seed)
	spawned := make([]core.Entity, 0, n)
	for i := 0; i < n; i++ {
		e, err := w.Spawn()
		if err != nil {
			return spawned, fmt.Errorf("populate actor %d: %w", i, err)
		}

		arch := rng.Intn(count)
		def, _ := w.Archetypes.Info(arch)

		w.Tags.Set(e, TagSet{
			Direction:  def.Direction,
			Axis:       def.PrimaryAxis,
			Axis2:      def.SecondaryAxis,
			Motivation: def.Motivation,
			WorldMark:  def.WorldMark,
			WorldMark2: component.WorldMark(rng.Range(int(component.WorldMarkNone), int(component.WorldMarkSkin))),
		})

		w.Characters.SetArchetypeID(e, arch)
		w.Characters.InitHP(e,
			rng.Range(populateStatMin, populateStatMax),
			rng.Range(populateStatMin, populateStatMax),
			def.WorldMark,
		)
		// Some actors start hurt so the first ticks are not uniform
		if rng.Intn(4) == 0 {
			w.Characters.Damage(e, rng.Intn(w.Characters.MaxHP(e)))
		}
		w.Characters.SetBonds(e, rng.Range(populateBondsMin, 100))
		w.Characters.SetRestState(e, component.RestState(rng.Intn(int(component.RestFull)+1)))

		spawned = append(spawned, e)
	}
	return spawned, nil
}
