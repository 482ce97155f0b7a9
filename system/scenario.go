package system

import (
	"sync/atomic"

	"github.com/lixenwraith/iaus/component"
	"github.com/lixenwraith/iaus/core"
	"github.com/lixenwraith/iaus/engine"
	"github.com/lixenwraith/iaus/parameter"
	"github.com/lixenwraith/iaus/status"
	"github.com/lixenwraith/iaus/utility"
	"github.com/lixenwraith/iaus/vmath"
)

// Phase holds one situation for a number of ticks
type Phase struct {
	Situation component.Situation
	Ticks     int
}

// Schedule is a cyclic sequence of phases
type Schedule []Phase

// DefaultSchedule is a quiet day interrupted by a raid and a market crowd
func DefaultSchedule() Schedule {
	return Schedule{
		{component.SituationPeaceful, 256},
		{component.SituationDanger, 64},
		{component.SituationPeaceful, 128},
		{component.SituationCrowd, 64},
		{component.SituationChaosLow, 64},
		{component.SituationPeaceful, 192},
	}
}

// Length returns the ticks of one full cycle
func (s Schedule) Length() int {
	total := 0
	for _, p := range s {
		total += max(p.Ticks, 0)
	}
	return total
}

// At returns the situation at a tick; an empty schedule is always peaceful
func (s Schedule) At(tick uint32) component.Situation {
	total := s.Length()
	if total == 0 {
		return component.SituationPeaceful
	}
	pos := int(tick % uint32(total))
	for _, p := range s {
		if p.Ticks <= 0 {
			continue
		}
		if pos < p.Ticks {
			return p.Situation
		}
		pos -= p.Ticks
	}
	return component.SituationPeaceful
}

// ScenarioSystem drives the ambient situation and drifts actor vitals between evaluations
type ScenarioSystem struct {
	world    *engine.World
	schedule Schedule
	seed     uint64
	rng      *vmath.FastRand

	situation atomic.Uint32
	override  atomic.Int32 // -1 follows the schedule

	statSituation *status.AtomicString
	statHits      *atomic.Int64
	statDeaths    *atomic.Int64
	statRecovered *atomic.Int64
}

// NewScenarioSystem creates a scenario system following schedule with seeded hazards
func NewScenarioSystem(world *engine.World, schedule Schedule, seed uint64) *ScenarioSystem {
	s := &ScenarioSystem{
		world:         world,
		schedule:      schedule,
		seed:          seed,
		statSituation: world.Status.Strings.Get("scenario.situation"),
		statHits:      world.Status.Ints.Get("scenario.danger_hits"),
		statDeaths:    world.Status.Ints.Get("scenario.deaths"),
		statRecovered: world.Status.Ints.Get("scenario.hp_recovered"),
	}
	s.Init()
	return s
}

// Init resets session state
func (s *ScenarioSystem) Init() {
	s.rng = vmath.NewFastRand(s.seed)
	s.override.Store(-1)
	s.setSituation(s.schedule.At(0))
}

// Name returns system's name
func (s *ScenarioSystem) Name() string {
	return "scenario"
}

// Priority returns the system's priority (before decisions read the situation)
func (s *ScenarioSystem) Priority() int {
	return parameter.PriorityScenario
}

// Situation returns the situation of the current tick
func (s *ScenarioSystem) Situation() component.Situation {
	return component.Situation(s.situation.Load())
}

// Override pins the situation until Release
func (s *ScenarioSystem) Override(sit component.Situation) {
	s.override.Store(int32(sit))
	s.setSituation(sit)
}

// Release returns control to the schedule on the next tick
func (s *ScenarioSystem) Release() {
	s.override.Store(-1)
}

func (s *ScenarioSystem) setSituation(sit component.Situation) {
	s.situation.Store(uint32(sit))
	s.statSituation.Store(sit.String())
}

// Update resolves the situation then applies rest drift, hazards and hourly recovery
func (s *ScenarioSystem) Update(tick uint32) {
	sit := s.schedule.At(tick)
	if o := s.override.Load(); o >= 0 {
		sit = component.Situation(o)
	}
	s.setSituation(sit)

	chars := s.world.Characters
	restTick := tick%parameter.RestDriftTicks == 0
	hourTick := tick%parameter.TicksPerGameHour == 0

	for _, e := range s.world.Active() {
		if chars.IsDead(e) {
			continue
		}
		action := utility.DecisionID(s.world.Locks.CurrentAction(e))

		if restTick {
			chars.SetRestState(e, driftRest(chars.RestState(e), action))
		}

		if sit == component.SituationDanger && s.rng.Intn(parameter.DangerHitOdds) == 0 {
			s.dangerHit(e, action)
		}

		if hourTick {
			s.hourly(e, sit)
		}
	}
}

// driftRest deepens rest while resting or sleeping and wakes the actor otherwise
func driftRest(r component.RestState, action utility.DecisionID) component.RestState {
	switch action {
	case utility.DecisionSleep:
		if r < component.RestFull {
			return r + 1
		}
	case utility.DecisionRest:
		if r < component.RestSleep {
			return r + 1
		}
	default:
		if r > component.RestActive {
			return r - 1
		}
	}
	return r
}

// dangerHit damages an actor; fleeing avoids the hit and defending halves it
func (s *ScenarioSystem) dangerHit(e core.Entity, action utility.DecisionID) {
	amount := s.rng.Range(1, parameter.DangerHitMax)
	switch action {
	case utility.DecisionFlee:
		return
	case utility.DecisionDefend:
		amount = max(1, amount/2)
	}
	s.statHits.Add(1)
	if hit := s.world.Characters.Damage(e, amount); hit.Dead {
		s.statDeaths.Add(1)
	}
}

// hourly applies one in-world hour of recovery and chaos erosion
func (s *ScenarioSystem) hourly(e core.Entity, sit component.Situation) {
	chars := s.world.Characters
	penalty := 0.0
	inChaos := false

	switch sit {
	case component.SituationChaosHigh:
		inChaos, penalty = true, parameter.ChaosHighPenalty
		hit := chars.ChaosAttack(e, engine.ChaosPassiveDamage(parameter.ChaosHighLevel, 1))
		if hit.Dead {
			s.statDeaths.Add(1)
			return
		}
	case component.SituationChaosLow:
		inChaos, penalty = true, parameter.ChaosLowPenalty
		chars.DamageBonds(e, engine.ChaosPassiveDamage(parameter.ChaosLowLevel, 1))
	}

	if r := chars.RecoverHP(e, 0, penalty, 1); r > 0 {
		s.statRecovered.Add(int64(r))
	}
	chars.RecoverBonds(e, inChaos, 1)
}
