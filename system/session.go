package system

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/lixenwraith/iaus/component"
	"github.com/lixenwraith/iaus/core"
	"github.com/lixenwraith/iaus/engine"
	"github.com/lixenwraith/iaus/logging"
	"github.com/lixenwraith/iaus/utility"
)

// SessionConfig describes one populated, runnable world
type SessionConfig struct {
	Capacity   int // 0 sizes the world to Population
	Population int
	Seed       uint64
	Workers    int
	Schedule   Schedule
	Catalog    *utility.Catalog         // nil uses the stock catalog
	Archetypes []component.ArchetypeDef // nil uses the stock archetypes
	Recorder   Recorder
	Logger     *slog.Logger
}

// Session owns a world together with its scenario and decision systems
type Session struct {
	World    *engine.World
	Scenario *ScenarioSystem
	Decision *DecisionSystem
	Actors   []core.Entity

	logger *slog.Logger
}

// NewSession registers archetypes, populates the world and wires both systems
func NewSession(cfg SessionConfig) (*Session, error) {
	if cfg.Catalog == nil {
		cfg.Catalog = utility.DefaultCatalog()
	}
	if cfg.Archetypes == nil {
		cfg.Archetypes = component.DefaultArchetypes()
	}
	if cfg.Logger == nil {
		cfg.Logger = logging.New("session")
	}
	capacity := cfg.Capacity
	if capacity <= 0 {
		capacity = max(cfg.Population, 1)
	}

	ev, err := utility.NewEvaluator(cfg.Catalog)
	if err != nil {
		return nil, err
	}

	world := engine.NewWorld(capacity)
	if err := world.Archetypes.RegisterAll(cfg.Archetypes); err != nil {
		return nil, fmt.Errorf("register archetypes: %w", err)
	}
	spawned, err := engine.Populate(world, cfg.Population, cfg.Seed)
	if err != nil {
		return nil, err
	}

	scenario := NewScenarioSystem(world, cfg.Schedule, cfg.Seed)
	decision := NewDecisionSystem(world, ev, DecisionConfig{
		Workers:   cfg.Workers,
		Situation: scenario,
		Recorder:  cfg.Recorder,
		Logger:    cfg.Logger.With("system", "decision"),
	})
	world.AddSystem(scenario)
	world.AddSystem(decision)

	s := &Session{
		World:    world,
		Scenario: scenario,
		Decision: decision,
		Actors:   spawned,
		logger:   cfg.Logger,
	}
	s.logger.Info("session ready",
		"population", len(spawned),
		"archetypes", world.Archetypes.Count(),
		"decisions", len(cfg.Catalog.Decisions),
		"seed", cfg.Seed,
		"workers", cfg.Workers,
	)
	return s, nil
}

// Run steps the world ticks times, stopping early when ctx is done
// Returns the number of completed ticks
func (s *Session) Run(ctx context.Context, ticks int) (int, error) {
	for i := 0; i < ticks; i++ {
		if err := ctx.Err(); err != nil {
			return i, err
		}
		s.World.Step()
	}
	s.logger.Info("session finished", "ticks", ticks, "tick", s.World.Tick())
	return ticks, nil
}

// Catalog returns the catalog the decision system scores against
func (s *Session) Catalog() *utility.Catalog {
	return s.Decision.Evaluator().Catalog()
}

// Explain scores every decision for one actor against the current tick and situation
func (s *Session) Explain(actor int) ([]utility.Breakdown, error) {
	if actor < 0 || actor >= len(s.Actors) {
		return nil, fmt.Errorf("actor %d out of range [0,%d)", actor, len(s.Actors))
	}
	tick := s.World.Tick()
	ctx := utility.Context{
		Tick:      tick,
		Situation: s.Scenario.Situation(),
		GameHour:  engine.GameHour(tick),
	}
	e := s.Actors[actor]
	return s.Decision.Evaluator().ExplainActor(e, ctx, ReadView(s.World)), nil
}
