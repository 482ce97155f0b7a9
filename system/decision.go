package system

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/lixenwraith/iaus/component"
	"github.com/lixenwraith/iaus/core"
	"github.com/lixenwraith/iaus/engine"
	"github.com/lixenwraith/iaus/journal"
	"github.com/lixenwraith/iaus/logging"
	"github.com/lixenwraith/iaus/parameter"
	"github.com/lixenwraith/iaus/status"
	"github.com/lixenwraith/iaus/utility"
)

// SituationSource supplies the ambient situation for the current tick
type SituationSource interface {
	Situation() component.Situation
}

// FixedSituation is a SituationSource that never changes
type FixedSituation component.Situation

// Situation returns the fixed value
func (f FixedSituation) Situation() component.Situation {
	return component.Situation(f)
}

// Recorder receives the evaluations of each tick, e.g. a journal run
type Recorder interface {
	Record(entries []journal.Entry) error
}

// DecisionConfig wires optional collaborators of the decision system
type DecisionConfig struct {
	Workers   int             // >1 evaluates in parallel
	Situation SituationSource // nil reads as peaceful
	Recorder  Recorder        // nil disables recording
	Logger    *slog.Logger    // nil uses the "decision" component logger
}

// DecisionSystem counts down action locks and re-evaluates every actor whose lock expired
type DecisionSystem struct {
	world     *engine.World
	evaluator *utility.Evaluator
	cfg       DecisionConfig
	logger    *slog.Logger

	eligible []core.Entity
	entries  []journal.Entry
	counts   []int

	statEvaluated *atomic.Int64
	statVetoed    *atomic.Int64
	statUnlocked  *atomic.Int64
	statTicks     *atomic.Int64
	statErrors    *atomic.Int64
	statBest      *status.AtomicFloat
	statMean      *status.AtomicFloat
	statTop       *status.AtomicString
	statPicks     []*atomic.Int64
}

// NewDecisionSystem creates a decision system bound to an evaluator
func NewDecisionSystem(world *engine.World, ev *utility.Evaluator, cfg DecisionConfig) *DecisionSystem {
	if cfg.Situation == nil {
		cfg.Situation = FixedSituation(component.SituationPeaceful)
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logging.New("decision")
	}

	reg := world.Status
	s := &DecisionSystem{
		world:     world,
		evaluator: ev,
		cfg:       cfg,
		logger:    logger,

		statEvaluated: reg.Ints.Get("decision.evaluated"),
		statVetoed:    reg.Ints.Get("decision.vetoed"),
		statUnlocked:  reg.Ints.Get("decision.unlocked"),
		statTicks:     reg.Ints.Get("decision.ticks"),
		statErrors:    reg.Ints.Get("decision.errors"),
		statBest:      reg.Floats.Get("decision.best_score"),
		statMean:      reg.Floats.Get("decision.mean_score"),
		statTop:       reg.Strings.Get("decision.top"),
	}

	decisions := ev.Catalog().Decisions
	s.counts = make([]int, len(decisions))
	s.statPicks = make([]*atomic.Int64, len(decisions))
	for i, d := range decisions {
		s.statPicks[i] = reg.Ints.Get("decision.pick." + d.Name)
	}
	s.Init()
	return s
}

// Init resets per-run scratch state
func (s *DecisionSystem) Init() {
	s.eligible = make([]core.Entity, 0, s.world.Capacity())
	s.entries = s.entries[:0]
}

// Name returns system's name
func (s *DecisionSystem) Name() string {
	return "decision"
}

// Priority returns the system's priority (after the scenario settles the tick)
func (s *DecisionSystem) Priority() int {
	return parameter.PriorityDecision
}

// Evaluator returns the bound evaluator
func (s *DecisionSystem) Evaluator() *utility.Evaluator {
	return s.evaluator
}

// Update advances locks and evaluates the actors they released
func (s *DecisionSystem) Update(tick uint32) {
	s.eligible = s.world.Locks.Advance(s.world.Active(), s.eligible[:0])
	s.statTicks.Store(int64(tick))
	s.statUnlocked.Store(int64(len(s.eligible)))
	if len(s.eligible) == 0 {
		return
	}

	ctx := utility.Context{
		Tick:      tick,
		Situation: s.cfg.Situation.Situation(),
		GameHour:  engine.GameHour(tick),
	}
	view := ReadView(s.world)

	if s.cfg.Workers > 1 {
		err := s.evaluator.EvaluateBatchParallel(context.Background(), s.eligible, ctx, view, s.world.Cache, s.world.Locks, s.cfg.Workers)
		if err != nil {
			s.statErrors.Add(1)
			s.logger.Error("parallel evaluation failed", "tick", tick, "error", err)
			return
		}
	} else {
		s.evaluator.EvaluateBatch(s.eligible, ctx, view, s.world.Cache, s.world.Locks)
	}

	s.summarize(tick, ctx)
}

// summarize updates metrics, feeds the recorder and logs the tick
func (s *DecisionSystem) summarize(tick uint32, ctx utility.Context) {
	catalog := s.evaluator.Catalog()
	clear(s.counts)
	s.entries = s.entries[:0]

	var best, sum float64
	vetoed := 0
	for _, e := range s.eligible {
		d := s.world.Cache.Decision(e)
		score := s.world.Cache.Score(e)
		if score <= 0 {
			vetoed++
		}
		best = max(best, score)
		sum += score
		if d < len(s.counts) {
			s.counts[d]++
			s.statPicks[d].Add(1)
		}
		if s.cfg.Recorder != nil {
			s.entries = append(s.entries, journal.Entry{
				Tick:     tick,
				Actor:    e,
				Decision: d,
				Name:     catalog.Name(utility.DecisionID(d)),
				Score:    score,
				Lock:     s.world.Locks.Remaining(e),
			})
		}
	}

	top := 0
	for i, c := range s.counts {
		if c > s.counts[top] {
			top = i
		}
	}

	n := len(s.eligible)
	s.statEvaluated.Add(int64(n))
	s.statVetoed.Add(int64(vetoed))
	s.statBest.Set(best)
	s.statMean.Set(sum / float64(n))
	s.statTop.Store(catalog.Name(utility.DecisionID(top)))

	if s.cfg.Recorder != nil {
		if err := s.cfg.Recorder.Record(s.entries); err != nil {
			s.statErrors.Add(1)
			s.logger.Error("journal write failed", "tick", tick, "error", err)
		}
	}

	s.logger.Debug("tick evaluated",
		"tick", tick,
		"hour", ctx.GameHour,
		"situation", ctx.Situation.String(),
		"unlocked", n,
		"vetoed", vetoed,
		"top", catalog.Name(utility.DecisionID(top)),
		"best", best,
	)
}
