package utility

import (
	"github.com/lixenwraith/iaus/component"
	"github.com/lixenwraith/iaus/core"
	"github.com/lixenwraith/iaus/parameter"
	"github.com/lixenwraith/iaus/vmath"
)

// Result is the best decision of one actor
type Result struct {
	Decision DecisionID
	Score    float64
}

// Factor is one entry of the score list behind a decision
type Factor struct {
	Label      string
	Raw        float64
	Normalized float64
	Score      float64
}

// Breakdown is the full scoring trace of one (actor, decision) pair
type Breakdown struct {
	Decision  DecisionID
	Name      string
	Factors   []Factor
	Aggregate float64
	Weight    float64
	Final     float64
}

// Evaluator scores decisions of a validated catalog
// Safe for concurrent use; it only reads the catalog and the supplied stores
type Evaluator struct {
	catalog *Catalog
}

// NewEvaluator validates the catalog and binds an evaluator to it
func NewEvaluator(c *Catalog) (*Evaluator, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &Evaluator{catalog: c}, nil
}

// Catalog returns the bound catalog
func (ev *Evaluator) Catalog() *Catalog {
	return ev.catalog
}

// EvaluateDecision returns the weighted utility of one decision for one actor
func (ev *Evaluator) EvaluateDecision(e core.Entity, d *DecisionDef, ctx Context, sys Systems) float64 {
	return ev.score(e, d, ctx, sys, nil)
}

// Explain evaluates like EvaluateDecision and returns every factor involved
func (ev *Evaluator) Explain(e core.Entity, d *DecisionDef, ctx Context, sys Systems) Breakdown {
	b := Breakdown{Decision: d.ID, Name: d.Name, Weight: d.Weight}
	b.Final = ev.score(e, d, ctx, sys, &b)
	return b
}

// score runs situation, direction, considerations, aggregate, weight
// trace is filled when non-nil
func (ev *Evaluator) score(e core.Entity, d *DecisionDef, ctx Context, sys Systems, trace *Breakdown) float64 {
	var buf [16]float64
	scores := buf[:0]

	situation := parameter.SituationMismatchScore
	if d.Situation == ctx.Situation {
		situation = parameter.SituationMatchScore
	}
	scores = append(scores, situation)

	dir := directionAffinity(e, d, sys)
	scores = append(scores, dir)

	if trace != nil {
		trace.Factors = append(trace.Factors,
			Factor{Label: "situation", Raw: float64(ctx.Situation), Normalized: situation, Score: situation},
			Factor{Label: "direction", Raw: dir * parameter.DirectionWeightMax, Normalized: dir, Score: dir},
		)
	}

	for _, id := range d.Considerations {
		switch id {
		case TagMatch:
			s := tagMatch(e, d, sys)
			scores = append(scores, s)
			if trace != nil {
				trace.Factors = append(trace.Factors, Factor{Label: id.String(), Raw: float64(sys.Tags.WorldMark(e)), Normalized: s, Score: s})
			}
			continue
		case DirectionAffinity, SituationMatch:
			// Folded into the first two factors
			continue
		}

		def, ok := ev.catalog.Considerations[id]
		if !ok {
			continue
		}
		raw := Input(id, e, ctx, sys)
		norm := vmath.Normalize(raw, def.InputMin, def.InputMax)
		s := vmath.EvaluateCurve(norm, def.Curve, def.Params)
		scores = append(scores, s)
		if trace != nil {
			trace.Factors = append(trace.Factors, Factor{Label: id.String(), Raw: raw, Normalized: norm, Score: s})
		}
	}

	base := Aggregate(scores)
	if trace != nil {
		trace.Aggregate = base
	}
	return ApplyWeight(base, d.Weight)
}

// EvaluateActor scores every decision in catalog order and returns the first maximum
func (ev *Evaluator) EvaluateActor(e core.Entity, ctx Context, sys Systems) Result {
	best := Result{Decision: 0, Score: -1}
	for i := range ev.catalog.Decisions {
		d := &ev.catalog.Decisions[i]
		if s := ev.score(e, d, ctx, sys, nil); s > best.Score {
			best = Result{Decision: d.ID, Score: s}
		}
	}
	best.Score = max(0, best.Score)
	return best
}

// ExplainActor returns the breakdown of every decision in catalog order
func (ev *Evaluator) ExplainActor(e core.Entity, ctx Context, sys Systems) []Breakdown {
	out := make([]Breakdown, len(ev.catalog.Decisions))
	for i := range ev.catalog.Decisions {
		out[i] = ev.Explain(e, &ev.catalog.Decisions[i], ctx, sys)
	}
	return out
}

// directionAffinity maps the actor archetype's weight for the decision direction into [0,1]
func directionAffinity(e core.Entity, d *DecisionDef, sys Systems) float64 {
	arch := sys.Characters.ArchetypeID(e)
	var w int
	switch d.Direction {
	case component.DirectionActive:
		w = sys.Archetypes.WeightActive(arch)
	case component.DirectionPassive:
		w = sys.Archetypes.WeightPassive(arch)
	case component.DirectionSocial:
		w = sys.Archetypes.WeightSocial(arch)
	default:
		w = parameter.NeutralDirectionWeight
	}
	return float64(w) / parameter.DirectionWeightMax
}

// tagMatch scores the actor's world mark against the decision's mark
func tagMatch(e core.Entity, d *DecisionDef, sys Systems) float64 {
	s := parameter.TagMatchBaseline
	if sys.Tags.WorldMark(e) == d.WorldMark {
		s += parameter.TagMatchMarkBonus
	}
	return vmath.Clamp01(s)
}
