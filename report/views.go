package report

import (
	"fmt"
	"slices"
	"strings"

	"github.com/lixenwraith/iaus/journal"
	"github.com/lixenwraith/iaus/status"
	"github.com/lixenwraith/iaus/utility"
	"github.com/lixenwraith/iaus/vmath"
)

// Breakdown renders the factors behind one decision score
func Breakdown(b utility.Breakdown, m Mode) string {
	t := NewTable(m)
	t.Title(fmt.Sprintf("%s (weight %.2f)", b.Name, b.Weight))
	t.Header("factor", "raw", "normalized", "score")
	for _, f := range b.Factors {
		t.Row(f.Label, fmt.Sprintf("%.4g", f.Raw), fmt.Sprintf("%.4f", f.Normalized), fmt.Sprintf("%.4f", f.Score))
	}
	t.Footer("final", "", fmt.Sprintf("agg %.4f", b.Aggregate), fmt.Sprintf("%.4f", b.Final))
	t.Columns(
		Column{Number: 2, Align: AlignRight},
		Column{Number: 3, Align: AlignRight},
		Column{Number: 4, Align: AlignRight},
	)
	return t.String()
}

// Ranking renders every decision of an actor ordered by final score, best first
// Ties keep catalog order
func Ranking(bs []utility.Breakdown, m Mode) string {
	sorted := slices.Clone(bs)
	slices.SortStableFunc(sorted, func(a, b utility.Breakdown) int {
		switch {
		case a.Final > b.Final:
			return -1
		case a.Final < b.Final:
			return 1
		}
		return 0
	})

	t := NewTable(m)
	t.Header("#", "decision", "aggregate", "weight", "final", "veto")
	for i, b := range sorted {
		veto := ""
		if b.Aggregate == 0 {
			veto = vetoLabel(b)
		}
		t.Row(i+1, b.Name, fmt.Sprintf("%.4f", b.Aggregate), fmt.Sprintf("%.2f", b.Weight), fmt.Sprintf("%.4f", b.Final), veto)
	}
	t.Columns(Column{Number: 3, Align: AlignRight}, Column{Number: 5, Align: AlignRight})
	return t.String()
}

func vetoLabel(b utility.Breakdown) string {
	for _, f := range b.Factors {
		if !(f.Score > 0) {
			return f.Label
		}
	}
	return ""
}

// Catalog renders the decision table
func Catalog(c *utility.Catalog, m Mode) string {
	t := NewTable(m)
	t.Header("id", "name", "direction", "mark", "situation", "weight", "base", "variance", "considerations")
	for _, d := range c.Decisions {
		names := make([]string, len(d.Considerations))
		for i, id := range d.Considerations {
			names[i] = id.String()
		}
		t.Row(int(d.ID), d.Name, d.Direction, d.WorldMark, d.Situation,
			fmt.Sprintf("%.2f", d.Weight), d.BaseDurationTicks, fmt.Sprintf("%.2f", d.DurationVariance),
			strings.Join(names, ", "))
	}
	t.Columns(Column{Number: 9, MaxWidth: 60})
	return t.String()
}

// Considerations renders the factor definitions in id order
func Considerations(c *utility.Catalog, m Mode) string {
	t := NewTable(m)
	t.Header("name", "curve", "m", "k", "c", "b", "input")
	for id := utility.ConsiderationID(0); id < utility.ConsiderationCount; id++ {
		d, ok := c.Considerations[id]
		if !ok {
			continue
		}
		t.Row(d.Name(), d.Curve, d.Params.M, d.Params.K, d.Params.C, d.Params.B,
			fmt.Sprintf("[%g, %g]", d.InputMin, d.InputMax))
	}
	return t.String()
}

// Curve renders samples of a response curve over [0,1]
func Curve(ct vmath.CurveType, p vmath.CurveParams, samples int, m Mode) string {
	samples = max(samples, 2)
	lut := vmath.DefaultLUT(ct, p)
	t := NewTable(m)
	t.Title(fmt.Sprintf("%s m=%g k=%g c=%g b=%g", ct, p.M, p.K, p.C, p.B))
	t.Header("x", "y", "lut", "")
	for i := 0; i < samples; i++ {
		x := float64(i) / float64(samples-1)
		y := vmath.EvaluateCurve(x, ct, p)
		t.Row(fmt.Sprintf("%.3f", x), fmt.Sprintf("%.4f", y), fmt.Sprintf("%.4f", lut.Lookup(x)), bar(y, 30))
	}
	return t.String()
}

func bar(v float64, width int) string {
	n := int(vmath.Clamp01(v)*float64(width) + 0.5)
	return strings.Repeat("█", n)
}

// Metrics renders a status snapshot, optionally filtered by key prefix
func Metrics(ms []status.Metric, prefix string, m Mode) string {
	t := NewTable(m)
	t.Header("metric", "value")
	for _, mt := range ms {
		if strings.HasPrefix(mt.Key, prefix) {
			t.Row(mt.Key, mt.Value)
		}
	}
	t.Columns(Column{Number: 2, Align: AlignRight})
	return t.String()
}

// Runs renders the journal's run list
func Runs(runs []journal.Run, m Mode) string {
	t := NewTable(m)
	t.Header("run", "label", "seed", "population", "entries", "started")
	for _, r := range runs {
		t.Row(r.ID, r.Meta.Label, r.Meta.Seed, r.Meta.Population, r.Entries, r.StartedAt.Format("2006-01-02 15:04:05"))
	}
	return t.String()
}
