package report

import (
	"strings"
	"testing"
	"time"

	"github.com/lixenwraith/iaus/journal"
	"github.com/lixenwraith/iaus/status"
	"github.com/lixenwraith/iaus/utility"
	"github.com/lixenwraith/iaus/vmath"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		in   string
		want Mode
	}{
		{"", ASCII},
		{"ascii", ASCII},
		{"markdown", Markdown},
		{"md", Markdown},
		{"html", ASCII},
	}
	for _, tt := range tests {
		if got := ParseMode(tt.in); got != tt.want {
			t.Errorf("ParseMode(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestTableModes(t *testing.T) {
	for _, m := range []Mode{ASCII, Markdown} {
		tb := NewTable(m)
		tb.Header("a", "b")
		tb.Row("x", 1)
		tb.Row("y", 2)
		if tb.Len() != 2 {
			t.Fatalf("mode %d: Len = %d, want 2", m, tb.Len())
		}
		out := tb.String()
		for _, want := range []string{"x", "y"} {
			if !strings.Contains(out, want) {
				t.Errorf("mode %d: output missing %q:\n%s", m, want, out)
			}
		}
		if m == Markdown && !strings.Contains(out, "| x |") {
			t.Errorf("markdown output not piped:\n%s", out)
		}
	}
}

func TestRankingOrder(t *testing.T) {
	bs := []utility.Breakdown{
		{Name: "low", Aggregate: 0.2, Weight: 1, Final: 0.2},
		{Name: "high", Aggregate: 0.9, Weight: 1, Final: 0.9},
		{Name: "vetoed", Aggregate: 0, Weight: 1, Final: 0,
			Factors: []utility.Factor{{Label: "situation", Score: 1}, {Label: "own_hp_critical", Score: 0}}},
	}
	out := Ranking(bs, Markdown)
	hi, lo := strings.Index(out, "high"), strings.Index(out, "low")
	if hi < 0 || lo < 0 || hi > lo {
		t.Errorf("high should rank before low:\n%s", out)
	}
	if !strings.Contains(out, "own_hp_critical") {
		t.Errorf("veto factor not named:\n%s", out)
	}
	if bs[0].Name != "low" {
		t.Error("Ranking reordered its input")
	}
}

func TestCatalogListsEveryDecision(t *testing.T) {
	c := utility.DefaultCatalog()
	out := Catalog(c, Markdown)
	for _, d := range c.Decisions {
		if !strings.Contains(out, d.Name) {
			t.Errorf("catalog table missing %s", d.Name)
		}
	}
	cons := Considerations(c, Markdown)
	if !strings.Contains(cons, "rest_need") || !strings.Contains(cons, "[0, 255]") {
		t.Errorf("considerations table incomplete:\n%s", cons)
	}
}

func TestCurveSamples(t *testing.T) {
	out := Curve(vmath.CurveLinear, vmath.LinearStandard, 5, Markdown)
	for _, want := range []string{"0.000", "0.250", "1.000", "0.5000"} {
		if !strings.Contains(out, want) {
			t.Errorf("curve table missing %q:\n%s", want, out)
		}
	}
	if got := strings.Count(Curve(vmath.CurveLinear, vmath.LinearStandard, 0, Markdown), "\n"); got < 3 {
		t.Errorf("sample count should floor at 2, got %d lines", got)
	}
}

func TestMetricsPrefix(t *testing.T) {
	r := status.NewRegistry()
	r.Ints.Get("decision.evaluated").Store(12)
	r.Ints.Get("engine.ticks").Store(3)
	out := Metrics(r.Snapshot(), "decision.", Markdown)
	if !strings.Contains(out, "decision.evaluated") || !strings.Contains(out, "12") {
		t.Errorf("missing decision metric:\n%s", out)
	}
	if strings.Contains(out, "engine.ticks") {
		t.Errorf("prefix filter ignored:\n%s", out)
	}
}

func TestRuns(t *testing.T) {
	runs := []journal.Run{{
		ID:        "run-1",
		Meta:      journal.Meta{Label: "baseline", Seed: 42, Population: 10},
		StartedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		Entries:   7,
	}}
	out := Runs(runs, Markdown)
	for _, want := range []string{"run-1", "baseline", "42", "2026-01-02 03:04:05"} {
		if !strings.Contains(out, want) {
			t.Errorf("runs table missing %q:\n%s", want, out)
		}
	}
}
