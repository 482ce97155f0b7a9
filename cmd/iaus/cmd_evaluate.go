package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/iaus/component"
	"github.com/lixenwraith/iaus/engine"
	"github.com/lixenwraith/iaus/parameter"
	"github.com/lixenwraith/iaus/report"
	"github.com/lixenwraith/iaus/system"
	"github.com/lixenwraith/iaus/utility"
)

var evaluateFlags struct {
	archetype string
	situation string
	hour      int
	hp        int
	maxHP     int
	bonds     int
	rest      string
	explain   string
}

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Score every decision for one hand-built actor",
	Long: "evaluate builds a single actor from an archetype and the given vitals,\n" +
		"ranks every decision of the configured catalog and prints the factor\n" +
		"breakdown of the winner (or of --explain).",
	Example: "  iaus evaluate --archetype hermit --hp 10 --bonds 10 --situation danger",
	RunE:    runEvaluate,
}

func init() {
	f := evaluateCmd.Flags()
	f.StringVar(&evaluateFlags.archetype, "archetype", "guardian", "Archetype name")
	f.StringVar(&evaluateFlags.situation, "situation", "peaceful", "Ambient situation")
	f.IntVar(&evaluateFlags.hour, "hour", 12, "In-world hour [0,23]")
	f.IntVar(&evaluateFlags.hp, "hp", 100, "Current hit points")
	f.IntVar(&evaluateFlags.maxHP, "max-hp", 100, "Maximum hit points")
	f.IntVar(&evaluateFlags.bonds, "bonds", 100, "Bonds [0,100]")
	f.StringVar(&evaluateFlags.rest, "rest", "active", "Rest state: active, light_rest, sleep, full_rest")
	f.StringVar(&evaluateFlags.explain, "explain", "", "Decision to break down instead of the winner")
}

func runEvaluate(cmd *cobra.Command, _ []string) error {
	sit, ok := component.ParseSituation(strings.ToLower(evaluateFlags.situation))
	if !ok {
		return fmt.Errorf("unknown situation %q", evaluateFlags.situation)
	}
	rest, ok := component.ParseRestState(strings.ToLower(evaluateFlags.rest))
	if !ok {
		return fmt.Errorf("unknown rest state %q", evaluateFlags.rest)
	}
	if evaluateFlags.hour < 0 || evaluateFlags.hour > 23 {
		return fmt.Errorf("hour %d outside [0,23]", evaluateFlags.hour)
	}

	catalog, archetypes, err := cfg.Apply()
	if err != nil {
		return err
	}
	ev, err := utility.NewEvaluator(catalog)
	if err != nil {
		return err
	}

	w := engine.NewWorld(1)
	if err := w.Archetypes.RegisterAll(archetypes); err != nil {
		return err
	}
	arch, ok := w.Archetypes.ByName(evaluateFlags.archetype)
	if !ok {
		// Names are registered in title case
		for id := 0; id < w.Archetypes.Count() && !ok; id++ {
			if strings.EqualFold(w.Archetypes.Name(id), evaluateFlags.archetype) {
				arch, ok = id, true
			}
		}
	}
	if !ok {
		return fmt.Errorf("unknown archetype %q", evaluateFlags.archetype)
	}
	def, _ := w.Archetypes.Info(arch)

	e, err := w.Spawn()
	if err != nil {
		return err
	}
	w.Tags.Set(e, engine.TagSet{
		Direction:  def.Direction,
		Axis:       def.PrimaryAxis,
		Axis2:      def.SecondaryAxis,
		Motivation: def.Motivation,
		WorldMark:  def.WorldMark,
	})
	w.Characters.SetArchetypeID(e, arch)
	w.Characters.SetMaxHP(e, evaluateFlags.maxHP)
	w.Characters.SetHP(e, evaluateFlags.hp)
	w.Characters.SetBonds(e, evaluateFlags.bonds)
	w.Characters.SetRestState(e, rest)

	tick := uint32(evaluateFlags.hour * parameter.TicksPerGameHour)
	ctx := utility.Context{Tick: tick, Situation: sit, GameHour: evaluateFlags.hour}
	bs := ev.ExplainActor(e, ctx, system.ReadView(w))
	best := ev.EvaluateActor(e, ctx, system.ReadView(w))

	out := cmd.OutOrStdout()
	mode := tableMode()
	fmt.Fprintf(out, "%s hp %d/%d bonds %d %s, %s at hour %d\n",
		def.Name, w.Characters.HP(e), w.Characters.MaxHP(e), w.Characters.Bonds(e), rest, sit, evaluateFlags.hour)
	fmt.Fprintln(out, report.Ranking(bs, mode))

	target := best.Decision
	if evaluateFlags.explain != "" {
		d, ok := catalog.DecisionByName(evaluateFlags.explain)
		if !ok {
			return fmt.Errorf("unknown decision %q", evaluateFlags.explain)
		}
		target = d.ID
	}
	fmt.Fprintln(out, report.Breakdown(bs[target], mode))
	return nil
}
