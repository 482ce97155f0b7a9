package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/iaus/engine"
	"github.com/lixenwraith/iaus/parameter"
	"github.com/lixenwraith/iaus/report"
)

var clockFlags struct {
	from, to uint32
	step     uint32
}

var clockCmd = &cobra.Command{
	Use:   "clock",
	Short: "Show how ticks map onto the in-world clock",
	RunE:  runClock,
}

func init() {
	f := clockCmd.Flags()
	f.Uint32Var(&clockFlags.from, "from", 0, "First tick")
	f.Uint32Var(&clockFlags.to, "to", 768, "Last tick")
	f.Uint32Var(&clockFlags.step, "step", 64, "Tick stride")
}

func runClock(cmd *cobra.Command, _ []string) error {
	if clockFlags.step == 0 {
		return fmt.Errorf("step must be positive")
	}
	if clockFlags.to < clockFlags.from {
		return fmt.Errorf("to %d before from %d", clockFlags.to, clockFlags.from)
	}

	t := report.NewTable(tableMode())
	t.Header("tick", "day", "hour", "minute", "real time at 1x")
	for tick := clockFlags.from; tick <= clockFlags.to; tick += clockFlags.step {
		minute := int(engine.GameMinuteOfDay(tick))
		wall := time.Duration(tick) * parameter.RealSecondsPerTick * time.Second
		t.Row(tick, engine.GameDay(tick), engine.GameHour(tick), fmt.Sprintf("%02d:%02d", minute/60, minute%60), wall)
		if clockFlags.to-tick < clockFlags.step {
			break
		}
	}
	fmt.Fprintln(cmd.OutOrStdout(), t.String())
	return nil
}
