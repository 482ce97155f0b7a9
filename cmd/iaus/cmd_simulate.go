package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/iaus/journal"
	"github.com/lixenwraith/iaus/report"
	"github.com/lixenwraith/iaus/system"
)

// ErrNondeterministic is returned by --verify when two same-seed runs disagree
var ErrNondeterministic = errors.New("runs diverged")

var simulateFlags struct {
	ticks      int
	population int
	seed       uint64
	workers    int
	journal    string
	label      string
	verify     bool
	metrics    string
}

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a seeded population headless and print the decision metrics",
	Long: "simulate populates a world from the configuration, steps it for the\n" +
		"requested ticks and prints the metric registry. With --journal every\n" +
		"evaluation is stored; --verify replays the run and compares both.",
	RunE: runSimulate,
}

func init() {
	f := simulateCmd.Flags()
	f.IntVar(&simulateFlags.ticks, "ticks", 0, "Ticks to run (default from config)")
	f.IntVar(&simulateFlags.population, "population", 0, "Actor count (default from config)")
	f.Uint64Var(&simulateFlags.seed, "seed", 0, "Population and scenario seed (default from config)")
	f.IntVar(&simulateFlags.workers, "workers", 0, "Parallel evaluation workers (default from config)")
	f.StringVar(&simulateFlags.journal, "journal", "", "SQLite journal path; empty disables recording")
	f.StringVar(&simulateFlags.label, "label", "", "Run label stored in the journal")
	f.BoolVar(&simulateFlags.verify, "verify", false, "Replay the run serially and fail on any divergence")
	f.StringVar(&simulateFlags.metrics, "metrics", "", "Only print metrics with this key prefix")
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()
	sim := &cfg.Simulation
	if flags.Changed("ticks") {
		sim.Ticks = simulateFlags.ticks
	}
	if flags.Changed("population") {
		sim.Population = simulateFlags.population
	}
	if flags.Changed("seed") {
		sim.Seed = simulateFlags.seed
	}
	if flags.Changed("workers") {
		sim.Workers = simulateFlags.workers
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	var j *journal.Journal
	path := simulateFlags.journal
	if path == "" && simulateFlags.verify {
		path = journal.InMemory
	}
	if path != "" {
		var err error
		if j, err = journal.Open(path); err != nil {
			return err
		}
		defer j.Close()
	}

	out := cmd.OutOrStdout()
	start := time.Now()
	s, runID, err := simulateOnce(ctx, j, sim.Workers, simulateFlags.label)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	fmt.Fprintln(out, report.Metrics(s.World.Status.Snapshot(), simulateFlags.metrics, tableMode()))
	fmt.Fprintf(out, "%d actors, %d ticks in %v\n", len(s.Actors), s.World.Tick(), elapsed.Round(time.Millisecond))
	if runID != "" && path != journal.InMemory {
		fmt.Fprintf(out, "journal run %s\n", runID)
	}

	if !simulateFlags.verify {
		return nil
	}
	_, replayID, err := simulateOnce(ctx, j, 0, simulateFlags.label+" (replay)")
	if err != nil {
		return err
	}
	d, err := j.Compare(runID, replayID)
	if err != nil {
		return err
	}
	if d != nil {
		return fmt.Errorf("%w: %s", ErrNondeterministic, d)
	}
	fmt.Fprintln(out, "replay matches: no divergence")
	return nil
}

// simulateOnce builds a fresh session, optionally recording into j, and runs the configured ticks
func simulateOnce(ctx context.Context, j *journal.Journal, workers int, label string) (*system.Session, string, error) {
	sc, err := sessionConfig(cfg)
	if err != nil {
		return nil, "", err
	}
	sc.Workers = workers

	var runID string
	if j != nil {
		raw, err := cfg.Marshal()
		if err != nil {
			return nil, "", err
		}
		runID, err = j.BeginRun(journal.Meta{
			Label:      label,
			Seed:       cfg.Simulation.Seed,
			Population: cfg.Simulation.Population,
			Config:     string(raw),
		})
		if err != nil {
			return nil, "", err
		}
		sc.Recorder = j.Writer(runID)
	}

	s, err := system.NewSession(sc)
	if err != nil {
		return nil, "", err
	}
	if _, err := s.Run(ctx, cfg.Simulation.Ticks); err != nil {
		return nil, "", err
	}
	if n := s.World.Status.Ints.Get("decision.errors").Load(); n > 0 {
		return nil, "", fmt.Errorf("%d ticks failed to record", n)
	}
	return s, runID, nil
}
