package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/iaus/config"
	"github.com/lixenwraith/iaus/logging"
	"github.com/lixenwraith/iaus/report"
	"github.com/lixenwraith/iaus/system"
)

// version is set at build time via -ldflags
var version = "dev"

var rootFlags struct {
	config    string
	logLevel  string
	logFormat string
	format    string
}

// cfg is loaded once per invocation before any subcommand runs
var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "iaus",
	Short: "Utility-scored NPC decision engine",
	Long:  "iaus scores every candidate action of every actor per tick,\nlocks the winner for a jittered duration and reports what the population did.",
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	f := rootCmd.PersistentFlags()
	f.StringVar(&rootFlags.config, "config", "", "YAML config path (default ./"+config.DefaultPath+" when present)")
	f.StringVar(&rootFlags.logLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	f.StringVar(&rootFlags.logFormat, "log-format", "text", "Log format: text or json")
	f.StringVar(&rootFlags.format, "format", "ascii", "Table format: ascii or markdown")

	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(evaluateCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(curveCmd)
	rootCmd.AddCommand(clockCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(diffCmd)
	rootCmd.Version = version
}

func setup(cmd *cobra.Command, _ []string) error {
	level, err := logging.ParseLevel(rootFlags.logLevel)
	if err != nil {
		return err
	}
	logging.Init(level, rootFlags.logFormat, cmd.ErrOrStderr())

	cfg, err = config.Load(rootFlags.config)
	if err != nil {
		return err
	}
	return nil
}

func tableMode() report.Mode {
	return report.ParseMode(rootFlags.format)
}

// sessionConfig resolves the loaded configuration into a session description
func sessionConfig(c *config.Config) (system.SessionConfig, error) {
	schedule, err := c.Schedule()
	if err != nil {
		return system.SessionConfig{}, err
	}
	catalog, archetypes, err := c.Apply()
	if err != nil {
		return system.SessionConfig{}, err
	}
	return system.SessionConfig{
		Population: c.Simulation.Population,
		Seed:       c.Simulation.Seed,
		Workers:    c.Simulation.Workers,
		Schedule:   schedule,
		Catalog:    catalog,
		Archetypes: archetypes,
		Logger:     logging.New("session"),
	}, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
