package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/iaus/component"
	"github.com/lixenwraith/iaus/parameter"
	"github.com/lixenwraith/iaus/system"
	"github.com/lixenwraith/iaus/utility"
	"github.com/lixenwraith/iaus/vmath"
)

// DefaultPath is read when no explicit path is given and the file exists
const DefaultPath = "iaus.yaml"

// ErrInvalidConfig wraps every semantic configuration failure
var ErrInvalidConfig = errors.New("invalid config")

// Config is the full simulation description
type Config struct {
	Simulation     Simulation                       `yaml:"simulation"`
	Decisions      map[string]DecisionOverride      `yaml:"decisions,omitempty"`
	Considerations map[string]ConsiderationOverride `yaml:"considerations,omitempty"`
	Archetypes     map[string]ArchetypeOverride     `yaml:"archetypes,omitempty"`
}

// Simulation controls the headless and interactive runs
type Simulation struct {
	Population int           `yaml:"population"`
	Seed       uint64        `yaml:"seed"`
	Ticks      int           `yaml:"ticks"`
	Workers    int           `yaml:"workers"`
	Interval   time.Duration `yaml:"interval"`
	Schedule   []Phase       `yaml:"schedule"`
}

// Phase is one situation of the cyclic schedule
type Phase struct {
	Situation string `yaml:"situation"`
	Ticks     int    `yaml:"ticks"`
}

// DecisionOverride replaces fields of a stock decision; nil fields keep the default
type DecisionOverride struct {
	Weight            *float64 `yaml:"weight,omitempty"`
	BaseDurationTicks *int     `yaml:"base_duration_ticks,omitempty"`
	DurationVariance  *float64 `yaml:"duration_variance,omitempty"`
	Considerations    []string `yaml:"considerations,omitempty"`
}

// ConsiderationOverride reshapes a stock factor
// Preset and Params are exclusive; Params wins when both are set
type ConsiderationOverride struct {
	Curve    string       `yaml:"curve,omitempty"`
	Preset   string       `yaml:"preset,omitempty"`
	Params   *CurveParams `yaml:"params,omitempty"`
	InputMin *float64     `yaml:"input_min,omitempty"`
	InputMax *float64     `yaml:"input_max,omitempty"`
}

// CurveParams mirrors vmath.CurveParams with config keys
type CurveParams struct {
	M float64 `yaml:"m"`
	K float64 `yaml:"k"`
	C float64 `yaml:"c"`
	B float64 `yaml:"b"`
}

// ArchetypeOverride replaces direction weights (0-100) of a stock archetype
type ArchetypeOverride struct {
	Active  *int `yaml:"active,omitempty"`
	Passive *int `yaml:"passive,omitempty"`
	Social  *int `yaml:"social,omitempty"`
}

// Default returns the built-in configuration
func Default() *Config {
	phases := make([]Phase, 0, len(system.DefaultSchedule()))
	for _, p := range system.DefaultSchedule() {
		phases = append(phases, Phase{Situation: p.Situation.String(), Ticks: p.Ticks})
	}
	return &Config{
		Simulation: Simulation{
			Population: parameter.DefaultPopulation,
			Seed:       parameter.DefaultSeed,
			Ticks:      parameter.DefaultRunTicks,
			Workers:    parameter.DefaultWorkers,
			Interval:   parameter.GameUpdateInterval,
			Schedule:   phases,
		},
	}
}

// Load reads configuration with priority: explicit path > DefaultPath > built-in defaults
func Load(path string) (*Config, error) {
	if path != "" {
		return LoadFromPath(path)
	}
	if fileExists(DefaultPath) {
		return LoadFromPath(DefaultPath)
	}
	return Default(), nil
}

// LoadFromPath reads and parses one file
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result
// Unknown keys are rejected
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse config yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// Validate checks simulation bounds and that every override names a known target
func (c *Config) Validate() error {
	var errs []error
	sim := c.Simulation
	if sim.Population <= 0 || sim.Population > parameter.MaxEntities {
		errs = append(errs, fmt.Errorf("population %d outside [1,%d]", sim.Population, parameter.MaxEntities))
	}
	if sim.Ticks < 0 {
		errs = append(errs, fmt.Errorf("negative ticks %d", sim.Ticks))
	}
	if sim.Workers < 0 {
		errs = append(errs, fmt.Errorf("negative workers %d", sim.Workers))
	}
	if sim.Interval < parameter.MinUpdateInterval || sim.Interval > parameter.MaxUpdateInterval {
		errs = append(errs, fmt.Errorf("interval %v outside [%v,%v]", sim.Interval, parameter.MinUpdateInterval, parameter.MaxUpdateInterval))
	}
	if _, err := c.Schedule(); err != nil {
		errs = append(errs, err)
	}

	if _, _, err := c.apply(); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}

// Schedule resolves the situation schedule
func (c *Config) Schedule() (system.Schedule, error) {
	out := make(system.Schedule, 0, len(c.Simulation.Schedule))
	for i, p := range c.Simulation.Schedule {
		sit, ok := component.ParseSituation(strings.ToLower(p.Situation))
		if !ok {
			return nil, fmt.Errorf("schedule phase %d: unknown situation %q", i, p.Situation)
		}
		if p.Ticks <= 0 {
			return nil, fmt.Errorf("schedule phase %d: ticks must be positive, got %d", i, p.Ticks)
		}
		out = append(out, system.Phase{Situation: sit, Ticks: p.Ticks})
	}
	return out, nil
}

// Apply builds the validated catalog and archetype set with overrides applied
func (c *Config) Apply() (*utility.Catalog, []component.ArchetypeDef, error) {
	catalog, archetypes, err := c.apply()
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return catalog, archetypes, nil
}

func (c *Config) apply() (*utility.Catalog, []component.ArchetypeDef, error) {
	var errs []error
	catalog := utility.DefaultCatalog()

	for _, name := range sortedKeys(c.Considerations) {
		if err := applyConsideration(catalog, name, c.Considerations[name]); err != nil {
			errs = append(errs, err)
		}
	}
	for _, name := range sortedKeys(c.Decisions) {
		if err := applyDecision(catalog, name, c.Decisions[name]); err != nil {
			errs = append(errs, err)
		}
	}

	archetypes := component.DefaultArchetypes()
	for _, name := range sortedKeys(c.Archetypes) {
		if err := applyArchetype(archetypes, name, c.Archetypes[name]); err != nil {
			errs = append(errs, err)
		}
	}

	if err := catalog.Validate(); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return nil, nil, errors.Join(errs...)
	}
	return catalog, archetypes, nil
}

func applyDecision(catalog *utility.Catalog, name string, o DecisionOverride) error {
	idx := -1
	for i := range catalog.Decisions {
		if catalog.Decisions[i].Name == name {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("decision %q: unknown", name)
	}
	d := &catalog.Decisions[idx]

	if o.Weight != nil {
		d.Weight = *o.Weight
	}
	if o.BaseDurationTicks != nil {
		d.BaseDurationTicks = *o.BaseDurationTicks
	}
	if o.DurationVariance != nil {
		d.DurationVariance = *o.DurationVariance
	}
	if o.Considerations != nil {
		ids := make([]utility.ConsiderationID, 0, len(o.Considerations))
		for _, cn := range o.Considerations {
			id, ok := utility.ParseConsiderationID(cn)
			if !ok {
				return fmt.Errorf("decision %q: unknown consideration %q", name, cn)
			}
			ids = append(ids, id)
		}
		d.Considerations = ids
	}
	return nil
}

func applyConsideration(catalog *utility.Catalog, name string, o ConsiderationOverride) error {
	id, ok := utility.ParseConsiderationID(name)
	if !ok {
		return fmt.Errorf("consideration %q: unknown", name)
	}
	def := catalog.Considerations[id]

	if o.Curve != "" {
		t, ok := vmath.ParseCurveType(o.Curve)
		if !ok {
			return fmt.Errorf("consideration %q: unknown curve %q", name, o.Curve)
		}
		def.Curve = t
	}
	switch {
	case o.Params != nil:
		def.Params = vmath.CurveParams{M: o.Params.M, K: o.Params.K, C: o.Params.C, B: o.Params.B}
	case o.Preset != "":
		p, ok := vmath.PresetByName(o.Preset)
		if !ok {
			return fmt.Errorf("consideration %q: unknown preset %q", name, o.Preset)
		}
		def.Params = p
	}
	if o.InputMin != nil {
		def.InputMin = *o.InputMin
	}
	if o.InputMax != nil {
		def.InputMax = *o.InputMax
	}
	catalog.Considerations[id] = def
	return nil
}

func applyArchetype(defs []component.ArchetypeDef, name string, o ArchetypeOverride) error {
	for i := range defs {
		if !strings.EqualFold(defs[i].Name, name) {
			continue
		}
		for _, w := range []*int{o.Active, o.Passive, o.Social} {
			if w != nil && (*w < 0 || *w > parameter.DirectionWeightMax) {
				return fmt.Errorf("archetype %q: weight %d outside [0,%d]", name, *w, parameter.DirectionWeightMax)
			}
		}
		if o.Active != nil {
			defs[i].WeightActive = *o.Active
		}
		if o.Passive != nil {
			defs[i].WeightPassive = *o.Passive
		}
		if o.Social != nil {
			defs[i].WeightSocial = *o.Social
		}
		return nil
	}
	return fmt.Errorf("archetype %q: unknown", name)
}

func sortedKeys[V any](m map[string]V) []string {
	return slices.Sorted(maps.Keys(m))
}

// fileExists checks if a file exists and is not a directory
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
