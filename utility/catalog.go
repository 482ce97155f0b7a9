package utility

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/lixenwraith/iaus/parameter"
	"github.com/lixenwraith/iaus/vmath"
)

// ErrInvalidCatalog wraps every catalog validation failure
var ErrInvalidCatalog = errors.New("invalid catalog")

// Catalog is the decision table together with the factor definitions it references
// Treat as immutable once handed to an Evaluator
type Catalog struct {
	Decisions      []DecisionDef
	Considerations map[ConsiderationID]ConsiderationDef
}

// DefaultCatalog returns a fresh copy of the stock catalog
func DefaultCatalog() *Catalog {
	return &Catalog{
		Decisions:      DefaultDecisions(),
		Considerations: DefaultConsiderations(),
	}
}

// Clone returns a deep copy safe to modify
func (c *Catalog) Clone() *Catalog {
	out := &Catalog{
		Decisions:      make([]DecisionDef, len(c.Decisions)),
		Considerations: maps.Clone(c.Considerations),
	}
	for i, d := range c.Decisions {
		d.Considerations = slices.Clone(d.Considerations)
		out.Decisions[i] = d
	}
	return out
}

// DecisionByName returns the decision with the given name
func (c *Catalog) DecisionByName(name string) (DecisionDef, bool) {
	for _, d := range c.Decisions {
		if d.Name == name {
			return d, true
		}
	}
	return DecisionDef{}, false
}

// Name returns a decision's name, "unknown" for ids outside the table
func (c *Catalog) Name(id DecisionID) string {
	if int(id) < len(c.Decisions) {
		return c.Decisions[id].Name
	}
	return "unknown"
}

// Validate checks table shape and references; all problems are reported together
func (c *Catalog) Validate() error {
	var errs []error
	if len(c.Decisions) == 0 {
		errs = append(errs, errors.New("no decisions"))
	}
	if len(c.Decisions) > 1<<8 {
		errs = append(errs, fmt.Errorf("%d decisions exceed the 8-bit action slot", len(c.Decisions)))
	}

	seen := make(map[string]bool, len(c.Decisions))
	for i, d := range c.Decisions {
		if int(d.ID) != i {
			errs = append(errs, fmt.Errorf("decision %q: id %d at index %d", d.Name, d.ID, i))
		}
		if d.Name == "" {
			errs = append(errs, fmt.Errorf("decision %d: empty name", i))
		} else if seen[d.Name] {
			errs = append(errs, fmt.Errorf("decision %q: duplicate name", d.Name))
		}
		seen[d.Name] = true

		if d.Weight < 0 {
			errs = append(errs, fmt.Errorf("decision %q: negative weight %v", d.Name, d.Weight))
		}
		if d.BaseDurationTicks < 0 {
			errs = append(errs, fmt.Errorf("decision %q: negative base duration %d", d.Name, d.BaseDurationTicks))
		}
		if d.DurationVariance < 0 || d.DurationVariance > parameter.MaxDurationVariance {
			errs = append(errs, fmt.Errorf("decision %q: variance %v outside [0,%v]", d.Name, d.DurationVariance, parameter.MaxDurationVariance))
		}
		for _, id := range d.Considerations {
			if _, ok := c.Considerations[id]; !ok {
				errs = append(errs, fmt.Errorf("decision %q: undefined consideration %s", d.Name, id))
			}
		}
	}

	for _, id := range slices.Sorted(maps.Keys(c.Considerations)) {
		def := c.Considerations[id]
		if id >= ConsiderationCount {
			errs = append(errs, fmt.Errorf("consideration %d: unknown id", id))
		}
		if def.ID != id {
			errs = append(errs, fmt.Errorf("consideration %s: keyed under %s", def.ID, id))
		}
		if def.InputMax < def.InputMin {
			errs = append(errs, fmt.Errorf("consideration %s: input range [%v,%v] inverted", id, def.InputMin, def.InputMax))
		}
		if def.Curve > vmath.CurveParabolic {
			errs = append(errs, fmt.Errorf("consideration %s: unknown curve %d", id, def.Curve))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidCatalog, errors.Join(errs...))
	}
	return nil
}
