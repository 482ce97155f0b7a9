package engine

import "github.com/lixenwraith/iaus/core"

// DecisionCache records the last evaluation result per actor
// Each actor owns its slot, so concurrent writers on distinct actors need no lock
type DecisionCache struct {
	decision []uint16
	score    []float32
	tick     []uint32
}

// NewDecisionCache allocates a cache for capacity actors
func NewDecisionCache(capacity int) *DecisionCache {
	return &DecisionCache{
		decision: make([]uint16, capacity),
		score:    make([]float32, capacity),
		tick:     make([]uint32, capacity),
	}
}

// SetResult stores the chosen decision, its score and the evaluation tick
func (c *DecisionCache) SetResult(e core.Entity, decision int, score float64, tick uint32) {
	c.decision[e] = uint16(decision)
	c.score[e] = float32(score)
	c.tick[e] = tick
}

func (c *DecisionCache) Decision(e core.Entity) int             { return int(c.decision[e]) }
func (c *DecisionCache) Score(e core.Entity) float64            { return float64(c.score[e]) }
func (c *DecisionCache) LastEvaluatedTick(e core.Entity) uint32 { return c.tick[e] }

// Capacity returns the number of actor slots
func (c *DecisionCache) Capacity() int {
	return len(c.decision)
}

// Reset zeroes one actor's slot
func (c *DecisionCache) Reset(e core.Entity) {
	c.decision[e] = 0
	c.score[e] = 0
	c.tick[e] = 0
}
