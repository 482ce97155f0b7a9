package system

import (
	"github.com/lixenwraith/iaus/engine"
	"github.com/lixenwraith/iaus/utility"
)

// ReadView exposes a world's stores to the evaluator
func ReadView(w *engine.World) utility.Systems {
	return utility.Systems{
		Characters: w.Characters,
		Tags:       w.Tags,
		Archetypes: w.Archetypes,
	}
}
