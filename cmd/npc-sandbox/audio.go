package main

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/iaus/utility"
)

const sampleRate = beep.SampleRate(44100)

// cueTones maps the combat decisions onto a cue pitch; other decisions are silent
var cueTones = map[utility.DecisionID]float64{
	utility.DecisionAttack: 880,
	utility.DecisionDefend: 660,
	utility.DecisionFlee:   440,
}

// cuePlayer beeps when actors switch into a combat decision
type cuePlayer struct {
	enabled bool
	muted   bool
}

func newCuePlayer() (*cuePlayer, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return &cuePlayer{}, err
	}
	return &cuePlayer{enabled: true}, nil
}

// play sounds the tone of d for 50ms; no-op for silent decisions
func (c *cuePlayer) play(d utility.DecisionID) {
	freq, ok := cueTones[d]
	if !ok || !c.enabled || c.muted {
		return
	}
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(50*time.Millisecond), sine))
}

func (c *cuePlayer) toggleMute() bool {
	c.muted = !c.muted
	return c.muted
}

func (c *cuePlayer) close() {
	if c.enabled {
		speaker.Close()
	}
}
