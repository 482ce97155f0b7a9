package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/iaus/component"
	"github.com/lixenwraith/iaus/config"
	"github.com/lixenwraith/iaus/core"
	"github.com/lixenwraith/iaus/engine"
	"github.com/lixenwraith/iaus/logging"
	"github.com/lixenwraith/iaus/parameter"
	"github.com/lixenwraith/iaus/system"
	"github.com/lixenwraith/iaus/utility"
)

var (
	configFlag     = flag.String("config", "", "YAML config path (default ./"+config.DefaultPath+" when present)")
	populationFlag = flag.Int("population", 0, "Actor count (default from config)")
	seedFlag       = flag.Uint64("seed", 0, "Population seed (default from config)")
	logFlag        = flag.String("log", "", "Write debug logs to this file")
	muteFlag       = flag.Bool("mute", false, "Start with audio cues muted")
)

// Situation hotkeys, '0' releases the override
var situationKeys = map[rune]component.Situation{
	'1': component.SituationPeaceful,
	'2': component.SituationDanger,
	'3': component.SituationCrowd,
	'4': component.SituationChaosHigh,
	'5': component.SituationChaosLow,
	'6': component.SituationQuiet,
}

// Sandbox is the interactive view over a running session
type Sandbox struct {
	screen    tcell.Screen
	session   *system.Session
	scheduler *engine.ClockScheduler
	ticks     <-chan uint32
	cues      *cuePlayer

	width, height int
	selected      int
	scroll        int

	// Last seen decision per actor, for switch cues
	prev     []int
	switches int
}

func newSandbox(session *system.Session, interval time.Duration, cues *cuePlayer) (*Sandbox, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	core.OnCrash(screen.Fini)

	scheduler, ticks := engine.NewClockScheduler(session.World, interval)
	sb := &Sandbox{
		screen:    screen,
		session:   session,
		scheduler: scheduler,
		ticks:     ticks,
		cues:      cues,
		prev:      make([]int, len(session.Actors)),
	}
	for i := range sb.prev {
		sb.prev[i] = -1
	}
	sb.width, sb.height = screen.Size()
	return sb, nil
}

// handleInput returns false when the sandbox should exit
func (sb *Sandbox) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyUp:
			sb.selectActor(sb.selected - 1)
		case tcell.KeyDown:
			sb.selectActor(sb.selected + 1)
		case tcell.KeyPgUp:
			sb.selectActor(sb.selected - sb.pageSize())
		case tcell.KeyPgDn:
			sb.selectActor(sb.selected + sb.pageSize())
		case tcell.KeyRune:
			return sb.handleRune(ev.Rune())
		}

	case *tcell.EventResize:
		sb.width, sb.height = sb.screen.Size()
		sb.screen.Sync()
	}
	return true
}

func (sb *Sandbox) handleRune(r rune) bool {
	switch r {
	case 'q':
		return false
	case ' ':
		if sb.scheduler.IsPaused() {
			sb.scheduler.Resume()
		} else {
			sb.scheduler.Pause()
		}
	case 'n':
		if sb.scheduler.IsPaused() {
			sb.scheduler.StepOnce()
		}
	case '+', '=':
		sb.scheduler.SetInterval(sb.scheduler.Interval() / 2)
	case '-':
		sb.scheduler.SetInterval(sb.scheduler.Interval() * 2)
	case 'k':
		sb.selectActor(sb.selected - 1)
	case 'j':
		sb.selectActor(sb.selected + 1)
	case 'm':
		sb.cues.toggleMute()
	case '0':
		sb.session.Scenario.Release()
	default:
		if sit, ok := situationKeys[r]; ok {
			sb.session.Scenario.Override(sit)
		}
	}
	return true
}

func (sb *Sandbox) selectActor(i int) {
	sb.selected = max(0, min(len(sb.session.Actors)-1, i))
	page := sb.pageSize()
	if sb.selected < sb.scroll {
		sb.scroll = sb.selected
	} else if sb.selected >= sb.scroll+page {
		sb.scroll = sb.selected - page + 1
	}
}

// onTick cues actors that switched into a combat decision since the last tick
// Plays at most one cue per tick
func (sb *Sandbox) onTick() {
	var cue utility.DecisionID
	cued := false
	sb.session.World.RunSafe(func() {
		cache := sb.session.World.Cache
		for i, e := range sb.session.Actors {
			d := cache.Decision(e)
			if d != sb.prev[i] && sb.prev[i] >= 0 {
				sb.switches++
				if _, ok := cueTones[utility.DecisionID(d)]; ok && !cued {
					cue, cued = utility.DecisionID(d), true
				}
			}
			sb.prev[i] = d
		}
	})
	if cued {
		sb.cues.play(cue)
	}
}

func (sb *Sandbox) run() {
	frame := time.NewTicker(parameter.FrameUpdateInterval)
	defer frame.Stop()

	eventChan := make(chan tcell.Event, 100)
	core.Go(func() {
		for {
			ev := sb.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	})

	sb.scheduler.Start()
	defer sb.scheduler.Stop()

	for {
		select {
		case ev := <-eventChan:
			if !sb.handleInput(ev) {
				return
			}
		case <-sb.ticks:
			sb.onTick()
		case <-frame.C:
			sb.draw()
		}
	}
}

func (sb *Sandbox) cleanup() {
	sb.cues.close()
	sb.screen.Fini()
}

func main() {
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()
	flag.Parse()

	var logOut io.Writer = io.Discard
	if *logFlag != "" {
		f, err := os.OpenFile(*logFlag, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logOut = f
	}
	logging.Init(slog.LevelDebug, "text", logOut)

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *populationFlag > 0 {
		cfg.Simulation.Population = min(*populationFlag, parameter.MaxEntities)
	}
	if *seedFlag != 0 {
		cfg.Simulation.Seed = *seedFlag
	}

	session, err := newSession(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build session: %v\n", err)
		os.Exit(1)
	}

	cues, err := newCuePlayer()
	if err != nil {
		slog.Warn("audio initialization failed, continuing without cues", "error", err)
	}
	if *muteFlag {
		cues.toggleMute()
	}

	sb, err := newSandbox(session, cfg.Simulation.Interval, cues)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer sb.cleanup()

	sb.run()
}

func newSession(cfg *config.Config) (*system.Session, error) {
	schedule, err := cfg.Schedule()
	if err != nil {
		return nil, err
	}
	catalog, archetypes, err := cfg.Apply()
	if err != nil {
		return nil, err
	}
	return system.NewSession(system.SessionConfig{
		Population: cfg.Simulation.Population,
		Seed:       cfg.Simulation.Seed,
		Workers:    cfg.Simulation.Workers,
		Schedule:   schedule,
		Catalog:    catalog,
		Archetypes: archetypes,
		Logger:     logging.New("sandbox"),
	})
}
