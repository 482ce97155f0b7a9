package main

import (
	"fmt"
	"slices"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/iaus/engine"
	"github.com/lixenwraith/iaus/utility"
)

const (
	listWidth  = 78
	panelWidth = 40
	headerRows = 2
	footerRows = 1
)

var (
	styleDefault  = tcell.StyleDefault
	styleHeader   = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorSilver)
	styleDim      = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleCombat   = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleFlee     = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleRest     = tcell.StyleDefault.Foreground(tcell.ColorBlue)
	styleWork     = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleSocial   = tcell.StyleDefault.Foreground(tcell.ColorTeal)
	stylePaused   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorMaroon)
	styleSelected = tcell.StyleDefault.Reverse(true)
)

func decisionStyle(d utility.DecisionID) tcell.Style {
	switch d {
	case utility.DecisionAttack, utility.DecisionDefend:
		return styleCombat
	case utility.DecisionFlee:
		return styleFlee
	case utility.DecisionRest, utility.DecisionSleep, utility.DecisionWait:
		return styleRest
	case utility.DecisionWorkCraft, utility.DecisionWorkTrade, utility.DecisionWorkGuard, utility.DecisionWorkFarm:
		return styleWork
	case utility.DecisionTalk, utility.DecisionGreet:
		return styleSocial
	}
	return styleDefault
}

func (sb *Sandbox) pageSize() int {
	return max(1, sb.height-headerRows-footerRows)
}

func (sb *Sandbox) drawText(x, y int, style tcell.Style, s string) int {
	for _, r := range s {
		if x >= sb.width {
			break
		}
		sb.screen.SetContent(x, y, r, nil, style)
		x++
	}
	return x
}

func (sb *Sandbox) fillRow(y int, style tcell.Style) {
	for x := 0; x < sb.width; x++ {
		sb.screen.SetContent(x, y, ' ', nil, style)
	}
}

func (sb *Sandbox) draw() {
	sb.screen.Clear()
	sb.session.World.RunSafe(func() {
		sb.drawHeader()
		sb.drawActors()
		if sb.width >= listWidth+panelWidth {
			sb.drawPanel(listWidth + 2)
		}
	})
	sb.drawFooter()
	sb.screen.Show()
}

func (sb *Sandbox) drawHeader() {
	w := sb.session.World
	tick := w.Tick()
	minute := int(engine.GameMinuteOfDay(tick))

	sb.fillRow(0, styleHeader)
	line := fmt.Sprintf(" tick %-6d day %d %02d:%02d  situation %-10s interval %-6v switches %d",
		tick, engine.GameDay(tick), minute/60, minute%60,
		sb.session.Scenario.Situation(), sb.scheduler.Interval(), sb.switches)
	x := sb.drawText(0, 0, styleHeader, line)
	if sb.scheduler.IsPaused() {
		sb.drawText(x+2, 0, stylePaused, " PAUSED ")
	}

	sb.drawText(0, 1, styleDim, fmt.Sprintf("%5s  %-12s %9s %5s  %-10s %-12s %4s %6s",
		"id", "archetype", "hp", "bonds", "rest", "decision", "lock", "score"))
}

func (sb *Sandbox) drawActors() {
	w := sb.session.World
	catalog := sb.session.Catalog()
	actors := sb.session.Actors
	end := min(len(actors), sb.scroll+sb.pageSize())

	for i := sb.scroll; i < end; i++ {
		e := actors[i]
		y := headerRows + i - sb.scroll
		d := utility.DecisionID(w.Cache.Decision(e))

		style := styleDefault
		if w.Characters.IsDead(e) {
			style = styleDim
		}
		if i == sb.selected {
			style = styleSelected
		}

		row := fmt.Sprintf("%5d  %-12s %4d/%-4d %5d  %-10s ",
			e, w.Archetypes.Name(w.Characters.ArchetypeID(e)),
			w.Characters.HP(e), w.Characters.MaxHP(e), w.Characters.Bonds(e),
			w.Characters.RestState(e))
		x := sb.drawText(0, y, style, row)

		dstyle := decisionStyle(d)
		if i == sb.selected {
			dstyle = dstyle.Reverse(true)
		}
		x = sb.drawText(x, y, dstyle, fmt.Sprintf("%-12s", catalog.Name(d)))
		sb.drawText(x, y, style, fmt.Sprintf(" %4d %6.3f", w.Locks.Remaining(e), w.Cache.Score(e)))
	}
}

// drawPanel shows the ranked decisions of the selected actor and the factors of the best one
func (sb *Sandbox) drawPanel(x0 int) {
	if len(sb.session.Actors) == 0 {
		return
	}
	bs, err := sb.session.Explain(sb.selected)
	if err != nil {
		return
	}
	slices.SortStableFunc(bs, func(a, b utility.Breakdown) int {
		switch {
		case a.Final > b.Final:
			return -1
		case a.Final < b.Final:
			return 1
		}
		return 0
	})

	y := headerRows
	sb.drawText(x0, y, styleDim, fmt.Sprintf("actor %d ranking", sb.session.Actors[sb.selected]))
	y++
	for i, b := range bs {
		if i >= 8 || y >= sb.height-footerRows {
			break
		}
		sb.drawText(x0, y, decisionStyle(b.Decision), fmt.Sprintf("%-14s %6.3f", b.Name, b.Final))
		y++
	}

	y++
	if len(bs) == 0 || y >= sb.height-footerRows {
		return
	}
	top := bs[0]
	sb.drawText(x0, y, styleDim, fmt.Sprintf("%s factors (x%.2f)", top.Name, top.Weight))
	y++
	for _, f := range top.Factors {
		if y >= sb.height-footerRows {
			return
		}
		style := styleDefault
		if !(f.Score > 0) {
			style = styleCombat
		}
		sb.drawText(x0, y, style, fmt.Sprintf("%-18s %8.3f %6.3f", f.Label, f.Raw, f.Score))
		y++
	}
}

func (sb *Sandbox) drawFooter() {
	audio := "on"
	switch {
	case !sb.cues.enabled:
		audio = "off"
	case sb.cues.muted:
		audio = "muted"
	}
	help := fmt.Sprintf(" q quit  space pause  n step  +/- speed  j/k select  1-6 situation  0 schedule  m audio (%s)", audio)
	sb.drawText(0, sb.height-1, styleDim, help)
}
