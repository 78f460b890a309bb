package renderers

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/undead/constants"
	"github.com/lixenwraith/undead/engine"
	"github.com/lixenwraith/undead/render"
	"github.com/lixenwraith/undead/vmath"
)

// phaseTitles are the HUD names of playable phases
var phaseTitles = map[engine.GamePhase]string{
	engine.PhasePrologue: "Prologue",
	engine.PhaseChapter1: "Chapter 1",
	engine.PhaseChapter2: "Chapter 2",
	engine.PhaseChapter3: "Chapter 3",
}

// HUDRenderer draws health, kills, phase, boss health and the objective
type HUDRenderer struct{}

// NewHUDRenderer creates a HUD renderer
func NewHUDRenderer() *HUDRenderer {
	return &HUDRenderer{}
}

// Render implements SystemRenderer
func (r *HUDRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	snap := &ctx.Snapshot
	if snap.Phase == engine.PhaseMenu || ctx.TooSmall() {
		return
	}

	// Top row: health, kills, phase
	x := buf.SetString(0, 0, "Health ", render.StyleAccent)
	x += drawBar(buf, x, 0, constants.HealthBarWidth, float64(snap.PlayerHealth)/constants.PlayerMaxHealth, healthColor(snap.PlayerHealth))
	x += buf.SetString(x, 0, fmt.Sprintf(" %d/%d", snap.PlayerHealth, constants.PlayerMaxHealth), render.StyleDefault)
	x += buf.SetString(x, 0, "   Kills: ", render.StyleAccent)
	x += buf.SetString(x, 0, fmt.Sprint(snap.Kills), render.StyleDefault)
	if title, ok := phaseTitles[snap.Phase]; ok {
		buf.SetString(x+3, 0, title, render.StyleDim)
	}

	// Boss row
	if snap.Phase == engine.PhaseChapter3 {
		x = buf.SetString(0, 1, "Boss   ", render.StyleDefault.Foreground(render.RgbBoss))
		colors := [constants.BossHealthBars]tcell.Color{render.RgbBarGreen, render.RgbBarYellow, render.RgbBarRed}
		for seg := 0; seg < constants.BossHealthBars; seg++ {
			x += drawBar(buf, x, 1, constants.BossBarWidth, BossBarFill(snap.BossHealth, seg), colors[seg])
			x++
		}
		buf.SetString(x, 1, fmt.Sprintf("%d/%d", snap.BossHealth, constants.BossMaxHealth), render.StyleDim)
	}

	// Objective above the status bar
	if snap.Objective != nil {
		y := ctx.ScreenHeight - constants.FooterRows
		line := "Objective: " + *snap.Objective
		buf.SetCentered(y, line, render.StyleDefault.Bold(true))
	}
}

// BossBarFill returns the 0..1 fill of boss bar segment seg (0 is the first to drain)
func BossBarFill(health, seg int) float64 {
	switch seg {
	case 0:
		// All or nothing above two segments' worth
		if health > 2*constants.BossBarSegment {
			return 1
		}
		return 0
	case 1:
		if health > 2*constants.BossBarSegment {
			return 1
		}
		if health > constants.BossBarSegment {
			return float64(health-constants.BossBarSegment) / constants.BossBarSegment
		}
		return 0
	case 2:
		if health > constants.BossBarSegment {
			return 1
		}
		if health > 0 {
			return float64(health) / constants.BossBarSegment
		}
		return 0
	}
	return 0
}

// drawBar draws a bracketed bar of width cells and returns the cells used
func drawBar(buf *render.RenderBuffer, x, y, width int, fill float64, color tcell.Color) int {
	fill = vmath.Clamp(fill, 0, 1)
	filled := int(fill*float64(width) + 0.5)

	buf.Set(x, y, '[', render.StyleDim)
	full := render.StyleDefault.Foreground(color)
	empty := render.StyleDefault.Foreground(render.RgbBarEmpty)
	for i := 0; i < width; i++ {
		if i < filled {
			buf.Set(x+1+i, y, '█', full)
		} else {
			buf.Set(x+1+i, y, '░', empty)
		}
	}
	buf.Set(x+1+width, y, ']', render.StyleDim)
	return width + 2
}

func healthColor(health int) tcell.Color {
	switch {
	case health > constants.PlayerMaxHealth/2:
		return render.RgbBarGreen
	case health > constants.PlayerMaxHealth/4:
		return render.RgbBarYellow
	default:
		return render.RgbBarRed
	}
}

// centerBox draws a bordered box sized to lines, centered on screen
func centerBox(buf *render.RenderBuffer, lines []string, border tcell.Style) (top int) {
	w, h := buf.Bounds()
	inner := 0
	for _, l := range lines {
		inner = max(inner, len([]rune(l)))
	}
	boxW, boxH := inner+4, len(lines)+2
	left, top := (w-boxW)/2, (h-boxH)/2

	buf.Fill(left, top, boxW, boxH, ' ', render.StyleDefault)
	horiz := strings.Repeat("─", boxW-2)
	buf.SetString(left, top, "┌"+horiz+"┐", border)
	buf.SetString(left, top+boxH-1, "└"+horiz+"┘", border)
	for row := top + 1; row < top+boxH-1; row++ {
		buf.Set(left, row, '│', border)
		buf.Set(left+boxW-1, row, '│', border)
	}
	return top + 1
}
