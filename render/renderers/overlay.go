package renderers

import (
	"fmt"
	"time"

	"github.com/lixenwraith/undead/constants"
	"github.com/lixenwraith/undead/engine"
	"github.com/lixenwraith/undead/render"
)

// OverlayRenderer draws the start screen, the prologue banner, pause and end screens
type OverlayRenderer struct{}

// NewOverlayRenderer creates an overlay renderer
func NewOverlayRenderer() *OverlayRenderer {
	return &OverlayRenderer{}
}

// Render implements SystemRenderer
func (r *OverlayRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	if ctx.TooSmall() {
		buf.Clear()
		buf.SetCentered(ctx.ScreenHeight/2, constants.TooSmallText, render.StyleAccent)
		return
	}

	snap := &ctx.Snapshot
	switch {
	case snap.Phase == engine.PhaseMenu:
		r.drawMenu(ctx, buf)
	case snap.Phase.IsTerminal():
		r.drawEnd(buf, snap)
	case snap.Phase == engine.PhasePrologue &&
		time.Duration(snap.PhaseElapsedMs)*time.Millisecond < constants.PrologueBannerDuration:
		top := centerBox(buf, []string{constants.PrologueTitle, "", constants.PrologueText}, render.StyleAccent)
		buf.SetCentered(top, constants.PrologueTitle, render.StyleTitle)
		buf.SetCentered(top+2, constants.PrologueText, render.StyleDefault)
	}

	if ctx.IsPaused && snap.Phase.IsActive() {
		top := centerBox(buf, []string{constants.PausedText}, render.StyleDim)
		buf.SetCentered(top, constants.PausedText, render.StyleTitle)
	}
}

func (r *OverlayRenderer) drawMenu(ctx render.RenderContext, buf *render.RenderBuffer) {
	buf.Clear()
	y := max(ctx.ScreenHeight/2-5, 0)

	buf.SetCentered(y, constants.TitleText, render.StyleTitle)
	buf.SetCentered(y+1, constants.SubtitleText, render.StyleAccent)
	buf.SetCentered(y+3, constants.MenuTagline, render.StyleDefault)
	buf.SetCentered(y+4, constants.MenuGoal, render.StyleDim)
	buf.SetCentered(y+6, constants.MenuStart, render.StyleTitle)
	buf.SetCentered(y+8, constants.MenuControls, render.StyleDim)
	buf.SetCentered(y+9, constants.MenuExtra, render.StyleDim)
}

func (r *OverlayRenderer) drawEnd(buf *render.RenderBuffer, snap *engine.GameSnapshot) {
	title, text := constants.VictoryTitle, fmt.Sprintf(constants.VictoryText, snap.Kills)
	titleStyle := render.StyleDefault.Foreground(render.RgbBarGreen).Bold(true)
	if snap.Phase == engine.PhaseDefeat {
		title, text = constants.DefeatTitle, fmt.Sprintf(constants.DefeatText, snap.Kills)
		titleStyle = render.StyleTitle
	}

	top := centerBox(buf, []string{title, "", text, "", constants.EndOptions}, render.StyleAccent)
	buf.SetCentered(top, title, titleStyle)
	buf.SetCentered(top+2, text, render.StyleDefault)
	buf.SetCentered(top+4, constants.EndOptions, render.StyleDim)
}
