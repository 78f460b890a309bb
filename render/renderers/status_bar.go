package renderers

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/undead/constants"
	"github.com/lixenwraith/undead/render"
	"github.com/lixenwraith/undead/status"
)

// StatusBarRenderer draws the status bar at the bottom
type StatusBarRenderer struct {
	fps *atomic.Int64

	// FPS Tracking
	frameCount    int
	lastFpsUpdate time.Time
	currentFps    int
}

// NewStatusBarRenderer creates a status bar renderer publishing FPS to reg
func NewStatusBarRenderer(reg *status.Registry) *StatusBarRenderer {
	return &StatusBarRenderer{
		fps:           reg.Ints.Get(status.KeyFPS),
		lastFpsUpdate: time.Now(),
	}
}

// Render implements SystemRenderer
func (s *StatusBarRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	// FPS Calculation
	s.frameCount++
	now := time.Now()
	if now.Sub(s.lastFpsUpdate) >= constants.FPSUpdateInterval {
		s.currentFps = s.frameCount
		s.frameCount = 0
		s.lastFpsUpdate = now
		s.fps.Store(int64(s.currentFps))
	}

	y := ctx.ScreenHeight - 1
	if y < 0 {
		return
	}
	buf.Fill(0, y, ctx.ScreenWidth, 1, ' ', render.StyleDefault)

	// Audio mute indicator - always visible
	audioBg := render.RgbAudioUnmuted
	if ctx.IsMuted {
		audioBg = render.RgbAudioMuted
	}
	x := buf.SetString(0, y, constants.AudioStr, tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(audioBg))
	x++

	snap := &ctx.Snapshot
	info := fmt.Sprintf("%s  zombies %d  spawn %dms", snap.Phase, len(snap.Zombies), snap.SpawnInterval)
	if ctx.IsPaused {
		info = constants.PausedText + "  " + info
	}
	buf.SetString(x, y, info, render.StyleDim)

	fps := fmt.Sprintf("FPS: %d", s.currentFps)
	buf.SetString(ctx.ScreenWidth-len(fps)-1, y, fps, render.StyleDim)
}
