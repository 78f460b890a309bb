package render

import (
	"math"
	"time"

	"github.com/lixenwraith/undead/constants"
	"github.com/lixenwraith/undead/engine"
	"github.com/lixenwraith/undead/vmath"
)

// RenderContext provides frame state for renderers, passed by value
type RenderContext struct {
	// Time state
	GameTime time.Time
	IsPaused bool
	IsMuted  bool

	// Consistent copy of the store for this frame
	Snapshot engine.GameSnapshot

	// Aim yaw of the local player, radians
	AimYaw float64

	// Screen dimensions (terminal size)
	ScreenWidth  int
	ScreenHeight int

	// Arena view rows [ViewTop, ViewTop+ViewHeight)
	ViewTop    int
	ViewHeight int

	// World point drawn at the view center
	Center vmath.Vec3F
}

// NewRenderContext captures one frame from the game context
func NewRenderContext(ctx *engine.GameContext, aimYaw float64) RenderContext {
	now := ctx.Now()
	snap := ctx.State.Snapshot(now)

	rc := RenderContext{
		GameTime:     now,
		IsPaused:     ctx.Clock.IsPaused(),
		IsMuted:      ctx.IsMuted.Load(),
		Snapshot:     snap,
		AimYaw:       aimYaw,
		ScreenWidth:  ctx.Width,
		ScreenHeight: ctx.Height,
	}
	rc.layout()
	return rc
}

// layout derives the arena view from screen size and player position
func (rc *RenderContext) layout() {
	rc.ViewTop = constants.HUDRows
	rc.ViewHeight = max(rc.ScreenHeight-constants.HUDRows-constants.FooterRows, 0)
	if p := rc.Snapshot.PlayerPosition; p != nil {
		rc.Center = *p
	} else {
		rc.Center = engine.PlayerStart()
	}
}

// WorldToScreen projects a world point onto the top-down view
// Returns (sx, sy, visible) where visible=false if outside the view
func (rc *RenderContext) WorldToScreen(p vmath.Vec3F) (int, int, bool) {
	sx := rc.ScreenWidth/2 + int(math.Round((p.X-rc.Center.X)*constants.ColumnsPerUnit))
	sy := rc.ViewTop + rc.ViewHeight/2 + int(math.Round((p.Z-rc.Center.Z)*constants.RowsPerUnit))
	visible := sx >= 0 && sx < rc.ScreenWidth && sy >= rc.ViewTop && sy < rc.ViewTop+rc.ViewHeight
	return sx, sy, visible
}

// ScreenToWorld returns the world XZ point at the center of a view cell
func (rc *RenderContext) ScreenToWorld(sx, sy int) (float64, float64) {
	x := rc.Center.X + float64(sx-rc.ScreenWidth/2)/constants.ColumnsPerUnit
	z := rc.Center.Z + float64(sy-rc.ViewTop-rc.ViewHeight/2)/constants.RowsPerUnit
	return x, z
}

// TooSmall reports whether the terminal cannot fit the layout
func (rc *RenderContext) TooSmall() bool {
	return rc.ScreenWidth < constants.MinScreenWidth || rc.ScreenHeight < constants.MinScreenHeight
}
