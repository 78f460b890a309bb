package renderers

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/undead/constants"
	"github.com/lixenwraith/undead/render"
	"github.com/lixenwraith/undead/systems"
)

// ArenaRenderer draws the walkable floor of the current environment and its walls
type ArenaRenderer struct{}

// NewArenaRenderer creates an arena renderer
func NewArenaRenderer() *ArenaRenderer {
	return &ArenaRenderer{}
}

// Render implements SystemRenderer
func (r *ArenaRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	halfX, halfZ, ok := systems.ArenaExtents(ctx.Snapshot.Phase)
	if !ok || ctx.TooSmall() {
		return
	}

	floor := tcell.StyleDefault.Background(render.RgbFloor).Foreground(render.RgbDim)
	wall := tcell.StyleDefault.Background(render.RgbBackground).Foreground(render.RgbWall)

	// One cell of slack outside the bounds is the wall line
	wallX := halfX + 1/constants.ColumnsPerUnit
	wallZ := halfZ + 1/constants.RowsPerUnit

	for sy := ctx.ViewTop; sy < ctx.ViewTop+ctx.ViewHeight; sy++ {
		for sx := 0; sx < ctx.ScreenWidth; sx++ {
			wx, wz := ctx.ScreenToWorld(sx, sy)
			ax, az := math.Abs(wx), math.Abs(wz)

			switch {
			case ax <= halfX && az <= halfZ:
				buf.Set(sx, sy, ' ', floor)
			case ax <= wallX && az <= wallZ:
				buf.Set(sx, sy, '#', wall)
			}
		}
	}
}
