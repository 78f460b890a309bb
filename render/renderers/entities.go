package renderers

import (
	"math"

	"github.com/lixenwraith/undead/constants"
	"github.com/lixenwraith/undead/render"
	"github.com/lixenwraith/undead/vmath"
)

// aimMarkerDistance is how far ahead of the player the aim marker sits, world units
const aimMarkerDistance = 1.5

// EntityRenderer draws the boss, zombies, bullets and the player
type EntityRenderer struct{}

// NewEntityRenderer creates an entity renderer
func NewEntityRenderer() *EntityRenderer {
	return &EntityRenderer{}
}

// Render implements SystemRenderer
func (r *EntityRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	snap := &ctx.Snapshot
	if !snap.Phase.IsActive() && !snap.Phase.IsTerminal() {
		return
	}
	if ctx.TooSmall() {
		return
	}

	if snap.BossActive {
		r.drawBoss(ctx, buf)
	}

	zombieStyle := render.StyleDefault.Foreground(render.RgbZombie).Bold(true)
	hurtStyle := render.StyleDefault.Foreground(render.RgbZombieHurt).Bold(true)
	for _, z := range snap.Zombies {
		sx, sy, ok := ctx.WorldToScreen(z.Position)
		if !ok {
			continue
		}
		style := zombieStyle
		if z.Health < constants.ZombieMaxHealth {
			style = hurtStyle
		}
		buf.Set(sx, sy, 'Z', style)
	}

	bulletStyle := render.StyleDefault.Foreground(render.RgbBullet)
	for _, b := range snap.Bullets {
		if sx, sy, ok := ctx.WorldToScreen(b.Position); ok {
			buf.Set(sx, sy, '•', bulletStyle)
		}
	}

	if snap.PlayerPosition != nil {
		r.drawPlayer(ctx, buf, *snap.PlayerPosition)
	}
}

func (r *EntityRenderer) drawBoss(ctx render.RenderContext, buf *render.RenderBuffer) {
	style := render.StyleDefault.Background(render.RgbBoss).Foreground(render.RgbText).Bold(true)
	center := ctx.Snapshot.BossPosition

	left, top, _ := ctx.WorldToScreen(vmath.V3FAdd(center, vmath.V3F(-constants.BossHalfWidth, 0, -constants.BossHalfWidth)))
	right, bottom, _ := ctx.WorldToScreen(vmath.V3FAdd(center, vmath.V3F(constants.BossHalfWidth, 0, constants.BossHalfWidth)))

	for sy := max(top, ctx.ViewTop); sy <= bottom && sy < ctx.ViewTop+ctx.ViewHeight; sy++ {
		for sx := left; sx <= right; sx++ {
			buf.Set(sx, sy, 'B', style)
		}
	}
}

func (r *EntityRenderer) drawPlayer(ctx render.RenderContext, buf *render.RenderBuffer, pos vmath.Vec3F) {
	style := render.StyleDefault.Foreground(render.RgbPlayer).Bold(true)
	if sx, sy, ok := ctx.WorldToScreen(pos); ok {
		buf.Set(sx, sy, '@', style)
	}

	ahead := vmath.V3F(math.Sin(ctx.AimYaw)*aimMarkerDistance, 0, -math.Cos(ctx.AimYaw)*aimMarkerDistance)
	if sx, sy, ok := ctx.WorldToScreen(vmath.V3FAdd(pos, ahead)); ok {
		buf.Set(sx, sy, aimGlyph(ctx.AimYaw), style.Bold(false))
	}
}

// aimGlyph picks a line character for a yaw, 0 facing up the screen
func aimGlyph(yaw float64) rune {
	glyphs := [...]rune{'|', '/', '-', '\\'}
	octant := int(math.Round(yaw/(math.Pi/4))) % 8
	if octant < 0 {
		octant += 8
	}
	return glyphs[octant%4]
}
