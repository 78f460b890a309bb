package renderers

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/lixenwraith/undead/engine"
	"github.com/lixenwraith/undead/render"
	"github.com/lixenwraith/undead/status"
	"github.com/lixenwraith/undead/vmath"
)

var testEpoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func newTestContext(w, h int) (*engine.GameContext, *engine.MockTimeProvider) {
	mock := engine.NewMockTimeProvider(testEpoch)
	ctx := engine.NewGameContext(mock, 42)
	ctx.Width, ctx.Height = w, h
	return ctx, mock
}

// draw runs renderers in order over a fresh buffer
func draw(ctx *engine.GameContext, rs ...render.SystemRenderer) *render.RenderBuffer {
	rc := render.NewRenderContext(ctx, 0)
	buf := render.NewRenderBuffer(ctx.Width, ctx.Height)
	for _, r := range rs {
		r.Render(rc, buf)
	}
	return buf
}

func screenText(buf *render.RenderBuffer) string {
	_, h := buf.Bounds()
	rows := make([]string, h)
	for y := 0; y < h; y++ {
		rows[y] = buf.Row(y)
	}
	return strings.Join(rows, "\n")
}

func TestMenuScreen(t *testing.T) {
	ctx, _ := newTestContext(80, 24)
	buf := draw(ctx, NewArenaRenderer(), NewEntityRenderer(), NewHUDRenderer(), NewOverlayRenderer())

	text := screenText(buf)
	for _, want := range []string{"NIGHTFALL", "Last Stand", "START GAME"} {
		if !strings.Contains(text, want) {
			t.Errorf("Expected menu to contain %q", want)
		}
	}
	if strings.Contains(text, "Health") {
		t.Error("Expected no HUD in menu")
	}
}

func TestPrologueBannerExpires(t *testing.T) {
	ctx, mock := newTestContext(80, 24)
	ctx.State.StartGame()

	if text := screenText(draw(ctx, NewOverlayRenderer())); !strings.Contains(text, "Awakening") {
		t.Error("Expected prologue banner at start")
	}

	mock.Advance(5 * time.Second)
	if text := screenText(draw(ctx, NewOverlayRenderer())); strings.Contains(text, "Awakening") {
		t.Error("Expected banner gone after it expires")
	}
}

func TestArenaWalls(t *testing.T) {
	ctx, _ := newTestContext(80, 24)
	ctx.State.StartGame()
	buf := draw(ctx, NewArenaRenderer())

	// Room half extent 4.5 units at 2 columns per unit, player at column 40
	if got := buf.Get(49, 12).Rune; got != ' ' {
		t.Errorf("Expected floor at room edge, got %q", got)
	}
	if got := buf.Get(50, 12).Rune; got != '#' {
		t.Errorf("Expected wall just outside the room, got %q", got)
	}
	if got := buf.Get(30, 12).Rune; got != '#' {
		t.Errorf("Expected wall on the left side, got %q", got)
	}
}

func TestEntities(t *testing.T) {
	ctx, _ := newTestContext(80, 24)
	ctx.State.StartGame()
	ctx.State.NextChapter()

	ctx.State.AddZombie(engine.NewZombie("z1", vmath.V3F(3, 1, 0)))
	ctx.State.AddZombie(engine.NewZombie("z2", vmath.V3F(-3, 1, 0)))
	ctx.State.DamageZombie("z2", 50)
	ctx.State.FireBullet(vmath.V3F(0, 1.7, -3), vmath.V3F(0, 0, -1))

	buf := draw(ctx, NewArenaRenderer(), NewEntityRenderer())

	if got := buf.Get(40, 12).Rune; got != '@' {
		t.Errorf("Expected player at center, got %q", got)
	}
	if got := buf.Get(40, 10).Rune; got != '|' {
		t.Errorf("Expected aim marker ahead of player, got %q", got)
	}
	if got := buf.Get(46, 12).Rune; got != 'Z' {
		t.Errorf("Expected zombie, got %q", got)
	}
	healthy, hurt := buf.Get(46, 12).Style, buf.Get(34, 12).Style
	if healthy == hurt {
		t.Error("Expected damaged zombie drawn differently")
	}
	if got := buf.Get(40, 9).Rune; got != '•' {
		t.Errorf("Expected bullet, got %q", got)
	}
}

func TestBossDrawnInChapter3(t *testing.T) {
	ctx, _ := newTestContext(80, 24)
	ctx.State.StartGame()
	for i := 0; i < 3; i++ {
		ctx.State.NextChapter()
	}

	buf := draw(ctx, NewEntityRenderer(), NewHUDRenderer())
	if got := buf.Get(40, 7).Rune; got != 'B' {
		t.Errorf("Expected boss block, got %q", got)
	}
	if !strings.Contains(buf.Row(1), "600/600") {
		t.Errorf("Expected boss health row, got %q", buf.Row(1))
	}
}

func TestBossBarFill(t *testing.T) {
	tests := []struct {
		health int
		want   [3]float64
	}{
		{600, [3]float64{1, 1, 1}},
		{450, [3]float64{1, 1, 1}},
		{400, [3]float64{0, 1, 1}},
		{300, [3]float64{0, 0.5, 1}},
		{100, [3]float64{0, 0, 0.5}},
		{0, [3]float64{0, 0, 0}},
	}
	for _, tt := range tests {
		for seg := 0; seg < 3; seg++ {
			if got := BossBarFill(tt.health, seg); math.Abs(got-tt.want[seg]) > 1e-9 {
				t.Errorf("BossBarFill(%d, %d): expected %f, got %f", tt.health, seg, tt.want[seg], got)
			}
		}
	}
}

func TestHUDText(t *testing.T) {
	ctx, _ := newTestContext(80, 24)
	ctx.State.StartGame()
	ctx.State.DamagePlayer(27)
	ctx.State.SetCurrentObjective("Survive the zombie attack and escape the room")

	buf := draw(ctx, NewHUDRenderer())

	top := buf.Row(0)
	if !strings.HasPrefix(top, "Health [") || !strings.Contains(top, "73/100") {
		t.Errorf("Expected health bar with 73/100, got %q", top)
	}
	if !strings.Contains(top, "Kills: 0") || !strings.Contains(top, "Prologue") {
		t.Errorf("Expected kills and phase, got %q", top)
	}
	if !strings.Contains(buf.Row(22), "Objective: Survive the zombie attack") {
		t.Errorf("Expected objective line, got %q", buf.Row(22))
	}
	if strings.TrimSpace(buf.Row(1)) != "" {
		t.Errorf("Expected no boss row before chapter 3, got %q", buf.Row(1))
	}
}

func TestEndScreens(t *testing.T) {
	ctx, _ := newTestContext(80, 24)
	ctx.State.StartGame()
	ctx.State.EndGame(engine.PhaseDefeat)

	text := screenText(draw(ctx, NewOverlayRenderer()))
	if !strings.Contains(text, "DEFEAT!") || !strings.Contains(text, "The darkness consumed you... Zombies killed: 0") {
		t.Error("Expected defeat screen with kill count")
	}

	ctx.State.StartGame()
	for i := 0; i < 3; i++ {
		ctx.State.NextChapter()
	}
	ctx.State.EndGame(engine.PhaseVictory)

	text = screenText(draw(ctx, NewOverlayRenderer()))
	if !strings.Contains(text, "You survived the nightmare! Zombies killed: 0") {
		t.Error("Expected victory screen with kill count")
	}
}

func TestPauseAndTooSmall(t *testing.T) {
	ctx, mock := newTestContext(80, 24)
	ctx.State.StartGame()
	mock.Advance(5 * time.Second)
	ctx.Clock.Pause()

	if text := screenText(draw(ctx, NewOverlayRenderer())); !strings.Contains(text, "PAUSED") {
		t.Error("Expected pause overlay")
	}

	small, _ := newTestContext(30, 8)
	small.State.StartGame()
	if text := screenText(draw(small, NewHUDRenderer(), NewOverlayRenderer())); !strings.Contains(text, "Terminal too small") {
		t.Error("Expected resize notice")
	}
}

func TestStatusBar(t *testing.T) {
	ctx, _ := newTestContext(80, 24)
	ctx.State.StartGame()
	ctx.IsMuted.Store(true)

	sb := NewStatusBarRenderer(ctx.Status)
	buf := draw(ctx, sb)

	row := buf.Row(23)
	if !strings.Contains(row, "prologue") || !strings.Contains(row, "FPS:") {
		t.Errorf("Expected phase and FPS in status bar, got %q", row)
	}
	if buf.Get(0, 23).Style.Background(render.RgbAudioMuted) != buf.Get(0, 23).Style {
		t.Error("Expected muted indicator color")
	}
	if !ctx.Status.Ints.Has(status.KeyFPS) {
		t.Error("Expected FPS metric registered")
	}
}

func TestAimGlyph(t *testing.T) {
	if aimGlyph(0) != '|' || aimGlyph(math.Pi/2) != '-' || aimGlyph(-math.Pi/4) != '\\' || aimGlyph(math.Pi/4) != '/' {
		t.Error("Expected line glyphs per octant")
	}
}
