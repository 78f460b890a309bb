package systems

import (
	"time"

	"github.com/lixenwraith/undead/engine"
	"github.com/lixenwraith/undead/input"
)

var testEpoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// newTestContext returns a session on a mock clock with a fixed seed
func newTestContext() (*engine.GameContext, *engine.MockTimeProvider) {
	mock := engine.NewMockTimeProvider(testEpoch)
	return engine.NewGameContext(mock, 42), mock
}

// fixedControls replays the same controls and aim every frame
type fixedControls struct {
	controls input.Controls
	aim      input.Aim
}

func (f *fixedControls) Step(time.Time, time.Duration) (input.Controls, input.Aim) {
	return f.controls, f.aim
}

// enterChapter3 starts a game and advances to the boss fight
func enterChapter3(ctx *engine.GameContext) {
	ctx.State.StartGame()
	for i := 0; i < 3; i++ {
		ctx.State.NextChapter()
	}
}
