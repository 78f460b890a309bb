package constants

import "time"

// UI Layout Constants
const (
	// HUDRows is the number of rows above the arena view
	HUDRows = 2

	// FooterRows is the number of rows below the arena view (objective, status bar)
	FooterRows = 2

	// ColumnsPerUnit and RowsPerUnit scale world units to terminal cells
	// Cells are roughly twice as tall as wide
	ColumnsPerUnit = 2.0
	RowsPerUnit    = 1.0

	// HealthBarWidth is the cell width of the player health bar
	HealthBarWidth = 20

	// BossBarWidth is the cell width of each boss health segment
	BossBarWidth = 8

	// BossBarSegment is the boss health each segment represents
	BossBarSegment = 200

	// BossHalfWidth is the half extent of the boss glyph block in world units
	BossHalfWidth = 1.0

	// MinScreenWidth and MinScreenHeight below which a resize notice is drawn
	MinScreenWidth  = 40
	MinScreenHeight = 12
)

// UI Text
const (
	TitleText    = "NIGHTFALL"
	SubtitleText = "Last Stand"
	MenuTagline  = "The city has fallen. Zombies roam the streets."
	MenuGoal     = "You must survive the night and reach the cave at the hilltop."
	MenuStart    = "[ Enter ] START GAME"
	MenuControls = "WASD or arrows to move, q/e to look, Space to shoot"
	MenuExtra    = "p pause  n mute  Esc quit"

	PrologueTitle = "Awakening"
	PrologueText  = "You wake up in an abandoned room..."

	VictoryTitle = "VICTORY!"
	DefeatTitle  = "DEFEAT!"
	VictoryText  = "You survived the nightmare! Zombies killed: %d"
	DefeatText   = "The darkness consumed you... Zombies killed: %d"
	EndOptions   = "R try again   m main menu"

	PausedText   = "PAUSED"
	TooSmallText = "Terminal too small"
	AudioStr     = " ♪ "
)

// UI Timing Constants
const (
	// PrologueBannerDuration is how long the prologue banner stays up
	PrologueBannerDuration = 4 * time.Second

	// FPSUpdateInterval is how often the status bar FPS counter refreshes
	FPSUpdateInterval = time.Second
)
