package render

import "github.com/gdamore/tcell/v2"

// Palette
var (
	RgbBackground = tcell.NewRGBColor(12, 10, 14)
	RgbFloor      = tcell.NewRGBColor(40, 36, 40)
	RgbWall       = tcell.NewRGBColor(110, 90, 80)
	RgbText       = tcell.NewRGBColor(210, 210, 210)
	RgbDim        = tcell.NewRGBColor(120, 120, 120)
	RgbBlood      = tcell.NewRGBColor(220, 40, 40)
	RgbBloodDark  = tcell.NewRGBColor(110, 20, 20)
	RgbPlayer     = tcell.NewRGBColor(90, 200, 255)
	RgbZombie     = tcell.NewRGBColor(90, 170, 70)
	RgbZombieHurt = tcell.NewRGBColor(200, 160, 60)
	RgbBullet     = tcell.NewRGBColor(255, 240, 120)
	RgbBoss       = tcell.NewRGBColor(170, 60, 200)
	RgbBarGreen   = tcell.NewRGBColor(40, 200, 80)
	RgbBarYellow  = tcell.NewRGBColor(230, 200, 40)
	RgbBarRed     = tcell.NewRGBColor(220, 50, 50)
	RgbBarEmpty   = tcell.NewRGBColor(60, 60, 60)

	RgbAudioMuted   = tcell.NewRGBColor(200, 40, 40)
	RgbAudioUnmuted = tcell.NewRGBColor(40, 180, 80)
)

// Base styles
var (
	StyleDefault = tcell.StyleDefault.Background(RgbBackground).Foreground(RgbText)
	StyleDim     = StyleDefault.Foreground(RgbDim)
	StyleTitle   = StyleDefault.Foreground(RgbBlood).Bold(true)
	StyleAccent  = StyleDefault.Foreground(RgbBlood)
)
