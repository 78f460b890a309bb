package render

import "github.com/gdamore/tcell/v2"

// Cell is one composed terminal cell
type Cell struct {
	Rune  rune
	Style tcell.Style
}

// emptyCell is what Clear resets to
var emptyCell = Cell{Rune: ' ', Style: StyleDefault}
