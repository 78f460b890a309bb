package render

import (
	"github.com/gdamore/tcell/v2"
)

// RenderBuffer is the frame compositor; renderers draw here, the orchestrator flushes once
type RenderBuffer struct {
	cells  []Cell
	width  int
	height int
}

// NewRenderBuffer creates a buffer with the specified dimensions
func NewRenderBuffer(width, height int) *RenderBuffer {
	b := &RenderBuffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *RenderBuffer) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
	} else {
		b.cells = b.cells[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// Clear resets all cells to empty using exponential copy
func (b *RenderBuffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = emptyCell
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
}

// inBounds returns true if in screen bounds
func (b *RenderBuffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Bounds returns buffer dimensions
func (b *RenderBuffer) Bounds() (int, int) {
	return b.width, b.height
}

// ===== DRAW API =====

// Set writes a cell; out-of-bounds writes are dropped
func (b *RenderBuffer) Set(x, y int, r rune, style tcell.Style) {
	if !b.inBounds(x, y) {
		return
	}
	b.cells[y*b.width+x] = Cell{Rune: r, Style: style}
}

// Get returns the cell at x, y; out of bounds yields an empty cell
func (b *RenderBuffer) Get(x, y int) Cell {
	if !b.inBounds(x, y) {
		return emptyCell
	}
	return b.cells[y*b.width+x]
}

// SetString writes s left to right and returns the number of cells used
func (b *RenderBuffer) SetString(x, y int, s string, style tcell.Style) int {
	n := 0
	for _, r := range s {
		b.Set(x+n, y, r, style)
		n++
	}
	return n
}

// SetCentered writes s centered on row y
func (b *RenderBuffer) SetCentered(y int, s string, style tcell.Style) {
	b.SetString((b.width-runeLen(s))/2, y, s, style)
}

// Fill paints a rectangle with r
func (b *RenderBuffer) Fill(x, y, w, h int, r rune, style tcell.Style) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			b.Set(col, row, r, style)
		}
	}
}

// Row returns the runes of row y as a string, for tests and debugging
func (b *RenderBuffer) Row(y int) string {
	if y < 0 || y >= b.height {
		return ""
	}
	runes := make([]rune, b.width)
	for x := 0; x < b.width; x++ {
		runes[x] = b.cells[y*b.width+x].Rune
	}
	return string(runes)
}

// ===== OUTPUT =====

// FlushToScreen copies the composed frame to the screen
func (b *RenderBuffer) FlushToScreen(screen tcell.Screen) {
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			c := b.cells[y*b.width+x]
			screen.SetContent(x, y, c.Rune, nil, c.Style)
		}
	}
}

func runeLen(s string) int {
	n := 0
	for range s {
		n++
	}
	return n
}
