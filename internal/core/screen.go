package core

import "strings"

// Cell is a single screen position: a rune plus an optional foreground color
// expressed as a hex string ("#D55E00"). An empty color means the terminal
// default.
type Cell struct {
	Ch    rune
	Color string
}

// Screen is a 2D cell buffer for rendering the world view. It decouples the
// renderer from the terminal: the platform draws objects with simple cell
// operations and flushes the buffer to styled output once per frame.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
}

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{width: width, height: height}
	s.allocate()
	s.Clear()
	return s
}

func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in cells.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in cells.
func (s *Screen) Height() int {
	return s.height
}

// Resize changes the screen dimensions, discarding content.
func (s *Screen) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}
	s.width = width
	s.height = height
	s.allocate()
	s.Clear()
}

// Clear fills the entire screen with spaces.
func (s *Screen) Clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = Cell{Ch: ' '}
		}
	}
}

// Set places a cell at the given position.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, ch rune, color string) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x] = Cell{Ch: ch, Color: color}
}

// Get returns the cell at the given position.
// Returns a blank cell for out-of-bounds coordinates.
func (s *Screen) Get(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return Cell{Ch: ' '}
	}
	return s.cells[y][x]
}

// FillRect fills a rectangular region with the given cell.
// The region is clipped to the screen bounds.
func (s *Screen) FillRect(x, y, w, h int, ch rune, color string) {
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			s.Set(x+dx, y+dy, ch, color)
		}
	}
}

// DrawText writes a string starting at the given position, clipped to the row.
func (s *Screen) DrawText(x, y int, text string, color string) {
	for i, ch := range text {
		s.Set(x+i, y, ch, color)
	}
}

// Row returns the plain-text content of one row, without styling.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return ""
	}
	var b strings.Builder
	for x := 0; x < s.width; x++ {
		b.WriteRune(s.cells[y][x].Ch)
	}
	return b.String()
}

// String returns the plain-text contents of the whole buffer, one line per
// row. Used by tests and screenshots; the TUI flushes with styling instead.
func (s *Screen) String() string {
	var b strings.Builder
	for y := 0; y < s.height; y++ {
		b.WriteString(s.Row(y))
		if y < s.height-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
