package core

// Cell represents a single grid position: one glyph and an optional
// foreground color. The zero value is not the default cell; buffers
// initialize cells to DefaultCell.
type Cell struct {
	Glyph rune
	Fg    Color
}

// DefaultCell is the state every cell holds after allocation or Clear
var DefaultCell = Cell{Glyph: ' ', Fg: ColorNone}
