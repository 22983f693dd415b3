package core

import (
	"errors"
	"fmt"

	"github.com/mattn/go-runewidth"
)

var (
	// ErrInvalidDimension reports a non-positive buffer dimension
	ErrInvalidDimension = errors.New("invalid buffer dimension")

	// ErrOutOfBounds reports a point access outside the buffer grid
	ErrOutOfBounds = errors.New("coordinates out of bounds")
)

// Buffer is the single mutable grid an application draws into each frame.
// Cells are stored row-major: index(x,y) = y*width + x. Dimensions are
// fixed for the buffer's lifetime; there is no resize.
//
// Uses a flat []Cell to allow zero-copy export to the renderer, worth the
// coupling.
type Buffer struct {
	cells  []Cell
	width  int
	height int
}

// NewBuffer allocates a width*height buffer with every cell set to
// DefaultCell. Returns ErrInvalidDimension when either dimension is not
// positive.
func NewBuffer(width, height int) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimension, width, height)
	}

	b := &Buffer{
		cells:  make([]Cell, width*height),
		width:  width,
		height: height,
	}
	b.Clear()
	return b, nil
}

// Width returns the buffer width
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the buffer height
func (b *Buffer) Height() int {
	return b.height
}

// inBounds returns true if (x,y) is inside the grid
func (b *Buffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// SetCell overwrites the cell at (x,y). Point writes are bounds-checked:
// an out-of-range coordinate is a caller bug and returns ErrOutOfBounds
// rather than clipping silently.
func (b *Buffer) SetCell(x, y int, glyph rune, fg Color) error {
	if !b.inBounds(x, y) {
		return fmt.Errorf("%w: (%d,%d) in %dx%d", ErrOutOfBounds, x, y, b.width, b.height)
	}
	b.cells[y*b.width+x] = Cell{Glyph: glyph, Fg: fg}
	return nil
}

// Cell returns the cell at (x,y), or ErrOutOfBounds outside the grid
func (b *Buffer) Cell(x, y int) (Cell, error) {
	if !b.inBounds(x, y) {
		return Cell{}, fmt.Errorf("%w: (%d,%d) in %dx%d", ErrOutOfBounds, x, y, b.width, b.height)
	}
	return b.cells[y*b.width+x], nil
}

// DrawText writes text left to right starting at (x,y), one cell per
// rune, advancing x by 1. Text never wraps to the next row. Runes whose
// column falls outside [0,width) are clipped, not an error: callers are
// not expected to bounds-check text length.
func (b *Buffer) DrawText(text string, x, y int, fg Color) {
	if y < 0 || y >= b.height {
		return
	}

	col := x
	for _, r := range text {
		if col >= b.width {
			break
		}
		if col >= 0 {
			b.cells[y*b.width+col] = Cell{Glyph: r, Fg: fg}
		}
		col++
	}
}

// DrawTextWide writes text like DrawText but advances by display width,
// so CJK and emoji glyphs occupy two columns. The spill column after a
// wide glyph is set to a plain space; the renderer skips it on output to
// keep terminal columns aligned.
func (b *Buffer) DrawTextWide(text string, x, y int, fg Color) {
	if y < 0 || y >= b.height {
		return
	}

	col := x
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if col >= b.width {
			break
		}
		if col >= 0 {
			b.cells[y*b.width+col] = Cell{Glyph: r, Fg: fg}
		}
		if w == 2 && col+1 >= 0 && col+1 < b.width {
			b.cells[y*b.width+col+1] = Cell{Glyph: ' ', Fg: fg}
		}
		col += w
	}
}

// Blit copies a srcW*srcH row-major cell grid into the buffer at offset
// (x,y). A source cell whose glyph equals transparent is skipped, letting
// sprites compose over existing background without an alpha channel;
// transparent == 0 disables skipping. Destination clipping is silent so a
// sprite may straddle a buffer edge.
func (b *Buffer) Blit(src []Cell, srcW, srcH, x, y int, transparent rune) {
	if srcW <= 0 || srcH <= 0 || len(src) < srcW*srcH {
		return
	}

	for sy := 0; sy < srcH; sy++ {
		dy := y + sy
		if dy < 0 || dy >= b.height {
			continue
		}
		for sx := 0; sx < srcW; sx++ {
			dx := x + sx
			if dx < 0 || dx >= b.width {
				continue
			}
			c := src[sy*srcW+sx]
			if transparent != 0 && c.Glyph == transparent {
				continue
			}
			b.cells[dy*b.width+dx] = c
		}
	}
}

// Clear resets every cell to DefaultCell using exponential copy.
// Idempotent.
func (b *Buffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = DefaultCell
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
}

// Cells exposes the underlying cell slice for zero-copy rendering.
// Callers must not retain the slice across a Clear.
func (b *Buffer) Cells() []Cell {
	return b.cells
}
