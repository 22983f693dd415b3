package render

import (
	"unicode/utf8"

	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/cellforge/core"
	"github.com/lixenwraith/cellforge/terminal"
)

// Renderer serializes a core.Buffer into glyphs and color-change escape
// directives through a terminal adapter. It owns the "currently emitted
// color" state for one render pass; directive volume is bounded by the
// number of color transitions in the buffer, not the cell count.
//
// The frame is assembled in a reused byte buffer and flushed through the
// adapter as a single write. The cursor is positioned at the buffer's
// logical origin before emission so each frame overwrites the previous
// one in place; nothing is cleared, which is what keeps redraw
// flicker-free on terminals that retain drawn content.
type Renderer struct {
	adapter terminal.Adapter
	out     []byte
}

// New creates a renderer writing through the given adapter
func New(adapter terminal.Adapter) *Renderer {
	return &Renderer{
		adapter: adapter,
		out:     make([]byte, 0, 64*1024),
	}
}

// Render emits one full frame from the buffer
func (r *Renderer) Render(buf *core.Buffer) {
	r.adapter.SetCursorPosition(0, 0)

	width := buf.Width()
	height := buf.Height()
	cells := buf.Cells()

	out := r.out[:0]
	active := core.ColorNone

	for y := 0; y < height; y++ {
		if y > 0 {
			// Explicit row positioning; auto-wrap is disabled and raw mode
			// turns LF into a bare line feed
			out = terminal.AppendCursorPos(out, 0, y)
		}

		row := cells[y*width : (y+1)*width]
		skip := 0
		for x := 0; x < width; x++ {
			if skip > 0 {
				skip--
				continue
			}

			c := row[x]
			if c.Fg != active {
				// Color transition: one directive, then glyphs until the
				// next transition. ColorNone maps to the reset parameter.
				out = terminal.AppendSGR(out, c.Fg.Code())
				active = c.Fg
			}

			g := c.Glyph
			if g == 0 {
				g = ' '
			}
			if g < 0x80 {
				out = append(out, byte(g))
			} else {
				out = utf8.AppendRune(out, g)
				if runewidth.RuneWidth(g) == 2 {
					// Wide glyph spills into the next column; emitting the
					// spill cell would shift the rest of the row
					skip = 1
				}
			}
		}
	}

	// Without this, unrelated output after the frame would inherit the
	// last emitted color
	if active != core.ColorNone {
		out = terminal.AppendSGR(out, core.ResetCode)
	}

	r.adapter.WriteRaw(out)
	r.out = out
}
