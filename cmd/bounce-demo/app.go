package main

import (
	"fmt"
	"log"

	"github.com/lixenwraith/cellforge/core"
	"github.com/lixenwraith/cellforge/engine"
	"github.com/lixenwraith/cellforge/status"
	"github.com/lixenwraith/cellforge/terminal"
)

// ball sprite, 4x2 with transparent corners so the background shows
// through when blitted
const (
	spriteW = 4
	spriteH = 2
)

// bounceApp bounces a sprite around the buffer, beeping on wall hits.
// 'q' or ESC quits.
type bounceApp struct {
	adapter terminal.Adapter
	buf     *core.Buffer
	metrics *status.Registry
	keys    <-chan terminal.KeyEvent

	sprite []core.Cell
	x, y   float64
	vx, vy float64

	audio *audioPlayer
}

func newBounceApp(adapter terminal.Adapter) *bounceApp {
	gold := core.FromRGB(255, 215, 0)
	cells := make([]core.Cell, 0, spriteW*spriteH)
	for _, r := range " ▄▄ █▀▀█" {
		fg := gold
		if r == '▀' {
			fg = core.ColorYellow
		}
		cells = append(cells, core.Cell{Glyph: r, Fg: fg})
	}

	return &bounceApp{
		adapter: adapter,
		sprite:  cells,
		x:       2, y: 2,
		vx: 18, vy: 7,
	}
}

// bind wires the app to the loop-owned buffer and metrics after loop
// construction
func (a *bounceApp) bind(loop *engine.Loop) {
	a.buf = loop.Buffer()
	a.metrics = loop.Status()
}

func (a *bounceApp) OnCreate() bool {
	if a.buf == nil {
		return false
	}

	if ks, ok := a.adapter.(terminal.KeySource); ok {
		a.keys = ks.Keys()
	}

	player, err := newAudioPlayer()
	if err != nil {
		// Non-fatal, the demo can run without sound
		log.Printf("Audio initialization failed: %v", err)
	} else {
		a.audio = player
	}
	return true
}

func (a *bounceApp) OnUpdate(elapsed float64) bool {
	// Drain pending keys without blocking the frame
drain:
	for {
		select {
		case ev := <-a.keys:
			if ev.Escape || ev.Rune == 'q' || ev.Rune == 'Q' {
				return false
			}
		default:
			break drain
		}
	}

	w := a.buf.Width()
	h := a.buf.Height()

	a.x += a.vx * elapsed
	a.y += a.vy * elapsed

	bounced := false
	if a.x < 1 {
		a.x, a.vx = 1, -a.vx
		bounced = true
	}
	if a.x > float64(w-spriteW-1) {
		a.x, a.vx = float64(w-spriteW-1), -a.vx
		bounced = true
	}
	if a.y < 1 {
		a.y, a.vy = 1, -a.vy
		bounced = true
	}
	if a.y > float64(h-spriteH-1) {
		a.y, a.vy = float64(h-spriteH-1), -a.vy
		bounced = true
	}
	if bounced && a.audio != nil {
		a.audio.playBounce()
	}

	a.drawBorder(w, h)
	a.buf.Blit(a.sprite, spriteW, spriteH, int(a.x), int(a.y), ' ')
	a.buf.DrawText(fmt.Sprintf(" %.0f fps ", a.metrics.FrameRate()), 2, 0, core.ColorBrightBlack)
	a.buf.DrawText(" q to quit ", 2, h-1, core.ColorBrightBlack)

	return true
}

func (a *bounceApp) drawBorder(w, h int) {
	for x := 0; x < w; x++ {
		a.buf.SetCell(x, 0, '─', core.ColorBlue)
		a.buf.SetCell(x, h-1, '─', core.ColorBlue)
	}
	for y := 1; y < h-1; y++ {
		a.buf.SetCell(0, y, '│', core.ColorBlue)
		a.buf.SetCell(w-1, y, '│', core.ColorBlue)
	}
	a.buf.SetCell(0, 0, '┌', core.ColorBlue)
	a.buf.SetCell(w-1, 0, '┐', core.ColorBlue)
	a.buf.SetCell(0, h-1, '└', core.ColorBlue)
	a.buf.SetCell(w-1, h-1, '┘', core.ColorBlue)
}
