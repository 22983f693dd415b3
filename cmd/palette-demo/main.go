// Command palette-demo draws the drawable palette, wide-rune text, and
// right-edge clipping, then stops itself after a few seconds. It is the
// smallest complete host: no input, no audio, termination purely through
// the update callback's return value.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/lixenwraith/cellforge/core"
	"github.com/lixenwraith/cellforge/engine"
	"github.com/lixenwraith/cellforge/terminal"
)

var (
	secondsFlag  = flag.Float64("seconds", 6, "Run duration before self-stop")
	throttleFlag = flag.Duration("throttle", 33*time.Millisecond, "Minimum frame interval, 0 for flat out")
)

type paletteApp struct {
	buf     *core.Buffer
	runtime float64
	limit   float64
}

func (p *paletteApp) OnCreate() bool {
	return p.buf != nil
}

func (p *paletteApp) OnUpdate(elapsed float64) bool {
	p.runtime += elapsed

	w := p.buf.Width()

	p.buf.DrawText("base and bright ANSI palette", 1, 1, core.ColorNone)
	for c := core.ColorBlack; c <= core.ColorBrightWhite; c++ {
		row := 3 + int(c-core.ColorBlack)
		p.buf.DrawText(fmt.Sprintf("color %2d ", c.Code()), 1, row, core.ColorNone)
		for x := 11; x < 21 && x < w; x++ {
			p.buf.SetCell(x, row, '█', c)
		}
	}

	p.buf.DrawTextWide("wide runes: 日本語 🎨", 1, 20, core.ColorBrightCyan)
	// Deliberately longer than the row; the tail clips at the right edge
	p.buf.DrawText("this line clips silently at the right edge of the buffer",
		w-20, 21, core.ColorBrightBlack)
	p.buf.DrawText(fmt.Sprintf("stopping in %.1fs", p.limit-p.runtime), 1, 23, core.ColorYellow)

	return p.runtime < p.limit
}

func main() {
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\r\n\x1b[31mPALETTE DEMO CRASHED: %v\x1b[0m\r\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	adapter := terminal.New()
	app := &paletteApp{limit: *secondsFlag}

	loop, err := engine.NewLoop(engine.Config{
		Name:             "palette",
		Width:            80,
		Height:           25,
		MinFrameInterval: *throttleFlag,
	}, app, adapter)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create loop: %v\n", err)
		os.Exit(1)
	}
	app.buf = loop.Buffer()

	if err := loop.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to run: %v\n", err)
		os.Exit(1)
	}
}
