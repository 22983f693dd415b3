package render

import (
	"strings"
	"testing"

	"github.com/lixenwraith/cellforge/core"
	"github.com/lixenwraith/cellforge/terminal"
)

func mustBuffer(t *testing.T, w, h int) *core.Buffer {
	t.Helper()
	buf, err := core.NewBuffer(w, h)
	if err != nil {
		t.Fatalf("NewBuffer(%d, %d) failed: %v", w, h, err)
	}
	return buf
}

func countSGR(out string) int {
	n := 0
	for i := 0; i+1 < len(out); i++ {
		if out[i] == 0x1b && out[i+1] == '[' {
			for j := i + 2; j < len(out); j++ {
				if out[j] == 'm' {
					n++
					break
				}
				if out[j] < '0' || out[j] > '9' {
					break
				}
			}
		}
	}
	return n
}

func TestRenderColorRunCompression(t *testing.T) {
	buf := mustBuffer(t, 3, 1)
	buf.SetCell(0, 0, 'A', core.ColorRed)
	buf.SetCell(1, 0, 'B', core.ColorRed)
	buf.SetCell(2, 0, 'C', core.ColorBlue)

	rec := terminal.NewRecorder(3, 1)
	New(rec).Render(buf)

	// One directive per transition plus the trailing reset
	expected := "\x1b[31mAB\x1b[34mC\x1b[0m"
	if got := rec.Output(); got != expected {
		t.Errorf("Expected output %q, got %q", expected, got)
	}
	if rec.Writes != 1 {
		t.Errorf("Expected 1 write, got %d", rec.Writes)
	}
}

func TestRenderUncoloredRowHasNoDirectives(t *testing.T) {
	buf := mustBuffer(t, 5, 1)
	buf.DrawText("plain", 0, 0, core.ColorNone)

	rec := terminal.NewRecorder(5, 1)
	New(rec).Render(buf)

	if got := rec.Output(); got != "plain" {
		t.Errorf("Expected %q, got %q", "plain", got)
	}
	if n := countSGR(rec.Output()); n != 0 {
		t.Errorf("Expected 0 SGR directives, got %d", n)
	}
}

func TestRenderColorRunSpansRows(t *testing.T) {
	buf := mustBuffer(t, 2, 2)
	for _, p := range [][2]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}} {
		buf.SetCell(p[0], p[1], '#', core.ColorGreen)
	}

	rec := terminal.NewRecorder(2, 2)
	New(rec).Render(buf)

	out := rec.Output()
	if n := strings.Count(out, "\x1b[32m"); n != 1 {
		t.Errorf("Expected 1 green directive across rows, got %d", n)
	}
	if n := countSGR(out); n != 2 {
		t.Errorf("Expected 2 SGR directives total, got %d", n)
	}
	if !strings.HasSuffix(out, "\x1b[0m") {
		t.Errorf("Expected trailing reset, got %q", out)
	}
}

func TestRenderHomesCursorBeforeEmission(t *testing.T) {
	buf := mustBuffer(t, 4, 2)

	rec := terminal.NewRecorder(4, 2)
	New(rec).Render(buf)

	if len(rec.CursorMoves) == 0 || rec.CursorMoves[0] != [2]int{0, 0} {
		t.Errorf("Expected first cursor move to (0,0), got %v", rec.CursorMoves)
	}
}

func TestRenderRowPositioning(t *testing.T) {
	buf := mustBuffer(t, 2, 2)
	buf.DrawText("ab", 0, 0, core.ColorNone)
	buf.DrawText("cd", 0, 1, core.ColorNone)

	rec := terminal.NewRecorder(2, 2)
	New(rec).Render(buf)

	expected := "ab\x1b[2;1Hcd"
	if got := rec.Output(); got != expected {
		t.Errorf("Expected %q, got %q", expected, got)
	}
}

func TestRenderZeroGlyphEmitsSpace(t *testing.T) {
	buf := mustBuffer(t, 3, 1)
	buf.SetCell(1, 0, 'x', core.ColorNone)
	// Cells (0,0) and (2,0) keep the default space; force a zero glyph
	buf.SetCell(0, 0, 0, core.ColorNone)

	rec := terminal.NewRecorder(3, 1)
	New(rec).Render(buf)

	if got := rec.Output(); got != " x " {
		t.Errorf("Expected %q, got %q", " x ", got)
	}
}

func TestRenderWideRuneSkipsSpillColumn(t *testing.T) {
	buf := mustBuffer(t, 4, 1)
	buf.DrawTextWide("日", 0, 0, core.ColorNone)

	rec := terminal.NewRecorder(4, 1)
	New(rec).Render(buf)

	// The spill column after the wide glyph must not be emitted
	if got := rec.Output(); got != "日  " {
		t.Errorf("Expected %q, got %q", "日  ", got)
	}
}

func TestRenderSecondFrameStartsFromReset(t *testing.T) {
	buf := mustBuffer(t, 1, 1)
	buf.SetCell(0, 0, 'r', core.ColorRed)

	rec := terminal.NewRecorder(1, 1)
	r := New(rec)
	r.Render(buf)
	r.Render(buf)

	// Each frame re-emits the color; active state does not leak across
	// render passes
	expected := "\x1b[31mr\x1b[0m\x1b[31mr\x1b[0m"
	if got := rec.Output(); got != expected {
		t.Errorf("Expected %q, got %q", expected, got)
	}
	if rec.Writes != 2 {
		t.Errorf("Expected 2 writes, got %d", rec.Writes)
	}
}
