package terminal

import (
	"bytes"
)

// Recorder is an in-memory Adapter for tests and headless hosts. It
// records every capability call so rendering and loop behavior can be
// asserted without a terminal attached.
type Recorder struct {
	width  int
	height int

	// InitErr, when set, is returned by Init to simulate an environment
	// where ANSI output cannot be enabled
	InitErr error

	Raw         bytes.Buffer // everything passed to WriteRaw
	Writes      int          // WriteRaw call count; one per present
	Titles      []string
	CursorMoves [][2]int
	Visibility  []bool
	SizeCalls   [][2]int // SetBufferSize requests
	Initialized bool
	Finalized   bool
}

// NewRecorder creates a recording adapter reporting the given dimensions
func NewRecorder(width, height int) *Recorder {
	return &Recorder{width: width, height: height}
}

func (r *Recorder) Init() error {
	if r.InitErr != nil {
		return r.InitErr
	}
	r.Initialized = true
	return nil
}

func (r *Recorder) Fini() {
	r.Finalized = true
}

func (r *Recorder) SetCursorVisible(visible bool) {
	r.Visibility = append(r.Visibility, visible)
}

func (r *Recorder) SetBufferSize(width, height int) {
	r.SizeCalls = append(r.SizeCalls, [2]int{width, height})
}

func (r *Recorder) SetCursorPosition(x, y int) {
	r.CursorMoves = append(r.CursorMoves, [2]int{x, y})
}

func (r *Recorder) WriteRaw(p []byte) {
	r.Raw.Write(p)
	r.Writes++
}

func (r *Recorder) SetTitle(title string) {
	r.Titles = append(r.Titles, title)
}

func (r *Recorder) Size() (int, int) {
	return r.width, r.height
}

// Output returns everything written so far as a string
func (r *Recorder) Output() string {
	return r.Raw.String()
}
