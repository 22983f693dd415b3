package terminal

import (
	"sync"
)

// ansiAdapter implements Adapter by writing escape sequences through a
// platform Backend
type ansiAdapter struct {
	backend Backend

	mu          sync.Mutex
	initialized bool
	finalized   bool
	scratch     []byte

	keys     *keyReader
	keysOnce sync.Once
}

// New creates the platform ANSI adapter over stdin/stdout
func New() Adapter {
	return &ansiAdapter{backend: newBackend()}
}

// NewWithBackend creates an adapter over a caller-supplied backend
func NewWithBackend(b Backend) Adapter {
	return &ansiAdapter{backend: b}
}

// Init enters raw mode, alternate screen, and disables auto-wrap.
// Failure means the environment cannot interpret ANSI output; callers
// must not start presenting frames.
func (a *ansiAdapter) Init() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.initialized {
		return nil
	}

	if err := a.backend.Init(); err != nil {
		return err
	}

	a.backend.Write(csiAltScreenEnter)
	a.backend.Write(csiAutoWrapOff)
	a.backend.Write(csiSGR0)
	a.backend.Write(csiClear)

	a.initialized = true
	return nil
}

// Fini restores terminal state. Safe to call multiple times.
func (a *ansiAdapter) Fini() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.initialized || a.finalized {
		return
	}

	if a.keys != nil {
		a.keys.stop()
	}

	a.backend.Write(csiCursorShow)
	a.backend.Write(csiAltScreenExit)
	// Re-enable auto-wrap after exiting the alt screen so the main buffer
	// keeps wrap enabled
	a.backend.Write(csiAutoWrapOn)
	a.backend.Write(csiSGR0)
	a.backend.Fini()

	a.finalized = true
}

// SetCursorVisible shows or hides the cursor
func (a *ansiAdapter) SetCursorVisible(visible bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.initialized || a.finalized {
		return
	}

	if visible {
		a.backend.Write(csiCursorShow)
	} else {
		a.backend.Write(csiCursorHide)
	}
}

// SetBufferSize requests terminal dimensions via the xterm window-resize
// directive. Best effort; multiplexers ignore it.
func (a *ansiAdapter) SetBufferSize(width, height int) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.initialized || a.finalized || width <= 0 || height <= 0 {
		return
	}

	a.scratch = appendWindowSize(a.scratch[:0], width, height)
	a.backend.Write(a.scratch)
}

// SetCursorPosition moves the cursor to the 0-indexed position
func (a *ansiAdapter) SetCursorPosition(x, y int) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.initialized || a.finalized {
		return
	}

	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}

	a.scratch = AppendCursorPos(a.scratch[:0], x, y)
	a.backend.Write(a.scratch)
}

// WriteRaw writes glyphs and escape directives verbatim
func (a *ansiAdapter) WriteRaw(p []byte) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.initialized || a.finalized {
		return
	}

	a.backend.Write(p)
}

// SetTitle updates the terminal title via OSC 0
func (a *ansiAdapter) SetTitle(title string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.initialized || a.finalized {
		return
	}

	a.scratch = append(a.scratch[:0], oscTitle...)
	a.scratch = append(a.scratch, title...)
	a.scratch = append(a.scratch, oscTitleEnd...)
	a.backend.Write(a.scratch)
}

// Size returns current terminal dimensions
func (a *ansiAdapter) Size() (int, int) {
	return a.backend.Size()
}

// Keys starts the key reader on first call and returns its channel
func (a *ansiAdapter) Keys() <-chan KeyEvent {
	a.keysOnce.Do(func() {
		a.mu.Lock()
		a.keys = newKeyReader(a.backend)
		a.mu.Unlock()
		a.keys.start()
	})
	return a.keys.events()
}
