package terminal

// Adapter is the capability contract the frame loop and renderer consume.
// It covers terminal mode negotiation and raw escape-sequence output; the
// engine core implements none of this itself, it only calls through the
// handle it was constructed with. Substituting a Recorder gives
// deterministic tests without a terminal attached.
type Adapter interface {
	// Init negotiates ANSI escape interpretation and enters raw mode.
	// Best-effort: failure is reported to the caller, who decides whether
	// to abort startup. Environment capability issues are not transient,
	// so no retry is attempted.
	Init() error

	// Fini restores terminal state. Safe to call multiple times.
	Fini()

	// SetCursorVisible shows or hides the cursor
	SetCursorVisible(visible bool)

	// SetBufferSize requests the given terminal dimensions. Best effort.
	SetBufferSize(width, height int)

	// SetCursorPosition moves the cursor to the 0-indexed position
	SetCursorPosition(x, y int)

	// WriteRaw writes glyphs and escape directives verbatim
	WriteRaw(p []byte)

	// SetTitle updates the process-level terminal title
	SetTitle(title string)

	// Size returns current terminal dimensions
	Size() (width, height int)
}

// KeySource is the optional input capability of an adapter. The engine
// core never reads input; host applications that want keyboard control
// assert for this interface on their adapter.
type KeySource interface {
	// Keys starts the key reader on first call and returns its event
	// channel. The reader stops when the adapter is finalized.
	Keys() <-chan KeyEvent
}
