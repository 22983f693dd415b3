package terminal

// Pre-allocated ANSI sequence fragments (avoid allocations during render)
var (
	csi     = []byte("\x1b[")
	csiHome = []byte("\x1b[H")
	csiSGR0 = []byte("\x1b[0m")
	csiRIS  = []byte("\x1bc") // Reset to Initial State (emergency)

	// Cursor control
	csiCursorHide = []byte("\x1b[?25l")
	csiCursorShow = []byte("\x1b[?25h")

	// Screen modes
	csiAltScreenEnter = []byte("\x1b[?1049h")
	csiAltScreenExit  = []byte("\x1b[?1049l")
	// DECAWM: Auto-Wrap Mode
	// ?7l disables wrapping (cursor sticks at right edge), preventing scroll
	// when writing to the bottom-right corner
	csiAutoWrapOn  = []byte("\x1b[?7h")
	csiAutoWrapOff = []byte("\x1b[?7l")

	csiClear = []byte("\x1b[2J\x1b[H")

	// OSC 0: set window and icon title, terminated by BEL
	oscTitle    = []byte("\x1b]0;")
	oscTitleEnd = []byte("\x07")
)

// appendInt appends n in decimal without allocation.
// Optimized for terminal values (0-255 common, 0-999 typical max).
func appendInt(dst []byte, n int) []byte {
	if n < 0 {
		n = 0
	}
	if n < 10 {
		return append(dst, byte(n)+'0')
	}
	if n < 100 {
		return append(dst, byte(n/10)+'0', byte(n%10)+'0')
	}
	if n < 1000 {
		return append(dst, byte(n/100)+'0', byte(n/10%10)+'0', byte(n%10)+'0')
	}
	// Fallback for >999 (rare)
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte(n%10) + '0'
		n /= 10
	}
	return append(dst, buf[i:]...)
}

// AppendSGR appends a single-parameter SGR directive: ESC [ code m.
// The renderer uses this for color-change and reset directives.
func AppendSGR(dst []byte, code int) []byte {
	dst = append(dst, csi...)
	dst = appendInt(dst, code)
	return append(dst, 'm')
}

// AppendCursorPos appends a CUP directive for the 0-indexed position
// (x,y): ESC [ y+1 ; x+1 H
func AppendCursorPos(dst []byte, x, y int) []byte {
	if x == 0 && y == 0 {
		return append(dst, csiHome...)
	}
	dst = append(dst, csi...)
	dst = appendInt(dst, y+1)
	dst = append(dst, ';')
	dst = appendInt(dst, x+1)
	return append(dst, 'H')
}

// appendWindowSize appends the xterm window-resize report directive:
// ESC [ 8 ; rows ; cols t. Best effort, most emulators honor it, multiplexers
// usually do not.
func appendWindowSize(dst []byte, width, height int) []byte {
	dst = append(dst, csi...)
	dst = append(dst, '8', ';')
	dst = appendInt(dst, height)
	dst = append(dst, ';')
	dst = appendInt(dst, width)
	return append(dst, 't')
}
