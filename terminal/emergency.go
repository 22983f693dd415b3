package terminal

import (
	"io"
	"os"
)

// EmergencyReset attempts to restore the terminal to a sane state.
// Call this from panic recovery when Fini cannot run normally.
func EmergencyReset(w io.Writer) {
	w.Write(csiCursorShow)
	w.Write(csiAltScreenExit)
	w.Write(csiSGR0)
	w.Write(csiAutoWrapOn)
	w.Write(csiRIS)

	if f, ok := w.(*os.File); ok {
		f.Sync()
	}
}
