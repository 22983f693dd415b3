package terminal

import (
	"sync"
	"unicode/utf8"
)

// KeyEvent is a decoded keyboard input event. Escape reports a lone ESC
// press; CSI-introduced sequences (arrows, function keys) are consumed
// and dropped, the engine has no use for them.
type KeyEvent struct {
	Rune   rune
	Escape bool
}

// keyReader handles raw stdin parsing
type keyReader struct {
	backend Backend
	eventCh chan KeyEvent
	stopCh  chan struct{}
	doneCh  chan struct{}

	mu      sync.Mutex
	running bool

	// Persistent buffer for stream assembly; partial UTF-8 at a read
	// boundary must survive to the next read
	buf []byte
}

func newKeyReader(backend Backend) *keyReader {
	return &keyReader{
		backend: backend,
		eventCh: make(chan KeyEvent, 64),
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
		buf:     make([]byte, 0, 256),
	}
}

// start begins reading input in a goroutine
func (r *keyReader) start() {
	r.mu.Lock()
	if r.running {
		r.mu.Unlock()
		return
	}
	r.running = true
	r.mu.Unlock()

	go r.readLoop()
}

// stop signals the reader to stop and waits for it to drain
func (r *keyReader) stop() {
	r.mu.Lock()
	if !r.running {
		r.mu.Unlock()
		return
	}
	r.running = false
	r.mu.Unlock()

	close(r.stopCh)
	<-r.doneCh
}

// events returns the event channel
func (r *keyReader) events() <-chan KeyEvent {
	return r.eventCh
}

func (r *keyReader) readLoop() {
	defer close(r.doneCh)

	for {
		data, err := r.backend.Read(r.stopCh)
		if err != nil || data == nil {
			return
		}

		r.buf = append(r.buf, data...)
		r.decode()
	}
}

// decode drains complete events from the assembly buffer
func (r *keyReader) decode() {
	for len(r.buf) > 0 {
		b := r.buf[0]

		if b == 0x1b {
			if len(r.buf) == 1 {
				// Lone ESC in this read; treat as a key press rather than
				// waiting out an escape timeout
				r.post(KeyEvent{Escape: true})
				r.buf = r.buf[:0]
				return
			}
			n := escapeSequenceLen(r.buf)
			if n == 0 {
				// Incomplete sequence, wait for more bytes
				return
			}
			r.buf = r.buf[n:]
			continue
		}

		ru, size := utf8.DecodeRune(r.buf)
		if ru == utf8.RuneError && size == 1 {
			if !utf8.FullRune(r.buf) {
				// Partial rune at buffer end
				return
			}
			// Invalid byte, drop it
			r.buf = r.buf[1:]
			continue
		}

		r.post(KeyEvent{Rune: ru})
		r.buf = r.buf[size:]
	}
}

// escapeSequenceLen returns the length of the escape sequence at the
// start of buf, or 0 if the sequence is incomplete
func escapeSequenceLen(buf []byte) int {
	if len(buf) < 2 {
		return 0
	}

	switch buf[1] {
	case '[': // CSI: parameters then a final byte in 0x40-0x7e
		for i := 2; i < len(buf); i++ {
			if buf[i] >= 0x40 && buf[i] <= 0x7e {
				return i + 1
			}
		}
		return 0
	case 'O': // SS3: single final byte (F1-F4, keypad)
		if len(buf) >= 3 {
			return 3
		}
		return 0
	default:
		// Alt-modified key; consume ESC plus the following byte
		return 2
	}
}

func (r *keyReader) post(ev KeyEvent) {
	select {
	case r.eventCh <- ev:
	default:
		// Channel full, drop
	}
}
