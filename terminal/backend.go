package terminal

// Backend abstracts platform-specific terminal operations so the adapter
// logic stays portable across build targets.
type Backend interface {
	// Lifecycle
	Init() error
	Fini()

	// Capabilities
	Size() (width, height int)

	// I/O
	// Write writes raw bytes to the terminal output.
	Write(p []byte) error

	// Read blocks until input is available, the stop channel is closed,
	// or an error occurs.
	Read(stopCh <-chan struct{}) ([]byte, error)
}
