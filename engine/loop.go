package engine

import (
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/cellforge/core"
	"github.com/lixenwraith/cellforge/render"
	"github.com/lixenwraith/cellforge/status"
	"github.com/lixenwraith/cellforge/terminal"
)

// State is the loop lifecycle state. Stopped is terminal: a loop runs at
// most once.
type State uint8

const (
	StateNotStarted State = iota
	StateRunning
	StateStopped
)

// TicksPerSecond converts elapsed ticks to seconds exactly. Elapsed time
// is measured in time.Duration ticks (nanoseconds).
const TicksPerSecond = int64(time.Second)

// ErrAlreadyStarted reports a second Run on the same loop
var ErrAlreadyStarted = errors.New("loop already started")

// Config configures a frame loop
type Config struct {
	// Name is published to the status registry and the terminal title
	Name string

	// Buffer dimensions, fixed for the loop's lifetime
	Width  int
	Height int

	// MinFrameInterval, when positive, sleeps out the remainder of each
	// frame. The zero value preserves the default behavior: the loop
	// runs as fast as the update callback permits.
	MinFrameInterval time.Duration

	// Time overrides the loop clock; nil selects the monotonic system
	// clock. Tests inject a mock here.
	Time TimeProvider
}

// Loop drives an App: one-time setup, then update/present iterations
// with elapsed-time measurement. Execution is single-threaded and
// synchronous; Run blocks until the loop reaches StateStopped. The loop
// owns the frame buffer: update callbacks mutate it, present renders
// and clears it.
type Loop struct {
	cfg      Config
	app      App
	adapter  terminal.Adapter
	renderer *render.Renderer
	buffer   *core.Buffer
	clock    TimeProvider
	registry *status.Registry
	state    State

	// Cached metric pointers; written every frame without map access
	mName  *status.AtomicString
	mRate  *status.AtomicFloat
	mDelta *status.AtomicFloat
	mCount *atomic.Int64
	mStamp *atomic.Int64
}

// NewLoop creates a loop for the injected app and terminal adapter.
// Dimension validation happens here: a zero or negative Width/Height is
// a configuration bug and fails with core.ErrInvalidDimension.
func NewLoop(cfg Config, app App, adapter terminal.Adapter) (*Loop, error) {
	if app == nil {
		return nil, errors.New("app is required")
	}
	if adapter == nil {
		return nil, errors.New("terminal adapter is required")
	}

	buffer, err := core.NewBuffer(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}

	clock := cfg.Time
	if clock == nil {
		clock = NewMonotonicTimeProvider()
	}

	registry := status.NewRegistry()
	l := &Loop{
		cfg:      cfg,
		app:      app,
		adapter:  adapter,
		renderer: render.New(adapter),
		buffer:   buffer,
		clock:    clock,
		registry: registry,

		mName:  registry.Strings.Get(status.KeyAppName),
		mRate:  registry.Floats.Get(status.KeyFrameRate),
		mDelta: registry.Floats.Get(status.KeyFrameTime),
		mCount: registry.Ints.Get(status.KeyFrameCount),
		mStamp: registry.Ints.Get(status.KeyFrameStamp),
	}
	l.mName.Store(cfg.Name)
	return l, nil
}

// Buffer returns the loop's frame buffer. Only the update callback may
// mutate it; the loop single-threads all access.
func (l *Loop) Buffer() *core.Buffer {
	return l.buffer
}

// Status returns the loop's metrics registry. Safe to read from other
// goroutines.
func (l *Loop) Status() *status.Registry {
	return l.registry
}

// State returns the current lifecycle state
func (l *Loop) State() State {
	return l.state
}

// Run executes the loop until the update callback stops it. Blocking:
// control returns only in StateStopped. Setup failure (terminal
// capability or OnCreate returning false) stops the loop before any
// frame is presented; a capability failure is additionally reported as
// an error. Callback-driven stops are control flow, not errors.
func (l *Loop) Run() error {
	if l.state != StateNotStarted {
		return ErrAlreadyStarted
	}

	if err := l.adapter.Init(); err != nil {
		l.state = StateStopped
		return fmt.Errorf("enable terminal output: %w", err)
	}
	defer l.adapter.Fini()

	l.adapter.SetBufferSize(l.cfg.Width, l.cfg.Height)
	l.adapter.SetCursorVisible(false)

	if !l.app.OnCreate() {
		l.state = StateStopped
		return nil
	}

	l.state = StateRunning
	last := l.clock.Now()

	for l.state == StateRunning {
		now := l.clock.Now()
		elapsed := now.Sub(last)
		last = now

		if !l.app.OnUpdate(elapsed.Seconds()) {
			// Update-then-present ordering: the present below still runs
			// for this final iteration
			l.state = StateStopped
		}

		l.publish(elapsed, now)

		l.renderer.Render(l.buffer)
		l.buffer.Clear()

		if l.cfg.MinFrameInterval > 0 {
			if spare := l.cfg.MinFrameInterval - l.clock.Now().Sub(now); spare > 0 {
				time.Sleep(spare)
			}
		}
	}

	return nil
}

// publish updates status metrics and the terminal title for one frame
func (l *Loop) publish(elapsed time.Duration, now time.Time) {
	rate := 0.0
	if elapsed > 0 {
		rate = float64(TicksPerSecond) / float64(elapsed)
	}

	l.mRate.Set(rate)
	l.mDelta.Set(elapsed.Seconds())
	l.mCount.Add(1)
	l.mStamp.Store(now.UnixNano())

	l.adapter.SetTitle(fmt.Sprintf("%s - %.2f fps - %s",
		l.cfg.Name, rate, now.Format("15:04:05")))
}
