package status

import "sync/atomic"

// Well-known metric keys published by the frame loop every iteration.
// Hosts may register additional keys freely.
const (
	KeyAppName    = "app.name"
	KeyFrameRate  = "frame.rate"       // instantaneous frames per second
	KeyFrameTime  = "frame.elapsed_s"  // last frame delta in seconds
	KeyFrameCount = "frame.count"      // total presented frames
	KeyFrameStamp = "frame.wall_clock" // unix nanos of last frame
)

// Registry is the central metrics facade. The frame loop caches pointers
// before its first iteration and writes directly to atomics, so a host
// may read from another goroutine without racing the loop.
type Registry struct {
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// FrameRate returns the last published instantaneous frame rate
func (r *Registry) FrameRate() float64 {
	return r.Floats.Get(KeyFrameRate).Get()
}

// FrameCount returns the number of presented frames
func (r *Registry) FrameCount() int64 {
	return r.Ints.Get(KeyFrameCount).Load()
}

// AppName returns the published application name
func (r *Registry) AppName() string {
	return r.Strings.Get(KeyAppName).Load()
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}
