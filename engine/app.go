package engine

// App is the application contract the frame loop drives. The loop holds
// any value implementing these two callbacks; there is no base type to
// embed.
type App interface {
	// OnCreate is called exactly once before any frame. Returning false
	// aborts the run; no frames are presented.
	OnCreate() bool

	// OnUpdate is called once per frame with the seconds elapsed since
	// the previous frame. Returning false stops the loop after the
	// current frame's present.
	OnUpdate(elapsed float64) bool
}
