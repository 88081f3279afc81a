package component

// Camera is the viewport follow state. The camera entity's Transform holds
// the world-space top-left corner of the viewport.
type Camera struct {
	ViewW   float64
	ViewH   float64
	TargetX float64
	TargetY float64
	// Pinned overrides the follow target while a finale is showing.
	Pinned bool
}

var CameraComponent = NewComponent[Camera]()
