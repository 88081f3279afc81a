package system

import "github.com/milk9111/skybird/prefabs"

// Tuning holds every constant the frame pipeline reads. Systems share one
// *Tuning so a prefab reload can swap values in place.
type Tuning struct {
	ViewW float64
	ViewH float64

	MaxDelta float64

	Gravity        float64
	MoveAccel      float64
	JumpVY         float64
	JumpVX         float64
	GroundFriction float64
	AirFriction    float64
	ObjectFriction float64
	FlyThresholdVX float64

	// Glide correction: when falling faster than GlideTriggerVY while moving
	// faster than GlideTriggerVX, vertical velocity is reset to GlideVY.
	GlideTriggerVY float64
	GlideTriggerVX float64
	GlideVY        float64

	AnimRate    float64
	PatrolAccel float64

	CameraPursuit float64
	CameraMinX    float64
	CameraMaxX    float64
	CameraMinY    float64
	CameraMaxY    float64

	FinaleWarmup float64
	FinaleRate   float64
	FinaleEnd    float64
	GoalViewX    float64
	GoalViewY    float64
}

func DefaultTuning() Tuning {
	return Tuning{
		ViewW:    800,
		ViewH:    600,
		MaxDelta: 1.0 / 30,

		Gravity:        9.8,
		MoveAccel:      20,
		JumpVY:         -5,
		JumpVX:         5,
		GroundFriction: 5,
		AirFriction:    2.5,
		ObjectFriction: 2.5,
		FlyThresholdVX: 1,

		GlideTriggerVY: 1,
		GlideTriggerVX: 3,
		GlideVY:        -3,

		AnimRate:    12,
		PatrolAccel: 10,

		CameraPursuit: 5,
		CameraMinX:    0,
		CameraMaxX:    5000,
		CameraMinY:    -1000,
		CameraMaxY:    0,

		FinaleWarmup: 3,
		FinaleRate:   5,
		FinaleEnd:    9,
		GoalViewX:    5500,
		GoalViewY:    300,
	}
}

// ClampDelta bounds a frame delta to [0, max].
func ClampDelta(dt, max float64) float64 {
	if dt < 0 {
		return 0
	}
	if max > 0 && dt > max {
		return max
	}
	return dt
}

// Apply overlays every value spec sets onto t. Omitted tuning keys keep
// their current value; an explicit 0 is applied.
func (t *Tuning) Apply(spec *prefabs.WorldSpec) {
	if t == nil || spec == nil {
		return
	}
	set := func(dst *float64, v *float64) {
		if v != nil {
			*dst = *v
		}
	}

	// Validate rejects a non-positive viewport, so zero means unset here.
	if spec.Viewport.Width > 0 {
		t.ViewW = spec.Viewport.Width
	}
	if spec.Viewport.Height > 0 {
		t.ViewH = spec.Viewport.Height
	}

	p := spec.Physics
	set(&t.MaxDelta, p.MaxDelta)
	set(&t.Gravity, p.Gravity)
	set(&t.MoveAccel, p.MoveAccel)
	set(&t.JumpVY, p.JumpVY)
	set(&t.JumpVX, p.JumpVX)
	set(&t.GroundFriction, p.GroundFriction)
	set(&t.AirFriction, p.AirFriction)
	set(&t.ObjectFriction, p.ObjectFriction)
	set(&t.FlyThresholdVX, p.FlyThresholdVX)
	set(&t.GlideTriggerVY, p.GlideTriggerVY)
	set(&t.GlideTriggerVX, p.GlideTriggerVX)
	set(&t.GlideVY, p.GlideVY)
	set(&t.AnimRate, p.AnimRate)
	set(&t.PatrolAccel, p.PatrolAccel)

	c := spec.Camera
	set(&t.CameraPursuit, c.Pursuit)
	set(&t.CameraMinX, c.MinX)
	set(&t.CameraMaxX, c.MaxX)
	set(&t.CameraMinY, c.MinY)
	set(&t.CameraMaxY, c.MaxY)

	f := spec.Finale
	set(&t.FinaleWarmup, f.Warmup)
	set(&t.FinaleRate, f.Rate)
	set(&t.FinaleEnd, f.End)
	if f.View != nil {
		t.GoalViewX = f.View.X
		t.GoalViewY = f.View.Y
	}
}
