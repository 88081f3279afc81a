package system

import (
	"math"

	"github.com/milk9111/skybird/ecs"
	"github.com/milk9111/skybird/ecs/component"
)

// PlayerControllerSystem turns held input into velocity and picks the
// player's animation mode for the frame.
type PlayerControllerSystem struct {
	tuning *Tuning
}

func NewPlayerControllerSystem(tuning *Tuning) *PlayerControllerSystem {
	return &PlayerControllerSystem{tuning: tuning}
}

func (s *PlayerControllerSystem) Update(w *ecs.World, dt float64) {
	if s == nil || s.tuning == nil {
		return
	}
	t := s.tuning
	locked := finaleComplete(w, t)

	ecs.ForEach4(w,
		component.InputComponent.Kind(),
		component.VelocityComponent.Kind(),
		component.PlayerStateComponent.Kind(),
		component.AnimationComponent.Kind(),
		func(e ecs.Entity, in *component.Input, v *component.Velocity, st *component.PlayerState, anim *component.Animation) {
			facing, ok := ecs.Get(w, e, component.FacingComponent.Kind())
			if !ok {
				return
			}

			anim.Mode = component.AnimIdle

			if !locked {
				if in.Left {
					*facing = component.FacingLeft
					anim.Mode = component.AnimWalk
					v.X -= t.MoveAccel * dt
				}
				if in.Right {
					*facing = component.FacingRight
					anim.Mode = component.AnimWalk
					v.X += t.MoveAccel * dt
				}
				// A jump replaces horizontal speed rather than adding to it.
				if in.Jump && st.Grounded {
					v.Y = t.JumpVY
					v.X = t.JumpVX * facing.Sign()
				}
			}

			if !st.Grounded {
				if math.Abs(v.X) > t.FlyThresholdVX {
					anim.Mode = component.AnimFly
				} else {
					anim.Mode = component.AnimIdle
				}
			}
		})
}

// finaleComplete reports whether any goal has played its finale to the end,
// which locks out player control.
func finaleComplete(w *ecs.World, t *Tuning) bool {
	done := false
	ecs.ForEach(w, component.FinaleComponent.Kind(), func(_ ecs.Entity, f *component.Finale) {
		if f.Progress >= t.FinaleEnd {
			done = true
		}
	})
	return done
}
