package system

import (
	"github.com/milk9111/skybird/ecs"
	"github.com/milk9111/skybird/ecs/component"
)

// FinaleSystem plays the goal's end sequence once it has been triggered:
// a warm-up ramp to 1, a faster run to FinaleEnd, then the player dances.
// It also pins the camera on the goal for as long as the finale is active.
type FinaleSystem struct {
	tuning *Tuning
}

func NewFinaleSystem(tuning *Tuning) *FinaleSystem {
	return &FinaleSystem{tuning: tuning}
}

func (s *FinaleSystem) Update(w *ecs.World, dt float64) {
	if s == nil || s.tuning == nil {
		return
	}
	t := s.tuning

	ecs.ForEach(w, component.FinaleComponent.Kind(), func(goal ecs.Entity, f *component.Finale) {
		if !f.Active {
			return
		}

		pinCamera(w, t)

		if f.Progress < 1 {
			f.Progress += dt / t.FinaleWarmup
		} else {
			wasDone := f.Progress >= t.FinaleEnd
			f.Progress += t.FinaleRate * dt
			if f.Progress >= t.FinaleEnd {
				f.Progress = t.FinaleEnd
				setPlayerMode(w, component.AnimDance)
				if !wasDone {
					w.Events().Push(ecs.Event{Kind: ecs.EventFinaleFinished, Entity: goal})
				}
			}
		}

		// The goal's sprite rows are the frames of the finale scene.
		if anim, ok := ecs.Get(w, goal, component.AnimationComponent.Kind()); ok {
			anim.Frame = f.Progress
		}
	})
}

func pinCamera(w *ecs.World, t *Tuning) {
	ecs.ForEach(w, component.CameraComponent.Kind(), func(_ ecs.Entity, cam *component.Camera) {
		cam.Pinned = true
		cam.TargetX = t.GoalViewX - cam.ViewW/2
		cam.TargetY = t.GoalViewY - cam.ViewH/2
	})
}

func setPlayerMode(w *ecs.World, mode component.AnimationMode) {
	ecs.ForEach2(w, component.PlayerTagComponent.Kind(), component.AnimationComponent.Kind(), func(_ ecs.Entity, _ *component.PlayerTag, anim *component.Animation) {
		anim.Mode = mode
	})
}

// FinaleShowing reports whether the end-of-game overlay should be drawn:
// the finale is active and the player has started dancing.
func FinaleShowing(w *ecs.World) bool {
	active := false
	ecs.ForEach(w, component.FinaleComponent.Kind(), func(_ ecs.Entity, f *component.Finale) {
		if f.Active {
			active = true
		}
	})
	if !active {
		return false
	}
	dancing := false
	ecs.ForEach2(w, component.PlayerTagComponent.Kind(), component.AnimationComponent.Kind(), func(_ ecs.Entity, _ *component.PlayerTag, anim *component.Animation) {
		dancing = anim.Mode == component.AnimDance
	})
	return dancing
}
