package system

import (
	"github.com/milk9111/skybird/ecs"
	"github.com/milk9111/skybird/ecs/component"
)

// WorldObjectSystem animates, steers and moves every non-player entity.
type WorldObjectSystem struct {
	tuning *Tuning
}

func NewWorldObjectSystem(tuning *Tuning) *WorldObjectSystem {
	return &WorldObjectSystem{tuning: tuning}
}

func (s *WorldObjectSystem) Update(w *ecs.World, dt float64) {
	if s == nil || s.tuning == nil {
		return
	}
	t := s.tuning

	ecs.ForEach3(w,
		component.EntityKindComponent.Kind(),
		component.TransformComponent.Kind(),
		component.VelocityComponent.Kind(),
		func(e ecs.Entity, kind *component.EntityKind, pos *component.Transform, vel *component.Velocity) {
			if *kind == component.KindPlayer {
				return
			}

			if anim, ok := ecs.Get(w, e, component.AnimationComponent.Kind()); ok {
				if anim.Mode == component.AnimWalk && anim.FrameCount > 0 {
					anim.Frame += t.AnimRate * dt
					if anim.Frame >= float64(anim.FrameCount) {
						anim.Frame = 0
					}
				}
			}

			if patrol, ok := ecs.Get(w, e, component.PatrolComponent.Kind()); ok {
				if facing, ok := ecs.Get(w, e, component.FacingComponent.Kind()); ok {
					steerPatrol(patrol, facing, pos, vel, t.PatrolAccel*dt)
				}
			}

			vel.X *= 1 - t.ObjectFriction*dt
			pos.X += vel.X
			pos.Y += vel.Y
		})
}

// steerPatrol pushes against the current facing and flips it once the
// entity drifts more than half the patrol width from its anchor.
func steerPatrol(p *component.Patrol, facing *component.Facing, pos *component.Transform, vel *component.Velocity, accel float64) {
	vel.X -= accel * facing.Sign()
	drift := pos.X - p.AnchorX
	if drift > p.Width/2 {
		*facing = component.FacingRight
	}
	if drift < -p.Width/2 {
		*facing = component.FacingLeft
	}
}
