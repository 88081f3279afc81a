package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/skybird/ecs"
	"github.com/milk9111/skybird/ecs/component"
)

// PhysicsSystem applies the glide correction, gravity and friction to the
// player and resolves it against every collision box in the world.
type PhysicsSystem struct {
	tuning *Tuning
}

func NewPhysicsSystem(tuning *Tuning) *PhysicsSystem {
	return &PhysicsSystem{tuning: tuning}
}

func (s *PhysicsSystem) Update(w *ecs.World, dt float64) {
	if s == nil || s.tuning == nil {
		return
	}
	t := s.tuning

	ecs.ForEach4(w,
		component.PlayerTagComponent.Kind(),
		component.TransformComponent.Kind(),
		component.VelocityComponent.Kind(),
		component.PlayerStateComponent.Kind(),
		func(e ecs.Entity, _ *component.PlayerTag, pos *component.Transform, vel *component.Velocity, st *component.PlayerState) {
			if vel.Y > t.GlideTriggerVY && math.Abs(vel.X) > t.GlideTriggerVX {
				vel.Y = t.GlideVY
			}

			vel.Y += t.Gravity * dt

			k := t.AirFriction
			if st.Grounded {
				k = t.GroundFriction
			}
			vel.X *= math.Max(0, 1-k*dt)
			st.Grounded = false

			c := &contact{world: w, player: e, pos: pos, vel: vel, state: st}
			if spawn, ok := ecs.Get(w, e, component.SpawnComponent.Kind()); ok {
				c.spawn = *spawn
			}
			c.respawn = func(reason string) {
				respawnPlayer(w, e, pos, vel, c.spawn, reason)
			}

			halfH := 0.0
			if size, ok := ecs.Get(w, e, component.SizeComponent.Kind()); ok {
				halfH = size.H / 2
			}

			s.resolveVertical(w, c, halfH)
			s.resolveHorizontal(w, c, halfH)
		})
}

// resolveVertical probes the player's feet one frame ahead on the y axis.
// Any touch lands the player, whatever direction it was moving.
func (s *PhysicsSystem) resolveVertical(w *ecs.World, c *contact, halfH float64) {
	ecs.ForEach3(w,
		component.TransformComponent.Kind(),
		component.ColliderComponent.Kind(),
		component.EntityKindComponent.Kind(),
		func(other ecs.Entity, at *component.Transform, col *component.Collider, kind *component.EntityKind) {
			if other == c.player {
				return
			}
			policy := PolicyFor(*kind)
			for _, b := range col.Boxes {
				probe := cp.Vector{X: c.pos.X, Y: c.pos.Y + halfH + c.vel.Y}
				if !touches(worldBox(at.X, at.Y, b), probe) {
					continue
				}
				c.vel.Y = 0
				c.state.Grounded = true
				if policy.OnLand != nil {
					c.other = other
					policy.OnLand(c)
				}
			}
		})
}

// resolveHorizontal probes the player's feet one frame ahead on the x axis.
func (s *PhysicsSystem) resolveHorizontal(w *ecs.World, c *contact, halfH float64) {
	ecs.ForEach3(w,
		component.TransformComponent.Kind(),
		component.ColliderComponent.Kind(),
		component.EntityKindComponent.Kind(),
		func(other ecs.Entity, at *component.Transform, col *component.Collider, kind *component.EntityKind) {
			if other == c.player {
				return
			}
			policy := PolicyFor(*kind)
			for _, b := range col.Boxes {
				probe := cp.Vector{X: c.pos.X + c.vel.X, Y: c.pos.Y + halfH}
				if !overlapsStrict(worldBox(at.X, at.Y, b), probe) {
					continue
				}
				c.vel.X = 0
				if policy.OnBump != nil {
					c.other = other
					policy.OnBump(c)
				}
			}
		})
}
