package system

import (
	"github.com/milk9111/skybird/ecs"
	"github.com/milk9111/skybird/ecs/component"
)

// MovementSystem integrates the player's position and handles falling out
// of the bottom of the viewport.
type MovementSystem struct {
	tuning *Tuning
}

func NewMovementSystem(tuning *Tuning) *MovementSystem {
	return &MovementSystem{tuning: tuning}
}

func (s *MovementSystem) Update(w *ecs.World, _ float64) {
	if s == nil || s.tuning == nil {
		return
	}

	ecs.ForEach3(w,
		component.PlayerTagComponent.Kind(),
		component.TransformComponent.Kind(),
		component.VelocityComponent.Kind(),
		func(e ecs.Entity, _ *component.PlayerTag, pos *component.Transform, vel *component.Velocity) {
			pos.X += vel.X
			pos.Y += vel.Y

			if pos.Y > s.tuning.ViewH {
				var spawn component.Spawn
				if sp, ok := ecs.Get(w, e, component.SpawnComponent.Kind()); ok {
					spawn = *sp
				}
				respawnPlayer(w, e, pos, vel, spawn, "fell")
			}
		})
}
