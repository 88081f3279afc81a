package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/skybird/ecs"
	"github.com/milk9111/skybird/ecs/component"
)

// CameraSystem chases the follow target with speed proportional to the
// remaining distance, then clamps the camera to the world bounds.
type CameraSystem struct {
	tuning *Tuning
}

func NewCameraSystem(tuning *Tuning) *CameraSystem {
	return &CameraSystem{tuning: tuning}
}

func (s *CameraSystem) Update(w *ecs.World, dt float64) {
	if s == nil || s.tuning == nil {
		return
	}
	t := s.tuning

	camEntity, ok := ecs.First(w, component.CameraTagComponent.Kind())
	if !ok {
		return
	}
	cam, ok := ecs.Get(w, camEntity, component.CameraComponent.Kind())
	if !ok {
		return
	}
	camPos, ok := ecs.Get(w, camEntity, component.TransformComponent.Kind())
	if !ok {
		return
	}

	if !cam.Pinned {
		player, ok := ecs.First(w, component.PlayerTagComponent.Kind())
		if !ok {
			return
		}
		p, ok := ecs.Get(w, player, component.TransformComponent.Kind())
		if !ok {
			return
		}
		cam.TargetX = p.X - cam.ViewW/2
		cam.TargetY = p.Y - cam.ViewH/2
	}

	pos := cp.Vector{X: camPos.X, Y: camPos.Y}
	dist := cp.Vector{X: cam.TargetX, Y: cam.TargetY}.Sub(pos)
	// Speed is proportional to the remaining distance, so the approach is
	// exponential. A camera already on target stays put.
	pos = pos.Add(dist.Mult(t.CameraPursuit * dt))

	camPos.X = cp.Clamp(pos.X, t.CameraMinX, t.CameraMaxX)
	camPos.Y = cp.Clamp(pos.Y, t.CameraMinY, t.CameraMaxY)
}
