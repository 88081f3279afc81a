package entity

import (
	"fmt"

	"github.com/milk9111/skybird/ecs"
	"github.com/milk9111/skybird/ecs/component"
)

// NewCamera creates a camera that starts centred on (focusX, focusY).
func NewCamera(w *ecs.World, viewW, viewH, focusX, focusY float64) (ecs.Entity, error) {
	if viewW <= 0 || viewH <= 0 {
		return 0, fmt.Errorf("camera: viewport must be positive, got %vx%v", viewW, viewH)
	}

	camera := ecs.CreateEntity(w)
	if err := ecs.Add(w, camera, component.CameraTagComponent.Kind(), &component.CameraTag{}); err != nil {
		return 0, fmt.Errorf("camera: add camera tag: %w", err)
	}
	if err := ecs.Add(w, camera, component.TransformComponent.Kind(), &component.Transform{
		X: focusX - viewW/2,
		Y: focusY - viewH/2,
	}); err != nil {
		return 0, fmt.Errorf("camera: add transform: %w", err)
	}
	if err := ecs.Add(w, camera, component.CameraComponent.Kind(), &component.Camera{
		ViewW:   viewW,
		ViewH:   viewH,
		TargetX: focusX - viewW/2,
		TargetY: focusY - viewH/2,
	}); err != nil {
		return 0, fmt.Errorf("camera: add camera component: %w", err)
	}

	return camera, nil
}
