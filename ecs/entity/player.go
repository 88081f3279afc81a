package entity

import (
	"fmt"

	"github.com/milk9111/skybird/ecs"
	"github.com/milk9111/skybird/ecs/component"
	"github.com/milk9111/skybird/prefabs"
)

// NewPlayerAt creates the bird at (x, y); that point is also where it respawns.
func NewPlayerAt(w *ecs.World, spec *prefabs.EntitySpec, x, y float64) (ecs.Entity, error) {
	player, err := BuildEntity(w, spec, component.KindPlayer, x, y, 0)
	if err != nil {
		return 0, fmt.Errorf("player: %w", err)
	}
	return player, nil
}
