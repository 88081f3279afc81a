package entity

import (
	"fmt"
	"log"
	"math/rand/v2"

	"github.com/milk9111/skybird/ecs"
	"github.com/milk9111/skybird/prefabs"
)

// Scene holds the handles of the entities BuildWorld created.
type Scene struct {
	Camera  ecs.Entity
	Player  ecs.Entity
	Goal    ecs.Entity
	Objects []ecs.Entity
	Hazards []ecs.Entity
}

// BuildWorld populates w from spec: camera, fixed scenery, scattered
// hazards, then the player. seed drives the hazard scatter.
func BuildWorld(w *ecs.World, spec *prefabs.WorldSpec, seed uint64) (*Scene, error) {
	if w == nil {
		return nil, fmt.Errorf("build world: world is nil")
	}
	if spec == nil {
		return nil, fmt.Errorf("build world: spec is nil")
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("build world: %w", err)
	}

	scene := &Scene{}
	var err error

	scene.Camera, err = NewCamera(w, spec.Viewport.Width, spec.Viewport.Height, spec.Spawn.X, spec.Spawn.Y)
	if err != nil {
		return nil, fmt.Errorf("build world: %w", err)
	}

	for i := range spec.Entities {
		es := &spec.Entities[i]
		kind, err := ParseKind(es.Kind)
		if err != nil {
			return nil, fmt.Errorf("build world: entity %q: %w", es.Name, err)
		}
		e, err := BuildEntity(w, es, kind, es.X, es.Y, es.PathWidth)
		if err != nil {
			return nil, fmt.Errorf("build world: %w", err)
		}
		switch es.Kind {
		case prefabs.KindGoal:
			scene.Goal = e
		case prefabs.KindHazard:
			scene.Hazards = append(scene.Hazards, e)
		default:
			scene.Objects = append(scene.Objects, e)
		}
	}

	src, err := prefabs.LoadScript(spec.Swarm.Script)
	if err != nil {
		return nil, fmt.Errorf("build world: load %s: %w", spec.Swarm.Script, err)
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	placements, err := ScatterHazards(src, spec.Swarm, spec.Viewport.Height, rng)
	if err != nil {
		return nil, fmt.Errorf("build world: %w", err)
	}
	for _, p := range placements {
		kind, err := ParseKind(spec.Hazard.Kind)
		if err != nil {
			return nil, fmt.Errorf("build world: hazard template: %w", err)
		}
		e, err := BuildEntity(w, &spec.Hazard, kind, p.X, p.Y, p.PathWidth)
		if err != nil {
			return nil, fmt.Errorf("build world: %w", err)
		}
		scene.Hazards = append(scene.Hazards, e)
	}
	log.Printf("world: %d objects, %d hazards (seed %d)", len(scene.Objects)+1, len(scene.Hazards), seed)

	scene.Player, err = NewPlayerAt(w, &spec.Player, spec.Spawn.X, spec.Spawn.Y)
	if err != nil {
		return nil, fmt.Errorf("build world: %w", err)
	}

	return scene, nil
}
