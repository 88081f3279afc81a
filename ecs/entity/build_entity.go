package entity

import (
	"fmt"
	"strings"

	"github.com/milk9111/skybird/ecs"
	"github.com/milk9111/skybird/ecs/component"
	"github.com/milk9111/skybird/prefabs"
)

// buildContext carries the placement a component builder needs.
type buildContext struct {
	Kind   component.EntityKind
	X, Y   float64
	Patrol float64
}

type componentBuildFn func(w *ecs.World, e ecs.Entity, spec *prefabs.EntitySpec, ctx *buildContext) error

var componentRegistry = map[string]componentBuildFn{
	"player_tag":   addPlayerTag,
	"goal_tag":     addGoalTag,
	"kind":         addKind,
	"transform":    addTransform,
	"size":         addSize,
	"velocity":     addVelocity,
	"facing":       addFacing,
	"animation":    addAnimation,
	"collider":     addCollider,
	"player_state": addPlayerState,
	"input":        addInput,
	"spawn":        addSpawn,
	"finale":       addFinale,
	"patrol":       addPatrol,
}

var commonComponents = []string{"kind", "transform", "size", "velocity", "facing", "animation", "collider"}

// componentsByKind lists, in build order, the components each kind carries.
var componentsByKind = map[component.EntityKind][]string{
	component.KindPlayer: append([]string{"player_tag"}, append(commonComponents, "player_state", "input", "spawn")...),
	component.KindTree:   commonComponents,
	component.KindGoal:   append([]string{"goal_tag"}, append(commonComponents, "finale")...),
	component.KindHazard: append(commonComponents, "patrol"),
}

// ParseKind maps a spec kind name onto an EntityKind.
func ParseKind(name string) (component.EntityKind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "player":
		return component.KindPlayer, nil
	case prefabs.KindTree:
		return component.KindTree, nil
	case prefabs.KindGoal:
		return component.KindGoal, nil
	case prefabs.KindHazard:
		return component.KindHazard, nil
	default:
		return 0, fmt.Errorf("unknown entity kind %q", name)
	}
}

// BuildEntity creates one entity from spec placed at (x, y). patrolWidth
// is only read for hazards.
func BuildEntity(w *ecs.World, spec *prefabs.EntitySpec, kind component.EntityKind, x, y, patrolWidth float64) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("build entity: world is nil")
	}
	if spec == nil {
		return 0, fmt.Errorf("build entity: spec is nil")
	}
	names, ok := componentsByKind[kind]
	if !ok {
		return 0, fmt.Errorf("build entity: %q: no components for kind %v", spec.Name, kind)
	}

	e := ecs.CreateEntity(w)
	ctx := &buildContext{Kind: kind, X: x, Y: y, Patrol: patrolWidth}
	for _, name := range names {
		builder, ok := componentRegistry[name]
		if !ok {
			ecs.DestroyEntity(w, e)
			return 0, fmt.Errorf("build entity: %q: no builder for component %q", spec.Name, name)
		}
		if err := builder(w, e, spec, ctx); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, fmt.Errorf("build entity: %q: add %q: %w", spec.Name, name, err)
		}
	}
	return e, nil
}

func addPlayerTag(w *ecs.World, e ecs.Entity, _ *prefabs.EntitySpec, _ *buildContext) error {
	return ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{})
}

func addGoalTag(w *ecs.World, e ecs.Entity, _ *prefabs.EntitySpec, _ *buildContext) error {
	return ecs.Add(w, e, component.GoalTagComponent.Kind(), &component.GoalTag{})
}

func addKind(w *ecs.World, e ecs.Entity, _ *prefabs.EntitySpec, ctx *buildContext) error {
	kind := ctx.Kind
	return ecs.Add(w, e, component.EntityKindComponent.Kind(), &kind)
}

func addTransform(w *ecs.World, e ecs.Entity, _ *prefabs.EntitySpec, ctx *buildContext) error {
	return ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: ctx.X, Y: ctx.Y})
}

func addSize(w *ecs.World, e ecs.Entity, spec *prefabs.EntitySpec, _ *buildContext) error {
	if spec.W <= 0 || spec.H <= 0 {
		return fmt.Errorf("size must be positive, got %vx%v", spec.W, spec.H)
	}
	return ecs.Add(w, e, component.SizeComponent.Kind(), &component.Size{W: spec.W, H: spec.H})
}

func addVelocity(w *ecs.World, e ecs.Entity, _ *prefabs.EntitySpec, _ *buildContext) error {
	return ecs.Add(w, e, component.VelocityComponent.Kind(), &component.Velocity{})
}

func addFacing(w *ecs.World, e ecs.Entity, spec *prefabs.EntitySpec, _ *buildContext) error {
	facing := component.Facing(spec.Facing).Normalize()
	return ecs.Add(w, e, component.FacingComponent.Kind(), &facing)
}

func addAnimation(w *ecs.World, e ecs.Entity, spec *prefabs.EntitySpec, _ *buildContext) error {
	if spec.Sprite == "" {
		return fmt.Errorf("sprite is required")
	}
	mode, err := parseAnimationMode(spec.Animation)
	if err != nil {
		return err
	}
	return ecs.Add(w, e, component.AnimationComponent.Kind(), &component.Animation{
		Sprite:     spec.Sprite,
		Mode:       mode,
		FrameCount: spec.FrameCount,
		TileW:      spec.TileW,
		TileH:      spec.TileH,
	})
}

func parseAnimationMode(name string) (component.AnimationMode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "idle":
		return component.AnimIdle, nil
	case "walk":
		return component.AnimWalk, nil
	case "fly":
		return component.AnimFly, nil
	case "dance":
		return component.AnimDance, nil
	default:
		return 0, fmt.Errorf("unknown animation %q", name)
	}
}

func addCollider(w *ecs.World, e ecs.Entity, spec *prefabs.EntitySpec, _ *buildContext) error {
	if len(spec.Boxes) == 0 {
		return nil
	}
	boxes := make([]component.Box, 0, len(spec.Boxes))
	for i, b := range spec.Boxes {
		if b.W <= 0 || b.H <= 0 {
			return fmt.Errorf("box %d: size must be positive, got %vx%v", i, b.W, b.H)
		}
		boxes = append(boxes, component.Box{OffsetX: b.X, OffsetY: b.Y, W: b.W, H: b.H})
	}
	return ecs.Add(w, e, component.ColliderComponent.Kind(), &component.Collider{Boxes: boxes})
}

func addPlayerState(w *ecs.World, e ecs.Entity, _ *prefabs.EntitySpec, _ *buildContext) error {
	return ecs.Add(w, e, component.PlayerStateComponent.Kind(), &component.PlayerState{})
}

func addInput(w *ecs.World, e ecs.Entity, _ *prefabs.EntitySpec, _ *buildContext) error {
	return ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{})
}

func addSpawn(w *ecs.World, e ecs.Entity, _ *prefabs.EntitySpec, ctx *buildContext) error {
	return ecs.Add(w, e, component.SpawnComponent.Kind(), &component.Spawn{X: ctx.X, Y: ctx.Y})
}

func addFinale(w *ecs.World, e ecs.Entity, _ *prefabs.EntitySpec, _ *buildContext) error {
	return ecs.Add(w, e, component.FinaleComponent.Kind(), &component.Finale{})
}

func addPatrol(w *ecs.World, e ecs.Entity, _ *prefabs.EntitySpec, ctx *buildContext) error {
	if ctx.Patrol <= 0 {
		return fmt.Errorf("patrol width must be positive, got %v", ctx.Patrol)
	}
	return ecs.Add(w, e, component.PatrolComponent.Kind(), &component.Patrol{AnchorX: ctx.X, Width: ctx.Patrol})
}
