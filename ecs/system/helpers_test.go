package system

import (
	"math"
	"testing"

	"github.com/milk9111/skybird/ecs"
	"github.com/milk9111/skybird/ecs/component"
)

const (
	frameDT = 1.0 / 30
	epsilon = 1e-9
)

type heldKeys map[Action]bool

func (h heldKeys) IsActionHeld(a Action) bool { return h[a] }

func approx(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

type testWorld struct {
	t      *testing.T
	w      *ecs.World
	tuning Tuning
	player ecs.Entity
	camera ecs.Entity
}

func mustAdd[T any](t *testing.T, w *ecs.World, e ecs.Entity, h component.ComponentHandle[T], v T) {
	t.Helper()
	if err := ecs.Add(w, e, h.Kind(), &v); err != nil {
		t.Fatalf("add component: %v", err)
	}
}

func mustGet[T any](t *testing.T, w *ecs.World, e ecs.Entity, h component.ComponentHandle[T]) *T {
	t.Helper()
	v, ok := ecs.Get(w, e, h.Kind())
	if !ok {
		t.Fatalf("entity %v missing component", e)
	}
	return v
}

// newTestWorld builds a camera and a 64x64 player at the spawn point.
func newTestWorld(t *testing.T) *testWorld {
	t.Helper()
	tw := &testWorld{t: t, w: ecs.NewWorld(), tuning: DefaultTuning()}

	tw.camera = ecs.CreateEntity(tw.w)
	mustAdd(t, tw.w, tw.camera, component.CameraTagComponent, component.CameraTag{})
	mustAdd(t, tw.w, tw.camera, component.CameraComponent, component.Camera{ViewW: 800, ViewH: 600})
	mustAdd(t, tw.w, tw.camera, component.TransformComponent, component.Transform{X: 250 - 400, Y: 200 - 300})

	p := ecs.CreateEntity(tw.w)
	mustAdd(t, tw.w, p, component.PlayerTagComponent, component.PlayerTag{})
	mustAdd(t, tw.w, p, component.EntityKindComponent, component.KindPlayer)
	mustAdd(t, tw.w, p, component.TransformComponent, component.Transform{X: 250, Y: 200})
	mustAdd(t, tw.w, p, component.SizeComponent, component.Size{W: 64, H: 64})
	mustAdd(t, tw.w, p, component.VelocityComponent, component.Velocity{})
	mustAdd(t, tw.w, p, component.FacingComponent, component.FacingRight)
	mustAdd(t, tw.w, p, component.AnimationComponent, component.Animation{Sprite: "bird"})
	mustAdd(t, tw.w, p, component.PlayerStateComponent, component.PlayerState{})
	mustAdd(t, tw.w, p, component.InputComponent, component.Input{})
	mustAdd(t, tw.w, p, component.SpawnComponent, component.Spawn{X: 250, Y: 200})
	tw.player = p
	return tw
}

func (tw *testWorld) addObject(kind component.EntityKind, x, y float64, boxes ...component.Box) ecs.Entity {
	tw.t.Helper()
	e := ecs.CreateEntity(tw.w)
	mustAdd(tw.t, tw.w, e, component.EntityKindComponent, kind)
	mustAdd(tw.t, tw.w, e, component.TransformComponent, component.Transform{X: x, Y: y})
	mustAdd(tw.t, tw.w, e, component.SizeComponent, component.Size{W: 64, H: 64})
	mustAdd(tw.t, tw.w, e, component.VelocityComponent, component.Velocity{})
	mustAdd(tw.t, tw.w, e, component.FacingComponent, component.FacingRight)
	mustAdd(tw.t, tw.w, e, component.AnimationComponent, component.Animation{Sprite: kind.String()})
	mustAdd(tw.t, tw.w, e, component.ColliderComponent, component.Collider{Boxes: boxes})
	return e
}

func (tw *testWorld) addGoal(x, y float64, boxes ...component.Box) ecs.Entity {
	tw.t.Helper()
	e := tw.addObject(component.KindGoal, x, y, boxes...)
	mustAdd(tw.t, tw.w, e, component.GoalTagComponent, component.GoalTag{})
	mustAdd(tw.t, tw.w, e, component.FinaleComponent, component.Finale{})
	return e
}

func (tw *testWorld) addHazard(x, y, width float64) ecs.Entity {
	tw.t.Helper()
	e := tw.addObject(component.KindHazard, x, y, component.Box{OffsetX: 0, OffsetY: 16, W: 32, H: 64})
	*mustGet(tw.t, tw.w, e, component.FacingComponent) = component.FacingLeft
	anim := mustGet(tw.t, tw.w, e, component.AnimationComponent)
	anim.Mode = component.AnimWalk
	anim.FrameCount = 4
	mustAdd(tw.t, tw.w, e, component.PatrolComponent, component.Patrol{AnchorX: x, Width: width})
	return e
}

func (tw *testWorld) pos() *component.Transform {
	return mustGet(tw.t, tw.w, tw.player, component.TransformComponent)
}

func (tw *testWorld) vel() *component.Velocity {
	return mustGet(tw.t, tw.w, tw.player, component.VelocityComponent)
}

func (tw *testWorld) state() *component.PlayerState {
	return mustGet(tw.t, tw.w, tw.player, component.PlayerStateComponent)
}

func (tw *testWorld) anim() *component.Animation {
	return mustGet(tw.t, tw.w, tw.player, component.AnimationComponent)
}

func (tw *testWorld) cameraPos() *component.Transform {
	return mustGet(tw.t, tw.w, tw.camera, component.TransformComponent)
}

func (tw *testWorld) events(kind ecs.EventKind) int {
	n := 0
	for _, evt := range tw.w.Events().Drain() {
		if evt.Kind == kind {
			n++
		}
	}
	return n
}

// step runs the full frame pipeline n times.
func (tw *testWorld) step(keys heldKeys, dt float64, n int) {
	pipeline := NewPipeline(&tw.tuning, keys)
	for i := 0; i < n; i++ {
		pipeline.Update(tw.w, dt)
	}
}
