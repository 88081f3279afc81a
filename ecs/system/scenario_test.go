package system

import (
	"math"
	"testing"

	"github.com/milk9111/skybird/ecs"
	"github.com/milk9111/skybird/ecs/component"
)

func TestScenarioFreeFall(t *testing.T) {
	tw := newTestWorld(t)

	tw.step(nil, frameDT, 1)

	if !approx(tw.vel().Y, 9.8*frameDT) {
		t.Fatalf("vy = %v, want %v", tw.vel().Y, 9.8*frameDT)
	}
	if math.Abs(tw.pos().Y-200.32667) > 1e-4 {
		t.Fatalf("y = %v, want ~200.32667", tw.pos().Y)
	}
	if tw.anim().Mode != component.AnimIdle {
		t.Fatalf("expected idle, got %v", tw.anim().Mode)
	}
}

func TestScenarioLandsOnTreeBranch(t *testing.T) {
	tw := newTestWorld(t)
	tw.addObject(component.KindTree, 200, 0, component.Box{OffsetX: 50, OffsetY: 270, W: 100, H: 25})

	tw.step(nil, frameDT, 60)

	if !tw.state().Grounded {
		t.Fatalf("expected the player to rest on the branch")
	}
	feet := tw.pos().Y + 32
	if feet < 257 || feet > 282.5 {
		t.Fatalf("feet at %v, expected on the branch", feet)
	}
	if n := tw.events(ecs.EventRespawn); n != 0 {
		t.Fatalf("unexpected respawn")
	}
}

func TestScenarioWalkAnimates(t *testing.T) {
	tw := newTestWorld(t)
	tw.addObject(component.KindTree, 200, 0, component.Box{OffsetX: 50, OffsetY: 270, W: 100, H: 25})
	tw.step(nil, frameDT, 30)

	tw.step(heldKeys{ActionRight: true}, frameDT, 1)

	if tw.anim().Mode != component.AnimWalk {
		t.Fatalf("expected walk, got %v", tw.anim().Mode)
	}
	if f := tw.anim().Frame; f < 0 || f >= 2 {
		t.Fatalf("walk frame %v outside [0,2)", f)
	}
}

func TestScenarioFallsOffAndRespawns(t *testing.T) {
	tw := newTestWorld(t)

	tw.step(nil, frameDT, 120)

	if n := tw.events(ecs.EventRespawn); n == 0 {
		t.Fatalf("expected a respawn after falling out of the viewport")
	}
	if tw.pos().Y > 600 {
		t.Fatalf("player still below the viewport at %v", tw.pos().Y)
	}
}

func TestScenarioFinale(t *testing.T) {
	tw := newTestWorld(t)
	tw.addGoal(5400, 300,
		component.Box{OffsetX: 0, OffsetY: 75, W: 800, H: 25},
		component.Box{OffsetX: -400, OffsetY: 300, W: 25, H: 450},
	)
	tw.pos().X, tw.pos().Y = 5400, 338

	tw.step(nil, frameDT, 1)
	if n := tw.events(ecs.EventFinaleStarted); n != 1 {
		t.Fatalf("expected the finale to start on landing, got %d events", n)
	}
	if FinaleShowing(tw.w) {
		t.Fatalf("overlay must not show during warm-up")
	}

	tw.step(nil, frameDT, 200)

	goal, ok := ecs.First(tw.w, component.GoalTagComponent.Kind())
	if !ok {
		t.Fatalf("goal missing")
	}
	if f := mustGet(t, tw.w, goal, component.FinaleComponent); f.Progress != 9 {
		t.Fatalf("progress = %v, want 9", f.Progress)
	}
	if tw.anim().Mode != component.AnimDance {
		t.Fatalf("expected dance, got %v", tw.anim().Mode)
	}
	if f := tw.anim().Frame; f < 4 || f >= 6 {
		t.Fatalf("dance frame %v outside [4,6)", f)
	}
	if !FinaleShowing(tw.w) {
		t.Fatalf("expected the overlay")
	}
	if !mustGet(t, tw.w, tw.camera, component.CameraComponent).Pinned {
		t.Fatalf("camera should stay on the balcony")
	}
}
