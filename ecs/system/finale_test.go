package system

import (
	"testing"

	"github.com/milk9111/skybird/ecs"
	"github.com/milk9111/skybird/ecs/component"
)

func TestFinaleInactiveDoesNothing(t *testing.T) {
	tw := newTestWorld(t)
	goal := tw.addGoal(5400, 300)

	NewFinaleSystem(&tw.tuning).Update(tw.w, frameDT)

	if f := mustGet(t, tw.w, goal, component.FinaleComponent); f.Progress != 0 {
		t.Fatalf("inactive finale advanced to %v", f.Progress)
	}
	if mustGet(t, tw.w, tw.camera, component.CameraComponent).Pinned {
		t.Fatalf("camera pinned before the finale started")
	}
	if FinaleShowing(tw.w) {
		t.Fatalf("overlay must be hidden while inactive")
	}
}

func TestFinaleProgression(t *testing.T) {
	tw := newTestWorld(t)
	goal := tw.addGoal(5400, 300)
	f := mustGet(t, tw.w, goal, component.FinaleComponent)
	f.Active = true
	s := NewFinaleSystem(&tw.tuning)

	s.Update(tw.w, frameDT)
	if !approx(f.Progress, frameDT/3) {
		t.Fatalf("warm-up step = %v, want %v", f.Progress, frameDT/3)
	}
	cam := mustGet(t, tw.w, tw.camera, component.CameraComponent)
	if !cam.Pinned || cam.TargetX != 5100 || cam.TargetY != 0 {
		t.Fatalf("expected camera pinned on (5100,0), got %+v", *cam)
	}

	f.Progress = 1
	s.Update(tw.w, frameDT)
	if !approx(f.Progress, 1+5*frameDT) {
		t.Fatalf("play step = %v, want %v", f.Progress, 1+5*frameDT)
	}
	if FinaleShowing(tw.w) {
		t.Fatalf("overlay must wait for the dance")
	}

	prev := f.Progress
	reachedEnd := false
	for i := 0; i < 400; i++ {
		s.Update(tw.w, frameDT)
		if f.Progress < prev {
			t.Fatalf("progress went backwards: %v -> %v", prev, f.Progress)
		}
		if reachedEnd && f.Progress != 9 {
			t.Fatalf("progress left 9 after saturating: %v", f.Progress)
		}
		if f.Progress > 9 {
			t.Fatalf("progress exceeded 9: %v", f.Progress)
		}
		reachedEnd = reachedEnd || f.Progress == 9
		prev = f.Progress
	}
	if !reachedEnd {
		t.Fatalf("finale never finished")
	}
	if tw.anim().Mode != component.AnimDance {
		t.Fatalf("expected dance, got %v", tw.anim().Mode)
	}
	if !FinaleShowing(tw.w) {
		t.Fatalf("expected overlay once dancing")
	}
	if goalAnim := mustGet(t, tw.w, goal, component.AnimationComponent); goalAnim.FrameIndex() != 9 {
		t.Fatalf("expected goal sprite row 9, got %d", goalAnim.FrameIndex())
	}
	if n := tw.events(ecs.EventFinaleFinished); n != 1 {
		t.Fatalf("expected one finish event, got %d", n)
	}
}

func TestFinaleShowingNeedsActive(t *testing.T) {
	tw := newTestWorld(t)
	tw.addGoal(5400, 300)
	tw.anim().Mode = component.AnimDance

	if FinaleShowing(tw.w) {
		t.Fatalf("dance alone must not show the overlay")
	}
}
