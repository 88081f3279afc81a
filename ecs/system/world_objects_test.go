package system

import (
	"testing"

	"github.com/milk9111/skybird/ecs/component"
)

func TestWorldObjectsHazardFrames(t *testing.T) {
	tw := newTestWorld(t)
	bee := tw.addHazard(1000, 0, 150)
	anim := mustGet(t, tw.w, bee, component.AnimationComponent)
	s := NewWorldObjectSystem(&tw.tuning)

	for i := 0; i < 200; i++ {
		s.Update(tw.w, frameDT)
		if anim.Frame < 0 || anim.Frame >= 4 {
			t.Fatalf("frame %v escaped [0,4) at step %d", anim.Frame, i)
		}
	}

	anim.Frame = 3.9
	s.Update(tw.w, frameDT)
	if anim.Frame != 0 {
		t.Fatalf("expected wrap to 0, got %v", anim.Frame)
	}
}

func TestWorldObjectsStaticOnesStayPut(t *testing.T) {
	tw := newTestWorld(t)
	tree := tw.addObject(component.KindTree, 200, 0)

	NewWorldObjectSystem(&tw.tuning).Update(tw.w, frameDT)

	pos := mustGet(t, tw.w, tree, component.TransformComponent)
	anim := mustGet(t, tw.w, tree, component.AnimationComponent)
	if pos.X != 200 || pos.Y != 0 || anim.Frame != 0 {
		t.Fatalf("tree moved or animated: %+v frame %v", *pos, anim.Frame)
	}
}

func TestWorldObjectsPatrol(t *testing.T) {
	t.Run("first_step", func(t *testing.T) {
		tw := newTestWorld(t)
		bee := tw.addHazard(1000, 0, 150)

		NewWorldObjectSystem(&tw.tuning).Update(tw.w, frameDT)

		vel := mustGet(t, tw.w, bee, component.VelocityComponent)
		wantVX := (10 * frameDT) * (1 - 2.5*frameDT)
		if !approx(vel.X, wantVX) {
			t.Fatalf("vx = %v, want %v", vel.X, wantVX)
		}
		if pos := mustGet(t, tw.w, bee, component.TransformComponent); !approx(pos.X, 1000+wantVX) {
			t.Fatalf("x = %v, want %v", pos.X, 1000+wantVX)
		}
	})

	t.Run("flips_past_half_width", func(t *testing.T) {
		tests := []struct {
			name  string
			x     float64
			start component.Facing
			want  component.Facing
		}{
			{"right_edge", 1076, component.FacingLeft, component.FacingRight},
			{"left_edge", 924, component.FacingRight, component.FacingLeft},
			{"inside", 1050, component.FacingLeft, component.FacingLeft},
		}
		for _, tc := range tests {
			t.Run(tc.name, func(t *testing.T) {
				tw := newTestWorld(t)
				bee := tw.addHazard(1000, 0, 150)
				mustGet(t, tw.w, bee, component.TransformComponent).X = tc.x
				*mustGet(t, tw.w, bee, component.FacingComponent) = tc.start

				NewWorldObjectSystem(&tw.tuning).Update(tw.w, frameDT)

				if got := *mustGet(t, tw.w, bee, component.FacingComponent); got != tc.want {
					t.Fatalf("facing = %v, want %v", got, tc.want)
				}
			})
		}
	})

	t.Run("stays_near_anchor", func(t *testing.T) {
		tw := newTestWorld(t)
		bee := tw.addHazard(1000, 0, 150)
		s := NewWorldObjectSystem(&tw.tuning)
		for i := 0; i < 3000; i++ {
			s.Update(tw.w, frameDT)
		}
		if x := mustGet(t, tw.w, bee, component.TransformComponent).X; x < 700 || x > 1300 {
			t.Fatalf("patrol wandered off to x=%v", x)
		}
	})
}

func TestWorldObjectsSkipPlayer(t *testing.T) {
	tw := newTestWorld(t)
	tw.vel().X = 3

	NewWorldObjectSystem(&tw.tuning).Update(tw.w, frameDT)

	if tw.pos().X != 250 || tw.vel().X != 3 {
		t.Fatalf("player must not be moved by the object pass")
	}
}
