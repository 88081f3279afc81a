package system

import (
	"testing"

	"github.com/milk9111/skybird/prefabs"
	"gopkg.in/yaml.v3"
)

func TestClampDelta(t *testing.T) {
	tests := []struct {
		name    string
		dt, max float64
		want    float64
	}{
		{"negative", -0.5, 1.0 / 30, 0},
		{"inside", 0.01, 1.0 / 30, 0.01},
		{"too_large", 2, 1.0 / 30, 1.0 / 30},
		{"no_limit", 2, 0, 2},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ClampDelta(tc.dt, tc.max); got != tc.want {
				t.Fatalf("ClampDelta(%v, %v) = %v, want %v", tc.dt, tc.max, got, tc.want)
			}
		})
	}
}

func ptr(v float64) *float64 { return &v }

func TestTuningApplyOverlaysSetValues(t *testing.T) {
	tuning := DefaultTuning()
	spec := &prefabs.WorldSpec{
		Physics: prefabs.PhysicsSpec{Gravity: ptr(4.9)},
		Camera:  prefabs.CameraSpec{MaxX: ptr(8000)},
		Finale:  prefabs.FinaleSpec{View: &prefabs.PointSpec{X: 7000, Y: 0}},
	}

	tuning.Apply(spec)

	if tuning.Gravity != 4.9 || tuning.CameraMaxX != 8000 || tuning.GoalViewX != 7000 || tuning.GoalViewY != 0 {
		t.Fatalf("values not applied: %+v", tuning)
	}
	def := DefaultTuning()
	if tuning.MoveAccel != def.MoveAccel || tuning.FinaleEnd != def.FinaleEnd || tuning.ViewH != def.ViewH {
		t.Fatalf("omitted fields overwrote defaults: %+v", tuning)
	}
}

func TestTuningApplyExplicitZero(t *testing.T) {
	tests := []struct {
		name string
		spec prefabs.WorldSpec
		get  func(t *Tuning) float64
	}{
		{"object_friction", prefabs.WorldSpec{Physics: prefabs.PhysicsSpec{ObjectFriction: ptr(0)}}, func(t *Tuning) float64 { return t.ObjectFriction }},
		{"glide_vy", prefabs.WorldSpec{Physics: prefabs.PhysicsSpec{GlideVY: ptr(0)}}, func(t *Tuning) float64 { return t.GlideVY }},
		{"camera_max_y", prefabs.WorldSpec{Camera: prefabs.CameraSpec{MinX: ptr(0), MaxY: ptr(0)}}, func(t *Tuning) float64 { return t.CameraMaxY }},
		{"max_delta", prefabs.WorldSpec{Physics: prefabs.PhysicsSpec{MaxDelta: ptr(0)}}, func(t *Tuning) float64 { return t.MaxDelta }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tuning := DefaultTuning()
			tuning.ObjectFriction, tuning.GlideVY, tuning.CameraMaxY, tuning.MaxDelta = 1, 1, 1, 1

			tuning.Apply(&tc.spec)

			if got := tc.get(&tuning); got != 0 {
				t.Fatalf("explicit 0 ignored, got %v", got)
			}
		})
	}
}

func TestTuningApplyZeroFromYAML(t *testing.T) {
	var spec prefabs.WorldSpec
	if err := yaml.Unmarshal([]byte("physics:\n  object_friction: 0\n"), &spec); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	tuning := DefaultTuning()

	tuning.Apply(&spec)

	if tuning.ObjectFriction != 0 {
		t.Fatalf("object_friction = %v, want 0", tuning.ObjectFriction)
	}
	if tuning.AirFriction != DefaultTuning().AirFriction {
		t.Fatalf("omitted air_friction changed to %v", tuning.AirFriction)
	}
}

func TestTuningMatchesEmbeddedWorld(t *testing.T) {
	spec, err := prefabs.LoadWorldSpec()
	if err != nil {
		t.Fatalf("load world: %v", err)
	}
	tuning := DefaultTuning()
	tuning.Apply(spec)

	def := DefaultTuning()
	if tuning.Gravity != def.Gravity || tuning.FinaleEnd != def.FinaleEnd || tuning.CameraMinY != def.CameraMinY {
		t.Fatalf("world.yaml disagrees with defaults: %+v", tuning)
	}
}
