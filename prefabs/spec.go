package prefabs

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// WorldFile is the prefab that describes the whole scene.
const WorldFile = "world.yaml"

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// WorldSpec is the full scene: tuning plus the fixed layout and the
// template used for the scattered hazards.
type WorldSpec struct {
	Viewport ViewportSpec `yaml:"viewport"`
	Spawn    PointSpec    `yaml:"spawn"`
	Physics  PhysicsSpec  `yaml:"physics"`
	Camera   CameraSpec   `yaml:"camera"`
	Finale   FinaleSpec   `yaml:"finale"`
	Player   EntitySpec   `yaml:"player"`
	Entities []EntitySpec `yaml:"entities"`
	Hazard   EntitySpec   `yaml:"hazard"`
	Swarm    SwarmSpec    `yaml:"swarm"`
}

func LoadWorldSpec() (*WorldSpec, error) {
	spec, err := LoadSpec[WorldSpec](WorldFile)
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", WorldFile, err)
	}
	return &spec, nil
}

// Validate rejects layouts the simulation cannot run.
func (s *WorldSpec) Validate() error {
	if s.Viewport.Width <= 0 || s.Viewport.Height <= 0 {
		return fmt.Errorf("viewport must be positive, got %vx%v", s.Viewport.Width, s.Viewport.Height)
	}
	if s.Player.Sprite == "" {
		return fmt.Errorf("player sprite is required")
	}
	goals := 0
	for _, e := range s.Entities {
		switch e.Kind {
		case KindTree, KindHazard:
		case KindGoal:
			goals++
		default:
			return fmt.Errorf("entity %q: unknown kind %q", e.Name, e.Kind)
		}
	}
	if goals != 1 {
		return fmt.Errorf("expected exactly one goal entity, got %d", goals)
	}
	if s.Hazard.Sprite == "" {
		return fmt.Errorf("hazard sprite is required")
	}
	if s.Swarm.Script == "" {
		return fmt.Errorf("swarm script is required")
	}
	if s.Swarm.StepMin <= 0 || s.Swarm.StepMax < s.Swarm.StepMin {
		return fmt.Errorf("swarm step range must satisfy 0 < step_min <= step_max, got [%v, %v]", s.Swarm.StepMin, s.Swarm.StepMax)
	}
	if s.Swarm.EndX < s.Swarm.StartX {
		return fmt.Errorf("swarm end_x %v is before start_x %v", s.Swarm.EndX, s.Swarm.StartX)
	}
	if s.Swarm.MaxStack < 0 {
		return fmt.Errorf("swarm max_stack must not be negative, got %d", s.Swarm.MaxStack)
	}
	return nil
}

// Entity kind names accepted in specs.
const (
	KindTree   = "tree"
	KindGoal   = "goal"
	KindHazard = "hazard"
)

type ViewportSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type PointSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Tuning sections use pointers so an omitted key keeps the built-in
// default while an explicit 0 is honoured.
type PhysicsSpec struct {
	MaxDelta       *float64 `yaml:"max_delta"`
	Gravity        *float64 `yaml:"gravity"`
	MoveAccel      *float64 `yaml:"move_accel"`
	JumpVY         *float64 `yaml:"jump_vy"`
	JumpVX         *float64 `yaml:"jump_vx"`
	GroundFriction *float64 `yaml:"ground_friction"`
	AirFriction    *float64 `yaml:"air_friction"`
	ObjectFriction *float64 `yaml:"object_friction"`
	FlyThresholdVX *float64 `yaml:"fly_threshold_vx"`
	GlideTriggerVY *float64 `yaml:"glide_trigger_vy"`
	GlideTriggerVX *float64 `yaml:"glide_trigger_vx"`
	GlideVY        *float64 `yaml:"glide_vy"`
	AnimRate       *float64 `yaml:"anim_rate"`
	PatrolAccel    *float64 `yaml:"patrol_accel"`
}

type CameraSpec struct {
	Pursuit *float64 `yaml:"pursuit"`
	MinX    *float64 `yaml:"min_x"`
	MaxX    *float64 `yaml:"max_x"`
	MinY    *float64 `yaml:"min_y"`
	MaxY    *float64 `yaml:"max_y"`
}

type FinaleSpec struct {
	Warmup *float64   `yaml:"warmup"`
	Rate   *float64   `yaml:"rate"`
	End    *float64   `yaml:"end"`
	View   *PointSpec `yaml:"view"`
}

type BoxSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

type EntitySpec struct {
	Name       string    `yaml:"name"`
	Kind       string    `yaml:"kind"`
	Sprite     string    `yaml:"sprite"`
	X          float64   `yaml:"x"`
	Y          float64   `yaml:"y"`
	W          float64   `yaml:"w"`
	H          float64   `yaml:"h"`
	Facing     int       `yaml:"facing"`
	Animation  string    `yaml:"animation"`
	FrameCount int       `yaml:"frame_count"`
	TileW      int       `yaml:"tile_w"`
	TileH      int       `yaml:"tile_h"`
	PathWidth  float64   `yaml:"path_width"`
	Boxes      []BoxSpec `yaml:"boxes"`
}

// SwarmSpec feeds the hazard scatter script.
type SwarmSpec struct {
	Script   string  `yaml:"script"`
	StartX   float64 `yaml:"start_x"`
	EndX     float64 `yaml:"end_x"`
	StepMin  float64 `yaml:"step_min"`
	StepMax  float64 `yaml:"step_max"`
	MaxStack int     `yaml:"max_stack"`
	SkyTop   float64 `yaml:"sky_top"`
	PathMin  float64 `yaml:"path_min"`
	PathMax  float64 `yaml:"path_max"`
}
