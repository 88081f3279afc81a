package component

// AnimationMode selects which window of the sprite strip is played.
type AnimationMode int

const (
	AnimIdle AnimationMode = iota
	AnimWalk
	AnimFly
	AnimDance
)

func (m AnimationMode) String() string {
	switch m {
	case AnimIdle:
		return "idle"
	case AnimWalk:
		return "walk"
	case AnimFly:
		return "fly"
	case AnimDance:
		return "dance"
	default:
		return "unknown"
	}
}

const (
	DefaultTileW = 32
	DefaultTileH = 32
)

// Animation drives which row of a vertical sprite strip is drawn.
// Frame is fractional; the drawn row is floor(Frame).
type Animation struct {
	Sprite     string
	Mode       AnimationMode
	Frame      float64
	FrameCount int // 0 means the entity does not loop on its own
	TileW      int
	TileH      int
}

// FrameIndex returns the sprite-sheet row to draw.
func (a *Animation) FrameIndex() int {
	if a == nil || a.Frame < 0 {
		return 0
	}
	return int(a.Frame)
}

// Tile returns the source tile size, defaulting to 32x32.
func (a *Animation) Tile() (int, int) {
	tw, th := DefaultTileW, DefaultTileH
	if a != nil && a.TileW > 0 {
		tw = a.TileW
	}
	if a != nil && a.TileH > 0 {
		th = a.TileH
	}
	return tw, th
}

var AnimationComponent = NewComponent[Animation]()
