package component

// Facing is the horizontal orientation of an entity. It also flips the
// sprite and signs some movement, so it is always exactly -1 or 1.
type Facing int

const (
	FacingLeft  Facing = -1
	FacingRight Facing = 1
)

// Sign returns the facing as a multiplier.
func (f Facing) Sign() float64 {
	if f < 0 {
		return -1
	}
	return 1
}

// Normalize maps any value onto the two legal facings.
func (f Facing) Normalize() Facing {
	if f < 0 {
		return FacingLeft
	}
	return FacingRight
}

var FacingComponent = NewComponent[Facing]()
