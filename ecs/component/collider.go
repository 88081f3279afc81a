package component

// Box is an axis-aligned collision box centred at an offset from the owning
// entity's Transform.
type Box struct {
	OffsetX float64
	OffsetY float64
	W       float64
	H       float64
}

// Collider holds every box a player can land on or bump into.
type Collider struct {
	Boxes []Box
}

var ColliderComponent = NewComponent[Collider]()
