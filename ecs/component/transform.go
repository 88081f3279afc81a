package component

// Transform is the world-space centre of an entity.
type Transform struct {
	X float64
	Y float64
}

var TransformComponent = NewComponent[Transform]()

// Size is the drawn width and height of an entity, centred on its Transform.
type Size struct {
	W float64
	H float64
}

var SizeComponent = NewComponent[Size]()

// Velocity is displacement per frame.
type Velocity struct {
	X float64
	Y float64
}

var VelocityComponent = NewComponent[Velocity]()
