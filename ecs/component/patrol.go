package component

// Patrol keeps a hazard oscillating around AnchorX within Width.
type Patrol struct {
	AnchorX float64
	Width   float64
}

var PatrolComponent = NewComponent[Patrol]()
