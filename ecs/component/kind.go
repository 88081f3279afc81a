package component

// EntityKind tags what an entity is. Collision response is looked up by kind.
type EntityKind int

const (
	KindPlayer EntityKind = iota
	KindTree
	KindGoal
	KindHazard
)

func (k EntityKind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindTree:
		return "tree"
	case KindGoal:
		return "goal"
	case KindHazard:
		return "hazard"
	default:
		return "unknown"
	}
}

var EntityKindComponent = NewComponent[EntityKind]()
