package component

// PlayerState is per-player physics state re-derived every frame.
type PlayerState struct {
	Grounded bool
}

var PlayerStateComponent = NewComponent[PlayerState]()

// Spawn is where the player is teleported on a fail state.
type Spawn struct {
	X float64
	Y float64
}

var SpawnComponent = NewComponent[Spawn]()
