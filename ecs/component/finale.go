package component

// Finale is the scripted end sequence owned by the goal entity.
// Progress runs 0..1 during warm-up, then up to End while playing.
// The goal's Animation.Frame mirrors it as a separate field.
type Finale struct {
	Active   bool
	Progress float64
}

var FinaleComponent = NewComponent[Finale]()
