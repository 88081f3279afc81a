package component

// Input is the control snapshot for the current frame.
type Input struct {
	Left  bool
	Right bool
	Jump  bool
}

var InputComponent = NewComponent[Input]()
