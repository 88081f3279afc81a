package system

import "github.com/milk9111/skybird/ecs"

// NewPipeline returns the per-frame update order. The finale runs before the
// player animation so a Dance override is animated in the same frame.
func NewPipeline(tuning *Tuning, input InputProvider) *ecs.Scheduler {
	return ecs.NewScheduler(
		NewInputSystem(input),
		NewPlayerControllerSystem(tuning),
		NewPhysicsSystem(tuning),
		NewWorldObjectSystem(tuning),
		NewMovementSystem(tuning),
		NewFinaleSystem(tuning),
		NewAnimationSystem(tuning),
		NewCameraSystem(tuning),
	)
}
