package system

import (
	"github.com/milk9111/skybird/ecs"
	"github.com/milk9111/skybird/ecs/component"
)

// frameWindow is the half-open range of sprite rows a mode cycles through.
type frameWindow struct {
	lo, hi float64
}

// Each moving mode owns a disjoint two-row window of the player strip.
var playerWindows = map[component.AnimationMode]frameWindow{
	component.AnimWalk:  {0, 2},
	component.AnimFly:   {2, 4},
	component.AnimDance: {4, 6},
}

// AnimationSystem advances the player's frame inside the window of its
// current mode. Idle pins the frame to 0.
type AnimationSystem struct {
	tuning *Tuning
}

func NewAnimationSystem(tuning *Tuning) *AnimationSystem {
	return &AnimationSystem{tuning: tuning}
}

func (s *AnimationSystem) Update(w *ecs.World, dt float64) {
	if s == nil || s.tuning == nil {
		return
	}

	ecs.ForEach2(w, component.PlayerTagComponent.Kind(), component.AnimationComponent.Kind(), func(_ ecs.Entity, _ *component.PlayerTag, anim *component.Animation) {
		advancePlayerFrame(anim, s.tuning.AnimRate*dt)
	})
}

func advancePlayerFrame(anim *component.Animation, step float64) {
	win, ok := playerWindows[anim.Mode]
	if !ok {
		anim.Frame = 0
		return
	}
	if anim.Frame < win.lo {
		anim.Frame = win.lo
	}
	anim.Frame += step
	if anim.Frame >= win.hi {
		anim.Frame = win.lo
	}
}
