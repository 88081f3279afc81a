package system

import (
	"github.com/milk9111/skybird/ecs"
	"github.com/milk9111/skybird/ecs/component"
)

// Action is a recognised control.
type Action int

const (
	ActionLeft Action = iota
	ActionRight
	ActionJump
)

// InputProvider reports held controls. Answers must be stable within a frame.
type InputProvider interface {
	IsActionHeld(a Action) bool
}

// InputSystem copies the provider's state into every Input component once
// per frame so later systems read a consistent snapshot.
type InputSystem struct {
	provider InputProvider
}

func NewInputSystem(provider InputProvider) *InputSystem {
	return &InputSystem{provider: provider}
}

func (s *InputSystem) Update(w *ecs.World, _ float64) {
	if s == nil || s.provider == nil {
		return
	}

	left := s.provider.IsActionHeld(ActionLeft)
	right := s.provider.IsActionHeld(ActionRight)
	jump := s.provider.IsActionHeld(ActionJump)

	ecs.ForEach(w, component.InputComponent.Kind(), func(_ ecs.Entity, in *component.Input) {
		in.Left = left
		in.Right = right
		in.Jump = jump
	})
}
