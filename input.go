package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/skybird/ecs/system"
)

// stickDeadzone is how far the left stick must travel to count as held.
const stickDeadzone = 0.3

// keyboardInput polls the keyboard and the first gamepad once per frame and
// answers system.InputProvider from that snapshot.
type keyboardInput struct {
	held map[system.Action]bool
}

func newKeyboardInput() *keyboardInput {
	return &keyboardInput{held: make(map[system.Action]bool, 3)}
}

var actionKeys = map[system.Action][]ebiten.Key{
	system.ActionLeft:  {ebiten.KeyArrowLeft},
	system.ActionRight: {ebiten.KeyArrowRight},
	system.ActionJump:  {ebiten.KeyArrowUp, ebiten.KeySpace},
}

// Poll refreshes the snapshot. Call it once before the pipeline runs.
func (i *keyboardInput) Poll() {
	for action, keys := range actionKeys {
		held := false
		for _, k := range keys {
			if ebiten.IsKeyPressed(k) {
				held = true
				break
			}
		}
		i.held[action] = held
	}

	ids := ebiten.AppendGamepadIDs(nil)
	if len(ids) == 0 {
		return
	}
	gid := ids[0]
	leftX := ebiten.StandardGamepadAxisValue(gid, ebiten.StandardGamepadAxisLeftStickHorizontal)
	if leftX < -stickDeadzone || ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonLeftLeft) {
		i.held[system.ActionLeft] = true
	}
	if leftX > stickDeadzone || ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonLeftRight) {
		i.held[system.ActionRight] = true
	}
	if ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonRightBottom) {
		i.held[system.ActionJump] = true
	}
}

func (i *keyboardInput) IsActionHeld(a system.Action) bool {
	return i.held[a]
}
