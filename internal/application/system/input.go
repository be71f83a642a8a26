package system

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Action is a logical input, independent of the physical key
type Action uint16

const (
	ActionUp Action = 1 << iota
	ActionDown
	ActionLeft
	ActionRight
	ActionPlaceTower
	ActionStem1
	ActionStem2
	ActionStem3
	ActionPause
)

// StemActions maps stem index to its toggle action
var StemActions = [...]Action{ActionStem1, ActionStem2, ActionStem3}

// InputState is one frame of logical input
type InputState struct {
	Held    Action  // actions currently held
	Pressed Action  // actions pressed this frame
	Scroll  float64 // mouse wheel, positive = away from the user
}

// IsHeld reports whether a is held this frame
func (s InputState) IsHeld(a Action) bool { return s.Held&a != 0 }

// WasJustPressed reports whether a went down this frame
func (s InputState) WasJustPressed(a Action) bool { return s.Pressed&a != 0 }

// MoveDir returns the unnormalized movement direction in world space (Y-up)
func (s InputState) MoveDir() mgl64.Vec2 {
	var dir mgl64.Vec2
	if s.IsHeld(ActionUp) {
		dir[1]++
	}
	if s.IsHeld(ActionDown) {
		dir[1]--
	}
	if s.IsHeld(ActionLeft) {
		dir[0]--
	}
	if s.IsHeld(ActionRight) {
		dir[0]++
	}
	return dir
}

// InputSource produces one InputState per frame
type InputSource interface {
	Poll() InputState
}

// Bindings maps keys to actions
var Bindings = map[ebiten.Key]Action{
	ebiten.KeyW:      ActionUp,
	ebiten.KeyS:      ActionDown,
	ebiten.KeyA:      ActionLeft,
	ebiten.KeyD:      ActionRight,
	ebiten.KeySpace:  ActionPlaceTower,
	ebiten.KeyDigit1: ActionStem1,
	ebiten.KeyDigit2: ActionStem2,
	ebiten.KeyDigit3: ActionStem3,
	ebiten.KeyEscape: ActionPause,
}

// EbitenInput reads the keyboard and mouse wheel through ebiten
type EbitenInput struct{}

// Poll reads the current input state
func (EbitenInput) Poll() InputState {
	var s InputState
	for key, action := range Bindings {
		if ebiten.IsKeyPressed(key) {
			s.Held |= action
		}
		if inpututil.IsKeyJustPressed(key) {
			s.Pressed |= action
		}
	}
	_, s.Scroll = ebiten.Wheel()
	return s
}
