package components

import (
	cfg "github.com/automoto/devour/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// InputMethod represents the type of input device being used
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputGamepad
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// RawInput is one poll of the devices.
type RawInput struct {
	Pressed [cfg.ActionCount]bool
	Stick   mgl64.Vec2 // analog move, deadzone already applied
	Method  InputMethod
}

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current         [cfg.ActionCount]bool // Current frame's Pressed state
	Previous        [cfg.ActionCount]bool // Previous frame's Pressed state
	Stick           mgl64.Vec2
	LastInputMethod InputMethod // Most recently used input method

	// Derived each frame
	Move        mgl64.Vec2 // each axis in [-1, 1], not normalized
	JumpPressed bool
	RollPressed bool
}

var Input = donburi.NewComponentType[InputData]()
