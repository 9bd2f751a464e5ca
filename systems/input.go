package systems

import (
	"math"

	"github.com/automoto/devour/components"
	cfg "github.com/automoto/devour/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// InputSource produces one raw device poll per frame.
type InputSource interface {
	Poll() components.RawInput
}

// InputSourceFunc adapts a function to InputSource.
type InputSourceFunc func() components.RawInput

func (f InputSourceFunc) Poll() components.RawInput { return f() }

var inputSource InputSource = ebitenInput{}

// SetInputSource replaces the device poller. nil restores the ebiten one.
func SetInputSource(src InputSource) {
	if src == nil {
		src = ebitenInput{}
	}
	inputSource = src
}

// UpdateInput polls raw input and updates the Input component.
// Must run BEFORE UpdateLocomotion and UpdateActions in the system order.
func UpdateInput(e *ecs.ECS) {
	input := getOrCreateInput(e)
	SampleInput(input, inputSource.Poll())
}

// SampleInput swaps the input buffers, stores raw and derives the
// per-frame move vector and press edges.
func SampleInput(input *components.InputData, raw components.RawInput) {
	// Swap buffers: current becomes previous
	input.Previous = input.Current
	input.Current = raw.Pressed
	input.Stick = raw.Stick

	if raw.Method == components.InputGamepad || raw.Stick != (mgl64.Vec2{}) {
		input.LastInputMethod = components.InputGamepad
	} else if anyPressed(raw.Pressed) {
		input.LastInputMethod = components.InputKeyboard
	}

	x := axis(input.Current[cfg.ActionMoveLeft], input.Current[cfg.ActionMoveRight]) + raw.Stick.X()
	y := axis(input.Current[cfg.ActionMoveBack], input.Current[cfg.ActionMoveForward]) + raw.Stick.Y()
	input.Move = mgl64.Vec2{clampAxis(x), clampAxis(y)}

	input.JumpPressed = GetAction(input, cfg.ActionJump).JustPressed
	input.RollPressed = GetAction(input, cfg.ActionRoll).JustPressed
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(e *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}

func axis(neg, pos bool) float64 {
	v := 0.0
	if neg {
		v--
	}
	if pos {
		v++
	}
	return v
}

func clampAxis(v float64) float64 {
	return math.Max(-1, math.Min(1, v))
}

func anyPressed(pressed [cfg.ActionCount]bool) bool {
	for _, p := range pressed {
		if p {
			return true
		}
	}
	return false
}

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// ebitenInput polls the keyboard and every standard-layout gamepad.
type ebitenInput struct{}

func (ebitenInput) Poll() components.RawInput {
	var raw components.RawInput

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				raw.Pressed[actionID] = true
			}
		}
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					raw.Pressed[actionID] = true
					raw.Method = components.InputGamepad
				}
			}
		}
	}

	raw.Stick = leftStick(gamepadIDs)
	return raw
}

// leftStick returns the strongest left stick deflection across gamepads,
// with +Y meaning forward.
func leftStick(gamepads []ebiten.GamepadID) mgl64.Vec2 {
	deadzone := cfg.Input.AnalogDeadzone

	var best mgl64.Vec2
	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		h := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		v := -ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)
		stick := mgl64.Vec2{h, v}
		if stick.Len() <= deadzone {
			continue
		}
		if stick.Len() > best.Len() {
			best = stick
		}
	}
	return best
}
