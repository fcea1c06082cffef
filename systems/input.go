package systems

import (
	"strings"

	"github.com/automoto/glyphterm/components"
	cfg "github.com/automoto/glyphterm/config"
	"github.com/automoto/glyphterm/menu"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// Cache controller types to avoid string allocation every frame
var controllerTypeCache = make(map[ebiten.GamepadID]components.InputMethod)

// menuActions maps input bindings to menu actions, in dispatch order.
var menuActions = []struct {
	id     cfg.ActionID
	action menu.Action
}{
	{cfg.ActionMenuUp, menu.ActionUp},
	{cfg.ActionMenuDown, menu.ActionDown},
	{cfg.ActionMenuLeft, menu.ActionLeft},
	{cfg.ActionMenuRight, menu.ActionRight},
	{cfg.ActionMenuSelect, menu.ActionSelect},
	{cfg.ActionMenuBack, menu.ActionCancel},
}

// UpdateInput polls raw input and updates the Input component.
// Must run BEFORE UpdateMenu in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])
	analogLeft, analogRight, analogUp, analogDown, analogGpID := getAnalogStickState(gamepadIDs)

	var keyboardUsed, gamepadUsed bool
	var activeGamepadID ebiten.GamepadID

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
				keyboardUsed = true
			}
		}

		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
					gamepadUsed = true
					activeGamepadID = gpID
				}
			}
		}
	}

	// Merge analog stick into directional actions
	for _, a := range []struct {
		on bool
		id cfg.ActionID
	}{
		{analogLeft, cfg.ActionMenuLeft},
		{analogRight, cfg.ActionMenuRight},
		{analogUp, cfg.ActionMenuUp},
		{analogDown, cfg.ActionMenuDown},
	} {
		if a.on {
			input.Current[a.id] = true
			gamepadUsed = true
			activeGamepadID = analogGpID
		}
	}

	// Gamepad takes priority if both used
	if gamepadUsed {
		input.LastInputMethod = getControllerType(activeGamepadID)
	} else if keyboardUsed {
		input.LastInputMethod = components.InputKeyboard
	}
}

// InputHint describes the menu controls for an input device.
func InputHint(m components.InputMethod) string {
	switch m {
	case components.InputXbox:
		return "d-pad moves, A selects, B goes back"
	case components.InputPlayStation:
		return "d-pad moves, cross selects, circle goes back"
	default:
		return "arrows move, enter selects, esc goes back"
	}
}

// getControllerType returns cached controller type, detecting on first access
func getControllerType(gpID ebiten.GamepadID) components.InputMethod {
	if method, ok := controllerTypeCache[gpID]; ok {
		return method
	}

	name := strings.ToLower(ebiten.GamepadName(gpID))
	method := components.InputXbox
	for _, tag := range []string{"ps4", "ps5", "playstation", "dualshock", "dualsense"} {
		if strings.Contains(name, tag) {
			method = components.InputPlayStation
			break
		}
	}

	controllerTypeCache[gpID] = method
	return method
}

// getAnalogStickState reads the left analog stick from all gamepads
func getAnalogStickState(gamepads []ebiten.GamepadID) (left, right, up, down bool, activeGpID ebiten.GamepadID) {
	deadzone := cfg.Input.AnalogDeadzone

	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}

		horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		vertical := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)

		if horizontal < -deadzone {
			left = true
			activeGpID = gpID
		}
		if horizontal > deadzone {
			right = true
			activeGpID = gpID
		}
		if vertical < -deadzone {
			up = true
			activeGpID = gpID
		}
		if vertical > deadzone {
			down = true
			activeGpID = gpID
		}
	}

	return
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
	}
	return components.Input.Get(entry)
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

// PendingMenuActions returns the menu actions pressed this frame, in
// dispatch order.
func PendingMenuActions(input *components.InputData) []menu.Action {
	var out []menu.Action
	for _, m := range menuActions {
		if GetAction(input, m.id).JustPressed {
			out = append(out, m.action)
		}
	}
	return out
}
