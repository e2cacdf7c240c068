// This file is part of Ember.
//
// Ember is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Ember is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Ember.  If not, see <https://www.gnu.org/licenses/>.

package input

// ActionMode selects which phase of a binding's press cycle makes a virtual
// action read as active.
type ActionMode int

// List of action trigger modes.
const (
	// ActionModePressing matches every frame the binding is held.
	ActionModePressing ActionMode = iota

	// ActionModePress matches only the first frame the binding is held.
	ActionModePress

	// ActionModeRelease matches only the frame the binding is released.
	ActionModeRelease
)

func (m ActionMode) String() string {
	switch m {
	case ActionModePress:
		return "Press"
	case ActionModeRelease:
		return "Release"
	}
	return "Pressing"
}

// ParseActionMode returns the ActionMode with the given canonical name.
func ParseActionMode(name string) ActionMode {
	switch name {
	case "Press":
		return ActionModePress
	case "Release":
		return ActionModeRelease
	}
	return ActionModePressing
}

// ActionState is the per-frame state of a virtual action's press cycle.
type ActionState int

// List of action states. The cycle is None -> Waiting -> Press ->
// Pressing -> Release -> Waiting; no state is ever skipped.
const (
	ActionStateNone ActionState = iota
	ActionStateWaiting
	ActionStatePressing
	ActionStatePress
	ActionStateRelease
)

func (s ActionState) String() string {
	switch s {
	case ActionStateWaiting:
		return "Waiting"
	case ActionStatePressing:
		return "Pressing"
	case ActionStatePress:
		return "Press"
	case ActionStateRelease:
		return "Release"
	}
	return "None"
}

// GamepadIndex selects which gamepad a binding reads.
type GamepadIndex int

// GamepadIndexAll makes a binding read every connected gamepad. With no
// gamepad connected such a binding evaluates to not-pressed / 0.
const GamepadIndexAll GamepadIndex = -1

// AxisType enumerates the physical sources a virtual axis can read.
type AxisType int

// List of axis types.
const (
	AxisTypeMouseX AxisType = iota
	AxisTypeMouseY
	AxisTypeMouseWheel
	AxisTypeGamepadLeftStickX
	AxisTypeGamepadLeftStickY
	AxisTypeGamepadRightStickX
	AxisTypeGamepadRightStickY
	AxisTypeGamepadLeftTrigger
	AxisTypeGamepadRightTrigger
	AxisTypeGamepadDPadX
	AxisTypeGamepadDPadY
	AxisTypeKeyboardOnly
)

var axisTypeNames = map[AxisType]string{
	AxisTypeMouseX:              "MouseX",
	AxisTypeMouseY:              "MouseY",
	AxisTypeMouseWheel:          "MouseWheel",
	AxisTypeGamepadLeftStickX:   "GamepadLeftStickX",
	AxisTypeGamepadLeftStickY:   "GamepadLeftStickY",
	AxisTypeGamepadRightStickX:  "GamepadRightStickX",
	AxisTypeGamepadRightStickY:  "GamepadRightStickY",
	AxisTypeGamepadLeftTrigger:  "GamepadLeftTrigger",
	AxisTypeGamepadRightTrigger: "GamepadRightTrigger",
	AxisTypeGamepadDPadX:        "GamepadDPadX",
	AxisTypeGamepadDPadY:        "GamepadDPadY",
	AxisTypeKeyboardOnly:        "KeyboardOnly",
}

func (t AxisType) String() string {
	if s, ok := axisTypeNames[t]; ok {
		return s
	}
	return "KeyboardOnly"
}

// ParseAxisType returns the AxisType with the given canonical name.
func ParseAxisType(name string) AxisType {
	for t, s := range axisTypeNames {
		if s == name {
			return t
		}
	}
	return AxisTypeKeyboardOnly
}

// ActionConfig binds a named virtual action to physical inputs. Several
// entries may share a name; the logical action is the OR of its entries.
type ActionConfig struct {
	Name          string
	Mode          ActionMode
	Key           Key
	MouseButton   MouseButton
	GamepadButton GamepadButton
	Gamepad       GamepadIndex
}

// AxisConfig binds a named virtual axis to a physical source. Several
// entries may share a name; the logical axis is the sum of its entries.
type AxisConfig struct {
	Name    string
	Axis    AxisType
	Gamepad GamepadIndex

	PositiveKey Key
	NegativeKey Key

	PositiveButton GamepadButton
	NegativeButton GamepadButton

	// DeadZone zeroes any raw value of smaller magnitude.
	DeadZone float32

	// Sensitivity scales mouse input and is the rate (units per second) at
	// which the smoothed value moves towards the raw value.
	Sensitivity float32

	// Gravity is the rate (units per second) at which the smoothed value
	// decays towards zero when the raw value is zero.
	Gravity float32

	// Scale multiplies the final value.
	Scale float32

	// Snap resets the smoothed value to zero when the raw value changes
	// sign.
	Snap bool
}
