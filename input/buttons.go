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

// MouseButton enumerates the mouse buttons tracked by the Mouse device.
type MouseButton int

// List of mouse buttons.
const (
	MouseButtonNone MouseButton = iota
	MouseButtonLeft
	MouseButtonMiddle
	MouseButtonRight
	MouseButtonExtended1
	MouseButtonExtended2

	// MouseButtonMax is not a button. It is the size of the button state
	// vector.
	MouseButtonMax
)

func (b MouseButton) String() string {
	switch b {
	case MouseButtonLeft:
		return "Left"
	case MouseButtonMiddle:
		return "Middle"
	case MouseButtonRight:
		return "Right"
	case MouseButtonExtended1:
		return "Extended1"
	case MouseButtonExtended2:
		return "Extended2"
	}
	return "None"
}

// ParseMouseButton returns the MouseButton with the given canonical name.
func ParseMouseButton(name string) MouseButton {
	for b := MouseButtonNone; b < MouseButtonMax; b++ {
		if b.String() == name {
			return b
		}
	}
	return MouseButtonNone
}

// CursorLockMode enumerates the ways the cursor can be constrained.
type CursorLockMode int

// List of cursor lock modes.
const (
	CursorLockNone CursorLockMode = iota
	CursorLockLocked
	CursorLockClipped
)

// GamepadAxis enumerates the universal gamepad axes. Stick axes are
// normalised to [-1, +1] with +Y meaning up; trigger axes are normalised to
// [0, 1].
type GamepadAxis int

// List of universal gamepad axes.
const (
	GamepadAxisLeftStickX GamepadAxis = iota
	GamepadAxisLeftStickY
	GamepadAxisRightStickX
	GamepadAxisRightStickY
	GamepadAxisLeftTrigger
	GamepadAxisRightTrigger

	// GamepadAxisMax is not an axis. It is the size of the axis state
	// vector.
	GamepadAxisMax
)

func (a GamepadAxis) String() string {
	switch a {
	case GamepadAxisLeftStickX:
		return "LeftStickX"
	case GamepadAxisLeftStickY:
		return "LeftStickY"
	case GamepadAxisRightStickX:
		return "RightStickX"
	case GamepadAxisRightStickY:
		return "RightStickY"
	case GamepadAxisLeftTrigger:
		return "LeftTrigger"
	case GamepadAxisRightTrigger:
		return "RightTrigger"
	}
	return "LeftStickX"
}

// GamepadButton enumerates the universal gamepad buttons. The stick
// direction and trigger entries are pseudo-buttons derived from the axis
// values by the backends.
type GamepadButton int

// List of universal gamepad buttons.
const (
	GamepadButtonNone GamepadButton = iota
	GamepadButtonDPadUp
	GamepadButtonDPadDown
	GamepadButtonDPadLeft
	GamepadButtonDPadRight
	GamepadButtonStart
	GamepadButtonBack
	GamepadButtonLeftThumb
	GamepadButtonRightThumb
	GamepadButtonLeftShoulder
	GamepadButtonRightShoulder
	GamepadButtonLeftTrigger
	GamepadButtonRightTrigger
	GamepadButtonA
	GamepadButtonB
	GamepadButtonX
	GamepadButtonY
	GamepadButtonLeftStickUp
	GamepadButtonLeftStickDown
	GamepadButtonLeftStickLeft
	GamepadButtonLeftStickRight
	GamepadButtonRightStickUp
	GamepadButtonRightStickDown
	GamepadButtonRightStickLeft
	GamepadButtonRightStickRight

	// GamepadButtonMax is not a button. It is the size of the button state
	// vector.
	GamepadButtonMax
)

var gamepadButtonNames = map[GamepadButton]string{
	GamepadButtonNone:            "None",
	GamepadButtonDPadUp:          "DPadUp",
	GamepadButtonDPadDown:        "DPadDown",
	GamepadButtonDPadLeft:        "DPadLeft",
	GamepadButtonDPadRight:       "DPadRight",
	GamepadButtonStart:           "Start",
	GamepadButtonBack:            "Back",
	GamepadButtonLeftThumb:       "LeftThumb",
	GamepadButtonRightThumb:      "RightThumb",
	GamepadButtonLeftShoulder:    "LeftShoulder",
	GamepadButtonRightShoulder:   "RightShoulder",
	GamepadButtonLeftTrigger:     "LeftTrigger",
	GamepadButtonRightTrigger:    "RightTrigger",
	GamepadButtonA:               "A",
	GamepadButtonB:               "B",
	GamepadButtonX:               "X",
	GamepadButtonY:               "Y",
	GamepadButtonLeftStickUp:     "LeftStickUp",
	GamepadButtonLeftStickDown:   "LeftStickDown",
	GamepadButtonLeftStickLeft:   "LeftStickLeft",
	GamepadButtonLeftStickRight:  "LeftStickRight",
	GamepadButtonRightStickUp:    "RightStickUp",
	GamepadButtonRightStickDown:  "RightStickDown",
	GamepadButtonRightStickLeft:  "RightStickLeft",
	GamepadButtonRightStickRight: "RightStickRight",
}

func (b GamepadButton) String() string {
	if s, ok := gamepadButtonNames[b]; ok {
		return s
	}
	return "None"
}

// ParseGamepadButton returns the GamepadButton with the given canonical
// name. Unknown names parse to GamepadButtonNone.
func ParseGamepadButton(name string) GamepadButton {
	for b, s := range gamepadButtonNames {
		if s == name {
			return b
		}
	}
	return GamepadButtonNone
}

// ParseGamepadAxis returns the GamepadAxis with the given canonical name.
func ParseGamepadAxis(name string) GamepadAxis {
	for a := GamepadAxis(0); a < GamepadAxisMax; a++ {
		if a.String() == name {
			return a
		}
	}
	return GamepadAxisLeftStickX
}
