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

package sdl

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/ember3d/ember/curated"
	"github.com/ember3d/ember/input"
	"github.com/ember3d/ember/logger"
)

// addController opens the game controller at the device index and adds it
// to the input service. Joysticks without a controller mapping are ignored.
func (s *Source) addController(idx int) {
	if !sdl.IsGameController(idx) {
		return
	}

	pad := sdl.GameControllerOpen(idx)
	if pad == nil || !pad.Attached() {
		return
	}

	joy := pad.Joystick()
	id := productID(joy)
	name := pad.Name()
	if name == "" {
		name = "Gamepad"
	}

	slot := s.in.AddGamepad(input.NewGamepad(&controllerDriver{pad: pad}, id, name))
	if slot < 0 {
		pad.Close()
		return
	}
	s.pads[joy.InstanceID()] = id
	logger.Logf(logger.Allow, "sdl", "gamepad: %s", name)
}

// productID derives a product identity from the joystick GUID and instance
// ID. The instance ID keeps two identical controllers distinct.
func productID(joy *sdl.Joystick) input.ProductID {
	var id input.ProductID
	copy(id[:], sdl.JoystickGetGUIDString(joy.GUID()))
	instance := uint32(joy.InstanceID())
	id[12] ^= byte(instance >> 24)
	id[13] ^= byte(instance >> 16)
	id[14] ^= byte(instance >> 8)
	id[15] ^= byte(instance)
	return id
}

// controllerDriver adapts an SDL game controller to the GamepadDriver
// interface.
type controllerDriver struct {
	pad *sdl.GameController
}

// raw SDL axis ranges
const (
	stickRange   = 32767.0
	triggerRange = 32767.0
)

func stickValue(v int16) float32 {
	f := float32(v) / stickRange
	if f < -1 {
		f = -1
	}
	return f
}

// UpdateRawState implements the input.GamepadDriver interface.
func (d *controllerDriver) UpdateRawState(raw *input.GamepadState) bool {
	if !d.pad.Attached() {
		return true
	}

	held := func(b sdl.GameControllerButton) bool {
		return d.pad.Button(b) == sdl.PRESSED
	}

	raw.Buttons[input.GamepadButtonA] = held(sdl.CONTROLLER_BUTTON_A)
	raw.Buttons[input.GamepadButtonB] = held(sdl.CONTROLLER_BUTTON_B)
	raw.Buttons[input.GamepadButtonX] = held(sdl.CONTROLLER_BUTTON_X)
	raw.Buttons[input.GamepadButtonY] = held(sdl.CONTROLLER_BUTTON_Y)
	raw.Buttons[input.GamepadButtonStart] = held(sdl.CONTROLLER_BUTTON_START)
	raw.Buttons[input.GamepadButtonBack] = held(sdl.CONTROLLER_BUTTON_BACK)
	raw.Buttons[input.GamepadButtonLeftThumb] = held(sdl.CONTROLLER_BUTTON_LEFTSTICK)
	raw.Buttons[input.GamepadButtonRightThumb] = held(sdl.CONTROLLER_BUTTON_RIGHTSTICK)
	raw.Buttons[input.GamepadButtonLeftShoulder] = held(sdl.CONTROLLER_BUTTON_LEFTSHOULDER)
	raw.Buttons[input.GamepadButtonRightShoulder] = held(sdl.CONTROLLER_BUTTON_RIGHTSHOULDER)
	raw.Buttons[input.GamepadButtonDPadUp] = held(sdl.CONTROLLER_BUTTON_DPAD_UP)
	raw.Buttons[input.GamepadButtonDPadDown] = held(sdl.CONTROLLER_BUTTON_DPAD_DOWN)
	raw.Buttons[input.GamepadButtonDPadLeft] = held(sdl.CONTROLLER_BUTTON_DPAD_LEFT)
	raw.Buttons[input.GamepadButtonDPadRight] = held(sdl.CONTROLLER_BUTTON_DPAD_RIGHT)

	lx := stickValue(d.pad.Axis(sdl.CONTROLLER_AXIS_LEFTX))
	ly := -stickValue(d.pad.Axis(sdl.CONTROLLER_AXIS_LEFTY))
	rx := stickValue(d.pad.Axis(sdl.CONTROLLER_AXIS_RIGHTX))
	ry := -stickValue(d.pad.Axis(sdl.CONTROLLER_AXIS_RIGHTY))
	lt := float32(d.pad.Axis(sdl.CONTROLLER_AXIS_TRIGGERLEFT)) / triggerRange
	rt := float32(d.pad.Axis(sdl.CONTROLLER_AXIS_TRIGGERRIGHT)) / triggerRange

	raw.Axes[input.GamepadAxisLeftStickX] = lx
	raw.Axes[input.GamepadAxisLeftStickY] = ly
	raw.Axes[input.GamepadAxisRightStickX] = rx
	raw.Axes[input.GamepadAxisRightStickY] = ry
	raw.Axes[input.GamepadAxisLeftTrigger] = lt
	raw.Axes[input.GamepadAxisRightTrigger] = rt

	applyPseudoButtons(raw, lx, ly, rx, ry, lt, rt)

	return false
}

// applyPseudoButtons derives the trigger and stick-direction buttons from
// the axis values using the universal thresholds.
func applyPseudoButtons(raw *input.GamepadState, lx, ly, rx, ry, lt, rt float32) {
	raw.Buttons[input.GamepadButtonLeftTrigger] = lt > input.TriggerThreshold
	raw.Buttons[input.GamepadButtonRightTrigger] = rt > input.TriggerThreshold

	raw.Buttons[input.GamepadButtonLeftStickUp] = ly > input.LeftStickDeadzone
	raw.Buttons[input.GamepadButtonLeftStickDown] = ly < -input.LeftStickDeadzone
	raw.Buttons[input.GamepadButtonLeftStickLeft] = lx < -input.LeftStickDeadzone
	raw.Buttons[input.GamepadButtonLeftStickRight] = lx > input.LeftStickDeadzone

	raw.Buttons[input.GamepadButtonRightStickUp] = ry > input.RightStickDeadzone
	raw.Buttons[input.GamepadButtonRightStickDown] = ry < -input.RightStickDeadzone
	raw.Buttons[input.GamepadButtonRightStickLeft] = rx < -input.RightStickDeadzone
	raw.Buttons[input.GamepadButtonRightStickRight] = rx > input.RightStickDeadzone
}

// SetVibration implements the input.GamepadDriver interface. SDL exposes
// two rumble motors; the four motor state collapses to one per side.
func (d *controllerDriver) SetVibration(v input.GamepadVibration) error {
	// SDL rumble is time-limited; a long duration keeps the motors running
	// until the next call changes them
	const duration = 3600 * 1000

	left, right := v.TwoMotor()
	if err := d.pad.Rumble(uint16(left*0xffff), uint16(right*0xffff), duration); err != nil {
		return curated.Errorf("sdl: %v", err)
	}
	return nil
}

// SetColor implements the input.GamepadDriver interface. SDL2 as wrapped
// here has no LED control.
func (d *controllerDriver) SetColor(r, g, b uint8) error {
	return curated.Errorf(input.UnsupportedError, "LED colour")
}

// Close implements the input.GamepadDriver interface.
func (d *controllerDriver) Close() {
	d.pad.Close()
}
