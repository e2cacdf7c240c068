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

//go:build linux

package evdev

import (
	"encoding/binary"
	"unsafe"

	"github.com/ember3d/ember/curated"
	"github.com/ember3d/ember/input"
	"github.com/ember3d/ember/logger"
)

// gamepad button codes
const (
	btnSouth  = 0x130
	btnEast   = 0x131
	btnNorth  = 0x133
	btnWest   = 0x134
	btnTL     = 0x136
	btnTR     = 0x137
	btnSelect = 0x13a
	btnStart  = 0x13b
	btnThumbL = 0x13d
	btnThumbR = 0x13e

	btnDpadUp    = 0x220
	btnDpadDown  = 0x221
	btnDpadLeft  = 0x222
	btnDpadRight = 0x223
)

// absolute axis codes
const (
	absX     = 0x00
	absY     = 0x01
	absZ     = 0x02
	absRX    = 0x03
	absRY    = 0x04
	absRZ    = 0x05
	absHat0X = 0x10
	absHat0Y = 0x11
)

// gamepadButtons maps the BTN_* codes to the universal button enumeration.
// The four face buttons follow the Linux gamepad convention for pads with
// an Xbox style layout.
var gamepadButtons = map[uint16]input.GamepadButton{
	btnSouth:     input.GamepadButtonA,
	btnEast:      input.GamepadButtonB,
	btnNorth:     input.GamepadButtonX,
	btnWest:      input.GamepadButtonY,
	btnTL:        input.GamepadButtonLeftShoulder,
	btnTR:        input.GamepadButtonRightShoulder,
	btnSelect:    input.GamepadButtonBack,
	btnStart:     input.GamepadButtonStart,
	btnThumbL:    input.GamepadButtonLeftThumb,
	btnThumbR:    input.GamepadButtonRightThumb,
	btnDpadUp:    input.GamepadButtonDPadUp,
	btnDpadDown:  input.GamepadButtonDPadDown,
	btnDpadLeft:  input.GamepadButtonDPadLeft,
	btnDpadRight: input.GamepadButtonDPadRight,
}

// axisRange scales a raw absolute value into [-1, 1] (sticks) or [0, 1]
// (triggers).
type axisRange struct {
	min float32
	max float32
}

func (r axisRange) stick(v int32) float32 {
	if r.max == r.min {
		return 0
	}
	return (float32(v)-r.min)/(r.max-r.min)*2 - 1
}

func (r axisRange) trigger(v int32) float32 {
	if r.max == r.min {
		return 0
	}
	return (float32(v) - r.min) / (r.max - r.min)
}

// gamepadDriver adapts an evdev gamepad node to the GamepadDriver
// interface. The Source decodes events into the cached state on the main
// thread; UpdateRawState only copies it out.
type gamepadDriver struct {
	dev    *device
	ranges map[uint16]axisRange
	state  input.GamepadState
	gone   bool

	// force feedback effect slot, -1 until the first upload
	ffID int16
	ffOK bool
}

func newGamepadDriver(dev *device) *gamepadDriver {
	d := &gamepadDriver{
		dev:    dev,
		ranges: make(map[uint16]axisRange),
		ffID:   -1,
	}

	for _, axis := range []uint16{absX, absY, absZ, absRX, absRY, absRZ} {
		info, err := dev.absInfo(uintptr(axis))
		if err != nil {
			continue
		}
		d.ranges[axis] = axisRange{
			min: float32(info.minimum),
			max: float32(info.maximum),
		}
	}

	if bits, err := dev.bits(0); err == nil {
		d.ffOK = hasBit(bits, evFF)
	}

	return d
}

// decode folds a single evdev event into the cached state.
func (d *gamepadDriver) decode(ev event) {
	switch ev.typ {
	case evKey:
		if b, ok := gamepadButtons[ev.code]; ok {
			d.state.Buttons[b] = ev.value != 0
		}

	case evAbs:
		switch ev.code {
		case absX:
			d.state.Axes[input.GamepadAxisLeftStickX] = d.ranges[absX].stick(ev.value)
		case absY:
			// evdev reports +Y down; the universal convention is +Y up
			d.state.Axes[input.GamepadAxisLeftStickY] = -d.ranges[absY].stick(ev.value)
		case absRX:
			d.state.Axes[input.GamepadAxisRightStickX] = d.ranges[absRX].stick(ev.value)
		case absRY:
			d.state.Axes[input.GamepadAxisRightStickY] = -d.ranges[absRY].stick(ev.value)
		case absZ:
			d.state.Axes[input.GamepadAxisLeftTrigger] = d.ranges[absZ].trigger(ev.value)
		case absRZ:
			d.state.Axes[input.GamepadAxisRightTrigger] = d.ranges[absRZ].trigger(ev.value)
		case absHat0X:
			d.state.Buttons[input.GamepadButtonDPadLeft] = ev.value < 0
			d.state.Buttons[input.GamepadButtonDPadRight] = ev.value > 0
		case absHat0Y:
			d.state.Buttons[input.GamepadButtonDPadUp] = ev.value < 0
			d.state.Buttons[input.GamepadButtonDPadDown] = ev.value > 0
		}
	}
}

// UpdateRawState implements the input.GamepadDriver interface.
func (d *gamepadDriver) UpdateRawState(raw *input.GamepadState) bool {
	if d.gone {
		return true
	}

	*raw = d.state

	lt := raw.Axes[input.GamepadAxisLeftTrigger]
	rt := raw.Axes[input.GamepadAxisRightTrigger]
	raw.Buttons[input.GamepadButtonLeftTrigger] = lt > input.TriggerThreshold
	raw.Buttons[input.GamepadButtonRightTrigger] = rt > input.TriggerThreshold

	lx := raw.Axes[input.GamepadAxisLeftStickX]
	ly := raw.Axes[input.GamepadAxisLeftStickY]
	raw.Buttons[input.GamepadButtonLeftStickUp] = ly > input.LeftStickDeadzone
	raw.Buttons[input.GamepadButtonLeftStickDown] = ly < -input.LeftStickDeadzone
	raw.Buttons[input.GamepadButtonLeftStickLeft] = lx < -input.LeftStickDeadzone
	raw.Buttons[input.GamepadButtonLeftStickRight] = lx > input.LeftStickDeadzone

	rx := raw.Axes[input.GamepadAxisRightStickX]
	ry := raw.Axes[input.GamepadAxisRightStickY]
	raw.Buttons[input.GamepadButtonRightStickUp] = ry > input.RightStickDeadzone
	raw.Buttons[input.GamepadButtonRightStickDown] = ry < -input.RightStickDeadzone
	raw.Buttons[input.GamepadButtonRightStickLeft] = rx < -input.RightStickDeadzone
	raw.Buttons[input.GamepadButtonRightStickRight] = rx > input.RightStickDeadzone

	return false
}

// sizeof(struct ff_effect) on 64-bit
const ffEffectSize = 48

// SetVibration implements the input.GamepadDriver interface. The four
// motor state collapses to an FF_RUMBLE effect with a strong and a weak
// magnitude.
func (d *gamepadDriver) SetVibration(v input.GamepadVibration) error {
	if !d.ffOK {
		return curated.Errorf(input.UnsupportedError, "force feedback")
	}

	left, right := v.TwoMotor()

	// struct ff_effect with the rumble union member. the replay length is
	// long; the effect runs until replaced
	var effect [ffEffectSize]byte
	const ffRumble = 0x50
	binary.LittleEndian.PutUint16(effect[0:], ffRumble)
	binary.LittleEndian.PutUint16(effect[2:], uint16(d.ffID))
	binary.LittleEndian.PutUint16(effect[10:], 0xffff)             // replay.length ms
	binary.LittleEndian.PutUint16(effect[16:], uint16(left*0xffff))  // strong
	binary.LittleEndian.PutUint16(effect[18:], uint16(right*0xffff)) // weak

	if err := d.dev.ioctl(eviocsff, unsafe.Pointer(&effect[0])); err != nil {
		return curated.Errorf("evdev: %s: %v", d.dev.path, err)
	}
	d.ffID = int16(binary.LittleEndian.Uint16(effect[2:]))

	return d.dev.writeEvent(event{typ: evFF, code: uint16(d.ffID), value: 1})
}

// SetColor implements the input.GamepadDriver interface. evdev exposes no
// LED control for gamepads.
func (d *gamepadDriver) SetColor(r, g, b uint8) error {
	return curated.Errorf(input.UnsupportedError, "LED colour")
}

// Close implements the input.GamepadDriver interface.
func (d *gamepadDriver) Close() {
	if d.ffID >= 0 {
		id := int32(d.ffID)
		if err := d.dev.ioctl(eviocrmff, unsafe.Pointer(&id)); err != nil {
			logger.Logf(logger.Allow, "evdev", "removing effect: %v", err)
		}
	}
	d.dev.close()
}
