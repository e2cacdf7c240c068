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

// change in a smoothed axis value smaller than this does not fire the
// AxisValueChanged delegate.
const axisEpsilon = 1e-4

// axisRuntime is the per-name cached state of a virtual axis. value is the
// smoothed pre-scale value; out is the scaled value the queries observe.
type axisRuntime struct {
	value   float32
	raw     float32
	out     float32
	prevOut float32
}

func moveTowards(current, target, maxDelta float32) float32 {
	if current < target {
		current += maxDelta
		if current > target {
			current = target
		}
	} else if current > target {
		current -= maxDelta
		if current < target {
			current = target
		}
	}
	return current
}

// gamepadAxisValue reads a mapped axis from a single pad or, for
// GamepadIndexAll, the largest magnitude value across every connected pad.
func (in *Input) gamepadAxisValue(idx GamepadIndex, axis GamepadAxis) float32 {
	if idx != GamepadIndexAll {
		if pad := in.GamepadAt(int(idx)); pad != nil {
			return pad.Axis(axis)
		}
		return 0
	}

	var best float32
	for _, pad := range in.gamepads {
		if pad == nil {
			continue
		}
		if v := pad.Axis(axis); abs32(v) > abs32(best) {
			best = v
		}
	}
	return best
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func (in *Input) gamepadButtonHeld(idx GamepadIndex, b GamepadButton) bool {
	if b <= GamepadButtonNone || b >= GamepadButtonMax {
		return false
	}
	if idx == GamepadIndexAll {
		for _, pad := range in.gamepads {
			if pad != nil && pad.Button(b) {
				return true
			}
		}
		return false
	}
	pad := in.GamepadAt(int(idx))
	return pad != nil && pad.Button(b)
}

// axisRawValue gathers the raw value of a single axis entry and applies its
// deadzone.
func (in *Input) axisRawValue(cfg AxisConfig) float32 {
	var raw float32

	switch cfg.Axis {
	case AxisTypeMouseX:
		if in.Mouse != nil {
			raw = in.Mouse.PositionDelta().X * cfg.Sensitivity
		}
	case AxisTypeMouseY:
		if in.Mouse != nil {
			raw = in.Mouse.PositionDelta().Y * cfg.Sensitivity
		}
	case AxisTypeMouseWheel:
		if in.Mouse != nil {
			raw = in.Mouse.ScrollDelta() * cfg.Sensitivity
		}
	case AxisTypeGamepadLeftStickX:
		raw = in.gamepadAxisValue(cfg.Gamepad, GamepadAxisLeftStickX)
	case AxisTypeGamepadLeftStickY:
		raw = in.gamepadAxisValue(cfg.Gamepad, GamepadAxisLeftStickY)
	case AxisTypeGamepadRightStickX:
		raw = in.gamepadAxisValue(cfg.Gamepad, GamepadAxisRightStickX)
	case AxisTypeGamepadRightStickY:
		raw = in.gamepadAxisValue(cfg.Gamepad, GamepadAxisRightStickY)
	case AxisTypeGamepadLeftTrigger:
		raw = in.gamepadAxisValue(cfg.Gamepad, GamepadAxisLeftTrigger)
	case AxisTypeGamepadRightTrigger:
		raw = in.gamepadAxisValue(cfg.Gamepad, GamepadAxisRightTrigger)
	case AxisTypeGamepadDPadX:
		if in.gamepadButtonHeld(cfg.Gamepad, GamepadButtonDPadRight) {
			raw += 1
		}
		if in.gamepadButtonHeld(cfg.Gamepad, GamepadButtonDPadLeft) {
			raw -= 1
		}
	case AxisTypeGamepadDPadY:
		if in.gamepadButtonHeld(cfg.Gamepad, GamepadButtonDPadUp) {
			raw += 1
		}
		if in.gamepadButtonHeld(cfg.Gamepad, GamepadButtonDPadDown) {
			raw -= 1
		}
	case AxisTypeKeyboardOnly:
		// nothing; the key and button contributions below carry the value
	}

	// key and button contributions apply to every axis type
	if in.Keyboard != nil {
		if in.Keyboard.Key(cfg.PositiveKey) {
			raw += 1
		}
		if in.Keyboard.Key(cfg.NegativeKey) {
			raw -= 1
		}
	}
	if in.gamepadButtonHeld(cfg.Gamepad, cfg.PositiveButton) {
		raw += 1
	}
	if in.gamepadButtonHeld(cfg.Gamepad, cfg.NegativeButton) {
		raw -= 1
	}

	if abs32(raw) < cfg.DeadZone {
		raw = 0
	}
	return raw
}

// evaluateAxes integrates every named axis for the frame and fires the
// AxisValueChanged delegate where the smoothed value moved by more than
// epsilon.
func (in *Input) evaluateAxes(dt float32) {
	seen := make(map[string]bool, len(in.axes))

	for i := range in.axes {
		cfg := in.axes[i]
		if seen[cfg.Name] {
			continue
		}
		seen[cfg.Name] = true

		// the logical axis is the sum of every entry with the name.
		// smoothing parameters come from the first entry.
		var raw float32
		for j := range in.axes {
			if in.axes[j].Name == cfg.Name {
				raw += in.axisRawValue(in.axes[j])
			}
		}

		rt := in.axisState[cfg.Name]
		if rt == nil {
			rt = &axisRuntime{}
			in.axisState[cfg.Name] = rt
		}
		rt.raw = raw

		if raw != 0 {
			if cfg.Snap && ((raw > 0 && rt.value < 0) || (raw < 0 && rt.value > 0)) {
				rt.value = 0
			}
			rt.value = moveTowards(rt.value, raw, cfg.Sensitivity*dt)
		} else {
			rt.value = moveTowards(rt.value, 0, cfg.Gravity*dt)
		}

		rt.prevOut = rt.out
		rt.out = rt.value * cfg.Scale

		if abs32(rt.out-rt.prevOut) > axisEpsilon && in.Delegates.AxisValueChanged != nil {
			in.Delegates.AxisValueChanged(cfg.Name, rt.out)
		}
	}
}

// Axis returns the smoothed value of the named virtual axis. Unknown names
// return 0.
func (in *Input) Axis(name string) float32 {
	if rt, ok := in.axisState[name]; ok {
		return rt.out
	}
	return 0
}

// AxisRaw returns the pre-smoothing value of the named virtual axis, after
// deadzone. Unknown names return 0.
func (in *Input) AxisRaw(name string) float32 {
	if rt, ok := in.axisState[name]; ok {
		return rt.raw
	}
	return 0
}
