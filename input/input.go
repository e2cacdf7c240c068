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

import (
	"github.com/ember3d/ember/logger"
)

// Source is a platform backend feeding the input service. Pump() translates
// any pending native events and pushes them through the device ingress
// functions. All Source functions are called on the main thread.
type Source interface {
	// ID identifies the backend in log messages.
	ID() string

	// Pump translates pending native events through the device ingress.
	Pump() error

	// Close shuts the backend down and releases native resources.
	Close() error
}

// Input is the process-wide input service. Create with NewInput(), call
// Frame() once per frame after platform event pumping and release with
// Close().
type Input struct {
	Keyboard *Keyboard
	Mouse    *Mouse

	Delegates Delegates

	gamepads [MaxGamepads]*Gamepad

	// custom devices update after the gamepads
	devices []Device

	sources []Source

	// touch ingress has no backing device; the facade owns the queue
	touch Queue

	actions     []ActionConfig
	axes        []AxisConfig
	actionState map[string]*actionRuntime
	axisState   map[string]*axisRuntime

	// actions grouped by name, rebuilt by SetMappings(). the per-frame
	// evaluation walks the groups rather than re-scanning the action list
	actionGroups []actionGroup

	gamepadsChanged bool
	focused         bool

	sink Sink
}

// NewInput is the preferred method of initialisation of the Input type.
// The keyboard and mouse devices exist for the service's whole lifetime;
// gamepads come and go with hot-plug notifications.
func NewInput() *Input {
	return &Input{
		Keyboard:    NewKeyboard(),
		Mouse:       NewMouse(),
		actionState: make(map[string]*actionRuntime),
		axisState:   make(map[string]*axisRuntime),
		focused:     true,
	}
}

// AddSource registers a platform backend with the service.
func (in *Input) AddSource(s Source) {
	in.sources = append(in.sources, s)
}

// AddDevice registers a custom device. It updates after the keyboard, the
// mouse and the gamepads.
func (in *Input) AddDevice(d Device) {
	in.devices = append(in.devices, d)
}

// Close releases every device and backend.
func (in *Input) Close() {
	for i, pad := range in.gamepads {
		if pad != nil {
			pad.release()
			in.gamepads[i] = nil
		}
	}
	for _, s := range in.sources {
		if err := s.Close(); err != nil {
			logger.Logf(logger.Allow, "input", "closing %s: %v", s.ID(), err)
		}
	}
	in.sources = in.sources[:0]
	in.devices = in.devices[:0]
}

// Frame runs the input phase. Call once per frame from the main thread:
//
//  1. every backend pumps its native events through the device ingress
//  2. devices update in order keyboard, mouse, gamepads, custom;
//     a disconnected device is released at the end of the frame
//  3. the collected events fire the corresponding delegates
//  4. action and axis mappings are evaluated and fire their delegates
//
// dt is the frame duration in seconds; it drives axis smoothing.
func (in *Input) Frame(dt float32) {
	for _, s := range in.sources {
		if err := s.Pump(); err != nil {
			logger.Logf(logger.Allow, "input", "pumping %s: %v", s.ID(), err)
		}
	}

	in.sink.Reset()

	if in.Keyboard != nil {
		in.Keyboard.Update(&in.sink)
	}
	if in.Mouse != nil {
		in.Mouse.Update(&in.sink)
	}
	for i, pad := range in.gamepads {
		if pad == nil {
			continue
		}
		if pad.Update(&in.sink) {
			logger.Logf(logger.Allow, "input", "gamepad disconnected: %s", pad.Name())
			pad.release()
			in.gamepads[i] = nil
			in.gamepadsChanged = true
		}
	}
	for i := 0; i < len(in.devices); {
		if in.devices[i].Update(&in.sink) {
			logger.Logf(logger.Allow, "input", "device disconnected: %s", in.devices[i].Name())
			in.devices = append(in.devices[:i], in.devices[i+1:]...)
			continue
		}
		i++
	}

	// touch events have no backing device; drain the facade's own queue
	in.touch.Drain(func(ev Event) {
		in.sink.Push(ev)
	})

	in.fire(&in.sink)

	in.evaluateActions()
	in.evaluateAxes(dt)

	if in.gamepadsChanged {
		in.gamepadsChanged = false
		if in.Delegates.GamepadsChanged != nil {
			in.Delegates.GamepadsChanged()
		}
	}
}

// OnTouchDown receives a touch contact from a backend.
func (in *Input) OnTouchDown(pos Vec2, pointer int, target WindowID) {
	in.touch.Push(EventTouchDown{Pos: pos, Pointer: pointer, Target: target})
}

// OnTouchMove receives a touch motion from a backend.
func (in *Input) OnTouchMove(pos Vec2, pointer int, target WindowID) {
	in.touch.Push(EventTouchMove{Pos: pos, Pointer: pointer, Target: target})
}

// OnTouchUp receives a touch lift from a backend.
func (in *Input) OnTouchUp(pos Vec2, pointer int, target WindowID) {
	in.touch.Push(EventTouchUp{Pos: pos, Pointer: pointer, Target: target})
}

// OnFocusLost resets every device so that no spurious edge can surface
// after events were missed while unfocused. The cursor clip is released but
// remembered.
func (in *Input) OnFocusLost() {
	in.focused = false
	if in.Mouse != nil {
		in.Mouse.suspendClip()
	}
	in.resetAllDevices()
}

// OnFocusGained re-applies the remembered cursor clip.
func (in *Input) OnFocusGained() {
	in.focused = true
	if in.Mouse != nil {
		in.Mouse.reapplyClip()
	}
}

// IsFocused returns true while a host window has focus.
func (in *Input) IsFocused() bool {
	return in.focused
}

func (in *Input) resetAllDevices() {
	if in.Keyboard != nil {
		in.Keyboard.ResetState()
	}
	if in.Mouse != nil {
		in.Mouse.ResetState()
	}
	for _, pad := range in.gamepads {
		if pad != nil {
			pad.ResetState()
		}
	}
	for _, d := range in.devices {
		d.ResetState()
	}
	in.touch.Reset()
}

// AddGamepad places a hot-plugged gamepad in the first free slot. A pad
// with a product identity already present is ignored; a full slot table
// refuses the pad. The GamepadsChanged delegate fires during the next
// Frame(). Returns the slot index or -1.
func (in *Input) AddGamepad(pad *Gamepad) int {
	for _, p := range in.gamepads {
		if p != nil && p.ID() == pad.ID() {
			return -1
		}
	}
	for i := range in.gamepads {
		if in.gamepads[i] == nil {
			in.gamepads[i] = pad
			in.gamepadsChanged = true
			logger.Logf(logger.Allow, "input", "gamepad connected: %s", pad.Name())
			return i
		}
	}
	logger.Logf(logger.Allow, "input", "no free slot for gamepad: %s", pad.Name())
	return -1
}

// RemoveGamepad releases the gamepad with the product identity. Backends
// call this on hot-unplug notifications.
func (in *Input) RemoveGamepad(id ProductID) {
	for i, pad := range in.gamepads {
		if pad != nil && pad.ID() == id {
			logger.Logf(logger.Allow, "input", "gamepad removed: %s", pad.Name())
			pad.release()
			in.gamepads[i] = nil
			in.gamepadsChanged = true
			return
		}
	}
}

// GamepadsCount returns the number of connected gamepads.
func (in *Input) GamepadsCount() int {
	n := 0
	for _, pad := range in.gamepads {
		if pad != nil {
			n++
		}
	}
	return n
}

// GamepadAt returns the n'th connected gamepad, counting over occupied
// slots, or nil for an invalid index.
func (in *Input) GamepadAt(index int) *Gamepad {
	if index < 0 {
		return nil
	}
	n := 0
	for _, pad := range in.gamepads {
		if pad == nil {
			continue
		}
		if n == index {
			return pad
		}
		n++
	}
	return nil
}

// GamepadButton returns true if the button is held on the indexed gamepad,
// or on any gamepad for index -1. Invalid indexes return false.
func (in *Input) GamepadButton(index int, b GamepadButton) bool {
	return in.gamepadButtonHeld(GamepadIndex(index), b)
}

// GamepadButtonDown is the edge variant of GamepadButton.
func (in *Input) GamepadButtonDown(index int, b GamepadButton) bool {
	if index < 0 {
		for _, pad := range in.gamepads {
			if pad != nil && pad.ButtonDown(b) {
				return true
			}
		}
		return false
	}
	pad := in.GamepadAt(index)
	return pad != nil && pad.ButtonDown(b)
}

// GamepadButtonUp is the edge variant of GamepadButton.
func (in *Input) GamepadButtonUp(index int, b GamepadButton) bool {
	if index < 0 {
		for _, pad := range in.gamepads {
			if pad != nil && pad.ButtonUp(b) {
				return true
			}
		}
		return false
	}
	pad := in.GamepadAt(index)
	return pad != nil && pad.ButtonUp(b)
}

// GamepadAxis returns the mapped axis value of the indexed gamepad, or the
// largest magnitude value across every gamepad for index -1. Invalid
// indexes return 0.
func (in *Input) GamepadAxis(index int, a GamepadAxis) float32 {
	return in.gamepadAxisValue(GamepadIndex(index), a)
}

// Key returns true if the key is currently held.
func (in *Input) Key(key Key) bool {
	return in.Keyboard != nil && in.Keyboard.Key(key)
}

// KeyDown returns true only on the first frame the key is held.
func (in *Input) KeyDown(key Key) bool {
	return in.Keyboard != nil && in.Keyboard.KeyDown(key)
}

// KeyUp returns true only on the first frame the key is released.
func (in *Input) KeyUp(key Key) bool {
	return in.Keyboard != nil && in.Keyboard.KeyUp(key)
}

// IsAnyKeyDown returns true if any key is currently held.
func (in *Input) IsAnyKeyDown() bool {
	return in.Keyboard != nil && in.Keyboard.IsAnyKeyDown()
}

// InputText returns the Unicode text captured during the current frame.
func (in *Input) InputText() string {
	if in.Keyboard == nil {
		return ""
	}
	return in.Keyboard.InputText()
}

// MousePosition returns the cursor position. Positions are tracked in
// screen space; see MouseScreenPosition.
func (in *Input) MousePosition() Vec2 {
	if in.Mouse == nil {
		return Vec2{}
	}
	return in.Mouse.Position()
}

// MouseScreenPosition returns the cursor position in screen space.
func (in *Input) MouseScreenPosition() Vec2 {
	return in.MousePosition()
}

// SetMousePosition warps the cursor; the position delta on the current
// frame is zero afterwards.
func (in *Input) SetMousePosition(pos Vec2) {
	if in.Mouse != nil {
		in.Mouse.SetPosition(pos)
	}
}

// MousePositionDelta returns the cursor movement since the previous frame.
func (in *Input) MousePositionDelta() Vec2 {
	if in.Mouse == nil {
		return Vec2{}
	}
	return in.Mouse.PositionDelta()
}

// MouseScrollDelta returns the wheel movement for the current frame.
func (in *Input) MouseScrollDelta() float32 {
	if in.Mouse == nil {
		return 0
	}
	return in.Mouse.ScrollDelta()
}

// MouseButton returns true if the button is currently held.
func (in *Input) MouseButton(b MouseButton) bool {
	return in.Mouse != nil && in.Mouse.Button(b)
}

// MouseButtonDown returns true only on the first frame the button is held.
func (in *Input) MouseButtonDown(b MouseButton) bool {
	return in.Mouse != nil && in.Mouse.ButtonDown(b)
}

// MouseButtonUp returns true only on the first frame the button is
// released.
func (in *Input) MouseButtonUp(b MouseButton) bool {
	return in.Mouse != nil && in.Mouse.ButtonUp(b)
}
