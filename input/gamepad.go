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

// MaxGamepads is the maximum number of gamepads tracked by the facade.
const MaxGamepads = 8

// Normalised deadzone and threshold values used when deriving the stick
// direction and trigger pseudo-buttons. The defaults are the conventional
// XInput thresholds. Tunable through the settings file; change them before
// any backend is opened.
var (
	LeftStickDeadzone  = float32(7849.0 / 32768.0)
	RightStickDeadzone = float32(8689.0 / 32768.0)
	TriggerThreshold   = float32(30.0 / 255.0)
)

// ProductID is the opaque product identity of a gamepad. It is stable
// across a single connection and is used for slot equality.
type ProductID [16]byte

// GamepadState is the universal gamepad state: a fixed-size button vector
// and a fixed-size axis vector.
type GamepadState struct {
	Buttons [GamepadButtonMax]bool
	Axes    [GamepadAxisMax]float32
}

// GamepadDriver is the backend half of a Gamepad. It produces raw state
// and performs the native vibration and LED calls.
type GamepadDriver interface {
	// UpdateRawState polls the native device and fills in the raw state.
	// Returning true indicates the device has disconnected.
	UpdateRawState(raw *GamepadState) bool

	// SetVibration forwards the vibration state to the native device.
	SetVibration(v GamepadVibration) error

	// SetColor sets the LED colour of the device. Drivers for devices with
	// no light return a curated error with the UnsupportedError pattern.
	SetColor(r, g, b uint8) error

	// Close releases the native handle. Called when the device is removed.
	Close()
}

// Gamepad is a single gamepad device. Mapped state is derived from raw
// state via the layout on every Update(); queries observe mapped state
// only.
type Gamepad struct {
	driver GamepadDriver
	id     ProductID
	name   string

	layout Layout

	raw  GamepadState
	curr GamepadState
	prev GamepadState

	vibration GamepadVibration
}

// NewGamepad is the preferred method of initialisation of the Gamepad type.
// It binds the product identity and human readable name for the lifetime of
// the connection.
func NewGamepad(driver GamepadDriver, id ProductID, name string) *Gamepad {
	return &Gamepad{
		driver: driver,
		id:     id,
		name:   name,
		layout: DefaultLayout(),
	}
}

// Name implements the Device interface.
func (g *Gamepad) Name() string {
	return g.name
}

// ID returns the product identity bound at construction.
func (g *Gamepad) ID() ProductID {
	return g.id
}

// ResetState implements the Device interface.
func (g *Gamepad) ResetState() {
	g.raw = GamepadState{}
	g.curr = GamepadState{}
	g.prev = GamepadState{}
}

// Update implements the Device interface.
func (g *Gamepad) Update(sink *Sink) bool {
	g.prev = g.curr

	if g.driver.UpdateRawState(&g.raw) {
		return true
	}

	g.layout.apply(&g.raw, &g.curr)
	return false
}

// Layout returns the remapping currently in use.
func (g *Gamepad) Layout() Layout {
	return g.layout
}

// SetLayout replaces the remapping. An invalid layout is rejected and
// logged.
func (g *Gamepad) SetLayout(l Layout) {
	if !l.IsValid() {
		logger.Logf(logger.Allow, "gamepad", "rejected invalid layout for %s", g.name)
		return
	}
	g.layout = l
}

// State returns a copy of the mapped state.
func (g *Gamepad) State() GamepadState {
	return g.curr
}

// Button returns true if the mapped button is currently held.
func (g *Gamepad) Button(b GamepadButton) bool {
	if b <= GamepadButtonNone || b >= GamepadButtonMax {
		return false
	}
	return g.curr.Buttons[b]
}

// ButtonDown returns true only on the first frame the mapped button is
// held.
func (g *Gamepad) ButtonDown(b GamepadButton) bool {
	if b <= GamepadButtonNone || b >= GamepadButtonMax {
		return false
	}
	return g.curr.Buttons[b] && !g.prev.Buttons[b]
}

// ButtonUp returns true only on the first frame the mapped button is
// released.
func (g *Gamepad) ButtonUp(b GamepadButton) bool {
	if b <= GamepadButtonNone || b >= GamepadButtonMax {
		return false
	}
	return !g.curr.Buttons[b] && g.prev.Buttons[b]
}

// Axis returns the mapped axis value.
func (g *Gamepad) Axis(a GamepadAxis) float32 {
	if a < 0 || a >= GamepadAxisMax {
		return 0
	}
	return g.curr.Axes[a]
}

// Vibration returns the last vibration state set on the device.
func (g *Gamepad) Vibration() GamepadVibration {
	return g.vibration
}

// SetVibration forwards the clamped vibration state to the native device.
// A native failure is logged and treated as a no-op.
func (g *Gamepad) SetVibration(v GamepadVibration) {
	g.vibration = v.Clamped()
	if err := g.driver.SetVibration(g.vibration); err != nil {
		logger.Logf(logger.Allow, "gamepad", "vibration failed for %s: %v", g.name, err)
	}
}

// SetColor sets the LED colour on capable devices. The returned error
// carries the UnsupportedError pattern for devices with no light.
func (g *Gamepad) SetColor(r, gr, b uint8) error {
	return g.driver.SetColor(r, gr, b)
}

// release closes the native handle. Called by the facade when the device is
// removed.
func (g *Gamepad) release() {
	g.driver.Close()
}
