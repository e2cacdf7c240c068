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

package input_test

import (
	"testing"

	"github.com/ember3d/ember/curated"
	"github.com/ember3d/ember/input"
	"github.com/ember3d/ember/test"
)

// mockGamepadDriver is a scriptable GamepadDriver.
type mockGamepadDriver struct {
	state        input.GamepadState
	disconnected bool
	vibration    input.GamepadVibration
	closed       bool
}

func (d *mockGamepadDriver) UpdateRawState(raw *input.GamepadState) bool {
	if d.disconnected {
		return true
	}
	*raw = d.state
	return false
}

func (d *mockGamepadDriver) SetVibration(v input.GamepadVibration) error {
	d.vibration = v
	return nil
}

func (d *mockGamepadDriver) SetColor(r, g, b uint8) error {
	return curated.Errorf(input.UnsupportedError, "LED colour")
}

func (d *mockGamepadDriver) Close() {
	d.closed = true
}

func padID(b byte) input.ProductID {
	var id input.ProductID
	id[0] = b
	return id
}

func TestGamepadEdgeDetection(t *testing.T) {
	drv := &mockGamepadDriver{}
	pad := input.NewGamepad(drv, padID(1), "Test Pad")
	sink := &input.Sink{}

	drv.state.Buttons[input.GamepadButtonA] = true
	pad.Update(sink)
	test.Equate(t, pad.Button(input.GamepadButtonA), true)
	test.Equate(t, pad.ButtonDown(input.GamepadButtonA), true)

	pad.Update(sink)
	test.Equate(t, pad.Button(input.GamepadButtonA), true)
	test.Equate(t, pad.ButtonDown(input.GamepadButtonA), false)

	drv.state.Buttons[input.GamepadButtonA] = false
	pad.Update(sink)
	test.Equate(t, pad.ButtonUp(input.GamepadButtonA), true)
}

func TestGamepadLayoutRemap(t *testing.T) {
	drv := &mockGamepadDriver{}
	pad := input.NewGamepad(drv, padID(1), "Test Pad")
	sink := &input.Sink{}

	// swap A and B, invert the left stick X axis
	l := input.DefaultLayout()
	l.Buttons[input.GamepadButtonA] = input.GamepadButtonB
	l.Buttons[input.GamepadButtonB] = input.GamepadButtonA
	l.AxisMap[input.GamepadAxisLeftStickX] = input.AxisMapping{Scale: -1}
	pad.SetLayout(l)

	drv.state.Buttons[input.GamepadButtonA] = true
	drv.state.Axes[input.GamepadAxisLeftStickX] = 0.9
	pad.Update(sink)

	// queries observe mapped state only
	test.Equate(t, pad.Button(input.GamepadButtonA), false)
	test.Equate(t, pad.Button(input.GamepadButtonB), true)
	test.Equate(t, pad.Axis(input.GamepadAxisLeftStickX), float32(-0.9))
}

func TestGamepadInvalidLayoutRejected(t *testing.T) {
	drv := &mockGamepadDriver{}
	pad := input.NewGamepad(drv, padID(1), "Test Pad")

	// two buttons mapping to the same target is not a permutation
	l := input.DefaultLayout()
	l.Buttons[input.GamepadButtonA] = input.GamepadButtonB
	test.Equate(t, l.IsValid(), false)

	before := pad.Layout()
	pad.SetLayout(l)
	test.ExpectedSuccess(t, pad.Layout() == before)
}

func TestLayoutInverse(t *testing.T) {
	l := input.DefaultLayout()
	l.Buttons[input.GamepadButtonA] = input.GamepadButtonY
	l.Buttons[input.GamepadButtonY] = input.GamepadButtonA
	l.Axes[input.GamepadAxisLeftStickX] = input.GamepadAxisLeftStickY
	l.Axes[input.GamepadAxisLeftStickY] = input.GamepadAxisLeftStickX
	l.AxisMap[input.GamepadAxisLeftStickX] = input.AxisMapping{Scale: 2, Offset: 0.5}

	inv, ok := l.Inverse()
	test.ExpectedSuccess(t, ok)

	// the inverse undoes the permutation
	test.Equate(t, int(inv.Buttons[input.GamepadButtonY]), int(input.GamepadButtonA))
	test.Equate(t, int(inv.Axes[input.GamepadAxisLeftStickY]), int(input.GamepadAxisLeftStickX))

	// and the affine transform: x -> 2x+0.5 inverts to x -> (x-0.5)/2
	m := inv.AxisMap[input.GamepadAxisLeftStickY]
	test.ApproxEquate(t, m.Scale, 0.5, 1e-6)
	test.ApproxEquate(t, m.Offset, -0.25, 1e-6)
}

func TestGamepadDisconnect(t *testing.T) {
	drv := &mockGamepadDriver{}
	pad := input.NewGamepad(drv, padID(1), "Test Pad")
	sink := &input.Sink{}

	test.Equate(t, pad.Update(sink), false)
	drv.disconnected = true
	test.Equate(t, pad.Update(sink), true)
}

func TestGamepadVibrationClamped(t *testing.T) {
	drv := &mockGamepadDriver{}
	pad := input.NewGamepad(drv, padID(1), "Test Pad")

	pad.SetVibration(input.GamepadVibration{
		LeftLarge:  1.5,
		LeftSmall:  -0.5,
		RightLarge: 0.25,
		RightSmall: 0.75,
	})

	v := pad.Vibration()
	test.Equate(t, v.LeftLarge, float32(1))
	test.Equate(t, v.LeftSmall, float32(0))
	test.Equate(t, v.RightLarge, float32(0.25))
	test.Equate(t, v.RightSmall, float32(0.75))
	test.ExpectedSuccess(t, drv.vibration == v)
}

func TestGamepadColorUnsupported(t *testing.T) {
	drv := &mockGamepadDriver{}
	pad := input.NewGamepad(drv, padID(1), "Test Pad")

	err := pad.SetColor(255, 0, 0)
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, curated.Is(err, input.UnsupportedError))
}

func TestGamepadResetState(t *testing.T) {
	drv := &mockGamepadDriver{}
	pad := input.NewGamepad(drv, padID(1), "Test Pad")
	sink := &input.Sink{}

	drv.state.Buttons[input.GamepadButtonStart] = true
	pad.Update(sink)
	test.Equate(t, pad.Button(input.GamepadButtonStart), true)

	pad.ResetState()
	test.Equate(t, pad.Button(input.GamepadButtonStart), false)
	test.Equate(t, pad.ButtonUp(input.GamepadButtonStart), false)
}
