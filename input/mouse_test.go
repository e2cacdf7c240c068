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

	"github.com/ember3d/ember/input"
	"github.com/ember3d/ember/test"
)

// mockMouseDriver records the native calls the Mouse device makes.
type mockMouseDriver struct {
	warped   []input.Vec2
	relative bool
	captured bool
	clip     *input.Rect
}

func (d *mockMouseDriver) WarpCursor(pos input.Vec2) error {
	d.warped = append(d.warped, pos)
	return nil
}

func (d *mockMouseDriver) SetRelativeMode(enabled bool) error {
	d.relative = enabled
	return nil
}

func (d *mockMouseDriver) SetCapture(enabled bool) error {
	d.captured = enabled
	return nil
}

func (d *mockMouseDriver) ClipCursor(r *input.Rect) error {
	d.clip = r
	return nil
}

func TestMousePositionDelta(t *testing.T) {
	m := input.NewMouse()
	sink := &input.Sink{}

	m.OnMouseMove(input.Vec2{X: 10, Y: 10}, 0)
	m.Update(sink)
	test.ExpectedSuccess(t, m.Position() == input.Vec2{X: 10, Y: 10})

	sink.Reset()
	m.OnMouseMove(input.Vec2{X: 15, Y: 20}, 0)
	m.Update(sink)
	test.ExpectedSuccess(t, m.PositionDelta() == input.Vec2{X: 5, Y: 10})

	// no motion means no delta
	sink.Reset()
	m.Update(sink)
	test.ExpectedSuccess(t, m.PositionDelta() == input.Vec2{})
}

func TestMouseIngressDeferredToUpdate(t *testing.T) {
	m := input.NewMouse()
	sink := &input.Sink{}

	// queued motion and presses are invisible until Update() runs
	m.OnMouseMove(input.Vec2{X: 10, Y: 10}, 0)
	m.OnMouseDown(input.Vec2{X: 10, Y: 10}, input.MouseButtonLeft, 0)
	test.ExpectedSuccess(t, m.Position() == input.Vec2{})
	test.Equate(t, m.Button(input.MouseButtonLeft), false)

	m.Update(sink)
	test.ExpectedSuccess(t, m.Position() == input.Vec2{X: 10, Y: 10})
	test.ExpectedSuccess(t, m.PositionDelta() == input.Vec2{X: 10, Y: 10})
	test.Equate(t, m.ButtonDown(input.MouseButtonLeft), true)
}

func TestMouseButtons(t *testing.T) {
	m := input.NewMouse()
	sink := &input.Sink{}

	m.OnMouseDown(input.Vec2{X: 1, Y: 1}, input.MouseButtonLeft, 0)
	m.Update(sink)
	test.Equate(t, m.Button(input.MouseButtonLeft), true)
	test.Equate(t, m.ButtonDown(input.MouseButtonLeft), true)

	sink.Reset()
	m.Update(sink)
	test.Equate(t, m.Button(input.MouseButtonLeft), true)
	test.Equate(t, m.ButtonDown(input.MouseButtonLeft), false)

	sink.Reset()
	m.OnMouseUp(input.Vec2{X: 1, Y: 1}, input.MouseButtonLeft, 0)
	m.Update(sink)
	test.Equate(t, m.Button(input.MouseButtonLeft), false)
	test.Equate(t, m.ButtonUp(input.MouseButtonLeft), true)
}

func TestMouseDoubleClickPressesButton(t *testing.T) {
	m := input.NewMouse()
	sink := &input.Sink{}

	// the double-click event stands in for its own down event
	m.OnMouseDoubleClick(input.Vec2{X: 3, Y: 4}, input.MouseButtonLeft, 0)
	m.Update(sink)
	test.Equate(t, m.Button(input.MouseButtonLeft), true)
	test.Equate(t, m.ButtonDown(input.MouseButtonLeft), true)
	test.Equate(t, len(sink.Events), 1)
	_, ok := sink.Events[0].(input.EventMouseDoubleClick)
	test.ExpectedSuccess(t, ok)
}

func TestMouseScrollDelta(t *testing.T) {
	m := input.NewMouse()
	sink := &input.Sink{}

	m.OnMouseWheel(input.Vec2{}, 1, 0)
	m.OnMouseWheel(input.Vec2{}, 1, 0)
	m.Update(sink)
	test.Equate(t, m.ScrollDelta(), float32(2))

	// the wheel accumulator covers the current frame only
	sink.Reset()
	m.Update(sink)
	test.Equate(t, m.ScrollDelta(), float32(0))
}

func TestMouseSetPositionZeroDelta(t *testing.T) {
	m := input.NewMouse()
	drv := &mockMouseDriver{}
	m.SetDriver(drv)
	sink := &input.Sink{}

	m.OnMouseMove(input.Vec2{X: 50, Y: 50}, 0)
	m.Update(sink)

	m.SetPosition(input.Vec2{X: 100, Y: 100})
	test.ExpectedSuccess(t, m.Position() == input.Vec2{X: 100, Y: 100})
	test.ExpectedSuccess(t, m.PositionDelta() == input.Vec2{})
	test.Equate(t, len(drv.warped), 1)
	test.ExpectedSuccess(t, drv.warped[0] == input.Vec2{X: 100, Y: 100})
}

func TestMouseRelativeModeRestoresPosition(t *testing.T) {
	m := input.NewMouse()
	drv := &mockMouseDriver{}
	m.SetDriver(drv)
	sink := &input.Sink{}

	m.OnMouseMove(input.Vec2{X: 30, Y: 40}, 0)
	m.Update(sink)

	m.SetRelativeMode(true, 0)
	test.Equate(t, m.RelativeMode(), true)
	test.Equate(t, drv.relative, true)
	test.Equate(t, m.LockMode() == input.CursorLockLocked, true)

	sink.Reset()
	m.OnMouseMoveRelative(input.Vec2{X: 5, Y: -5}, 0)
	m.Update(sink)
	test.ExpectedSuccess(t, m.PositionDelta() == input.Vec2{X: 5, Y: -5})

	m.SetRelativeMode(false, 0)
	test.Equate(t, m.RelativeMode(), false)
	test.Equate(t, drv.relative, false)

	// exiting relative mode warps back to the last visible position
	test.ExpectedSuccess(t, m.Position() == input.Vec2{X: 30, Y: 40})
	test.ExpectedSuccess(t, drv.warped[len(drv.warped)-1] == input.Vec2{X: 30, Y: 40})
}

func TestMouseTrackingOffset(t *testing.T) {
	m := input.NewMouse()
	drv := &mockMouseDriver{}
	m.SetDriver(drv)
	sink := &input.Sink{}

	m.OnMouseMove(input.Vec2{X: 100, Y: 100}, 0)
	m.Update(sink)

	m.StartTrackingMouse(true)
	test.Equate(t, m.IsTrackingMouse(), true)
	test.Equate(t, drv.captured, true)

	sink.Reset()
	m.OnMouseMove(input.Vec2{X: 110, Y: 90}, 0)
	m.Update(sink)
	test.ExpectedSuccess(t, m.TrackingOffset() == input.Vec2{X: 10, Y: -10})
	test.ExpectedSuccess(t, m.Position() == input.Vec2{X: 120, Y: 80})

	m.EndTrackingMouse()
	test.Equate(t, m.IsTrackingMouse(), false)
	test.Equate(t, drv.captured, false)
}

func TestMouseClipSuspension(t *testing.T) {
	m := input.NewMouse()
	drv := &mockMouseDriver{}
	m.SetDriver(drv)

	r := input.Rect{X: 0, Y: 0, W: 640, H: 480}
	m.StartClippingCursor(r)
	test.Equate(t, m.IsClippingCursor(), true)
	test.Equate(t, m.LockMode() == input.CursorLockClipped, true)
	test.ExpectedSuccess(t, drv.clip != nil)

	// focus loss releases the native constraint but keeps the rect
	input.SuspendMouseClipForTest(m)
	test.Equate(t, m.IsClippingCursor(), true)
	test.ExpectedSuccess(t, drv.clip == nil)
	test.Equate(t, m.LockMode() == input.CursorLockNone, true)

	input.ReapplyMouseClipForTest(m)
	test.ExpectedSuccess(t, drv.clip != nil)
	test.Equate(t, m.LockMode() == input.CursorLockClipped, true)

	m.EndClippingCursor()
	test.Equate(t, m.IsClippingCursor(), false)
	test.ExpectedSuccess(t, drv.clip == nil)
}

func TestMouseResetState(t *testing.T) {
	m := input.NewMouse()
	sink := &input.Sink{}

	m.OnMouseDown(input.Vec2{X: 5, Y: 5}, input.MouseButtonRight, 0)
	m.OnMouseWheel(input.Vec2{}, 3, 0)
	m.Update(sink)
	test.Equate(t, m.Button(input.MouseButtonRight), true)

	m.ResetState()
	test.Equate(t, m.Button(input.MouseButtonRight), false)
	test.Equate(t, m.ScrollDelta(), float32(0))

	// no spurious up edge after the reset
	sink.Reset()
	m.Update(sink)
	test.Equate(t, m.ButtonUp(input.MouseButtonRight), false)
}
