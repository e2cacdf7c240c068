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

// MouseDriver is the native half of the Mouse device. A backend installs
// its driver with SetDriver(). The native cursor and window capture are
// process-wide exclusive resources so at most one driver should be
// installed at a time.
//
// A native failure in any of these calls is logged as a warning by the
// Mouse device and otherwise treated as a no-op; see the error handling
// policy in the package documentation.
type MouseDriver interface {
	// WarpCursor moves the native cursor to the screen position.
	WarpCursor(pos Vec2) error

	// SetRelativeMode hides the visible cursor and switches the backend to
	// delta-only reporting.
	SetRelativeMode(enabled bool) error

	// SetCapture grabs the mouse so motion outside the window bounds is
	// still delivered.
	SetCapture(enabled bool) error

	// ClipCursor constrains the cursor to the rectangle. A nil rectangle
	// releases the constraint.
	ClipCursor(r *Rect) error
}

// Mouse is the mouse device. Positions are in screen space. The previous
// position and button vector mirror the current values exactly one Update()
// ago.
type Mouse struct {
	queue  Queue
	driver MouseDriver

	pos     Vec2
	prevPos Vec2

	// the last position delivered to an ingress function. it resolves
	// relative motion and the tracking accumulator before the queued events
	// reach Update(); the queryable position is derived from the queue only
	ingressPos Vec2

	wheel float32

	curr [MouseButtonMax]bool
	prev [MouseButtonMax]bool

	// relative mode: the position visible when the mode was entered is
	// cached and restored on exit
	relative bool
	savedPos Vec2

	// tracking captures the mouse for drag style interactions. with
	// useOffset an accumulator of virtual displacement lets the logical
	// cursor travel beyond the screen edges.
	tracking       bool
	useOffset      bool
	trackingOffset Vec2

	// the clip rect survives focus loss; clipSuspended marks that the
	// native constraint is currently released and must be re-applied on
	// focus gain
	clipping      bool
	clipSuspended bool
	clip          Rect
}

// NewMouse is the preferred method of initialisation of the Mouse type.
func NewMouse() *Mouse {
	return &Mouse{}
}

// SetDriver installs the native driver. A nil driver leaves every native
// call a no-op, which is what headless hosts and the package tests want.
func (m *Mouse) SetDriver(driver MouseDriver) {
	m.driver = driver
}

// Name implements the Device interface.
func (m *Mouse) Name() string {
	return "Mouse"
}

// ResetState implements the Device interface.
func (m *Mouse) ResetState() {
	m.queue.Reset()
	m.curr = [MouseButtonMax]bool{}
	m.prev = [MouseButtonMax]bool{}
	m.wheel = 0
	m.prevPos = m.pos
	m.ingressPos = m.pos
	m.trackingOffset = Vec2{}
}

// Update implements the Device interface.
func (m *Mouse) Update(sink *Sink) bool {
	m.prev = m.curr
	m.prevPos = m.pos
	m.wheel = 0

	m.queue.Drain(func(ev Event) {
		switch ev := ev.(type) {
		case EventMouseMove:
			m.pos = ev.Pos
		case EventMouseDown:
			m.pos = ev.Pos
			m.curr[ev.Button] = true
		case EventMouseUp:
			m.pos = ev.Pos
			m.curr[ev.Button] = false
		case EventMouseDoubleClick:
			m.pos = ev.Pos
			m.curr[ev.Button] = true
		case EventMouseWheel:
			m.wheel += ev.Delta
		}
		sink.Push(ev)
	})

	return false
}

// OnMouseMove receives an absolute cursor position (screen space) from a
// backend. The motion is queued; the queryable position only ever changes
// inside Update().
func (m *Mouse) OnMouseMove(pos Vec2, target WindowID) {
	if m.tracking && m.useOffset {
		m.trackingOffset = m.trackingOffset.Add(pos.Sub(m.ingressPos))
	}
	m.queue.Push(EventMouseMove{Pos: pos, Target: target})
	m.ingressPos = pos
}

// OnMouseMoveRelative receives a motion delta from a backend. Backends
// prefer this ingress while relative mode is active. Deltas are in screen
// pixels.
func (m *Mouse) OnMouseMoveRelative(delta Vec2, target WindowID) {
	m.OnMouseMove(m.ingressPos.Add(delta), target)
}

// OnMouseDown receives a button press from a backend.
func (m *Mouse) OnMouseDown(pos Vec2, b MouseButton, target WindowID) {
	if b <= MouseButtonNone || b >= MouseButtonMax {
		return
	}
	m.queue.Push(EventMouseDown{Button: b, Pos: pos, Target: target})
	m.ingressPos = pos
}

// OnMouseUp receives a button release from a backend.
func (m *Mouse) OnMouseUp(pos Vec2, b MouseButton, target WindowID) {
	if b <= MouseButtonNone || b >= MouseButtonMax {
		return
	}
	m.queue.Push(EventMouseUp{Button: b, Pos: pos, Target: target})
	m.ingressPos = pos
}

// OnMouseDoubleClick receives the second click of a native double-click
// pair. The backend must not also call OnMouseDown for that click.
func (m *Mouse) OnMouseDoubleClick(pos Vec2, b MouseButton, target WindowID) {
	if b <= MouseButtonNone || b >= MouseButtonMax {
		return
	}
	m.queue.Push(EventMouseDoubleClick{Button: b, Pos: pos, Target: target})
	m.ingressPos = pos
}

// OnMouseWheel receives a wheel turn from a backend. Delta is normalised so
// one detent is ±1.
func (m *Mouse) OnMouseWheel(pos Vec2, delta float32, target WindowID) {
	m.queue.Push(EventMouseWheel{Delta: delta, Pos: pos, Target: target})
}

// OnMouseLeave receives a cursor-left-window notification from a backend.
func (m *Mouse) OnMouseLeave(target WindowID) {
	m.queue.Push(EventMouseLeave{Target: target})
}

// Position returns the cursor position in screen space. While tracking with
// the offset accumulator the virtual displacement is included.
func (m *Mouse) Position() Vec2 {
	if m.tracking && m.useOffset {
		return m.pos.Add(m.trackingOffset)
	}
	return m.pos
}

// PositionDelta returns the difference between the current and the previous
// frame's position.
func (m *Mouse) PositionDelta() Vec2 {
	return m.pos.Sub(m.prevPos)
}

// ScrollDelta returns the wheel movement for the current frame. It is zero
// on every frame that did not receive a wheel event.
func (m *Mouse) ScrollDelta() float32 {
	return m.wheel
}

// Button returns true if the button is currently held.
func (m *Mouse) Button(b MouseButton) bool {
	if b <= MouseButtonNone || b >= MouseButtonMax {
		return false
	}
	return m.curr[b]
}

// ButtonDown returns true only on the first frame the button is held.
func (m *Mouse) ButtonDown(b MouseButton) bool {
	if b <= MouseButtonNone || b >= MouseButtonMax {
		return false
	}
	return m.curr[b] && !m.prev[b]
}

// ButtonUp returns true only on the first frame the button is released.
func (m *Mouse) ButtonUp(b MouseButton) bool {
	if b <= MouseButtonNone || b >= MouseButtonMax {
		return false
	}
	return !m.curr[b] && m.prev[b]
}

// SetPosition warps the native cursor and updates the tracked position so
// that the delta on the current frame is zero. This prevents a jump after a
// programmatic warp.
func (m *Mouse) SetPosition(pos Vec2) {
	if m.driver != nil {
		if err := m.driver.WarpCursor(pos); err != nil {
			logger.Logf(logger.Allow, "mouse", "cursor warp failed: %v", err)
		}
	}
	m.pos = pos
	m.prevPos = pos
	m.ingressPos = pos
}

// RelativeMode returns true while relative mode is active.
func (m *Mouse) RelativeMode() bool {
	return m.relative
}

// SetRelativeMode toggles relative input mode. On entry the last visible
// position is cached; on exit the cursor is restored to it.
func (m *Mouse) SetRelativeMode(enabled bool, target WindowID) {
	if m.relative == enabled {
		return
	}
	m.relative = enabled

	if enabled {
		m.savedPos = m.pos
		if m.driver != nil {
			if err := m.driver.SetRelativeMode(true); err != nil {
				logger.Logf(logger.Allow, "mouse", "relative mode failed: %v", err)
			}
		}
		return
	}

	if m.driver != nil {
		if err := m.driver.SetRelativeMode(false); err != nil {
			logger.Logf(logger.Allow, "mouse", "relative mode failed: %v", err)
		}
	}
	m.SetPosition(m.savedPos)
}

// StartTrackingMouse captures the mouse outside the window bounds for drag
// style interactions. With useOffset, an accumulator of virtual
// displacement is maintained so the logical cursor can travel beyond the
// screen edges.
func (m *Mouse) StartTrackingMouse(useOffset bool) {
	if m.tracking {
		return
	}
	m.tracking = true
	m.useOffset = useOffset
	m.trackingOffset = Vec2{}
	if m.driver != nil {
		if err := m.driver.SetCapture(true); err != nil {
			logger.Logf(logger.Allow, "mouse", "capture failed: %v", err)
		}
	}
}

// EndTrackingMouse releases the capture started by StartTrackingMouse.
func (m *Mouse) EndTrackingMouse() {
	if !m.tracking {
		return
	}
	m.tracking = false
	if m.driver != nil {
		if err := m.driver.SetCapture(false); err != nil {
			logger.Logf(logger.Allow, "mouse", "capture release failed: %v", err)
		}
	}
}

// IsTrackingMouse returns true while tracking is active.
func (m *Mouse) IsTrackingMouse() bool {
	return m.tracking
}

// TrackingOffset returns the accumulated virtual displacement. Zero unless
// tracking was started with useOffset.
func (m *Mouse) TrackingOffset() Vec2 {
	return m.trackingOffset
}

// StartClippingCursor constrains the cursor to the rectangle while the
// window has focus. The constraint is re-applied on focus gain and released
// on focus loss.
func (m *Mouse) StartClippingCursor(r Rect) {
	m.clipping = true
	m.clipSuspended = false
	m.clip = r
	if m.driver != nil {
		if err := m.driver.ClipCursor(&r); err != nil {
			logger.Logf(logger.Allow, "mouse", "cursor clip failed: %v", err)
		}
	}
}

// EndClippingCursor releases the cursor constraint.
func (m *Mouse) EndClippingCursor() {
	if !m.clipping {
		return
	}
	m.clipping = false
	m.clipSuspended = false
	if m.driver != nil {
		if err := m.driver.ClipCursor(nil); err != nil {
			logger.Logf(logger.Allow, "mouse", "cursor clip release failed: %v", err)
		}
	}
}

// IsClippingCursor returns true while a clip rect is set, whether or not it
// is currently suspended by focus loss.
func (m *Mouse) IsClippingCursor() bool {
	return m.clipping
}

// LockMode returns how the cursor is currently constrained.
func (m *Mouse) LockMode() CursorLockMode {
	switch {
	case m.relative:
		return CursorLockLocked
	case m.clipping && !m.clipSuspended:
		return CursorLockClipped
	}
	return CursorLockNone
}

// suspendClip releases the native constraint on focus loss without
// forgetting the rect.
func (m *Mouse) suspendClip() {
	if !m.clipping || m.clipSuspended {
		return
	}
	m.clipSuspended = true
	if m.driver != nil {
		if err := m.driver.ClipCursor(nil); err != nil {
			logger.Logf(logger.Allow, "mouse", "cursor clip release failed: %v", err)
		}
	}
}

// reapplyClip restores the native constraint on focus gain.
func (m *Mouse) reapplyClip() {
	if !m.clipping || !m.clipSuspended {
		return
	}
	m.clipSuspended = false
	if m.driver != nil {
		r := m.clip
		if err := m.driver.ClipCursor(&r); err != nil {
			logger.Logf(logger.Allow, "mouse", "cursor clip failed: %v", err)
		}
	}
}
