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

// WindowID is an opaque handle identifying the host window an event is
// targetted at. The zero value means "the focused window".
type WindowID uintptr

// Vec2 is a position or displacement in screen space.
type Vec2 struct {
	X float32
	Y float32
}

// Add returns the sum of the two vectors.
func (v Vec2) Add(w Vec2) Vec2 {
	return Vec2{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns the difference of the two vectors.
func (v Vec2) Sub(w Vec2) Vec2 {
	return Vec2{X: v.X - w.X, Y: v.Y - w.Y}
}

// Rect is a rectangle in screen space.
type Rect struct {
	X float32
	Y float32
	W float32
	H float32
}

// Contains reports whether the point is inside the rectangle.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Event represents an input event from one of the platform backends. The
// type is sealed; the concrete types are the Event* structs in this package
// and they are matched exhaustively by the facade.
type Event interface {
	// Window returns the target window of the event.
	Window() WindowID

	event()
}

// EventChar is sent for every unit of Unicode text input.
type EventChar struct {
	Char   rune
	Target WindowID
}

// EventKeyDown is sent when a keyboard key is pressed.
type EventKeyDown struct {
	Key    Key
	Target WindowID
}

// EventKeyUp is sent when a keyboard key is released.
type EventKeyUp struct {
	Key    Key
	Target WindowID
}

// EventMouseDown is sent when a mouse button is pressed.
type EventMouseDown struct {
	Button MouseButton
	Pos    Vec2
	Target WindowID
}

// EventMouseUp is sent when a mouse button is released.
type EventMouseUp struct {
	Button MouseButton
	Pos    Vec2
	Target WindowID
}

// EventMouseDoubleClick is sent for the second click of a native
// double-click pair. The backend does not also send an EventMouseDown for
// that click.
type EventMouseDoubleClick struct {
	Button MouseButton
	Pos    Vec2
	Target WindowID
}

// EventMouseWheel is sent when the mouse wheel turns. Delta is normalised
// so that one detent is ±1.
type EventMouseWheel struct {
	Delta  float32
	Pos    Vec2
	Target WindowID
}

// EventMouseMove is sent for every mouse motion. Pos is in screen space.
type EventMouseMove struct {
	Pos    Vec2
	Target WindowID
}

// EventMouseLeave is sent when the cursor leaves the window.
type EventMouseLeave struct {
	Target WindowID
}

// EventTouchDown is sent when a touch pointer makes contact.
type EventTouchDown struct {
	Pos     Vec2
	Pointer int
	Target  WindowID
}

// EventTouchMove is sent when a touch pointer moves.
type EventTouchMove struct {
	Pos     Vec2
	Pointer int
	Target  WindowID
}

// EventTouchUp is sent when a touch pointer lifts.
type EventTouchUp struct {
	Pos     Vec2
	Pointer int
	Target  WindowID
}

func (e EventChar) Window() WindowID             { return e.Target }
func (e EventKeyDown) Window() WindowID          { return e.Target }
func (e EventKeyUp) Window() WindowID            { return e.Target }
func (e EventMouseDown) Window() WindowID        { return e.Target }
func (e EventMouseUp) Window() WindowID          { return e.Target }
func (e EventMouseDoubleClick) Window() WindowID { return e.Target }
func (e EventMouseWheel) Window() WindowID       { return e.Target }
func (e EventMouseMove) Window() WindowID        { return e.Target }
func (e EventMouseLeave) Window() WindowID       { return e.Target }
func (e EventTouchDown) Window() WindowID        { return e.Target }
func (e EventTouchMove) Window() WindowID        { return e.Target }
func (e EventTouchUp) Window() WindowID          { return e.Target }

func (e EventChar) event()             {}
func (e EventKeyDown) event()          {}
func (e EventKeyUp) event()            {}
func (e EventMouseDown) event()        {}
func (e EventMouseUp) event()          {}
func (e EventMouseDoubleClick) event() {}
func (e EventMouseWheel) event()       {}
func (e EventMouseMove) event()        {}
func (e EventMouseLeave) event()       {}
func (e EventTouchDown) event()        {}
func (e EventTouchMove) event()        {}
func (e EventTouchUp) event()          {}
