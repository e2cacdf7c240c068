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

// Delegates are the listener callbacks fired during Frame(). A nil entry is
// skipped. All callbacks run on the main thread during the frame's input
// phase.
type Delegates struct {
	Char             func(c rune)
	KeyDown          func(key Key)
	KeyUp            func(key Key)
	MouseDown        func(pos Vec2, b MouseButton)
	MouseUp          func(pos Vec2, b MouseButton)
	MouseDoubleClick func(pos Vec2, b MouseButton)
	MouseWheel       func(pos Vec2, delta float32)
	MouseMove        func(pos Vec2)
	MouseLeave       func()
	TouchDown        func(pos Vec2, pointer int)
	TouchMove        func(pos Vec2, pointer int)
	TouchUp          func(pos Vec2, pointer int)

	// GamepadsChanged fires at most once per frame, after a gamepad has
	// been added or removed.
	GamepadsChanged func()

	// ActionTriggered fires when an action enters Press or Release and on
	// every frame it stays in Pressing.
	ActionTriggered func(name string, state ActionState)

	// AxisValueChanged fires when an axis' smoothed value moves by more
	// than an epsilon within a single frame.
	AxisValueChanged func(name string, value float32)
}

// fire walks the events collected from the devices and calls the matching
// delegates. The match over event types is exhaustive.
func (in *Input) fire(sink *Sink) {
	for _, ev := range sink.Events {
		switch ev := ev.(type) {
		case EventChar:
			if in.Delegates.Char != nil {
				in.Delegates.Char(ev.Char)
			}
		case EventKeyDown:
			if in.Delegates.KeyDown != nil {
				in.Delegates.KeyDown(ev.Key)
			}
		case EventKeyUp:
			if in.Delegates.KeyUp != nil {
				in.Delegates.KeyUp(ev.Key)
			}
		case EventMouseDown:
			if in.Delegates.MouseDown != nil {
				in.Delegates.MouseDown(ev.Pos, ev.Button)
			}
		case EventMouseUp:
			if in.Delegates.MouseUp != nil {
				in.Delegates.MouseUp(ev.Pos, ev.Button)
			}
		case EventMouseDoubleClick:
			if in.Delegates.MouseDoubleClick != nil {
				in.Delegates.MouseDoubleClick(ev.Pos, ev.Button)
			}
		case EventMouseWheel:
			if in.Delegates.MouseWheel != nil {
				in.Delegates.MouseWheel(ev.Pos, ev.Delta)
			}
		case EventMouseMove:
			if in.Delegates.MouseMove != nil {
				in.Delegates.MouseMove(ev.Pos)
			}
		case EventMouseLeave:
			if in.Delegates.MouseLeave != nil {
				in.Delegates.MouseLeave()
			}
		case EventTouchDown:
			if in.Delegates.TouchDown != nil {
				in.Delegates.TouchDown(ev.Pos, ev.Pointer)
			}
		case EventTouchMove:
			if in.Delegates.TouchMove != nil {
				in.Delegates.TouchMove(ev.Pos, ev.Pointer)
			}
		case EventTouchUp:
			if in.Delegates.TouchUp != nil {
				in.Delegates.TouchUp(ev.Pos, ev.Pointer)
			}
		}
	}
}
