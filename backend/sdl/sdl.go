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

// Package sdl is the SDL2 platform backend. It translates SDL events into
// the device ingress of the input service and provides a mouse driver and
// game controller drivers on top of the SDL native calls.
//
// SDL requires event polling on the main thread; the Source assumes the
// calling convention of the input service and does no locking of its own.
package sdl

import (
	"strings"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/ember3d/ember/backend"
	"github.com/ember3d/ember/curated"
	"github.com/ember3d/ember/input"
	"github.com/ember3d/ember/logger"
)

func init() {
	backend.Register("sdl", func(in *input.Input) (input.Source, error) {
		return NewSource(in)
	})
}

// Source is the SDL backend. Create with NewSource().
type Source struct {
	in *input.Input

	// attached game controllers keyed by joystick instance ID, for
	// hot-unplug notifications
	pads map[sdl.JoystickID]input.ProductID
}

// NewSource initialises the SDL joystick and game controller subsystems,
// installs the SDL mouse driver and opens any controllers that are already
// attached.
func NewSource(in *input.Input) (*Source, error) {
	if err := sdl.InitSubSystem(sdl.INIT_JOYSTICK | sdl.INIT_GAMECONTROLLER | sdl.INIT_EVENTS); err != nil {
		return nil, curated.Errorf("sdl: %v", err)
	}

	s := &Source{
		in:   in,
		pads: make(map[sdl.JoystickID]input.ProductID),
	}

	in.Mouse.SetDriver(&mouseDriver{})

	for i := 0; i < sdl.NumJoysticks(); i++ {
		s.addController(i)
	}
	if len(s.pads) == 0 {
		logger.Log(logger.Allow, "sdl", "no gamepads found")
	}

	return s, nil
}

// ID implements the input.Source interface.
func (s *Source) ID() string {
	return "sdl"
}

// Close implements the input.Source interface.
func (s *Source) Close() error {
	for _, id := range s.pads {
		s.in.RemoveGamepad(id)
	}
	s.pads = make(map[sdl.JoystickID]input.ProductID)
	sdl.QuitSubSystem(sdl.INIT_JOYSTICK | sdl.INIT_GAMECONTROLLER | sdl.INIT_EVENTS)
	return nil
}

// Pump implements the input.Source interface.
func (s *Source) Pump() error {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.TextInputEvent:
			text := string(ev.Text[:])
			if i := strings.IndexByte(text, 0); i >= 0 {
				text = text[:i]
			}
			for _, c := range text {
				s.in.Keyboard.OnChar(c, input.WindowID(ev.WindowID))
			}

		case *sdl.KeyboardEvent:
			// key repeats carry no edge information; the devices derive
			// per-frame edges themselves
			if ev.Repeat != 0 {
				continue
			}
			key := translateScancode(ev.Keysym.Scancode)
			if key == input.KeyNone {
				continue
			}
			if ev.Type == sdl.KEYDOWN {
				s.in.Keyboard.OnKeyDown(key, input.WindowID(ev.WindowID))
			} else {
				s.in.Keyboard.OnKeyUp(key, input.WindowID(ev.WindowID))
			}

		case *sdl.MouseMotionEvent:
			if s.in.Mouse.RelativeMode() {
				s.in.Mouse.OnMouseMoveRelative(
					input.Vec2{X: float32(ev.XRel), Y: float32(ev.YRel)},
					input.WindowID(ev.WindowID))
			} else {
				s.in.Mouse.OnMouseMove(
					input.Vec2{X: float32(ev.X), Y: float32(ev.Y)},
					input.WindowID(ev.WindowID))
			}

		case *sdl.MouseButtonEvent:
			b := translateMouseButton(ev.Button)
			if b == input.MouseButtonNone {
				continue
			}
			pos := input.Vec2{X: float32(ev.X), Y: float32(ev.Y)}
			wid := input.WindowID(ev.WindowID)
			switch {
			case ev.Type == sdl.MOUSEBUTTONDOWN && ev.Clicks > 1:
				// SDL reports the second click of a native pair with
				// Clicks > 1; no separate down event is synthesised
				s.in.Mouse.OnMouseDoubleClick(pos, b, wid)
			case ev.Type == sdl.MOUSEBUTTONDOWN:
				s.in.Mouse.OnMouseDown(pos, b, wid)
			default:
				s.in.Mouse.OnMouseUp(pos, b, wid)
			}

		case *sdl.MouseWheelEvent:
			var delta float32
			if ev.Y > 0 {
				delta = 1
			} else if ev.Y < 0 {
				delta = -1
			}
			if delta != 0 {
				s.in.Mouse.OnMouseWheel(s.in.Mouse.Position(), delta, input.WindowID(ev.WindowID))
			}

		case *sdl.WindowEvent:
			switch ev.Event {
			case sdl.WINDOWEVENT_FOCUS_GAINED:
				s.in.OnFocusGained()
			case sdl.WINDOWEVENT_FOCUS_LOST:
				s.in.OnFocusLost()
			case sdl.WINDOWEVENT_LEAVE:
				s.in.Mouse.OnMouseLeave(input.WindowID(ev.WindowID))
			}

		case *sdl.TouchFingerEvent:
			// finger coordinates are normalised to the touch surface
			pos := input.Vec2{X: ev.X, Y: ev.Y}
			pointer := int(ev.FingerID)
			switch ev.Type {
			case sdl.FINGERDOWN:
				s.in.OnTouchDown(pos, pointer, 0)
			case sdl.FINGERMOTION:
				s.in.OnTouchMove(pos, pointer, 0)
			case sdl.FINGERUP:
				s.in.OnTouchUp(pos, pointer, 0)
			}

		case *sdl.ControllerDeviceEvent:
			switch ev.Type {
			case sdl.CONTROLLERDEVICEADDED:
				// Which is a device index for the added event
				s.addController(int(ev.Which))
			case sdl.CONTROLLERDEVICEREMOVED:
				// and an instance ID for the removed event
				if id, ok := s.pads[sdl.JoystickID(ev.Which)]; ok {
					delete(s.pads, sdl.JoystickID(ev.Which))
					s.in.RemoveGamepad(id)
				}
			}
		}
	}
	return nil
}

func translateMouseButton(b uint8) input.MouseButton {
	switch b {
	case sdl.BUTTON_LEFT:
		return input.MouseButtonLeft
	case sdl.BUTTON_MIDDLE:
		return input.MouseButtonMiddle
	case sdl.BUTTON_RIGHT:
		return input.MouseButtonRight
	case sdl.BUTTON_X1:
		return input.MouseButtonExtended1
	case sdl.BUTTON_X2:
		return input.MouseButtonExtended2
	}
	return input.MouseButtonNone
}
