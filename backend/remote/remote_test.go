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

package remote

import (
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/tidwall/gjson"

	"github.com/ember3d/ember/input"
	"github.com/ember3d/ember/test"
)

const frameDt = float32(1.0 / 60.0)

// dispatchAll feeds raw JSON records through the decode path of the
// backend without a network in the way.
func dispatchAll(s *Source, c *client, records ...string) {
	for _, rec := range records {
		s.dispatch(c, gjson.Parse(rec))
	}
}

func TestDispatchMatchesDirectIngress(t *testing.T) {
	remoteIn := input.NewInput()
	directIn := input.NewInput()

	s := &Source{in: remoteIn}
	c := &client{id: productID("test")}

	dispatchAll(s, c,
		`{"type": "keydown", "key": "A"}`,
		`{"type": "mousemove", "x": 10, "y": 20}`,
		`{"type": "mousedown", "button": "Left", "x": 10, "y": 20}`,
		`{"type": "wheel", "delta": 1}`,
		`{"type": "char", "text": "hi"}`,
	)

	directIn.Keyboard.OnKeyDown(input.KeyA, 0)
	directIn.Mouse.OnMouseMove(input.Vec2{X: 10, Y: 20}, 0)
	directIn.Mouse.OnMouseDown(input.Vec2{X: 10, Y: 20}, input.MouseButtonLeft, 0)
	directIn.Mouse.OnMouseWheel(input.Vec2{X: 10, Y: 20}, 1, 0)
	directIn.Keyboard.OnChar('h', 0)
	directIn.Keyboard.OnChar('i', 0)

	remoteIn.Frame(frameDt)
	directIn.Frame(frameDt)

	test.Equate(t, remoteIn.Key(input.KeyA), directIn.Key(input.KeyA))
	test.Equate(t, remoteIn.KeyDown(input.KeyA), directIn.KeyDown(input.KeyA))
	test.ExpectedSuccess(t, remoteIn.MousePosition() == directIn.MousePosition())
	test.Equate(t, remoteIn.MouseButton(input.MouseButtonLeft),
		directIn.MouseButton(input.MouseButtonLeft))
	test.Equate(t, remoteIn.MouseScrollDelta(), directIn.MouseScrollDelta())
	test.Equate(t, remoteIn.InputText(), directIn.InputText())
}

func TestDispatchGamepad(t *testing.T) {
	in := input.NewInput()
	s := &Source{in: in}
	c := &client{id: productID("test")}

	dispatchAll(s, c,
		`{"type": "gamepad", "buttons": ["A", "DPadUp"], "axes": {"LeftStickX": 0.5}}`,
	)
	in.Frame(frameDt)

	test.Equate(t, in.GamepadsCount(), 1)
	test.ExpectedSuccess(t, in.GamepadButton(0, input.GamepadButtonA))
	test.ExpectedSuccess(t, in.GamepadButton(0, input.GamepadButtonDPadUp))
	test.ExpectedFailure(t, in.GamepadButton(0, input.GamepadButtonB))
	test.Equate(t, in.GamepadAxis(0, input.GamepadAxisLeftStickX), float32(0.5))

	// buttons absent from the next record are released
	dispatchAll(s, c, `{"type": "gamepad", "buttons": ["B"]}`)
	in.Frame(frameDt)

	test.ExpectedFailure(t, in.GamepadButton(0, input.GamepadButtonA))
	test.ExpectedSuccess(t, in.GamepadButton(0, input.GamepadButtonB))
	test.Equate(t, in.GamepadAxis(0, input.GamepadAxisLeftStickX), 0)
}

func TestDispatchUnknownNames(t *testing.T) {
	in := input.NewInput()
	s := &Source{in: in}
	c := &client{id: productID("test")}

	dispatchAll(s, c,
		`{"type": "keydown", "key": "NoSuchKey"}`,
		`{"type": "mousedown", "button": "NoSuchButton"}`,
		`{"type": "nosuchtype"}`,
	)
	in.Frame(frameDt)

	test.ExpectedFailure(t, in.IsAnyKeyDown())
	test.ExpectedFailure(t, in.MouseButton(input.MouseButtonLeft))
}

func TestWebsocketRoundTrip(t *testing.T) {
	in := input.NewInput()

	s, err := NewSource(in, "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = s.Close() }()
	in.AddSource(s)

	ws, _, err := websocket.DefaultDialer.Dial("ws://"+s.Addr(), nil)
	if err != nil {
		t.Fatal(err)
	}

	err = ws.WriteMessage(websocket.TextMessage, []byte(`{"type": "keydown", "key": "Space"}`))
	if err != nil {
		t.Fatal(err)
	}
	err = ws.WriteMessage(websocket.TextMessage, []byte(`{"type": "gamepad", "buttons": ["Start"]}`))
	if err != nil {
		t.Fatal(err)
	}

	// the reader goroutine delivers asynchronously; keep framing until
	// the records land
	deadline := time.Now().Add(5 * time.Second)
	for !(in.Key(input.KeySpace) && in.GamepadsCount() == 1) {
		if time.Now().After(deadline) {
			t.Fatal("timed out waiting for records")
		}
		in.Frame(frameDt)
		time.Sleep(10 * time.Millisecond)
	}
	test.ExpectedSuccess(t, in.GamepadButton(0, input.GamepadButtonStart))

	// closing the connection unplugs the remote gamepad
	_ = ws.Close()
	deadline = time.Now().Add(5 * time.Second)
	for in.GamepadsCount() != 0 {
		if time.Now().After(deadline) {
			t.Fatal("timed out waiting for unplug")
		}
		in.Frame(frameDt)
		time.Sleep(10 * time.Millisecond)
	}
}
