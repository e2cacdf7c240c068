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

// Package remote is the websocket input backend. Connected clients send
// JSON input records and the backend replays them through the standard
// device ingress, so that remote input is indistinguishable from local
// input once inside the service.
//
// A record is a JSON object with a "type" field:
//
//	{"type": "keydown", "key": "A"}
//	{"type": "char", "text": "hello"}
//	{"type": "mousemove", "x": 10, "y": 20}
//	{"type": "mousedown", "button": "Left", "x": 10, "y": 20}
//	{"type": "wheel", "delta": 1}
//	{"type": "touchdown", "x": 0.5, "y": 0.5, "pointer": 0}
//	{"type": "gamepad", "buttons": ["A", "DPadUp"], "axes": {"LeftStickX": 0.5}}
//
// The first gamepad record of a connection hot-plugs a gamepad with a
// product identity derived from the connection; closing the connection
// unplugs it. Records are queued by the connection reader goroutines and
// drained on the main thread during Pump().
package remote

import (
	"hash/fnv"
	"net"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/tidwall/gjson"

	"github.com/ember3d/ember/backend"
	"github.com/ember3d/ember/curated"
	"github.com/ember3d/ember/input"
	"github.com/ember3d/ember/logger"
)

func init() {
	backend.Register("remote", func(in *input.Input) (input.Source, error) {
		return NewSource(in, DefaultAddr)
	})
}

// DefaultAddr is the listen address used when the backend is created
// through the registry. Change it before backend.New() or use NewSource()
// directly.
var DefaultAddr = "localhost:8799"

// record is one undecoded message from a client, queued for the main
// thread. nil data marks the end of the connection.
type record struct {
	client *client
	data   []byte
}

// client is one websocket connection.
type client struct {
	ws *websocket.Conn
	id input.ProductID

	// driver is nil until the first gamepad record
	driver *remotePadDriver
}

// Source is the websocket backend. Create with NewSource().
type Source struct {
	in       *input.Input
	listener net.Listener
	server   *http.Server
	upgrader websocket.Upgrader

	crit struct {
		sync.Mutex
		records []record
	}
}

// NewSource starts the websocket listener on addr.
func NewSource(in *input.Input, addr string) (*Source, error) {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, curated.Errorf("remote: %v", err)
	}

	s := &Source{
		in:       in,
		listener: listener,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
	s.server = &http.Server{Handler: http.HandlerFunc(s.serve)}

	go func() {
		if err := s.server.Serve(listener); err != http.ErrServerClosed {
			logger.Logf(logger.Allow, "remote", "serving: %v", err)
		}
	}()
	logger.Logf(logger.Allow, "remote", "listening on %s", listener.Addr())

	return s, nil
}

// Addr returns the bound listen address, useful when the configured
// address left the port to the system.
func (s *Source) Addr() string {
	return s.listener.Addr().String()
}

// ID implements the input.Source interface.
func (s *Source) ID() string {
	return "remote"
}

// Close implements the input.Source interface.
func (s *Source) Close() error {
	return s.server.Close()
}

// Pump implements the input.Source interface. Queued records are decoded
// and replayed through the standard ingress.
func (s *Source) Pump() error {
	s.crit.Lock()
	records := s.crit.records
	s.crit.records = nil
	s.crit.Unlock()

	for _, rec := range records {
		if rec.data == nil {
			if rec.client.driver != nil {
				s.in.RemoveGamepad(rec.client.id)
			}
			continue
		}
		s.dispatch(rec.client, gjson.ParseBytes(rec.data))
	}

	return nil
}

// serve upgrades an incoming connection and reads records until the
// connection drops.
func (s *Source) serve(w http.ResponseWriter, r *http.Request) {
	ws, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Logf(logger.Allow, "remote", "upgrading: %v", err)
		return
	}

	c := &client{
		ws: ws,
		id: productID(r.RemoteAddr),
	}
	logger.Logf(logger.Allow, "remote", "client connected: %s", r.RemoteAddr)

	go func() {
		defer func() {
			_ = ws.Close()
			s.push(record{client: c})
			logger.Logf(logger.Allow, "remote", "client gone: %s", r.RemoteAddr)
		}()

		for {
			_, data, err := ws.ReadMessage()
			if err != nil {
				return
			}
			if !gjson.ValidBytes(data) {
				logger.Log(logger.Allow, "remote", "dropping malformed record")
				continue
			}
			s.push(record{client: c, data: data})
		}
	}()
}

func (s *Source) push(rec record) {
	s.crit.Lock()
	s.crit.records = append(s.crit.records, rec)
	s.crit.Unlock()
}

// dispatch replays one record through the device ingress. Runs on the
// main thread.
func (s *Source) dispatch(c *client, r gjson.Result) {
	pos := func() input.Vec2 {
		return input.Vec2{
			X: float32(r.Get("x").Float()),
			Y: float32(r.Get("y").Float()),
		}
	}

	switch r.Get("type").String() {
	case "char":
		for _, ch := range r.Get("text").String() {
			s.in.Keyboard.OnChar(ch, 0)
		}

	case "keydown", "keyup":
		key := input.ParseKey(r.Get("key").String())
		if key == input.KeyNone {
			return
		}
		if r.Get("type").String() == "keydown" {
			s.in.Keyboard.OnKeyDown(key, 0)
		} else {
			s.in.Keyboard.OnKeyUp(key, 0)
		}

	case "mousemove":
		s.in.Mouse.OnMouseMove(pos(), 0)

	case "mousemoverel":
		s.in.Mouse.OnMouseMoveRelative(pos(), 0)

	case "mousedown", "mouseup", "doubleclick":
		b := input.ParseMouseButton(r.Get("button").String())
		if b == input.MouseButtonNone {
			return
		}
		switch r.Get("type").String() {
		case "mousedown":
			s.in.Mouse.OnMouseDown(pos(), b, 0)
		case "mouseup":
			s.in.Mouse.OnMouseUp(pos(), b, 0)
		default:
			s.in.Mouse.OnMouseDoubleClick(pos(), b, 0)
		}

	case "wheel":
		delta := float32(r.Get("delta").Float())
		if delta != 0 {
			s.in.Mouse.OnMouseWheel(s.in.Mouse.Position(), delta, 0)
		}

	case "touchdown":
		s.in.OnTouchDown(pos(), int(r.Get("pointer").Int()), 0)
	case "touchmove":
		s.in.OnTouchMove(pos(), int(r.Get("pointer").Int()), 0)
	case "touchup":
		s.in.OnTouchUp(pos(), int(r.Get("pointer").Int()), 0)

	case "gamepad":
		if c.driver == nil {
			c.driver = &remotePadDriver{}
			if slot := s.in.AddGamepad(input.NewGamepad(c.driver, c.id, "remote gamepad")); slot < 0 {
				c.driver = nil
				return
			}
		}
		c.driver.decode(r)

	default:
		logger.Logf(logger.Allow, "remote", "dropping record of unknown type: %s", r.Get("type").String())
	}
}

// productID builds a product identity from the remote address of the
// connection.
func productID(addr string) input.ProductID {
	var id input.ProductID
	copy(id[:], "remote")
	h := fnv.New64a()
	_, _ = h.Write([]byte(addr))
	sum := h.Sum64()
	for i := 0; i < 8; i++ {
		id[8+i] = byte(sum >> (8 * i))
	}
	return id
}

// remotePadDriver holds the last gamepad state a connection sent.
type remotePadDriver struct {
	state input.GamepadState
	gone  bool
}

// decode replaces the cached state with the buttons and axes named in the
// record. Buttons absent from the record are released.
func (d *remotePadDriver) decode(r gjson.Result) {
	var state input.GamepadState

	for _, b := range r.Get("buttons").Array() {
		button := input.ParseGamepadButton(b.String())
		if button != input.GamepadButtonNone {
			state.Buttons[button] = true
		}
	}

	r.Get("axes").ForEach(func(key, value gjson.Result) bool {
		// ParseGamepadAxis has no failure value; a round-trip of the
		// name filters unknown axes
		axis := input.ParseGamepadAxis(key.String())
		if axis.String() == key.String() {
			state.Axes[axis] = float32(value.Float())
		}
		return true
	})

	d.state = state
}

// UpdateRawState implements the input.GamepadDriver interface.
func (d *remotePadDriver) UpdateRawState(raw *input.GamepadState) bool {
	*raw = d.state
	return d.gone
}

// SetVibration implements the input.GamepadDriver interface. Vibration
// does not travel back over the wire.
func (d *remotePadDriver) SetVibration(v input.GamepadVibration) error {
	return curated.Errorf(input.UnsupportedError, "vibration")
}

// SetColor implements the input.GamepadDriver interface.
func (d *remotePadDriver) SetColor(r, g, b uint8) error {
	return curated.Errorf(input.UnsupportedError, "LED colour")
}

// Close implements the input.GamepadDriver interface.
func (d *remotePadDriver) Close() {
}
