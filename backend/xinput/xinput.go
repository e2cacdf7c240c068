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

//go:build windows

// Package xinput is the Windows XInput gamepad backend. It polls the four
// XInput user slots and registers a gamepad for every connected slot.
//
// The package also runs the window-drag watchdog. A native window drag or
// resize traps the message loop inside DefWindowProc and the frame pump
// stalls; the watchdog notices the stall, keeps an optional callback
// ticking at roughly 50Hz so the caller can keep rendering, and when the
// pump resumes a synthetic left-button-up is ingested so that the button
// state cannot stick down.
package xinput

import (
	"sync/atomic"
	"time"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/ember3d/ember/backend"
	"github.com/ember3d/ember/curated"
	"github.com/ember3d/ember/input"
	"github.com/ember3d/ember/logger"
)

func init() {
	backend.Register("xinput", func(in *input.Input) (input.Source, error) {
		return NewSource(in)
	})
}

// the XInput DLL generations, newest first. 9.1.0 ships with the OS and
// is the fallback of last resort
var dllNames = []string{"xinput1_4.dll", "xinput1_3.dll", "xinput9_1_0.dll"}

const (
	errorSuccess            = 0
	errorDeviceNotConnected = 1167
)

// wButtons bits of XINPUT_GAMEPAD
const (
	btnDpadUp        = 0x0001
	btnDpadDown      = 0x0002
	btnDpadLeft      = 0x0004
	btnDpadRight     = 0x0008
	btnStart         = 0x0010
	btnBack          = 0x0020
	btnLeftThumb     = 0x0040
	btnRightThumb    = 0x0080
	btnLeftShoulder  = 0x0100
	btnRightShoulder = 0x0200
	btnA             = 0x1000
	btnB             = 0x2000
	btnX             = 0x4000
	btnY             = 0x8000
)

// xinputState is XINPUT_STATE
type xinputState struct {
	packetNumber uint32
	gamepad      xinputGamepad
}

// xinputGamepad is XINPUT_GAMEPAD
type xinputGamepad struct {
	buttons      uint16
	leftTrigger  uint8
	rightTrigger uint8
	thumbLX      int16
	thumbLY      int16
	thumbRX      int16
	thumbRY      int16
}

// xinputVibration is XINPUT_VIBRATION
type xinputVibration struct {
	leftMotorSpeed  uint16
	rightMotorSpeed uint16
}

// how often an empty slot is probed for a newly connected pad. probing a
// disconnected slot is expensive in the XInput implementation
const probeInterval = time.Second

// dragTick is the cadence of the watchdog; stallTicks is how many silent
// ticks count as a stalled pump
const (
	dragTick   = 20 * time.Millisecond
	stallTicks = 5
)

// Source is the XInput backend. Create with NewSource().
type Source struct {
	in *input.Input

	getState *windows.LazyProc
	setState *windows.LazyProc

	// slot drivers, nil while the slot is empty
	drivers [4]*slotDriver
	ids     [4]input.ProductID

	// next time the empty slots are probed
	probe time.Time

	// OnStall, when not nil, is called at the watchdog cadence while the
	// frame pump is stalled by a native drag or resize. Set it before the
	// first Pump().
	OnStall func()

	pumped  int32 // set by Pump, cleared by the watchdog
	stalled int32 // set by the watchdog, cleared by Pump
	done    chan bool
}

// NewSource loads the newest available XInput DLL and probes the four
// user slots.
func NewSource(in *input.Input) (*Source, error) {
	var dll *windows.LazyDLL
	var err error
	for _, name := range dllNames {
		dll = windows.NewLazySystemDLL(name)
		if err = dll.Load(); err == nil {
			logger.Logf(logger.Allow, "xinput", "using %s", name)
			break
		}
	}
	if err != nil {
		return nil, curated.Errorf("xinput: no XInput DLL: %v", err)
	}

	s := &Source{
		in:       in,
		getState: dll.NewProc("XInputGetState"),
		setState: dll.NewProc("XInputSetState"),
		done:     make(chan bool),
	}

	for user := range s.drivers {
		s.probeSlot(uint32(user))
	}

	go s.watchdog()

	return s, nil
}

// ID implements the input.Source interface.
func (s *Source) ID() string {
	return "xinput"
}

// Close implements the input.Source interface.
func (s *Source) Close() error {
	close(s.done)
	for user, d := range s.drivers {
		if d != nil {
			s.in.RemoveGamepad(s.ids[user])
			s.drivers[user] = nil
		}
	}
	return nil
}

// Pump implements the input.Source interface. XInput has no event queue;
// the slot drivers poll during the device update. Pump probes the empty
// slots for new pads and settles the drag watchdog.
func (s *Source) Pump() error {
	atomic.StoreInt32(&s.pumped, 1)
	if atomic.SwapInt32(&s.stalled, 0) == 1 {
		// the pump just came back from a native drag; release the button
		// that started it
		if s.in.Mouse.Button(input.MouseButtonLeft) {
			s.in.Mouse.OnMouseUp(s.in.Mouse.Position(), input.MouseButtonLeft, 0)
		}
	}

	for user, d := range s.drivers {
		if d != nil && d.gone {
			s.in.RemoveGamepad(s.ids[user])
			s.drivers[user] = nil
		}
	}

	if now := time.Now(); now.After(s.probe) {
		s.probe = now.Add(probeInterval)
		for user, d := range s.drivers {
			if d == nil {
				s.probeSlot(uint32(user))
			}
		}
	}

	return nil
}

func (s *Source) probeSlot(user uint32) {
	var st xinputState
	r, _, _ := s.getState.Call(uintptr(user), uintptr(unsafe.Pointer(&st)))
	if r != errorSuccess {
		return
	}

	d := &slotDriver{src: s, user: user}
	id := productID(user)
	if slot := s.in.AddGamepad(input.NewGamepad(d, id, d.Name())); slot < 0 {
		return
	}
	s.drivers[user] = d
	s.ids[user] = id
}

// watchdog watches for the frame pump going quiet while the left mouse
// button is held, which is what a native drag looks like from here.
func (s *Source) watchdog() {
	tick := time.NewTicker(dragTick)
	defer tick.Stop()

	silent := 0
	for {
		select {
		case <-s.done:
			return
		case <-tick.C:
			if atomic.SwapInt32(&s.pumped, 0) == 1 {
				silent = 0
				continue
			}
			silent++
			if silent >= stallTicks {
				atomic.StoreInt32(&s.stalled, 1)
				if s.OnStall != nil {
					s.OnStall()
				}
			}
		}
	}
}

// productID builds a product identity for an XInput user slot. XInput
// exposes no hardware identity; the slot number serves.
func productID(user uint32) input.ProductID {
	var id input.ProductID
	copy(id[:], "xinput")
	id[15] = byte(user)
	return id
}

// slotDriver adapts one XInput user slot to the GamepadDriver interface.
type slotDriver struct {
	src  *Source
	user uint32
	gone bool

	// last seen packet number and the state decoded from it
	packet uint32
	state  input.GamepadState
}

func (d *slotDriver) Name() string {
	return "XInput controller"
}

// UpdateRawState implements the input.GamepadDriver interface.
func (d *slotDriver) UpdateRawState(raw *input.GamepadState) bool {
	var st xinputState
	r, _, _ := d.src.getState.Call(uintptr(d.user), uintptr(unsafe.Pointer(&st)))
	if r == errorDeviceNotConnected {
		d.gone = true
		return true
	}
	if r != errorSuccess {
		*raw = d.state
		return false
	}

	// an unchanged packet number means nothing on the pad moved
	if st.packetNumber != d.packet || d.packet == 0 {
		d.packet = st.packetNumber
		d.decode(&st.gamepad)
	}

	*raw = d.state
	return false
}

func (d *slotDriver) decode(g *xinputGamepad) {
	held := func(bit uint16) bool {
		return g.buttons&bit != 0
	}

	d.state.Buttons[input.GamepadButtonA] = held(btnA)
	d.state.Buttons[input.GamepadButtonB] = held(btnB)
	d.state.Buttons[input.GamepadButtonX] = held(btnX)
	d.state.Buttons[input.GamepadButtonY] = held(btnY)
	d.state.Buttons[input.GamepadButtonStart] = held(btnStart)
	d.state.Buttons[input.GamepadButtonBack] = held(btnBack)
	d.state.Buttons[input.GamepadButtonLeftThumb] = held(btnLeftThumb)
	d.state.Buttons[input.GamepadButtonRightThumb] = held(btnRightThumb)
	d.state.Buttons[input.GamepadButtonLeftShoulder] = held(btnLeftShoulder)
	d.state.Buttons[input.GamepadButtonRightShoulder] = held(btnRightShoulder)
	d.state.Buttons[input.GamepadButtonDPadUp] = held(btnDpadUp)
	d.state.Buttons[input.GamepadButtonDPadDown] = held(btnDpadDown)
	d.state.Buttons[input.GamepadButtonDPadLeft] = held(btnDpadLeft)
	d.state.Buttons[input.GamepadButtonDPadRight] = held(btnDpadRight)

	lx := thumbValue(g.thumbLX)
	ly := thumbValue(g.thumbLY)
	rx := thumbValue(g.thumbRX)
	ry := thumbValue(g.thumbRY)
	lt := float32(g.leftTrigger) / 255
	rt := float32(g.rightTrigger) / 255

	d.state.Axes[input.GamepadAxisLeftStickX] = lx
	d.state.Axes[input.GamepadAxisLeftStickY] = ly
	d.state.Axes[input.GamepadAxisRightStickX] = rx
	d.state.Axes[input.GamepadAxisRightStickY] = ry
	d.state.Axes[input.GamepadAxisLeftTrigger] = lt
	d.state.Axes[input.GamepadAxisRightTrigger] = rt

	d.state.Buttons[input.GamepadButtonLeftTrigger] = lt > input.TriggerThreshold
	d.state.Buttons[input.GamepadButtonRightTrigger] = rt > input.TriggerThreshold

	d.state.Buttons[input.GamepadButtonLeftStickUp] = ly > input.LeftStickDeadzone
	d.state.Buttons[input.GamepadButtonLeftStickDown] = ly < -input.LeftStickDeadzone
	d.state.Buttons[input.GamepadButtonLeftStickLeft] = lx < -input.LeftStickDeadzone
	d.state.Buttons[input.GamepadButtonLeftStickRight] = lx > input.LeftStickDeadzone

	d.state.Buttons[input.GamepadButtonRightStickUp] = ry > input.RightStickDeadzone
	d.state.Buttons[input.GamepadButtonRightStickDown] = ry < -input.RightStickDeadzone
	d.state.Buttons[input.GamepadButtonRightStickLeft] = rx < -input.RightStickDeadzone
	d.state.Buttons[input.GamepadButtonRightStickRight] = rx > input.RightStickDeadzone
}

// thumbValue normalises a signed 16-bit thumb stick value. The negative
// half of the range is one count longer than the positive half.
func thumbValue(v int16) float32 {
	if v <= 0 {
		return float32(v) / 32768
	}
	return float32(v) / 32767
}

// SetVibration implements the input.GamepadDriver interface. The four
// motor state collapses to the two XInput motors.
func (d *slotDriver) SetVibration(v input.GamepadVibration) error {
	left, right := v.TwoMotor()
	vib := xinputVibration{
		leftMotorSpeed:  uint16(left * 0xffff),
		rightMotorSpeed: uint16(right * 0xffff),
	}
	r, _, _ := d.src.setState.Call(uintptr(d.user), uintptr(unsafe.Pointer(&vib)))
	if r != errorSuccess {
		return curated.Errorf("xinput: set state: error %d", r)
	}
	return nil
}

// SetColor implements the input.GamepadDriver interface. XInput pads have
// no controllable light.
func (d *slotDriver) SetColor(r, g, b uint8) error {
	return curated.Errorf(input.UnsupportedError, "LED colour")
}

// Close implements the input.GamepadDriver interface. XInput holds no
// per-pad handle.
func (d *slotDriver) Close() {
}
