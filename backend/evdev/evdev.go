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

//go:build linux

// Package evdev is the Linux event device backend. It reads keyboard and
// gamepad events directly from the /dev/input/event* nodes, with no
// display server or SDL in between, and so suits headless and embedded use.
//
// Device nodes readable by the process are scanned at startup and the
// /dev/input directory is watched for hot-plugged devices afterwards. A
// node is classified by its advertised capabilities: a node with the
// gamepad face buttons is a gamepad, a node with the letter keys is a
// keyboard, anything else is ignored.
package evdev

import (
	"encoding/binary"
	"hash/fnv"
	"path/filepath"
	"strings"
	"unsafe"

	"github.com/fsnotify/fsnotify"

	"github.com/ember3d/ember/backend"
	"github.com/ember3d/ember/input"
	"github.com/ember3d/ember/logger"
)

func init() {
	backend.Register("evdev", func(in *input.Input) (input.Source, error) {
		return NewSource(in)
	})
}

// the directory of event device nodes
const devInput = "/dev/input"

// KEY_A in <linux/input-event-codes.h>; the capability probe for
// keyboard-like nodes
const keyCodeA = 30

// pad pairs a gamepad driver with the product identity it was registered
// under, for hot-unplug notifications.
type pad struct {
	driver *gamepadDriver
	id     input.ProductID
}

// Source is the evdev backend. Create with NewSource().
type Source struct {
	in *input.Input

	// open devices keyed by node path
	keyboards map[string]*device
	pads      map[string]*pad

	// hot-plug notifications. nil if the watch could not be established;
	// devices present at startup still work
	watcher *fsnotify.Watcher
}

// NewSource scans /dev/input for usable devices and starts watching the
// directory for hot-plug events.
func NewSource(in *input.Input) (*Source, error) {
	s := &Source{
		in:        in,
		keyboards: make(map[string]*device),
		pads:      make(map[string]*pad),
	}

	nodes, err := filepath.Glob(filepath.Join(devInput, "event*"))
	if err == nil {
		for _, path := range nodes {
			s.openNode(path)
		}
	}
	if len(s.keyboards) == 0 && len(s.pads) == 0 {
		logger.Log(logger.Allow, "evdev", "no readable input devices found")
	}

	s.watcher, err = fsnotify.NewWatcher()
	if err == nil {
		err = s.watcher.Add(devInput)
	}
	if err != nil {
		logger.Logf(logger.Allow, "evdev", "hot-plug watch unavailable: %v", err)
		s.watcher = nil
	}

	return s, nil
}

// ID implements the input.Source interface.
func (s *Source) ID() string {
	return "evdev"
}

// Close implements the input.Source interface.
func (s *Source) Close() error {
	if s.watcher != nil {
		_ = s.watcher.Close()
	}
	for path, dev := range s.keyboards {
		dev.close()
		delete(s.keyboards, path)
	}
	for path, p := range s.pads {
		// releasing the slot closes the driver and its device node
		s.in.RemoveGamepad(p.id)
		delete(s.pads, path)
	}
	return nil
}

// Pump implements the input.Source interface. Hot-plug notifications are
// drained without blocking before the device nodes are read.
func (s *Source) Pump() error {
	s.drainWatcher()

	for path, dev := range s.keyboards {
		alive := dev.read(func(ev event) {
			if ev.typ != evKey || ev.value == 2 {
				return
			}
			key := keycodes[ev.code]
			if key == input.KeyNone {
				return
			}
			if ev.value == 1 {
				s.in.Keyboard.OnKeyDown(key, 0)
			} else {
				s.in.Keyboard.OnKeyUp(key, 0)
			}
		})
		if !alive {
			dev.close()
			delete(s.keyboards, path)
		}
	}

	for path, p := range s.pads {
		if !p.driver.dev.read(p.driver.decode) {
			// the driver reports the disconnect from UpdateRawState and
			// the slot is released during the frame
			p.driver.gone = true
			delete(s.pads, path)
		}
	}

	return nil
}

// Grab takes (or releases) exclusive access to the open keyboard nodes.
// While grabbed, no other process receives their events.
func (s *Source) Grab(enable bool) {
	for _, dev := range s.keyboards {
		if err := dev.grab(enable); err != nil {
			logger.Logf(logger.Allow, "evdev", "grab: %v", err)
		}
	}
}

func (s *Source) drainWatcher() {
	if s.watcher == nil {
		return
	}
	for {
		select {
		case ev, ok := <-s.watcher.Events:
			if !ok {
				s.watcher = nil
				return
			}
			path := filepath.Clean(ev.Name)
			if !strings.HasPrefix(filepath.Base(path), "event") {
				continue
			}
			switch {
			case ev.Op&fsnotify.Create == fsnotify.Create:
				s.openNode(path)
			case ev.Op&fsnotify.Remove == fsnotify.Remove:
				s.removeNode(path)
			}
		case err, ok := <-s.watcher.Errors:
			if !ok {
				s.watcher = nil
				return
			}
			logger.Logf(logger.Allow, "evdev", "watching %s: %v", devInput, err)
		default:
			return
		}
	}
}

// openNode opens and classifies a device node. Nodes that cannot be
// opened, usually for lack of permission, and nodes that are neither
// keyboard nor gamepad are skipped silently.
func (s *Source) openNode(path string) {
	if _, ok := s.keyboards[path]; ok {
		return
	}
	if _, ok := s.pads[path]; ok {
		return
	}

	dev, err := openDevice(path)
	if err != nil {
		return
	}

	keyBits, err := dev.bits(evKey)
	if err != nil {
		dev.close()
		return
	}

	switch {
	case hasBit(keyBits, btnSouth):
		driver := newGamepadDriver(dev)
		id := productID(dev)
		name := dev.name()
		if slot := s.in.AddGamepad(input.NewGamepad(driver, id, name)); slot < 0 {
			driver.Close()
			return
		}
		s.pads[path] = &pad{driver: driver, id: id}
		logger.Logf(logger.Allow, "evdev", "gamepad: %s (%s)", name, path)

	case hasBit(keyBits, keyCodeA):
		s.keyboards[path] = dev
		logger.Logf(logger.Allow, "evdev", "keyboard: %s (%s)", dev.name(), path)

	default:
		dev.close()
	}
}

func (s *Source) removeNode(path string) {
	if dev, ok := s.keyboards[path]; ok {
		dev.close()
		delete(s.keyboards, path)
		return
	}
	if p, ok := s.pads[path]; ok {
		s.in.RemoveGamepad(p.id)
		delete(s.pads, path)
	}
}

// EVIOCGID returns struct input_id: bustype, vendor, product and version
// as four 16-bit words.
var eviocgid = ioc(iocRead, 'E', 0x02, 8)

// productID builds a product identity from the hardware identity of the
// node. The node path is folded into the upper bytes so that two
// otherwise identical pads remain distinct.
func productID(dev *device) input.ProductID {
	var id input.ProductID

	var hw [4]uint16
	if err := dev.ioctl(eviocgid, unsafe.Pointer(&hw[0])); err == nil {
		for i, w := range hw {
			binary.LittleEndian.PutUint16(id[i*2:], w)
		}
	}

	h := fnv.New64a()
	_, _ = h.Write([]byte(dev.path))
	binary.LittleEndian.PutUint64(id[8:], h.Sum64())

	return id
}
