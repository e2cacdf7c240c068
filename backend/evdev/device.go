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

package evdev

import (
	"encoding/binary"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/ember3d/ember/curated"
)

// event types
const (
	evSyn = 0x00
	evKey = 0x01
	evRel = 0x02
	evAbs = 0x03
	evFF  = 0x15
)

// sizeof(struct input_event) on 64-bit: two 8-byte timestamp words, type,
// code and value
const eventSize = 24

// event is a decoded struct input_event. The timestamp is discarded.
type event struct {
	typ   uint16
	code  uint16
	value int32
}

// ioctl request encoding, as the _IOC macros in <asm-generic/ioctl.h>
const (
	iocWrite = 1
	iocRead  = 2
)

func ioc(dir, typ, nr, size uintptr) uintptr {
	return dir<<30 | size<<16 | typ<<8 | nr
}

// evdev ioctl requests
func eviocgname(size uintptr) uintptr { return ioc(iocRead, 'E', 0x06, size) }
func eviocgbit(ev, size uintptr) uintptr {
	return ioc(iocRead, 'E', 0x20+ev, size)
}
func eviocgabs(abs uintptr) uintptr { return ioc(iocRead, 'E', 0x40+abs, 24) }

var (
	eviocgrab = ioc(iocWrite, 'E', 0x90, 4)
	eviocsff  = ioc(iocWrite, 'E', 0x80, ffEffectSize)
	eviocrmff = ioc(iocWrite, 'E', 0x81, 4)
)

// device is an open /dev/input/event* node.
type device struct {
	fd   int
	path string
}

func openDevice(path string) (*device, error) {
	fd, err := unix.Open(path, unix.O_RDWR|unix.O_NONBLOCK|unix.O_CLOEXEC, 0)
	if err != nil {
		// a read-only open still serves everything except force feedback
		fd, err = unix.Open(path, unix.O_RDONLY|unix.O_NONBLOCK|unix.O_CLOEXEC, 0)
		if err != nil {
			return nil, curated.Errorf("evdev: %s: %v", path, err)
		}
	}
	return &device{fd: fd, path: path}, nil
}

func (d *device) close() {
	_ = unix.Close(d.fd)
}

func (d *device) ioctl(request uintptr, arg unsafe.Pointer) error {
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(d.fd), request, uintptr(arg))
	if errno != 0 {
		return errno
	}
	return nil
}

// name returns the device's self-reported name.
func (d *device) name() string {
	var buf [256]byte
	if err := d.ioctl(eviocgname(uintptr(len(buf))), unsafe.Pointer(&buf[0])); err != nil {
		return ""
	}
	for i, b := range buf {
		if b == 0 {
			return string(buf[:i])
		}
	}
	return string(buf[:])
}

// bits returns the capability bitmask for the event type. Event type 0
// queries the supported event types themselves.
func (d *device) bits(ev uintptr) ([]byte, error) {
	var buf [96]byte
	if err := d.ioctl(eviocgbit(ev, uintptr(len(buf))), unsafe.Pointer(&buf[0])); err != nil {
		return nil, curated.Errorf("evdev: %s: %v", d.path, err)
	}
	return buf[:], nil
}

func hasBit(bits []byte, n int) bool {
	if n/8 >= len(bits) {
		return false
	}
	return bits[n/8]&(1<<(n%8)) != 0
}

// absInfo is struct input_absinfo.
type absInfo struct {
	value      int32
	minimum    int32
	maximum    int32
	fuzz       int32
	flat       int32
	resolution int32
}

func (d *device) absInfo(axis uintptr) (absInfo, error) {
	var info absInfo
	if err := d.ioctl(eviocgabs(axis), unsafe.Pointer(&info)); err != nil {
		return absInfo{}, curated.Errorf("evdev: %s: %v", d.path, err)
	}
	return info, nil
}

// grab takes exclusive access to the device so its events stop reaching
// other readers.
func (d *device) grab(enable bool) error {
	var v int32
	if enable {
		v = 1
	}
	if err := d.ioctl(eviocgrab, unsafe.Pointer(&v)); err != nil {
		return curated.Errorf("evdev: %s: %v", d.path, err)
	}
	return nil
}

// read drains pending events, calling f for each. Returns false if the
// device is gone.
func (d *device) read(f func(event)) bool {
	var buf [eventSize * 64]byte
	for {
		n, err := unix.Read(d.fd, buf[:])
		if err == unix.EAGAIN {
			return true
		}
		if err != nil || n <= 0 {
			return false
		}
		for off := 0; off+eventSize <= n; off += eventSize {
			f(event{
				typ:   binary.LittleEndian.Uint16(buf[off+16:]),
				code:  binary.LittleEndian.Uint16(buf[off+18:]),
				value: int32(binary.LittleEndian.Uint32(buf[off+20:])),
			})
		}
	}
}

// writeEvent sends an event to the device, for example to start a force
// feedback effect.
func (d *device) writeEvent(ev event) error {
	var buf [eventSize]byte
	binary.LittleEndian.PutUint16(buf[16:], ev.typ)
	binary.LittleEndian.PutUint16(buf[18:], ev.code)
	binary.LittleEndian.PutUint32(buf[20:], uint32(ev.value))
	if _, err := unix.Write(d.fd, buf[:]); err != nil {
		return curated.Errorf("evdev: %s: %v", d.path, err)
	}
	return nil
}
