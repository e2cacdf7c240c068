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

// Sentinel error patterns for the input subsystem. Match with curated.Is()
// or curated.Has().
const (
	// DisconnectedError indicates that a device is no longer usable and
	// should be removed.
	DisconnectedError = "input device disconnected"

	// UnsupportedError indicates an operation the device cannot perform,
	// for example setting the LED colour of a gamepad with no light.
	UnsupportedError = "input: unsupported: %v"
)

// Sink receives the events a device synthesises during Update(). The facade
// walks the collected events after every device has updated and fires the
// corresponding delegates.
type Sink struct {
	Events []Event
}

// Push appends an event to the sink.
func (s *Sink) Push(ev Event) {
	s.Events = append(s.Events, ev)
}

// Reset empties the sink for reuse in the next frame.
func (s *Sink) Reset() {
	s.Events = s.Events[:0]
}

// Device is the interface shared by all input devices. Keyboard, Mouse and
// Gamepad implement it; custom devices can be added to the facade with
// AddDevice().
type Device interface {
	// Name of the device. Immutable.
	Name() string

	// ResetState clears the device's event queue and all raw state. Called
	// on focus loss and on window destruction. After ResetState every
	// pressed-state query returns false.
	ResetState()

	// Update polls the device's current state, computes edge transitions,
	// appends synthesised events to the sink and leaves the owned queue
	// empty. Returning true indicates the device is no longer usable and
	// the facade will remove it at the end of the frame.
	Update(sink *Sink) bool
}
