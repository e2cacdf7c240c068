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

// number of events a Queue holds before spilling to the heap. a frame's
// worth of events from a single device rarely exceeds this.
const queueInlineSize = 32

// Queue accumulates the events a device receives within a frame. The
// producer is the device's ingress functions and the consumer is the
// device's Update(); both run on the main thread. Events are appended in
// temporal order and drained in that order once per frame.
type Queue struct {
	inline [queueInlineSize]Event
	spill  []Event
	count  int
}

// Push appends an event to the queue.
func (q *Queue) Push(ev Event) {
	if q.count < queueInlineSize {
		q.inline[q.count] = ev
	} else {
		q.spill = append(q.spill, ev)
	}
	q.count++
}

// Len returns the number of queued events.
func (q *Queue) Len() int {
	return q.count
}

// Drain calls f for every queued event in order and leaves the queue empty.
// A queued event is never inspected again after Drain returns.
func (q *Queue) Drain(f func(Event)) {
	n := q.count
	if n > queueInlineSize {
		n = queueInlineSize
	}
	for i := 0; i < n; i++ {
		f(q.inline[i])
	}
	for _, ev := range q.spill {
		f(ev)
	}
	q.Reset()
}

// Reset empties the queue without inspecting the events.
func (q *Queue) Reset() {
	for i := range q.inline {
		q.inline[i] = nil
	}
	q.spill = q.spill[:0]
	q.count = 0
}
