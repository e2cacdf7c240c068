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

package input_test

import (
	"testing"

	"github.com/ember3d/ember/input"
	"github.com/ember3d/ember/test"
)

func TestQueueOrder(t *testing.T) {
	var q input.Queue

	keys := []input.Key{input.KeyA, input.KeyB, input.KeyC}
	for _, k := range keys {
		q.Push(input.EventKeyDown{Key: k})
	}
	test.Equate(t, q.Len(), 3)

	var drained []input.Key
	q.Drain(func(ev input.Event) {
		drained = append(drained, ev.(input.EventKeyDown).Key)
	})
	test.Equate(t, q.Len(), 0)

	test.Equate(t, len(drained), len(keys))
	for i := range keys {
		test.Equate(t, int(drained[i]), int(keys[i]))
	}
}

func TestQueueSpill(t *testing.T) {
	var q input.Queue

	// push well past the inline capacity. ordering must survive the spill
	const n = 100
	for i := 0; i < n; i++ {
		q.Push(input.EventMouseWheel{Delta: float32(i)})
	}
	test.Equate(t, q.Len(), n)

	i := 0
	q.Drain(func(ev input.Event) {
		test.Equate(t, ev.(input.EventMouseWheel).Delta, float32(i))
		i++
	})
	test.Equate(t, i, n)

	// the queue is reusable after a drain
	q.Push(input.EventMouseLeave{})
	test.Equate(t, q.Len(), 1)
}

func TestQueueReset(t *testing.T) {
	var q input.Queue

	q.Push(input.EventChar{Char: 'x'})
	q.Reset()
	test.Equate(t, q.Len(), 0)

	drained := 0
	q.Drain(func(input.Event) { drained++ })
	test.Equate(t, drained, 0)
}
