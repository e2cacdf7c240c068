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

// maximum number of text input runes collected per frame.
const maxInputText = 32

// Keyboard is the keyboard device. It maintains the current and previous
// key-pressed vectors and a short Unicode buffer of the text captured for
// the current frame.
//
// The previous vector mirrors the current vector exactly one Update() ago;
// the two always have identical dimensions and the rotation happens at the
// top of Update() only.
type Keyboard struct {
	queue Queue

	curr [KeyMax]bool
	prev [KeyMax]bool

	text []rune
}

// NewKeyboard is the preferred method of initialisation of the Keyboard
// type.
func NewKeyboard() *Keyboard {
	return &Keyboard{
		text: make([]rune, 0, maxInputText),
	}
}

// Name implements the Device interface.
func (k *Keyboard) Name() string {
	return "Keyboard"
}

// ResetState implements the Device interface. Both state vectors are
// cleared, guaranteeing that a missed key-up while unfocused can never
// surface as a spurious up edge later.
func (k *Keyboard) ResetState() {
	k.queue.Reset()
	k.curr = [KeyMax]bool{}
	k.prev = [KeyMax]bool{}
	k.text = k.text[:0]
}

// Update implements the Device interface.
func (k *Keyboard) Update(sink *Sink) bool {
	k.prev = k.curr
	k.text = k.text[:0]

	k.queue.Drain(func(ev Event) {
		switch ev := ev.(type) {
		case EventKeyDown:
			k.curr[ev.Key] = true
		case EventKeyUp:
			// an up without a matching down is accepted silently but the
			// event is still forwarded
			k.curr[ev.Key] = false
		case EventChar:
			if len(k.text) < maxInputText {
				k.text = append(k.text, ev.Char)
			}
		}
		sink.Push(ev)
	})

	return false
}

// OnChar receives a unit of Unicode text input from a backend.
func (k *Keyboard) OnChar(c rune, target WindowID) {
	k.queue.Push(EventChar{Char: c, Target: target})
}

// OnKeyDown receives a key press from a backend. The press is queued; the
// state vectors only ever change inside Update().
func (k *Keyboard) OnKeyDown(key Key, target WindowID) {
	if key <= KeyNone || key >= KeyMax {
		return
	}
	k.queue.Push(EventKeyDown{Key: key, Target: target})
}

// OnKeyUp receives a key release from a backend.
func (k *Keyboard) OnKeyUp(key Key, target WindowID) {
	if key <= KeyNone || key >= KeyMax {
		return
	}
	k.queue.Push(EventKeyUp{Key: key, Target: target})
}

// Key returns true if the key is currently held.
func (k *Keyboard) Key(key Key) bool {
	if key <= KeyNone || key >= KeyMax {
		return false
	}
	return k.curr[key]
}

// KeyDown returns true only on the first frame the key is held.
func (k *Keyboard) KeyDown(key Key) bool {
	if key <= KeyNone || key >= KeyMax {
		return false
	}
	return k.curr[key] && !k.prev[key]
}

// KeyUp returns true only on the first frame the key is released.
func (k *Keyboard) KeyUp(key Key) bool {
	if key <= KeyNone || key >= KeyMax {
		return false
	}
	return !k.curr[key] && k.prev[key]
}

// IsAnyKeyDown returns true if any key is currently held.
func (k *Keyboard) IsAnyKeyDown() bool {
	for _, held := range k.curr {
		if held {
			return true
		}
	}
	return false
}

// InputText returns the Unicode text captured during the current frame.
func (k *Keyboard) InputText() string {
	return string(k.text)
}
