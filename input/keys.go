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

// Key is the canonical keyboard key enumeration. Backends translate their
// native scancodes into this enumeration; unknown scancodes map to KeyNone.
type Key int

// List of canonical keyboard keys.
const (
	KeyNone Key = iota
	KeyBackspace
	KeyTab
	KeyClear
	KeyReturn
	KeyPause
	KeyCapsLock
	KeyEscape
	KeySpace
	KeyPageUp
	KeyPageDown
	KeyEnd
	KeyHome
	KeyLeft
	KeyUp
	KeyRight
	KeyDown
	KeyPrintScreen
	KeyInsert
	KeyDelete
	KeyAlpha0
	KeyAlpha1
	KeyAlpha2
	KeyAlpha3
	KeyAlpha4
	KeyAlpha5
	KeyAlpha6
	KeyAlpha7
	KeyAlpha8
	KeyAlpha9
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	KeyLeftWindows
	KeyRightWindows
	KeyApplications
	KeyNumpad0
	KeyNumpad1
	KeyNumpad2
	KeyNumpad3
	KeyNumpad4
	KeyNumpad5
	KeyNumpad6
	KeyNumpad7
	KeyNumpad8
	KeyNumpad9
	KeyNumpadMultiply
	KeyNumpadAdd
	KeyNumpadSubtract
	KeyNumpadDecimal
	KeyNumpadDivide
	KeyNumpadReturn
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyF13
	KeyF14
	KeyF15
	KeyNumLock
	KeyScrollLock
	KeyLeftShift
	KeyRightShift
	KeyLeftControl
	KeyRightControl
	KeyLeftAlt
	KeyRightAlt
	KeySemicolon
	KeyPlus
	KeyComma
	KeyMinus
	KeyPeriod
	KeySlash
	KeyBackQuote
	KeyLeftBracket
	KeyBackslash
	KeyRightBracket
	KeyQuote

	// KeyMax is not a key. It is the size of the key state vector.
	KeyMax
)

var keyNames = map[Key]string{
	KeyNone:           "None",
	KeyBackspace:      "Backspace",
	KeyTab:            "Tab",
	KeyClear:          "Clear",
	KeyReturn:         "Return",
	KeyPause:          "Pause",
	KeyCapsLock:       "CapsLock",
	KeyEscape:         "Escape",
	KeySpace:          "Space",
	KeyPageUp:         "PageUp",
	KeyPageDown:       "PageDown",
	KeyEnd:            "End",
	KeyHome:           "Home",
	KeyLeft:           "Left",
	KeyUp:             "Up",
	KeyRight:          "Right",
	KeyDown:           "Down",
	KeyPrintScreen:    "PrintScreen",
	KeyInsert:         "Insert",
	KeyDelete:         "Delete",
	KeyAlpha0:         "Alpha0",
	KeyAlpha1:         "Alpha1",
	KeyAlpha2:         "Alpha2",
	KeyAlpha3:         "Alpha3",
	KeyAlpha4:         "Alpha4",
	KeyAlpha5:         "Alpha5",
	KeyAlpha6:         "Alpha6",
	KeyAlpha7:         "Alpha7",
	KeyAlpha8:         "Alpha8",
	KeyAlpha9:         "Alpha9",
	KeyA:              "A",
	KeyB:              "B",
	KeyC:              "C",
	KeyD:              "D",
	KeyE:              "E",
	KeyF:              "F",
	KeyG:              "G",
	KeyH:              "H",
	KeyI:              "I",
	KeyJ:              "J",
	KeyK:              "K",
	KeyL:              "L",
	KeyM:              "M",
	KeyN:              "N",
	KeyO:              "O",
	KeyP:              "P",
	KeyQ:              "Q",
	KeyR:              "R",
	KeyS:              "S",
	KeyT:              "T",
	KeyU:              "U",
	KeyV:              "V",
	KeyW:              "W",
	KeyX:              "X",
	KeyY:              "Y",
	KeyZ:              "Z",
	KeyLeftWindows:    "LeftWindows",
	KeyRightWindows:   "RightWindows",
	KeyApplications:   "Applications",
	KeyNumpad0:        "Numpad0",
	KeyNumpad1:        "Numpad1",
	KeyNumpad2:        "Numpad2",
	KeyNumpad3:        "Numpad3",
	KeyNumpad4:        "Numpad4",
	KeyNumpad5:        "Numpad5",
	KeyNumpad6:        "Numpad6",
	KeyNumpad7:        "Numpad7",
	KeyNumpad8:        "Numpad8",
	KeyNumpad9:        "Numpad9",
	KeyNumpadMultiply: "NumpadMultiply",
	KeyNumpadAdd:      "NumpadAdd",
	KeyNumpadSubtract: "NumpadSubtract",
	KeyNumpadDecimal:  "NumpadDecimal",
	KeyNumpadDivide:   "NumpadDivide",
	KeyNumpadReturn:   "NumpadReturn",
	KeyF1:             "F1",
	KeyF2:             "F2",
	KeyF3:             "F3",
	KeyF4:             "F4",
	KeyF5:             "F5",
	KeyF6:             "F6",
	KeyF7:             "F7",
	KeyF8:             "F8",
	KeyF9:             "F9",
	KeyF10:            "F10",
	KeyF11:            "F11",
	KeyF12:            "F12",
	KeyF13:            "F13",
	KeyF14:            "F14",
	KeyF15:            "F15",
	KeyNumLock:        "NumLock",
	KeyScrollLock:     "ScrollLock",
	KeyLeftShift:      "LeftShift",
	KeyRightShift:     "RightShift",
	KeyLeftControl:    "LeftControl",
	KeyRightControl:   "RightControl",
	KeyLeftAlt:        "LeftAlt",
	KeyRightAlt:       "RightAlt",
	KeySemicolon:      "Semicolon",
	KeyPlus:           "Plus",
	KeyComma:          "Comma",
	KeyMinus:          "Minus",
	KeyPeriod:         "Period",
	KeySlash:          "Slash",
	KeyBackQuote:      "BackQuote",
	KeyLeftBracket:    "LeftBracket",
	KeyBackslash:      "Backslash",
	KeyRightBracket:   "RightBracket",
	KeyQuote:          "Quote",
}

// built lazily on the first call to ParseKey.
var keyValues map[string]Key

func (k Key) String() string {
	if s, ok := keyNames[k]; ok {
		return s
	}
	return "None"
}

// ParseKey returns the Key with the given canonical name. Unknown names
// parse to KeyNone, mirroring the treatment of unknown scancodes.
func ParseKey(name string) Key {
	if keyValues == nil {
		keyValues = make(map[string]Key, len(keyNames))
		for k, s := range keyNames {
			keyValues[s] = k
		}
	}
	return keyValues[name]
}
