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

package sdl

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/ember3d/ember/input"
)

var scancodes = map[sdl.Scancode]input.Key{
	sdl.SCANCODE_BACKSPACE:    input.KeyBackspace,
	sdl.SCANCODE_TAB:          input.KeyTab,
	sdl.SCANCODE_CLEAR:        input.KeyClear,
	sdl.SCANCODE_RETURN:       input.KeyReturn,
	sdl.SCANCODE_PAUSE:        input.KeyPause,
	sdl.SCANCODE_CAPSLOCK:     input.KeyCapsLock,
	sdl.SCANCODE_ESCAPE:       input.KeyEscape,
	sdl.SCANCODE_SPACE:        input.KeySpace,
	sdl.SCANCODE_PAGEUP:       input.KeyPageUp,
	sdl.SCANCODE_PAGEDOWN:     input.KeyPageDown,
	sdl.SCANCODE_END:          input.KeyEnd,
	sdl.SCANCODE_HOME:         input.KeyHome,
	sdl.SCANCODE_LEFT:         input.KeyLeft,
	sdl.SCANCODE_UP:           input.KeyUp,
	sdl.SCANCODE_RIGHT:        input.KeyRight,
	sdl.SCANCODE_DOWN:         input.KeyDown,
	sdl.SCANCODE_PRINTSCREEN:  input.KeyPrintScreen,
	sdl.SCANCODE_INSERT:       input.KeyInsert,
	sdl.SCANCODE_DELETE:       input.KeyDelete,
	sdl.SCANCODE_0:            input.KeyAlpha0,
	sdl.SCANCODE_1:            input.KeyAlpha1,
	sdl.SCANCODE_2:            input.KeyAlpha2,
	sdl.SCANCODE_3:            input.KeyAlpha3,
	sdl.SCANCODE_4:            input.KeyAlpha4,
	sdl.SCANCODE_5:            input.KeyAlpha5,
	sdl.SCANCODE_6:            input.KeyAlpha6,
	sdl.SCANCODE_7:            input.KeyAlpha7,
	sdl.SCANCODE_8:            input.KeyAlpha8,
	sdl.SCANCODE_9:            input.KeyAlpha9,
	sdl.SCANCODE_A:            input.KeyA,
	sdl.SCANCODE_B:            input.KeyB,
	sdl.SCANCODE_C:            input.KeyC,
	sdl.SCANCODE_D:            input.KeyD,
	sdl.SCANCODE_E:            input.KeyE,
	sdl.SCANCODE_F:            input.KeyF,
	sdl.SCANCODE_G:            input.KeyG,
	sdl.SCANCODE_H:            input.KeyH,
	sdl.SCANCODE_I:            input.KeyI,
	sdl.SCANCODE_J:            input.KeyJ,
	sdl.SCANCODE_K:            input.KeyK,
	sdl.SCANCODE_L:            input.KeyL,
	sdl.SCANCODE_M:            input.KeyM,
	sdl.SCANCODE_N:            input.KeyN,
	sdl.SCANCODE_O:            input.KeyO,
	sdl.SCANCODE_P:            input.KeyP,
	sdl.SCANCODE_Q:            input.KeyQ,
	sdl.SCANCODE_R:            input.KeyR,
	sdl.SCANCODE_S:            input.KeyS,
	sdl.SCANCODE_T:            input.KeyT,
	sdl.SCANCODE_U:            input.KeyU,
	sdl.SCANCODE_V:            input.KeyV,
	sdl.SCANCODE_W:            input.KeyW,
	sdl.SCANCODE_X:            input.KeyX,
	sdl.SCANCODE_Y:            input.KeyY,
	sdl.SCANCODE_Z:            input.KeyZ,
	sdl.SCANCODE_LGUI:         input.KeyLeftWindows,
	sdl.SCANCODE_RGUI:         input.KeyRightWindows,
	sdl.SCANCODE_APPLICATION:  input.KeyApplications,
	sdl.SCANCODE_KP_0:         input.KeyNumpad0,
	sdl.SCANCODE_KP_1:         input.KeyNumpad1,
	sdl.SCANCODE_KP_2:         input.KeyNumpad2,
	sdl.SCANCODE_KP_3:         input.KeyNumpad3,
	sdl.SCANCODE_KP_4:         input.KeyNumpad4,
	sdl.SCANCODE_KP_5:         input.KeyNumpad5,
	sdl.SCANCODE_KP_6:         input.KeyNumpad6,
	sdl.SCANCODE_KP_7:         input.KeyNumpad7,
	sdl.SCANCODE_KP_8:         input.KeyNumpad8,
	sdl.SCANCODE_KP_9:         input.KeyNumpad9,
	sdl.SCANCODE_KP_MULTIPLY:  input.KeyNumpadMultiply,
	sdl.SCANCODE_KP_PLUS:      input.KeyNumpadAdd,
	sdl.SCANCODE_KP_MINUS:     input.KeyNumpadSubtract,
	sdl.SCANCODE_KP_PERIOD:    input.KeyNumpadDecimal,
	sdl.SCANCODE_KP_DIVIDE:    input.KeyNumpadDivide,
	sdl.SCANCODE_KP_ENTER:     input.KeyNumpadReturn,
	sdl.SCANCODE_F1:           input.KeyF1,
	sdl.SCANCODE_F2:           input.KeyF2,
	sdl.SCANCODE_F3:           input.KeyF3,
	sdl.SCANCODE_F4:           input.KeyF4,
	sdl.SCANCODE_F5:           input.KeyF5,
	sdl.SCANCODE_F6:           input.KeyF6,
	sdl.SCANCODE_F7:           input.KeyF7,
	sdl.SCANCODE_F8:           input.KeyF8,
	sdl.SCANCODE_F9:           input.KeyF9,
	sdl.SCANCODE_F10:          input.KeyF10,
	sdl.SCANCODE_F11:          input.KeyF11,
	sdl.SCANCODE_F12:          input.KeyF12,
	sdl.SCANCODE_F13:          input.KeyF13,
	sdl.SCANCODE_F14:          input.KeyF14,
	sdl.SCANCODE_F15:          input.KeyF15,
	sdl.SCANCODE_NUMLOCKCLEAR: input.KeyNumLock,
	sdl.SCANCODE_SCROLLLOCK:   input.KeyScrollLock,
	sdl.SCANCODE_LSHIFT:       input.KeyLeftShift,
	sdl.SCANCODE_RSHIFT:       input.KeyRightShift,
	sdl.SCANCODE_LCTRL:        input.KeyLeftControl,
	sdl.SCANCODE_RCTRL:        input.KeyRightControl,
	sdl.SCANCODE_LALT:         input.KeyLeftAlt,
	sdl.SCANCODE_RALT:         input.KeyRightAlt,
	sdl.SCANCODE_SEMICOLON:    input.KeySemicolon,
	sdl.SCANCODE_EQUALS:       input.KeyPlus,
	sdl.SCANCODE_COMMA:        input.KeyComma,
	sdl.SCANCODE_MINUS:        input.KeyMinus,
	sdl.SCANCODE_PERIOD:       input.KeyPeriod,
	sdl.SCANCODE_SLASH:        input.KeySlash,
	sdl.SCANCODE_GRAVE:        input.KeyBackQuote,
	sdl.SCANCODE_LEFTBRACKET:  input.KeyLeftBracket,
	sdl.SCANCODE_BACKSLASH:    input.KeyBackslash,
	sdl.SCANCODE_RIGHTBRACKET: input.KeyRightBracket,
	sdl.SCANCODE_APOSTROPHE:   input.KeyQuote,
}

// translateScancode maps an SDL scancode to the universal key enumeration.
// Unknown scancodes map to KeyNone.
func translateScancode(sc sdl.Scancode) input.Key {
	return scancodes[sc]
}
