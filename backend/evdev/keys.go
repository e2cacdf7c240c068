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
	"github.com/ember3d/ember/input"
)

// keycodes maps the KEY_* codes of <linux/input-event-codes.h> to the
// universal key enumeration.
var keycodes = map[uint16]input.Key{
	1:   input.KeyEscape,
	2:   input.KeyAlpha1,
	3:   input.KeyAlpha2,
	4:   input.KeyAlpha3,
	5:   input.KeyAlpha4,
	6:   input.KeyAlpha5,
	7:   input.KeyAlpha6,
	8:   input.KeyAlpha7,
	9:   input.KeyAlpha8,
	10:  input.KeyAlpha9,
	11:  input.KeyAlpha0,
	12:  input.KeyMinus,
	13:  input.KeyPlus,
	14:  input.KeyBackspace,
	15:  input.KeyTab,
	16:  input.KeyQ,
	17:  input.KeyW,
	18:  input.KeyE,
	19:  input.KeyR,
	20:  input.KeyT,
	21:  input.KeyY,
	22:  input.KeyU,
	23:  input.KeyI,
	24:  input.KeyO,
	25:  input.KeyP,
	26:  input.KeyLeftBracket,
	27:  input.KeyRightBracket,
	28:  input.KeyReturn,
	29:  input.KeyLeftControl,
	30:  input.KeyA,
	31:  input.KeyS,
	32:  input.KeyD,
	33:  input.KeyF,
	34:  input.KeyG,
	35:  input.KeyH,
	36:  input.KeyJ,
	37:  input.KeyK,
	38:  input.KeyL,
	39:  input.KeySemicolon,
	40:  input.KeyQuote,
	41:  input.KeyBackQuote,
	42:  input.KeyLeftShift,
	43:  input.KeyBackslash,
	44:  input.KeyZ,
	45:  input.KeyX,
	46:  input.KeyC,
	47:  input.KeyV,
	48:  input.KeyB,
	49:  input.KeyN,
	50:  input.KeyM,
	51:  input.KeyComma,
	52:  input.KeyPeriod,
	53:  input.KeySlash,
	54:  input.KeyRightShift,
	55:  input.KeyNumpadMultiply,
	56:  input.KeyLeftAlt,
	57:  input.KeySpace,
	58:  input.KeyCapsLock,
	59:  input.KeyF1,
	60:  input.KeyF2,
	61:  input.KeyF3,
	62:  input.KeyF4,
	63:  input.KeyF5,
	64:  input.KeyF6,
	65:  input.KeyF7,
	66:  input.KeyF8,
	67:  input.KeyF9,
	68:  input.KeyF10,
	69:  input.KeyNumLock,
	70:  input.KeyScrollLock,
	71:  input.KeyNumpad7,
	72:  input.KeyNumpad8,
	73:  input.KeyNumpad9,
	74:  input.KeyNumpadSubtract,
	75:  input.KeyNumpad4,
	76:  input.KeyNumpad5,
	77:  input.KeyNumpad6,
	78:  input.KeyNumpadAdd,
	79:  input.KeyNumpad1,
	80:  input.KeyNumpad2,
	81:  input.KeyNumpad3,
	82:  input.KeyNumpad0,
	83:  input.KeyNumpadDecimal,
	87:  input.KeyF11,
	88:  input.KeyF12,
	96:  input.KeyNumpadReturn,
	97:  input.KeyRightControl,
	98:  input.KeyNumpadDivide,
	99:  input.KeyPrintScreen,
	100: input.KeyRightAlt,
	102: input.KeyHome,
	103: input.KeyUp,
	104: input.KeyPageUp,
	105: input.KeyLeft,
	106: input.KeyRight,
	107: input.KeyEnd,
	108: input.KeyDown,
	109: input.KeyPageDown,
	110: input.KeyInsert,
	111: input.KeyDelete,
	119: input.KeyPause,
	125: input.KeyLeftWindows,
	126: input.KeyRightWindows,
	127: input.KeyApplications,
	183: input.KeyF13,
	184: input.KeyF14,
	185: input.KeyF15,
}
