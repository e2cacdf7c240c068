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

// Package input is the engine's input subsystem. It normalises raw device
// events arriving from the platform backends into a uniform device-state
// model (keyboard, mouse, gamepads), maintains per-frame edge-triggered
// state, resolves named virtual actions and axes from a user editable
// configuration, and delivers events to listeners.
//
// It can be thought of as a translation layer between the platform backends
// and the game code. The backends push native events through the device
// ingress functions; once per frame the host calls Frame() which updates
// every device, fires the registered delegates and evaluates the virtual
// mappings. Game code reads the query functions.
//
// Everything in this package runs on the main thread during the frame's
// input phase. No locks are taken inside device state access. Ingress
// arriving between two Frame() calls does not change edge-triggered query
// results until the next Frame().
package input
