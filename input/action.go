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

// actionRuntime is the per-name cached state of the action state machine.
// Replacing the mapping lists invalidates the cache.
type actionRuntime struct {
	state       ActionState
	prevPressed bool
}

// actionGroup indexes every action entry sharing a name. Entry names never
// change after SetMappings() so the grouping stays valid while individual
// bindings are edited in place.
type actionGroup struct {
	name    string
	entries []int
}

// bindingPressed reports whether a single action entry's binding is held
// this frame.
func (in *Input) bindingPressed(cfg ActionConfig) bool {
	if in.Keyboard != nil && in.Keyboard.Key(cfg.Key) {
		return true
	}
	if in.Mouse != nil && in.Mouse.Button(cfg.MouseButton) {
		return true
	}
	if cfg.GamepadButton > GamepadButtonNone && cfg.GamepadButton < GamepadButtonMax {
		if cfg.Gamepad == GamepadIndexAll {
			for _, pad := range in.gamepads {
				if pad != nil && pad.Button(cfg.GamepadButton) {
					return true
				}
			}
		} else if pad := in.GamepadAt(int(cfg.Gamepad)); pad != nil {
			if pad.Button(cfg.GamepadButton) {
				return true
			}
		}
	}
	return false
}

// evaluateActions advances the state machine of every named action and
// fires the ActionTriggered delegate on transitions. Press and Release fire
// once; Pressing fires on every frame the binding is held.
func (in *Input) evaluateActions() {
	for gi := range in.actionGroups {
		g := &in.actionGroups[gi]

		// the logical action is the OR of every entry with the name
		pressed := false
		for _, j := range g.entries {
			if in.bindingPressed(in.actions[j]) {
				pressed = true
				break
			}
		}

		rt := in.actionState[g.name]
		if rt == nil {
			rt = &actionRuntime{}
			in.actionState[g.name] = rt
		}

		var next ActionState
		switch {
		case pressed && !rt.prevPressed:
			next = ActionStatePress
		case pressed && rt.prevPressed:
			next = ActionStatePressing
		case !pressed && rt.prevPressed:
			next = ActionStateRelease
		default:
			next = ActionStateWaiting
		}

		fire := next != rt.state || next == ActionStatePressing
		rt.state = next
		rt.prevPressed = pressed

		if fire && next != ActionStateWaiting && in.Delegates.ActionTriggered != nil {
			in.Delegates.ActionTriggered(g.name, next)
		}
	}
}

// Action returns true if the named action's state matches its configured
// trigger mode this frame. Unknown names return false.
func (in *Input) Action(name string) bool {
	cfg, ok := in.ActionConfigByName(name)
	if !ok {
		return false
	}

	state := in.ActionState(name)
	switch cfg.Mode {
	case ActionModePressing:
		return state == ActionStatePress || state == ActionStatePressing
	case ActionModePress:
		return state == ActionStatePress
	case ActionModeRelease:
		return state == ActionStateRelease
	}
	return false
}

// ActionState returns the state machine state of the named action. Unknown
// names return ActionStateNone.
func (in *Input) ActionState(name string) ActionState {
	if rt, ok := in.actionState[name]; ok {
		return rt.state
	}
	return ActionStateNone
}
