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

// Name lookups over the mapping lists are case-sensitive string
// comparisons. The lists are short in practice; cost is O(n).

// SetMappings replaces both mapping lists atomically and invalidates all
// cached per-action and per-axis state.
func (in *Input) SetMappings(actions []ActionConfig, axes []AxisConfig) {
	in.actions = make([]ActionConfig, len(actions))
	copy(in.actions, actions)
	in.axes = make([]AxisConfig, len(axes))
	copy(in.axes, axes)
	in.actionState = make(map[string]*actionRuntime)
	in.axisState = make(map[string]*axisRuntime)
	in.regroupActions()
}

// regroupActions rebuilds the name index walked by the per-frame action
// evaluation. First-seen order of the names is preserved.
func (in *Input) regroupActions() {
	in.actionGroups = in.actionGroups[:0]
	idx := make(map[string]int, len(in.actions))
	for i := range in.actions {
		name := in.actions[i].Name
		g, ok := idx[name]
		if !ok {
			g = len(in.actionGroups)
			idx[name] = g
			in.actionGroups = append(in.actionGroups, actionGroup{name: name})
		}
		in.actionGroups[g].entries = append(in.actionGroups[g].entries, i)
	}
}

// ActionMappings returns a copy of the action mapping list.
func (in *Input) ActionMappings() []ActionConfig {
	c := make([]ActionConfig, len(in.actions))
	copy(c, in.actions)
	return c
}

// AxisMappings returns a copy of the axis mapping list.
func (in *Input) AxisMappings() []AxisConfig {
	c := make([]AxisConfig, len(in.axes))
	copy(c, in.axes)
	return c
}

// ActionConfigByName returns the first action entry with the name.
func (in *Input) ActionConfigByName(name string) (ActionConfig, bool) {
	for i := range in.actions {
		if in.actions[i].Name == name {
			return in.actions[i], true
		}
	}
	return ActionConfig{}, false
}

// AxisConfigByName returns the first axis entry with the name.
func (in *Input) AxisConfigByName(name string) (AxisConfig, bool) {
	for i := range in.axes {
		if in.axes[i].Name == name {
			return in.axes[i], true
		}
	}
	return AxisConfig{}, false
}

// AllActionConfigsByName returns every action entry with the name, in
// order.
func (in *Input) AllActionConfigsByName(name string) []ActionConfig {
	var c []ActionConfig
	for i := range in.actions {
		if in.actions[i].Name == name {
			c = append(c, in.actions[i])
		}
	}
	return c
}

// AllAxisConfigsByName returns every axis entry with the name, in order.
func (in *Input) AllAxisConfigsByName(name string) []AxisConfig {
	var c []AxisConfig
	for i := range in.axes {
		if in.axes[i].Name == name {
			c = append(c, in.axes[i])
		}
	}
	return c
}

// SetActionConfigByName replaces the first entry with the name, or every
// entry if all is set. The entry's name is preserved. Returns the number of
// entries modified.
func (in *Input) SetActionConfigByName(name string, cfg ActionConfig, all bool) int {
	n := 0
	for i := range in.actions {
		if in.actions[i].Name != name {
			continue
		}
		cfg.Name = name
		in.actions[i] = cfg
		n++
		if !all {
			break
		}
	}
	return n
}

// SetAxisConfigByName replaces the first entry with the name, or every
// entry if all is set. The entry's name is preserved. Returns the number of
// entries modified.
func (in *Input) SetAxisConfigByName(name string, cfg AxisConfig, all bool) int {
	n := 0
	for i := range in.axes {
		if in.axes[i].Name != name {
			continue
		}
		cfg.Name = name
		in.axes[i] = cfg
		n++
		if !all {
			break
		}
	}
	return n
}

// SetActionKeyByName sets the keyboard key of the first entry with the
// name, or of every entry if all is set.
func (in *Input) SetActionKeyByName(name string, key Key, all bool) int {
	n := 0
	for i := range in.actions {
		if in.actions[i].Name != name {
			continue
		}
		in.actions[i].Key = key
		n++
		if !all {
			break
		}
	}
	return n
}

// SetActionMouseButtonByName sets the mouse button of the first entry with
// the name, or of every entry if all is set.
func (in *Input) SetActionMouseButtonByName(name string, b MouseButton, all bool) int {
	n := 0
	for i := range in.actions {
		if in.actions[i].Name != name {
			continue
		}
		in.actions[i].MouseButton = b
		n++
		if !all {
			break
		}
	}
	return n
}

// SetActionGamepadButtonByName sets the gamepad button of the first entry
// with the name, or of every entry if all is set.
func (in *Input) SetActionGamepadButtonByName(name string, b GamepadButton, all bool) int {
	n := 0
	for i := range in.actions {
		if in.actions[i].Name != name {
			continue
		}
		in.actions[i].GamepadButton = b
		n++
		if !all {
			break
		}
	}
	return n
}
