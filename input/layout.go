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

// AxisMapping is the affine transform applied to a raw axis value by a
// Layout.
type AxisMapping struct {
	Scale  float32
	Offset float32
}

// Layout is a per-device remapping from raw gamepad state to mapped state:
// a permutation over the button enumeration, a permutation over the axis
// enumeration and a per-axis affine transform. The default layout is the
// identity with scale 1 and offset 0.
type Layout struct {
	Buttons [GamepadButtonMax]GamepadButton
	Axes    [GamepadAxisMax]GamepadAxis
	AxisMap [GamepadAxisMax]AxisMapping
}

// DefaultLayout returns the identity layout.
func DefaultLayout() Layout {
	var l Layout
	for i := range l.Buttons {
		l.Buttons[i] = GamepadButton(i)
	}
	for i := range l.Axes {
		l.Axes[i] = GamepadAxis(i)
		l.AxisMap[i] = AxisMapping{Scale: 1}
	}
	return l
}

// IsValid reports whether both remapping tables are bijections. A layout
// that drops or doubles a button would silently lose state on every frame.
func (l Layout) IsValid() bool {
	var b [GamepadButtonMax]bool
	for _, to := range l.Buttons {
		if to < 0 || to >= GamepadButtonMax || b[to] {
			return false
		}
		b[to] = true
	}

	var a [GamepadAxisMax]bool
	for _, to := range l.Axes {
		if to < 0 || to >= GamepadAxisMax || a[to] {
			return false
		}
		a[to] = true
	}

	return true
}

// Inverse returns the layout that undoes this one. Returns false if the
// layout is not a valid bijection or if an axis scale is zero.
func (l Layout) Inverse() (Layout, bool) {
	if !l.IsValid() {
		return Layout{}, false
	}

	var inv Layout
	for from, to := range l.Buttons {
		inv.Buttons[to] = GamepadButton(from)
	}
	for from, to := range l.Axes {
		if l.AxisMap[from].Scale == 0 {
			return Layout{}, false
		}
		inv.Axes[to] = GamepadAxis(from)
		inv.AxisMap[to] = AxisMapping{
			Scale:  1 / l.AxisMap[from].Scale,
			Offset: -l.AxisMap[from].Offset / l.AxisMap[from].Scale,
		}
	}

	return inv, true
}

// apply derives mapped state from raw state. Mapped state is never written
// outside of this function.
func (l Layout) apply(raw *GamepadState, mapped *GamepadState) {
	for i, to := range l.Buttons {
		mapped.Buttons[to] = raw.Buttons[i]
	}
	for i, to := range l.Axes {
		mapped.Axes[to] = l.AxisMap[i].Scale*raw.Axes[i] + l.AxisMap[i].Offset
	}
}
