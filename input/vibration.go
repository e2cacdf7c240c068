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

// GamepadVibration describes the strength of the four vibration motors,
// each in [0, 1].
type GamepadVibration struct {
	LeftLarge  float32
	LeftSmall  float32
	RightLarge float32
	RightSmall float32
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Clamped returns the vibration state with every motor clamped to [0, 1].
func (v GamepadVibration) Clamped() GamepadVibration {
	return GamepadVibration{
		LeftLarge:  clamp01(v.LeftLarge),
		LeftSmall:  clamp01(v.LeftSmall),
		RightLarge: clamp01(v.RightLarge),
		RightSmall: clamp01(v.RightSmall),
	}
}

// TwoMotor collapses the four motor state to two motors, one per side, by
// averaging the large and small motors. Backends with only two motors scale
// the result to the platform's integer range.
func (v GamepadVibration) TwoMotor() (left float32, right float32) {
	c := v.Clamped()
	return (c.LeftLarge + c.LeftSmall) / 2, (c.RightLarge + c.RightSmall) / 2
}
