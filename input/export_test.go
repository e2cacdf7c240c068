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

// SuspendMouseClipForTest exposes the focus-loss half of the cursor clip
// handling to the package tests.
func SuspendMouseClipForTest(m *Mouse) {
	m.suspendClip()
}

// ReapplyMouseClipForTest exposes the focus-gain half of the cursor clip
// handling to the package tests.
func ReapplyMouseClipForTest(m *Mouse) {
	m.reapplyClip()
}
