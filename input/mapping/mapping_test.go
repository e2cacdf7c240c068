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

package mapping_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/ember3d/ember/curated"
	"github.com/ember3d/ember/input"
	"github.com/ember3d/ember/input/mapping"
	"github.com/ember3d/ember/test"
)

func TestDecode(t *testing.T) {
	actions, axes, err := mapping.Decode([]byte(`{
		"actions": [
			{"name": "Jump", "mode": "Press", "key": "Space"},
			{"name": "Fire", "mouseButton": "Left", "gamepad": 0}
		],
		"axes": [
			{"name": "MoveForward", "axis": "KeyboardOnly",
			 "positiveKey": "W", "negativeKey": "S",
			 "sensitivity": 3, "gravity": 3, "scale": 1, "snap": true}
		]
	}`))
	test.ExpectedSuccess(t, err)

	test.Equate(t, len(actions), 2)
	test.Equate(t, actions[0].Name, "Jump")
	test.Equate(t, actions[0].Mode.String(), "Press")
	test.Equate(t, actions[0].Key.String(), "Space")

	// a missing mode means Pressing and a missing gamepad means every
	// gamepad
	test.Equate(t, actions[1].Mode.String(), "Pressing")
	test.Equate(t, int(actions[0].Gamepad), int(input.GamepadIndexAll))
	test.Equate(t, int(actions[1].Gamepad), 0)

	test.Equate(t, len(axes), 1)
	test.Equate(t, axes[0].Name, "MoveForward")
	test.Equate(t, axes[0].PositiveKey.String(), "W")
	test.Equate(t, axes[0].Sensitivity, float32(3))
	test.Equate(t, axes[0].Scale, float32(1))
	test.Equate(t, axes[0].Snap, true)
}

func TestDecodeAxisDefaults(t *testing.T) {
	// an axis record with only a name and a source still produces working
	// output. zero scale or sensitivity would make the axis permanently
	// read as zero
	_, axes, err := mapping.Decode([]byte(`{
		"axes": [
			{"name": "LookX", "axis": "MouseX"}
		]
	}`))
	test.ExpectedSuccess(t, err)

	test.Equate(t, len(axes), 1)
	test.Equate(t, axes[0].Sensitivity, float32(3))
	test.Equate(t, axes[0].Gravity, float32(3))
	test.Equate(t, axes[0].Scale, float32(1))

	// an explicit zero is kept
	_, axes, err = mapping.Decode([]byte(`{
		"axes": [
			{"name": "LookX", "axis": "MouseX", "scale": 0}
		]
	}`))
	test.ExpectedSuccess(t, err)
	test.Equate(t, axes[0].Scale, float32(0))
}

func TestDecodeErrors(t *testing.T) {
	_, _, err := mapping.Decode([]byte(`{"actions": [`))
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, curated.Is(err, mapping.NotValidError))

	_, _, err = mapping.Decode([]byte(`{"actions": [{"mode": "Press"}]}`))
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, curated.Is(err, mapping.NotValidError))
}

func TestRoundTrip(t *testing.T) {
	actions := []input.ActionConfig{
		{Name: "Jump", Mode: input.ActionModePress, Key: input.KeySpace},
		{Name: "Fire", MouseButton: input.MouseButtonLeft, Gamepad: input.GamepadIndexAll},
	}
	axes := []input.AxisConfig{
		{
			Name:        "MoveForward",
			Axis:        input.AxisTypeKeyboardOnly,
			Gamepad:     input.GamepadIndexAll,
			PositiveKey: input.KeyW,
			NegativeKey: input.KeyS,
			Sensitivity: 3,
			Gravity:     3,
			Scale:       1,
			Snap:        true,
		},
	}

	path := filepath.Join(t.TempDir(), "mappings.json")
	test.ExpectedSuccess(t, mapping.Save(path, actions, axes))

	la, lx, err := mapping.Load(path)
	test.ExpectedSuccess(t, err)
	test.Equate(t, len(la), len(actions))
	test.Equate(t, len(lx), len(axes))
	for i := range actions {
		test.ExpectedSuccess(t, la[i] == actions[i])
	}
	for i := range axes {
		test.ExpectedSuccess(t, lx[i] == axes[i])
	}
}

func TestWatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mappings.json")
	err := mapping.Save(path, []input.ActionConfig{
		{Name: "Jump", Key: input.KeySpace},
	}, nil)
	test.ExpectedSuccess(t, err)

	applied := make(chan string, 4)
	w, err := mapping.Watch(path, func(actions []input.ActionConfig, _ []input.AxisConfig) {
		if len(actions) > 0 {
			applied <- actions[0].Key.String()
		}
	})
	test.ExpectedSuccess(t, err)
	defer w.Close()

	// the initial load applies synchronously
	select {
	case k := <-applied:
		test.Equate(t, k, "Space")
	default:
		t.Fatalf("initial mappings not applied")
	}

	// a change on disk applies asynchronously
	err = mapping.Save(path, []input.ActionConfig{
		{Name: "Jump", Key: input.KeyJ},
	}, nil)
	test.ExpectedSuccess(t, err)

	select {
	case k := <-applied:
		test.Equate(t, k, "J")
	case <-time.After(5 * time.Second):
		t.Fatalf("changed mappings not applied")
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, _, err := mapping.Load(filepath.Join(t.TempDir(), "no-such-file.json"))
	test.ExpectedFailure(t, err)
}
