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

package input_test

import (
	"testing"

	"github.com/ember3d/ember/input"
	"github.com/ember3d/ember/test"
)

const frameDt = float32(1.0 / 60.0)

func TestActionPressCycle(t *testing.T) {
	in := input.NewInput()
	in.SetMappings([]input.ActionConfig{
		{Name: "Jump", Mode: input.ActionModePress, Key: input.KeySpace},
	}, nil)

	type trigger struct {
		name  string
		state input.ActionState
	}
	var fired []trigger
	in.Delegates.ActionTriggered = func(name string, state input.ActionState) {
		fired = append(fired, trigger{name, state})
	}

	// frame 1: key pressed
	in.Keyboard.OnKeyDown(input.KeySpace, 0)
	in.Frame(frameDt)
	test.Equate(t, in.Action("Jump"), true)
	test.Equate(t, in.ActionState("Jump").String(), "Press")
	test.Equate(t, len(fired), 1)
	test.Equate(t, fired[0].state.String(), "Press")

	// frame 2: key held
	in.Frame(frameDt)
	test.Equate(t, in.Action("Jump"), false)
	test.Equate(t, in.ActionState("Jump").String(), "Pressing")
	test.Equate(t, len(fired), 2)
	test.Equate(t, fired[1].state.String(), "Pressing")

	// frame 3: key released. exactly one Release trigger
	in.Keyboard.OnKeyUp(input.KeySpace, 0)
	in.Frame(frameDt)
	test.Equate(t, in.ActionState("Jump").String(), "Release")
	test.Equate(t, len(fired), 3)
	test.Equate(t, fired[2].state.String(), "Release")

	// frame 4: idle. Waiting never triggers
	in.Frame(frameDt)
	test.Equate(t, in.ActionState("Jump").String(), "Waiting")
	test.Equate(t, len(fired), 3)
}

func TestActionModes(t *testing.T) {
	in := input.NewInput()
	in.SetMappings([]input.ActionConfig{
		{Name: "Hold", Mode: input.ActionModePressing, Key: input.KeyE},
		{Name: "Drop", Mode: input.ActionModeRelease, Key: input.KeyE},
	}, nil)

	in.Keyboard.OnKeyDown(input.KeyE, 0)
	in.Frame(frameDt)
	test.Equate(t, in.Action("Hold"), true)
	test.Equate(t, in.Action("Drop"), false)

	in.Frame(frameDt)
	test.Equate(t, in.Action("Hold"), true)
	test.Equate(t, in.Action("Drop"), false)

	in.Keyboard.OnKeyUp(input.KeyE, 0)
	in.Frame(frameDt)
	test.Equate(t, in.Action("Hold"), false)
	test.Equate(t, in.Action("Drop"), true)

	in.Frame(frameDt)
	test.Equate(t, in.Action("Drop"), false)
}

func TestActionMultipleBindings(t *testing.T) {
	in := input.NewInput()

	// the logical action is the OR of every entry with the name
	in.SetMappings([]input.ActionConfig{
		{Name: "Fire", Mode: input.ActionModePressing, Key: input.KeyF},
		{Name: "Fire", Mode: input.ActionModePressing, MouseButton: input.MouseButtonLeft},
	}, nil)

	in.Mouse.OnMouseDown(input.Vec2{}, input.MouseButtonLeft, 0)
	in.Frame(frameDt)
	test.Equate(t, in.Action("Fire"), true)

	// switching the held binding within a frame does not break the cycle
	in.Mouse.OnMouseUp(input.Vec2{}, input.MouseButtonLeft, 0)
	in.Keyboard.OnKeyDown(input.KeyF, 0)
	in.Frame(frameDt)
	test.Equate(t, in.Action("Fire"), true)
	test.Equate(t, in.ActionState("Fire").String(), "Pressing")
}

func TestActionGamepadBinding(t *testing.T) {
	in := input.NewInput()
	in.SetMappings([]input.ActionConfig{
		{
			Name:          "Confirm",
			Mode:          input.ActionModePress,
			GamepadButton: input.GamepadButtonA,
			Gamepad:       input.GamepadIndexAll,
		},
	}, nil)

	// with no gamepad connected the binding reads as not pressed
	in.Frame(frameDt)
	test.Equate(t, in.Action("Confirm"), false)

	drv := &mockGamepadDriver{}
	in.AddGamepad(input.NewGamepad(drv, padID(1), "Test Pad"))
	drv.state.Buttons[input.GamepadButtonA] = true
	in.Frame(frameDt)
	test.Equate(t, in.Action("Confirm"), true)
}

func TestActionUnknownName(t *testing.T) {
	in := input.NewInput()
	in.Frame(frameDt)
	test.Equate(t, in.Action("NoSuchAction"), false)
	test.Equate(t, in.ActionState("NoSuchAction").String(), "None")
}

func TestActionRebind(t *testing.T) {
	in := input.NewInput()
	in.SetMappings([]input.ActionConfig{
		{Name: "Jump", Mode: input.ActionModePressing, Key: input.KeySpace},
	}, nil)

	n := in.SetActionKeyByName("Jump", input.KeyJ, false)
	test.Equate(t, n, 1)

	in.Keyboard.OnKeyDown(input.KeySpace, 0)
	in.Frame(frameDt)
	test.Equate(t, in.Action("Jump"), false)

	in.Keyboard.OnKeyDown(input.KeyJ, 0)
	in.Frame(frameDt)
	test.Equate(t, in.Action("Jump"), true)
}

func TestActionStateClearedBySetMappings(t *testing.T) {
	in := input.NewInput()
	in.SetMappings([]input.ActionConfig{
		{Name: "Jump", Mode: input.ActionModePressing, Key: input.KeySpace},
	}, nil)

	in.Keyboard.OnKeyDown(input.KeySpace, 0)
	in.Frame(frameDt)
	test.Equate(t, in.ActionState("Jump").String(), "Press")

	// replacing the mapping lists invalidates all cached runtime state
	in.SetMappings(nil, nil)
	test.Equate(t, in.ActionState("Jump").String(), "None")
}
