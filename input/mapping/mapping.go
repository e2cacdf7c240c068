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

// Package mapping loads and saves virtual input mapping assets. An asset is
// a JSON document with two lists:
//
//	{
//	    "actions": [
//	        {"name": "Jump", "mode": "Press", "key": "Space"}
//	    ],
//	    "axes": [
//	        {"name": "MoveForward", "axis": "KeyboardOnly",
//	         "positiveKey": "W", "negativeKey": "S",
//	         "sensitivity": 3, "gravity": 3, "scale": 1, "snap": true}
//	    ]
//	}
//
// Key, button and axis-type fields use the canonical names from the input
// package's String() functions. Unknown names decode to the None value of
// their type rather than failing the load.
//
// The Watch() function re-loads an asset whenever the file changes on disk,
// allowing mappings to be edited while the program runs.
package mapping

import (
	"fmt"
	"os"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/ember3d/ember/curated"
	"github.com/ember3d/ember/input"
)

// Sentinel error patterns. Match with curated.Is() or curated.Has().
const (
	// NotValidError indicates the file is not a valid mapping asset.
	NotValidError = "mapping: not a valid mapping file: %v"
)

// Load reads a mapping asset from disk.
func Load(path string) ([]input.ActionConfig, []input.AxisConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, curated.Errorf("mapping: %v", err)
	}
	return Decode(data)
}

// Decode parses a mapping asset.
func Decode(data []byte) ([]input.ActionConfig, []input.AxisConfig, error) {
	if !gjson.ValidBytes(data) {
		return nil, nil, curated.Errorf(NotValidError, "malformed JSON")
	}
	doc := gjson.ParseBytes(data)

	var actions []input.ActionConfig
	for _, r := range doc.Get("actions").Array() {
		name := r.Get("name").String()
		if name == "" {
			return nil, nil, curated.Errorf(NotValidError, "action with no name")
		}
		actions = append(actions, input.ActionConfig{
			Name:          name,
			Mode:          input.ParseActionMode(r.Get("mode").String()),
			Key:           input.ParseKey(r.Get("key").String()),
			MouseButton:   input.ParseMouseButton(r.Get("mouseButton").String()),
			GamepadButton: input.ParseGamepadButton(r.Get("gamepadButton").String()),
			Gamepad:       gamepadIndex(r.Get("gamepad")),
		})
	}

	var axes []input.AxisConfig
	for _, r := range doc.Get("axes").Array() {
		name := r.Get("name").String()
		if name == "" {
			return nil, nil, curated.Errorf(NotValidError, "axis with no name")
		}
		axes = append(axes, input.AxisConfig{
			Name:           name,
			Axis:           input.ParseAxisType(r.Get("axis").String()),
			Gamepad:        gamepadIndex(r.Get("gamepad")),
			PositiveKey:    input.ParseKey(r.Get("positiveKey").String()),
			NegativeKey:    input.ParseKey(r.Get("negativeKey").String()),
			PositiveButton: input.ParseGamepadButton(r.Get("positiveButton").String()),
			NegativeButton: input.ParseGamepadButton(r.Get("negativeButton").String()),
			DeadZone:       float32(r.Get("deadZone").Float()),
			Sensitivity:    floatField(r, "sensitivity", 3),
			Gravity:        floatField(r, "gravity", 3),
			Scale:          floatField(r, "scale", 1),
			Snap:           r.Get("snap").Bool(),
		})
	}

	return actions, axes, nil
}

// an absent numeric field takes the default rather than zero. a zero scale
// or sensitivity would silently kill the axis output
func floatField(r gjson.Result, name string, def float32) float32 {
	f := r.Get(name)
	if !f.Exists() {
		return def
	}
	return float32(f.Float())
}

// a missing gamepad field means every gamepad
func gamepadIndex(r gjson.Result) input.GamepadIndex {
	if !r.Exists() {
		return input.GamepadIndexAll
	}
	return input.GamepadIndex(r.Int())
}

// Save writes a mapping asset to disk. The written form round-trips through
// Load.
func Save(path string, actions []input.ActionConfig, axes []input.AxisConfig) error {
	data, err := Encode(actions, axes)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return curated.Errorf("mapping: %v", err)
	}
	return nil
}

// Encode serialises mapping lists to the asset form.
func Encode(actions []input.ActionConfig, axes []input.AxisConfig) ([]byte, error) {
	doc := `{"actions":[],"axes":[]}`
	var err error

	set := func(path string, value interface{}) {
		if err != nil {
			return
		}
		doc, err = sjson.Set(doc, path, value)
	}

	for i, a := range actions {
		p := fmt.Sprintf("actions.%d.", i)
		set(p+"name", a.Name)
		set(p+"mode", a.Mode.String())
		set(p+"key", a.Key.String())
		set(p+"mouseButton", a.MouseButton.String())
		set(p+"gamepadButton", a.GamepadButton.String())
		set(p+"gamepad", int(a.Gamepad))
	}

	for i, a := range axes {
		p := fmt.Sprintf("axes.%d.", i)
		set(p+"name", a.Name)
		set(p+"axis", a.Axis.String())
		set(p+"gamepad", int(a.Gamepad))
		set(p+"positiveKey", a.PositiveKey.String())
		set(p+"negativeKey", a.NegativeKey.String())
		set(p+"positiveButton", a.PositiveButton.String())
		set(p+"negativeButton", a.NegativeButton.String())
		set(p+"deadZone", a.DeadZone)
		set(p+"sensitivity", a.Sensitivity)
		set(p+"gravity", a.Gravity)
		set(p+"scale", a.Scale)
		set(p+"snap", a.Snap)
	}

	if err != nil {
		return nil, curated.Errorf("mapping: %v", err)
	}
	return []byte(doc), nil
}
