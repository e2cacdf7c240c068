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

// Package settings is the engine-level input settings file. Settings are
// a TOML document:
//
//	backends = ["sdl", "remote"]
//
//	[input]
//	trigger_threshold = 0.12
//	left_stick_deadzone = 0.24
//	right_stick_deadzone = 0.27
//	mapping_file = "mappings.json"
//
//	[remote]
//	enabled = true
//	addr = "localhost:8799"
//
// A missing file is not an error; the defaults apply. Mapping lists
// themselves are a separate JSON asset handled by the input/mapping
// package.
package settings

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/ember3d/ember/curated"
	"github.com/ember3d/ember/input"
)

// NotValidError is the error pattern for a file that does not parse as a
// settings file.
const NotValidError = "settings: not a valid settings file: %v"

// Settings is the engine input configuration.
type Settings struct {
	// the platform backends to open, in order. An empty list means the
	// platform default
	Backends []string `toml:"backends"`

	Input  Input  `toml:"input"`
	Remote Remote `toml:"remote"`
}

// Input tunes the universal device thresholds and names the mapping
// asset.
type Input struct {
	TriggerThreshold   float32 `toml:"trigger_threshold"`
	LeftStickDeadzone  float32 `toml:"left_stick_deadzone"`
	RightStickDeadzone float32 `toml:"right_stick_deadzone"`

	// path of the JSON action/axis mapping asset. empty means no mapping
	// file is loaded
	MappingFile string `toml:"mapping_file"`
}

// Remote configures the websocket backend.
type Remote struct {
	Enabled bool   `toml:"enabled"`
	Addr    string `toml:"addr"`
}

// Defaults returns the settings used in the absence of a settings file.
func Defaults() Settings {
	return Settings{
		Input: Input{
			TriggerThreshold:   input.TriggerThreshold,
			LeftStickDeadzone:  input.LeftStickDeadzone,
			RightStickDeadzone: input.RightStickDeadzone,
		},
		Remote: Remote{
			Addr: "localhost:8799",
		},
	}
}

// Load reads the settings file at path over the defaults. A missing file
// returns the defaults and no error.
func Load(path string) (Settings, error) {
	s := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return s, curated.Errorf("settings: %v", err)
	}

	if err := toml.Unmarshal(data, &s); err != nil {
		return Defaults(), curated.Errorf(NotValidError, err)
	}

	return s, nil
}

// Save writes the settings to path.
func Save(path string, s Settings) error {
	f, err := os.Create(path)
	if err != nil {
		return curated.Errorf("settings: %v", err)
	}
	defer func() { _ = f.Close() }()

	if err := toml.NewEncoder(f).Encode(s); err != nil {
		return curated.Errorf("settings: %v", err)
	}

	return nil
}
