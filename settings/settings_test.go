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

package settings_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ember3d/ember/curated"
	"github.com/ember3d/ember/input"
	"github.com/ember3d/ember/settings"
	"github.com/ember3d/ember/test"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	doc := `
backends = ["sdl", "remote"]

[input]
trigger_threshold = 0.5
mapping_file = "mappings.json"

[remote]
enabled = true
addr = ":9000"
`
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}

	s, err := settings.Load(path)
	test.ExpectedSuccess(t, err)

	test.Equate(t, len(s.Backends), 2)
	test.Equate(t, s.Backends[0], "sdl")
	test.Equate(t, s.Backends[1], "remote")
	test.Equate(t, s.Input.TriggerThreshold, float32(0.5))
	test.Equate(t, s.Input.MappingFile, "mappings.json")
	test.Equate(t, s.Remote.Enabled, true)
	test.Equate(t, s.Remote.Addr, ":9000")

	// fields absent from the document keep their defaults
	test.Equate(t, s.Input.LeftStickDeadzone, float32(input.LeftStickDeadzone))
	test.Equate(t, s.Input.RightStickDeadzone, float32(input.RightStickDeadzone))
}

func TestLoadMissingFile(t *testing.T) {
	s, err := settings.Load(filepath.Join(t.TempDir(), "no-such-file.toml"))
	test.ExpectedSuccess(t, err)
	def := settings.Defaults()
	test.Equate(t, len(s.Backends), 0)
	test.ExpectedSuccess(t, s.Input == def.Input)
	test.ExpectedSuccess(t, s.Remote == def.Remote)
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	if err := os.WriteFile(path, []byte("backends = not toml"), 0644); err != nil {
		t.Fatal(err)
	}

	s, err := settings.Load(path)
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, curated.Is(err, settings.NotValidError))
	test.ExpectedSuccess(t, s.Input == settings.Defaults().Input)
}

func TestRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")

	s := settings.Defaults()
	s.Backends = []string{"evdev"}
	s.Input.TriggerThreshold = 0.25
	s.Remote.Enabled = true

	if err := settings.Save(path, s); err != nil {
		t.Fatal(err)
	}

	loaded, err := settings.Load(path)
	test.ExpectedSuccess(t, err)
	test.Equate(t, len(loaded.Backends), 1)
	test.Equate(t, loaded.Backends[0], "evdev")
	test.Equate(t, loaded.Input.TriggerThreshold, float32(0.25))
	test.Equate(t, loaded.Remote.Enabled, true)
	test.Equate(t, loaded.Remote.Addr, s.Remote.Addr)
}
