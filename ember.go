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

package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/ember3d/ember/backend"
	"github.com/ember3d/ember/backend/remote"
	_ "github.com/ember3d/ember/backend/sdl"
	"github.com/ember3d/ember/input"
	"github.com/ember3d/ember/input/mapping"
	"github.com/ember3d/ember/logger"
	"github.com/ember3d/ember/modalflag"
	"github.com/ember3d/ember/settings"
	"github.com/ember3d/ember/version"
)

// the probe is a diagnostic main. it opens the configured backends, runs
// the frame loop at a fixed cadence and prints every event and virtual
// action/axis transition it sees.
//
// #mainthread
func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	// the first sub-mode is the default
	md.AddSubModes("PROBE", "VERSION", "BACKENDS")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)
	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "PROBE":
		err = probe(md)

	case "VERSION":
		if version.Version == "" {
			fmt.Println("development build")
		} else {
			fmt.Println(version.Version)
		}

	case "BACKENDS":
		// the compiled-in backends. which of these open successfully
		// depends on the platform and the attached hardware
		for _, name := range backend.List() {
			fmt.Println(name)
		}
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %v\n", md.String(), err)
		os.Exit(10)
	}
}

func probe(md *modalflag.Modes) error {
	md.NewMode()

	settingsFile := md.AddString("settings", "ember.toml", "path of the settings file")
	backends := md.AddString("backends", "", "comma separated backends, overriding the settings file")
	mappings := md.AddString("mappings", "", "path of the mapping asset, overriding the settings file")
	rate := md.AddInt("rate", 60, "frame rate of the probe loop")
	duration := md.AddDuration("duration", 0, "how long to probe for. zero means until interrupted")
	echo := md.AddBool("log", false, "echo log entries to stderr")

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	if *echo {
		logger.SetEcho(os.Stderr)
	}

	set, err := settings.Load(*settingsFile)
	if err != nil {
		return err
	}
	if set.Remote.Addr != "" {
		remote.DefaultAddr = set.Remote.Addr
	}

	// thresholds apply before any backend opens a gamepad
	input.TriggerThreshold = set.Input.TriggerThreshold
	input.LeftStickDeadzone = set.Input.LeftStickDeadzone
	input.RightStickDeadzone = set.Input.RightStickDeadzone

	names := set.Backends
	if *backends != "" {
		names = strings.Split(*backends, ",")
	}
	if len(names) == 0 {
		names = defaultBackends
	}
	if set.Remote.Enabled {
		names = append(names, "remote")
	}

	in := input.NewInput()
	defer in.Close()

	for _, name := range names {
		src, err := backend.New(strings.TrimSpace(name), in)
		if err != nil {
			return err
		}
		in.AddSource(src)
	}

	mappingFile := set.Input.MappingFile
	if *mappings != "" {
		mappingFile = *mappings
	}
	if mappingFile != "" {
		w, err := mapping.Watch(mappingFile, func(actions []input.ActionConfig, axes []input.AxisConfig) {
			fmt.Printf("mappings: %d actions, %d axes\n", len(actions), len(axes))
			in.SetMappings(actions, axes)
		})
		if err != nil {
			return err
		}
		defer w.Close()
	}

	installProbes(in)

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	var end <-chan time.Time
	if *duration > 0 {
		end = time.After(*duration)
	}

	dt := 1.0 / float32(*rate)
	tick := time.NewTicker(time.Second / time.Duration(*rate))
	defer tick.Stop()

	for {
		select {
		case <-intChan:
			fmt.Println("\r")
			return nil
		case <-end:
			return nil
		case <-tick.C:
			in.Frame(dt)
		}
	}
}

// installProbes points every delegate at stdout.
func installProbes(in *input.Input) {
	in.Delegates = input.Delegates{
		Char: func(c rune) {
			fmt.Printf("char: %c\n", c)
		},
		KeyDown: func(key input.Key) {
			fmt.Printf("key down: %s\n", key)
		},
		KeyUp: func(key input.Key) {
			fmt.Printf("key up: %s\n", key)
		},
		MouseDown: func(pos input.Vec2, b input.MouseButton) {
			fmt.Printf("mouse down: %s at %.0f,%.0f\n", b, pos.X, pos.Y)
		},
		MouseUp: func(pos input.Vec2, b input.MouseButton) {
			fmt.Printf("mouse up: %s at %.0f,%.0f\n", b, pos.X, pos.Y)
		},
		MouseDoubleClick: func(pos input.Vec2, b input.MouseButton) {
			fmt.Printf("double click: %s at %.0f,%.0f\n", b, pos.X, pos.Y)
		},
		MouseWheel: func(pos input.Vec2, delta float32) {
			fmt.Printf("wheel: %+.0f\n", delta)
		},
		MouseLeave: func() {
			fmt.Println("mouse left the window")
		},
		TouchDown: func(pos input.Vec2, pointer int) {
			fmt.Printf("touch down: %d at %.2f,%.2f\n", pointer, pos.X, pos.Y)
		},
		TouchMove: func(pos input.Vec2, pointer int) {
			fmt.Printf("touch move: %d at %.2f,%.2f\n", pointer, pos.X, pos.Y)
		},
		TouchUp: func(pos input.Vec2, pointer int) {
			fmt.Printf("touch up: %d at %.2f,%.2f\n", pointer, pos.X, pos.Y)
		},
		GamepadsChanged: func() {
			fmt.Printf("gamepads: %d connected\n", in.GamepadsCount())
		},
		ActionTriggered: func(name string, state input.ActionState) {
			fmt.Printf("action %s: %s\n", name, state)
		},
		AxisValueChanged: func(name string, value float32) {
			fmt.Printf("axis %s: %+.3f\n", name, value)
		},
	}
}
