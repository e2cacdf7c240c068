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

//go:build windows

package main

import (
	_ "github.com/ember3d/ember/backend/xinput"
)

// xinput reads gamepads more faithfully than the SDL game controller
// layer on Windows; keyboard and mouse still arrive through SDL
var defaultBackends = []string{"sdl", "xinput"}
