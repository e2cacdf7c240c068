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

// Package backend collects the platform backends that feed the input
// service. Each backend registers a constructor under a short name; hosts
// create the backends they want by name and add the result to the service
// with AddSource().
//
// Which backends are available depends on the build platform. Registration
// happens in the init() function of each backend sub-package so a host
// selects its backends by importing them.
package backend

import (
	"sort"

	"github.com/ember3d/ember/curated"
	"github.com/ember3d/ember/input"
)

// Sentinel error patterns. Match with curated.Is() or curated.Has().
const (
	// UnknownError indicates a backend name with no registered constructor.
	UnknownError = "backend: unknown backend: %v"
)

// Constructor creates a backend attached to the input service.
type Constructor func(in *input.Input) (input.Source, error)

var registry = make(map[string]Constructor)

// Register makes a backend constructor available under the name. Called
// from the init() function of the backend sub-packages; a second
// registration under the same name panics.
func Register(name string, c Constructor) {
	if _, ok := registry[name]; ok {
		panic("backend: duplicate registration: " + name)
	}
	registry[name] = c
}

// List returns the names of every registered backend, sorted.
func List() []string {
	l := make([]string, 0, len(registry))
	for name := range registry {
		l = append(l, name)
	}
	sort.Strings(l)
	return l
}

// New creates the named backend attached to the input service. The caller
// still has to add the result to the service with AddSource().
func New(name string, in *input.Input) (input.Source, error) {
	c, ok := registry[name]
	if !ok {
		return nil, curated.Errorf(UnknownError, name)
	}
	return c(in)
}
