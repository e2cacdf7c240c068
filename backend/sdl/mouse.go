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

package sdl

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/ember3d/ember/curated"
	"github.com/ember3d/ember/input"
)

// mouseDriver adapts the SDL native mouse calls to the MouseDriver
// interface.
type mouseDriver struct{}

// WarpCursor implements the input.MouseDriver interface.
func (d *mouseDriver) WarpCursor(pos input.Vec2) error {
	sdl.WarpMouseGlobal(int32(pos.X), int32(pos.Y))
	return nil
}

// SetRelativeMode implements the input.MouseDriver interface. The visible
// cursor follows the mode.
func (d *mouseDriver) SetRelativeMode(enabled bool) error {
	sdl.SetRelativeMouseMode(enabled)
	if enabled {
		sdl.ShowCursor(sdl.DISABLE)
	} else {
		sdl.ShowCursor(sdl.ENABLE)
	}
	return nil
}

// SetCapture implements the input.MouseDriver interface.
func (d *mouseDriver) SetCapture(enabled bool) error {
	if err := sdl.CaptureMouse(enabled); err != nil {
		return curated.Errorf("sdl: %v", err)
	}
	return nil
}

// ClipCursor implements the input.MouseDriver interface. SDL has no global
// cursor confinement call; hosts that need clipping use the window grab of
// their windowing layer instead.
func (d *mouseDriver) ClipCursor(r *input.Rect) error {
	if r == nil {
		return nil
	}
	return curated.Errorf(input.UnsupportedError, "cursor clipping")
}
