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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. It takes a
// formatting pattern and placeholder values, like fmt.Errorf(), and returns
// an error. The pattern doubles as the error's identity: the Is() function
// reports whether an error was created with a particular pattern and the
// Has() function reports whether the pattern occurs anywhere in the error
// chain.
//
//	e := curated.Errorf("gamepad: %v", underlying)
//
//	if curated.Has(e, input.DisconnectedError) {
//		// remove the device
//	}
//
// The IsAny() function answers whether the error is curated at all. An
// uncurated error can be thought of as unexpected; how that distinction is
// acted on is up to the caller.
package curated
