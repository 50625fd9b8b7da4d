// Copyright (C) 2024 Markus L. Noga
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.


package raster

import (
	"github.com/valyala/fastrand"
)

// Creates a synthetic starfield image, for renders without a source file and
// for tests needing a non-uniform source. Deterministic for a given seed
func NewTestPattern(width, height int32, stars int, seed uint32) *Image {
	img := NewImage(width, height, nil)

	// night sky gradient, dark blue at the top fading to near black
	for y := int32(0); y < height; y++ {
		shade := uint8(40 - 35*y/height)
		row := img.Row(y)
		for x := int32(0); x < width; x++ {
			row[3*x] = shade / 4
			row[3*x+1] = shade / 3
			row[3*x+2] = shade
		}
	}

	rng := fastrand.RNG{}
	rng.Seed(seed)
	for i := 0; i < stars; i++ {
		x := float32(rng.Uint32n(uint32(width)))
		y := float32(rng.Uint32n(uint32(height)))
		radius := 0.5 + float32(rng.Uint32n(25))/10
		brightness := uint8(128 + rng.Uint32n(128))
		img.FillCircle(x, y, radius, brightness, brightness, uint8(192+rng.Uint32n(64)))
	}
	return img
}
