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
	"github.com/chewxy/math32"
)

// Samples the image at a fractional pixel coordinate with bilinear interpolation.
// Coordinates outside the image clamp to the nearest edge pixel, so sampling
// never fails and never reads out of bounds
func (img *Image) Sample(x, y float32) (r, g, b uint8) {
	width, height := img.Width, img.Height
	// clamp the coordinate itself so weights stay non-negative and the
	// integer conversion cannot overflow; the negated comparisons also
	// catch NaN and infinities from extreme projections
	x, y = math32.Max(x, 0), math32.Max(y, 0)
	if !(x < float32(width)) {
		x = float32(width - 1)
	}
	if !(y < float32(height)) {
		y = float32(height - 1)
	}
	x1 := int32(x)
	if x1 > width-1 {
		x1 = width - 1
	}
	y1 := int32(y)
	if y1 > height-1 {
		y1 = height - 1
	}
	x2 := x1 + 1
	if x2 > width-1 {
		x2 = width - 1
	}
	y2 := y1 + 1
	if y2 > height-1 {
		y2 = height - 1
	}

	q11 := img.triple(x1, y1)
	q21 := img.triple(x2, y1)
	q12 := img.triple(x1, y2)
	q22 := img.triple(x2, y2)

	r1 := interpolate(q11, float32(x2)-x, q21, x-float32(x1))
	r2 := interpolate(q12, float32(x2)-x, q22, x-float32(x1))
	q := interpolate(r1, float32(y2)-y, r2, y-float32(y1))

	return uint8(q[0]), uint8(q[1]), uint8(q[2]) // truncating cast
}

// Weighted average of two color triples. Falls back to q1 when the weights
// cancel, which happens for the degenerate single-pixel case at image borders
func interpolate(q1 [3]float32, w1 float32, q2 [3]float32, w2 float32) [3]float32 {
	sum := w1 + w2
	if sum == 0 {
		return q1
	}
	return [3]float32{
		(q1[0]*w1 + q2[0]*w2) / sum,
		(q1[1]*w1 + q2[1]*w2) / sum,
		(q1[2]*w1 + q2[2]*w2) / sum,
	}
}

func (img *Image) triple(x, y int32) [3]float32 {
	i := 3 * (y*img.Width + x)
	return [3]float32{float32(img.Pix[i]), float32(img.Pix[i+1]), float32(img.Pix[i+2])}
}
