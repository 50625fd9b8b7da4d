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


package project

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Maps output canvas pixels to fractional source image coordinates with an
// inverse stereographic sphere projection, the "little planet" effect.
// Immutable once constructed, safe to share across goroutines
type Projection struct {
	Radius    float32 // Projection sphere radius in canvas pixels
	ImageSize Vec2    // Source image dimensions
	ProjSize  Vec2    // Output canvas dimensions
	Offset    Vec2    // Fractional shift of the canvas center, 0.5 is neutral
	rot       mat3
}

// Creates a projection model for the given source image and canvas dimensions.
// Radius is min(canvas width, height)/10 * scale. Rejects degenerate
// dimensions and non-positive or non-finite scales
func NewProjection(imageWidth, imageHeight, projWidth, projHeight int32, offset Vec2, rot Rotation, scale float32) (*Projection, error) {
	if imageWidth < 1 || imageHeight < 1 {
		return nil, fmt.Errorf("invalid source image dimensions %dx%d", imageWidth, imageHeight)
	}
	if projWidth < 1 || projHeight < 1 {
		return nil, fmt.Errorf("invalid canvas dimensions %dx%d", projWidth, projHeight)
	}
	if !(scale > 0) || math32.IsInf(scale, 0) {
		return nil, fmt.Errorf("invalid scale %g, must be positive and finite", scale)
	}

	minDim := float32(projWidth)
	if float32(projHeight) < minDim {
		minDim = float32(projHeight)
	}
	return &Projection{
		Radius:    minDim / 10 * scale,
		ImageSize: Vec2{float32(imageWidth), float32(imageHeight)},
		ProjSize:  Vec2{float32(projWidth), float32(projHeight)},
		Offset:    offset,
		rot:       rot.matrix(),
	}, nil
}

// Maps a canvas pixel coordinate to a fractional source image coordinate.
// The result may lie outside the source image, clamping is the sampler's job
func (pr *Projection) Project(p Vec2) Vec2 {
	x := p.X + (pr.Offset.X-0.5)*pr.ProjSize.X
	y := p.Y + (pr.Offset.Y-0.5)*pr.ProjSize.Y
	v := pr.planeToSphere(x, y)
	v = pr.rot.apply(v)
	return pr.sphereToImage(v)
}

// Inverse stereographic projection from the tangent plane onto the unit
// sphere. The plane origin maps to the pole facing away from the plane
func (pr *Projection) planeToSphere(x, y float32) Vec3 {
	r2 := pr.Radius * pr.Radius
	k := 2 * r2 / (x*x + y*y + r2)
	v := Vec3{k * x, k * y, (k - 1) * pr.Radius}
	n := math32.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
	return Vec3{v.X / n, v.Y / n, v.Z / n}
}

// Equirectangular lookup: colatitude selects the row, azimuth the column,
// both normalized to [0,1] and scaled by the source image dimensions
func (pr *Projection) sphereToImage(v Vec3) Vec2 {
	v = renormalizeFast(v)
	row := math32.Acos(v.Z) / math32.Pi
	col := math32.Atan2(v.X, v.Y)/(2*math32.Pi) + 0.5
	return Vec2{col * pr.ImageSize.X, row * pr.ImageSize.Y}
}

// One Newton step keeps a near-unit vector at unit length against
// floating point drift after rotation
func renormalizeFast(v Vec3) Vec3 {
	f := 1.5 - 0.5*(v.X*v.X+v.Y*v.Y+v.Z*v.Z)
	return Vec3{v.X * f, v.Y * f, v.Z * f}
}
