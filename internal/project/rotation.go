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
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// A 2-D point or vector in fractional pixels
type Vec2 struct {
	X float32
	Y float32
}

// A 3-D vector
type Vec3 struct {
	X float32
	Y float32
	Z float32
}

// A rigid 3-D rotation, stored as a unit quaternion
type Rotation struct {
	q quat.Number
}

// Creates the identity rotation
func IdentityRotation() Rotation {
	return Rotation{quat.Number{Real: 1}}
}

// Creates a rotation about the given axis by the given angle in radians,
// axes are 0=X, 1=Y, 2=Z
func NewRotationAboutAxis(axis int, angle float32) Rotation {
	var v r3.Vec
	switch axis {
	case 0:
		v = r3.Vec{X: 1}
	case 1:
		v = r3.Vec{Y: 1}
	default:
		v = r3.Vec{Z: 1}
	}
	return Rotation{quat.Number(r3.NewRotation(float64(angle), v))}
}

// Creates a rotation from three Euler angles in radians.
// Composition order is Rz(yaw) * Ry(pitch) * Rx(roll)
func NewRotationFromEuler(roll, pitch, yaw float32) Rotation {
	rx := NewRotationAboutAxis(0, roll)
	ry := NewRotationAboutAxis(1, pitch)
	rz := NewRotationAboutAxis(2, yaw)
	return rz.Compose(ry.Compose(rx))
}

// Returns the rotation equivalent to applying other first, then rot
func (rot Rotation) Compose(other Rotation) Rotation {
	return Rotation{quat.Mul(rot.q, other.q)}
}

// Returns the inverse rotation
func (rot Rotation) Inverse() Rotation {
	return Rotation{quat.Conj(rot.q)}
}

// Applies the rotation to a vector
func (rot Rotation) Apply(v Vec3) Vec3 {
	res := r3.Rotation(rot.q).Rotate(r3.Vec{X: float64(v.X), Y: float64(v.Y), Z: float64(v.Z)})
	return Vec3{float32(res.X), float32(res.Y), float32(res.Z)}
}

// A 3x3 rotation matrix in row-major order, for the per-pixel hot path
type mat3 [9]float32

// Flattens the rotation into a 3x3 matrix by rotating the basis vectors
func (rot Rotation) matrix() mat3 {
	r := r3.Rotation(rot.q)
	ex := r.Rotate(r3.Vec{X: 1})
	ey := r.Rotate(r3.Vec{Y: 1})
	ez := r.Rotate(r3.Vec{Z: 1})
	return mat3{
		float32(ex.X), float32(ey.X), float32(ez.X),
		float32(ex.Y), float32(ey.Y), float32(ez.Y),
		float32(ex.Z), float32(ey.Z), float32(ez.Z),
	}
}

func (m *mat3) apply(v Vec3) Vec3 {
	return Vec3{
		m[0]*v.X + m[1]*v.Y + m[2]*v.Z,
		m[3]*v.X + m[4]*v.Y + m[5]*v.Z,
		m[6]*v.X + m[7]*v.Y + m[8]*v.Z,
	}
}
