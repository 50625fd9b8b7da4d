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
	"testing"
)

// Builds a small image with a distinct color triple per pixel
func newGradientImage(width, height int32) *Image {
	img := NewImage(width, height, nil)
	for y := int32(0); y < height; y++ {
		for x := int32(0); x < width; x++ {
			img.Set(x, y, uint8(10*x+1), uint8(20*y+2), uint8(5*x+5*y+3))
		}
	}
	return img
}

func TestSampleExactPixel(t *testing.T) {
	img := newGradientImage(7, 5)
	for y := int32(0); y < img.Height; y++ {
		for x := int32(0); x < img.Width; x++ {
			wr, wg, wb := img.At(x, y)
			r, g, b := img.Sample(float32(x), float32(y))
			if r != wr || g != wg || b != wb {
				t.Errorf("sample at (%d,%d)=(%d,%d,%d); want (%d,%d,%d)", x, y, r, g, b, wr, wg, wb)
			}
		}
	}
}

func TestSampleMidpoint(t *testing.T) {
	img := NewImage(2, 1, nil)
	img.Set(0, 0, 0, 100, 200)
	img.Set(1, 0, 100, 200, 250)
	r, g, b := img.Sample(0.5, 0)
	if r != 50 || g != 150 || b != 225 {
		t.Errorf("midpoint sample=(%d,%d,%d); want (50,150,225)", r, g, b)
	}
}

func TestSampleClampsToEdge(t *testing.T) {
	img := newGradientImage(7, 5)

	wr, wg, wb := img.At(0, 2)
	if r, g, b := img.Sample(-5, 2); r != wr || g != wg || b != wb {
		t.Errorf("sample at (-5,2)=(%d,%d,%d); want edge pixel (%d,%d,%d)", r, g, b, wr, wg, wb)
	}

	wr, wg, wb = img.At(6, 2)
	if r, g, b := img.Sample(12, 2); r != wr || g != wg || b != wb {
		t.Errorf("sample at (12,2)=(%d,%d,%d); want edge pixel (%d,%d,%d)", r, g, b, wr, wg, wb)
	}

	wr, wg, wb = img.At(3, 0)
	if r, g, b := img.Sample(3, -7); r != wr || g != wg || b != wb {
		t.Errorf("sample at (3,-7)=(%d,%d,%d); want edge pixel (%d,%d,%d)", r, g, b, wr, wg, wb)
	}

	wr, wg, wb = img.At(3, 4)
	if r, g, b := img.Sample(3, 9); r != wr || g != wg || b != wb {
		t.Errorf("sample at (3,9)=(%d,%d,%d); want edge pixel (%d,%d,%d)", r, g, b, wr, wg, wb)
	}
}

// The weighted average degenerates to a single pixel at the last valid
// column and row, it must not divide by zero there
func TestSampleLastRowCol(t *testing.T) {
	img := newGradientImage(7, 5)
	wr, wg, wb := img.At(6, 4)
	if r, g, b := img.Sample(6, 4); r != wr || g != wg || b != wb {
		t.Errorf("sample at last pixel=(%d,%d,%d); want (%d,%d,%d)", r, g, b, wr, wg, wb)
	}

	wr, wg, wb = img.At(6, 2)
	if r, g, b := img.Sample(6, 2); r != wr || g != wg || b != wb {
		t.Errorf("sample at last column=(%d,%d,%d); want (%d,%d,%d)", r, g, b, wr, wg, wb)
	}

	wr, wg, wb = img.At(3, 4)
	if r, g, b := img.Sample(3, 4); r != wr || g != wg || b != wb {
		t.Errorf("sample at last row=(%d,%d,%d); want (%d,%d,%d)", r, g, b, wr, wg, wb)
	}
}

func TestSampleSinglePixelImage(t *testing.T) {
	img := NewImage(1, 1, nil)
	img.Set(0, 0, 12, 34, 56)
	if r, g, b := img.Sample(0.3, 0.8); r != 12 || g != 34 || b != 56 {
		t.Errorf("sample on 1x1 image=(%d,%d,%d); want (12,34,56)", r, g, b)
	}
}
