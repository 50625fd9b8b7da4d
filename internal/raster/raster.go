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

// An 8-bit RGB raster image.
// Pixels are stored row-major and interleaved, three bytes per pixel.
type Image struct {
	Width  int32   // Image width in pixels
	Height int32   // Image height in pixels
	Pix    []uint8 // Pixel data, 3*Width*Height bytes
}

// Creates a raster image of the given dimensions.
// Pix is not copied, allocated if nil. Must hold 3*width*height bytes otherwise
func NewImage(width, height int32, pix []uint8) *Image {
	if pix == nil {
		pix = make([]uint8, 3*width*height)
	}
	return &Image{
		Width:  width,
		Height: height,
		Pix:    pix,
	}
}

// Returns the color triple at the given integer pixel coordinate
func (img *Image) At(x, y int32) (r, g, b uint8) {
	i := 3 * (y*img.Width + x)
	return img.Pix[i], img.Pix[i+1], img.Pix[i+2]
}

// Sets the color triple at the given integer pixel coordinate
func (img *Image) Set(x, y int32, r, g, b uint8) {
	i := 3 * (y*img.Width + x)
	img.Pix[i], img.Pix[i+1], img.Pix[i+2] = r, g, b
}

// Fills the entire image with the given color
func (img *Image) Fill(r, g, b uint8) {
	for i := 0; i < len(img.Pix); i += 3 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2] = r, g, b
	}
}

// Returns the pixel data of row y as a subslice. Writes to disjoint rows
// from concurrent goroutines are safe, rows do not share bytes
func (img *Image) Row(y int32) []uint8 {
	return img.Pix[3*y*img.Width : 3*(y+1)*img.Width]
}

// Fill a circle of given radius and color on the image, clipping at the borders
func (img *Image) FillCircle(xc, yc, radius float32, r, g, b uint8) {
	for y := -radius; y <= radius; y += 0.5 {
		for x := -radius; x <= radius; x += 0.5 {
			distSq := y*y + x*x
			if distSq <= radius*radius+1e-6 {
				px, py := int32(xc+x), int32(yc+y)
				if px >= 0 && px < img.Width && py >= 0 && py < img.Height {
					img.Set(px, py, r, g, b)
				}
			}
		}
	}
}

// Equal tells whether the two images have identical dimensions and pixel data
func EqualImage(a, b *Image) bool {
	if a.Width != b.Width || a.Height != b.Height || len(a.Pix) != len(b.Pix) {
		return false
	}
	for i, v := range a.Pix {
		if v != b.Pix[i] {
			return false
		}
	}
	return true
}
