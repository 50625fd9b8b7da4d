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
	"bufio"
	"fmt"
	"image"
	"io"
	"os"

	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder

	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/tiff" // register TIFF decoder
	_ "golang.org/x/image/webp" // register WebP decoder
)

// Reads a raster image from a file. The format is detected from the content,
// supported are PNG, JPEG, GIF, BMP, TIFF and WebP
func NewImageFromFile(fileName string) (img *Image, err error) {
	file, err := os.Open(fileName)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	img, err = NewImageFromReader(bufio.NewReader(file))
	if err != nil {
		return nil, fmt.Errorf("%s: %s", fileName, err.Error())
	}
	return img, nil
}

// Reads a raster image from a reader, converting to 8-bit RGB.
// Alpha is dropped
func NewImageFromReader(reader io.Reader) (img *Image, err error) {
	src, _, err := image.Decode(reader)
	if err != nil {
		return nil, err
	}
	bounds := src.Bounds()
	width, height := int32(bounds.Dx()), int32(bounds.Dy())
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("invalid image dimensions %dx%d", width, height)
	}

	img = NewImage(width, height, nil)
	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := src.At(x, y).RGBA()
			img.Pix[i] = uint8(r >> 8)
			img.Pix[i+1] = uint8(g >> 8)
			img.Pix[i+2] = uint8(b >> 8)
			i += 3
		}
	}
	return img, nil
}
