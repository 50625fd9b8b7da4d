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
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io"
	"os"
)

// Write a raster image to PNG
func (img *Image) WritePNGToFile(fileName string) error {
	file, err := os.Create(fileName)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	defer writer.Flush()

	return img.WritePNG(writer)
}

// Write a raster image to PNG
func (img *Image) WritePNG(writer io.Writer) error {
	return png.Encode(writer, img.toRGBA())
}

// Write a raster image to JPG with the given quality
func (img *Image) WriteJPGToFile(fileName string, quality int) error {
	file, err := os.Create(fileName)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	defer writer.Flush()

	return img.WriteJPG(writer, quality)
}

// Write a raster image to JPG with the given quality
func (img *Image) WriteJPG(writer io.Writer, quality int) error {
	return jpeg.Encode(writer, img.toRGBA(), &jpeg.Options{Quality: quality})
}

// Convert pixels into a Golang image for the stdlib encoders
func (img *Image) toRGBA() *image.RGBA {
	width, height := int(img.Width), int(img.Height)
	rgba := image.NewRGBA(image.Rectangle{image.Point{0, 0}, image.Point{width, height}})
	i := 0
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := color.RGBA{img.Pix[i], img.Pix[i+1], img.Pix[i+2], 255}
			rgba.SetRGBA(x, y, c)
			i += 3
		}
	}
	return rgba
}
