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
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Applies gamma to lightness and a multiplier to chroma, in LuvLCh space.
// gamma=1 and chroma=1 is a no op
func (img *Image) AdjustChroma(gamma, chroma float32) {
	if gamma == 1 && chroma == 1 {
		return
	}
	gammaInv := 1.0 / float64(gamma)
	chroma64 := float64(chroma)
	for i := 0; i < len(img.Pix); i += 3 {
		col := colorful.Color{
			R: float64(img.Pix[i]) / 255,
			G: float64(img.Pix[i+1]) / 255,
			B: float64(img.Pix[i+2]) / 255,
		}
		l, c, h := col.LuvLCh()
		l = math.Pow(l, gammaInv)
		c *= chroma64
		col = colorful.LuvLCh(l, c, h).Clamped()
		img.Pix[i] = uint8(col.R*255 + 0.5)
		img.Pix[i+1] = uint8(col.G*255 + 0.5)
		img.Pix[i+2] = uint8(col.B*255 + 0.5)
	}
}
