// seehuhn.de/go/paint - an interactive raster painting engine
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
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

package paint

import (
	"image"

	"seehuhn.de/go/geom/vec"
)

// Stamp writes an antialiased filled disc of the given radius into dst,
// centered at (cx, cy), blending fg over the existing content. Pixels
// within the radius get full coverage; coverage then falls off linearly
// across a one-pixel ring, which provides the antialiased edge. Pixels
// outside the buffer are clipped silently.
//
// The returned rectangle bounds the pixels actually written; it is
// empty if the disc lies entirely outside the buffer. Cost is O(r²)
// per call, acceptable since the engine bounds r by [MaxEraseRadius].
func Stamp(dst *Buffer, cx, cy, radius int, fg Pixel) image.Rectangle {
	if radius < 1 {
		radius = 1
	}
	r := float64(radius)

	var dmg damage
	for dy := -radius - 1; dy <= radius+1; dy++ {
		y := cy + dy
		if y < 0 || y >= dst.height {
			continue
		}
		for dx := -radius - 1; dx <= radius+1; dx++ {
			x := cx + dx
			if x < 0 || x >= dst.width {
				continue
			}

			d := vec.Vec2{X: float64(dx), Y: float64(dy)}.Length()
			coverage := 1.0
			if d > r {
				coverage = 1 - (d - r)
				if coverage <= 0 {
					continue
				}
			}

			i := y*dst.width + x
			dst.pix[i] = dst.pix[i].Blend(fg, coverage)
			dmg.add(x, y)
		}
	}
	return dmg.rect()
}
