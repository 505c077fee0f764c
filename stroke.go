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
	"math"

	"seehuhn.de/go/geom/vec"
)

// DabShape selects how a stroke deposits color along its path.
type DabShape int

const (
	// DabDisc stamps an antialiased filled disc of the brush radius at
	// every pixel of the walked path. Overlapping stamps are harmless:
	// interior pixels blend with coverage 1, which is idempotent.
	DabDisc DabShape = iota

	// DabPoint draws a single-pixel-wide antialiased line (Wu's
	// algorithm) instead of stamped discs. The radius argument is
	// ignored.
	DabPoint
)

// Stroke rasterizes the segment from (x0, y0) to (x1, y1) into dst.
// For DabDisc it walks the 8-connected integer path between the
// endpoints and stamps a disc at every visited pixel, so a thick
// stroke has no gaps regardless of slope. For DabPoint it draws a Wu
// antialiased line with continuous per-pixel coverage.
//
// The returned rectangle is the union bound of all pixels written,
// empty if the stroke missed the buffer entirely. A stroke whose
// endpoints coincide degenerates to a single stamp.
func Stroke(dst *Buffer, x0, y0, x1, y1 int, shape DabShape, radius int, fg Pixel) image.Rectangle {
	if x0 == x1 && y0 == y1 {
		if shape == DabPoint {
			radius = 1
		}
		return Stamp(dst, x0, y0, radius, fg)
	}
	if shape == DabPoint {
		a := vec.Vec2{X: float64(x0), Y: float64(y0)}
		b := vec.Vec2{X: float64(x1), Y: float64(y1)}
		return wuLine(dst, a, b, fg)
	}
	return discStroke(dst, x0, y0, x1, y1, radius, fg)
}

// discStroke walks the midpoint line from (x0, y0) to (x1, y1) and
// stamps a disc at each step.
func discStroke(dst *Buffer, x0, y0, x1, y1, radius int, fg Pixel) image.Rectangle {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	var dmg damage
	for {
		dmg.addRect(Stamp(dst, x0, y0, radius, fg))
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
	return dmg.rect()
}

// wuLine draws a single-pixel antialiased line from a to b. At each
// step along the major axis the two pixels straddling the fractional
// minor-axis position are blended with complementary coverage; the
// endpoints additionally carry a gap factor for their fractional
// offset along the major axis.
func wuLine(dst *Buffer, a, b vec.Vec2, fg Pixel) image.Rectangle {
	var dmg damage

	steep := math.Abs(b.Y-a.Y) > math.Abs(b.X-a.X)
	if steep {
		a.X, a.Y = a.Y, a.X
		b.X, b.Y = b.Y, b.X
	}
	if a.X > b.X {
		a, b = b, a
	}

	// plot blends one pixel, undoing the axis swap for steep lines.
	plot := func(x, y int, coverage float64) {
		if coverage <= 0 {
			return
		}
		if steep {
			x, y = y, x
		}
		if x < 0 || x >= dst.width || y < 0 || y >= dst.height {
			return
		}
		i := y*dst.width + x
		dst.pix[i] = dst.pix[i].Blend(fg, coverage)
		dmg.add(x, y)
	}

	dx := b.X - a.X
	dy := b.Y - a.Y
	gradient := 1.0
	if dx != 0 {
		gradient = dy / dx
	}

	// first endpoint
	xEnd := math.Round(a.X)
	yEnd := a.Y + gradient*(xEnd-a.X)
	xGap := 1 - fpart(a.X+0.5)
	xPixel1 := int(xEnd)
	yPixel1 := int(math.Floor(yEnd))
	plot(xPixel1, yPixel1, (1-fpart(yEnd))*xGap)
	plot(xPixel1, yPixel1+1, fpart(yEnd)*xGap)
	interY := yEnd + gradient

	// second endpoint
	xEnd = math.Round(b.X)
	yEnd = b.Y + gradient*(xEnd-b.X)
	xGap = fpart(b.X + 0.5)
	xPixel2 := int(xEnd)
	yPixel2 := int(math.Floor(yEnd))
	plot(xPixel2, yPixel2, (1-fpart(yEnd))*xGap)
	plot(xPixel2, yPixel2+1, fpart(yEnd)*xGap)

	for x := xPixel1 + 1; x < xPixel2; x++ {
		y := int(math.Floor(interY))
		plot(x, y, 1-fpart(interY))
		plot(x, y+1, fpart(interY))
		interY += gradient
	}

	return dmg.rect()
}

// fpart returns the fractional part of x.
func fpart(x float64) float64 {
	return x - math.Floor(x)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
