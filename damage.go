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

import "image"

// damage accumulates the bounding rectangle of all pixels written
// during one drawing operation. The zero value is empty.
type damage struct {
	some                   bool
	minX, minY, maxX, maxY int
}

// add grows the rectangle to include the pixel at (x, y).
func (d *damage) add(x, y int) {
	if !d.some {
		d.minX, d.maxX = x, x
		d.minY, d.maxY = y, y
		d.some = true
		return
	}
	d.minX = min(d.minX, x)
	d.maxX = max(d.maxX, x)
	d.minY = min(d.minY, y)
	d.maxY = max(d.maxY, y)
}

// addRect grows the rectangle to include r. Empty rectangles are
// ignored.
func (d *damage) addRect(r image.Rectangle) {
	if r.Empty() {
		return
	}
	d.add(r.Min.X, r.Min.Y)
	d.add(r.Max.X-1, r.Max.Y-1)
}

// rect returns the accumulated rectangle. If nothing was added the
// result is the empty rectangle and the caller issues no damage
// update.
func (d *damage) rect() image.Rectangle {
	if !d.some {
		return image.Rectangle{}
	}
	return image.Rect(d.minX, d.minY, d.maxX+1, d.maxY+1)
}
