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

// Buffer is a width×height grid of packed [Pixel] values, linearized
// row-major as y*width+x. The dimensions are part of the buffer's
// identity: a resize replaces the pixel storage wholesale rather than
// mutating it in place.
//
// All per-pixel write paths clip silently. Coordinates arrive from
// arbitrary device input and out-of-bounds writes must never disturb
// the interaction loop; only [Buffer.Resize] reshapes the buffer.
type Buffer struct {
	width  int
	height int
	pix    []Pixel
}

// NewBuffer returns a buffer of the given size with every cell set to
// fill. Width and height must be positive.
func NewBuffer(width, height int, fill Pixel) *Buffer {
	b := &Buffer{
		width:  width,
		height: height,
		pix:    make([]Pixel, width*height),
	}
	if fill != 0 {
		b.Fill(fill)
	}
	return b
}

// Width returns the buffer width in pixels.
func (b *Buffer) Width() int { return b.width }

// Height returns the buffer height in pixels.
func (b *Buffer) Height() int { return b.height }

// Bounds returns the buffer rectangle, anchored at the origin.
func (b *Buffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.width, b.height)
}

// At returns the pixel at (x, y). Out-of-bounds coordinates return the
// zero Pixel, which is distinguishable from any committed pixel
// because committed pixels are always opaque.
func (b *Buffer) At(x, y int) Pixel {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return 0
	}
	return b.pix[y*b.width+x]
}

// Set writes the pixel at (x, y). Out-of-bounds coordinates are
// silently ignored.
func (b *Buffer) Set(x, y int, p Pixel) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	b.pix[y*b.width+x] = p
}

// Fill sets every cell to p.
func (b *Buffer) Fill(p Pixel) {
	for i := range b.pix {
		b.pix[i] = p
	}
}

// Clone returns an independent copy of the buffer.
func (b *Buffer) Clone() *Buffer {
	pix := make([]Pixel, len(b.pix))
	copy(pix, b.pix)
	return &Buffer{width: b.width, height: b.height, pix: pix}
}

// Resize reshapes the buffer to width×height. The new storage is
// pre-filled with background, the rectangular intersection of old and
// new dimensions is copied over, and the buffer is swapped in a single
// assignment so no partial-resize state is observable. Non-positive
// dimensions are rejected; Resize reports whether the buffer changed.
func (b *Buffer) Resize(width, height int, background Pixel) bool {
	if width <= 0 || height <= 0 {
		return false
	}

	next := NewBuffer(width, height, background)
	copyWidth := min(b.width, width)
	copyHeight := min(b.height, height)
	for y := range copyHeight {
		copy(next.pix[y*width:y*width+copyWidth], b.pix[y*b.width:y*b.width+copyWidth])
	}

	*b = *next
	return true
}

// ToRGBA converts the sub-rectangle r of the buffer into an
// *image.RGBA whose Rect equals r clipped to the buffer bounds. If dst
// has enough capacity its pixel storage is reused, so a caller
// presenting damage rectangles in a loop allocates only when the
// damaged area grows. Returns nil if the clipped rectangle is empty.
func (b *Buffer) ToRGBA(r image.Rectangle, dst *image.RGBA) *image.RGBA {
	r = r.Intersect(b.Bounds())
	if r.Empty() {
		return nil
	}

	n := 4 * r.Dx() * r.Dy()
	var pix []uint8
	if dst != nil && cap(dst.Pix) >= n {
		pix = dst.Pix[:n]
	} else {
		pix = make([]uint8, n)
	}

	i := 0
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := b.pix[y*b.width+r.Min.X : y*b.width+r.Max.X]
		for _, p := range row {
			pix[i] = p.R()
			pix[i+1] = p.G()
			pix[i+2] = p.B()
			pix[i+3] = p.A()
			i += 4
		}
	}

	return &image.RGBA{
		Pix:    pix,
		Stride: 4 * r.Dx(),
		Rect:   r,
	}
}
