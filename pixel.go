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

import "image/color"

// Pixel is a packed 32-bit color value in 0xAARRGGBB order: alpha in
// the high byte, then red, green and blue. This order is used both for
// buffer storage and for the data handed to the display surface.
//
// Pixels committed to a [Buffer] are always fully opaque; the alpha
// channel of a free-standing Pixel only matters as far as [Pixel.Blend]
// forces it to 0xff in its result.
type Pixel uint32

// Common colors. These are plain values, not a closed set: any Pixel
// can be selected as a drawing color.
const (
	Black Pixel = 0xff000000
	White Pixel = 0xffffffff
	Red   Pixel = 0xffef4444
	Green Pixel = 0xff22c55e
	Blue  Pixel = 0xff3b82f6
)

// NewPixel returns the opaque pixel with the given channel values.
func NewPixel(r, g, b uint8) Pixel {
	return 0xff000000 | Pixel(r)<<16 | Pixel(g)<<8 | Pixel(b)
}

// A returns the alpha channel.
func (p Pixel) A() uint8 { return uint8(p >> 24) }

// R returns the red channel.
func (p Pixel) R() uint8 { return uint8(p >> 16) }

// G returns the green channel.
func (p Pixel) G() uint8 { return uint8(p >> 8) }

// B returns the blue channel.
func (p Pixel) B() uint8 { return uint8(p) }

// Blend composites the foreground color fg over p with the given
// coverage and returns the result. Coverage is the fraction of the
// pixel covered by the foreground, clamped into [0,1] before use; each
// channel is interpolated linearly and rounded to nearest, and the
// result is always fully opaque.
//
// All antialiasing in this package goes through Blend: brush edges and
// line coverage alike.
func (p Pixel) Blend(fg Pixel, coverage float64) Pixel {
	if coverage <= 0 {
		return p | 0xff000000
	}
	if coverage >= 1 {
		return fg | 0xff000000
	}
	r := blendChannel(p.R(), fg.R(), coverage)
	g := blendChannel(p.G(), fg.G(), coverage)
	b := blendChannel(p.B(), fg.B(), coverage)
	return 0xff000000 | r<<16 | g<<8 | b
}

func blendChannel(bg, fg uint8, coverage float64) Pixel {
	return Pixel(float64(fg)*coverage + float64(bg)*(1-coverage) + 0.5)
}

// RGBA implements the color.Color interface.
func (p Pixel) RGBA() (r, g, b, a uint32) {
	// stored pixels are opaque, so no premultiplication is needed
	r = uint32(p.R()) * 0x101
	g = uint32(p.G()) * 0x101
	b = uint32(p.B()) * 0x101
	a = uint32(p.A()) * 0x101
	return
}

// PixelFromColor converts a color.Color to a Pixel. The alpha channel
// is forced opaque, matching what [Pixel.Blend] would commit.
func PixelFromColor(c color.Color) Pixel {
	r, g, b, _ := c.RGBA()
	return NewPixel(uint8(r>>8), uint8(g>>8), uint8(b>>8))
}
