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

// Package paint implements an interactive raster painting engine.
//
// The engine owns a mutable pixel buffer which the caller draws into
// with antialiased brush dabs and freehand strokes. Each mutation
// reports the minimal damaged rectangle, so a display surface only has
// to refresh the region that actually changed. A bounded undo/redo
// history of whole-buffer snapshots is maintained across interactions.
//
// The package is display-agnostic: windowing, input decoding and pixel
// upload live in the caller (see cmd/paint for a complete shell). The
// engine consumes pointer and key commands through the [Engine] methods
// and talks to the display only through the narrow [Presenter]
// interface.
package paint
