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

// Brush radius limits. Radii are clamped into these bounds whenever
// they are set or adjusted.
const (
	MinRadius      = 1
	MaxDrawRadius  = 20
	MaxEraseRadius = 50
)

// Tool identifies one of the two drawing tools. Erasing is drawing
// with the opaque background color; transparency is never committed to
// the buffer.
type Tool int

const (
	ToolDraw Tool = iota
	ToolErase
)

// Button identifies a pointer button. The primary button draws with
// the active color, the secondary button erases.
type Button int

const (
	ButtonPrimary Button = iota
	ButtonSecondary
)

// Presenter is the engine's only outbound interface: a display surface
// that is told which rectangle of the canvas changed. The image passed
// to Present covers exactly the damage rectangle (img.Rect == damage)
// and is only valid during the call; full-buffer updates pass the
// whole canvas bounds.
type Presenter interface {
	Present(img *image.RGBA, damage image.Rectangle)
}

// Config collects the initial engine parameters. Zero fields select
// defaults: an 800×600 canvas, black background, white draw color,
// pen-sized draw radius, erase radius 20, history depth
// [DefaultHistoryDepth].
type Config struct {
	Width, Height int
	Background    Pixel
	Color         Pixel
	DrawRadius    int
	EraseRadius   int
	HistoryDepth  int
	Presenter     Presenter
}

// Engine owns the pixel buffer, the undo/redo history and the tool
// state, and turns pointer and key commands into raster operations.
// It runs on a single goroutine: every operation completes before the
// next input event is processed, so a motion sample always sees the
// buffer state left by its predecessor.
type Engine struct {
	buf       *Buffer
	hist      *History
	presenter Presenter

	background  Pixel
	color       Pixel
	drawRadius  int
	eraseRadius int

	stroking   bool
	activeTool Tool
	lastX      int
	lastY      int

	scratch *image.RGBA // reused presentation buffer
}

// New creates an engine with the given configuration.
func New(cfg Config) *Engine {
	width, height := cfg.Width, cfg.Height
	if width <= 0 || height <= 0 {
		width, height = 800, 600
	}
	background := cfg.Background
	if background == 0 {
		background = Black
	}
	color := cfg.Color
	if color == 0 {
		color = White
	}
	drawRadius := cfg.DrawRadius
	if drawRadius == 0 {
		drawRadius = MinRadius
	}
	eraseRadius := cfg.EraseRadius
	if eraseRadius == 0 {
		eraseRadius = 20
	}

	return &Engine{
		buf:         NewBuffer(width, height, background),
		hist:        NewHistory(cfg.HistoryDepth),
		presenter:   cfg.Presenter,
		background:  background,
		color:       color,
		drawRadius:  clampRadius(ToolDraw, drawRadius),
		eraseRadius: clampRadius(ToolErase, eraseRadius),
	}
}

// Buffer returns the canvas. The buffer is owned by the engine and
// must be treated as read-only by callers.
func (e *Engine) Buffer() *Buffer { return e.buf }

// PointerDown begins a stroke at (x, y): a draw stroke for the primary
// button, an erase stroke for the secondary button. The pre-stroke
// buffer is snapshotted for undo and a single dab is stamped at the
// press position. A press while another stroke is active is ignored.
func (e *Engine) PointerDown(x, y int, b Button) {
	if e.stroking {
		return
	}
	tool := ToolDraw
	if b == ButtonSecondary {
		tool = ToolErase
	}

	e.hist.Begin(e.buf)
	e.stroking = true
	e.activeTool = tool
	e.lastX, e.lastY = x, y

	dmg := Stamp(e.buf, x, y, e.radius(tool), e.toolColor(tool))
	e.present(dmg)
}

// PointerMove extends the active stroke from the last point to (x, y)
// and updates the last point. Without an active stroke it does
// nothing.
func (e *Engine) PointerMove(x, y int) {
	if !e.stroking {
		return
	}
	tool := e.activeTool
	dmg := Stroke(e.buf, e.lastX, e.lastY, x, y, e.dabShape(tool), e.radius(tool), e.toolColor(tool))
	e.lastX, e.lastY = x, y
	e.present(dmg)
}

// PointerUp ends the active stroke if b is the button that started it.
// No buffer mutation takes place.
func (e *Engine) PointerUp(b Button) {
	if !e.stroking {
		return
	}
	tool := ToolDraw
	if b == ButtonSecondary {
		tool = ToolErase
	}
	if tool != e.activeTool {
		return
	}
	e.stroking = false
	logger().Debug("stroke ended", "tool", int(tool))
}

// SelectColor sets the active draw color.
func (e *Engine) SelectColor(p Pixel) {
	e.color = p | 0xff000000
}

// AdjustRadius changes the radius of the given tool by delta pixels,
// clamped into the tool's valid range.
func (e *Engine) AdjustRadius(t Tool, delta int) {
	switch t {
	case ToolDraw:
		e.drawRadius = clampRadius(t, e.drawRadius+delta)
	case ToolErase:
		e.eraseRadius = clampRadius(t, e.eraseRadius+delta)
	}
}

// Radius returns the current radius of the given tool.
func (e *Engine) Radius(t Tool) int { return e.radius(t) }

// ClearCanvas snapshots the buffer for undo and fills it with the
// background color.
func (e *Engine) ClearCanvas() {
	e.hist.Begin(e.buf)
	e.buf.Fill(e.background)
	logger().Debug("canvas cleared")
	e.present(e.buf.Bounds())
}

// Undo restores the buffer state before the most recent interaction.
// With no recorded snapshot it is a no-op.
func (e *Engine) Undo() {
	prev, ok := e.hist.Undo(e.buf)
	if !ok {
		return
	}
	e.buf = prev
	logger().Debug("undo")
	e.present(e.buf.Bounds())
}

// Redo reverses the most recent undo. With no undone state it is a
// no-op.
func (e *Engine) Redo() {
	next, ok := e.hist.Redo(e.buf)
	if !ok {
		return
	}
	e.buf = next
	logger().Debug("redo")
	e.present(e.buf.Bounds())
}

// Resize reshapes the canvas, preserving the overlapping region and
// filling new cells with the background color. Because old snapshots
// have incompatible dimensions the history is invalidated in the same
// step, and a full-buffer update is presented. Non-positive dimensions
// are rejected, leaving buffer and history untouched. A resize to the
// current dimensions only re-presents the buffer.
func (e *Engine) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	if width == e.buf.Width() && height == e.buf.Height() {
		e.present(e.buf.Bounds())
		return
	}

	e.buf.Resize(width, height, e.background)
	e.hist.Invalidate()
	logger().Info("canvas resized", "width", width, "height", height)
	e.present(e.buf.Bounds())
}

// present converts the damaged region and hands it to the presenter.
// Empty damage (a stroke that missed the buffer) issues no update.
func (e *Engine) present(dmg image.Rectangle) {
	if e.presenter == nil {
		return
	}
	view := e.buf.ToRGBA(dmg, e.scratch)
	if view == nil {
		return
	}
	e.scratch = view
	e.presenter.Present(view, view.Rect)
}

// dabShape selects the stroke mode for a tool: radius-1 strokes use
// the Wu antialiased pen line, everything else uses stamped discs.
func (e *Engine) dabShape(t Tool) DabShape {
	if e.radius(t) == MinRadius {
		return DabPoint
	}
	return DabDisc
}

func (e *Engine) radius(t Tool) int {
	if t == ToolErase {
		return e.eraseRadius
	}
	return e.drawRadius
}

func (e *Engine) toolColor(t Tool) Pixel {
	if t == ToolErase {
		return e.background
	}
	return e.color
}

func clampRadius(t Tool, r int) int {
	limit := MaxDrawRadius
	if t == ToolErase {
		limit = MaxEraseRadius
	}
	return min(max(r, MinRadius), limit)
}
