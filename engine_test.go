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
	"testing"
)

// recorder captures Present calls for inspection.
type recorder struct {
	damages []image.Rectangle
	last    *image.RGBA
}

func (r *recorder) Present(img *image.RGBA, dmg image.Rectangle) {
	// copy the image: the engine reuses its scratch buffer
	cp := image.NewRGBA(img.Rect)
	copy(cp.Pix, img.Pix)
	r.last = cp
	r.damages = append(r.damages, dmg)
}

func (r *recorder) reset() {
	r.damages = r.damages[:0]
	r.last = nil
}

func newTestEngine(w, h int) (*Engine, *recorder) {
	rec := &recorder{}
	e := New(Config{
		Width:      w,
		Height:     h,
		Background: Black,
		Color:      Red,
		DrawRadius: 1,
		Presenter:  rec,
	})
	return e, rec
}

func TestEngineStampUndoScenario(t *testing.T) {
	e, rec := newTestEngine(10, 10)

	e.PointerDown(2, 2, ButtonPrimary)
	if e.Buffer().At(2, 2) != Red {
		t.Fatal("press did not stamp at the pointer position")
	}
	if len(rec.damages) != 1 {
		t.Fatalf("got %d presents, want 1", len(rec.damages))
	}
	if dmg := rec.damages[0]; !image.Pt(2, 2).In(dmg) {
		t.Errorf("damage %v does not contain the stamp center", dmg)
	}

	e.PointerUp(ButtonPrimary)
	e.Undo()

	blank := NewBuffer(10, 10, Black)
	if !buffersEqual(e.Buffer(), blank) {
		t.Error("undo did not restore the all-background buffer")
	}
}

func TestEngineStrokeDamage(t *testing.T) {
	e, rec := newTestEngine(50, 50)

	e.PointerDown(10, 10, ButtonPrimary)
	rec.reset()
	e.PointerMove(30, 20)

	if len(rec.damages) != 1 {
		t.Fatalf("got %d presents for one motion sample, want 1", len(rec.damages))
	}
	dmg := rec.damages[0]
	if !image.Pt(10, 10).In(dmg) || !image.Pt(30, 20).In(dmg) {
		t.Errorf("damage %v does not span the stroke", dmg)
	}
	if dmg.Dx() > 24 || dmg.Dy() > 14 {
		t.Errorf("damage %v is not minimal for a radius-1 stroke", dmg)
	}

	// presented view matches the live buffer inside the damage
	for y := dmg.Min.Y; y < dmg.Max.Y; y++ {
		for x := dmg.Min.X; x < dmg.Max.X; x++ {
			want := e.Buffer().At(x, y)
			got := rec.last.RGBAAt(x, y)
			if got.R != want.R() || got.G != want.G() || got.B != want.B() {
				t.Fatalf("presented pixel (%d,%d) = %v, want %#08x", x, y, got, uint32(want))
			}
		}
	}
}

func TestEngineMoveWithoutStroke(t *testing.T) {
	e, rec := newTestEngine(20, 20)

	e.PointerMove(5, 5)
	e.PointerMove(10, 10)
	if len(rec.damages) != 0 {
		t.Error("motion without an active stroke presented damage")
	}
	if !buffersEqual(e.Buffer(), NewBuffer(20, 20, Black)) {
		t.Error("motion without an active stroke mutated the buffer")
	}
}

func TestEngineErase(t *testing.T) {
	e, _ := newTestEngine(40, 40)

	// paint a patch, end the stroke, then erase across it
	e.PointerDown(20, 20, ButtonPrimary)
	e.PointerMove(25, 20)
	e.PointerUp(ButtonPrimary)

	e.PointerDown(10, 20, ButtonSecondary)
	e.PointerMove(35, 20)
	e.PointerUp(ButtonSecondary)

	// the default erase radius is 20, covering the painted patch;
	// erasing commits the opaque background color
	for y := range 40 {
		for x := range 40 {
			got := e.Buffer().At(x, y)
			if got != Black {
				t.Fatalf("pixel (%d,%d) = %#08x after erase, want background", x, y, uint32(got))
			}
			if got.A() != 0xff {
				t.Fatalf("pixel (%d,%d) not opaque after erase", x, y)
			}
		}
	}
}

func TestEngineStrokeIsOneInteraction(t *testing.T) {
	e, _ := newTestEngine(30, 30)

	e.PointerDown(5, 5, ButtonPrimary)
	e.PointerMove(10, 5)
	e.PointerMove(15, 5)
	e.PointerMove(20, 5)
	e.PointerUp(ButtonPrimary)

	// one undo must remove the whole stroke, not one segment
	e.Undo()
	if !buffersEqual(e.Buffer(), NewBuffer(30, 30, Black)) {
		t.Error("a multi-sample stroke recorded more than one snapshot")
	}
	// and a second undo has nothing left to do
	marked := e.Buffer().Clone()
	e.Undo()
	if !buffersEqual(e.Buffer(), marked) {
		t.Error("undo on empty history changed the buffer")
	}
}

func TestEngineRedoClearedByNewStroke(t *testing.T) {
	e, _ := newTestEngine(30, 30)

	e.PointerDown(5, 5, ButtonPrimary)
	e.PointerUp(ButtonPrimary)
	e.Undo()

	e.PointerDown(20, 20, ButtonPrimary)
	e.PointerUp(ButtonPrimary)
	afterSecond := e.Buffer().Clone()

	e.Redo() // must be a no-op
	if !buffersEqual(e.Buffer(), afterSecond) {
		t.Error("redo was not cleared by the new stroke")
	}
}

func TestEngineResize(t *testing.T) {
	e, rec := newTestEngine(100, 100)

	e.PointerDown(10, 10, ButtonPrimary)
	e.PointerUp(ButtonPrimary)
	e.PointerDown(20, 20, ButtonPrimary)
	e.PointerUp(ButtonPrimary)

	rec.reset()
	e.Resize(50, 200)

	if e.Buffer().Width() != 50 || e.Buffer().Height() != 200 {
		t.Fatalf("buffer size = %d×%d", e.Buffer().Width(), e.Buffer().Height())
	}
	if len(rec.damages) != 1 || rec.damages[0] != image.Rect(0, 0, 50, 200) {
		t.Errorf("resize presented %v, want one full-buffer update", rec.damages)
	}

	// both history sequences are cleared
	before := e.Buffer().Clone()
	e.Undo()
	if !buffersEqual(e.Buffer(), before) {
		t.Error("undo restored a stale snapshot across a resize")
	}
	e.Redo()
	if !buffersEqual(e.Buffer(), before) {
		t.Error("redo restored a stale snapshot across a resize")
	}

	// overlapping content survived
	if e.Buffer().At(20, 20) != Red {
		t.Error("resize lost overlapping content")
	}
}

func TestEngineResizeRejected(t *testing.T) {
	e, rec := newTestEngine(30, 30)
	e.PointerDown(5, 5, ButtonPrimary)
	e.PointerUp(ButtonPrimary)
	rec.reset()

	e.Resize(0, 50)
	e.Resize(50, 0)
	e.Resize(-3, -3)

	if e.Buffer().Width() != 30 || e.Buffer().Height() != 30 {
		t.Error("rejected resize changed dimensions")
	}
	if len(rec.damages) != 0 {
		t.Error("rejected resize presented an update")
	}

	// history must survive a rejected resize
	e.Undo()
	if !buffersEqual(e.Buffer(), NewBuffer(30, 30, Black)) {
		t.Error("history lost across a rejected resize")
	}
}

func TestEngineClearCanvas(t *testing.T) {
	e, rec := newTestEngine(20, 20)
	e.PointerDown(10, 10, ButtonPrimary)
	e.PointerUp(ButtonPrimary)
	marked := e.Buffer().Clone()

	rec.reset()
	e.ClearCanvas()
	if !buffersEqual(e.Buffer(), NewBuffer(20, 20, Black)) {
		t.Error("clear did not fill with background")
	}
	if len(rec.damages) != 1 || rec.damages[0] != image.Rect(0, 0, 20, 20) {
		t.Errorf("clear presented %v, want one full-buffer update", rec.damages)
	}

	e.Undo()
	if !buffersEqual(e.Buffer(), marked) {
		t.Error("clear is not undoable")
	}
}

func TestEngineAdjustRadius(t *testing.T) {
	e, _ := newTestEngine(20, 20)

	e.AdjustRadius(ToolDraw, 100)
	if got := e.Radius(ToolDraw); got != MaxDrawRadius {
		t.Errorf("draw radius = %d, want clamped to %d", got, MaxDrawRadius)
	}
	e.AdjustRadius(ToolDraw, -100)
	if got := e.Radius(ToolDraw); got != MinRadius {
		t.Errorf("draw radius = %d, want clamped to %d", got, MinRadius)
	}
	e.AdjustRadius(ToolErase, 100)
	if got := e.Radius(ToolErase); got != MaxEraseRadius {
		t.Errorf("erase radius = %d, want clamped to %d", got, MaxEraseRadius)
	}
}

func TestEnginePointerUpWrongButton(t *testing.T) {
	e, _ := newTestEngine(30, 30)

	e.PointerDown(5, 5, ButtonPrimary)
	e.PointerUp(ButtonSecondary) // not the stroke's button
	e.PointerMove(15, 5)

	if e.Buffer().At(15, 5) == Black {
		t.Error("stroke ended by a release of the other button")
	}
}

func TestEngineSecondPressIgnored(t *testing.T) {
	e, _ := newTestEngine(30, 30)

	e.PointerDown(5, 5, ButtonPrimary)
	e.PointerDown(25, 25, ButtonSecondary) // ignored while stroking
	e.PointerMove(10, 5)
	e.PointerUp(ButtonPrimary)

	// one undo removes everything: no second snapshot was recorded
	e.Undo()
	if !buffersEqual(e.Buffer(), NewBuffer(30, 30, Black)) {
		t.Error("second press during a stroke recorded a snapshot")
	}
}
