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

import "testing"

func buffersEqual(a, b *Buffer) bool {
	if a.Width() != b.Width() || a.Height() != b.Height() {
		return false
	}
	for y := range a.Height() {
		for x := range a.Width() {
			if a.At(x, y) != b.At(x, y) {
				return false
			}
		}
	}
	return true
}

func TestHistoryRoundTrip(t *testing.T) {
	h := NewHistory(8)
	buf := NewBuffer(16, 16, Black)

	h.Begin(buf)
	Stamp(buf, 8, 8, 3, Red)
	afterStroke := buf.Clone()

	prev, ok := h.Undo(buf)
	if !ok {
		t.Fatal("Undo failed with one snapshot recorded")
	}
	buf = prev
	if !buffersEqual(buf, NewBuffer(16, 16, Black)) {
		t.Error("undo did not restore the pre-stroke buffer")
	}

	next, ok := h.Redo(buf)
	if !ok {
		t.Fatal("Redo failed immediately after Undo")
	}
	buf = next
	if !buffersEqual(buf, afterStroke) {
		t.Error("redo did not restore the post-stroke buffer byte-for-byte")
	}
}

func TestHistoryEmptyNoOps(t *testing.T) {
	h := NewHistory(4)
	buf := NewBuffer(4, 4, Black)

	if _, ok := h.Undo(buf); ok {
		t.Error("Undo succeeded on empty history")
	}
	if _, ok := h.Redo(buf); ok {
		t.Error("Redo succeeded on empty history")
	}
	if h.CanUndo() || h.CanRedo() {
		t.Error("empty history reports availability")
	}
}

func TestHistoryLinear(t *testing.T) {
	h := NewHistory(8)
	buf := NewBuffer(8, 8, Black)

	h.Begin(buf)
	Stamp(buf, 4, 4, 2, Red)

	prev, _ := h.Undo(buf)
	buf = prev
	if !h.CanRedo() {
		t.Fatal("no redo after undo")
	}

	// a new interaction forgets the undone future
	h.Begin(buf)
	Stamp(buf, 2, 2, 1, Green)
	if h.CanRedo() {
		t.Error("redo stack not cleared by new interaction")
	}
	if _, ok := h.Redo(buf); ok {
		t.Error("Redo succeeded after history diverged")
	}
}

func TestHistoryInvalidate(t *testing.T) {
	h := NewHistory(8)
	buf := NewBuffer(8, 8, Black)

	h.Begin(buf)
	h.Begin(buf)
	prev, _ := h.Undo(buf)
	buf = prev

	h.Invalidate()
	if h.CanUndo() || h.CanRedo() {
		t.Error("Invalidate left snapshots behind")
	}
	if _, ok := h.Undo(buf); ok {
		t.Error("Undo succeeded after Invalidate")
	}
}

func TestHistoryDepthBound(t *testing.T) {
	const depth = 3
	h := NewHistory(depth)
	buf := NewBuffer(4, 4, Black)

	// mark each snapshot with a distinct pixel before recording the next
	for i := range 5 {
		h.Begin(buf)
		buf.Set(i%4, 0, NewPixel(uint8(i+1), 0, 0))
	}

	// only the last three snapshots survive
	count := 0
	for h.CanUndo() {
		prev, _ := h.Undo(buf)
		buf = prev
		count++
	}
	if count != depth {
		t.Errorf("undo count = %d, want %d", count, depth)
	}

	// the oldest surviving snapshot is the state before interaction 3,
	// i.e. it carries the marks of interactions 1 and 2
	if got := buf.At(1, 0); got != NewPixel(2, 0, 0) {
		t.Errorf("oldest snapshot pixel (1,0) = %#08x, want mark 2", uint32(got))
	}
	if got := buf.At(2, 0); got != Black {
		t.Errorf("oldest snapshot pixel (2,0) = %#08x, want untouched", uint32(got))
	}
}

func TestHistorySnapshotIsolation(t *testing.T) {
	h := NewHistory(4)
	buf := NewBuffer(8, 8, Black)

	h.Begin(buf)
	buf.Fill(White) // must not leak into the recorded snapshot

	prev, _ := h.Undo(buf)
	if prev.At(3, 3) != Black {
		t.Error("snapshot shares storage with the live buffer")
	}
}
