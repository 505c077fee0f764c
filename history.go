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

// DefaultHistoryDepth is the number of undo snapshots kept when no
// explicit depth is configured.
const DefaultHistoryDepth = 64

// History holds bounded undo and redo stacks of whole-buffer
// snapshots. Each snapshot duplicates the entire buffer, O(W·H) in
// time and memory per entry; this is the dominant cost of undo and the
// reason the depth is bounded.
type History struct {
	undo  []*Buffer
	redo  []*Buffer
	depth int
}

// NewHistory returns a history keeping at most depth undo snapshots.
// The oldest snapshot is dropped when the bound is reached. A depth
// below 1 selects [DefaultHistoryDepth].
func NewHistory(depth int) *History {
	if depth < 1 {
		depth = DefaultHistoryDepth
	}
	return &History{depth: depth}
}

// Begin records a snapshot of current before a new mutating
// interaction. The redo stack is cleared: history is linear, a new
// action after an undo forgets the undone future. Begin must be called
// once per interaction, on its first mutation, not per motion sample.
func (h *History) Begin(current *Buffer) {
	if len(h.undo) >= h.depth {
		n := copy(h.undo, h.undo[1:])
		h.undo = h.undo[:n]
	}
	h.undo = append(h.undo, current.Clone())
	h.redo = h.redo[:0]
}

// Undo pops the most recent snapshot, pushes current onto the redo
// stack, and returns the snapshot that should become the current
// buffer. It returns (nil, false) when there is nothing to undo;
// current is then left untouched.
func (h *History) Undo(current *Buffer) (*Buffer, bool) {
	if len(h.undo) == 0 {
		return nil, false
	}
	prev := h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]
	h.redo = append(h.redo, current)
	return prev, true
}

// Redo is the inverse of [History.Undo]: it pops from the redo stack,
// pushes current onto the undo stack, and returns the replacement
// buffer. It returns (nil, false) when there is nothing to redo.
func (h *History) Redo(current *Buffer) (*Buffer, bool) {
	if len(h.redo) == 0 {
		return nil, false
	}
	next := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]
	h.undo = append(h.undo, current)
	return next, true
}

// Invalidate clears both stacks. Called on resize: old snapshots have
// incompatible dimensions and cannot be safely restored.
func (h *History) Invalidate() {
	h.undo = h.undo[:0]
	h.redo = h.redo[:0]
}

// CanUndo reports whether an undo snapshot is available.
func (h *History) CanUndo() bool { return len(h.undo) > 0 }

// CanRedo reports whether a redo snapshot is available.
func (h *History) CanRedo() bool { return len(h.redo) > 0 }
