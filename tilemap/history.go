package tilemap

import "iter"

// DefaultHistoryCapacity is how many diffs each of the undo and redo stacks keep.
const DefaultHistoryCapacity = 5

type change struct {
	pos  Pos
	prev Tile
}

// Diff records the value each touched cell held before an edit. Applying it
// back onto the grid reverses that edit.
type Diff struct {
	changes []change
	seen    map[Pos]struct{}
}

func NewDiff(capacity int) *Diff {
	return &Diff{
		changes: make([]change, 0, capacity),
		seen:    make(map[Pos]struct{}, capacity),
	}
}

// Record stores prev for pos unless pos was already recorded.
func (d *Diff) Record(pos Pos, prev Tile) bool {
	if _, ok := d.seen[pos]; ok {
		return false
	}
	d.seen[pos] = struct{}{}
	d.changes = append(d.changes, change{pos: pos, prev: prev})
	return true
}

func (d *Diff) Has(pos Pos) bool {
	_, ok := d.seen[pos]
	return ok
}

func (d *Diff) Len() int { return len(d.changes) }

func (d *Diff) All() iter.Seq2[Pos, Tile] {
	return func(yield func(Pos, Tile) bool) {
		for _, c := range d.changes {
			if !yield(c.pos, c.prev) {
				return
			}
		}
	}
}

// applyTo writes every recorded value onto g and returns the diff that undoes
// the write.
func (d *Diff) applyTo(g *Grid) *Diff {
	inverse := NewDiff(d.Len())
	for _, c := range d.changes {
		inverse.Record(c.pos, g.Apply(c.pos, c.prev))
	}
	return inverse
}

// History is a bounded stack of diffs. Pushing onto a full stack drops the
// oldest entry.
type History struct {
	diffs    []*Diff
	capacity int
}

func NewHistory(capacity int) *History {
	if capacity <= 0 {
		capacity = DefaultHistoryCapacity
	}
	return &History{diffs: make([]*Diff, 0, capacity), capacity: capacity}
}

func (h *History) Push(d *Diff) {
	if len(h.diffs) >= h.capacity {
		// drop oldest
		copy(h.diffs, h.diffs[1:])
		h.diffs = h.diffs[:len(h.diffs)-1]
	}
	h.diffs = append(h.diffs, d)
}

func (h *History) Pop() (*Diff, bool) {
	n := len(h.diffs)
	if n == 0 {
		return nil, false
	}
	d := h.diffs[n-1]
	h.diffs[n-1] = nil
	h.diffs = h.diffs[:n-1]
	return d, true
}

func (h *History) Clear() {
	clear(h.diffs)
	h.diffs = h.diffs[:0]
}

func (h *History) Len() int { return len(h.diffs) }

func (h *History) Cap() int { return h.capacity }
