package tilemap

import (
	"errors"
	"fmt"

	"github.com/milk9111/tilepaint/document"
)

// ErrNoSpriteSheet is returned by Save when no spritesheet has been chosen.
var ErrNoSpriteSheet = errors.New("tilemap: no spritesheet selected")

// MaxSlices bounds the rows and columns of a spritesheet.
const MaxSlices = 256

func clampSlices(n uint64) uint64 { return min(max(n, 1), MaxSlices) }

// Engine owns the grid and its undo/redo history. Every mutation of the grid
// goes through it.
type Engine struct {
	grid   *Grid
	undos  *History
	redos  *History
	stroke *Stroke

	sheet    document.SpriteSheet
	hasSheet bool
}

func NewEngine() *Engine {
	return &Engine{
		grid:  NewGrid(),
		undos: NewHistory(DefaultHistoryCapacity),
		redos: NewHistory(DefaultHistoryCapacity),
	}
}

// Grid returns the painted cells. Callers must treat it as read-only.
func (e *Engine) Grid() *Grid { return e.grid }

func (e *Engine) UndoLen() int { return e.undos.Len() }

func (e *Engine) RedoLen() int { return e.redos.Len() }

func (e *Engine) SpriteSheet() (document.SpriteSheet, bool) { return e.sheet, e.hasSheet }

// SetSpriteSheet replaces the spritesheet reference. Painted cells are kept
// and the change is not recorded in history. Rows and columns are clamped to
// [1, MaxSlices].
func (e *Engine) SetSpriteSheet(ref document.SpriteSheet) {
	ref.Rows = clampSlices(ref.Rows)
	ref.Columns = clampSlices(ref.Columns)
	e.sheet = ref
	e.hasSheet = true
}

// SetSlicing changes how the current spritesheet is sliced.
func (e *Engine) SetSlicing(rows, columns int) {
	if !e.hasSheet {
		return
	}
	e.sheet.Rows = uint64(min(max(rows, 1), MaxSlices))
	e.sheet.Columns = uint64(min(max(columns, 1), MaxSlices))
}

// BeginStroke starts a drag. Any pending redo timeline is discarded.
func (e *Engine) BeginStroke() {
	e.EndStroke()
	e.redos.Clear()
	e.stroke = newStroke()
}

// Touch paints pos with tile as part of the active stroke. Without an active
// stroke it does nothing.
func (e *Engine) Touch(pos Pos, tile Region) {
	if e.stroke == nil {
		return
	}
	e.stroke.touch(e.grid, pos, tile)
}

// EndStroke commits the active stroke as one undoable edit. It reports whether
// anything was pushed onto the undo stack.
func (e *Engine) EndStroke() bool {
	s := e.stroke
	if s == nil {
		return false
	}
	e.stroke = nil
	if s.diff.Len() == 0 {
		return false
	}
	e.undos.Push(s.diff)
	return true
}

func (e *Engine) StrokeActive() bool { return e.stroke != nil }

// CommitStroke paints cells with tile as a single undoable edit.
func (e *Engine) CommitStroke(tile Region, cells ...Pos) bool {
	e.BeginStroke()
	for _, pos := range cells {
		e.Touch(pos, tile)
	}
	return e.EndStroke()
}

// Undo reverts the most recent edit. It returns false when there is nothing
// to undo.
func (e *Engine) Undo() bool {
	e.EndStroke()
	d, ok := e.undos.Pop()
	if !ok {
		return false
	}
	e.redos.Push(d.applyTo(e.grid))
	return true
}

// Redo reapplies the most recently undone edit.
func (e *Engine) Redo() bool {
	e.EndStroke()
	d, ok := e.redos.Pop()
	if !ok {
		return false
	}
	e.undos.Push(d.applyTo(e.grid))
	return true
}

// Reset clears every cell as one undoable edit and discards the redo
// timeline. On an empty grid nothing is pushed.
func (e *Engine) Reset() bool {
	e.EndStroke()
	e.redos.Clear()
	if e.grid.Len() == 0 {
		return false
	}
	d := NewDiff(e.grid.Len())
	for pos, r := range e.grid.All() {
		d.Record(pos, Some(r))
	}
	e.grid.Clear()
	e.undos.Push(d)
	return true
}

// Save snapshots the grid and spritesheet reference.
func (e *Engine) Save() (document.Document, error) {
	if !e.hasSheet {
		return document.Document{}, ErrNoSpriteSheet
	}
	doc := document.Document{
		SpriteSheet: e.sheet,
		Tiles:       make([]document.TileEntry, 0, e.grid.Len()),
	}
	for pos, r := range e.grid.All() {
		doc.Tiles = append(doc.Tiles, document.TileEntry{
			X:    pos.X,
			Y:    pos.Y,
			UMin: r.UMin,
			VMin: r.VMin,
			UMax: r.UMax,
			VMax: r.VMax,
		})
	}
	return doc, nil
}

// Load replaces the grid and spritesheet reference with doc and clears both
// history stacks. A document that repeats a cell is rejected and leaves the
// engine untouched.
func (e *Engine) Load(doc document.Document) error {
	grid := NewGrid()
	for _, t := range doc.Tiles {
		pos := Pos{X: t.X, Y: t.Y}
		if _, dup := grid.Get(pos); dup {
			return fmt.Errorf("%w: cell (%d, %d) appears twice", document.ErrDecode, pos.X, pos.Y)
		}
		grid.Set(pos, Region{UMin: t.UMin, VMin: t.VMin, UMax: t.UMax, VMax: t.VMax})
	}

	e.stroke = nil
	e.grid = grid
	e.SetSpriteSheet(doc.SpriteSheet)
	e.undos.Clear()
	e.redos.Clear()
	return nil
}
