package tilemap

// Stroke accumulates one drag gesture. It remembers the pre-stroke value of
// every cell it paints so the whole gesture can be undone as one edit.
type Stroke struct {
	diff *Diff
}

func newStroke() *Stroke {
	return &Stroke{diff: NewDiff(8)}
}

// touch paints pos with tile. A cell already painted by this stroke is left
// alone so the diff keeps its pre-stroke value.
func (s *Stroke) touch(g *Grid, pos Pos, tile Region) {
	if s.diff.Has(pos) {
		return
	}
	s.diff.Record(pos, g.Set(pos, tile))
}
