package tilemap

import "iter"

// Pos is a cell coordinate on the unbounded grid.
type Pos struct {
	X int32
	Y int32
}

// Region is a normalized sub-rectangle of the spritesheet.
type Region struct {
	UMin float32
	VMin float32
	UMax float32
	VMax float32
}

// Tile is either a region or empty. The zero value is Empty.
type Tile struct {
	region  Region
	present bool
}

// Empty marks a cell that holds no tile.
var Empty = Tile{}

// Some wraps r as a present tile.
func Some(r Region) Tile { return Tile{region: r, present: true} }

func (t Tile) Region() (Region, bool) { return t.region, t.present }

func (t Tile) IsEmpty() bool { return !t.present }

type gridEntry struct {
	pos    Pos
	region Region
}

// Grid maps cell positions to regions and iterates in insertion order.
type Grid struct {
	entries []gridEntry
	index   map[Pos]int
}

func NewGrid() *Grid {
	return &Grid{index: make(map[Pos]int)}
}

func (g *Grid) Len() int { return len(g.entries) }

func (g *Grid) Get(pos Pos) (Region, bool) {
	i, ok := g.index[pos]
	if !ok {
		return Region{}, false
	}
	return g.entries[i].region, true
}

// Set stores r at pos and returns the previous tile. An existing key keeps its
// place in iteration order.
func (g *Grid) Set(pos Pos, r Region) Tile {
	if i, ok := g.index[pos]; ok {
		prev := g.entries[i].region
		g.entries[i].region = r
		return Some(prev)
	}
	if g.index == nil {
		g.index = make(map[Pos]int)
	}
	g.index[pos] = len(g.entries)
	g.entries = append(g.entries, gridEntry{pos: pos, region: r})
	return Empty
}

// Remove deletes pos and returns what it held. Removing an absent key is a
// no-op that returns Empty.
func (g *Grid) Remove(pos Pos) Tile {
	i, ok := g.index[pos]
	if !ok {
		return Empty
	}
	prev := g.entries[i].region
	delete(g.index, pos)
	copy(g.entries[i:], g.entries[i+1:])
	g.entries = g.entries[:len(g.entries)-1]
	for j := i; j < len(g.entries); j++ {
		g.index[g.entries[j].pos] = j
	}
	return Some(prev)
}

// Apply writes t at pos (Empty removes) and returns the previous tile.
func (g *Grid) Apply(pos Pos, t Tile) Tile {
	if r, ok := t.Region(); ok {
		return g.Set(pos, r)
	}
	return g.Remove(pos)
}

func (g *Grid) Clear() {
	g.entries = g.entries[:0]
	clear(g.index)
}

// All yields every cell in insertion order.
func (g *Grid) All() iter.Seq2[Pos, Region] {
	return func(yield func(Pos, Region) bool) {
		for _, e := range g.entries {
			if !yield(e.pos, e.region) {
				return
			}
		}
	}
}
