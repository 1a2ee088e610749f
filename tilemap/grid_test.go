package tilemap

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

type cell struct {
	Pos    Pos
	Region Region
}

func snapshot(g *Grid) []cell {
	out := make([]cell, 0, g.Len())
	for pos, r := range g.All() {
		out = append(out, cell{Pos: pos, Region: r})
	}
	return out
}

var (
	regionA = Region{UMin: 0, VMin: 0, UMax: 0.5, VMax: 0.5}
	regionB = Region{UMin: 0.5, VMin: 0, UMax: 1, VMax: 0.5}
	regionC = Region{UMin: 0, VMin: 0.5, UMax: 0.5, VMax: 1}
)

func TestGridSetGetRemove(t *testing.T) {
	g := NewGrid()

	if prev := g.Set(Pos{0, 0}, regionA); !prev.IsEmpty() {
		t.Fatalf("first Set should report Empty, got %+v", prev)
	}
	prev := g.Set(Pos{0, 0}, regionB)
	if r, ok := prev.Region(); !ok || r != regionA {
		t.Fatalf("overwrite should report previous region A, got %+v", prev)
	}
	if r, ok := g.Get(Pos{0, 0}); !ok || r != regionB {
		t.Fatalf("Get after overwrite = %+v, %v", r, ok)
	}

	if prev := g.Remove(Pos{5, 5}); !prev.IsEmpty() {
		t.Fatalf("removing absent key should report Empty")
	}
	if g.Len() != 1 {
		t.Fatalf("expected 1 entry, got %d", g.Len())
	}

	prev = g.Remove(Pos{0, 0})
	if r, ok := prev.Region(); !ok || r != regionB {
		t.Fatalf("Remove should report region B, got %+v", prev)
	}
	if _, ok := g.Get(Pos{0, 0}); ok {
		t.Fatalf("cell should be gone after Remove")
	}
}

func TestGridInsertionOrder(t *testing.T) {
	cases := []struct {
		name string
		ops  func(g *Grid)
		want []cell
	}{
		{
			name: "append_order",
			ops: func(g *Grid) {
				g.Set(Pos{2, 0}, regionA)
				g.Set(Pos{0, 0}, regionB)
				g.Set(Pos{1, 0}, regionC)
			},
			want: []cell{{Pos{2, 0}, regionA}, {Pos{0, 0}, regionB}, {Pos{1, 0}, regionC}},
		},
		{
			name: "overwrite_keeps_slot",
			ops: func(g *Grid) {
				g.Set(Pos{0, 0}, regionA)
				g.Set(Pos{1, 0}, regionB)
				g.Set(Pos{0, 0}, regionC)
			},
			want: []cell{{Pos{0, 0}, regionC}, {Pos{1, 0}, regionB}},
		},
		{
			name: "remove_middle_keeps_rest",
			ops: func(g *Grid) {
				g.Set(Pos{0, 0}, regionA)
				g.Set(Pos{1, 0}, regionB)
				g.Set(Pos{2, 0}, regionC)
				g.Remove(Pos{1, 0})
				g.Set(Pos{3, 0}, regionB)
			},
			want: []cell{{Pos{0, 0}, regionA}, {Pos{2, 0}, regionC}, {Pos{3, 0}, regionB}},
		},
		{
			name: "apply_empty_removes",
			ops: func(g *Grid) {
				g.Set(Pos{0, 0}, regionA)
				g.Apply(Pos{0, 0}, Empty)
				g.Apply(Pos{-1, -1}, Some(regionB))
			},
			want: []cell{{Pos{-1, -1}, regionB}},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			g := NewGrid()
			c.ops(g)
			if diff := cmp.Diff(c.want, snapshot(g)); diff != "" {
				t.Fatalf("grid mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestZeroRegionIsATile(t *testing.T) {
	g := NewGrid()
	g.Set(Pos{0, 0}, Region{})
	r, ok := g.Get(Pos{0, 0})
	if !ok || r != (Region{}) {
		t.Fatalf("zero region must be stored as a real tile")
	}
	if Some(Region{}).IsEmpty() {
		t.Fatalf("Some(Region{}) must not be empty")
	}
}
