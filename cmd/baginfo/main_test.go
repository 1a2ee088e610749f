package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/milk9111/tilepaint/document"
)

func testDocument() document.Document {
	return document.Document{
		SpriteSheet: document.SpriteSheet{Path: "art/tiles.png", Rows: 2, Columns: 2},
		Tiles: []document.TileEntry{
			{X: 0, Y: 0, UMax: 0.5, VMax: 0.5},
			{X: -3, Y: 2, UMax: 0.5, VMax: 0.5},
			{X: 4, Y: -1, UMin: 0.5, VMin: 0.5, UMax: 1, VMax: 1},
		},
	}
}

func TestSummarize(t *testing.T) {
	cases := []struct {
		name string
		doc  document.Document
		want summary
	}{
		{"empty", document.Document{}, summary{}},
		{"sample", testDocument(), summary{Tiles: 3, Distinct: 2, MinX: -3, MinY: -1, MaxX: 4, MaxY: 2}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if diff := cmp.Diff(c.want, summarize(c.doc)); diff != "" {
				t.Fatalf("summary mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPrintDocument(t *testing.T) {
	var buf bytes.Buffer
	printDocument(&buf, "level.bag", testDocument(), true)
	out := buf.String()

	for _, want := range []string{
		"level.bag",
		"spritesheet: art/tiles.png",
		"2 rows x 2 columns",
		"tiles:       3 (2 distinct)",
		"bounds:      (-3, -1) .. (4, 2)",
		"u_min",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
	if lines := strings.Count(out, "\n"); lines != 5+1+3 {
		t.Fatalf("got %d lines:\n%s", lines, out)
	}
}
