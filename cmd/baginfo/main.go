// Command baginfo prints the contents of a saved tile document.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"text/tabwriter"

	"github.com/milk9111/tilepaint/document"
)

func main() {
	verbose := flag.Bool("v", false, "List every tile")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: baginfo [-v] file.bag...\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	failed := false
	for _, path := range flag.Args() {
		doc, err := document.ReadFile(path)
		if err != nil {
			log.Printf("%v", err)
			failed = true
			continue
		}
		printDocument(os.Stdout, path, doc, *verbose)
	}
	if failed {
		os.Exit(1)
	}
}

type summary struct {
	Tiles    int
	Distinct int
	MinX     int32
	MinY     int32
	MaxX     int32
	MaxY     int32
}

func summarize(doc document.Document) summary {
	s := summary{Tiles: len(doc.Tiles)}
	type region struct{ u0, v0, u1, v1 float32 }
	seen := make(map[region]struct{})
	for i, t := range doc.Tiles {
		seen[region{t.UMin, t.VMin, t.UMax, t.VMax}] = struct{}{}
		if i == 0 {
			s.MinX, s.MaxX, s.MinY, s.MaxY = t.X, t.X, t.Y, t.Y
			continue
		}
		s.MinX = min(s.MinX, t.X)
		s.MaxX = max(s.MaxX, t.X)
		s.MinY = min(s.MinY, t.Y)
		s.MaxY = max(s.MaxY, t.Y)
	}
	s.Distinct = len(seen)
	return s
}

func printDocument(w io.Writer, path string, doc document.Document, verbose bool) {
	s := summarize(doc)
	fmt.Fprintf(w, "%s\n", path)
	fmt.Fprintf(w, "  spritesheet: %s\n", doc.SpriteSheet.Path)
	fmt.Fprintf(w, "  slicing:     %d rows x %d columns\n", doc.SpriteSheet.Rows, doc.SpriteSheet.Columns)
	fmt.Fprintf(w, "  tiles:       %d (%d distinct)\n", s.Tiles, s.Distinct)
	if s.Tiles > 0 {
		fmt.Fprintf(w, "  bounds:      (%d, %d) .. (%d, %d)\n", s.MinX, s.MinY, s.MaxX, s.MaxY)
	}
	if !verbose || s.Tiles == 0 {
		return
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "  x\ty\tu_min\tv_min\tu_max\tv_max")
	for _, t := range doc.Tiles {
		fmt.Fprintf(tw, "  %d\t%d\t%.4g\t%.4g\t%.4g\t%.4g\n", t.X, t.Y, t.UMin, t.VMin, t.UMax, t.VMax)
	}
	tw.Flush()
}
