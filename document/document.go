// Package document reads and writes saved tile maps.
//
// A document is the spritesheet reference plus every painted cell. The binary
// layout is little-endian with 64-bit lengths, so files written by earlier
// versions of the tool decode unchanged:
//
//	sprite sheet: u64 path length, path bytes, u64 rows, u64 columns
//	tiles:        u64 count, then count × (i32 x, i32 y, f32 u_min, f32 v_min, f32 u_max, f32 v_max)
package document

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultFileName is written next to the spritesheet when no other save
// target is chosen.
const DefaultFileName = "saved.bag"

// Ext is the file extension of saved documents.
const Ext = ".bag"

// SpriteSheet describes the source image and how it is sliced into tiles.
type SpriteSheet struct {
	Path    string
	Rows    uint64
	Columns uint64
}

// TileEntry is one painted cell.
type TileEntry struct {
	X    int32
	Y    int32
	UMin float32
	VMin float32
	UMax float32
	VMax float32
}

type Document struct {
	SpriteSheet SpriteSheet
	Tiles       []TileEntry
}

// DefaultPath returns the save target named name next to the spritesheet.
// An empty name means DefaultFileName.
func DefaultPath(sheetPath, name string) string {
	if name == "" {
		name = DefaultFileName
	}
	return filepath.Join(filepath.Dir(sheetPath), name)
}

// WriteFile encodes doc and writes it to path, creating parent directories.
func WriteFile(path string, doc Document) error {
	data, err := Encode(doc)
	if err != nil {
		return fmt.Errorf("document: encode %s: %w", path, err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("document: write %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("document: write %s: %w", path, err)
	}
	return nil
}

// ReadFile reads and decodes the document at path.
func ReadFile(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("document: read %s: %w", path, err)
	}
	doc, err := Decode(data)
	if err != nil {
		return Document{}, fmt.Errorf("document: load %s: %w", path, err)
	}
	return doc, nil
}
