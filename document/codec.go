package document

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"
)

// ErrDecode reports a payload that is truncated or does not match the
// document layout.
var ErrDecode = errors.New("document: malformed payload")

// tileEntrySize is the encoded size of one TileEntry.
const tileEntrySize = 6 * 4

// Encode serializes doc.
func Encode(doc Document) ([]byte, error) {
	if !utf8.ValidString(doc.SpriteSheet.Path) {
		return nil, fmt.Errorf("document: sprite sheet path is not valid UTF-8")
	}

	var buf bytes.Buffer
	buf.Grow(8 + len(doc.SpriteSheet.Path) + 16 + 8 + len(doc.Tiles)*tileEntrySize)

	fields := []any{
		uint64(len(doc.SpriteSheet.Path)),
		[]byte(doc.SpriteSheet.Path),
		doc.SpriteSheet.Rows,
		doc.SpriteSheet.Columns,
		uint64(len(doc.Tiles)),
	}
	for _, f := range fields {
		if err := binary.Write(&buf, binary.LittleEndian, f); err != nil {
			return nil, err
		}
	}
	for i := range doc.Tiles {
		if err := binary.Write(&buf, binary.LittleEndian, &doc.Tiles[i]); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}

// Decode parses a document. It either returns a complete document or an error
// wrapping ErrDecode, never a partial result.
func Decode(data []byte) (Document, error) {
	r := bytes.NewReader(data)

	var doc Document
	path, err := readString(r)
	if err != nil {
		return Document{}, fmt.Errorf("%w: sprite sheet path: %w", ErrDecode, err)
	}
	doc.SpriteSheet.Path = path

	if err := binary.Read(r, binary.LittleEndian, &doc.SpriteSheet.Rows); err != nil {
		return Document{}, fmt.Errorf("%w: sprite sheet rows: %w", ErrDecode, err)
	}
	if err := binary.Read(r, binary.LittleEndian, &doc.SpriteSheet.Columns); err != nil {
		return Document{}, fmt.Errorf("%w: sprite sheet columns: %w", ErrDecode, err)
	}

	var count uint64
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return Document{}, fmt.Errorf("%w: tile count: %w", ErrDecode, err)
	}
	if count > uint64(r.Len())/tileEntrySize {
		return Document{}, fmt.Errorf("%w: %d tiles declared, %d bytes left", ErrDecode, count, r.Len())
	}

	doc.Tiles = make([]TileEntry, count)
	if err := binary.Read(r, binary.LittleEndian, doc.Tiles); err != nil {
		return Document{}, fmt.Errorf("%w: tiles: %w", ErrDecode, err)
	}

	if r.Len() != 0 {
		return Document{}, fmt.Errorf("%w: %d trailing bytes", ErrDecode, r.Len())
	}
	return doc, nil
}

func readString(r *bytes.Reader) (string, error) {
	var n uint64
	if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
		return "", err
	}
	if n > uint64(r.Len()) {
		return "", fmt.Errorf("length %d exceeds %d remaining bytes", n, r.Len())
	}
	b := make([]byte, n)
	if _, err := io.ReadFull(r, b); err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", errors.New("invalid UTF-8")
	}
	return string(b), nil
}
