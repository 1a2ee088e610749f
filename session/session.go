// Package session holds the editor state owned by the host: the edit engine,
// the selected tile and the file dialog used by toolbar actions.
package session

import (
	"errors"
	"fmt"
	"log"
	"path/filepath"

	"github.com/milk9111/tilepaint/config"
	"github.com/milk9111/tilepaint/document"
	"github.com/milk9111/tilepaint/tilemap"
)

// ErrDialogCancelled is returned by a Dialog when the user dismisses it.
var ErrDialogCancelled = errors.New("session: dialog cancelled")

// Dialog asks the user for file paths.
type Dialog interface {
	PickSpriteSheet() (string, error)
	PickSaveTarget(def string) (string, error)
	PickDocument() (string, error)
}

// Selection is the tile chosen in the tile panel.
type Selection struct {
	Index  int
	Region tilemap.Region
}

type Session struct {
	Engine   *tilemap.Engine
	Selected *Selection
	Dialog   Dialog

	cfg config.Config
}

func New(cfg config.Config, d Dialog) *Session {
	return &Session{
		Engine: tilemap.NewEngine(),
		Dialog: d,
		cfg:    cfg,
	}
}

func (s *Session) Select(index int, r tilemap.Region) {
	s.Selected = &Selection{Index: index, Region: r}
}

func (s *Session) Deselect() { s.Selected = nil }

// SpriteSheetPath returns the current spritesheet path, or "" when none is set.
func (s *Session) SpriteSheetPath() string {
	ref, ok := s.Engine.SpriteSheet()
	if !ok {
		return ""
	}
	return ref.Path
}

// NewSpriteSheet asks for a spritesheet and makes it the current reference,
// sliced as a single tile.
func (s *Session) NewSpriteSheet() error {
	path, err := s.pick(Dialog.PickSpriteSheet)
	if err != nil {
		return err
	}
	s.UseSpriteSheet(path)
	return nil
}

// UseSpriteSheet sets path as the spritesheet reference without a dialog.
// The current selection no longer refers to a valid tile and is dropped.
func (s *Session) UseSpriteSheet(path string) {
	s.Engine.SetSpriteSheet(document.SpriteSheet{Path: path, Rows: 1, Columns: 1})
	s.Deselect()
	log.Printf("Spritesheet: %s", path)
}

// SetSlicing changes the rows and columns of the current spritesheet.
func (s *Session) SetSlicing(rows, columns int) {
	s.Engine.SetSlicing(rows, columns)
	s.Deselect()
}

// DefaultSaveTarget is the file next to the spritesheet named by save_name.
func (s *Session) DefaultSaveTarget() string {
	path := s.SpriteSheetPath()
	if path == "" {
		return s.cfg.SaveName
	}
	return document.DefaultPath(path, s.cfg.SaveName)
}

// Save asks where to write the document and writes it. Without a spritesheet
// it fails before showing any dialog. A target without an extension gets
// document.Ext.
func (s *Session) Save() error {
	if _, ok := s.Engine.SpriteSheet(); !ok {
		return tilemap.ErrNoSpriteSheet
	}
	def := s.DefaultSaveTarget()
	path, err := s.pick(func(d Dialog) (string, error) { return d.PickSaveTarget(def) })
	if err != nil {
		return err
	}
	if filepath.Ext(path) == "" {
		path += document.Ext
	}
	return s.SaveTo(path)
}

func (s *Session) SaveTo(path string) error {
	doc, err := s.Engine.Save()
	if err != nil {
		return err
	}
	if err := document.WriteFile(path, doc); err != nil {
		return err
	}
	log.Printf("Saved document: %s (%d tiles)", path, len(doc.Tiles))
	return nil
}

// Load asks for a document and replaces the editor state with it. On failure
// the state is unchanged.
func (s *Session) Load() error {
	path, err := s.pick(Dialog.PickDocument)
	if err != nil {
		return err
	}
	return s.LoadFrom(path)
}

func (s *Session) LoadFrom(path string) error {
	doc, err := document.ReadFile(path)
	if err != nil {
		return err
	}
	if err := s.Engine.Load(doc); err != nil {
		return fmt.Errorf("session: load %s: %w", path, err)
	}
	s.Deselect()
	if ref, _ := s.Engine.SpriteSheet(); ref.Rows != doc.SpriteSheet.Rows || ref.Columns != doc.SpriteSheet.Columns {
		log.Printf("Slicing %dx%d in %s clamped to %dx%d", doc.SpriteSheet.Rows, doc.SpriteSheet.Columns, path, ref.Rows, ref.Columns)
	}
	log.Printf("Loaded document: %s (%d tiles)", path, len(doc.Tiles))
	return nil
}

func (s *Session) Reset() bool { return s.Engine.Reset() }

func (s *Session) Undo() bool { return s.Engine.Undo() }

func (s *Session) Redo() bool { return s.Engine.Redo() }

func (s *Session) pick(fn func(Dialog) (string, error)) (string, error) {
	if s.Dialog == nil {
		return "", ErrDialogCancelled
	}
	path, err := fn(s.Dialog)
	if err != nil {
		return "", err
	}
	if path == "" {
		return "", ErrDialogCancelled
	}
	return path, nil
}
