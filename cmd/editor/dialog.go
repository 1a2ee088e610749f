//go:build dialog
// +build dialog

package main

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/sqweek/dialog"

	"github.com/milk9111/tilepaint/document"
	"github.com/milk9111/tilepaint/session"
)

var documentExt = strings.TrimPrefix(document.Ext, ".")

// nativeDialog opens the platform file pickers.
type nativeDialog struct{}

func newDialog() session.Dialog { return nativeDialog{} }

func (nativeDialog) PickSpriteSheet() (string, error) {
	return picked(dialog.File().
		Filter("Image files", "png", "jpg", "jpeg", "gif", "bmp", "webp").
		Title("Select spritesheet").
		Load())
}

func (nativeDialog) PickSaveTarget(def string) (string, error) {
	return picked(dialog.File().
		Filter("Tile documents", documentExt).
		Title("Save document").
		SetStartDir(filepath.Dir(def)).
		SetStartFile(filepath.Base(def)).
		Save())
}

func (nativeDialog) PickDocument() (string, error) {
	return picked(dialog.File().
		Filter("Tile documents", documentExt).
		Title("Load document").
		Load())
}

func picked(path string, err error) (string, error) {
	if errors.Is(err, dialog.ErrCancelled) {
		return "", session.ErrDialogCancelled
	}
	return path, err
}
