package main

import (
	"errors"
	"log"
	"path/filepath"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/tilepaint/config"
	"github.com/milk9111/tilepaint/document"
	"github.com/milk9111/tilepaint/session"
	"github.com/milk9111/tilepaint/spritesheet"
	"github.com/milk9111/tilepaint/tilemap"
	"github.com/milk9111/tilepaint/view"
)

// Game is the ebiten host around a session.
type Game struct {
	cfg  config.Config
	sess *session.Session
	cam  *view.Camera

	ui        *ebitenui.UI
	toolbar   *Toolbar
	tilePanel *TilePanel

	// sheet is the reference the texture and tile panel were built for.
	sheet    document.SpriteSheet
	sheetImg *ebiten.Image
	tiles    []tilemap.Region
	watcher  *spritesheet.Watcher

	previewScale float64
	lastInput    session.Input

	isPanning bool
	lastPanX  int
	lastPanY  int

	width  int
	height int
}

func NewGame(cfg config.Config, sess *session.Session) *Game {
	g := &Game{
		cfg:          cfg,
		sess:         sess,
		cam:          view.NewCamera(cfg.CellSize, cfg.Window.Width, cfg.Window.Height),
		previewScale: cfg.PreviewScale,
		width:        cfg.Window.Width,
		height:       cfg.Window.Height,
	}
	g.ui, g.toolbar, g.tilePanel = BuildEditorUI(g)
	return g
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
		g.watcher = nil
	}
}

func (g *Game) Update() error {
	g.ui.Update()
	g.pollWatcher()
	g.syncSpriteSheet()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.sess.Deselect()
	}

	g.updateCamera()
	in := g.readInput()
	logAction("Save", g.sess.Step(in))
	g.lastInput = in

	g.toolbar.Refresh(g.sess)
	g.tilePanel.SetSelected(g.selectedIndex())
	return nil
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width, g.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// syncSpriteSheet rebuilds the texture and tile panel when the session's
// spritesheet reference or slicing changed.
func (g *Game) syncSpriteSheet() {
	ref, ok := g.sess.Engine.SpriteSheet()
	if !ok || ref == g.sheet {
		return
	}
	if ref.Path != g.sheet.Path {
		g.loadTexture(ref.Path)
		g.watch(ref.Path)
	}
	g.sheet = ref
	g.tiles = spritesheet.Slice(int(ref.Rows), int(ref.Columns))
	g.tilePanel.Rebuild(g)
}

func (g *Game) loadTexture(path string) {
	img, err := spritesheet.Open(path)
	if err != nil {
		log.Printf("Failed to open spritesheet: %v", err)
		g.sheetImg = nil
		return
	}
	g.sheetImg = ebiten.NewImageFromImage(img)
	log.Printf("Spritesheet loaded: %s (%dx%d)", path, img.Bounds().Dx(), img.Bounds().Dy())
}

func (g *Game) watch(path string) {
	g.Close()
	if !g.cfg.WatchSpriteSheet {
		return
	}
	w, err := spritesheet.WatchFile(path)
	if err != nil {
		log.Printf("Failed to watch spritesheet: %v", err)
		return
	}
	g.watcher = w
}

func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name := <-g.watcher.Events:
			if filepath.Clean(name) != filepath.Clean(g.sheet.Path) {
				continue
			}
			log.Printf("Spritesheet changed on disk: %s", name)
			g.loadTexture(g.sheet.Path)
			g.tilePanel.Rebuild(g)
		case err := <-g.watcher.Errors:
			log.Printf("Watcher error: %v", err)
		default:
			return
		}
	}
}

func (g *Game) selectTile(index int) {
	if index < 0 || index >= len(g.tiles) {
		return
	}
	if g.selectedIndex() == index {
		g.sess.Deselect()
		return
	}
	g.sess.Select(index, g.tiles[index])
}

func (g *Game) selectedIndex() int {
	if g.sess.Selected == nil {
		return -1
	}
	return g.sess.Selected.Index
}

func (g *Game) setPreviewScale(scale float64) {
	g.previewScale = min(max(scale, 0.3), 3)
	g.tilePanel.Rebuild(g)
}

func logAction(name string, err error) {
	switch {
	case err == nil:
	case errors.Is(err, session.ErrDialogCancelled):
		log.Printf("%s cancelled", name)
	default:
		log.Printf("%s failed: %v", name, err)
	}
}
