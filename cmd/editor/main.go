package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/tilepaint/config"
	"github.com/milk9111/tilepaint/session"
)

func main() {
	configPath := flag.String("config", "tilepaint.yaml", "Path to the editor settings file")
	sheetPath := flag.String("sheet", "", "Spritesheet image to open")
	docPath := flag.String("doc", "", "Document (.bag) to load at startup")
	flag.Parse()

	log.Println("Editor starting...")
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Printf("Using default settings: %v", err)
	}

	sess := session.New(cfg, newDialog())
	openStartup(sess, *docPath, *sheetPath)

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	game := NewGame(cfg, sess)
	defer game.Close()
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}

// openStartup applies the -doc and -sheet flags. A loaded document brings its
// own spritesheet and slicing, so sheetPath only applies when no document was
// loaded.
func openStartup(sess *session.Session, docPath, sheetPath string) {
	if docPath != "" {
		err := sess.LoadFrom(docPath)
		if err == nil {
			if sheetPath != "" {
				log.Printf("Ignoring -sheet %s: document %s has its own spritesheet", sheetPath, docPath)
			}
			return
		}
		log.Printf("Failed to load document %s: %v", docPath, err)
	}
	if sheetPath != "" {
		sess.UseSpriteSheet(sheetPath)
	}
}
