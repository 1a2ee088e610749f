package main

import (
	"bytes"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// BuildEditorUI lays out the toolbar along the top edge and the tile panel
// along the bottom edge. Everything else is canvas.
func BuildEditorUI(g *Game) (*ebitenui.UI, *Toolbar, *TilePanel) {
	ui := &ebitenui.UI{}

	s, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic("Failed to load font: " + err.Error())
	}

	var fontFace text.Face = &text.GoTextFace{Source: s, Size: 14}
	ui.PrimaryTheme = newEditorTheme(&fontFace)

	toolbarContainer, toolbar := buildToolbar(ui.PrimaryTheme, &fontFace, g)
	tilePanel := buildTilePanel(ui.PrimaryTheme, &fontFace, g)

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	toolbarContainer.GetWidget().LayoutData = widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionCenter,
		VerticalPosition:   widget.AnchorLayoutPositionStart,
	}
	tilePanel.Container.GetWidget().LayoutData = widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionCenter,
		VerticalPosition:   widget.AnchorLayoutPositionEnd,
		StretchHorizontal:  true,
	}
	root.AddChild(toolbarContainer)
	root.AddChild(tilePanel.Container)

	ui.Container = root
	return ui, toolbar, tilePanel
}
