package main

import (
	"fmt"

	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/colornames"
)

const (
	previewTileSize = 32
	previewStep     = 0.1
)

// TilePanel shows the slicing controls and one button per tile of the
// current spritesheet.
type TilePanel struct {
	Container *widget.Container

	rowsLabel    *widget.Label
	columnsLabel *widget.Label
	previewLabel *widget.Label

	grid     *widget.Container
	cells    []*widget.Container
	selected int
}

func buildTilePanel(theme *widget.Theme, fontFace *text.Face, g *Game) *TilePanel {
	p := &TilePanel{selected: -1}

	p.Container = widget.NewContainer(
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(400, 120),
		),
		widget.ContainerOpts.BackgroundImage(solidNineSlice(panelColor)),
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionVertical),
				widget.RowLayoutOpts.Spacing(8),
			),
		),
	)

	controls := widget.NewContainer(
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
				widget.RowLayoutOpts.Spacing(6),
			),
		),
	)
	p.Container.AddChild(controls)

	newLabel := func(s string) *widget.Label {
		l := widget.NewLabel(widget.LabelOpts.Text(s, fontFace, labelTextColor))
		controls.AddChild(l)
		return l
	}
	newStep := func(s string, onClick func()) {
		controls.AddChild(widget.NewButton(
			widget.ButtonOpts.Image(theme.ButtonTheme.Image),
			widget.ButtonOpts.Text(s, fontFace, buttonTextColor),
			widget.ButtonOpts.WidgetOpts(
				widget.WidgetOpts.MinSize(28, 28),
			),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				onClick()
			}),
		))
	}
	slice := func(dr, dc int) func() {
		return func() {
			ref, ok := g.sess.Engine.SpriteSheet()
			if !ok {
				return
			}
			g.sess.SetSlicing(int(ref.Rows)+dr, int(ref.Columns)+dc)
		}
	}

	p.rowsLabel = newLabel("Rows: -")
	newStep("-", slice(-1, 0))
	newStep("+", slice(1, 0))
	p.columnsLabel = newLabel("Columns: -")
	newStep("-", slice(0, -1))
	newStep("+", slice(0, 1))
	p.previewLabel = newLabel(previewText(g.previewScale))
	newStep("-", func() { g.setPreviewScale(g.previewScale - previewStep) })
	newStep("+", func() { g.setPreviewScale(g.previewScale + previewStep) })

	return p
}

func previewText(scale float64) string {
	return fmt.Sprintf("Preview: %.1fx", scale)
}

// Rebuild regenerates the tile buttons from the game's current slicing and
// texture.
func (p *TilePanel) Rebuild(g *Game) {
	p.previewLabel.Label = previewText(g.previewScale)
	if g.sheet.Rows > 0 {
		p.rowsLabel.Label = fmt.Sprintf("Rows: %d", g.sheet.Rows)
		p.columnsLabel.Label = fmt.Sprintf("Columns: %d", g.sheet.Columns)
	}

	if p.grid != nil {
		p.Container.RemoveChild(p.grid)
	}
	p.cells = p.cells[:0]
	p.selected = -1

	columns := max(int(g.sheet.Columns), 1)
	p.grid = widget.NewContainer(
		widget.ContainerOpts.Layout(
			widget.NewGridLayout(
				widget.GridLayoutOpts.Columns(columns),
				widget.GridLayoutOpts.Spacing(2, 2),
			),
		),
	)

	size := max(int(previewTileSize*g.previewScale), 1)
	for i, r := range g.tiles {
		img := previewImage(g.tileImage(r), size)
		idx := i
		cell := widget.NewContainer(
			widget.ContainerOpts.BackgroundImage(solidNineSlice(panelColor)),
			widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
			widget.ContainerOpts.WidgetOpts(
				widget.WidgetOpts.MinSize(size+4, size+4),
			),
		)
		cell.AddChild(widget.NewGraphic(
			widget.GraphicOpts.Image(img),
			widget.GraphicOpts.WidgetOpts(
				widget.WidgetOpts.MinSize(size, size),
				widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
					HorizontalPosition: widget.AnchorLayoutPositionCenter,
					VerticalPosition:   widget.AnchorLayoutPositionCenter,
				}),
				widget.WidgetOpts.MouseButtonClickedHandler(func(args *widget.WidgetMouseButtonClickedEventArgs) {
					g.selectTile(idx)
				}),
			),
		))
		p.cells = append(p.cells, cell)
		p.grid.AddChild(cell)
	}
	p.Container.AddChild(p.grid)
	p.Container.RequestRelayout()
}

// SetSelected highlights the tile at index; -1 clears the highlight.
func (p *TilePanel) SetSelected(index int) {
	if p == nil || index == p.selected {
		return
	}
	if p.selected >= 0 && p.selected < len(p.cells) {
		p.cells[p.selected].SetBackgroundImage(solidNineSlice(panelColor))
	}
	p.selected = index
	if index >= 0 && index < len(p.cells) {
		p.cells[index].SetBackgroundImage(solidNineSlice(selectedColor))
	}
}

// previewImage scales src to a size × size square. Without a texture the tile
// is drawn as a flat placeholder.
func previewImage(src *ebiten.Image, size int) *ebiten.Image {
	dst := ebiten.NewImage(size, size)
	if src == nil {
		dst.Fill(colornames.Magenta)
		return dst
	}
	b := src.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(size)/float64(b.Dx()), float64(size)/float64(b.Dy()))
	op.Filter = ebiten.FilterNearest
	dst.DrawImage(src, op)
	return dst
}
