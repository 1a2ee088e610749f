package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/milk9111/tilepaint/spritesheet"
	"github.com/milk9111/tilepaint/tilemap"
)

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.cfg.Colors.Background)
	g.drawGrid(screen)
	g.drawTiles(screen)
	g.drawHover(screen)
	g.ui.Draw(screen)
}

// drawGrid draws a line on every cell boundary and the two axes through the
// origin.
func (g *Game) drawGrid(screen *ebiten.Image) {
	lo, hi := g.cam.VisibleCells(g.width, g.height)
	w, h := float32(g.width), float32(g.height)

	for x := lo.X; x <= hi.X+1; x++ {
		sx, _ := g.cam.WorldToScreen(float64(x), 0)
		vector.StrokeLine(screen, float32(sx), 0, float32(sx), h, 1, g.cfg.Colors.Grid, false)
	}
	for y := lo.Y; y <= hi.Y+1; y++ {
		_, sy := g.cam.WorldToScreen(0, float64(y))
		vector.StrokeLine(screen, 0, float32(sy), w, float32(sy), 1, g.cfg.Colors.Grid, false)
	}

	ox, oy := g.cam.WorldToScreen(0, 0)
	vector.StrokeLine(screen, float32(ox), 0, float32(ox), h, 2, g.cfg.Colors.Axis, false)
	vector.StrokeLine(screen, 0, float32(oy), w, float32(oy), 2, g.cfg.Colors.Axis, false)
}

func (g *Game) drawTiles(screen *ebiten.Image) {
	lo, hi := g.cam.VisibleCells(g.width, g.height)
	for pos, r := range g.sess.Engine.Grid().All() {
		if pos.X < lo.X || pos.X > hi.X || pos.Y < lo.Y || pos.Y > hi.Y {
			continue
		}
		g.drawTile(screen, pos, r, 1)
	}
}

// drawHover previews the selected tile under the cursor.
func (g *Game) drawHover(screen *ebiten.Image) {
	in := g.lastInput
	if !in.HoverOK {
		return
	}
	if sel := g.sess.Selected; sel != nil {
		g.drawTile(screen, in.Hover, sel.Region, 0.5)
	}
	x, y, size := g.cam.TileQuad(in.Hover)
	vector.StrokeRect(screen, float32(x), float32(y), float32(size), float32(size), 1, g.cfg.Colors.Hover, false)
}

func (g *Game) drawTile(screen *ebiten.Image, pos tilemap.Pos, r tilemap.Region, alpha float32) {
	x, y, size := g.cam.TileQuad(pos)
	sub := g.tileImage(r)
	if sub == nil {
		c := color.NRGBA(colornames.Magenta)
		c.A = uint8(float32(c.A) * alpha)
		vector.FillRect(screen, float32(x), float32(y), float32(size), float32(size), c, false)
		return
	}

	b := sub.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(size/float64(b.Dx()), size/float64(b.Dy()))
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleAlpha(alpha)
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(sub, op)
}

// tileImage returns the part of the spritesheet covered by r, or nil when
// there is no texture or the region is empty.
func (g *Game) tileImage(r tilemap.Region) *ebiten.Image {
	if g.sheetImg == nil {
		return nil
	}
	rect := spritesheet.SubRect(g.sheetImg.Bounds(), r)
	if rect.Empty() {
		return nil
	}
	return g.sheetImg.SubImage(rect).(*ebiten.Image)
}
