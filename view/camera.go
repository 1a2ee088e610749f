// Package view maps between grid space and screen pixels.
//
// Grid space is y-up with one unit per cell; screen space is y-down pixels
// relative to the canvas origin.
package view

import (
	"math"

	"github.com/milk9111/tilepaint/tilemap"
)

const (
	MinZoom = 0.25
	MaxZoom = 4.0
)

type Camera struct {
	// CellSize is the on-screen size of one cell at zoom 1, in pixels.
	CellSize float64
	Zoom     float64
	// OffsetX/Y is the screen position of the grid origin.
	OffsetX float64
	OffsetY float64
}

// NewCamera centers the grid origin in a w × h canvas.
func NewCamera(cellSize float64, w, h int) *Camera {
	return &Camera{
		CellSize: cellSize,
		Zoom:     1,
		OffsetX:  float64(w) / 2,
		OffsetY:  float64(h) / 2,
	}
}

func (c *Camera) scale() float64 {
	if c.Zoom == 0 {
		c.Zoom = 1
	}
	return c.CellSize * c.Zoom
}

func (c *Camera) ScreenToWorld(sx, sy float64) (float64, float64) {
	s := c.scale()
	return (sx - c.OffsetX) / s, (c.OffsetY - sy) / s
}

func (c *Camera) WorldToScreen(wx, wy float64) (float64, float64) {
	s := c.scale()
	return c.OffsetX + wx*s, c.OffsetY - wy*s
}

// CellAt returns the cell under a screen point.
func (c *Camera) CellAt(sx, sy float64) tilemap.Pos {
	wx, wy := c.ScreenToWorld(sx, sy)
	return tilemap.Pos{X: int32(math.Floor(wx)), Y: int32(math.Floor(wy))}
}

func (c *Camera) Pan(dx, dy float64) {
	c.OffsetX += dx
	c.OffsetY += dy
}

// ZoomAt multiplies the zoom by factor while keeping the grid point under
// (sx, sy) fixed on screen.
func (c *Camera) ZoomAt(sx, sy, factor float64) {
	wx, wy := c.ScreenToWorld(sx, sy)
	c.Zoom = min(max(c.Zoom*factor, MinZoom), MaxZoom)
	s := c.scale()
	c.OffsetX = sx - wx*s
	c.OffsetY = sy + wy*s
}

// TileQuad returns the screen rectangle of the unit quad centered at
// (pos.X+0.5, pos.Y+0.5): top-left corner and side length.
func (c *Camera) TileQuad(pos tilemap.Pos) (x, y, size float64) {
	x, y = c.WorldToScreen(float64(pos.X), float64(pos.Y)+1)
	return x, y, c.scale()
}

// VisibleCells returns the inclusive range of cells that intersect a w × h
// canvas.
func (c *Camera) VisibleCells(w, h int) (lo, hi tilemap.Pos) {
	x0, y1 := c.ScreenToWorld(0, 0)
	x1, y0 := c.ScreenToWorld(float64(w), float64(h))
	lo = tilemap.Pos{X: int32(math.Floor(x0)), Y: int32(math.Floor(y0))}
	hi = tilemap.Pos{X: int32(math.Floor(x1)), Y: int32(math.Floor(y1))}
	return lo, hi
}
