// Package spritesheet turns a source image into selectable tile regions.
package spritesheet

import (
	"image"
	"math"

	"github.com/milk9111/tilepaint/tilemap"
)

// Slice splits the unit square into rows × columns equal regions, listed row
// by row. Columns split u and rows split v. Counts are clamped to
// [1, tilemap.MaxSlices].
func Slice(rows, columns int) []tilemap.Region {
	rows = min(max(rows, 1), tilemap.MaxSlices)
	columns = min(max(columns, 1), tilemap.MaxSlices)

	c := float32(columns)
	r := float32(rows)
	regions := make([]tilemap.Region, 0, rows*columns)
	for row := 0; row < rows; row++ {
		for col := 0; col < columns; col++ {
			regions = append(regions, tilemap.Region{
				UMin: float32(col) / c,
				VMin: float32(row) / r,
				UMax: float32(col+1) / c,
				VMax: float32(row+1) / r,
			})
		}
	}
	return regions
}

// SubRect returns the pixel rectangle of r inside bounds.
func SubRect(bounds image.Rectangle, r tilemap.Region) image.Rectangle {
	w := float64(bounds.Dx())
	h := float64(bounds.Dy())
	x0 := bounds.Min.X + int(math.Round(float64(r.UMin)*w))
	y0 := bounds.Min.Y + int(math.Round(float64(r.VMin)*h))
	x1 := bounds.Min.X + int(math.Round(float64(r.UMax)*w))
	y1 := bounds.Min.Y + int(math.Round(float64(r.VMax)*h))
	return image.Rect(x0, y0, x1, y1).Intersect(bounds)
}
