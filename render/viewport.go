package render

import (
	"math"

	"github.com/lixenwraith/gravity-ship/parameter"
	"github.com/lixenwraith/gravity-ship/vmath"
)

// Viewport maps camera-relative world coordinates to terminal cells
// Screen center is the camera; +Y is down on both sides
type Viewport struct {
	Width, Height int
}

// Project returns the cell for a camera-relative world offset
func (v Viewport) Project(rel vmath.Vec2F) (int, int) {
	x := v.Width/2 + int(math.Round(rel.X/parameter.CellWorldWidth))
	y := v.Height/2 + int(math.Round(rel.Y/parameter.CellWorldHeight))
	return x, y
}

// Unproject returns the camera-relative world offset of a cell center
func (v Viewport) Unproject(x, y int) vmath.Vec2F {
	return vmath.Vec2F{
		X: float64(x-v.Width/2) * parameter.CellWorldWidth,
		Y: float64(y-v.Height/2) * parameter.CellWorldHeight,
	}
}

// InBounds reports whether the cell is on screen
func (v Viewport) InBounds(x, y int) bool {
	return x >= 0 && x < v.Width && y >= 0 && y < v.Height
}

// Minimap returns the minimap box anchored to the bottom-right corner
func (v Viewport) Minimap() Region {
	w := int(float64(v.Width) * parameter.MinimapFraction)
	h := int(float64(v.Height) * parameter.MinimapFraction)
	return Region{Name: "minimap", X: v.Width - w - 1, Y: v.Height - h - 1, W: w, H: h}
}

// MinimapCell returns the minimap cell for a world offset from the ship
func (v Viewport) MinimapCell(box Region, offset vmath.Vec2F) (int, int) {
	cx := box.X + box.W/2
	cy := box.Y + box.H/2
	x := cx + int(math.Round(offset.X*parameter.MinimapScale/parameter.CellWorldWidth))
	y := cy + int(math.Round(offset.Y*parameter.MinimapScale/parameter.CellWorldHeight))
	return x, y
}
