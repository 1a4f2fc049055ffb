// Package camera provides a 2D viewport onto the simulation's toroidal
// grid world, translating between grid-cell coordinates and screen
// pixels. Panning and visibility queries account for toroidal wrapping
// so an agent near one edge of the grid is still found near the
// opposite edge of the viewport.
package camera

import "math"

// Camera controls the viewport into the simulation grid. Positions on
// the X/Y axes are grid-cell coordinates (not pixels); CellSize
// converts a cell delta to screen pixels before Zoom is applied.
type Camera struct {
	// X, Y is the camera center, in grid-cell coordinates.
	X, Y float32

	// Zoom level (1.0 = 1:1, 2.0 = 2x magnification).
	Zoom float32

	// ViewportW, ViewportH are the screen viewport dimensions, in pixels.
	ViewportW, ViewportH float32

	// GridW, GridH are the world's grid dimensions, in cells (for
	// toroidal wrapping).
	GridW, GridH float32

	// CellSize is the on-screen size of one grid cell at Zoom == 1.
	CellSize float32

	// Zoom constraints.
	MinZoom, MaxZoom float32
}

// New creates a camera centered on the grid with 1:1 zoom.
func New(viewportW, viewportH int32, gridW, gridH int, cellSize float32) *Camera {
	vw, vh := float32(viewportW), float32(viewportH)
	gw, gh := float32(gridW), float32(gridH)

	// Minimum zoom so the viewport never shows more than the grid
	// itself: at zoom Z the visible grid extent is
	// (viewportW/(Z*cellSize), viewportH/(Z*cellSize)) cells, which
	// must not exceed (gridW, gridH).
	minZoomX := vw / (gw * cellSize)
	minZoomY := vh / (gh * cellSize)
	minZoom := minZoomX
	if minZoomY > minZoom {
		minZoom = minZoomY
	}

	return &Camera{
		X:         gw / 2,
		Y:         gh / 2,
		Zoom:      1.0,
		ViewportW: vw,
		ViewportH: vh,
		GridW:     gw,
		GridH:     gh,
		CellSize:  cellSize,
		MinZoom:   minZoom,
		MaxZoom:   4.0,
	}
}

// WorldToScreen converts a grid-cell coordinate to a screen pixel
// position. For the toroidal grid, this finds the shortest wrap-around
// path to the viewport center.
func (c *Camera) WorldToScreen(cellX, cellY float32) (sx, sy float32) {
	dx := toroidalDelta(cellX, c.X, c.GridW)
	dy := toroidalDelta(cellY, c.Y, c.GridH)

	sx = c.ViewportW/2 + dx*c.CellSize*c.Zoom
	sy = c.ViewportH/2 + dy*c.CellSize*c.Zoom
	return sx, sy
}

// ScreenToWorld converts a screen pixel position back to a grid-cell
// coordinate, wrapped into [0, GridW) x [0, GridH).
func (c *Camera) ScreenToWorld(sx, sy float32) (cellX, cellY float32) {
	dx := (sx - c.ViewportW/2) / (c.CellSize * c.Zoom)
	dy := (sy - c.ViewportH/2) / (c.CellSize * c.Zoom)

	cellX = mod(c.X+dx, c.GridW)
	cellY = mod(c.Y+dy, c.GridH)
	return cellX, cellY
}

// IsVisible reports whether a circle of the given radius (in cells)
// centered at (cellX, cellY) could be visible on screen. A
// conservative check used for render culling.
func (c *Camera) IsVisible(cellX, cellY, radiusCells float32) bool {
	dx := toroidalDelta(cellX, c.X, c.GridW)
	dy := toroidalDelta(cellY, c.Y, c.GridH)

	halfW := c.ViewportW/(2*c.Zoom*c.CellSize) + radiusCells
	halfH := c.ViewportH/(2*c.Zoom*c.CellSize) + radiusCells

	return absf(dx) <= halfW && absf(dy) <= halfH
}

// GhostPositions returns additional screen positions for a cell near
// the grid's edges, so an agent wrapping across the toroidal boundary
// visibly appears on both sides at once. Returns up to 3 additional
// positions (4 total with the primary, for a corner wrap).
func (c *Camera) GhostPositions(cellX, cellY, radiusCells float32) []struct{ X, Y float32 } {
	var ghosts []struct{ X, Y float32 }

	halfW := c.ViewportW / (2 * c.Zoom * c.CellSize)
	halfH := c.ViewportH / (2 * c.Zoom * c.CellSize)

	dx := toroidalDelta(cellX, c.X, c.GridW)
	dy := toroidalDelta(cellY, c.Y, c.GridH)

	needsHorizontalGhost := false
	var hGhostX float32
	if dx > halfW-radiusCells && dx < halfW+radiusCells {
		needsHorizontalGhost = true
		hGhostX = c.ViewportW/2 + (dx-c.GridW)*c.CellSize*c.Zoom
	} else if dx < -halfW+radiusCells && dx > -halfW-radiusCells {
		needsHorizontalGhost = true
		hGhostX = c.ViewportW/2 + (dx+c.GridW)*c.CellSize*c.Zoom
	}

	needsVerticalGhost := false
	var vGhostY float32
	if dy > halfH-radiusCells && dy < halfH+radiusCells {
		needsVerticalGhost = true
		vGhostY = c.ViewportH/2 + (dy-c.GridH)*c.CellSize*c.Zoom
	} else if dy < -halfH+radiusCells && dy > -halfH-radiusCells {
		needsVerticalGhost = true
		vGhostY = c.ViewportH/2 + (dy+c.GridH)*c.CellSize*c.Zoom
	}

	sx := c.ViewportW/2 + dx*c.CellSize*c.Zoom
	sy := c.ViewportH/2 + dy*c.CellSize*c.Zoom

	if needsHorizontalGhost {
		ghosts = append(ghosts, struct{ X, Y float32 }{hGhostX, sy})
	}
	if needsVerticalGhost {
		ghosts = append(ghosts, struct{ X, Y float32 }{sx, vGhostY})
	}
	if needsHorizontalGhost && needsVerticalGhost {
		ghosts = append(ghosts, struct{ X, Y float32 }{hGhostX, vGhostY})
	}

	return ghosts
}

// Resize updates viewport dimensions and recalculates zoom constraints.
func (c *Camera) Resize(viewportW, viewportH float32) {
	if viewportW == c.ViewportW && viewportH == c.ViewportH {
		return
	}
	c.ViewportW = viewportW
	c.ViewportH = viewportH
	minZoomX := viewportW / (c.GridW * c.CellSize)
	minZoomY := viewportH / (c.GridH * c.CellSize)
	c.MinZoom = minZoomX
	if minZoomY > c.MinZoom {
		c.MinZoom = minZoomY
	}
	if c.Zoom < c.MinZoom {
		c.Zoom = c.MinZoom
	}
}

// Pan moves the camera by the given screen-pixel delta, converting to
// grid-cell units and wrapping around the grid's toroidal boundary.
func (c *Camera) Pan(dxPixels, dyPixels float32) {
	c.X = mod(c.X+dxPixels/(c.CellSize*c.Zoom), c.GridW)
	c.Y = mod(c.Y+dyPixels/(c.CellSize*c.Zoom), c.GridH)
}

// SetZoom sets the zoom level, clamped to [MinZoom, MaxZoom].
func (c *Camera) SetZoom(zoom float32) {
	c.Zoom = clamp(zoom, c.MinZoom, c.MaxZoom)
}

// ZoomBy multiplies the current zoom by the given factor.
func (c *Camera) ZoomBy(factor float32) {
	c.SetZoom(c.Zoom * factor)
}

// Reset returns the camera to the grid's center at 1:1 zoom.
func (c *Camera) Reset() {
	c.X = c.GridW / 2
	c.Y = c.GridH / 2
	c.Zoom = 1.0
}

// VisibleWorldBounds returns the grid-cell bounds of the visible area
// as (minX, minY, maxX, maxY). For a toroidal grid, min may exceed max
// if the visible region wraps.
func (c *Camera) VisibleWorldBounds() (minX, minY, maxX, maxY float32) {
	halfW := c.ViewportW / (2 * c.Zoom * c.CellSize)
	halfH := c.ViewportH / (2 * c.Zoom * c.CellSize)

	minX = c.X - halfW
	maxX = c.X + halfW
	minY = c.Y - halfH
	maxY = c.Y + halfH
	return
}

// toroidalDelta computes the shortest signed distance from 'from' to
// 'to' in a toroidal space of the given size.
func toroidalDelta(to, from, size float32) float32 {
	d := to - from
	if d > size/2 {
		d -= size
	} else if d < -size/2 {
		d += size
	}
	return d
}

// mod computes the positive modulo (Go's % can return negative).
func mod(x, m float32) float32 {
	r := float32(math.Mod(float64(x), float64(m)))
	if r < 0 {
		r += m
	}
	return r
}

// absf returns the absolute value of a float32.
func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

// clamp restricts a value to a range.
func clamp(x, min, max float32) float32 {
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	return x
}
