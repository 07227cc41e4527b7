package render

import "tilequest/internal/gamemap"

// Camera translates between map coordinates and screen coordinates.
// Map X is multiplied by 2 because every tile occupies 2 terminal columns.
type Camera struct {
	OffsetX    int
	OffsetY    int
	ViewWidth  int // in terminal columns
	ViewHeight int // in terminal rows
}

// NewCamera creates a camera for a viewport of viewW columns by viewH rows.
func NewCamera(viewW, viewH int) *Camera {
	return &Camera{ViewWidth: viewW, ViewHeight: viewH}
}

// Follow moves the camera so that map tile origin is drawn at the top-left.
func (c *Camera) Follow(origin gamemap.Point) {
	c.OffsetX, c.OffsetY = origin.X, origin.Y
}

// Tiles returns how many whole tiles fit in the viewport.
func (c *Camera) Tiles() (w, h int) {
	return c.ViewWidth / 2, c.ViewHeight
}

// WorldToScreen converts map (wx, wy) to screen (sx, sy).
// visible is false when the result falls outside the viewport.
func (c *Camera) WorldToScreen(wx, wy int) (sx, sy int, visible bool) {
	sx = (wx - c.OffsetX) * 2
	sy = wy - c.OffsetY
	visible = sx >= 0 && sx+1 < c.ViewWidth && sy >= 0 && sy < c.ViewHeight
	return
}
