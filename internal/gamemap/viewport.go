package gamemap

// Viewport returns the top-left tile of a viewW×viewH window centred on
// center and clamped so it never shows space past the map edge. On an axis
// where the map is smaller than the view, the map is centred instead and the
// origin goes negative.
func Viewport(center Point, viewW, viewH, mapW, mapH int) Point {
	return Point{
		X: clampAxis(center.X, viewW, mapW),
		Y: clampAxis(center.Y, viewH, mapH),
	}
}

func clampAxis(c, view, size int) int {
	if view >= size {
		return -(view - size) / 2
	}
	o := c - view/2
	if o < 0 {
		o = 0
	}
	if o > size-view {
		o = size - view
	}
	return o
}
