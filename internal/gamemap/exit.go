package gamemap

// ExitZone is a contiguous range of coordinates along one map edge that
// connects to another map instead of blocking.
type ExitZone struct {
	Edge     Edge
	Min, Max int // inclusive, measured along the edge
	Dest     string
	// The entry point lands on DestEdge of the destination map, shifted along
	// that edge by (position - Min) + DestOffset.
	DestEdge   Edge
	DestOffset int
}

// Matches reports whether off-map point p crosses m's edge through z.
func (z ExitZone) Matches(m *GameMap, p Point) bool {
	switch z.Edge {
	case EdgeNorth:
		return p.Y < 0 && z.covers(p.X)
	case EdgeSouth:
		return p.Y >= m.Height && z.covers(p.X)
	case EdgeWest:
		return p.X < 0 && z.covers(p.Y)
	case EdgeEast:
		return p.X >= m.Width && z.covers(p.Y)
	}
	return false
}

func (z ExitZone) covers(v int) bool {
	return v >= z.Min && v <= z.Max
}

// Entry computes where an entity crossing at p arrives on a destination
// map of the given size.
func (z ExitZone) Entry(p Point, destWidth, destHeight int) Point {
	along := p.X
	if z.Edge == EdgeWest || z.Edge == EdgeEast {
		along = p.Y
	}
	along = along - z.Min + z.DestOffset

	switch z.DestEdge {
	case EdgeNorth:
		return Point{X: along, Y: 0}
	case EdgeSouth:
		return Point{X: along, Y: destHeight - 1}
	case EdgeWest:
		return Point{X: 0, Y: along}
	default:
		return Point{X: destWidth - 1, Y: along}
	}
}
