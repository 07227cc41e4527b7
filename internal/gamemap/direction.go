package gamemap

// Point is a tile coordinate within one map.
type Point struct {
	X, Y int
}

// Add returns p offset by one step in d.
func (p Point) Add(d Direction) Point {
	return Point{X: p.X + d.DX, Y: p.Y + d.DY}
}

// Direction is a unit step along one cardinal axis.
type Direction struct {
	DX, DY int
}

var (
	North = Direction{DX: 0, DY: -1}
	South = Direction{DX: 0, DY: 1}
	East  = Direction{DX: 1, DY: 0}
	West  = Direction{DX: -1, DY: 0}
)

// Cardinal reports whether d is exactly one of the four unit directions.
func (d Direction) Cardinal() bool {
	return (d.DX == 0) != (d.DY == 0) && d.DX*d.DX+d.DY*d.DY == 1
}

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case South:
		return "south"
	case East:
		return "east"
	case West:
		return "west"
	}
	return "none"
}

// Edge names one side of a rectangular map.
type Edge uint8

const (
	EdgeNorth Edge = iota
	EdgeSouth
	EdgeEast
	EdgeWest
)
