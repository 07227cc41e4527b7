package gamemap

import "fmt"

// GameMap is the mutable working copy of one map.
type GameMap struct {
	ID            string
	Width, Height int
	Tiles         [][]Tile
	Exits         []ExitZone
	// NPCSpawns lists the NPC markers resolved during Load, in row-major order.
	NPCSpawns []Point
}

// New creates a GameMap of the given size filled with fill.
func New(id string, width, height int, fill Tile) *GameMap {
	tiles := make([][]Tile, height)
	for y := range tiles {
		tiles[y] = make([]Tile, width)
		for x := range tiles[y] {
			tiles[y][x] = fill
		}
	}
	return &GameMap{ID: id, Width: width, Height: height, Tiles: tiles}
}

// FromRows builds a GameMap over a deep copy of rows. Rows must be non-empty
// and of equal length.
func FromRows(id string, rows [][]Tile) (*GameMap, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("map %q: empty grid", id)
	}
	width := len(rows[0])
	tiles := make([][]Tile, len(rows))
	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("map %q: row %d has %d tiles, want %d", id, y, len(row), width)
		}
		tiles[y] = append([]Tile(nil), row...)
	}
	return &GameMap{ID: id, Width: width, Height: len(rows), Tiles: tiles}, nil
}

// InBounds reports whether (x, y) is within the map boundaries.
func (m *GameMap) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// At returns the tile at (x, y). Panics if out of bounds.
func (m *GameMap) At(x, y int) Tile {
	return m.Tiles[y][x]
}

// Set replaces the tile at (x, y).
func (m *GameMap) Set(x, y int, t Tile) {
	m.Tiles[y][x] = t
}

// IsWalkable returns true when (x, y) is in bounds and its tile is walkable.
func (m *GameMap) IsWalkable(x, y int) bool {
	if !m.InBounds(x, y) {
		return false
	}
	return Walkable(m.Tiles[y][x])
}

// Count returns how many cells hold t.
func (m *GameMap) Count(t Tile) int {
	n := 0
	for _, row := range m.Tiles {
		for _, c := range row {
			if c == t {
				n++
			}
		}
	}
	return n
}

// ExitAt returns the exit zone that an off-map point p leaves through.
func (m *GameMap) ExitAt(p Point) (ExitZone, bool) {
	for _, z := range m.Exits {
		if z.Matches(m, p) {
			return z, true
		}
	}
	return ExitZone{}, false
}

// Window copies the w×h block of tiles whose top-left corner is (x0, y0).
// inside is false for cells that fall off the map.
func (m *GameMap) Window(x0, y0, w, h int) (tiles [][]Tile, inside [][]bool) {
	tiles = make([][]Tile, h)
	inside = make([][]bool, h)
	for dy := 0; dy < h; dy++ {
		tiles[dy] = make([]Tile, w)
		inside[dy] = make([]bool, w)
		for dx := 0; dx < w; dx++ {
			x, y := x0+dx, y0+dy
			if m.InBounds(x, y) {
				tiles[dy][dx] = m.Tiles[y][x]
				inside[dy][dx] = true
			}
		}
	}
	return tiles, inside
}
