package gamemap

import (
	"errors"
	"fmt"
	"log/slog"
)

// ErrInvalidMap is returned when a caller names a map the registry does not hold.
var ErrInvalidMap = errors.New("invalid map")

// FallbackSpawn is used when a map carries no player-spawn marker.
var FallbackSpawn = Point{X: 5, Y: 5}

// Definition is the canonical, read-only description of one map.
type Definition struct {
	ID    string
	Rows  [][]Tile
	Exits []ExitZone
}

// Registry holds canonical map definitions and hands out working copies.
type Registry struct {
	defs   map[string]*GameMap
	logger *slog.Logger
}

// NewRegistry validates defs and stores a private canonical copy of each.
// Grids must be rectangular, carry at most one player-spawn marker, and
// every exit must lead to a registered map.
func NewRegistry(logger *slog.Logger, defs ...Definition) (*Registry, error) {
	if logger == nil {
		logger = slog.Default()
	}
	r := &Registry{defs: make(map[string]*GameMap, len(defs)), logger: logger}
	for _, d := range defs {
		if _, dup := r.defs[d.ID]; dup {
			return nil, fmt.Errorf("map %q: defined twice", d.ID)
		}
		m, err := FromRows(d.ID, d.Rows)
		if err != nil {
			return nil, err
		}
		if n := m.Count(TilePlayerSpawn); n > 1 {
			return nil, fmt.Errorf("map %q: %d player spawn markers, want at most 1", d.ID, n)
		}
		m.Exits = append([]ExitZone(nil), d.Exits...)
		r.defs[d.ID] = m
	}
	for id, m := range r.defs {
		for _, z := range m.Exits {
			if _, ok := r.defs[z.Dest]; !ok {
				return nil, fmt.Errorf("map %q: exit leads to %q: %w", id, z.Dest, ErrInvalidMap)
			}
		}
	}
	return r, nil
}

func (r *Registry) canonical(id string) (*GameMap, error) {
	m, ok := r.defs[id]
	if !ok {
		return nil, fmt.Errorf("map %q: %w", id, ErrInvalidMap)
	}
	return m, nil
}

// Has reports whether id is registered.
func (r *Registry) Has(id string) bool {
	_, ok := r.defs[id]
	return ok
}

// Load returns a fresh working copy of map id. Every spawn marker in the copy
// is replaced with plain path, and NPC marker positions are recorded in
// NPCSpawns. The canonical definition is never modified.
func (r *Registry) Load(id string) (*GameMap, error) {
	def, err := r.canonical(id)
	if err != nil {
		return nil, err
	}
	m, err := FromRows(id, def.Tiles)
	if err != nil {
		return nil, err
	}
	m.Exits = append([]ExitZone(nil), def.Exits...)
	for y, row := range m.Tiles {
		for x, t := range row {
			switch t {
			case TileNPCSpawn:
				m.NPCSpawns = append(m.NPCSpawns, Point{X: x, Y: y})
				m.Tiles[y][x] = TilePath
			case TilePlayerSpawn:
				m.Tiles[y][x] = TilePath
			}
		}
	}
	return m, nil
}

// FindPlayerSpawn scans the canonical definition of id for the player-spawn
// marker. When none exists it logs a warning and returns FallbackSpawn with
// found=false.
func (r *Registry) FindPlayerSpawn(id string) (p Point, found bool, err error) {
	def, err := r.canonical(id)
	if err != nil {
		return Point{}, false, err
	}
	for y, row := range def.Tiles {
		for x, t := range row {
			if t == TilePlayerSpawn {
				return Point{X: x, Y: y}, true, nil
			}
		}
	}
	r.logger.Warn("player spawn marker missing",
		"map", id, "fallback_x", FallbackSpawn.X, "fallback_y", FallbackSpawn.Y)
	return FallbackSpawn, false, nil
}

// Dimensions returns the width and height of map id.
func (r *Registry) Dimensions(id string) (width, height int, err error) {
	def, err := r.canonical(id)
	if err != nil {
		return 0, 0, err
	}
	return def.Width, def.Height, nil
}
