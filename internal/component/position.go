package component

import "tilequest/internal/ecs"

const CPosition ecs.ComponentType = 1

// Position is a tile coordinate on the currently loaded map.
type Position struct {
	X, Y int
}

func (Position) Type() ecs.ComponentType { return CPosition }
