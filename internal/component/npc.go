package component

import "tilequest/internal/ecs"

const CNPC ecs.ComponentType = 4

// NPC is a stationary character that speaks when bumped.
type NPC struct {
	Name string
	// Template may contain [PlayerName] and [Rival]; they are expanded at
	// interaction time, not at spawn.
	Template string
}

func (NPC) Type() ecs.ComponentType { return CNPC }
