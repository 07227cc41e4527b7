package component

import "tilequest/internal/ecs"

const (
	CTagPlayer   ecs.ComponentType = 5
	CTagBlocking ecs.ComponentType = 6
)

// TagPlayer marks the player-controlled entity.
type TagPlayer struct{}

func (TagPlayer) Type() ecs.ComponentType { return CTagPlayer }

// TagBlocking marks an entity that occupies its tile.
type TagBlocking struct{}

func (TagBlocking) Type() ecs.ComponentType { return CTagBlocking }
