package system

import (
	"errors"
	"fmt"

	"tilequest/internal/component"
	"tilequest/internal/dialogue"
	"tilequest/internal/ecs"
	"tilequest/internal/gamemap"
)

var (
	// ErrInvalidEntity is returned when the mover does not exist or has no position.
	ErrInvalidEntity = errors.New("invalid entity")
	// ErrInvalidDirection is returned for anything but a unit cardinal step.
	ErrInvalidDirection = errors.New("invalid direction")
)

// MoveResult describes the outcome of a TryMove call.
type MoveResult uint8

const (
	MoveOK               MoveResult = iota // position updated
	MoveEncounter                          // position updated onto encounter terrain
	MoveBlockedBoundary                    // off the map with no exit
	MoveBlockedCollision                   // solid tile or ledge approached from the wrong side
	MoveBlockedDialogue                    // a message is on screen
	MoveInteractNPC                        // bumped an NPC, its speech was queued
	MoveInteractTile                       // bumped a door or sign
	MoveJumpedLedge                        // hopped two tiles over a ledge
	MoveBlockedLedge                       // ledge landing is off-map or solid
	MoveMapChanged                         // crossed an exit zone
)

func (r MoveResult) String() string {
	switch r {
	case MoveOK:
		return "moved"
	case MoveEncounter:
		return "moved_encounter"
	case MoveBlockedBoundary:
		return "blocked_boundary"
	case MoveBlockedCollision:
		return "blocked_collision"
	case MoveBlockedDialogue:
		return "blocked_dialogue"
	case MoveInteractNPC:
		return "interacted_npc"
	case MoveInteractTile:
		return "interacted_tile"
	case MoveJumpedLedge:
		return "jumped_ledge"
	case MoveBlockedLedge:
		return "blocked_ledge"
	case MoveMapChanged:
		return "map_changed"
	}
	return fmt.Sprintf("move_result(%d)", uint8(r))
}

// Moved reports whether the mover ended on a different tile of the same map.
func (r MoveResult) Moved() bool {
	return r == MoveOK || r == MoveEncounter || r == MoveJumpedLedge
}

// Texts supplies the messages produced by interactive tiles.
type Texts interface {
	Door(t gamemap.Tile) (string, bool)
	Sign(mapID string, x, y int) string
}

// MapSwitcher relocates the player to entry on map dest and reloads it.
type MapSwitcher interface {
	SwitchMap(dest string, entry gamemap.Point) error
}

// Nav is everything one movement attempt may read or change. The caller
// owns it exclusively for the duration of TryMove.
type Nav struct {
	World    *ecs.World
	Map      *gamemap.GameMap
	Maps     *gamemap.Registry
	Dialogue *dialogue.Queue
	Texts    Texts
	Switcher MapSwitcher

	// Vars fills placeholders in NPC and door messages.
	Vars      dialogue.Vars
	LedgeText string
}

// TryMove attempts to move entity id one step in dir. Checks run in a fixed
// order and the first that applies decides the result: dialogue gate, exit
// zones, map boundary, NPCs, doors and signs, ledges, then plain walkability.
// Blocked results leave every piece of state untouched.
func TryMove(n *Nav, id ecs.EntityID, dir gamemap.Direction) (MoveResult, error) {
	pos, err := position(n.World, id)
	if err != nil {
		return MoveBlockedCollision, err
	}
	if !dir.Cardinal() {
		return MoveBlockedCollision, fmt.Errorf("%+v: %w", dir, ErrInvalidDirection)
	}

	if n.Dialogue != nil && n.Dialogue.Active() {
		return MoveBlockedDialogue, nil
	}

	cur := gamemap.Point{X: pos.X, Y: pos.Y}
	next := cur.Add(dir)

	// Exits are checked before bounds so that a connector edge always connects.
	if !n.Map.InBounds(next.X, next.Y) {
		z, ok := n.Map.ExitAt(next)
		if !ok {
			return MoveBlockedBoundary, nil
		}
		w, h, err := n.Maps.Dimensions(z.Dest)
		if err != nil {
			return MoveBlockedBoundary, err
		}
		if err := n.Switcher.SwitchMap(z.Dest, z.Entry(next, w, h)); err != nil {
			return MoveBlockedBoundary, err
		}
		return MoveMapChanged, nil
	}

	if npc, ok := npcAt(n.World, id, next); ok {
		n.say(npc.Name + ": " + dialogue.Expand(npc.Template, n.Vars))
		return MoveInteractNPC, nil
	}

	tile := n.Map.At(next.X, next.Y)
	switch gamemap.CategoryOf(tile) {
	case gamemap.CategoryDoor:
		if tmpl, ok := n.Texts.Door(tile); ok {
			n.say(dialogue.Expand(tmpl, n.Vars))
			return MoveInteractTile, nil
		}
	case gamemap.CategorySign:
		n.say(dialogue.Expand(n.Texts.Sign(n.Map.ID, next.X, next.Y), n.Vars))
		return MoveInteractTile, nil
	case gamemap.CategoryLedge:
		return n.jump(id, tile, next, dir), nil
	}

	if !gamemap.Walkable(tile) {
		return MoveBlockedCollision, nil
	}
	n.World.Add(id, component.Position{X: next.X, Y: next.Y})
	if gamemap.CategoryOf(tile) == gamemap.CategoryEncounter {
		return MoveEncounter, nil
	}
	return MoveOK, nil
}

// jump handles a step onto a ledge tile. The mover lands one tile past the
// ledge or does not move at all.
func (n *Nav) jump(id ecs.EntityID, ledge gamemap.Tile, at gamemap.Point, dir gamemap.Direction) MoveResult {
	down, _ := gamemap.LedgeDirection(ledge)
	if dir != down {
		return MoveBlockedCollision
	}
	land := at.Add(dir)
	if !n.Map.InBounds(land.X, land.Y) {
		return MoveBlockedLedge
	}
	lt := n.Map.At(land.X, land.Y)
	if !gamemap.Walkable(lt) && gamemap.CategoryOf(lt) != gamemap.CategoryLedge {
		return MoveBlockedLedge
	}
	if blockerAt(n.World, id, land) {
		return MoveBlockedLedge
	}
	n.World.Add(id, component.Position{X: land.X, Y: land.Y})
	if n.LedgeText != "" {
		n.say(n.LedgeText)
	}
	return MoveJumpedLedge
}

func (n *Nav) say(msg string) {
	if n.Dialogue != nil {
		n.Dialogue.Enqueue(msg, nil)
	}
}

func position(w *ecs.World, id ecs.EntityID) (component.Position, error) {
	if !w.Alive(id) {
		return component.Position{}, fmt.Errorf("entity %d: %w", id, ErrInvalidEntity)
	}
	c := w.Get(id, component.CPosition)
	if c == nil {
		return component.Position{}, fmt.Errorf("entity %d has no position: %w", id, ErrInvalidEntity)
	}
	return c.(component.Position), nil
}

// blockerAt reports whether an entity other than self occupies p.
func blockerAt(w *ecs.World, self ecs.EntityID, p gamemap.Point) bool {
	for _, eid := range w.Query(component.CTagBlocking, component.CPosition) {
		epos := w.Get(eid, component.CPosition).(component.Position)
		if eid != self && epos.X == p.X && epos.Y == p.Y {
			return true
		}
	}
	return false
}

// npcAt returns the NPC other than self standing on p.
func npcAt(w *ecs.World, self ecs.EntityID, p gamemap.Point) (component.NPC, bool) {
	for _, eid := range w.Query(component.CNPC, component.CPosition) {
		if eid == self {
			continue
		}
		epos := w.Get(eid, component.CPosition).(component.Position)
		if epos.X == p.X && epos.Y == p.Y {
			return w.Get(eid, component.CNPC).(component.NPC), true
		}
	}
	return component.NPC{}, false
}
