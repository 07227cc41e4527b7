package engine

import (
	"sort"

	"tilequest/internal/component"
	"tilequest/internal/gamemap"
	"tilequest/internal/narrative"
)

// EntityKind distinguishes the entity variants in a snapshot.
type EntityKind uint8

const (
	KindPlayer EntityKind = iota
	KindNPC
)

// EntityView is one drawable entity in map coordinates.
type EntityView struct {
	Kind   EntityKind
	Name   string
	Glyph  string
	X, Y   int
	Gender component.Gender
	Order  int
}

// Snapshot is a read-only copy of everything the UI draws in one frame.
type Snapshot struct {
	Phase narrative.Phase

	MapID         string
	Width, Height int
	// Origin is the map tile shown at the top-left of Tiles.
	Origin gamemap.Point
	Tiles  [][]gamemap.Tile
	Inside [][]bool
	// Entities are sorted by draw order, lowest first.
	Entities []EntityView

	DialogueActive bool
	DialogueLines  []string

	NameBuffer   string
	GenderChoice component.Gender
	Stage        int
}

// Snapshot copies the visible state for a view of viewW×viewH tiles
// centred on the player.
func (e *Engine) Snapshot(viewW, viewH int) Snapshot {
	s := Snapshot{
		Phase:          e.story.Phase(),
		DialogueActive: e.queue.Active(),
		DialogueLines:  e.queue.Lines(),
		NameBuffer:     e.story.Name(),
		GenderChoice:   e.story.Cursor(),
		Stage:          e.story.Stage(),
	}
	if e.gmap == nil {
		return s
	}
	s.MapID = e.gmap.ID
	s.Width, s.Height = e.gmap.Width, e.gmap.Height

	p := e.PlayerPosition()
	s.Origin = gamemap.Viewport(gamemap.Point{X: p.X, Y: p.Y}, viewW, viewH, e.gmap.Width, e.gmap.Height)
	s.Tiles, s.Inside = e.gmap.Window(s.Origin.X, s.Origin.Y, viewW, viewH)

	for _, id := range e.world.Query(component.CPosition, component.CRenderable) {
		pos := e.world.Get(id, component.CPosition).(component.Position)
		rend := e.world.Get(id, component.CRenderable).(component.Renderable)
		v := EntityView{Glyph: rend.Glyph, X: pos.X, Y: pos.Y, Order: rend.RenderOrder}
		if c := e.world.Get(id, component.CPlayer); c != nil {
			pl := c.(component.Player)
			v.Kind, v.Name, v.Gender = KindPlayer, pl.Name, pl.Gender
		} else if c := e.world.Get(id, component.CNPC); c != nil {
			v.Kind, v.Name = KindNPC, c.(component.NPC).Name
		} else {
			continue
		}
		s.Entities = append(s.Entities, v)
	}
	sort.SliceStable(s.Entities, func(i, j int) bool {
		return s.Entities[i].Order < s.Entities[j].Order
	})
	return s
}
