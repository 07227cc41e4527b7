package factory

import (
	"tilequest/assets"
	"tilequest/internal/component"
	"tilequest/internal/ecs"

	"github.com/gdamore/tcell/v2"
)

// PlayerGlyph returns the sprite for a player of gender g.
func PlayerGlyph(g component.Gender) string {
	if g == component.GenderGirl {
		return "👧"
	}
	return "👦"
}

// NewPlayer creates the player entity at (x, y).
func NewPlayer(w *ecs.World, x, y int, name string, gender component.Gender) ecs.EntityID {
	id := w.CreateEntity()
	w.Add(id, component.Position{X: x, Y: y})
	w.Add(id, component.Player{Name: name, Gender: gender})
	w.Add(id, component.Renderable{
		Glyph:       PlayerGlyph(gender),
		FGColor:     tcell.ColorYellow,
		RenderOrder: 10,
	})
	w.Add(id, component.TagPlayer{})
	w.Add(id, component.TagBlocking{})
	return id
}

// NewNPC creates a non-player character from def at (x, y).
func NewNPC(w *ecs.World, def assets.NPCDef, x, y int) ecs.EntityID {
	id := w.CreateEntity()
	w.Add(id, component.Position{X: x, Y: y})
	w.Add(id, component.NPC{Name: def.Name, Template: def.Template})
	w.Add(id, component.Renderable{
		Glyph:       def.Glyph,
		FGColor:     tcell.ColorTeal,
		RenderOrder: 5,
	})
	w.Add(id, component.TagBlocking{})
	return id
}
