package assets

import "tilequest/internal/gamemap"

// NPCDef describes the character spawned on an NPC marker.
type NPCDef struct {
	Glyph    string
	Name     string
	Template string
}

type npcKey struct {
	mapID string
	x, y  int
}

// DefaultNPC stands on any marker without a specific entry.
var DefaultNPC = NPCDef{
	Glyph:    "🧒",
	Name:     "Youngster",
	Template: "I like shorts! They're comfy and easy to wear!",
}

var placedNPCs = map[npcKey]NPCDef{
	{MapLittleroot, 12, 3}: {
		Glyph:    "🧑‍🔬",
		Name:     ProfessorName,
		Template: "Ah, [PlayerName]! How is your Pokémon journey coming along?",
	},
	{MapLittleroot, 3, 12}: {
		Glyph:    "👩",
		Name:     "Mom",
		Template: "Be careful out there, [PlayerName]! And don't forget to change your underwear!",
	},
	{MapOldale, 14, 3}: {
		Glyph:    "👴",
		Name:     "Old Man",
		Template: "[Rival] ran through here a moment ago. You two must be friends!",
	},
}

// NPCAt returns the NPC standing on the marker at (x, y) of mapID.
func NPCAt(mapID string, p gamemap.Point) NPCDef {
	if def, ok := placedNPCs[npcKey{mapID, p.X, p.Y}]; ok {
		return def
	}
	return DefaultNPC
}
