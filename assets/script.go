package assets

import (
	"embed"
	"encoding/json"
	"fmt"

	"tilequest/internal/gamemap"
)

//go:embed *.json
var dataFS embed.FS

// Default cast names. Both can be overridden through engine configuration.
const (
	ProfessorName = "Prof. Birch"
	RivalName     = "May"
)

// Script holds every line of narrative text that is not tied to an NPC.
type Script struct {
	Welcome      string     `json:"welcome"`
	Speech       []string   `json:"speech"`
	NamePrompt   string     `json:"name_prompt"`
	Farewell     string     `json:"farewell"`
	Ledge        string     `json:"ledge"`
	Doors        []DoorText `json:"doors"`
	Signs        []SignText `json:"signs"`
	SignFallback string     `json:"sign_fallback"`
}

// DoorText is the message shown when bumping a door tile.
type DoorText struct {
	Tile gamemap.Tile `json:"tile"`
	Text string       `json:"text"`
}

// SignText is the message of the sign at one exact map position.
type SignText struct {
	Map  string `json:"map"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
	Text string `json:"text"`
}

// Load reads and unmarshals a JSON file from the embedded filesystem.
func Load[T any](filename string) (T, error) {
	var result T

	content, err := dataFS.ReadFile(filename)
	if err != nil {
		return result, fmt.Errorf("failed to read embedded file %s: %w", filename, err)
	}
	if err := json.Unmarshal(content, &result); err != nil {
		return result, fmt.Errorf("failed to parse JSON from %s: %w", filename, err)
	}
	return result, nil
}

// MustLoadScript loads script.json, panicking on error.
func MustLoadScript() Script {
	s, err := Load[Script]("script.json")
	if err != nil {
		panic(err)
	}
	if len(s.Speech) == 0 {
		panic("script.json: speech is empty")
	}
	return s
}

// Door returns the message template for door tile t.
func (s Script) Door(t gamemap.Tile) (string, bool) {
	for _, d := range s.Doors {
		if d.Tile == t {
			return d.Text, true
		}
	}
	return "", false
}

// Sign returns the text of the sign at (x, y) on mapID, or the generic
// fallback when no entry matches exactly.
func (s Script) Sign(mapID string, x, y int) string {
	for _, sg := range s.Signs {
		if sg.Map == mapID && sg.X == x && sg.Y == y {
			return sg.Text
		}
	}
	return s.SignFallback
}
