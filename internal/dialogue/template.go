package dialogue

import "strings"

// Placeholders understood by Expand.
const (
	PlaceholderPlayer    = "[PlayerName]"
	PlaceholderRival     = "[Rival]"
	PlaceholderProfessor = "[Professor]"
	PlaceholderGender    = "[Gender]"
)

// Vars are the values substituted into message templates.
type Vars struct {
	Player    string
	Rival     string
	Professor string
	Gender    string
}

// Expand replaces each placeholder in template, in a fixed order. An empty
// player or rival name becomes "Traveler" or "your Rival".
func Expand(template string, v Vars) string {
	player := v.Player
	if player == "" {
		player = "Traveler"
	}
	rival := v.Rival
	if rival == "" {
		rival = "your Rival"
	}
	out := strings.ReplaceAll(template, PlaceholderPlayer, player)
	out = strings.ReplaceAll(out, PlaceholderRival, rival)
	out = strings.ReplaceAll(out, PlaceholderProfessor, v.Professor)
	out = strings.ReplaceAll(out, PlaceholderGender, v.Gender)
	return out
}
