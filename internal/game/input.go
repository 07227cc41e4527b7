package game

import (
	"github.com/gdamore/tcell/v2"

	"tilequest/internal/component"
	"tilequest/internal/engine"
	"tilequest/internal/gamemap"
	"tilequest/internal/narrative"
)

// keyToInput maps a tcell key event to an engine input. The mapping depends
// on the onboarding phase and on whether a message is on screen. quit is
// true for the keys that leave the game.
func keyToInput(ev *tcell.EventKey, phase narrative.Phase, talking bool) (in engine.Input, quit bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return engine.Input{}, true
	}

	if dir, ok := keyToDirection(ev); ok && phase == narrative.PhaseGameplay {
		return engine.Move(dir), false
	}
	if talking || phase == narrative.PhaseGameplay {
		if isAdvanceKey(ev) {
			return engine.Advance(), false
		}
		return engine.Input{}, false
	}

	switch phase {
	case narrative.PhaseGenderSelect:
		switch ev.Key() {
		case tcell.KeyLeft, tcell.KeyRight:
			return engine.Cursor(), false
		case tcell.KeyEnter:
			return engine.Confirm(), false
		}
		switch ev.Rune() {
		case 'b', 'B':
			return engine.Select(component.GenderBoy), false
		case 'g', 'G':
			return engine.Select(component.GenderGirl), false
		case 'a', 'A', 'd', 'D':
			return engine.Cursor(), false
		case ' ':
			return engine.Confirm(), false
		}
	case narrative.PhaseNameInput:
		switch ev.Key() {
		case tcell.KeyBackspace, tcell.KeyBackspace2:
			return engine.Backspace(), false
		case tcell.KeyEnter:
			return engine.Confirm(), false
		case tcell.KeyRune:
			return engine.Rune(ev.Rune()), false
		}
	default:
		if isAdvanceKey(ev) {
			return engine.Advance(), false
		}
	}
	return engine.Input{}, false
}

func isAdvanceKey(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyEnter {
		return true
	}
	if ev.Key() != tcell.KeyRune {
		return false
	}
	switch ev.Rune() {
	case ' ', 'e', 'E':
		return true
	}
	return false
}

// keyToDirection maps arrow keys and WASD to a movement direction.
func keyToDirection(ev *tcell.EventKey) (gamemap.Direction, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return gamemap.North, true
	case tcell.KeyDown:
		return gamemap.South, true
	case tcell.KeyRight:
		return gamemap.East, true
	case tcell.KeyLeft:
		return gamemap.West, true
	case tcell.KeyRune:
	default:
		return gamemap.Direction{}, false
	}
	switch ev.Rune() {
	case 'w', 'W':
		return gamemap.North, true
	case 's', 'S':
		return gamemap.South, true
	case 'd', 'D':
		return gamemap.East, true
	case 'a', 'A':
		return gamemap.West, true
	}
	return gamemap.Direction{}, false
}
