package engine

import (
	"tilequest/internal/component"
	"tilequest/internal/gamemap"
)

// InputKind is the class of a discrete input event.
type InputKind uint8

const (
	InputNone InputKind = iota
	InputMove
	InputAdvance
	InputCursor    // toggle the highlighted gender
	InputSelect    // choose a specific gender
	InputRune      // append a character to the name
	InputBackspace // delete the last name character
	InputConfirm
)

// Input is one event from the UI layer.
type Input struct {
	Kind   InputKind
	Dir    gamemap.Direction
	Gender component.Gender
	Rune   rune
}

func Move(d gamemap.Direction) Input { return Input{Kind: InputMove, Dir: d} }
func Advance() Input { return Input{Kind: InputAdvance} }
func Cursor() Input { return Input{Kind: InputCursor} }
func Select(g component.Gender) Input { return Input{Kind: InputSelect, Gender: g} }
func Rune(r rune) Input { return Input{Kind: InputRune, Rune: r} }
func Backspace() Input { return Input{Kind: InputBackspace} }
func Confirm() Input { return Input{Kind: InputConfirm} }
