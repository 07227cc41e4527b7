package component

import (
	"fmt"

	"tilequest/internal/ecs"
)

const CPlayer ecs.ComponentType = 3

// Gender is the player's chosen presentation.
type Gender uint8

const (
	GenderBoy Gender = iota
	GenderGirl
)

func (g Gender) String() string {
	switch g {
	case GenderBoy:
		return "boy"
	case GenderGirl:
		return "girl"
	}
	return fmt.Sprintf("gender(%d)", uint8(g))
}

// Valid reports whether g is one of the defined genders.
func (g Gender) Valid() bool {
	return g == GenderBoy || g == GenderGirl
}

// Player carries the identity chosen during onboarding.
type Player struct {
	Name   string
	Gender Gender
}

func (Player) Type() ecs.ComponentType { return CPlayer }
