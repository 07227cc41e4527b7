// Package narrative drives the onboarding sequence that runs before free
// movement: welcome, professor speech, gender choice, name entry and a
// farewell line, after which control passes to the world.
package narrative

import "fmt"

// Phase is one state of the onboarding machine.
type Phase uint8

const (
	PhaseWelcome Phase = iota
	PhaseSpeech
	PhaseGenderSelect
	PhaseNameInput
	PhaseTransition
	PhaseGameplay
)

func (p Phase) String() string {
	switch p {
	case PhaseWelcome:
		return "welcome"
	case PhaseSpeech:
		return "speech"
	case PhaseGenderSelect:
		return "gender-select"
	case PhaseNameInput:
		return "name-input"
	case PhaseTransition:
		return "transition"
	case PhaseGameplay:
		return "gameplay"
	}
	return fmt.Sprintf("phase(%d)", uint8(p))
}

// Event triggers a phase transition.
type Event uint8

const (
	// EventBatchDone fires when the last message of a batch the
	// controller queued has been dismissed.
	EventBatchDone Event = iota
	EventGenderChosen
	EventNameConfirmed
)

func (e Event) String() string {
	switch e {
	case EventBatchDone:
		return "batch-done"
	case EventGenderChosen:
		return "gender-chosen"
	case EventNameConfirmed:
		return "name-confirmed"
	}
	return fmt.Sprintf("event(%d)", uint8(e))
}
