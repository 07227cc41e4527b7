// Package audio synthesises short feedback tones for movement outcomes.
package audio

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"tilequest/internal/system"
)

// SampleRate is the rate every cue is rendered at.
const SampleRate = beep.SampleRate(44100)

type note struct {
	freq float64
	dur  time.Duration
}

var cueNotes = map[system.MoveResult][]note{
	system.MoveBlockedCollision: {{110, 60 * time.Millisecond}},
	system.MoveBlockedBoundary:  {{110, 60 * time.Millisecond}},
	system.MoveBlockedLedge:     {{98, 80 * time.Millisecond}},
	system.MoveJumpedLedge:      {{523.25, 50 * time.Millisecond}, {392, 70 * time.Millisecond}},
	system.MoveInteractNPC:      {{880, 40 * time.Millisecond}, {1318.5, 60 * time.Millisecond}},
	system.MoveInteractTile:     {{659.25, 40 * time.Millisecond}, {987.77, 60 * time.Millisecond}},
	system.MoveMapChanged:       {{392, 50 * time.Millisecond}, {523.25, 50 * time.Millisecond}, {659.25, 90 * time.Millisecond}},
}

// Cue returns the tone sequence for r, or nil when r is silent.
func Cue(sr beep.SampleRate, r system.MoveResult) (beep.Streamer, error) {
	notes, ok := cueNotes[r]
	if !ok {
		return nil, nil
	}
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		sine, err := generators.SineTone(sr, n.freq)
		if err != nil {
			return nil, fmt.Errorf("cue %s: %w", r, err)
		}
		parts = append(parts, beep.Take(sr.N(n.dur), sine))
	}
	return &effects.Volume{Streamer: beep.Seq(parts...), Base: 2, Volume: -2}, nil
}

// Duration returns how long the cue for r plays.
func Duration(r system.MoveResult) time.Duration {
	var d time.Duration
	for _, n := range cueNotes[r] {
		d += n.dur
	}
	return d
}

// Player turns movement outcomes into sound through play, which is
// usually speaker.Play.
type Player struct {
	sr     beep.SampleRate
	play   func(...beep.Streamer)
	logger *slog.Logger
}

// NewPlayer creates a cue player.
func NewPlayer(sr beep.SampleRate, play func(...beep.Streamer), logger *slog.Logger) *Player {
	if logger == nil {
		logger = slog.Default()
	}
	return &Player{sr: sr, play: play, logger: logger}
}

// Cue plays the tone for r, if it has one.
func (p *Player) Cue(r system.MoveResult) {
	s, err := Cue(p.sr, r)
	if err != nil {
		p.logger.Warn("audio cue failed", "outcome", r, "err", err)
		return
	}
	if s != nil {
		p.play(s)
	}
}
