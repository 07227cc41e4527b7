package engine

import (
	"log/slog"

	"go.opentelemetry.io/otel/trace"

	"tilequest/assets"
	"tilequest/internal/dialogue"
	"tilequest/internal/gamemap"
	"tilequest/internal/system"
	"tilequest/internal/telemetry"
)

// CueSink is told the outcome of every movement attempt, e.g. to play a
// sound. It must not block.
type CueSink interface {
	Cue(system.MoveResult)
}

// Config holds the knobs for one Engine.
type Config struct {
	StartMap      string
	ProfessorName string
	RivalName     string
	Script        assets.Script

	// NPCs resolves the character standing on an NPC marker.
	NPCs func(mapID string, p gamemap.Point) assets.NPCDef

	DialogueWidth int
	DialogueLines int

	Logger *slog.Logger
	Tracer trace.Tracer
	Cues   CueSink
}

// DefaultConfig returns the configuration used by the shipped game.
func DefaultConfig() Config {
	return Config{
		StartMap:      assets.StartMap,
		ProfessorName: assets.ProfessorName,
		RivalName:     assets.RivalName,
		Script:        assets.MustLoadScript(),
		NPCs:          assets.NPCAt,
		DialogueWidth: dialogue.DefaultWidth,
		DialogueLines: dialogue.DefaultMaxLines,
		Logger:        slog.Default(),
		Tracer:        telemetry.Tracer("engine"),
	}
}

// fill replaces zero fields with their defaults.
func (c *Config) fill() {
	if c.StartMap == "" {
		c.StartMap = assets.StartMap
	}
	if c.ProfessorName == "" {
		c.ProfessorName = assets.ProfessorName
	}
	if c.RivalName == "" {
		c.RivalName = assets.RivalName
	}
	if len(c.Script.Speech) == 0 {
		c.Script = assets.MustLoadScript()
	}
	if c.NPCs == nil {
		c.NPCs = assets.NPCAt
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
	if c.Tracer == nil {
		c.Tracer = telemetry.NoopTracer()
	}
}
