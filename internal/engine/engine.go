// Package engine owns all mutable state of one running world and is the
// single entry point for input. Nothing in it is safe for concurrent use;
// each frame's input, update and snapshot run on one goroutine.
package engine

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"tilequest/internal/component"
	"tilequest/internal/dialogue"
	"tilequest/internal/ecs"
	"tilequest/internal/factory"
	"tilequest/internal/gamemap"
	"tilequest/internal/narrative"
	"tilequest/internal/system"
)

// Step reports what one input did.
type Step struct {
	// Consumed is false when the input had no meaning in the current state.
	Consumed bool
	// Moved is true when a movement attempt ran; Outcome is then valid.
	Moved   bool
	Outcome system.MoveResult
}

// Engine is the world context: registry, active map, entities, dialogue and
// onboarding state.
type Engine struct {
	cfg    Config
	reg    *gamemap.Registry
	logger *slog.Logger
	tracer trace.Tracer

	gmap   *gamemap.GameMap
	world  *ecs.World
	player ecs.EntityID
	queue  *dialogue.Queue
	story  *narrative.Controller
	nav    *system.Nav
}

// New creates an engine in the welcome phase with the first line queued.
// The start map must exist in reg.
func New(reg *gamemap.Registry, cfg Config) (*Engine, error) {
	cfg.fill()
	if !reg.Has(cfg.StartMap) {
		return nil, fmt.Errorf("start map %q: %w", cfg.StartMap, gamemap.ErrInvalidMap)
	}
	e := &Engine{
		cfg:    cfg,
		reg:    reg,
		logger: cfg.Logger,
		tracer: cfg.Tracer,
		world:  ecs.NewWorld(),
		player: ecs.NilEntity,
		queue:  dialogue.NewQueue(cfg.DialogueWidth, cfg.DialogueLines),
	}
	lines := narrative.Lines{
		Welcome:    cfg.Script.Welcome,
		Speech:     cfg.Script.Speech,
		NamePrompt: cfg.Script.NamePrompt,
		Farewell:   cfg.Script.Farewell,
	}
	vars := dialogue.Vars{Professor: cfg.ProfessorName, Rival: cfg.RivalName}
	e.story = narrative.New(e.queue, lines, vars, e, e.logger)
	e.story.Start()
	return e, nil
}

// Handle applies one input. While a message is on screen only Advance does
// anything, except that a movement in gameplay still runs so it can report
// MoveBlockedDialogue.
func (e *Engine) Handle(ctx context.Context, in Input) (Step, error) {
	before := e.story.Phase()
	step, err := e.handle(ctx, in)
	if after := e.story.Phase(); after != before {
		_, span := e.tracer.Start(ctx, "engine.narrative")
		span.SetAttributes(attribute.String("from", before.String()), attribute.String("to", after.String()))
		span.End()
	}
	return step, err
}

func (e *Engine) handle(ctx context.Context, in Input) (Step, error) {
	if in.Kind == InputAdvance {
		if !e.queue.Active() {
			return Step{}, nil
		}
		e.queue.Advance()
		return Step{Consumed: true}, e.story.Err()
	}

	if e.story.Done() {
		if in.Kind != InputMove {
			return Step{}, nil
		}
		out, err := e.Move(ctx, in.Dir)
		return Step{Consumed: true, Moved: true, Outcome: out}, err
	}
	if e.queue.Active() {
		return Step{}, nil
	}

	var ok bool
	var err error
	switch in.Kind {
	case InputCursor:
		if e.story.Phase() == narrative.PhaseGenderSelect {
			e.story.MoveCursor()
			ok = true
		}
	case InputSelect:
		ok, err = e.story.Select(in.Gender)
	case InputConfirm:
		ok, err = e.story.Confirm()
	case InputRune:
		ok = e.story.TypeRune(in.Rune)
	case InputBackspace:
		ok = e.story.Backspace()
	}
	return Step{Consumed: ok}, err
}

// Move attempts one step of the player in dir.
func (e *Engine) Move(ctx context.Context, dir gamemap.Direction) (system.MoveResult, error) {
	if e.nav == nil {
		return system.MoveBlockedCollision, fmt.Errorf("move before gameplay: %w", system.ErrInvalidEntity)
	}
	_, span := e.tracer.Start(ctx, "engine.move")
	defer span.End()

	from := e.gmap.ID
	out, err := system.TryMove(e.nav, e.player, dir)
	if err != nil {
		span.RecordError(err)
		return out, err
	}
	pos := e.PlayerPosition()
	span.SetAttributes(
		attribute.String("map", from),
		attribute.String("direction", dir.String()),
		attribute.String("outcome", out.String()),
	)
	if out == system.MoveMapChanged {
		span.SetAttributes(attribute.String("to_map", e.gmap.ID))
	}
	e.logger.Debug("move", "outcome", out, "map", e.gmap.ID, "x", pos.X, "y", pos.Y)
	if e.cfg.Cues != nil {
		e.cfg.Cues.Cue(out)
	}
	return out, nil
}

// SwitchMap moves the player to entry on map dest and replaces the active
// map and its NPCs with fresh ones. Nothing changes if dest is unknown.
func (e *Engine) SwitchMap(dest string, entry gamemap.Point) error {
	m, err := e.reg.Load(dest)
	if err != nil {
		return err
	}
	from := ""
	if e.gmap != nil {
		from = e.gmap.ID
	}
	e.world.Add(e.player, component.Position{X: entry.X, Y: entry.Y})
	e.install(m)
	e.logger.Info("map switched", "from", from, "to", dest, "x", entry.X, "y", entry.Y)
	return nil
}

// install makes m the active map and respawns NPCs from its markers.
func (e *Engine) install(m *gamemap.GameMap) {
	e.world.DestroyAll(component.CNPC)
	for _, p := range m.NPCSpawns {
		factory.NewNPC(e.world, e.cfg.NPCs(m.ID, p), p.X, p.Y)
	}
	e.gmap = m
	if e.nav != nil {
		e.nav.Map = m
	}
}

// BeginGameplay creates the player at the start map's spawn point and loads
// that map. It is called once, when onboarding ends.
func (e *Engine) BeginGameplay(name string, gender component.Gender) error {
	_, span := e.tracer.Start(context.Background(), "engine.begin_gameplay")
	defer span.End()

	spawn, _, err := e.reg.FindPlayerSpawn(e.cfg.StartMap)
	if err != nil {
		return err
	}
	m, err := e.reg.Load(e.cfg.StartMap)
	if err != nil {
		return err
	}
	e.player = factory.NewPlayer(e.world, spawn.X, spawn.Y, name, gender)
	e.nav = &system.Nav{
		World:     e.world,
		Maps:      e.reg,
		Dialogue:  e.queue,
		Texts:     e.cfg.Script,
		Switcher:  e,
		Vars:      e.story.Vars(),
		LedgeText: e.cfg.Script.Ledge,
	}
	e.install(m)
	span.SetAttributes(attribute.String("map", m.ID), attribute.String("gender", gender.String()))
	e.logger.Info("gameplay started", "map", m.ID, "name", name, "gender", gender, "x", spawn.X, "y", spawn.Y)
	return nil
}

// Phase returns the onboarding phase.
func (e *Engine) Phase() narrative.Phase { return e.story.Phase() }

// Map returns the active map, or nil before gameplay.
func (e *Engine) Map() *gamemap.GameMap { return e.gmap }

func (e *Engine) World() *ecs.World { return e.world }

func (e *Engine) Dialogue() *dialogue.Queue { return e.queue }

// Player returns the player entity, or ecs.NilEntity before gameplay.
func (e *Engine) Player() ecs.EntityID { return e.player }

// PlayerPosition returns the player's tile, or the zero position before
// gameplay.
func (e *Engine) PlayerPosition() component.Position {
	if c := e.world.Get(e.player, component.CPosition); c != nil {
		return c.(component.Position)
	}
	return component.Position{}
}
