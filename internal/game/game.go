// Package game runs the frame loop: terminal events in, engine inputs, one
// rendered snapshot out per event.
package game

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gdamore/tcell/v2"

	"tilequest/internal/engine"
	"tilequest/internal/render"
)

// Game is the top-level orchestrator for one player on one screen.
type Game struct {
	screen   tcell.Screen
	renderer *render.Renderer
	eng      *engine.Engine
	logger   *slog.Logger
}

// New creates a Game on the local terminal.
func New(eng *engine.Engine, logger *slog.Logger) (*Game, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	return NewWithScreen(screen, eng, logger), nil
}

// NewWithScreen creates a Game on an already initialised screen, such as an
// SSH session's or a simulation screen.
func NewWithScreen(screen tcell.Screen, eng *engine.Engine, logger *slog.Logger) *Game {
	if logger == nil {
		logger = slog.Default()
	}
	return &Game{
		screen:   screen,
		renderer: render.NewRenderer(screen),
		eng:      eng,
		logger:   logger,
	}
}

// Run draws and processes events until the player quits, ctx is cancelled
// or the engine reports a contract violation. It finalises the screen.
func (g *Game) Run(ctx context.Context) error {
	defer g.screen.Fini()

	stop := context.AfterFunc(ctx, func() {
		_ = g.screen.PostEvent(tcell.NewEventInterrupt(nil))
	})
	defer stop()

	for {
		g.Draw()

		ev := g.screen.PollEvent()
		switch ev := ev.(type) {
		case nil:
			return nil
		case *tcell.EventResize:
			g.screen.Sync()
			g.renderer.Resize()
		case *tcell.EventInterrupt:
			if ctx.Err() != nil {
				return nil
			}
		case *tcell.EventKey:
			quit, err := g.HandleKey(ctx, ev)
			if err != nil {
				return err
			}
			if quit {
				return nil
			}
		}
	}
}

// HandleKey feeds one key event to the engine. It reports whether the key
// asks to quit.
func (g *Game) HandleKey(ctx context.Context, ev *tcell.EventKey) (bool, error) {
	in, quit := keyToInput(ev, g.eng.Phase(), g.eng.Dialogue().Active())
	if quit {
		return true, nil
	}
	if in.Kind == engine.InputNone {
		return false, nil
	}
	if _, err := g.eng.Handle(ctx, in); err != nil {
		g.logger.Error("engine input failed", "input", in.Kind, "err", err)
		return false, err
	}
	return false, nil
}

// Draw renders the current engine state.
func (g *Game) Draw() {
	w, h := g.renderer.ViewTiles()
	g.renderer.Draw(g.eng.Snapshot(w, h))
}
