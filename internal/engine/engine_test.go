package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"tilequest/assets"
	"tilequest/internal/component"
	"tilequest/internal/gamemap"
	"tilequest/internal/narrative"
	"tilequest/internal/system"
)

var quietLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

type cueRecorder struct{ got []system.MoveResult }

func (c *cueRecorder) Cue(r system.MoveResult) { c.got = append(c.got, r) }

func testScript() assets.Script {
	return assets.Script{
		Welcome:      "Welcome!",
		Speech:       []string{"[Professor]: one", "[Professor]: two"},
		NamePrompt:   "A [Gender]? Name?",
		Farewell:     "Bye [PlayerName]!",
		Ledge:        "Hop!",
		SignFallback: "A sign.",
	}
}

// testMaps builds two stacked maps joined by a three-tile connector.
func testMaps(t *testing.T) *gamemap.Registry {
	t.Helper()
	T, P, N, S := gamemap.TileTree, gamemap.TilePath, gamemap.TileNPCSpawn, gamemap.TilePlayerSpawn
	reg, err := gamemap.NewRegistry(quietLogger,
		gamemap.Definition{
			ID: "south",
			Rows: [][]gamemap.Tile{
				{T, P, P, P, T},
				{T, P, P, P, T},
				{T, P, S, P, T},
			},
			Exits: []gamemap.ExitZone{{Edge: gamemap.EdgeNorth, Min: 1, Max: 3, Dest: "north", DestEdge: gamemap.EdgeSouth, DestOffset: 1}},
		},
		gamemap.Definition{
			ID: "north",
			Rows: [][]gamemap.Tile{
				{T, P, P, P, T},
				{T, N, P, P, T},
				{T, P, P, N, T},
				{T, P, P, P, T},
			},
			Exits: []gamemap.ExitZone{{Edge: gamemap.EdgeSouth, Min: 1, Max: 3, Dest: "south", DestEdge: gamemap.EdgeNorth, DestOffset: 1}},
		},
	)
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	return reg
}

func testNPCs(mapID string, p gamemap.Point) assets.NPCDef {
	if mapID == "north" && p == (gamemap.Point{X: 1, Y: 1}) {
		return assets.NPCDef{Glyph: "👩", Name: "Mom", Template: "[PlayerName]! [Rival] came by."}
	}
	return assets.NPCDef{Glyph: "🧒", Name: "Kid", Template: "Hi."}
}

func newTestEngine(t *testing.T, cues CueSink) *Engine {
	t.Helper()
	e, err := New(testMaps(t), Config{
		StartMap:      "south",
		ProfessorName: "Prof. Birch",
		RivalName:     "May",
		Script:        testScript(),
		NPCs:          testNPCs,
		Logger:        quietLogger,
		Cues:          cues,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return e
}

func handle(t *testing.T, e *Engine, in Input) Step {
	t.Helper()
	st, err := e.Handle(context.Background(), in)
	if err != nil {
		t.Fatalf("Handle(%+v): %v", in, err)
	}
	return st
}

func move(t *testing.T, e *Engine, d gamemap.Direction) system.MoveResult {
	t.Helper()
	st := handle(t, e, Move(d))
	if !st.Moved {
		t.Fatalf("move %v did not reach the navigation engine", d)
	}
	return st.Outcome
}

// onboard drives the intro through to gameplay.
func onboard(t *testing.T, e *Engine, g component.Gender, name string) {
	t.Helper()
	for i := 0; e.Phase() != narrative.PhaseGenderSelect; i++ {
		if i > 10 {
			t.Fatalf("stuck in %v", e.Phase())
		}
		handle(t, e, Advance())
	}
	handle(t, e, Select(g))
	handle(t, e, Advance())
	for _, r := range name {
		handle(t, e, Rune(r))
	}
	handle(t, e, Confirm())
	handle(t, e, Advance())
	if e.Phase() != narrative.PhaseGameplay {
		t.Fatalf("phase = %v; want gameplay", e.Phase())
	}
}

func assertAt(t *testing.T, e *Engine, mapID string, x, y int) {
	t.Helper()
	p := e.PlayerPosition()
	if e.Map().ID != mapID || p.X != x || p.Y != y {
		t.Fatalf("player on %s at (%d,%d); want %s (%d,%d)", e.Map().ID, p.X, p.Y, mapID, x, y)
	}
}

func TestNewRejectsUnknownStartMap(t *testing.T) {
	_, err := New(testMaps(t), Config{StartMap: "nowhere", Script: testScript(), Logger: quietLogger})
	if !errors.Is(err, gamemap.ErrInvalidMap) {
		t.Fatalf("expected ErrInvalidMap, got %v", err)
	}
}

func TestFreshEngineStartsWithWelcome(t *testing.T) {
	e := newTestEngine(t, nil)
	if e.Phase() != narrative.PhaseWelcome {
		t.Fatalf("phase = %v; want welcome", e.Phase())
	}
	if !e.Dialogue().Active() || e.Dialogue().Current() != "Welcome!" {
		t.Fatalf("dialogue = %q", e.Dialogue().Current())
	}

	handle(t, e, Advance())
	if e.Phase() != narrative.PhaseSpeech {
		t.Fatalf("phase = %v; want speech", e.Phase())
	}
	snap := e.Snapshot(10, 6)
	if snap.Stage != 0 || len(snap.DialogueLines) != 1 || snap.DialogueLines[0] != "Prof. Birch: one" {
		t.Fatalf("speech snapshot = %+v", snap)
	}
	if snap.MapID != "" || snap.Tiles != nil {
		t.Fatal("no map should be loaded before gameplay")
	}
}

func TestOnboardingBuildsPlayer(t *testing.T) {
	e := newTestEngine(t, nil)
	onboard(t, e, component.GenderGirl, "ash")

	pl := e.World().Get(e.Player(), component.CPlayer).(component.Player)
	if pl.Name != "ASH" || pl.Gender != component.GenderGirl {
		t.Fatalf("player = %+v; want ASH girl", pl)
	}
	assertAt(t, e, "south", 2, 2)
	if n := e.Map().Count(gamemap.TilePlayerSpawn); n != 0 {
		t.Fatalf("%d player markers left in working copy", n)
	}
}

func TestIntroInputIgnoredWhileMessageShown(t *testing.T) {
	e := newTestEngine(t, nil)
	for _, in := range []Input{Rune('a'), Confirm(), Select(component.GenderGirl), Move(gamemap.North), Backspace()} {
		if st := handle(t, e, in); st.Consumed {
			t.Fatalf("%+v consumed during welcome", in)
		}
	}
	if e.Phase() != narrative.PhaseWelcome || e.Dialogue().Current() != "Welcome!" {
		t.Fatal("ignored input changed state")
	}
}

func TestMoveBeforeGameplayIsContractViolation(t *testing.T) {
	e := newTestEngine(t, nil)
	if _, err := e.Move(context.Background(), gamemap.North); !errors.Is(err, system.ErrInvalidEntity) {
		t.Fatalf("expected ErrInvalidEntity, got %v", err)
	}
}

func TestWalkingNorthChangesMap(t *testing.T) {
	e := newTestEngine(t, nil)
	onboard(t, e, component.GenderBoy, "red")

	move(t, e, gamemap.North)
	move(t, e, gamemap.North)
	assertAt(t, e, "south", 2, 0)

	if out := move(t, e, gamemap.North); out != system.MoveMapChanged {
		t.Fatalf("outcome = %v; want map_changed", out)
	}
	assertAt(t, e, "north", 2, 3)
	if n := len(e.World().Query(component.CNPC)); n != 2 {
		t.Fatalf("north NPCs = %d; want 2", n)
	}

	if out := move(t, e, gamemap.South); out != system.MoveMapChanged {
		t.Fatalf("return trip outcome = %v", out)
	}
	assertAt(t, e, "south", 2, 0)
	if n := len(e.World().Query(component.CNPC)); n != 0 {
		t.Fatalf("NPCs from the previous map survived: %d", n)
	}
}

func TestSwitchMapIsIdempotent(t *testing.T) {
	e := newTestEngine(t, nil)
	onboard(t, e, component.GenderBoy, "red")

	roster := func() []string {
		var out []string
		for _, id := range e.World().Query(component.CNPC, component.CPosition) {
			npc := e.World().Get(id, component.CNPC).(component.NPC)
			pos := e.World().Get(id, component.CPosition).(component.Position)
			out = append(out, fmt.Sprintf("%s@%d,%d", npc.Name, pos.X, pos.Y))
		}
		return out
	}

	var first []string
	for i := 0; i < 2; i++ {
		if err := e.SwitchMap("north", gamemap.Point{X: 2, Y: 3}); err != nil {
			t.Fatalf("SwitchMap: %v", err)
		}
		if n := e.Map().Count(gamemap.TileNPCSpawn) + e.Map().Count(gamemap.TilePlayerSpawn); n != 0 {
			t.Fatalf("load %d: %d markers in working copy", i, n)
		}
		got := roster()
		if i == 0 {
			first = got
			continue
		}
		if len(got) != len(first) {
			t.Fatalf("roster sizes differ: %v vs %v", first, got)
		}
		for j := range got {
			if got[j] != first[j] {
				t.Fatalf("roster differs: %v vs %v", first, got)
			}
		}
	}
}

func TestSwitchMapUnknownLeavesStateAlone(t *testing.T) {
	e := newTestEngine(t, nil)
	onboard(t, e, component.GenderBoy, "red")
	err := e.SwitchMap("nowhere", gamemap.Point{X: 9, Y: 9})
	if !errors.Is(err, gamemap.ErrInvalidMap) {
		t.Fatalf("expected ErrInvalidMap, got %v", err)
	}
	assertAt(t, e, "south", 2, 2)
}

func TestNPCInteractionResolvesNames(t *testing.T) {
	cues := &cueRecorder{}
	e := newTestEngine(t, cues)
	onboard(t, e, component.GenderBoy, "ash")
	if err := e.SwitchMap("north", gamemap.Point{X: 1, Y: 2}); err != nil {
		t.Fatal(err)
	}

	if out := move(t, e, gamemap.North); out != system.MoveInteractNPC {
		t.Fatalf("outcome = %v; want interacted_npc", out)
	}
	assertAt(t, e, "north", 1, 2)
	if got := e.Dialogue().Current(); got != "Mom: ASH! May came by." {
		t.Fatalf("dialogue = %q", got)
	}

	if out := move(t, e, gamemap.East); out != system.MoveBlockedDialogue {
		t.Fatalf("outcome = %v; want blocked_dialogue", out)
	}
	handle(t, e, Advance())
	if out := move(t, e, gamemap.East); out != system.MoveOK {
		t.Fatalf("outcome = %v; want moved", out)
	}

	want := []system.MoveResult{system.MoveInteractNPC, system.MoveBlockedDialogue, system.MoveOK}
	if len(cues.got) != len(want) {
		t.Fatalf("cues = %v; want %v", cues.got, want)
	}
	for i := range want {
		if cues.got[i] != want[i] {
			t.Fatalf("cues = %v; want %v", cues.got, want)
		}
	}
}

func TestSnapshotDuringGameplay(t *testing.T) {
	e := newTestEngine(t, nil)
	onboard(t, e, component.GenderGirl, "may")
	if err := e.SwitchMap("north", gamemap.Point{X: 2, Y: 3}); err != nil {
		t.Fatal(err)
	}

	s := e.Snapshot(3, 2)
	if s.MapID != "north" || s.Width != 5 || s.Height != 4 {
		t.Fatalf("snapshot map = %s %dx%d", s.MapID, s.Width, s.Height)
	}
	if s.Origin != (gamemap.Point{X: 1, Y: 2}) {
		t.Fatalf("origin = %+v; want clamped (1,2)", s.Origin)
	}
	if len(s.Tiles) != 2 || len(s.Tiles[0]) != 3 {
		t.Fatalf("window size = %dx%d", len(s.Tiles[0]), len(s.Tiles))
	}
	if len(s.Entities) != 3 {
		t.Fatalf("entities = %d; want player and two NPCs", len(s.Entities))
	}
	last := s.Entities[len(s.Entities)-1]
	if last.Kind != KindPlayer || last.Name != "MAY" || last.Gender != component.GenderGirl {
		t.Fatalf("player drawn last = %+v", last)
	}

	s.Tiles[0][0] = gamemap.TileWater
	if e.Map().At(1, 2) == gamemap.TileWater {
		t.Fatal("snapshot shares tiles with the live map")
	}
}
