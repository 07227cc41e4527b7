package system

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"tilequest/internal/component"
	"tilequest/internal/dialogue"
	"tilequest/internal/ecs"
	"tilequest/internal/gamemap"
)

type fakeTexts struct{}

func (fakeTexts) Door(t gamemap.Tile) (string, bool) {
	if t == gamemap.TilePlayerHouseDoor {
		return "The door is locked, [PlayerName].", true
	}
	return "", false
}

func (fakeTexts) Sign(mapID string, x, y int) string {
	return fmt.Sprintf("%s sign %d,%d", mapID, x, y)
}

type switchCall struct {
	dest  string
	entry gamemap.Point
}

type fakeSwitcher struct {
	calls []switchCall
	err   error
}

func (f *fakeSwitcher) SwitchMap(dest string, entry gamemap.Point) error {
	f.calls = append(f.calls, switchCall{dest, entry})
	return f.err
}

type moveFixture struct {
	nav    *Nav
	sw     *fakeSwitcher
	player ecs.EntityID
}

// setupMove builds an 8x8 path map with the player at (3,3) and a north
// exit over columns 1..2 leading to a 3x2 map called "field".
func setupMove(t *testing.T) *moveFixture {
	t.Helper()
	P := gamemap.TilePath
	reg, err := gamemap.NewRegistry(slog.New(slog.NewTextHandler(io.Discard, nil)),
		gamemap.Definition{ID: "field", Rows: [][]gamemap.Tile{{P, P, P}, {P, P, P}}})
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	m := gamemap.New("town", 8, 8, gamemap.TilePath)
	m.Exits = []gamemap.ExitZone{{Edge: gamemap.EdgeNorth, Min: 1, Max: 2, Dest: "field", DestEdge: gamemap.EdgeSouth}}

	w := ecs.NewWorld()
	player := w.CreateEntity()
	w.Add(player, component.Position{X: 3, Y: 3})
	w.Add(player, component.TagPlayer{})

	sw := &fakeSwitcher{}
	return &moveFixture{
		nav: &Nav{
			World:     w,
			Map:       m,
			Maps:      reg,
			Dialogue:  dialogue.NewQueue(60, 3),
			Texts:     fakeTexts{},
			Switcher:  sw,
			Vars:      dialogue.Vars{Player: "ASH", Rival: "May", Professor: "Prof. Birch"},
			LedgeText: "Jumped down the ledge!",
		},
		sw:     sw,
		player: player,
	}
}

func (f *moveFixture) place(x, y int) {
	f.nav.World.Add(f.player, component.Position{X: x, Y: y})
}

func (f *moveFixture) pos() (int, int) {
	p := f.nav.World.Get(f.player, component.CPosition).(component.Position)
	return p.X, p.Y
}

func (f *moveFixture) addNPC(name, template string, x, y int) ecs.EntityID {
	id := f.nav.World.CreateEntity()
	f.nav.World.Add(id, component.Position{X: x, Y: y})
	f.nav.World.Add(id, component.NPC{Name: name, Template: template})
	f.nav.World.Add(id, component.TagBlocking{})
	return id
}

func (f *moveFixture) move(t *testing.T, dir gamemap.Direction) MoveResult {
	t.Helper()
	r, err := TryMove(f.nav, f.player, dir)
	if err != nil {
		t.Fatalf("TryMove(%v): %v", dir, err)
	}
	return r
}

func (f *moveFixture) assertAt(t *testing.T, x, y int) {
	t.Helper()
	if gx, gy := f.pos(); gx != x || gy != y {
		t.Fatalf("player at (%d,%d); want (%d,%d)", gx, gy, x, y)
	}
}

func TestTryMoveSucceeds(t *testing.T) {
	f := setupMove(t)
	if r := f.move(t, gamemap.East); r != MoveOK {
		t.Fatalf("expected MoveOK, got %v", r)
	}
	f.assertAt(t, 4, 3)
}

func TestTryMoveOntoTallGrassReportsEncounter(t *testing.T) {
	f := setupMove(t)
	f.nav.Map.Set(3, 4, gamemap.TileTallGrass)
	if r := f.move(t, gamemap.South); r != MoveEncounter {
		t.Fatalf("expected MoveEncounter, got %v", r)
	}
	f.assertAt(t, 3, 4)
}

func TestTryMoveBlockedByObstruction(t *testing.T) {
	for _, tile := range []gamemap.Tile{gamemap.TileTree, gamemap.TileWater, gamemap.TileFence,
		gamemap.TileLabWall, gamemap.TileRoofMart, gamemap.Tile(200)} {
		f := setupMove(t)
		f.nav.Map.Set(4, 3, tile)
		if r := f.move(t, gamemap.East); r != MoveBlockedCollision {
			t.Fatalf("tile %d: expected MoveBlockedCollision, got %v", tile, r)
		}
		f.assertAt(t, 3, 3)
		if f.nav.Dialogue.Active() {
			t.Fatalf("tile %d: blocked move must not queue dialogue", tile)
		}
	}
}

func TestTryMoveBlockedAtBoundaryWithoutExit(t *testing.T) {
	f := setupMove(t)
	f.place(7, 5)
	if r := f.move(t, gamemap.East); r != MoveBlockedBoundary {
		t.Fatalf("expected MoveBlockedBoundary, got %v", r)
	}
	f.place(5, 0)
	if r := f.move(t, gamemap.North); r != MoveBlockedBoundary {
		t.Fatalf("north outside exit range: expected MoveBlockedBoundary, got %v", r)
	}
	f.assertAt(t, 5, 0)
	if len(f.sw.calls) != 0 {
		t.Fatalf("unexpected map switch: %+v", f.sw.calls)
	}
}

func TestTryMoveThroughExitSwitchesMap(t *testing.T) {
	f := setupMove(t)
	f.place(2, 0)
	if r := f.move(t, gamemap.North); r != MoveMapChanged {
		t.Fatalf("expected MoveMapChanged, got %v", r)
	}
	if len(f.sw.calls) != 1 {
		t.Fatalf("switch calls = %d; want 1", len(f.sw.calls))
	}
	got := f.sw.calls[0]
	want := switchCall{dest: "field", entry: gamemap.Point{X: 1, Y: 1}}
	if got != want {
		t.Fatalf("switch = %+v; want %+v", got, want)
	}
}

func TestTryMoveExitSwitchErrorPropagates(t *testing.T) {
	f := setupMove(t)
	boom := errors.New("boom")
	f.sw.err = boom
	f.place(1, 0)
	if _, err := TryMove(f.nav, f.player, gamemap.North); !errors.Is(err, boom) {
		t.Fatalf("expected switch error, got %v", err)
	}
}

func TestTryMoveBlockedWhileDialogueActive(t *testing.T) {
	f := setupMove(t)
	f.nav.Dialogue.Enqueue("hold on", nil)
	f.nav.Dialogue.Enqueue("still talking", nil)
	f.place(1, 0)

	for _, d := range []gamemap.Direction{gamemap.North, gamemap.South, gamemap.East, gamemap.West} {
		if r := f.move(t, d); r != MoveBlockedDialogue {
			t.Fatalf("%v: expected MoveBlockedDialogue, got %v", d, r)
		}
	}
	f.assertAt(t, 1, 0)
	if f.nav.Dialogue.Current() != "hold on" || f.nav.Dialogue.Pending() != 1 {
		t.Fatal("blocked move must leave the dialogue queue untouched")
	}
	if len(f.sw.calls) != 0 {
		t.Fatal("exit must not fire while dialogue is active")
	}
}

func TestTryMoveIntoNPCStartsDialogue(t *testing.T) {
	f := setupMove(t)
	f.addNPC("Mom", "[PlayerName]! Your friend [Rival] is waiting.", 3, 2)

	if r := f.move(t, gamemap.North); r != MoveInteractNPC {
		t.Fatalf("expected MoveInteractNPC, got %v", r)
	}
	f.assertAt(t, 3, 3)
	want := "Mom: ASH! Your friend May is waiting."
	if got := f.nav.Dialogue.Current(); got != want {
		t.Fatalf("dialogue = %q; want %q", got, want)
	}

	// The NPC talks again only once the first message is gone.
	if r := f.move(t, gamemap.North); r != MoveBlockedDialogue {
		t.Fatalf("expected MoveBlockedDialogue, got %v", r)
	}
	f.nav.Dialogue.Advance()
	if r := f.move(t, gamemap.North); r != MoveInteractNPC {
		t.Fatalf("expected MoveInteractNPC after advance, got %v", r)
	}
}

func TestTryMoveNPCOnWalkableTileStillBlocks(t *testing.T) {
	f := setupMove(t)
	f.nav.Map.Set(4, 3, gamemap.TileTallGrass)
	f.addNPC("Youngster", "Hi.", 4, 3)
	if r := f.move(t, gamemap.East); r != MoveInteractNPC {
		t.Fatalf("expected MoveInteractNPC, got %v", r)
	}
	f.assertAt(t, 3, 3)
}

func TestTryMoveIntoDoorAndSign(t *testing.T) {
	f := setupMove(t)
	f.nav.Map.Set(3, 2, gamemap.TilePlayerHouseDoor)
	f.nav.Map.Set(4, 3, gamemap.TileSign)

	if r := f.move(t, gamemap.North); r != MoveInteractTile {
		t.Fatalf("door: expected MoveInteractTile, got %v", r)
	}
	if got := f.nav.Dialogue.Current(); got != "The door is locked, ASH." {
		t.Fatalf("door text = %q", got)
	}
	f.nav.Dialogue.Advance()

	if r := f.move(t, gamemap.East); r != MoveInteractTile {
		t.Fatalf("sign: expected MoveInteractTile, got %v", r)
	}
	if got := f.nav.Dialogue.Current(); got != "town sign 4,3" {
		t.Fatalf("sign text = %q", got)
	}
	f.assertAt(t, 3, 3)
}

func TestTryMoveDoorWithoutTextIsSolid(t *testing.T) {
	f := setupMove(t)
	f.nav.Map.Set(3, 2, gamemap.TileMartDoor)
	if r := f.move(t, gamemap.North); r != MoveBlockedCollision {
		t.Fatalf("expected MoveBlockedCollision, got %v", r)
	}
	if f.nav.Dialogue.Active() {
		t.Fatal("unknown door must stay silent")
	}
}

func TestLedgeJumpSouth(t *testing.T) {
	f := setupMove(t)
	f.nav.Map.Set(3, 4, gamemap.TileLedgeDown)

	if r := f.move(t, gamemap.South); r != MoveJumpedLedge {
		t.Fatalf("expected MoveJumpedLedge, got %v", r)
	}
	f.assertAt(t, 3, 5)
	if got := f.nav.Dialogue.Current(); got != "Jumped down the ledge!" {
		t.Fatalf("ledge text = %q", got)
	}
}

func TestLedgeOnlyFromAbove(t *testing.T) {
	cases := []struct {
		name string
		x, y int
		dir  gamemap.Direction
	}{
		{"from below", 3, 5, gamemap.North},
		{"from west", 2, 4, gamemap.East},
		{"from east", 4, 4, gamemap.West},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := setupMove(t)
			f.nav.Map.Set(3, 4, gamemap.TileLedgeDown)
			f.place(tc.x, tc.y)
			if r := f.move(t, tc.dir); r != MoveBlockedCollision {
				t.Fatalf("expected MoveBlockedCollision, got %v", r)
			}
			f.assertAt(t, tc.x, tc.y)
		})
	}
}

func TestLedgeLandingBlocked(t *testing.T) {
	t.Run("solid landing", func(t *testing.T) {
		f := setupMove(t)
		f.nav.Map.Set(3, 4, gamemap.TileLedgeDown)
		f.nav.Map.Set(3, 5, gamemap.TileTree)
		if r := f.move(t, gamemap.South); r != MoveBlockedLedge {
			t.Fatalf("expected MoveBlockedLedge, got %v", r)
		}
		f.assertAt(t, 3, 3)
	})
	t.Run("off map", func(t *testing.T) {
		f := setupMove(t)
		f.nav.Map.Set(3, 7, gamemap.TileLedgeDown)
		f.place(3, 6)
		if r := f.move(t, gamemap.South); r != MoveBlockedLedge {
			t.Fatalf("expected MoveBlockedLedge, got %v", r)
		}
		f.assertAt(t, 3, 6)
	})
	t.Run("npc on landing", func(t *testing.T) {
		f := setupMove(t)
		f.nav.Map.Set(3, 4, gamemap.TileLedgeDown)
		f.addNPC("Youngster", "Hey!", 3, 5)
		if r := f.move(t, gamemap.South); r != MoveBlockedLedge {
			t.Fatalf("expected MoveBlockedLedge, got %v", r)
		}
		f.assertAt(t, 3, 3)
		if f.nav.Dialogue.Active() {
			t.Fatal("blocked jump must not queue dialogue")
		}
	})
}

func TestLedgeMayLandOnLedge(t *testing.T) {
	f := setupMove(t)
	f.nav.Map.Set(3, 4, gamemap.TileLedgeDown)
	f.nav.Map.Set(3, 5, gamemap.TileLedgeDown)
	if r := f.move(t, gamemap.South); r != MoveJumpedLedge {
		t.Fatalf("expected MoveJumpedLedge, got %v", r)
	}
	f.assertAt(t, 3, 5)
}

func TestTryMoveInvalidInput(t *testing.T) {
	f := setupMove(t)
	if _, err := TryMove(f.nav, f.player, gamemap.Direction{DX: 1, DY: 1}); !errors.Is(err, ErrInvalidDirection) {
		t.Fatalf("diagonal: expected ErrInvalidDirection, got %v", err)
	}
	if _, err := TryMove(f.nav, f.player, gamemap.Direction{}); !errors.Is(err, ErrInvalidDirection) {
		t.Fatalf("zero: expected ErrInvalidDirection, got %v", err)
	}

	bare := f.nav.World.CreateEntity()
	if _, err := TryMove(f.nav, bare, gamemap.East); !errors.Is(err, ErrInvalidEntity) {
		t.Fatalf("no position: expected ErrInvalidEntity, got %v", err)
	}
	f.nav.World.DestroyEntity(f.player)
	if _, err := TryMove(f.nav, f.player, gamemap.East); !errors.Is(err, ErrInvalidEntity) {
		t.Fatalf("dead entity: expected ErrInvalidEntity, got %v", err)
	}
}

func TestMoveResultString(t *testing.T) {
	if MoveJumpedLedge.String() != "jumped_ledge" || MoveMapChanged.String() != "map_changed" {
		t.Fatal("unexpected MoveResult names")
	}
	if !MoveEncounter.Moved() || MoveInteractNPC.Moved() {
		t.Fatal("Moved() mismatch")
	}
}
