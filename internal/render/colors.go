package render

import (
	"github.com/gdamore/tcell/v2"

	"tilequest/internal/gamemap"
)

// TileLook is how one tile id is drawn: a glyph two columns wide over a
// background colour. Emoji carry their own colours, so plain terrain uses
// blank glyphs and lets the background show.
type TileLook struct {
	Glyph string
	BG    tcell.Color
}

var (
	colPath        = tcell.NewRGBColor(136, 192, 112)
	colGrass       = tcell.NewRGBColor(104, 168, 88)
	colTallGrass   = tcell.NewRGBColor(64, 128, 72)
	colTree        = tcell.NewRGBColor(48, 96, 48)
	colWater       = tcell.NewRGBColor(80, 128, 200)
	colSand        = tcell.NewRGBColor(216, 200, 160)
	colWallLight   = tcell.NewRGBColor(200, 160, 120)
	colWallDark    = tcell.NewRGBColor(160, 128, 96)
	colRoofRed     = tcell.NewRGBColor(192, 80, 48)
	colRoofBlue    = tcell.NewRGBColor(80, 96, 160)
	colRoofGray    = tcell.NewRGBColor(128, 128, 128)
	colRoofMart    = tcell.NewRGBColor(60, 120, 180)
	colDoor        = tcell.NewRGBColor(96, 64, 32)
	colSign        = tcell.NewRGBColor(144, 112, 80)
	colLedge       = tcell.NewRGBColor(120, 176, 104)
	colFence       = tcell.NewRGBColor(160, 144, 128)
	colCenterWall  = tcell.NewRGBColor(230, 190, 190)
	colMartWall    = tcell.NewRGBColor(180, 200, 230)
	colDialogueBG  = tcell.NewRGBColor(40, 40, 40)
	colDialogueBdr = tcell.NewRGBColor(100, 100, 100)
	colProfessor   = tcell.NewRGBColor(100, 100, 180)
	colPlayerBoy   = tcell.NewRGBColor(224, 80, 64)
	colPlayerGirl  = tcell.NewRGBColor(230, 120, 150)
)

// TileLooks maps every tile id the maps use to its appearance.
var TileLooks = map[gamemap.Tile]TileLook{
	gamemap.TilePath:            {"  ", colPath},
	gamemap.TileGrass:           {"  ", colGrass},
	gamemap.TileTallGrass:       {"🌾", colTallGrass},
	gamemap.TileWater:           {"🌊", colWater},
	gamemap.TileTree:            {"🌳", colTree},
	gamemap.TileFlowerRed:       {"🌺", colGrass},
	gamemap.TileFlowerYellow:    {"🌼", colGrass},
	gamemap.TileSand:            {"  ", colSand},
	gamemap.TileBuildingWall:    {"🧱", colWallDark},
	gamemap.TilePlayerHouseWall: {"  ", colWallLight},
	gamemap.TilePlayerHouseDoor: {"🚪", colDoor},
	gamemap.TileRivalHouseWall:  {"  ", colWallLight},
	gamemap.TileRivalHouseDoor:  {"🚪", colDoor},
	gamemap.TileLabWall:         {"  ", colWallLight},
	gamemap.TileLabDoor:         {"🚪", colDoor},
	gamemap.TileRoofPlayer:      {"  ", colRoofRed},
	gamemap.TileRoofRival:       {"  ", colRoofBlue},
	gamemap.TileRoofLab:         {"  ", colRoofGray},
	gamemap.TileSign:            {"🪧", colSign},
	gamemap.TileLedgeDown:       {"▁▁", colLedge},
	gamemap.TileFence:           {"╫╫", colFence},
	gamemap.TileCenterWall:      {"  ", colCenterWall},
	gamemap.TileCenterDoor:      {"🚪", colDoor},
	gamemap.TileMartWall:        {"  ", colMartWall},
	gamemap.TileMartDoor:        {"🚪", colDoor},
	gamemap.TileRoofCenter:      {"  ", colRoofRed},
	gamemap.TileRoofMart:        {"  ", colRoofMart},
}

// unknownLook flags tile ids with no entry so authoring mistakes are visible.
var unknownLook = TileLook{"??", tcell.ColorDarkMagenta}

// LookOf returns the appearance of t.
func LookOf(t gamemap.Tile) TileLook {
	if l, ok := TileLooks[t]; ok {
		return l
	}
	return unknownLook
}
