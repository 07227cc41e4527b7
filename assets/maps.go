package assets

import "tilequest/internal/gamemap"

// Map identifiers.
const (
	MapLittleroot = "littleroot_town"
	MapRoute101   = "route_101"
	MapOldale     = "oldale_town"
)

// StartMap is where a new player is placed after onboarding.
const StartMap = MapLittleroot

// Two-letter shorthands keep the grids below readable.
const (
	pa = gamemap.TilePath
	gr = gamemap.TileGrass
	tg = gamemap.TileTallGrass
	wa = gamemap.TileWater
	tr = gamemap.TileTree
	fr = gamemap.TileFlowerRed
	fy = gamemap.TileFlowerYellow
	sg = gamemap.TileSign
	fn = gamemap.TileFence
	ld = gamemap.TileLedgeDown
	ns = gamemap.TileNPCSpawn
	ps = gamemap.TilePlayerSpawn

	hw = gamemap.TilePlayerHouseWall
	hd = gamemap.TilePlayerHouseDoor
	vw = gamemap.TileRivalHouseWall
	vd = gamemap.TileRivalHouseDoor
	lw = gamemap.TileLabWall
	lb = gamemap.TileLabDoor
	cw = gamemap.TileCenterWall
	cd = gamemap.TileCenterDoor
	mw = gamemap.TileMartWall
	md = gamemap.TileMartDoor
	rp = gamemap.TileRoofPlayer
	rv = gamemap.TileRoofRival
	rl = gamemap.TileRoofLab
	rc = gamemap.TileRoofCenter
	rm = gamemap.TileRoofMart
)

// Maps returns the canonical definitions of every map in the game.
// The registry copies the rows; nothing else should mutate them.
func Maps() []gamemap.Definition {
	return []gamemap.Definition{
		{
			ID:   MapLittleroot,
			Rows: littlerootRows,
			Exits: []gamemap.ExitZone{
				{Edge: gamemap.EdgeNorth, Min: 11, Max: 15, Dest: MapRoute101, DestEdge: gamemap.EdgeSouth, DestOffset: 5},
			},
		},
		{
			ID:   MapRoute101,
			Rows: route101Rows,
			Exits: []gamemap.ExitZone{
				{Edge: gamemap.EdgeSouth, Min: 5, Max: 9, Dest: MapLittleroot, DestEdge: gamemap.EdgeNorth, DestOffset: 11},
				{Edge: gamemap.EdgeNorth, Min: 5, Max: 9, Dest: MapOldale, DestEdge: gamemap.EdgeSouth, DestOffset: 9},
			},
		},
		{
			ID:   MapOldale,
			Rows: oldaleRows,
			Exits: []gamemap.ExitZone{
				{Edge: gamemap.EdgeSouth, Min: 9, Max: 13, Dest: MapRoute101, DestEdge: gamemap.EdgeNorth, DestOffset: 5},
			},
		},
	}
}

// Littleroot Town. Rows 18 and 19 carry an extra path tile before the
// border tree to keep the grid rectangular.
var littlerootRows = [][]gamemap.Tile{
	{tr, tr, tr, tr, tr, tr, tr, tr, tr, tr, tr, pa, pa, pa, pa, pa, tr, tr, tr, tr, tr, tr, tr, tr, tr, tr, tr, tr, tr, tr},
	{tr, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, rl, rl, rl, rl, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, tr},
	{tr, pa, fy, pa, pa, pa, pa, pa, pa, pa, pa, lw, lb, lw, lw, pa, pa, pa, pa, pa, pa, pa, fr, pa, pa, pa, pa, pa, pa, tr},
	{tr, pa, pa, pa, pa, tr, tr, pa, pa, pa, pa, lw, ns, lw, lw, pa, pa, pa, pa, tr, tr, pa, pa, pa, pa, pa, pa, pa, pa, tr},
	{tr, pa, pa, pa, pa, tr, tr, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, tr, tr, pa, pa, pa, pa, pa, pa, pa, pa, tr},
	{tr, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, tr},
	{tr, pa, pa, sg, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, sg, pa, pa, pa, pa, pa, pa, tr},
	{tr, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, tr},
	{tr, fn, fn, fn, fn, fn, pa, fn, fn, fn, fn, fn, fn, fn, fn, fn, fn, fn, pa, fn, fn, fn, fn, fn, fn, fn, fn, fn, pa, tr},
	{tr, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, tr},
	{tr, pa, rp, rp, rp, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, rv, rv, rv, pa, pa, pa, pa, pa, tr},
	{tr, pa, hw, hd, hw, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, vw, vd, vw, pa, pa, pa, pa, pa, tr},
	{tr, pa, hw, ns, hw, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, vw, vw, vw, pa, pa, pa, pa, pa, tr},
	{tr, pa, pa, ps, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, tr},
	{tr, pa, pa, pa, pa, pa, pa, pa, pa, tr, tr, pa, pa, pa, pa, pa, pa, tr, tr, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, tr},
	{tr, pa, pa, pa, pa, pa, pa, pa, pa, tr, tr, pa, pa, pa, pa, pa, pa, tr, tr, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, tr},
	{tr, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, ld, ld, ld, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, tr},
	{tr, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, tr},
	{tr, tg, tg, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, tg, tg, tg, pa, tr},
	{tr, tg, tg, pa, pa, pa, pa, wa, wa, wa, pa, pa, pa, pa, pa, pa, wa, wa, wa, pa, pa, pa, pa, pa, pa, tg, tg, tg, pa, tr},
	{tr, tr, tr, tr, tr, tr, tr, wa, wa, wa, tr, tr, tr, tr, tr, tr, wa, wa, wa, tr, tr, tr, tr, tr, tr, tr, tr, tr, tr, tr},
}

// Route 101 connects Littleroot (south) and Oldale (north).
var route101Rows = [][]gamemap.Tile{
	{tr, tr, tr, tr, tr, pa, pa, pa, pa, pa, tr, tr, tr, tr, tr},
	{tr, tg, tg, tg, pa, pa, gr, gr, pa, pa, pa, tg, tg, tg, tr},
	{tr, tg, gr, tg, pa, gr, gr, ns, gr, gr, pa, tg, gr, tg, tr},
	{tr, tg, gr, tg, pa, gr, gr, gr, gr, gr, pa, tg, gr, tg, tr},
	{tr, tr, gr, tr, pa, pa, pa, pa, pa, pa, pa, tr, gr, tr, tr},
	{tr, gr, gr, gr, pa, gr, gr, gr, gr, gr, pa, gr, gr, gr, tr},
	{tr, gr, tr, gr, pa, gr, tg, tg, tg, gr, pa, gr, tr, gr, tr},
	{tr, gr, tr, gr, pa, gr, tg, ns, tg, gr, pa, gr, tr, gr, tr},
	{tr, gr, tr, gr, pa, gr, tg, tg, tg, gr, pa, gr, tr, gr, tr},
	{tr, gr, gr, gr, pa, gr, gr, gr, gr, gr, pa, gr, gr, gr, tr},
	{tr, tr, tr, pa, pa, pa, pa, pa, pa, pa, pa, pa, tr, tr, tr},
	{tr, tg, tg, pa, gr, gr, gr, gr, gr, gr, gr, pa, tg, tg, tr},
	{tr, gr, tg, pa, gr, tg, tg, tg, tg, tg, gr, pa, tg, gr, tr},
	{tr, gr, gr, pa, gr, tg, gr, gr, gr, tg, gr, pa, gr, gr, tr},
	{tr, gr, gr, pa, gr, tg, gr, ns, gr, tg, gr, pa, gr, gr, tr},
	{tr, gr, gr, pa, gr, tg, gr, gr, gr, tg, gr, pa, gr, gr, tr},
	{tr, tr, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, tr, tr},
	{tr, tg, pa, gr, gr, gr, tg, tg, tg, gr, gr, gr, pa, tg, tr},
	{tr, tg, pa, gr, tg, tg, tg, gr, tg, tg, tg, gr, pa, tg, tr},
	{tr, pa, pa, gr, gr, gr, gr, gr, gr, gr, gr, gr, pa, pa, tr},
	{tr, pa, gr, gr, tr, tr, tr, ns, tr, tr, tr, gr, gr, pa, tr},
	{tr, pa, gr, gr, tr, pa, pa, pa, pa, pa, tr, gr, gr, pa, tr},
	{tr, pa, pa, pa, tr, pa, gr, gr, gr, pa, tr, pa, pa, pa, tr},
	{tr, tr, tr, tr, tr, pa, gr, gr, gr, pa, tr, tr, tr, tr, tr},
	{tr, tr, tr, tr, tr, pa, pa, pa, pa, pa, tr, tr, tr, tr, tr},
}

// Oldale Town.
var oldaleRows = [][]gamemap.Tile{
	{tr, tr, tr, tr, tr, tr, tr, tr, tr, tr, tr, tr, tr, tr, tr, tr, tr, tr, tr, tr, tr, tr, tr, tr, tr},
	{tr, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, tr},
	{tr, pa, gr, gr, rc, rc, rc, pa, gr, gr, rm, rm, rm, pa, pa, sg, pa, gr, gr, gr, gr, gr, gr, pa, tr},
	{tr, pa, gr, gr, cw, cd, cw, pa, gr, gr, mw, md, mw, pa, ns, pa, pa, gr, gr, gr, gr, gr, gr, pa, tr},
	{tr, pa, gr, gr, cw, ns, cw, pa, gr, gr, mw, mw, mw, pa, pa, pa, pa, gr, gr, fy, gr, fr, gr, pa, tr},
	{tr, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, tr},
	{tr, pa, gr, gr, gr, gr, gr, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, gr, gr, gr, gr, gr, gr, pa, tr},
	{tr, pa, gr, tr, tr, tr, gr, pa, fn, fn, fn, fn, fn, fn, fn, pa, gr, tr, tr, tr, tr, tr, gr, pa, tr},
	{tr, pa, gr, tr, ns, tr, gr, pa, pa, pa, pa, pa, pa, pa, pa, pa, gr, tr, ns, tr, gr, tr, gr, pa, tr},
	{tr, pa, gr, tr, tr, tr, gr, pa, pa, pa, pa, pa, pa, pa, pa, pa, gr, tr, tr, tr, gr, tr, gr, pa, tr},
	{tr, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, tr},
	{tr, pa, gr, gr, gr, gr, gr, gr, gr, pa, pa, pa, pa, pa, gr, gr, gr, gr, gr, gr, gr, gr, gr, pa, tr},
	{tr, pa, gr, tg, tg, gr, gr, gr, gr, pa, sg, pa, pa, pa, gr, tg, tg, gr, gr, fr, gr, fy, gr, pa, tr},
	{tr, pa, gr, tg, tg, gr, gr, gr, gr, pa, pa, pa, pa, pa, gr, tg, tg, gr, gr, gr, gr, gr, gr, pa, tr},
	{tr, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, tr},
	{tr, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, pa, tr},
	{tr, tr, tr, tr, tr, tr, tr, tr, tr, pa, pa, pa, pa, pa, tr, tr, tr, tr, tr, tr, tr, tr, tr, tr, tr},
	{tr, tr, tr, tr, tr, tr, tr, tr, tr, pa, gr, gr, gr, pa, tr, tr, tr, tr, tr, tr, tr, tr, tr, tr, tr},
	{tr, tr, tr, tr, tr, tr, tr, tr, tr, pa, gr, gr, gr, pa, tr, tr, tr, tr, tr, tr, tr, tr, tr, tr, tr},
	{tr, tr, tr, tr, tr, tr, tr, tr, tr, pa, pa, pa, pa, pa, tr, tr, tr, tr, tr, tr, tr, tr, tr, tr, tr},
}
