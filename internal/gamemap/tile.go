package gamemap

// Tile is a map cell identifier. Values match the authoring ids used in the
// static map tables.
type Tile uint8

const (
	TilePath         Tile = 0
	TileGrass        Tile = 1
	TileTallGrass    Tile = 2
	TileWater        Tile = 3
	TileTree         Tile = 4
	TileFlowerRed    Tile = 5
	TileFlowerYellow Tile = 6
	TileSand         Tile = 7

	TileBuildingWall    Tile = 10
	TilePlayerHouseWall Tile = 11
	TilePlayerHouseDoor Tile = 12
	TileRivalHouseWall  Tile = 13
	TileRivalHouseDoor  Tile = 14
	TileLabWall         Tile = 15
	TileLabDoor         Tile = 16
	TileRoofPlayer      Tile = 17
	TileRoofRival       Tile = 18
	TileRoofLab         Tile = 19
	TileSign            Tile = 20
	TileLedgeDown       Tile = 21
	TileFence           Tile = 22
	TileCenterWall      Tile = 23
	TileCenterDoor      Tile = 24
	TileMartWall        Tile = 25
	TileMartDoor        Tile = 26
	TileRoofCenter      Tile = 27
	TileRoofMart        Tile = 28

	TileNPCSpawn    Tile = 98
	TilePlayerSpawn Tile = 99
)

// Category groups tiles by how the navigation engine treats them.
type Category uint8

const (
	CategoryUnknown Category = iota
	CategoryTerrain
	CategoryEncounter
	CategoryWater
	CategoryObstruction
	CategoryDoor
	CategorySign
	CategoryLedge
	CategorySpawnMarker
)

func (c Category) String() string {
	switch c {
	case CategoryTerrain:
		return "terrain"
	case CategoryEncounter:
		return "encounter"
	case CategoryWater:
		return "water"
	case CategoryObstruction:
		return "obstruction"
	case CategoryDoor:
		return "door"
	case CategorySign:
		return "sign"
	case CategoryLedge:
		return "ledge"
	case CategorySpawnMarker:
		return "spawn_marker"
	default:
		return "unknown"
	}
}

var categories = map[Tile]Category{
	TilePath:         CategoryTerrain,
	TileGrass:        CategoryTerrain,
	TileFlowerRed:    CategoryTerrain,
	TileFlowerYellow: CategoryTerrain,
	TileSand:         CategoryTerrain,
	TileTallGrass:    CategoryEncounter,
	TileWater:        CategoryWater,

	TileTree:            CategoryObstruction,
	TileFence:           CategoryObstruction,
	TileBuildingWall:    CategoryObstruction,
	TilePlayerHouseWall: CategoryObstruction,
	TileRivalHouseWall:  CategoryObstruction,
	TileLabWall:         CategoryObstruction,
	TileCenterWall:      CategoryObstruction,
	TileMartWall:        CategoryObstruction,
	TileRoofPlayer:      CategoryObstruction,
	TileRoofRival:       CategoryObstruction,
	TileRoofLab:         CategoryObstruction,
	TileRoofCenter:      CategoryObstruction,
	TileRoofMart:        CategoryObstruction,

	TilePlayerHouseDoor: CategoryDoor,
	TileRivalHouseDoor:  CategoryDoor,
	TileLabDoor:         CategoryDoor,
	TileCenterDoor:      CategoryDoor,
	TileMartDoor:        CategoryDoor,

	TileSign:      CategorySign,
	TileLedgeDown: CategoryLedge,

	TileNPCSpawn:    CategorySpawnMarker,
	TilePlayerSpawn: CategorySpawnMarker,
}

// CategoryOf classifies t. Unrecognised ids map to CategoryUnknown.
func CategoryOf(t Tile) Category {
	return categories[t]
}

// Walkable reports whether an entity may stand on t. Only terrain and
// encounter tiles are walkable; everything else, including unknown ids,
// is not.
func Walkable(t Tile) bool {
	switch CategoryOf(t) {
	case CategoryTerrain, CategoryEncounter:
		return true
	}
	return false
}

// LedgeDirection returns the single direction in which ledge tile t may be
// crossed. ok is false for non-ledge tiles.
func LedgeDirection(t Tile) (d Direction, ok bool) {
	if t == TileLedgeDown {
		return South, true
	}
	return Direction{}, false
}
