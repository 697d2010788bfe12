package entity

// Tile is a single cell classification in the collision layer
type Tile int

const (
	TileAir Tile = iota
	TileSolid

	TileSpikesLeft
	TileSpikesRight
	TileSpikesUp
	TileSpikesDown

	TileSpawnPoint

	TileGoalLeft
	TileGoalRight
	TileGoalUp
	TileGoalDown

	TileSpikeAllSides
)

// IsSolid reports whether the tile blocks movement
func (t Tile) IsSolid() bool {
	switch t {
	case TileSolid, TileSpikesLeft, TileSpikesRight, TileSpikesUp, TileSpikesDown, TileSpikeAllSides:
		return true
	}
	return false
}

// IsWall reports whether the tile counts as a plain wall.
// Spikes are solid but not walls, so they cannot be wall-jumped off.
func (t Tile) IsWall() bool {
	return t == TileSolid
}

// IsLethal reports whether the tile kills on a matching-direction contact
func (t Tile) IsLethal() bool {
	switch t {
	case TileSpikesLeft, TileSpikesRight, TileSpikesUp, TileSpikesDown, TileSpikeAllSides:
		return true
	}
	return false
}

// IsGoal reports whether the tile marks level completion
func (t Tile) IsGoal() bool {
	switch t {
	case TileGoalLeft, TileGoalRight, TileGoalUp, TileGoalDown:
		return true
	}
	return false
}

// Facing returns the facing direction for directional tiles (spikes, goals)
// and false for tiles without one. TileSpikeAllSides has no single facing.
func (t Tile) Facing() (Direction, bool) {
	switch t {
	case TileSpikesLeft, TileGoalLeft:
		return DirLeft, true
	case TileSpikesRight, TileGoalRight:
		return DirRight, true
	case TileSpikesUp, TileGoalUp:
		return DirUp, true
	case TileSpikesDown, TileGoalDown:
		return DirDown, true
	}
	return DirLeft, false
}

// Tilemap is the read-only tile lookup surface for one level.
// Coordinates are tile indices; world units map 1:1 onto tiles.
type Tilemap struct {
	width  int
	height int
	tiles  []Tile
}

// NewTilemap creates an all-air tilemap of the given size
func NewTilemap(width, height int) *Tilemap {
	if width <= 0 || height <= 0 {
		panic("entity: tilemap dimensions must be positive")
	}
	return &Tilemap{
		width:  width,
		height: height,
		tiles:  make([]Tile, width*height),
	}
}

// Width returns the map width in tiles
func (m *Tilemap) Width() int {
	return m.width
}

// Height returns the map height in tiles
func (m *Tilemap) Height() int {
	return m.height
}

// GetTile returns the tile at the given cell. Out-of-range cells are air;
// the bounds check in ContainsBounds handles the map edge.
func (m *Tilemap) GetTile(x, y int) Tile {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return TileAir
	}
	return m.tiles[y*m.width+x]
}

// SetTile sets the tile at the given cell
func (m *Tilemap) SetTile(x, y int, tile Tile) {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return
	}
	m.tiles[y*m.width+x] = tile
}

// ContainsBounds reports whether the bounds lie fully inside the map
func (m *Tilemap) ContainsBounds(b Bounds) bool {
	return b.Min.X >= 0 && b.Min.Y >= 0 &&
		b.Max.X <= float64(m.width) && b.Max.Y <= float64(m.height)
}

// SpawnPoint returns the position of the first spawn tile, scanning rows
// top to bottom. ok is false if the map has none.
func (m *Tilemap) SpawnPoint() (Vec2, bool) {
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			if m.GetTile(x, y) == TileSpawnPoint {
				return Vec2{X: float64(x), Y: float64(y)}, true
			}
		}
	}
	return Vec2{}, false
}
