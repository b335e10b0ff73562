package parameter

import "time"

// Map geometry
const (
	// MapWidth and MapHeight are the default grid extents; cells are 0..N-1,
	// N itself is the out-of-grid boundary marker used by the movement scan
	MapWidth  = 8
	MapHeight = 9

	// TileWidth is the screen-space edge of one grid cell
	TileWidth = 32
)

// Animation
const (
	// AnimationPeriod is the full cycle of an animated renderable
	AnimationPeriod = 1000 * time.Millisecond

	// AnimationFrameDuration splits the period into four equal frames
	AnimationFrameDuration = 250 * time.Millisecond
)

// Depth layers, lower draws first
const (
	ZFloor   uint8 = 5
	ZBoxSpot uint8 = 9
	ZWall    uint8 = 10
	ZBox     uint8 = 10
	ZPlayer  uint8 = 10
)
