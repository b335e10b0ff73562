package core

// Point represents a 2D coordinate, grid cells or screen-space destinations
type Point struct {
	X, Y int
}
