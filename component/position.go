package component

// PositionComponent places an entity on the grid; Z is draw order only
type PositionComponent struct {
	X, Y uint8
	Z    uint8
}
