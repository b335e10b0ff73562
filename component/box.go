package component

// BoxColour pairs boxes with the spots they score on
type BoxColour uint8

const (
	BoxColourRed BoxColour = iota
	BoxColourBlue
	BoxColourGrey
)

// String returns the lowercase name used in image paths
func (c BoxColour) String() string {
	switch c {
	case BoxColourRed:
		return "red"
	case BoxColourBlue:
		return "blue"
	case BoxColourGrey:
		return "grey"
	}
	return "unknown"
}

// BoxComponent is a pushable crate; the entity also carries MovableComponent
type BoxComponent struct {
	Colour BoxColour
}

// BoxSpotComponent is a stationary goal cell accepting a box of the same colour
type BoxSpotComponent struct {
	Colour BoxColour
}
