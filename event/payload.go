package event

import "github.com/lixenwraith/boxpusher/core"

// EntityMovedPayload identifies the entity that moved
type EntityMovedPayload struct {
	Entity core.Entity
}

// BoxPlacedPayload reports a box resting on a spot
type BoxPlacedPayload struct {
	Box     core.Entity
	Spot    core.Entity
	Correct bool // Spot colour matches box colour
}

// GameWonPayload carries the final move count
type GameWonPayload struct {
	Moves uint32
}
