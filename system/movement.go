package system

import (
	"github.com/lixenwraith/boxpusher/component"
	"github.com/lixenwraith/boxpusher/core"
)

// MoveOutcome classifies the result of resolving one input
type MoveOutcome uint8

const (
	// OutcomeIdle means no input was queued this tick
	OutcomeIdle MoveOutcome = iota
	// OutcomeNoop means the input resolved to an empty chain
	OutcomeNoop
	// OutcomeMoved means the chain is committed
	OutcomeMoved
	// OutcomeBlocked means the chain ran into an immovable
	OutcomeBlocked
	// OutcomeEdge means the scan reached the grid edge with no free cell
	OutcomeEdge
)

func (o MoveOutcome) String() string {
	switch o {
	case OutcomeIdle:
		return "idle"
	case OutcomeNoop:
		return "noop"
	case OutcomeMoved:
		return "moved"
	case OutcomeBlocked:
		return "blocked"
	case OutcomeEdge:
		return "edge"
	}
	return "unknown"
}

// Resolution is the resolver's verdict for one directional input
type Resolution struct {
	Direction core.Direction
	Outcome   MoveOutcome
	// Chain lists entities to shift, player first then pushed entities in scan order.
	// Empty unless Outcome is OutcomeMoved
	Chain []core.Entity
}

// Resolve walks the grid line from origin toward the boundary in dir.
// The range runs from the origin coordinate to the boundary inclusive:
// 0 for Up/Left, height for Down, width for Right. width and height are
// one past the last cell, so those boundaries are never occupied
func Resolve(idx *SpatialIndex, origin component.PositionComponent, dir core.Direction, width, height uint8) Resolution {
	res := Resolution{Direction: dir, Outcome: OutcomeNoop}

	var start, end, step int
	switch dir {
	case core.DirUp:
		start, end, step = int(origin.Y), 0, -1
	case core.DirDown:
		start, end, step = int(origin.Y), int(height), 1
	case core.DirLeft:
		start, end, step = int(origin.X), 0, -1
	case core.DirRight:
		start, end, step = int(origin.X), int(width), 1
	default:
		return res
	}

	chain := make([]core.Entity, 0, 4)
	for v := start; (step > 0 && v <= end) || (step < 0 && v >= end); v += step {
		cell := core.Point{X: int(origin.X), Y: v}
		if dir.Horizontal() {
			cell = core.Point{X: v, Y: int(origin.Y)}
		}

		if e, ok := idx.MovableAt(cell); ok {
			chain = append(chain, e)
			continue
		}
		if _, ok := idx.ImmovableAt(cell); ok {
			res.Outcome = OutcomeBlocked
			return res
		}

		if len(chain) > 0 {
			res.Outcome = OutcomeMoved
			res.Chain = chain
		}
		return res
	}

	// Range exhausted without a free cell: only reachable toward coordinate 0
	res.Outcome = OutcomeEdge
	return res
}
