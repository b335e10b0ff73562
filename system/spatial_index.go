package system

import (
	"github.com/lixenwraith/boxpusher/core"
	"github.com/lixenwraith/boxpusher/engine"
)

// SpatialIndex maps occupied cells to entities, one map per collision category.
// Rebuilt for every input event; never cached across ticks
type SpatialIndex struct {
	movable   map[core.Point]core.Entity
	immovable map[core.Point]core.Entity
}

// NewSpatialIndex returns an empty index
func NewSpatialIndex() *SpatialIndex {
	return &SpatialIndex{
		movable:   make(map[core.Point]core.Entity),
		immovable: make(map[core.Point]core.Entity),
	}
}

// BuildSpatialIndex snapshots Movable and Immovable positions.
// Two entities of one category on the same cell is an authoring error: the later id wins
func BuildSpatialIndex(w *engine.World) *SpatialIndex {
	idx := NewSpatialIndex()
	c := w.Components

	for _, e := range w.Query().With(c.Movable).With(c.Position).Execute() {
		if pos, ok := c.Position.Get(e); ok {
			idx.movable[core.Point{X: int(pos.X), Y: int(pos.Y)}] = e
		}
	}
	for _, e := range w.Query().With(c.Immovable).With(c.Position).Execute() {
		if pos, ok := c.Position.Get(e); ok {
			idx.immovable[core.Point{X: int(pos.X), Y: int(pos.Y)}] = e
		}
	}
	return idx
}

// AddMovable indexes e at p
func (i *SpatialIndex) AddMovable(p core.Point, e core.Entity) {
	i.movable[p] = e
}

// AddImmovable indexes e at p
func (i *SpatialIndex) AddImmovable(p core.Point, e core.Entity) {
	i.immovable[p] = e
}

// MovableAt returns the movable entity occupying p
func (i *SpatialIndex) MovableAt(p core.Point) (core.Entity, bool) {
	e, ok := i.movable[p]
	return e, ok
}

// ImmovableAt returns the immovable entity occupying p
func (i *SpatialIndex) ImmovableAt(p core.Point) (core.Entity, bool) {
	e, ok := i.immovable[p]
	return e, ok
}

// Len returns movable and immovable counts
func (i *SpatialIndex) Len() (movable, immovable int) {
	return len(i.movable), len(i.immovable)
}
