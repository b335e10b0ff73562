package engine

import (
	"github.com/lixenwraith/boxpusher/component"
)

// ComponentStore provides cached pointers to typed component stores
// Initialized once per world; pointers remain valid for its lifetime
type ComponentStore struct {
	// Spatial
	Position *Store[component.PositionComponent]

	// Collision categories
	Movable   *Store[component.MovableComponent]
	Immovable *Store[component.ImmovableComponent]

	// Gameplay
	Player  *Store[component.PlayerComponent]
	Wall    *Store[component.WallComponent]
	Box     *Store[component.BoxComponent]
	BoxSpot *Store[component.BoxSpotComponent]

	// Visual
	Renderable *Store[component.RenderableComponent]
}

func newComponentStore() ComponentStore {
	return ComponentStore{
		Position:   NewStore[component.PositionComponent](),
		Movable:    NewStore[component.MovableComponent](),
		Immovable:  NewStore[component.ImmovableComponent](),
		Player:     NewStore[component.PlayerComponent](),
		Wall:       NewStore[component.WallComponent](),
		Box:        NewStore[component.BoxComponent](),
		BoxSpot:    NewStore[component.BoxSpotComponent](),
		Renderable: NewStore[component.RenderableComponent](),
	}
}

// all lists every store for uniform lifecycle operations
func (cs ComponentStore) all() []AnyStore {
	return []AnyStore{
		cs.Position,
		cs.Movable,
		cs.Immovable,
		cs.Player,
		cs.Wall,
		cs.Box,
		cs.BoxSpot,
		cs.Renderable,
	}
}
