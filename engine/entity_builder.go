package engine

import "github.com/lixenwraith/boxpusher/core"

// EntityBuilder provides a fluent, type-safe interface for constructing entities with components.
// It reserves an entity ID upfront; components are written to stores as they are added.
//
// Example usage:
//
//	e := engine.With(
//	    engine.With(world.NewEntity(), world.Components.Position, pos),
//	    world.Components.Movable, component.MovableComponent{},
//	).Build()
type EntityBuilder struct {
	world  *World
	entity core.Entity
	built  bool
}

// NewEntity creates a new EntityBuilder with a reserved entity ID
func (w *World) NewEntity() *EntityBuilder {
	return &EntityBuilder{
		world:  w,
		entity: w.CreateEntity(),
	}
}

// With adds a component of type T to the entity being built.
// Panics if called after Build().
func With[T any](eb *EntityBuilder, store *Store[T], component T) *EntityBuilder {
	if eb.built {
		panic("entity already built - cannot add components after Build()")
	}
	store.Set(eb.entity, component)
	return eb
}

// Entity returns the reserved id without finalizing the builder
func (eb *EntityBuilder) Entity() core.Entity {
	return eb.entity
}

// Build finalizes entity construction and returns the entity ID
func (eb *EntityBuilder) Build() core.Entity {
	eb.built = true
	return eb.entity
}
