package component

// MovableComponent marks an entity that can be pushed
type MovableComponent struct{}

// ImmovableComponent marks an entity that blocks any push entering its cell
type ImmovableComponent struct{}

// PlayerComponent marks the single entity that originates movement
type PlayerComponent struct{}
