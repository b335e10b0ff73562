package engine

// System is an interface that all systems must implement
type System interface {
	// Name identifies the system in logs
	Name() string

	// Priority orders execution; lower values run first
	Priority() int

	// Update runs one simulation tick
	Update()
}

// SystemBase provides common dependency for all systems
// Embed in system struct to eliminate boilerplate
type SystemBase struct {
	World     *World
	Resource  Resource
	Component ComponentStore
}

// NewSystemBase initializes base dependency from world
// Call once in system constructor
func NewSystemBase(w *World) SystemBase {
	return SystemBase{
		World:     w,
		Resource:  w.Resources,
		Component: w.Components,
	}
}
