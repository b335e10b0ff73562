package engine

import (
	"sync"
	"sync/atomic"

	"github.com/lixenwraith/boxpusher/component"
	"github.com/lixenwraith/boxpusher/core"
	"github.com/lixenwraith/boxpusher/event"
)

// World contains all entities, their components, and global resources
type World struct {
	mu           sync.RWMutex
	nextEntityID core.Entity

	Components ComponentStore
	Resources  Resource

	frame atomic.Int64

	systems     []System
	updateMutex sync.Mutex
}

// NewWorld creates a world with default resources and empty stores
func NewWorld() *World {
	return &World{
		nextEntityID: 1,
		Components:   newComponentStore(),
		Resources:    NewResource(),
		systems:      make([]System, 0),
	}
}

// CreateEntity reserves a new entity ID
func (w *World) CreateEntity() core.Entity {
	w.mu.Lock()
	defer w.mu.Unlock()

	id := w.nextEntityID
	w.nextEntityID++
	return id
}

// DestroyEntity removes all components associated with an entity
func (w *World) DestroyEntity(e core.Entity) {
	for _, store := range w.Components.all() {
		store.Remove(e)
	}
}

// Exists reports whether any store holds a component for e
func (w *World) Exists(e core.Entity) bool {
	for _, store := range w.Components.all() {
		if store.Has(e) {
			return true
		}
	}
	return false
}

// Clear removes all entities and components and resets gameplay counters
func (w *World) Clear() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.nextEntityID = 1
	for _, store := range w.Components.all() {
		store.Clear()
	}
	w.Resources.Gameplay.Reset()
	w.Resources.Input.Clear()
	w.Resources.Event.Consume()
}

// AddSystem adds a system to the world and sorts by priority
func (w *World) AddSystem(system System) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.systems = append(w.systems, system)

	// Stable insertion keeps registration order among equal priorities
	for i := len(w.systems) - 1; i > 0; i-- {
		if w.systems[i-1].Priority() <= w.systems[i].Priority() {
			break
		}
		w.systems[i-1], w.systems[i] = w.systems[i], w.systems[i-1]
	}
}

// Systems returns a copy of all registered systems
func (w *World) Systems() []System {
	w.mu.RLock()
	defer w.mu.RUnlock()
	result := make([]System, len(w.systems))
	copy(result, w.systems)
	return result
}

// RunSafe executes a function while holding the world's update lock
func (w *World) RunSafe(fn func()) {
	w.updateMutex.Lock()
	defer w.updateMutex.Unlock()
	fn()
}

// Update runs all systems sequentially under the update lock
func (w *World) Update() {
	w.RunSafe(w.UpdateLocked)
}

// UpdateLocked runs all systems assuming the caller already holds the update lock
func (w *World) UpdateLocked() {
	for _, system := range w.Systems() {
		system.Update()
	}
}

// FrameNumber returns the current tick index
func (w *World) FrameNumber() int64 {
	return w.frame.Load()
}

// advanceFrame is called by Game at the start of each simulation tick
func (w *World) advanceFrame() int64 {
	return w.frame.Add(1)
}

// PushEvent emits a game event stamped with the current tick
func (w *World) PushEvent(eventType event.EventType, payload any) {
	w.Resources.Event.Push(event.GameEvent{
		Type:    eventType,
		Payload: payload,
		Frame:   w.frame.Load(),
	})
}

// Player returns the player entity and its position.
// With more than one player the lowest entity id wins
func (w *World) Player() (core.Entity, component.PositionComponent, error) {
	players := w.Query().
		With(w.Components.Player).
		With(w.Components.Position).
		Execute()
	if len(players) == 0 {
		return core.NoEntity, component.PositionComponent{}, ErrNoPlayer
	}
	pos, _ := w.Components.Position.Get(players[0])
	return players[0], pos, nil
}
