package event

import "fmt"

// EventType represents the type of game event
type EventType int

const (
	// EventEntityMoved signals an entity shifted one cell
	// Trigger: InputSystem, once per chain member in resolution order
	// Consumer: EventSystem | Payload: *EntityMovedPayload
	EventEntityMoved EventType = iota

	// EventPlayerHitObstacle signals a push chain ran into an immovable
	// Trigger: InputSystem | Payload: nil
	EventPlayerHitObstacle

	// EventBoxPlacedOnSpot signals a box came to rest on a spot
	// Trigger: EventSystem on EventEntityMoved | Payload: *BoxPlacedPayload
	EventBoxPlacedOnSpot

	// EventGameWon signals every spot is covered by a box of its colour
	// Trigger: GameplayStateSystem on transition to Won | Payload: *GameWonPayload
	EventGameWon
)

var eventNames = map[EventType]string{
	EventEntityMoved:       "EntityMoved",
	EventPlayerHitObstacle: "PlayerHitObstacle",
	EventBoxPlacedOnSpot:   "BoxPlacedOnSpot",
	EventGameWon:           "GameWon",
}

func (t EventType) String() string {
	if name, ok := eventNames[t]; ok {
		return name
	}
	return fmt.Sprintf("EventType(%d)", int(t))
}

// GameEvent is a single notification with its originating tick
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64
}
