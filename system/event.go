package system

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/boxpusher/core"
	"github.com/lixenwraith/boxpusher/engine"
	"github.com/lixenwraith/boxpusher/event"
)

// EventSystem reacts to movement notifications: detects boxes landing on
// spots and routes audio cues. It runs only through event dispatch
type EventSystem struct {
	engine.SystemBase
	logger *zap.Logger
}

// NewEventSystem creates the notification consumer
func NewEventSystem(world *engine.World, logger *zap.Logger) *EventSystem {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EventSystem{
		SystemBase: engine.NewSystemBase(world),
		logger:     logger.Named("event"),
	}
}

func (s *EventSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventEntityMoved,
		event.EventPlayerHitObstacle,
		event.EventGameWon,
	}
}

func (s *EventSystem) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventPlayerHitObstacle:
		s.Resource.Audio.Play(core.SoundWall)

	case event.EventEntityMoved:
		if payload, ok := ev.Payload.(*event.EntityMovedPayload); ok {
			s.handleMoved(payload.Entity)
		}

	case event.EventGameWon:
		if payload, ok := ev.Payload.(*event.GameWonPayload); ok {
			s.logger.Info("level complete", zap.Uint32("moves", payload.Moves))
		}
		s.Resource.Audio.Play(core.SoundWin)
	}
}

func (s *EventSystem) handleMoved(e core.Entity) {
	c := s.Component
	box, ok := c.Box.Get(e)
	if !ok {
		return
	}
	pos, ok := c.Position.Get(e)
	if !ok {
		return
	}

	for _, spotEntity := range s.World.Query().With(c.BoxSpot).With(c.Position).Execute() {
		spotPos, _ := c.Position.Get(spotEntity)
		if spotPos.X != pos.X || spotPos.Y != pos.Y {
			continue
		}
		spot, _ := c.BoxSpot.Get(spotEntity)
		correct := spot.Colour == box.Colour

		s.World.PushEvent(event.EventBoxPlacedOnSpot, &event.BoxPlacedPayload{
			Box:     e,
			Spot:    spotEntity,
			Correct: correct,
		})
		if correct {
			s.Resource.Audio.Play(core.SoundCorrect)
		} else {
			s.Resource.Audio.Play(core.SoundIncorrect)
		}
		s.logger.Debug("box on spot",
			zap.Uint64("box", uint64(e)),
			zap.Stringer("colour", box.Colour),
			zap.Bool("correct", correct),
		)
		return
	}
}
