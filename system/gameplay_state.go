package system

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/boxpusher/core"
	"github.com/lixenwraith/boxpusher/engine"
	"github.com/lixenwraith/boxpusher/event"
	"github.com/lixenwraith/boxpusher/parameter"
)

// GameplayStateSystem labels the level Won while every spot holds a box of its colour
type GameplayStateSystem struct {
	engine.SystemBase
	logger *zap.Logger
}

// NewGameplayStateSystem creates the win-check system
func NewGameplayStateSystem(world *engine.World, logger *zap.Logger) *GameplayStateSystem {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GameplayStateSystem{
		SystemBase: engine.NewSystemBase(world),
		logger:     logger.Named("gameplay"),
	}
}

func (s *GameplayStateSystem) Name() string {
	return "gameplay_state"
}

// Priority places the check after input
func (s *GameplayStateSystem) Priority() int {
	return parameter.PriorityGameplayState
}

// Update re-evaluates the win condition; emits EventGameWon on the transition only
func (s *GameplayStateSystem) Update() {
	state := engine.GameplayPlaying
	if s.allSpotsCovered() {
		state = engine.GameplayWon
	}

	if !s.Resource.Gameplay.SetState(state) {
		return
	}

	moves := s.Resource.Gameplay.MovesCount()
	s.logger.Info("gameplay state changed",
		zap.Stringer("state", state),
		zap.Uint32("moves", moves),
	)
	if state == engine.GameplayWon {
		s.World.PushEvent(event.EventGameWon, &event.GameWonPayload{Moves: moves})
	}
}

func (s *GameplayStateSystem) allSpotsCovered() bool {
	c := s.Component

	boxes := make(map[core.Point]core.Entity)
	for _, e := range s.World.Query().With(c.Box).With(c.Position).Execute() {
		pos, _ := c.Position.Get(e)
		boxes[core.Point{X: int(pos.X), Y: int(pos.Y)}] = e
	}

	spots := s.World.Query().With(c.BoxSpot).With(c.Position).Execute()
	if len(spots) == 0 {
		return false
	}

	for _, spot := range spots {
		pos, _ := c.Position.Get(spot)
		boxEntity, ok := boxes[core.Point{X: int(pos.X), Y: int(pos.Y)}]
		if !ok {
			return false
		}
		box, _ := c.Box.Get(boxEntity)
		spotComp, _ := c.BoxSpot.Get(spot)
		if box.Colour != spotComp.Colour {
			return false
		}
	}
	return true
}
