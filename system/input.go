package system

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/boxpusher/component"
	"github.com/lixenwraith/boxpusher/core"
	"github.com/lixenwraith/boxpusher/engine"
	"github.com/lixenwraith/boxpusher/event"
	"github.com/lixenwraith/boxpusher/parameter"
)

// InputSystem consumes one queued direction per tick, resolves the push chain
// against a fresh spatial index, and commits it
type InputSystem struct {
	engine.SystemBase
	logger *zap.Logger

	last Resolution
}

// NewInputSystem creates the movement system
func NewInputSystem(world *engine.World, logger *zap.Logger) *InputSystem {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InputSystem{
		SystemBase: engine.NewSystemBase(world),
		logger:     logger.Named("input"),
	}
}

// Name identifies the system in logs
func (s *InputSystem) Name() string {
	return "input"
}

// Priority runs input ahead of the win check
func (s *InputSystem) Priority() int {
	return parameter.PriorityInput
}

// Update runs one Step
func (s *InputSystem) Update() {
	s.Step()
}

// LastResolution returns the result of the most recent Step
func (s *InputSystem) LastResolution() Resolution {
	return s.last
}

// Step pops at most one input and resolves and applies it
func (s *InputSystem) Step() Resolution {
	dir, ok := s.Resource.Input.Pop()
	if !ok {
		s.last = Resolution{Outcome: OutcomeIdle}
		return s.last
	}

	player, pos, err := s.World.Player()
	if err != nil {
		s.logger.Debug("input dropped", zap.Stringer("dir", dir), zap.Error(err))
		s.last = Resolution{Direction: dir, Outcome: OutcomeNoop}
		return s.last
	}

	idx := BuildSpatialIndex(s.World)
	cfg := s.Resource.Config
	res := Resolve(idx, pos, dir, cfg.MapWidth, cfg.MapHeight)

	switch res.Outcome {
	case OutcomeBlocked:
		s.World.PushEvent(event.EventPlayerHitObstacle, nil)
		s.logger.Debug("push blocked",
			zap.Uint64("player", uint64(player)),
			zap.Stringer("dir", dir),
		)
	case OutcomeMoved:
		s.apply(res)
	}

	s.last = res
	return res
}

// apply shifts each chain member one cell and emits EntityMoved in chain order.
// Members without a position are skipped; the counter moves once if anything moved
func (s *InputSystem) apply(res Resolution) {
	dx, dy := res.Direction.Delta()
	moved := 0

	for _, e := range res.Chain {
		ok := s.Component.Position.Update(e, func(p *component.PositionComponent) {
			p.X = uint8(int(p.X) + dx)
			p.Y = uint8(int(p.Y) + dy)
		})
		if !ok {
			s.logger.Debug("chain member has no position", zap.Uint64("entity", uint64(e)))
			continue
		}
		moved++
		s.World.PushEvent(event.EventEntityMoved, &event.EntityMovedPayload{Entity: e})
	}

	if moved > 0 {
		count := s.Resource.Gameplay.IncrementMoves()
		s.logger.Debug("chain moved",
			zap.Stringer("dir", res.Direction),
			zap.Int("entities", moved),
			zap.Uint32("moves", count),
		)
	}
}

// Queue is a convenience for headless drivers and tests
func (s *InputSystem) Queue(dirs ...core.Direction) {
	for _, d := range dirs {
		s.Resource.Input.Push(d)
	}
}
