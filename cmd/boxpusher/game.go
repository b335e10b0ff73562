package main

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/lixenwraith/boxpusher/config"
	"github.com/lixenwraith/boxpusher/engine"
	"github.com/lixenwraith/boxpusher/spawn"
	"github.com/lixenwraith/boxpusher/system"
)

// session bundles a driven world with its input system
type session struct {
	game  *engine.Game
	world *engine.World
	input *system.InputSystem
}

// newSession builds the world, loads the built-in level and wires the simulation systems
func newSession(cfg *config.Config, clock engine.TimeProvider, logger *zap.Logger) (*session, error) {
	world := engine.NewWorld()
	cfg.Apply(world)

	level, err := spawn.LoadLevel(world, spawn.DefaultLevel)
	if err != nil {
		return nil, fmt.Errorf("level: %w", err)
	}
	if err := cfg.FitLevel(level.Width, level.Height); err != nil {
		return nil, err
	}
	logger.Info("level loaded",
		zap.Int("width", level.Width),
		zap.Int("height", level.Height),
		zap.Int("boxes", level.Boxes),
	)

	game := engine.NewGame(world, clock, logger)
	game.SetTickInterval(cfg.Timing.Tick)
	game.SetFrameInterval(cfg.Timing.Frame)

	inputSystem := system.NewInputSystem(world, logger)
	game.AddSystem(inputSystem)
	game.AddSystem(system.NewGameplayStateSystem(world, logger))
	game.RegisterHandler(system.NewEventSystem(world, logger))

	return &session{game: game, world: world, input: inputSystem}, nil
}

// restart reloads the level in place
func (s *session) restart() error {
	var err error
	s.world.RunSafe(func() {
		s.world.Clear()
		_, err = spawn.LoadLevel(s.world, spawn.DefaultLevel)
	})
	return err
}
