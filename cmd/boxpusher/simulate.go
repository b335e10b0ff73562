package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/lixenwraith/boxpusher/core"
	"github.com/lixenwraith/boxpusher/engine"
	"github.com/lixenwraith/boxpusher/render"
	"github.com/lixenwraith/boxpusher/system"
)

func simulateAction(ctx context.Context, cmd *cli.Command) error {
	cfg, logger, err := settings(cmd)
	if err != nil {
		return err
	}
	defer logger.Sync()

	moves, err := core.ParseMoves(cmd.String("moves"))
	if err != nil {
		return err
	}

	clock := engine.NewStepClock(time.Unix(0, 0), cfg.Timing.Tick)
	s, err := newSession(cfg, clock, logger)
	if err != nil {
		return err
	}
	presenter := &render.RecordingPresenter{}
	s.game.SetRenderer(system.NewRenderingSystem(s.world, presenter))

	for _, m := range moves {
		if err := ctx.Err(); err != nil {
			return err
		}
		s.world.Resources.Input.Push(m)
		s.game.Tick()
		clock.Step()
	}
	if err := s.game.Frame(); err != nil {
		return err
	}

	frame, _ := presenter.Last()
	return report(cmd.Root().Writer, s.world, len(frame.Batches))
}

// report prints the player and box positions, counters and the world digest
func report(w io.Writer, world *engine.World, batches int) error {
	c := world.Components

	if _, pos, err := world.Player(); err == nil {
		fmt.Fprintf(w, "player: (%d,%d)\n", pos.X, pos.Y)
	}
	for _, e := range world.Query().With(c.Box).With(c.Position).Execute() {
		box, _ := c.Box.Get(e)
		pos, _ := c.Position.Get(e)
		fmt.Fprintf(w, "box %s: (%d,%d)\n", box.Colour, pos.X, pos.Y)
	}

	gameplay := world.Resources.Gameplay
	fmt.Fprintf(w, "moves: %d\n", gameplay.MovesCount())
	fmt.Fprintf(w, "state: %s\n", gameplay.State())
	fmt.Fprintf(w, "batches: %d\n", batches)
	_, err := fmt.Fprintf(w, "digest: %016x\n", engine.Digest(world))
	return err
}
