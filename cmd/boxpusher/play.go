package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/boxpusher/audio"
	"github.com/lixenwraith/boxpusher/core"
	"github.com/lixenwraith/boxpusher/engine"
	"github.com/lixenwraith/boxpusher/input"
	"github.com/lixenwraith/boxpusher/render"
	"github.com/lixenwraith/boxpusher/service"
	"github.com/lixenwraith/boxpusher/system"
)

func playAction(ctx context.Context, cmd *cli.Command) error {
	cfg, logger, err := settings(cmd)
	if err != nil {
		return err
	}
	defer logger.Sync()

	glyphs, err := cfg.GlyphTable()
	if err != nil {
		return err
	}
	keys, err := cfg.KeyTable()
	if err != nil {
		return err
	}

	s, err := newSession(cfg, engine.NewMonotonicTimeProvider(), logger)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	terminal := render.NewScreenService(screen)
	player := audio.NewPlayer(cfg.AudioConfig(), logger)

	hub := service.NewHub(logger)
	if err := hub.Register(terminal, true); err != nil {
		return err
	}
	if err := hub.Register(player, false); err != nil {
		return err
	}
	if err := hub.StartAll(); err != nil {
		return err
	}
	defer func() {
		if err := hub.StopAll(); err != nil {
			logger.Warn("shutdown", zap.Error(err))
		}
	}()
	core.SetCrashCleanup(func() { _ = terminal.Stop() })
	s.world.Resources.Audio.Player = player

	presenter := render.NewTerminalPresenter(screen, glyphs, cfg.Map.TileWidth)
	s.game.SetRenderer(system.NewRenderingSystem(s.world, presenter))

	collector := input.NewCollector(screen, keys, s.world.Resources.Input, logger)
	collector.OnIntent = func(intent input.Intent) {
		switch intent.Type {
		case input.IntentToggleMute:
			logger.Info("mute toggled", zap.Bool("muted", player.ToggleMute()))
		case input.IntentRestart:
			if err := s.restart(); err != nil {
				logger.Error("restart failed", zap.Error(err))
			}
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(core.Guard(func() error { return s.game.Run(gctx) }))
	g.Go(core.Guard(func() error { return collector.Run(gctx) }))

	err = g.Wait()
	logger.Info("session ended",
		zap.Uint32("moves", s.world.Resources.Gameplay.MovesCount()),
		zap.Stringer("state", s.world.Resources.Gameplay.State()),
	)
	if errors.Is(err, input.ErrQuit) || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
