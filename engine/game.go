package engine

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/boxpusher/event"
	"github.com/lixenwraith/boxpusher/parameter"
)

// Renderer draws one frame from the settled world state
type Renderer interface {
	Render() error
}

// Game drives the world: simulation ticks, event dispatch, and render frames.
// Tick and Frame both run under the world update lock, so a frame never
// observes a half-applied move
type Game struct {
	world    *World
	clock    TimeProvider
	router   *event.Router
	renderer Renderer
	logger   *zap.Logger

	tickInterval  time.Duration
	frameInterval time.Duration
	lastTick      time.Time
	started       bool
}

// NewGame creates a driver over world using clock for elapsed time
func NewGame(world *World, clock TimeProvider, logger *zap.Logger) *Game {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Game{
		world:         world,
		clock:         clock,
		router:        event.NewRouter(world.Resources.Event),
		logger:        logger,
		tickInterval:  parameter.GameUpdateInterval,
		frameInterval: parameter.FrameUpdateInterval,
	}
}

// World returns the driven world
func (g *Game) World() *World {
	return g.world
}

// SetTickInterval overrides the Run loop period
func (g *Game) SetTickInterval(d time.Duration) {
	if d > 0 {
		g.tickInterval = d
	}
}

// SetFrameInterval overrides the Run render period
func (g *Game) SetFrameInterval(d time.Duration) {
	if d > 0 {
		g.frameInterval = d
	}
}

// SetRenderer attaches the frame renderer; nil disables rendering
func (g *Game) SetRenderer(r Renderer) {
	g.renderer = r
}

// AddSystem registers a system with the world and, if it handles events, with the router
func (g *Game) AddSystem(s System) {
	g.world.AddSystem(s)
	if h, ok := s.(event.Handler); ok {
		g.router.Register(h)
	}
}

// RegisterHandler adds an event handler that is not a system
func (g *Game) RegisterHandler(h event.Handler) {
	g.router.Register(h)
}

// Tick advances time, runs all systems once, then settles the event queue.
// Returns every event delivered during this tick in emission order
func (g *Game) Tick() []event.GameEvent {
	var delivered []event.GameEvent
	g.world.RunSafe(func() {
		now := g.clock.Now()
		var delta time.Duration
		if g.started {
			delta = now.Sub(g.lastTick)
		}
		g.started = true
		g.lastTick = now

		frame := g.world.advanceFrame()
		g.world.Resources.Time.Advance(now, delta, frame)

		g.world.UpdateLocked()

		for i := 0; i < parameter.EventSettleIterations; i++ {
			events := g.router.DispatchAll()
			if len(events) == 0 {
				break
			}
			delivered = append(delivered, events...)
		}
	})

	for _, ev := range delivered {
		g.logger.Debug("event",
			zap.Stringer("type", ev.Type),
			zap.Int64("frame", ev.Frame),
		)
	}
	return delivered
}

// Frame renders the current state; no-op without a renderer
func (g *Game) Frame() error {
	if g.renderer == nil {
		return nil
	}
	var err error
	g.world.RunSafe(func() {
		err = g.renderer.Render()
	})
	return err
}

// Run ticks and renders on independent fixed intervals until ctx is cancelled or rendering fails
func (g *Game) Run(ctx context.Context) error {
	ticker := time.NewTicker(g.tickInterval)
	defer ticker.Stop()
	frames := time.NewTicker(g.frameInterval)
	defer frames.Stop()

	g.logger.Info("game loop started",
		zap.Duration("tick", g.tickInterval),
		zap.Duration("frame", g.frameInterval),
	)
	if err := g.Frame(); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			g.logger.Info("game loop stopped",
				zap.Int64("frames", g.world.FrameNumber()),
				zap.Uint32("moves", g.world.Resources.Gameplay.MovesCount()),
			)
			return ctx.Err()
		case <-ticker.C:
			g.Tick()
		case <-frames.C:
			if err := g.Frame(); err != nil {
				return err
			}
		}
	}
}
