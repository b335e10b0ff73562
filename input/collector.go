package input

import (
	"context"
	"errors"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/boxpusher/engine"
)

// ErrQuit is returned by Collector.Run when the player asks to quit
var ErrQuit = errors.New("quit requested")

// Collector polls terminal events and turns key presses into queued directions.
// Non-movement intents go to the OnIntent callback
type Collector struct {
	screen tcell.Screen
	keys   *KeyTable
	queue  *engine.InputQueue
	logger *zap.Logger

	// OnIntent receives mute and restart intents; may be nil
	OnIntent func(Intent)
}

// NewCollector creates a collector pushing into queue
func NewCollector(screen tcell.Screen, keys *KeyTable, queue *engine.InputQueue, logger *zap.Logger) *Collector {
	if keys == nil {
		keys = DefaultKeyTable()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Collector{
		screen: screen,
		keys:   keys,
		queue:  queue,
		logger: logger.Named("input"),
	}
}

// Run blocks polling events until quit, ctx cancellation, or screen shutdown
func (c *Collector) Run(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		// Wake PollEvent; ignored if the screen is already finalized
		_ = c.screen.PostEvent(tcell.NewEventInterrupt(nil))
	}()

	for {
		ev := c.screen.PollEvent()
		if ev == nil {
			return nil
		}

		switch ev := ev.(type) {
		case *tcell.EventKey:
			if c.HandleKey(ev) {
				return ErrQuit
			}
		case *tcell.EventResize:
			c.screen.Sync()
		case *tcell.EventInterrupt:
			if ctx.Err() != nil {
				return ctx.Err()
			}
		}
	}
}

// HandleKey dispatches one key event; returns true on quit
func (c *Collector) HandleKey(ev *tcell.EventKey) bool {
	intent := c.keys.Lookup(ev)
	switch intent.Type {
	case IntentNone:
		return false
	case IntentQuit:
		c.logger.Debug("quit key")
		return true
	case IntentMove:
		if !c.queue.Push(intent.Direction) {
			c.logger.Debug("input queue full", zap.Stringer("dir", intent.Direction))
		}
	default:
		if c.OnIntent != nil {
			c.OnIntent(intent)
		}
	}
	return false
}
