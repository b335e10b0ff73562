package parameter

import "time"

// Game Loop & Engine Timing
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// GameUpdateInterval is the simulation tick interval, one input consumed per tick
	GameUpdateInterval = 50 * time.Millisecond

	// InputQueueCapacity bounds buffered directional input; excess keys are dropped
	InputQueueCapacity = 64
)

// EventSettleIterations bounds dispatch rounds per tick; handlers may emit follow-up events
const EventSettleIterations = 4
