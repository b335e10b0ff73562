package engine

import (
	"time"

	"github.com/lixenwraith/boxpusher/core"
	"github.com/lixenwraith/boxpusher/event"
	"github.com/lixenwraith/boxpusher/parameter"
)

// Resource holds singleton game resources, initialized with the world and accessed via World.Resources
type Resource struct {
	Time     *TimeResource
	Config   *ConfigResource
	Gameplay *Gameplay
	Input    *InputQueue
	Event    *event.EventQueue
	Audio    *AudioResource
}

// NewResource builds the default resource set
func NewResource() Resource {
	return Resource{
		Time: &TimeResource{},
		Config: &ConfigResource{
			MapWidth:  parameter.MapWidth,
			MapHeight: parameter.MapHeight,
			TileWidth: parameter.TileWidth,
		},
		Gameplay: &Gameplay{},
		Input:    NewInputQueue(InputFIFO, parameter.InputQueueCapacity),
		Event:    event.NewEventQueue(),
		Audio:    &AudioResource{},
	}
}

// TimeResource wraps time data for systems
// It is updated by Game at the start of each tick
type TimeResource struct {
	// Now is the clock reading of the current tick
	Now time.Time

	// DeltaTime is the duration since the previous tick
	DeltaTime time.Duration

	// Elapsed accumulates DeltaTime since the game started; drives animation
	Elapsed time.Duration

	// FrameNumber is the current tick count
	FrameNumber int64
}

// Advance modifies TimeResource fields in-place
// Must be called under world lock to prevent races with system reads
func (tr *TimeResource) Advance(now time.Time, delta time.Duration, frame int64) {
	tr.Now = now
	tr.DeltaTime = delta
	tr.Elapsed += delta
	tr.FrameNumber = frame
}

// ConfigResource holds static map configuration
type ConfigResource struct {
	// MapWidth and MapHeight are also the out-of-grid boundary values for the movement scan
	MapWidth  uint8
	MapHeight uint8
	TileWidth int
}

// AudioPlayer defines the minimal audio interface used by game systems
type AudioPlayer interface {
	Play(core.SoundType) bool
}

// AudioResource wraps the audio player; a nil Player is silent
type AudioResource struct {
	Player AudioPlayer
}

// Play forwards to the player if one is attached
func (ar *AudioResource) Play(s core.SoundType) bool {
	if ar == nil || ar.Player == nil {
		return false
	}
	return ar.Player.Play(s)
}
