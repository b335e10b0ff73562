package audio

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"

	"github.com/lixenwraith/boxpusher/core"
	"github.com/lixenwraith/boxpusher/parameter"
)

// Config holds audio settings
type Config struct {
	Enabled      bool
	MasterVolume float64
	SampleRate   int
}

// DefaultConfig returns audio enabled at the default volume
func DefaultConfig() Config {
	return Config{
		Enabled:      true,
		MasterVolume: parameter.AudioMasterVolume,
		SampleRate:   parameter.AudioSampleRate,
	}
}

// Player plays synthesized cues through a single speaker-attached mixer.
// Without a working device it stays silent and Play reports false
type Player struct {
	mu     sync.Mutex
	config Config
	rate   beep.SampleRate
	mixer  *beep.Mixer
	logger *zap.Logger

	running atomic.Bool
	muted   atomic.Bool
}

// NewPlayer creates a stopped player
func NewPlayer(cfg Config, logger *zap.Logger) *Player {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = parameter.AudioSampleRate
	}
	p := &Player{
		config: cfg,
		rate:   beep.SampleRate(cfg.SampleRate),
		mixer:  &beep.Mixer{},
		logger: logger.Named("audio"),
	}
	p.muted.Store(!cfg.Enabled)
	return p
}

// Name identifies the player as a service
func (p *Player) Name() string {
	return "audio"
}

// Start initializes the speaker and attaches the mixer.
// A disabled player starts nothing and returns nil
func (p *Player) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.running.Load() {
		return fmt.Errorf("audio player already running")
	}
	if !p.config.Enabled {
		p.logger.Debug("audio disabled")
		return nil
	}

	if err := speaker.Init(p.rate, p.rate.N(parameter.AudioBufferDuration)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}
	speaker.Play(p.mixer)
	p.running.Store(true)
	p.logger.Info("audio started", zap.Int("sample_rate", int(p.rate)))
	return nil
}

// Stop clears pending sounds and detaches from the speaker; safe to repeat
func (p *Player) Stop() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.running.CompareAndSwap(true, false) {
		return nil
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Clear()
	return nil
}

// Play queues the cue for st; reports whether it was queued
func (p *Player) Play(st core.SoundType) bool {
	if !p.running.Load() || p.muted.Load() {
		return false
	}

	cue := GetSoundEffect(st, p.rate, p.config.MasterVolume)
	if cue == nil {
		return false
	}

	speaker.Lock()
	p.mixer.Add(cue)
	speaker.Unlock()

	p.logger.Debug("cue", zap.Stringer("sound", st))
	return true
}

// ToggleMute flips mute state and returns the new value
func (p *Player) ToggleMute() bool {
	for {
		old := p.muted.Load()
		if p.muted.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// Muted reports mute state
func (p *Player) Muted() bool {
	return p.muted.Load()
}

// Running reports whether the speaker is attached
func (p *Player) Running() bool {
	return p.running.Load()
}
