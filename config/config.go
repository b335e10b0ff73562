// Package config loads game settings from YAML
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/boxpusher/audio"
	"github.com/lixenwraith/boxpusher/engine"
	"github.com/lixenwraith/boxpusher/input"
	"github.com/lixenwraith/boxpusher/logging"
	"github.com/lixenwraith/boxpusher/parameter"
	"github.com/lixenwraith/boxpusher/render"
)

// ErrInvalidConfig wraps every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// Config is the complete game configuration
type Config struct {
	Map    MapConfig              `yaml:"map"`
	Timing TimingConfig           `yaml:"timing"`
	Input  InputConfig            `yaml:"input"`
	Audio  AudioConfig            `yaml:"audio"`
	Log    LogConfig              `yaml:"log"`
	Glyphs map[string]GlyphConfig `yaml:"glyphs"`
}

type MapConfig struct {
	Width     uint8 `yaml:"width"`
	Height    uint8 `yaml:"height"`
	TileWidth int   `yaml:"tile_width"`
}

type TimingConfig struct {
	Tick  time.Duration `yaml:"tick"`
	Frame time.Duration `yaml:"frame"`
}

type InputConfig struct {
	// Order is "fifo" or "lifo"
	Order    string              `yaml:"order"`
	Bindings map[string][]string `yaml:"bindings,omitempty"`
}

type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	Dir   string `yaml:"dir"`
}

// GlyphConfig is the terminal stand-in for an image path; colours are tcell names or #rrggbb
type GlyphConfig struct {
	Symbol string `yaml:"symbol"`
	Fg     string `yaml:"fg,omitempty"`
	Bg     string `yaml:"bg,omitempty"`
}

// Default returns a complete baseline configuration
func Default() *Config {
	return &Config{
		Map: MapConfig{
			Width:     parameter.MapWidth,
			Height:    parameter.MapHeight,
			TileWidth: parameter.TileWidth,
		},
		Timing: TimingConfig{
			Tick:  parameter.GameUpdateInterval,
			Frame: parameter.FrameUpdateInterval,
		},
		Input: InputConfig{
			Order: engine.InputFIFO.String(),
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  parameter.AudioMasterVolume,
		},
		Log: LogConfig{
			Level: "info",
			Dir:   logging.DefaultDir,
		},
		Glyphs: DefaultGlyphs(),
	}
}

// Load overlays the YAML file at path onto the defaults; empty path returns the defaults
func Load(path string) (*Config, error) {
	if path == "" {
		cfg := Default()
		return cfg, cfg.Validate()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Decode overlays YAML from r onto the defaults and validates the result.
// Glyph entries merge with the default table
func Decode(r io.Reader) (*Config, error) {
	cfg := Default()
	defaults := cfg.Glyphs
	cfg.Glyphs = nil

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode: %w", err)
	}

	for path, g := range cfg.Glyphs {
		defaults[path] = g
	}
	cfg.Glyphs = defaults

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate enforces bounds and parses every symbolic value once
func (c *Config) Validate() error {
	if c.Map.Width == 0 || c.Map.Height == 0 {
		return fmt.Errorf("%w: map size %dx%d", ErrInvalidConfig, c.Map.Width, c.Map.Height)
	}
	if c.Map.Width == 255 || c.Map.Height == 255 {
		return fmt.Errorf("%w: map size must leave room for the boundary cell", ErrInvalidConfig)
	}
	if c.Map.TileWidth <= 0 {
		return fmt.Errorf("%w: tile_width %d", ErrInvalidConfig, c.Map.TileWidth)
	}
	if c.Timing.Tick <= 0 || c.Timing.Frame <= 0 {
		return fmt.Errorf("%w: timing intervals must be positive", ErrInvalidConfig)
	}
	if _, err := engine.ParseInputOrder(c.Input.Order); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if _, err := input.LoadKeyBindings(c.Input.Bindings); err != nil {
		return fmt.Errorf("%w: bindings: %v", ErrInvalidConfig, err)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("%w: audio volume %v outside [0,1]", ErrInvalidConfig, c.Audio.Volume)
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if _, err := c.GlyphTable(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// InputOrder returns the parsed input order; call after Validate
func (c *Config) InputOrder() engine.InputOrder {
	order, _ := engine.ParseInputOrder(c.Input.Order)
	return order
}

// KeyTable returns the default bindings with configured overrides applied
func (c *Config) KeyTable() (*input.KeyTable, error) {
	override, err := input.LoadKeyBindings(c.Input.Bindings)
	if err != nil {
		return nil, err
	}
	kt := input.DefaultKeyTable()
	kt.Merge(override)
	return kt, nil
}

// GlyphTable parses the glyph section
func (c *Config) GlyphTable() (render.GlyphTable, error) {
	table := make(render.GlyphTable, len(c.Glyphs))
	for path, gc := range c.Glyphs {
		g, err := render.ParseGlyph(gc.Symbol, gc.Fg, gc.Bg)
		if err != nil {
			return nil, fmt.Errorf("glyph %s: %w", path, err)
		}
		table[path] = g
	}
	return table, nil
}

// AudioConfig converts to the audio package settings
func (c *Config) AudioConfig() audio.Config {
	ac := audio.DefaultConfig()
	ac.Enabled = c.Audio.Enabled
	ac.MasterVolume = c.Audio.Volume
	return ac
}

// FitLevel rejects a map smaller than a loaded level. Scans stop at the map
// boundary, so level cells past it are unreachable
func (c *Config) FitLevel(width, height int) error {
	if width > int(c.Map.Width) || height > int(c.Map.Height) {
		return fmt.Errorf("%w: map %dx%d smaller than level %dx%d",
			ErrInvalidConfig, c.Map.Width, c.Map.Height, width, height)
	}
	return nil
}

// Apply copies map settings and input order into the world resources
func (c *Config) Apply(w *engine.World) {
	w.Resources.Config.MapWidth = c.Map.Width
	w.Resources.Config.MapHeight = c.Map.Height
	w.Resources.Config.TileWidth = c.Map.TileWidth
	w.Resources.Input.SetOrder(c.InputOrder())
}

// Encode writes c as YAML
func (c *Config) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return err
	}
	return enc.Close()
}
