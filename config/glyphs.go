package config

import (
	"github.com/lixenwraith/boxpusher/component"
	"github.com/lixenwraith/boxpusher/spawn"
)

var boxColours = map[component.BoxColour]string{
	component.BoxColourRed:  "red",
	component.BoxColourBlue: "dodgerblue",
	component.BoxColourGrey: "silver",
}

// DefaultGlyphs covers every image path the spawn factories use.
// Second animation frames use a darker shade so the cycle is visible
func DefaultGlyphs() map[string]GlyphConfig {
	glyphs := map[string]GlyphConfig{
		spawn.FloorImage: {Symbol: "·", Fg: "dimgray"},
		spawn.WallImage:  {Symbol: "█", Fg: "slategray"},
	}

	playerShades := []string{"yellow", "gold", "orange"}
	for i, path := range spawn.PlayerImages {
		glyphs[path] = GlyphConfig{Symbol: "@", Fg: playerShades[i%len(playerShades)]}
	}

	for colour, fg := range boxColours {
		frames := spawn.BoxImages(colour)
		glyphs[frames[0]] = GlyphConfig{Symbol: "■", Fg: fg}
		glyphs[frames[1]] = GlyphConfig{Symbol: "□", Fg: fg}
		glyphs[spawn.BoxSpotImage(colour)] = GlyphConfig{Symbol: "○", Fg: fg}
	}
	return glyphs
}
