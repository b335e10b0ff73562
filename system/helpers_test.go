package system

import (
	"github.com/lixenwraith/boxpusher/component"
	"github.com/lixenwraith/boxpusher/core"
	"github.com/lixenwraith/boxpusher/engine"
)

func newTestWorld(width, height uint8) *engine.World {
	w := engine.NewWorld()
	w.Resources.Config.MapWidth = width
	w.Resources.Config.MapHeight = height
	return w
}

func at(x, y uint8) component.PositionComponent {
	return component.PositionComponent{X: x, Y: y, Z: 10}
}

func addPlayer(w *engine.World, x, y uint8) core.Entity {
	eb := w.NewEntity()
	engine.With(eb, w.Components.Position, at(x, y))
	engine.With(eb, w.Components.Player, component.PlayerComponent{})
	engine.With(eb, w.Components.Movable, component.MovableComponent{})
	return eb.Build()
}

func addBox(w *engine.World, x, y uint8, colour component.BoxColour) core.Entity {
	eb := w.NewEntity()
	engine.With(eb, w.Components.Position, at(x, y))
	engine.With(eb, w.Components.Box, component.BoxComponent{Colour: colour})
	engine.With(eb, w.Components.Movable, component.MovableComponent{})
	return eb.Build()
}

func addWall(w *engine.World, x, y uint8) core.Entity {
	eb := w.NewEntity()
	engine.With(eb, w.Components.Position, at(x, y))
	engine.With(eb, w.Components.Wall, component.WallComponent{})
	engine.With(eb, w.Components.Immovable, component.ImmovableComponent{})
	return eb.Build()
}

func addSpot(w *engine.World, x, y uint8, colour component.BoxColour) core.Entity {
	eb := w.NewEntity()
	engine.With(eb, w.Components.Position, component.PositionComponent{X: x, Y: y, Z: 9})
	engine.With(eb, w.Components.BoxSpot, component.BoxSpotComponent{Colour: colour})
	return eb.Build()
}

func position(w *engine.World, e core.Entity) (uint8, uint8) {
	pos, _ := w.Components.Position.Get(e)
	return pos.X, pos.Y
}

// recordingAudio captures requested cues
type recordingAudio struct {
	played []core.SoundType
}

func (r *recordingAudio) Play(s core.SoundType) bool {
	r.played = append(r.played, s)
	return true
}
