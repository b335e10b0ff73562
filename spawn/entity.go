// Package spawn creates level entities with their full component sets
package spawn

import (
	"fmt"

	"github.com/lixenwraith/boxpusher/component"
	"github.com/lixenwraith/boxpusher/core"
	"github.com/lixenwraith/boxpusher/engine"
	"github.com/lixenwraith/boxpusher/parameter"
)

// Image paths; animated entities cycle through numbered frames
const (
	FloorImage = "/images/floor.png"
	WallImage  = "/images/wall.png"
)

// PlayerImages are the player animation frames
var PlayerImages = []string{
	"/images/player_1.png",
	"/images/player_2.png",
	"/images/player_3.png",
}

// BoxImages returns the two animation frames of a box of colour
func BoxImages(colour component.BoxColour) []string {
	return []string{
		fmt.Sprintf("/images/box_%s_1.png", colour),
		fmt.Sprintf("/images/box_%s_2.png", colour),
	}
}

// BoxSpotImage returns the spot image of colour
func BoxSpotImage(colour component.BoxColour) string {
	return fmt.Sprintf("/images/box_spot_%s.png", colour)
}

func place(w *engine.World, p core.Point, z uint8) *engine.EntityBuilder {
	return engine.With(w.NewEntity(), w.Components.Position, component.PositionComponent{
		X: uint8(p.X),
		Y: uint8(p.Y),
		Z: z,
	})
}

// CreateFloor spawns a background tile
func CreateFloor(w *engine.World, p core.Point) core.Entity {
	eb := place(w, p, parameter.ZFloor)
	engine.With(eb, w.Components.Renderable, component.MustRenderable(FloorImage))
	return eb.Build()
}

// CreateWall spawns an immovable wall
func CreateWall(w *engine.World, p core.Point) core.Entity {
	eb := place(w, p, parameter.ZWall)
	engine.With(eb, w.Components.Renderable, component.MustRenderable(WallImage))
	engine.With(eb, w.Components.Wall, component.WallComponent{})
	engine.With(eb, w.Components.Immovable, component.ImmovableComponent{})
	return eb.Build()
}

// CreateBox spawns a pushable animated box
func CreateBox(w *engine.World, p core.Point, colour component.BoxColour) core.Entity {
	eb := place(w, p, parameter.ZBox)
	engine.With(eb, w.Components.Renderable, component.MustRenderable(BoxImages(colour)...))
	engine.With(eb, w.Components.Box, component.BoxComponent{Colour: colour})
	engine.With(eb, w.Components.Movable, component.MovableComponent{})
	return eb.Build()
}

// CreateBoxSpot spawns a goal marker; spots do not collide
func CreateBoxSpot(w *engine.World, p core.Point, colour component.BoxColour) core.Entity {
	eb := place(w, p, parameter.ZBoxSpot)
	engine.With(eb, w.Components.Renderable, component.MustRenderable(BoxSpotImage(colour)))
	engine.With(eb, w.Components.BoxSpot, component.BoxSpotComponent{Colour: colour})
	return eb.Build()
}

// CreatePlayer spawns the animated player; it is movable so it heads every push chain
func CreatePlayer(w *engine.World, p core.Point) core.Entity {
	eb := place(w, p, parameter.ZPlayer)
	engine.With(eb, w.Components.Renderable, component.MustRenderable(PlayerImages...))
	engine.With(eb, w.Components.Player, component.PlayerComponent{})
	engine.With(eb, w.Components.Movable, component.MovableComponent{})
	return eb.Build()
}
