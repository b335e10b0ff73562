package system

import (
	"github.com/lixenwraith/boxpusher/engine"
	"github.com/lixenwraith/boxpusher/render"
)

// RenderingSystem snapshots drawable entities, batches them and hands the
// frame to a presenter. It implements engine.Renderer and runs on the frame tick
type RenderingSystem struct {
	engine.SystemBase
	batcher   *render.Batcher
	presenter render.Presenter
}

// NewRenderingSystem creates a renderer drawing through presenter
func NewRenderingSystem(world *engine.World, presenter render.Presenter) *RenderingSystem {
	return &RenderingSystem{
		SystemBase: engine.NewSystemBase(world),
		batcher:    render.NewBatcher(world.Resources.Config.TileWidth),
		presenter:  presenter,
	}
}

// Drawables returns every entity with Position and Renderable in entity order
func (s *RenderingSystem) Drawables() []render.Drawable {
	c := s.Component
	entities := s.World.Query().With(c.Position).With(c.Renderable).Execute()

	drawables := make([]render.Drawable, 0, len(entities))
	for _, e := range entities {
		pos, ok := c.Position.Get(e)
		if !ok {
			continue
		}
		r, ok := c.Renderable.Get(e)
		if !ok {
			continue
		}
		drawables = append(drawables, render.Drawable{Entity: e, Position: pos, Renderable: r})
	}
	return drawables
}

// Render batches the current state and presents it
func (s *RenderingSystem) Render() error {
	gameplay := s.Resource.Gameplay
	frame := render.Frame{
		Batches: s.batcher.Batch(s.Drawables(), s.Resource.Time.Elapsed),
		HUD: render.HUD{
			Moves: gameplay.MovesCount(),
			State: gameplay.State().String(),
		},
	}
	return s.presenter.Present(frame)
}
