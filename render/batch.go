package render

import (
	"sort"
	"time"

	"github.com/lixenwraith/boxpusher/component"
	"github.com/lixenwraith/boxpusher/core"
	"github.com/lixenwraith/boxpusher/parameter"
)

// Drawable is one entity's render input
type Drawable struct {
	Entity     core.Entity
	Position   component.PositionComponent
	Renderable component.RenderableComponent
}

// DrawBatch is a single draw submission: one image at many destinations on one layer
type DrawBatch struct {
	Z     uint8
	Path  string
	Dests []core.Point
}

// FrameIndex selects the animation frame for elapsed time.
// The cycle is fixed: four equal frames per period regardless of entity phase
func FrameIndex(elapsed time.Duration, frames int) int {
	if frames <= 1 || elapsed < 0 {
		return 0
	}
	within := elapsed % parameter.AnimationPeriod
	return int(within/parameter.AnimationFrameDuration) % frames
}

// ResolvePath returns the image path r shows at elapsed
func ResolvePath(r component.RenderableComponent, elapsed time.Duration) string {
	if r.Kind() == component.RenderableStatic {
		return r.Path(0)
	}
	return r.Path(FrameIndex(elapsed, r.Len()))
}

// Batcher groups drawables by layer then by resolved image
type Batcher struct {
	TileWidth int
}

// NewBatcher creates a batcher mapping grid cells to tileWidth-sized screen tiles
func NewBatcher(tileWidth int) *Batcher {
	return &Batcher{TileWidth: tileWidth}
}

// Batch returns one DrawBatch per (z, path), layers ascending.
// Within a layer, batches keep the order in which their path first appears
// in drawables, so a stable input order gives a stable output
func (b *Batcher) Batch(drawables []Drawable, elapsed time.Duration) []DrawBatch {
	if len(drawables) == 0 {
		return nil
	}

	ordered := make([]Drawable, len(drawables))
	copy(ordered, drawables)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Position.Z < ordered[j].Position.Z
	})

	batches := make([]DrawBatch, 0, 8)
	layerStart := 0
	var layerIndex map[string]int

	for i, d := range ordered {
		if i == 0 || d.Position.Z != ordered[i-1].Position.Z {
			layerStart = len(batches)
			layerIndex = make(map[string]int, 4)
		}

		path := ResolvePath(d.Renderable, elapsed)
		dest := core.Point{
			X: int(d.Position.X) * b.TileWidth,
			Y: int(d.Position.Y) * b.TileWidth,
		}

		idx, ok := layerIndex[path]
		if !ok {
			idx = len(batches) - layerStart
			layerIndex[path] = idx
			batches = append(batches, DrawBatch{Z: d.Position.Z, Path: path})
		}
		batches[layerStart+idx].Dests = append(batches[layerStart+idx].Dests, dest)
	}

	return batches
}
