package render

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/boxpusher/component"
	"github.com/lixenwraith/boxpusher/core"
)

func drawable(e core.Entity, x, y, z uint8, paths ...string) Drawable {
	return Drawable{
		Entity:     e,
		Position:   component.PositionComponent{X: x, Y: y, Z: z},
		Renderable: component.MustRenderable(paths...),
	}
}

func TestFrameIndex(t *testing.T) {
	tests := []struct {
		elapsed time.Duration
		frames  int
		want    int
	}{
		{0, 4, 0},
		{250 * time.Millisecond, 4, 1},
		{500 * time.Millisecond, 4, 2},
		{999 * time.Millisecond, 4, 3},
		{1000 * time.Millisecond, 4, 0},
		{1250 * time.Millisecond, 4, 1},
		{249 * time.Millisecond, 4, 0},
		{750 * time.Millisecond, 2, 1}, // 3 mod 2
		{750 * time.Millisecond, 3, 0}, // 3 mod 3
		{999 * time.Millisecond, 1, 0},
		{-5 * time.Millisecond, 4, 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FrameIndex(tt.elapsed, tt.frames), "elapsed=%v frames=%d", tt.elapsed, tt.frames)
	}
}

func TestResolvePathStaticIgnoresTime(t *testing.T) {
	r := component.MustRenderable("/images/wall.png")
	for _, ms := range []int{0, 250, 500, 999, 12345} {
		assert.Equal(t, "/images/wall.png", ResolvePath(r, time.Duration(ms)*time.Millisecond))
	}
}

func TestResolvePathAnimated(t *testing.T) {
	r := component.MustRenderable("p1", "p2", "p3", "p4")
	assert.Equal(t, "p1", ResolvePath(r, 0))
	assert.Equal(t, "p2", ResolvePath(r, 250*time.Millisecond))
	assert.Equal(t, "p3", ResolvePath(r, 500*time.Millisecond))
	assert.Equal(t, "p4", ResolvePath(r, 999*time.Millisecond))
}

func TestBatchGroupsByLayerThenPath(t *testing.T) {
	b := NewBatcher(32)
	batches := b.Batch([]Drawable{
		drawable(1, 0, 0, 10, "wall"),
		drawable(2, 0, 0, 5, "floor"),
		drawable(3, 1, 0, 5, "floor"),
		drawable(4, 1, 0, 10, "wall"),
		drawable(5, 2, 1, 10, "box"),
		drawable(6, 2, 1, 5, "floor"),
	}, 0)

	require.Len(t, batches, 3)

	assert.Equal(t, uint8(5), batches[0].Z)
	assert.Equal(t, "floor", batches[0].Path)
	assert.Equal(t, []core.Point{{X: 0, Y: 0}, {X: 32, Y: 0}, {X: 64, Y: 32}}, batches[0].Dests)

	assert.Equal(t, uint8(10), batches[1].Z)
	assert.Equal(t, "wall", batches[1].Path)
	assert.Equal(t, []core.Point{{X: 0, Y: 0}, {X: 32, Y: 0}}, batches[1].Dests)

	assert.Equal(t, "box", batches[2].Path)
	assert.Equal(t, []core.Point{{X: 64, Y: 32}}, batches[2].Dests)
}

func TestBatchSamePathDifferentLayersNotMerged(t *testing.T) {
	b := NewBatcher(32)
	batches := b.Batch([]Drawable{
		drawable(1, 0, 0, 10, "tile"),
		drawable(2, 1, 0, 10, "tile"),
		drawable(3, 2, 0, 10, "tile"),
	}, 0)
	require.Len(t, batches, 1)
	assert.Len(t, batches[0].Dests, 3)

	// Moving one entity to another layer splits it off
	batches = b.Batch([]Drawable{
		drawable(1, 0, 0, 10, "tile"),
		drawable(2, 1, 0, 11, "tile"),
		drawable(3, 2, 0, 10, "tile"),
	}, 0)
	require.Len(t, batches, 2)
	assert.Equal(t, uint8(10), batches[0].Z)
	assert.Len(t, batches[0].Dests, 2)
	assert.Equal(t, uint8(11), batches[1].Z)
	assert.Equal(t, []core.Point{{X: 32, Y: 0}}, batches[1].Dests)
}

func TestBatchAnimatedFramesSplitByResolvedPath(t *testing.T) {
	b := NewBatcher(16)
	items := []Drawable{
		drawable(1, 0, 0, 10, "box_1", "box_2"),
		drawable(2, 1, 0, 10, "box_1", "box_2"),
		drawable(3, 2, 0, 10, "box_1"),
	}

	at0 := b.Batch(items, 0)
	require.Len(t, at0, 1, "every entity resolves to box_1 at t=0")
	assert.Len(t, at0[0].Dests, 3)

	at250 := b.Batch(items, 250*time.Millisecond)
	require.Len(t, at250, 2)
	assert.Equal(t, "box_2", at250[0].Path)
	assert.Equal(t, []core.Point{{X: 0, Y: 0}, {X: 16, Y: 0}}, at250[0].Dests)
	assert.Equal(t, "box_1", at250[1].Path)
}

func TestBatchEmptyAndStable(t *testing.T) {
	b := NewBatcher(32)
	assert.Nil(t, b.Batch(nil, 0))

	items := []Drawable{
		drawable(1, 0, 0, 1, "b"),
		drawable(2, 0, 0, 1, "a"),
		drawable(3, 0, 0, 1, "b"),
	}
	first := b.Batch(items, 0)
	second := b.Batch(items, 0)
	assert.Equal(t, first, second)
	assert.Equal(t, "b", first[0].Path, "first appearance order within a layer")
	assert.Equal(t, "a", first[1].Path)
}

func TestRecordingPresenter(t *testing.T) {
	var r RecordingPresenter
	_, ok := r.Last()
	assert.False(t, ok)

	require.NoError(t, r.Present(Frame{HUD: HUD{Moves: 3, State: "Playing"}}))
	last, ok := r.Last()
	require.True(t, ok)
	assert.Equal(t, uint32(3), last.HUD.Moves)
}
