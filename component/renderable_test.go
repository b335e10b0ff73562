package component

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRenderableRejectsEmpty(t *testing.T) {
	_, err := NewRenderable()
	assert.ErrorIs(t, err, ErrEmptyRenderable)

	_, err = NewAnimatedRenderable(nil)
	assert.ErrorIs(t, err, ErrEmptyRenderable)

	_, err = NewRenderable("/images/a.png", "")
	assert.ErrorIs(t, err, ErrEmptyRenderable)

	assert.Panics(t, func() { MustRenderable() })
}

func TestRenderableKindAndPath(t *testing.T) {
	static, err := NewStaticRenderable("/images/wall.png")
	require.NoError(t, err)
	assert.Equal(t, RenderableStatic, static.Kind())
	assert.Equal(t, "/images/wall.png", static.Path(0))
	assert.Equal(t, "/images/wall.png", static.Path(7))

	anim, err := NewAnimatedRenderable([]string{"a", "b", "c"})
	require.NoError(t, err)
	assert.Equal(t, RenderableAnimated, anim.Kind())
	assert.Equal(t, 3, anim.Len())
	assert.Equal(t, "a", anim.Path(0))
	assert.Equal(t, "c", anim.Path(2))
	assert.Equal(t, "a", anim.Path(3), "index wraps by frame count")
	assert.Equal(t, "c", anim.Path(-1))
}

func TestRenderableOwnsPaths(t *testing.T) {
	paths := []string{"a", "b"}
	r := MustRenderable(paths...)
	paths[0] = "mutated"
	assert.Equal(t, "a", r.Path(0))
}

func TestZeroRenderablePath(t *testing.T) {
	var r RenderableComponent
	assert.Equal(t, "", r.Path(0))
	assert.Equal(t, RenderableStatic, r.Kind())
}

func TestBoxColourString(t *testing.T) {
	assert.Equal(t, "red", BoxColourRed.String())
	assert.Equal(t, "blue", BoxColourBlue.String())
	assert.Equal(t, "grey", BoxColourGrey.String())
	assert.Equal(t, "unknown", BoxColour(9).String())
	assert.True(t, BoxComponent{Colour: BoxColourBlue}.Colour == BoxSpotComponent{Colour: BoxColourBlue}.Colour)
}
