package component

import (
	"errors"
	"fmt"
)

// ErrEmptyRenderable is returned when a renderable is built without image paths
var ErrEmptyRenderable = errors.New("renderable requires at least one image path")

// RenderableKind distinguishes single-image from cycling renderables
type RenderableKind uint8

const (
	RenderableStatic RenderableKind = iota
	RenderableAnimated
)

// RenderableComponent holds the image paths an entity draws with.
// One path is static, two or more cycle over time
type RenderableComponent struct {
	paths []string
}

// NewStaticRenderable builds a single-image renderable
func NewStaticRenderable(path string) (RenderableComponent, error) {
	return NewRenderable(path)
}

// NewAnimatedRenderable builds a renderable cycling through paths in order
func NewAnimatedRenderable(paths []string) (RenderableComponent, error) {
	return NewRenderable(paths...)
}

// NewRenderable validates and copies paths; empty input or an empty path is rejected
func NewRenderable(paths ...string) (RenderableComponent, error) {
	if len(paths) == 0 {
		return RenderableComponent{}, ErrEmptyRenderable
	}
	for i, p := range paths {
		if p == "" {
			return RenderableComponent{}, fmt.Errorf("path %d: %w", i, ErrEmptyRenderable)
		}
	}
	owned := make([]string, len(paths))
	copy(owned, paths)
	return RenderableComponent{paths: owned}, nil
}

// MustRenderable is NewRenderable for static tables; panics on invalid input
func MustRenderable(paths ...string) RenderableComponent {
	r, err := NewRenderable(paths...)
	if err != nil {
		panic(err)
	}
	return r
}

// Kind reports static or animated
func (r RenderableComponent) Kind() RenderableKind {
	if len(r.paths) > 1 {
		return RenderableAnimated
	}
	return RenderableStatic
}

// Len returns the number of frames
func (r RenderableComponent) Len() int {
	return len(r.paths)
}

// Path returns the frame at index, wrapped by the frame count.
// Zero value renderables return the empty string
func (r RenderableComponent) Path(index int) string {
	n := len(r.paths)
	if n == 0 {
		return ""
	}
	index %= n
	if index < 0 {
		index += n
	}
	return r.paths[index]
}
