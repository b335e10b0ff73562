package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/boxpusher/component"
	"github.com/lixenwraith/boxpusher/core"
)

func TestStoreLifecycle(t *testing.T) {
	s := NewStore[component.PositionComponent]()

	s.Set(1, component.PositionComponent{X: 1, Y: 2})
	s.Set(2, component.PositionComponent{X: 3, Y: 4})
	s.Set(1, component.PositionComponent{X: 5, Y: 6})
	assert.Equal(t, 2, s.Count(), "overwrite must not duplicate entity")

	pos, ok := s.Get(1)
	assert.True(t, ok)
	assert.Equal(t, uint8(5), pos.X)

	assert.True(t, s.Update(2, func(p *component.PositionComponent) { p.X++ }))
	pos, _ = s.Get(2)
	assert.Equal(t, uint8(4), pos.X)
	assert.False(t, s.Update(99, func(p *component.PositionComponent) { p.X++ }))

	s.Remove(1)
	assert.False(t, s.Has(1))
	assert.Equal(t, []core.Entity{2}, s.All())

	s.Remove(1) // absent is a no-op
	s.Clear()
	assert.Zero(t, s.Count())
}

func TestStoreAllReturnsCopy(t *testing.T) {
	s := NewStore[component.MovableComponent]()
	s.Set(7, component.MovableComponent{})
	all := s.All()
	all[0] = 99
	assert.True(t, s.Has(7))
	assert.False(t, s.Has(99))
}
