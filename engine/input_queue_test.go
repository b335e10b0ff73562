package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/boxpusher/core"
)

func drain(q *InputQueue) []core.Direction {
	var out []core.Direction
	for {
		d, ok := q.Pop()
		if !ok {
			return out
		}
		out = append(out, d)
	}
}

func TestInputQueueOrder(t *testing.T) {
	tests := []struct {
		name  string
		order InputOrder
		want  []core.Direction
	}{
		{"fifo", InputFIFO, []core.Direction{core.DirUp, core.DirLeft, core.DirDown}},
		{"lifo", InputLIFO, []core.Direction{core.DirDown, core.DirLeft, core.DirUp}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := NewInputQueue(tt.order, 0)
			q.Push(core.DirUp)
			q.Push(core.DirLeft)
			q.Push(core.DirDown)
			assert.Equal(t, tt.want, drain(q))
			assert.Equal(t, tt.name, q.Order().String())
		})
	}
}

func TestInputQueueCapacity(t *testing.T) {
	q := NewInputQueue(InputFIFO, 2)
	assert.True(t, q.Push(core.DirUp))
	assert.True(t, q.Push(core.DirUp))
	assert.False(t, q.Push(core.DirDown), "full queue drops key")
	assert.Equal(t, 2, q.Len())

	q.Clear()
	_, ok := q.Pop()
	assert.False(t, ok)
}

func TestParseInputOrder(t *testing.T) {
	o, err := ParseInputOrder("LIFO")
	assert.NoError(t, err)
	assert.Equal(t, InputLIFO, o)

	o, err = ParseInputOrder("")
	assert.NoError(t, err)
	assert.Equal(t, InputFIFO, o)

	_, err = ParseInputOrder("random")
	assert.Error(t, err)
}
