package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectionDelta(t *testing.T) {
	tests := []struct {
		dir    Direction
		dx, dy int
		horiz  bool
	}{
		{DirUp, 0, -1, false},
		{DirDown, 0, 1, false},
		{DirLeft, -1, 0, true},
		{DirRight, 1, 0, true},
		{DirNone, 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			dx, dy := tt.dir.Delta()
			assert.Equal(t, tt.dx, dx)
			assert.Equal(t, tt.dy, dy)
			assert.Equal(t, tt.horiz, tt.dir.Horizontal())
		})
	}
}

func TestParseMoves(t *testing.T) {
	moves, err := ParseMoves("RrU l,D")
	require.NoError(t, err)
	assert.Equal(t, []Direction{DirRight, DirRight, DirUp, DirLeft, DirDown}, moves)

	_, err = ParseMoves("RX")
	assert.Error(t, err)
}

func TestDirectionValidity(t *testing.T) {
	assert.False(t, DirNone.IsValid())
	assert.True(t, DirRight.IsValid())
	assert.False(t, Direction(42).IsValid())
	assert.Equal(t, "direction(42)", Direction(42).String())
}
