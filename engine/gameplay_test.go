package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGameplayCounters(t *testing.T) {
	var g Gameplay
	assert.Equal(t, GameplayPlaying, g.State())
	assert.Equal(t, uint32(1), g.IncrementMoves())
	assert.Equal(t, uint32(2), g.IncrementMoves())

	assert.True(t, g.SetState(GameplayWon))
	assert.False(t, g.SetState(GameplayWon), "same state is not a transition")
	assert.Equal(t, "Won", g.State().String())

	g.Reset()
	assert.Zero(t, g.MovesCount())
	assert.Equal(t, "Playing", g.State().String())
}
