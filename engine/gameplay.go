package engine

import "sync"

// GameplayState is the coarse state label of a level
type GameplayState uint8

const (
	GameplayPlaying GameplayState = iota
	GameplayWon
)

func (s GameplayState) String() string {
	switch s {
	case GameplayPlaying:
		return "Playing"
	case GameplayWon:
		return "Won"
	}
	return "Unknown"
}

// Gameplay is the shared counter state mutated by the movement and state systems
type Gameplay struct {
	mu         sync.RWMutex
	movesCount uint32
	state      GameplayState
}

// MovesCount returns the number of ticks that moved at least one entity
func (g *Gameplay) MovesCount() uint32 {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.movesCount
}

// IncrementMoves counts one successful move; never decrements
func (g *Gameplay) IncrementMoves() uint32 {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.movesCount++
	return g.movesCount
}

// State returns the current label
func (g *Gameplay) State() GameplayState {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.state
}

// SetState updates the label and reports whether it changed
func (g *Gameplay) SetState(s GameplayState) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.state == s {
		return false
	}
	g.state = s
	return true
}

// Reset returns to a fresh level
func (g *Gameplay) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.movesCount = 0
	g.state = GameplayPlaying
}
