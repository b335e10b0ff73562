package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/boxpusher/config"
)

// solution solves the built-in level: red box right twice and down twice,
// blue box left once and down four times
const solution = "URRDRRUULDD" + "UULULDDDD"

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := newApp(&out).Run(context.Background(), append([]string{"boxpusher"}, args...))
	return out.String(), err
}

func TestSimulateSolvesDefaultLevel(t *testing.T) {
	out, err := runApp(t, "simulate", "--moves", solution)
	require.NoError(t, err)

	assert.Contains(t, out, "player: (3,5)\n")
	assert.Contains(t, out, "box red: (5,5)\n")
	assert.Contains(t, out, "box blue: (3,6)\n")
	assert.Contains(t, out, "moves: 20\n")
	assert.Contains(t, out, "state: Won\n")
}

func TestSimulateBlockedMoveDoesNotCount(t *testing.T) {
	// Player starts at (2,4); three lefts reach the wall at column 0
	out, err := runApp(t, "simulate", "--moves", "LLL")
	require.NoError(t, err)

	assert.Contains(t, out, "player: (1,4)\n")
	assert.Contains(t, out, "moves: 1\n")
	assert.Contains(t, out, "state: Playing\n")
}

func TestSimulateIsDeterministic(t *testing.T) {
	first, err := runApp(t, "simulate", "--moves", "RRUULLDD")
	require.NoError(t, err)
	second, err := runApp(t, "simulate", "--moves", "RRUULLDD")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestSimulateRejectsBadMoves(t *testing.T) {
	_, err := runApp(t, "simulate", "--moves", "RX")
	assert.Error(t, err)
}

func TestSimulateWithConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "boxpusher.yaml")
	require.NoError(t, os.WriteFile(path, []byte("input: {order: lifo}\n"), 0o644))

	out, err := runApp(t, "--config", path, "simulate", "--moves", "R")
	require.NoError(t, err)
	assert.Contains(t, out, "player: (3,4)\n")

	_, err = runApp(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "simulate", "--moves", "R")
	assert.Error(t, err)
}

func TestSimulateRejectsMapSmallerThanLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "boxpusher.yaml")
	require.NoError(t, os.WriteFile(path, []byte("map: {width: 4}\n"), 0o644))

	_, err := runApp(t, "--config", path, "simulate", "--moves", "R")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}
