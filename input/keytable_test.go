package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/boxpusher/core"
)

func TestDefaultKeyTableLookup(t *testing.T) {
	kt := DefaultKeyTable()

	tests := []struct {
		name string
		ev   *tcell.EventKey
		want Intent
	}{
		{"arrow up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), move(core.DirUp)},
		{"arrow right", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), move(core.DirRight)},
		{"wasd", tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone), move(core.DirLeft)},
		{"vi", tcell.NewEventKey(tcell.KeyRune, 'j', tcell.ModNone), move(core.DirDown)},
		{"quit rune", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), Intent{Type: IntentQuit}},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), Intent{Type: IntentQuit}},
		{"mute", tcell.NewEventKey(tcell.KeyRune, 'm', tcell.ModNone), Intent{Type: IntentToggleMute}},
		{"unbound", tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone), Intent{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, kt.Lookup(tt.ev))
		})
	}

	assert.Equal(t, Intent{}, kt.Lookup(nil))
}

func TestLoadKeyBindingsMerge(t *testing.T) {
	override, err := LoadKeyBindings(map[string][]string{
		"up":   {"i", "PgUp"},
		"quit": {"x"},
		"mute": {"space"},
	})
	require.NoError(t, err)

	kt := DefaultKeyTable()
	kt.Merge(override)

	assert.Equal(t, move(core.DirUp), kt.Lookup(tcell.NewEventKey(tcell.KeyRune, 'i', tcell.ModNone)))
	assert.Equal(t, move(core.DirUp), kt.Lookup(tcell.NewEventKey(tcell.KeyPgUp, 0, tcell.ModNone)))
	assert.Equal(t, IntentQuit, kt.Lookup(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)).Type)
	assert.Equal(t, IntentToggleMute, kt.Lookup(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone)).Type)

	// Defaults survive
	assert.Equal(t, move(core.DirUp), kt.Lookup(tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone)))
}

func TestLoadKeyBindingsErrors(t *testing.T) {
	_, err := LoadKeyBindings(map[string][]string{"jump": {"j"}})
	assert.Error(t, err)

	_, err = LoadKeyBindings(map[string][]string{"up": {"NoSuchKey"}})
	assert.Error(t, err)

	_, err = LoadKeyBindings(map[string][]string{"up": {""}})
	assert.Error(t, err)
}
