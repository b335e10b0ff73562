package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/boxpusher/core"
)

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Esc)
	SpecialKeys map[tcell.Key]Intent

	// Printable rune bindings
	Runes map[rune]Intent
}

func move(d core.Direction) Intent {
	return Intent{Type: IntentMove, Direction: d}
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]Intent{
			tcell.KeyUp:     move(core.DirUp),
			tcell.KeyDown:   move(core.DirDown),
			tcell.KeyLeft:   move(core.DirLeft),
			tcell.KeyRight:  move(core.DirRight),
			tcell.KeyEscape: {Type: IntentQuit},
			tcell.KeyCtrlC:  {Type: IntentQuit},
			tcell.KeyCtrlQ:  {Type: IntentQuit},
		},
		Runes: map[rune]Intent{
			'w': move(core.DirUp),
			'a': move(core.DirLeft),
			's': move(core.DirDown),
			'd': move(core.DirRight),
			'k': move(core.DirUp),
			'h': move(core.DirLeft),
			'j': move(core.DirDown),
			'l': move(core.DirRight),
			'q': {Type: IntentQuit},
			'm': {Type: IntentToggleMute},
			'r': {Type: IntentRestart},
		},
	}
}

// Lookup resolves a key event; unbound keys yield IntentNone
func (kt *KeyTable) Lookup(ev *tcell.EventKey) Intent {
	if ev == nil {
		return Intent{}
	}
	if ev.Key() == tcell.KeyRune {
		return kt.Runes[ev.Rune()]
	}
	return kt.SpecialKeys[ev.Key()]
}

// Merge overlays other onto kt; entries in other replace existing ones
func (kt *KeyTable) Merge(other *KeyTable) {
	if other == nil {
		return
	}
	for k, v := range other.SpecialKeys {
		kt.SpecialKeys[k] = v
	}
	for r, v := range other.Runes {
		kt.Runes[r] = v
	}
}
