package input

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/boxpusher/core"
)

// actionNames maps config action names to intents
var actionNames = map[string]Intent{
	"up":      move(core.DirUp),
	"down":    move(core.DirDown),
	"left":    move(core.DirLeft),
	"right":   move(core.DirRight),
	"quit":    {Type: IntentQuit},
	"mute":    {Type: IntentToggleMute},
	"restart": {Type: IntentRestart},
}

// Rune aliases for keys that are awkward as bare config strings
var runeAliases = map[string]rune{
	"space": ' ',
}

// specialKeyNames is the lowercase reverse of tcell.KeyNames
var specialKeyNames = func() map[string]tcell.Key {
	m := make(map[string]tcell.Key, len(tcell.KeyNames))
	for k, name := range tcell.KeyNames {
		m[strings.ToLower(name)] = k
	}
	return m
}()

// LoadKeyBindings builds a sparse override table from action → key names.
// Key names are single runes, rune aliases, or tcell key names ("Up", "Esc", "Ctrl-C")
func LoadKeyBindings(bindings map[string][]string) (*KeyTable, error) {
	kt := &KeyTable{
		SpecialKeys: make(map[tcell.Key]Intent),
		Runes:       make(map[rune]Intent),
	}

	for action, keys := range bindings {
		intent, ok := actionNames[strings.ToLower(action)]
		if !ok {
			return nil, fmt.Errorf("unknown action %q", action)
		}
		for _, name := range keys {
			if err := kt.bind(name, intent); err != nil {
				return nil, fmt.Errorf("action %q: %w", action, err)
			}
		}
	}
	return kt, nil
}

func (kt *KeyTable) bind(name string, intent Intent) error {
	if name == "" {
		return fmt.Errorf("empty key name")
	}
	if utf8.RuneCountInString(name) == 1 {
		r, _ := utf8.DecodeRuneInString(name)
		kt.Runes[r] = intent
		return nil
	}
	lower := strings.ToLower(name)
	if r, ok := runeAliases[lower]; ok {
		kt.Runes[r] = intent
		return nil
	}
	if k, ok := specialKeyNames[lower]; ok {
		kt.SpecialKeys[k] = intent
		return nil
	}
	return fmt.Errorf("unknown key %q", name)
}
