package input

import "github.com/lixenwraith/boxpusher/core"

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	IntentMove       // Arrows, WASD, hjkl
	IntentQuit       // q, Esc, Ctrl+C
	IntentToggleMute // m
	IntentRestart    // r
)

func (t IntentType) String() string {
	switch t {
	case IntentMove:
		return "move"
	case IntentQuit:
		return "quit"
	case IntentToggleMute:
		return "mute"
	case IntentRestart:
		return "restart"
	}
	return "none"
}

// Intent is a key press resolved to an action
type Intent struct {
	Type      IntentType
	Direction core.Direction // Set for IntentMove
}
