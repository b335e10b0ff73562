package spawn

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lixenwraith/boxpusher/component"
	"github.com/lixenwraith/boxpusher/core"
	"github.com/lixenwraith/boxpusher/engine"
)

// ErrInvalidLevel is returned for malformed level layouts
var ErrInvalidLevel = errors.New("invalid level")

// DefaultLevel is the built-in demo layout.
// Tokens: N empty, . floor, W wall, P player, xB box, xS spot, where x is
// R (red), B (blue) or G (grey). Every non-N cell gets a floor tile
const DefaultLevel = `
N N W W W W W W
W W W . . . . W
W . . . BB . . W
W . . RB . . . W
W . P . . . . W
W . . . . RS . W
W . . BS . . . W
W . . . . . . W
W W W W W W W W
`

// Level summarizes what LoadLevel spawned
type Level struct {
	Width  int
	Height int
	Player core.Entity
	Boxes  int
	Spots  int
}

// LoadLevel parses layout and spawns its entities into w.
// Exactly one player is required; box and spot counts per colour must match
func LoadLevel(w *engine.World, layout string) (Level, error) {
	var level Level
	boxesByColour := make(map[component.BoxColour]int)
	spotsByColour := make(map[component.BoxColour]int)
	players := 0

	rows := make([][]string, 0, 16)
	for _, line := range strings.Split(strings.TrimSpace(layout), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		rows = append(rows, strings.Fields(line))
	}
	if len(rows) == 0 {
		return level, fmt.Errorf("%w: empty layout", ErrInvalidLevel)
	}

	for y, row := range rows {
		if len(row) > level.Width {
			level.Width = len(row)
		}
		for x, token := range row {
			if x > 255 || y > 255 {
				return level, fmt.Errorf("%w: cell (%d,%d) exceeds grid", ErrInvalidLevel, x, y)
			}
			p := core.Point{X: x, Y: y}
			if token == "N" {
				continue
			}
			CreateFloor(w, p)

			switch {
			case token == ".":
			case token == "W":
				CreateWall(w, p)
			case token == "P":
				level.Player = CreatePlayer(w, p)
				players++
			case len(token) == 2 && (token[1] == 'B' || token[1] == 'S'):
				colour, err := parseColour(token[0])
				if err != nil {
					return level, fmt.Errorf("%w: cell (%d,%d): %v", ErrInvalidLevel, x, y, err)
				}
				if token[1] == 'B' {
					CreateBox(w, p, colour)
					boxesByColour[colour]++
					level.Boxes++
				} else {
					CreateBoxSpot(w, p, colour)
					spotsByColour[colour]++
					level.Spots++
				}
			default:
				return level, fmt.Errorf("%w: cell (%d,%d): unknown token %q", ErrInvalidLevel, x, y, token)
			}
		}
	}
	level.Height = len(rows)

	if players != 1 {
		return level, fmt.Errorf("%w: want one player, got %d", ErrInvalidLevel, players)
	}
	for _, colour := range []component.BoxColour{
		component.BoxColourRed, component.BoxColourBlue, component.BoxColourGrey,
	} {
		if spots, boxes := spotsByColour[colour], boxesByColour[colour]; spots != boxes {
			return level, fmt.Errorf("%w: %d %s spots but %d %s boxes",
				ErrInvalidLevel, spots, colour, boxes, colour)
		}
	}
	return level, nil
}

func parseColour(c byte) (component.BoxColour, error) {
	switch c {
	case 'R':
		return component.BoxColourRed, nil
	case 'B':
		return component.BoxColourBlue, nil
	case 'G':
		return component.BoxColourGrey, nil
	}
	return 0, fmt.Errorf("unknown colour %q", c)
}
