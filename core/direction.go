package core

import (
	"fmt"
	"strings"
)

// Direction is a single directional input
type Direction uint8

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

var directionNames = [...]string{
	DirNone:  "none",
	DirUp:    "up",
	DirDown:  "down",
	DirLeft:  "left",
	DirRight: "right",
}

func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return fmt.Sprintf("direction(%d)", d)
}

// IsValid reports whether d is one of the four movement directions
func (d Direction) IsValid() bool {
	return d >= DirUp && d <= DirRight
}

// Horizontal reports whether d varies the x axis
func (d Direction) Horizontal() bool {
	return d == DirLeft || d == DirRight
}

// Delta returns the unit displacement for d
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	}
	return 0, 0
}

// ParseDirection accepts full names and the single letters U/D/L/R, case-insensitive
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "u", "up":
		return DirUp, nil
	case "d", "down":
		return DirDown, nil
	case "l", "left":
		return DirLeft, nil
	case "r", "right":
		return DirRight, nil
	}
	return DirNone, fmt.Errorf("unknown direction %q", s)
}

// ParseMoves parses a compact move string such as "RRUL" or "r r u l"
func ParseMoves(s string) ([]Direction, error) {
	moves := make([]Direction, 0, len(s))
	for i, r := range s {
		if r == ' ' || r == ',' {
			continue
		}
		d, err := ParseDirection(string(r))
		if err != nil {
			return nil, fmt.Errorf("move %d: %w", i, err)
		}
		moves = append(moves, d)
	}
	return moves, nil
}
