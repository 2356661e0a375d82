package core

import (
	"fmt"
	"strings"
)

// Direction is a move request coming from whatever drives the game.
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// Directions lists the four cardinal directions in token order.
var Directions = []Direction{DirUp, DirDown, DirLeft, DirRight}

// String returns the lowercase token for the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "none"
	}
}

// Valid reports whether d is one of the four cardinal directions.
func (d Direction) Valid() bool {
	return d >= DirUp && d <= DirRight
}

// Vector returns the unit step (drow, dcol) for the direction.
// Up moves toward row 0, left toward column 0.
func (d Direction) Vector() (int, int) {
	switch d {
	case DirUp:
		return -1, 0
	case DirDown:
		return 1, 0
	case DirLeft:
		return 0, -1
	case DirRight:
		return 0, 1
	default:
		return 0, 0
	}
}

// ParseDirection converts a direction token (case-insensitive, surrounding
// whitespace ignored) into a Direction.
func ParseDirection(token string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "up":
		return DirUp, nil
	case "down":
		return DirDown, nil
	case "left":
		return DirLeft, nil
	case "right":
		return DirRight, nil
	default:
		return DirNone, fmt.Errorf("unknown direction %q", token)
	}
}
