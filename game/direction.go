package game

import (
	"errors"
	"fmt"
	"strings"

	"abalone/meta"
)

// Direction is one of the six unit steps on the board.
type Direction int

const (
	Up Direction = iota
	Down
	LeftUp
	LeftDown
	RightUp
	RightDown
)

// ErrNotAdjacent is returned by GetDirection for pairs that are not one step apart.
var ErrNotAdjacent = errors.New("cells are not adjacent")

// ErrUnknownDirection is returned by ParseDirection.
var ErrUnknownDirection = errors.New("unknown direction")

var directionNames = [...]string{
	Up:        "Up",
	Down:      "Down",
	LeftUp:    "LeftUp",
	LeftDown:  "LeftDown",
	RightUp:   "RightUp",
	RightDown: "RightDown",
}

// Directions returns the six directions in declaration order.
func Directions() []Direction {
	return []Direction{Up, Down, LeftUp, LeftDown, RightUp, RightDown}
}

func (d Direction) String() string {
	if d < Up || d > RightDown {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d]
}

// ParseDirection accepts a direction name in any case, with or without a
// hyphen or underscore between its words.
func ParseDirection(s string) (Direction, error) {
	name := strings.NewReplacer("-", "", "_", "").Replace(strings.ToLower(s))
	for _, d := range Directions() {
		if strings.ToLower(directionNames[d]) == name {
			return d, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDirection, s)
}

// Flip returns the opposite direction.
func (d Direction) Flip() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case LeftUp:
		return RightDown
	case LeftDown:
		return RightUp
	case RightUp:
		return LeftDown
	default:
		return LeftUp
	}
}

// GetDirection returns the direction that leads from p2 to p1. The two cells
// must be one step apart; any other pair is a caller bug and yields ErrNotAdjacent.
func GetDirection(p1, p2 Coord) (Direction, error) {
	dRow, dCol := p1.Row-p2.Row, p1.Col-p2.Col
	if dRow == 0 {
		switch dCol {
		case 1:
			return Up, nil
		case -1:
			return Down, nil
		}
		return 0, fmt.Errorf("%w: %v and %v", ErrNotAdjacent, p1, p2)
	}

	if p1.Row < meta.CENTER || p2.Row < meta.CENTER { // left half
		switch {
		case dRow == 1 && dCol == 0:
			return RightDown, nil
		case dRow == 1 && dCol == 1:
			return RightUp, nil
		case dRow == -1 && dCol == -1:
			return LeftDown, nil
		case dRow == -1 && dCol == 0:
			return LeftUp, nil
		}
	} else { // right half
		switch {
		case dRow == 1 && dCol == -1:
			return RightDown, nil
		case dRow == 1 && dCol == 0:
			return RightUp, nil
		case dRow == -1 && dCol == 0:
			return LeftDown, nil
		case dRow == -1 && dCol == 1:
			return LeftUp, nil
		}
	}
	return 0, fmt.Errorf("%w: %v and %v", ErrNotAdjacent, p1, p2)
}

// PosAfterMove returns the cell one step from pos in direction d. The result
// may lie off the board.
//
// On the centre row the Left* steps use the left half offsets and the Right*
// steps use the right half offsets.
func PosAfterMove(pos Coord, d Direction) Coord {
	switch d {
	case Up:
		return Coord{pos.Row, pos.Col + 1}
	case Down:
		return Coord{pos.Row, pos.Col - 1}
	}

	left := pos.Row < meta.CENTER || (pos.Row == meta.CENTER && (d == LeftUp || d == LeftDown))
	if left {
		switch d {
		case LeftDown:
			return Coord{pos.Row - 1, pos.Col - 1}
		case LeftUp:
			return Coord{pos.Row - 1, pos.Col}
		case RightDown:
			return Coord{pos.Row + 1, pos.Col}
		default:
			return Coord{pos.Row + 1, pos.Col + 1}
		}
	}
	switch d {
	case LeftDown:
		return Coord{pos.Row - 1, pos.Col}
	case LeftUp:
		return Coord{pos.Row - 1, pos.Col + 1}
	case RightDown:
		return Coord{pos.Row + 1, pos.Col - 1}
	default:
		return Coord{pos.Row + 1, pos.Col}
	}
}
