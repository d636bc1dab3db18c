package game

import "fmt"

// MoveKind tells apart the two ways a line of marbles can move.
type MoveKind int

const (
	Broadside MoveKind = iota // sideways, every marble into its own empty cell
	Inline                    // along the line, possibly pushing opponents
)

func (k MoveKind) String() string {
	if k == Inline {
		return "Inline"
	}
	return "Broadside"
}

// Move is a selection of one to three aligned marbles and the direction they move in.
type Move struct {
	Selection []Coord
	Direction Direction
}

func (m Move) String() string {
	return fmt.Sprintf("%v %v", m.Selection, m.Direction)
}

// Classify returns the kind of move. A single marble always moves broadside,
// which for one marble is the same as moving inline into an empty cell. A
// selection of two or more cells that is not a line has no kind.
func (m Move) Classify() (MoveKind, error) {
	if len(m.Selection) < 2 {
		return Broadside, nil
	}
	line, err := LineDirection(m.Selection)
	if err != nil {
		return Broadside, err
	}
	if m.Direction == line || m.Direction == line.Flip() {
		return Inline, nil
	}
	return Broadside, nil
}

// Result describes what ApplyMove did.
type Result struct {
	Kind    MoveKind
	Moved   int      // own marbles moved
	Pushed  int      // opposing marbles shifted by an inline push
	Ejected Occupant // colour pushed off the board, Empty if none
}
