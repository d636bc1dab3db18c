package game

import (
	"strings"

	"abalone/meta"

	"golang.org/x/exp/maps"
)

// Occupant is the content of a cell.
type Occupant int

const (
	Empty Occupant = iota
	White
	Black
)

func (o Occupant) String() string {
	switch o {
	case White:
		return "White"
	case Black:
		return "Black"
	default:
		return "Empty"
	}
}

// Opponent returns the other colour. Empty has no opponent and maps to itself.
func (o Occupant) Opponent() Occupant {
	switch o {
	case White:
		return Black
	case Black:
		return White
	default:
		return Empty
	}
}

func (o Occupant) symbol() byte {
	switch o {
	case White:
		return 'W'
	case Black:
		return 'B'
	default:
		return '.'
	}
}

// Board maps every cell to its occupant. Cells off the board are never keys.
type Board map[Coord]Occupant

// NewEmptyBoard returns a board with all 61 cells empty.
func NewEmptyBoard() Board {
	b := make(Board, meta.BOARD_CELLS)
	for _, c := range AllCoords() {
		b[c] = Empty
	}
	return b
}

// NewBoard returns the standard starting layout: White fills rows 0 and 1 and
// the middle three cells of row 2, Black holds the mirror image on rows 8, 7
// and 6.
func NewBoard() Board {
	b := NewEmptyBoard()
	last := 2 * meta.HEX_RADIUS
	for row := 0; row < meta.CENTER; row++ {
		for col := 0; col < rowLength(row); col++ {
			if row < 2 || (row == 2 && col >= 2 && col <= 4) {
				b[Coord{row, col}] = White
				b[Coord{last - row, col}] = Black
			}
		}
	}
	return b
}

// At returns the occupant of c and whether c is on the board.
func (b Board) At(c Coord) (Occupant, bool) {
	o, ok := b[c]
	return o, ok
}

// Copy returns an independent copy of the board.
func (b Board) Copy() Board {
	return maps.Clone(b)
}

// Count returns the number of cells holding o.
func (b Board) Count(o Occupant) int {
	n := 0
	for _, occupant := range b {
		if occupant == o {
			n++
		}
	}
	return n
}

// String dumps the board one row per line, W for White, B for Black and . for
// an empty cell.
func (b Board) String() string {
	var sb strings.Builder
	for row := 0; row <= 2*meta.HEX_RADIUS; row++ {
		sb.WriteString(strings.Repeat(" ", meta.HEX_RADIUS+1-min(row, 2*meta.HEX_RADIUS-row)))
		for col := 0; col < rowLength(row); col++ {
			if col > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteByte(b[Coord{row, col}].symbol())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
