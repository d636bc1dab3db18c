package game

import (
	"fmt"

	"abalone/meta"
)

// Coord identifies one cell of the board. Row runs 0..8 across the board and
// row 4 is the seam between the two mirrored halves. Col runs along a row,
// Up/Down move along it.
type Coord struct {
	Row int
	Col int
}

func (c Coord) String() string {
	return fmt.Sprintf("%d,%d", c.Row, c.Col)
}

// rowLength returns the number of cells in a row, 0 for rows off the board.
func rowLength(row int) int {
	if row < 0 || row > 2*meta.HEX_RADIUS {
		return 0
	}
	return min(row, 2*meta.HEX_RADIUS-row) + meta.HEX_RADIUS + 1
}

// OnBoard reports whether c is one of the 61 cells of the board.
func (c Coord) OnBoard() bool {
	return c.Col >= 0 && c.Col < rowLength(c.Row)
}

// AllCoords returns every board cell in row-major order.
func AllCoords() []Coord {
	coords := make([]Coord, 0, meta.BOARD_CELLS)
	for row := 0; row <= 2*meta.HEX_RADIUS; row++ {
		for col := 0; col < rowLength(row); col++ {
			coords = append(coords, Coord{Row: row, Col: col})
		}
	}
	return coords
}

// HexaDist returns the number of single steps between two cells.
//
// Cells on the same half are compared directly: walking from the cell nearer
// the edge towards the other one widens the reachable column range by one per
// row. Cells on opposite halves are both projected onto the centre row first.
func HexaDist(p1, p2 Coord) int {
	center := meta.CENTER
	if (p1.Row <= center && p2.Row <= center) || (p1.Row >= center && p2.Row >= center) {
		if p1.Row <= center && p2.Row <= center {
			if p1.Row > p2.Row {
				p1, p2 = p2, p1
			}
		} else if p1.Row < p2.Row {
			p1, p2 = p2, p1
		}
		rows := abs(p1.Row - p2.Row)
		lo, hi := p1.Col, p1.Col+rows
		return rows + max(0, max(lo, p2.Col)-min(hi, p2.Col))
	}

	lo1, hi1 := p1.Col, p1.Col+abs(center-p1.Row)
	lo2, hi2 := p2.Col, p2.Col+abs(center-p2.Row)
	return abs(p1.Row-p2.Row) + max(0, max(lo1, lo2)-min(hi1, hi2))
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
