package game

// lineAxes holds one direction of each opposite pair, so every line is built once.
var lineAxes = []Direction{Up, RightUp, RightDown}

// LegalMoves returns every legal move for the side to move, or nil once the
// game is over.
func (gs *GameState) LegalMoves() []Move {
	if gs.GameOver {
		return nil
	}

	var moves []Move
	for _, sel := range gs.selections() {
		for _, d := range Directions() {
			m := Move{Selection: sel, Direction: d}
			if gs.IsLegalMove(m) {
				moves = append(moves, m)
			}
		}
	}
	return moves
}

// selections lists each single marble and each line of own marbles up to
// the longest selection the rules allow.
func (gs *GameState) selections() [][]Coord {
	maxLen := gs.Rules.MaxSelection()
	var out [][]Coord
	for _, c := range AllCoords() {
		if gs.Board[c] != gs.Turn {
			continue
		}
		out = append(out, []Coord{c})
		for _, axis := range lineAxes {
			line := []Coord{c}
			next := PosAfterMove(c, axis)
			for len(line) < maxLen {
				if occupant, ok := gs.Board.At(next); !ok || occupant != gs.Turn {
					break
				}
				line = append(line, next)
				out = append(out, append([]Coord(nil), line...))
				next = PosAfterMove(next, axis)
			}
		}
	}
	return out
}
