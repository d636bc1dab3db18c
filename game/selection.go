package game

import (
	"errors"
	"fmt"

	"golang.org/x/exp/slices"
)

var (
	ErrEmptySelection = errors.New("selection is empty")
	ErrTooManyMarbles = errors.New("selection is too long")
	ErrDuplicateCell  = errors.New("selection repeats a cell")
	ErrOffBoard       = errors.New("selection leaves the board")
	ErrNotOwnMarble   = errors.New("selection holds a cell without a marble of the side to move")
	ErrNoLine         = errors.New("a single cell has no line direction")
	ErrNotInLine      = errors.New("selection is not a contiguous line")
)

// LineDirection returns the direction of the line formed by sel, taken from
// its first two cells as GetDirection(sel[0], sel[1]). The cells may come in
// any order as long as the first two are neighbours and together they cover
// one contiguous stretch of a single line.
func LineDirection(sel []Coord) (Direction, error) {
	if len(sel) < 2 {
		return 0, ErrNoLine
	}
	if hasDuplicates(sel) {
		return 0, ErrDuplicateCell
	}
	line, err := GetDirection(sel[0], sel[1])
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrNotInLine, err)
	}

	end := sel[0]
	for next := PosAfterMove(end, line); slices.Contains(sel, next); next = PosAfterMove(next, line) {
		end = next
	}
	n := 1
	for pos := PosAfterMove(end, line.Flip()); slices.Contains(sel, pos); pos = PosAfterMove(pos, line.Flip()) {
		n++
	}
	if n != len(sel) {
		return 0, fmt.Errorf("%w: %v", ErrNotInLine, sel)
	}
	return line, nil
}

// ValidateSelection checks everything the rules assume about a selection
// before a move is judged: length, ownership by the side to move and shape.
func ValidateSelection(b Board, turn Occupant, sel []Coord, maxLen int) error {
	if len(sel) == 0 {
		return ErrEmptySelection
	}
	if len(sel) > maxLen {
		return fmt.Errorf("%w: %d cells, at most %d", ErrTooManyMarbles, len(sel), maxLen)
	}
	for _, c := range sel {
		occupant, ok := b.At(c)
		if !ok {
			return fmt.Errorf("%w: %v", ErrOffBoard, c)
		}
		if occupant != turn {
			return fmt.Errorf("%w: %v holds %v", ErrNotOwnMarble, c, occupant)
		}
	}
	if hasDuplicates(sel) {
		return ErrDuplicateCell
	}
	if len(sel) > 1 {
		if _, err := LineDirection(sel); err != nil {
			return err
		}
	}
	return nil
}

// ToggleSelection returns the selection after the player picks cell.
//
// Picking a cell without an own marble clears the selection. Picking a
// selected cell removes it. Picking a new cell appends it while fewer than
// maxLen are selected and starts over from it otherwise. Whenever the result
// is not a line, the selection restarts from the picked cell alone.
func ToggleSelection(b Board, turn Occupant, sel []Coord, cell Coord, maxLen int) []Coord {
	if occupant, ok := b.At(cell); !ok || occupant != turn {
		return nil
	}

	next := slices.Clone(sel)
	if i := slices.Index(next, cell); i >= 0 {
		next = slices.Delete(next, i, i+1)
	} else if len(next) < maxLen {
		next = append(next, cell)
	} else {
		next = []Coord{cell}
	}

	if len(next) == 2 && HexaDist(next[0], next[1]) > 1 {
		return []Coord{cell}
	}
	if len(next) > 2 {
		if _, err := LineDirection(next); err != nil {
			return []Coord{cell}
		}
	}
	return next
}

func hasDuplicates(sel []Coord) bool {
	for i, c := range sel {
		if slices.Contains(sel[i+1:], c) {
			return true
		}
	}
	return false
}
