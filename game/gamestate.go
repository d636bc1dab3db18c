package game

import (
	"encoding/binary"
	"errors"
	"fmt"
	"hash/fnv"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// ErrIllegalMove is returned by ApplyMove for a move IsLegalMove rejects.
var ErrIllegalMove = errors.New("illegal move")

type StateHash uint64

// GameState represents the whole state of a game. It is owned by a single
// caller and only ApplyMove mutates it.
type GameState struct {
	Board    Board            // Occupant of every cell
	Turn     Occupant         // Side to move, White or Black
	Removed  map[Occupant]int // Marbles of each colour pushed off the board
	GameOver bool             // Set once a colour loses VictoryRemovals marbles, never reset
	Rules    Rules            // The set of game rules to apply
}

// NewGameState initializes a game on the standard layout with Black to move.
func NewGameState(rules Rules) *GameState {
	return &GameState{
		Board:   NewBoard(),
		Turn:    Black,
		Removed: map[Occupant]int{White: 0, Black: 0},
		Rules:   rules,
	}
}

func (gs *GameState) Copy() *GameState {
	return &GameState{
		Board:    gs.Board.Copy(),
		Turn:     gs.Turn,
		Removed:  maps.Clone(gs.Removed),
		GameOver: gs.GameOver,
		Rules:    gs.Rules, // Assuming Rules is immutable
	}
}

// IsLegalMove reports whether m may be played by the side to move.
//
// The selection is trusted to hold marbles of the side to move; see
// ValidateSelection. Selections of two or more cells that do not form a line
// are never legal.
func (gs *GameState) IsLegalMove(m Move) bool {
	if len(m.Selection) == 0 {
		return false
	}
	kind, err := m.Classify()
	if err != nil {
		return false
	}
	if kind == Broadside {
		return gs.isLegalBroadside(m)
	}
	return gs.isLegalInline(m)
}

// every destination must be an empty cell on the board
func (gs *GameState) isLegalBroadside(m Move) bool {
	for _, c := range m.Selection {
		if occupant, ok := gs.Board.At(PosAfterMove(c, m.Direction)); !ok || occupant != Empty {
			return false
		}
	}
	return true
}

// isLegalInline implements the sumito rule: a line of n marbles pushes at most
// n-1 opposing marbles, and the cell past them must be empty or off the board.
// A line with nothing to push needs an empty cell ahead.
func (gs *GameState) isLegalInline(m Move) bool {
	pos := m.Selection[0]
	for slices.Contains(m.Selection, pos) {
		pos = PosAfterMove(pos, m.Direction)
	}

	opponent := gs.Turn.Opponent()
	others := 0
	for {
		occupant, ok := gs.Board.At(pos)
		if !ok || occupant != opponent {
			break
		}
		others++
		if others >= len(m.Selection) {
			return false
		}
		pos = PosAfterMove(pos, m.Direction)
	}

	occupant, ok := gs.Board.At(pos)
	if !ok {
		return others > 0
	}
	return occupant == Empty
}

// ApplyMove plays m, hands the turn to the opponent and ends the game when a
// colour has lost enough marbles. Moves IsLegalMove rejects leave the state
// untouched and return ErrIllegalMove.
//
// ApplyMove does not refuse moves once GameOver is set; that is up to the caller.
func (gs *GameState) ApplyMove(m Move) (Result, error) {
	if !gs.IsLegalMove(m) {
		return Result{}, fmt.Errorf("%w: %v", ErrIllegalMove, m)
	}

	var result Result
	kind, _ := m.Classify()
	if kind == Broadside {
		result = gs.applyBroadside(m)
	} else {
		result = gs.applyInline(m)
	}

	gs.Turn = gs.Turn.Opponent()
	for _, removed := range gs.Removed {
		if removed >= gs.Rules.VictoryRemovals() {
			gs.GameOver = true
		}
	}
	return result, nil
}

func (gs *GameState) applyBroadside(m Move) Result {
	for _, c := range m.Selection {
		dest := PosAfterMove(c, m.Direction)
		gs.Board[dest] = gs.Board[c]
		gs.Board[c] = Empty
	}
	return Result{Kind: Broadside, Moved: len(m.Selection)}
}

// applyInline shifts every marble from the rear of the selection one step
// forward until an empty cell absorbs the chain or it runs off the board.
func (gs *GameState) applyInline(m Move) Result {
	back := m.Direction.Flip()
	pos := m.Selection[0]
	for slices.Contains(m.Selection, pos) {
		pos = PosAfterMove(pos, back)
	}
	pos = PosAfterMove(pos, m.Direction)

	result := Result{Kind: Inline, Moved: len(m.Selection)}
	opponent := gs.Turn.Opponent()
	carried := Empty
	for {
		occupant, ok := gs.Board.At(pos)
		if !ok {
			break
		}
		gs.Board[pos] = carried
		carried = occupant
		if carried == Empty {
			break
		}
		if carried == opponent {
			result.Pushed++
		}
		pos = PosAfterMove(pos, m.Direction)
	}

	if carried != Empty {
		gs.Removed[carried]++
		result.Ejected = carried
	}
	return result
}

// Play returns the state after m, leaving gs unchanged. It panics on an
// illegal move.
func (gs *GameState) Play(m Move) *GameState {
	newGs := gs.Copy()
	if _, err := newGs.ApplyMove(m); err != nil {
		panic(err)
	}
	return newGs
}

// Winner returns the colour that pushed off enough opposing marbles, or Empty
// while the game goes on.
func (gs *GameState) Winner() Occupant {
	if !gs.GameOver {
		return Empty
	}
	threshold := gs.Rules.VictoryRemovals()
	switch {
	case gs.Removed[Black] >= threshold:
		return White
	case gs.Removed[White] >= threshold:
		return Black
	}
	return Empty
}

func (gs *GameState) Hash() StateHash {
	hasher := fnv.New64a()

	// Hash side to move
	binary.Write(hasher, binary.LittleEndian, int64(gs.Turn))

	// Hash cells in a fixed order
	for _, c := range AllCoords() {
		binary.Write(hasher, binary.LittleEndian, int8(gs.Board[c]))
	}

	// Hash removals
	binary.Write(hasher, binary.LittleEndian, int64(gs.Removed[White]))
	binary.Write(hasher, binary.LittleEndian, int64(gs.Removed[Black]))

	return StateHash(hasher.Sum64())
}
