package engine

import (
	"errors"

	"abalone/game"
)

// ErrGameOver is returned by Play once a side has won.
var ErrGameOver = errors.New("game is over - no moves allowed")

// MoveSource supplies the next move for the side to move. It returns io.EOF
// when it has no more moves.
type MoveSource interface {
	NextMove(state *game.GameState) (game.Move, error)
}

// Update describes one played move.
type Update struct {
	Turn   int           // 1 for the first move of the game
	Player game.Occupant // Side that played the move
	Move   game.Move
	Result game.Result
	Hash   game.StateHash // Hash of the state after the move
}
