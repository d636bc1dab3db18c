package engine

import (
	"time"

	"abalone/game"
)

type GameMetric struct {
	GameID         string
	StartingPlayer game.Occupant
	Winner         game.Occupant // Empty if the game did not finish
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
	Removed        map[game.Occupant]int
}

func (m *GameMetric) complete(state *game.GameState, moves int) {
	m.EndTime = time.Now()
	m.Duration = m.EndTime.Sub(m.StartTime)
	m.TotalMoves = moves
	m.Winner = state.Winner()
	m.Removed = map[game.Occupant]int{
		game.White: state.Removed[game.White],
		game.Black: state.Removed[game.Black],
	}
}
