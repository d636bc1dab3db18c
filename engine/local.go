package engine

import (
	"errors"
	"fmt"
	"io"
	"time"

	"abalone/game"
	"abalone/meta"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
)

type Option func(e *Engine)

// Engine plays one game. It owns the state and refuses every move once the
// game is over.
type Engine struct {
	id       uuid.UUID
	state    *game.GameState
	turns    int
	maxTurns int
	history  []Update
	logger   zerolog.Logger
}

func WithRules(rules game.Rules) Option {
	return func(e *Engine) {
		if rules != nil {
			e.state.Rules = rules
		}
	}
}

func WithMaxTurns(turns int) Option {
	return func(e *Engine) {
		if turns > 0 {
			e.maxTurns = turns
		}
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// New starts a game on the standard layout with Black to move.
func New(options ...Option) *Engine {
	e := &Engine{ // Default values
		id:       uuid.New(),
		state:    game.NewGameState(game.NewStandardRules()),
		maxTurns: meta.MAX_TURNS,
		logger:   log.Logger,
	}
	for _, option := range options {
		option(e)
	}
	e.logger = e.logger.With().Str("game", e.id.String()).Logger()
	return e
}

func (e *Engine) ID() uuid.UUID {
	return e.id
}

// State returns a copy of the current state.
func (e *Engine) State() *game.GameState {
	return e.state.Copy()
}

// Turns returns the number of moves played so far.
func (e *Engine) Turns() int {
	return e.turns
}

// History returns every move played so far, oldest first.
func (e *Engine) History() []Update {
	return slices.Clone(e.history)
}

// Play checks the selection and the move for the side to move and applies it.
// Rejected moves leave the state untouched.
func (e *Engine) Play(move game.Move) (Update, error) {
	if e.state.GameOver {
		return Update{}, ErrGameOver
	}

	player := e.state.Turn
	err := game.ValidateSelection(e.state.Board, player, move.Selection, e.state.Rules.MaxSelection())
	if err != nil {
		return Update{}, fmt.Errorf("%w: %w", game.ErrIllegalMove, err)
	}
	result, err := e.state.ApplyMove(move)
	if err != nil {
		return Update{}, err
	}
	e.turns++

	u := Update{
		Turn:   e.turns,
		Player: player,
		Move:   move,
		Result: result,
		Hash:   e.state.Hash(),
	}
	e.history = append(e.history, u)

	e.logger.Debug().
		Int("turn", u.Turn).
		Stringer("player", player).
		Stringer("move", move).
		Stringer("kind", result.Kind).
		Int("pushed", result.Pushed).
		Msg("move played")

	if result.Ejected != game.Empty {
		e.logger.Info().Msgf("%v marble pushed off, %d of %d", result.Ejected,
			e.state.Removed[result.Ejected], e.state.Rules.VictoryRemovals())
	}
	if e.state.GameOver {
		e.logger.Info().Msgf("game over after %d turns, winner: %v", e.turns, e.state.Winner())
	}
	return u, nil
}

// Run plays moves from src until the game is over, src returns io.EOF or the
// turn limit is reached. A rejected or unreadable move stops the run.
func (e *Engine) Run(src MoveSource) (GameMetric, error) {
	metric := GameMetric{
		GameID:         e.id.String(),
		StartingPlayer: e.state.Turn,
		StartTime:      time.Now(),
	}
	start := e.turns

	logger := e.logger
	logger.Info().Msgf("%v is starting", e.state.Turn)

	var runErr error
	for !e.state.GameOver && e.turns-start < e.maxTurns {
		move, err := src.NextMove(e.State())
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			runErr = fmt.Errorf("reading move %d: %w", e.turns+1, err)
			break
		}

		if _, err := e.Play(move); err != nil {
			logger.Warn().Err(err).Stringer("move", move).Msg("rejected move")
			runErr = fmt.Errorf("move %d: %w", e.turns+1, err)
			break
		}
	}

	if !e.state.GameOver && e.turns-start >= e.maxTurns {
		logger.Info().Msgf("stopped after %d turns (no winner yet)", e.maxTurns)
	}

	metric.complete(e.state, e.turns-start)
	return metric, runErr
}
