// Package record writes finished games as CSV files into a directory.
package record

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"abalone/engine"
	"abalone/game"
	"abalone/notation"
)

const (
	GamesFile = "games.csv"
	MovesFile = "moves.csv"
)

type Writer struct {
	baseDir string
}

// NewWriter creates baseDir if needed. When timestamped is set the files go
// into a subfolder named by the current time instead.
func NewWriter(baseDir string, timestamped bool) (*Writer, error) {
	if timestamped {
		baseDir = filepath.Join(baseDir, time.Now().UTC().Format("20060102T150405Z"))
	}
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

// WriteGame appends the summary of a game to the games file and its moves to
// the moves file. Headers are written when a file is created.
func (w *Writer) WriteGame(metric engine.GameMetric, history []engine.Update) error {
	gameRow := []string{
		metric.GameID,
		metric.StartingPlayer.String(),
		metric.Winner.String(),
		metric.StartTime.Format(time.RFC3339),
		metric.EndTime.Format(time.RFC3339),
		metric.Duration.String(),
		strconv.Itoa(metric.TotalMoves),
		strconv.Itoa(metric.Removed[game.White]),
		strconv.Itoa(metric.Removed[game.Black]),
	}
	gameHeader := []string{"id", "starting_player", "winner", "start_time", "end_time", "duration", "total_moves", "white_removed", "black_removed"}
	if err := w.appendRows(GamesFile, gameHeader, [][]string{gameRow}); err != nil {
		return fmt.Errorf("failed to write game record: %w", err)
	}

	moveRows := make([][]string, 0, len(history))
	for _, u := range history {
		moveRows = append(moveRows, []string{
			metric.GameID,
			strconv.Itoa(u.Turn),
			u.Player.String(),
			notation.FormatMove(u.Move),
			u.Result.Kind.String(),
			strconv.Itoa(u.Result.Moved),
			strconv.Itoa(u.Result.Pushed),
			u.Result.Ejected.String(),
			strconv.FormatUint(uint64(u.Hash), 16),
		})
	}
	moveHeader := []string{"game", "turn", "player", "move", "kind", "moved", "pushed", "ejected", "hash"}
	if err := w.appendRows(MovesFile, moveHeader, moveRows); err != nil {
		return fmt.Errorf("failed to write move records: %w", err)
	}
	return nil
}

func (w *Writer) appendRows(name string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, name)
	_, statErr := os.Stat(path)
	isNew := os.IsNotExist(statErr)

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", name, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if isNew {
		if err := writer.Write(header); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
	}
	if err := writer.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write rows: %w", err)
	}
	return nil
}
