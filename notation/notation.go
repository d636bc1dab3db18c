// Package notation reads and writes moves as plain text, one per line:
//
//	6,2 6,3 leftup
//	4,0 4,1 4,2 u
//
// Cells are row,col pairs and the last field is the direction, either its
// full name or one of the short forms u, d, lu, ld, ru and rd. Blank lines
// and everything after a # are ignored.
package notation

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"abalone/game"
)

var ErrSyntax = errors.New("invalid move notation")

var shortDirections = map[string]game.Direction{
	"u":  game.Up,
	"d":  game.Down,
	"lu": game.LeftUp,
	"ld": game.LeftDown,
	"ru": game.RightUp,
	"rd": game.RightDown,
}

// ParseMove parses one move.
func ParseMove(s string) (game.Move, error) {
	fields := strings.Fields(s)
	if len(fields) < 2 {
		return game.Move{}, fmt.Errorf("%w: want cells and a direction, got %q", ErrSyntax, s)
	}

	last := fields[len(fields)-1]
	d, ok := shortDirections[strings.ToLower(last)]
	if !ok {
		var err error
		if d, err = game.ParseDirection(last); err != nil {
			return game.Move{}, fmt.Errorf("%w: %w", ErrSyntax, err)
		}
	}

	cells := make([]game.Coord, 0, len(fields)-1)
	for _, field := range fields[:len(fields)-1] {
		c, err := ParseCoord(field)
		if err != nil {
			return game.Move{}, err
		}
		cells = append(cells, c)
	}
	return game.Move{Selection: cells, Direction: d}, nil
}

// ParseCoord parses a row,col pair.
func ParseCoord(s string) (game.Coord, error) {
	row, col, found := strings.Cut(s, ",")
	if !found {
		return game.Coord{}, fmt.Errorf("%w: cell %q is not row,col", ErrSyntax, s)
	}
	r, err := strconv.Atoi(row)
	if err != nil {
		return game.Coord{}, fmt.Errorf("%w: cell %q: %w", ErrSyntax, s, err)
	}
	c, err := strconv.Atoi(col)
	if err != nil {
		return game.Coord{}, fmt.Errorf("%w: cell %q: %w", ErrSyntax, s, err)
	}
	return game.Coord{Row: r, Col: c}, nil
}

// FormatMove writes m in the form ParseMove reads.
func FormatMove(m game.Move) string {
	var sb strings.Builder
	for _, c := range m.Selection {
		sb.WriteString(c.String())
		sb.WriteByte(' ')
	}
	sb.WriteString(strings.ToLower(m.Direction.String()))
	return sb.String()
}

// Scanner reads moves line by line. It satisfies engine.MoveSource.
type Scanner struct {
	scanner *bufio.Scanner
	line    int
}

func NewScanner(r io.Reader) *Scanner {
	return &Scanner{scanner: bufio.NewScanner(r)}
}

// NextMove returns the next move in the input, or io.EOF at its end. The
// state is not consulted.
func (s *Scanner) NextMove(*game.GameState) (game.Move, error) {
	for s.scanner.Scan() {
		s.line++
		text := s.scanner.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		if strings.TrimSpace(text) == "" {
			continue
		}
		m, err := ParseMove(text)
		if err != nil {
			return game.Move{}, fmt.Errorf("line %d: %w", s.line, err)
		}
		return m, nil
	}
	if err := s.scanner.Err(); err != nil {
		return game.Move{}, err
	}
	return game.Move{}, io.EOF
}
