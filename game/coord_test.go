package game

import (
	"testing"

	"abalone/meta"

	"github.com/stretchr/testify/require"
)

func TestAllCoords(t *testing.T) {
	coords := AllCoords()
	require.Len(t, coords, meta.BOARD_CELLS)

	seen := map[Coord]bool{}
	for _, c := range coords {
		require.True(t, c.OnBoard(), "%v should be on the board", c)
		require.False(t, seen[c], "%v listed twice", c)
		seen[c] = true
	}

	for _, c := range []Coord{{-1, 0}, {0, 5}, {4, 9}, {5, 8}, {8, 5}, {9, 0}, {3, -1}} {
		require.False(t, c.OnBoard(), "%v should be off the board", c)
	}
}

func adjacent(p, q Coord) bool {
	for _, d := range Directions() {
		if PosAfterMove(p, d) == q {
			return true
		}
	}
	return false
}

// stepDistances counts single steps from start to every cell with a breadth first walk.
func stepDistances(start Coord) map[Coord]int {
	dist := map[Coord]int{start: 0}
	queue := []Coord{start}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, d := range Directions() {
			next := PosAfterMove(current, d)
			if _, visited := dist[next]; visited || !next.OnBoard() {
				continue
			}
			dist[next] = dist[current] + 1
			queue = append(queue, next)
		}
	}
	return dist
}

func TestHexaDist(t *testing.T) {
	coords := AllCoords()

	t.Run("zero only on the same cell", func(t *testing.T) {
		for _, p := range coords {
			for _, q := range coords {
				require.Equal(t, p == q, HexaDist(p, q) == 0, "HexaDist(%v, %v)", p, q)
			}
		}
	})

	t.Run("symmetric", func(t *testing.T) {
		for _, p := range coords {
			for _, q := range coords {
				require.Equal(t, HexaDist(p, q), HexaDist(q, p), "HexaDist(%v, %v)", p, q)
			}
		}
	})

	t.Run("one exactly for neighbours", func(t *testing.T) {
		for _, p := range coords {
			for _, q := range coords {
				require.Equal(t, adjacent(p, q), HexaDist(p, q) == 1, "HexaDist(%v, %v)", p, q)
			}
		}
	})

	t.Run("matches the number of steps", func(t *testing.T) {
		for _, p := range coords {
			steps := stepDistances(p)
			for _, q := range coords {
				require.Equal(t, steps[q], HexaDist(p, q), "HexaDist(%v, %v)", p, q)
			}
		}
	})

	t.Run("corner to corner", func(t *testing.T) {
		require.Equal(t, 8, HexaDist(Coord{0, 0}, Coord{8, 0}))
		require.Equal(t, 8, HexaDist(Coord{4, 0}, Coord{4, 8}))
		require.Equal(t, 4, HexaDist(Coord{0, 0}, Coord{4, 4}))
	})
}
