package game

import (
	"testing"

	"abalone/meta"

	"github.com/stretchr/testify/require"
)

func TestLineDirection(t *testing.T) {
	t.Run("cells in order", func(t *testing.T) {
		d, err := LineDirection([]Coord{{4, 0}, {4, 1}, {4, 2}})
		require.NoError(t, err)
		require.Equal(t, Down, d)
	})

	t.Run("third cell on the far side of the first", func(t *testing.T) {
		d, err := LineDirection([]Coord{{4, 1}, {4, 2}, {4, 0}})
		require.NoError(t, err)
		require.Equal(t, Down, d)
	})

	t.Run("diagonal across the centre row", func(t *testing.T) {
		d, err := LineDirection([]Coord{{3, 2}, {4, 2}, {5, 1}})
		require.NoError(t, err)
		require.Equal(t, LeftUp, d)
	})

	t.Run("single cell has no line", func(t *testing.T) {
		_, err := LineDirection([]Coord{{4, 4}})
		require.ErrorIs(t, err, ErrNoLine)
	})

	t.Run("gap in the line", func(t *testing.T) {
		_, err := LineDirection([]Coord{{4, 0}, {4, 1}, {4, 3}})
		require.ErrorIs(t, err, ErrNotInLine)
	})

	t.Run("bent line", func(t *testing.T) {
		_, err := LineDirection([]Coord{{4, 0}, {4, 1}, {3, 1}})
		require.ErrorIs(t, err, ErrNotInLine)
	})

	t.Run("first two cells apart", func(t *testing.T) {
		_, err := LineDirection([]Coord{{4, 0}, {4, 2}, {4, 1}})
		require.ErrorIs(t, err, ErrNotInLine)
		require.ErrorIs(t, err, ErrNotAdjacent)
	})

	t.Run("repeated cell", func(t *testing.T) {
		_, err := LineDirection([]Coord{{4, 0}, {4, 1}, {4, 0}})
		require.ErrorIs(t, err, ErrDuplicateCell)
	})
}

func TestValidateSelection(t *testing.T) {
	b := NewBoard()

	require.NoError(t, ValidateSelection(b, Black, []Coord{{6, 2}, {6, 3}, {6, 4}}, meta.MAX_SELECTION))
	require.NoError(t, ValidateSelection(b, White, []Coord{{0, 0}}, meta.MAX_SELECTION))

	for name, tc := range map[string]struct {
		sel  []Coord
		want error
	}{
		"empty":          {nil, ErrEmptySelection},
		"too long":       {[]Coord{{8, 0}, {8, 1}, {8, 2}, {8, 3}}, ErrTooManyMarbles},
		"off the board":  {[]Coord{{9, 0}}, ErrOffBoard},
		"foreign marble": {[]Coord{{0, 0}}, ErrNotOwnMarble},
		"empty cell":     {[]Coord{{4, 4}}, ErrNotOwnMarble},
		"duplicate":      {[]Coord{{8, 0}, {8, 0}}, ErrDuplicateCell},
		"not a line":     {[]Coord{{8, 0}, {8, 2}}, ErrNotInLine},
	} {
		t.Run(name, func(t *testing.T) {
			require.ErrorIs(t, ValidateSelection(b, Black, tc.sel, meta.MAX_SELECTION), tc.want)
		})
	}
}

func TestToggleSelection(t *testing.T) {
	b := NewBoard()
	toggle := func(sel []Coord, cell Coord) []Coord {
		return ToggleSelection(b, Black, sel, cell, meta.MAX_SELECTION)
	}

	t.Run("builds a line one pick at a time", func(t *testing.T) {
		sel := toggle(nil, Coord{7, 0})
		sel = toggle(sel, Coord{7, 1})
		sel = toggle(sel, Coord{7, 2})
		require.Equal(t, []Coord{{7, 0}, {7, 1}, {7, 2}}, sel)
	})

	t.Run("picking a selected cell removes it", func(t *testing.T) {
		sel := toggle([]Coord{{7, 0}, {7, 1}, {7, 2}}, Coord{7, 2})
		require.Equal(t, []Coord{{7, 0}, {7, 1}}, sel)
	})

	t.Run("removing the middle restarts from it", func(t *testing.T) {
		sel := toggle([]Coord{{7, 0}, {7, 1}, {7, 2}}, Coord{7, 1})
		require.Equal(t, []Coord{{7, 1}}, sel)
	})

	t.Run("a fourth pick starts over", func(t *testing.T) {
		sel := toggle([]Coord{{7, 0}, {7, 1}, {7, 2}}, Coord{7, 3})
		require.Equal(t, []Coord{{7, 3}}, sel)
	})

	t.Run("a distant pick starts over", func(t *testing.T) {
		sel := toggle([]Coord{{7, 0}}, Coord{7, 3})
		require.Equal(t, []Coord{{7, 3}}, sel)
	})

	t.Run("a bent pick starts over", func(t *testing.T) {
		sel := toggle([]Coord{{7, 0}, {7, 1}}, Coord{6, 2})
		require.Equal(t, []Coord{{6, 2}}, sel)
	})

	t.Run("a foreign or empty pick clears", func(t *testing.T) {
		require.Empty(t, toggle([]Coord{{7, 0}}, Coord{0, 0}))
		require.Empty(t, toggle([]Coord{{7, 0}}, Coord{4, 4}))
		require.Empty(t, toggle([]Coord{{7, 0}}, Coord{9, 9}))
	})

	t.Run("does not modify its input", func(t *testing.T) {
		sel := []Coord{{7, 0}, {7, 1}, {7, 2}}
		toggle(sel, Coord{7, 2})
		require.Equal(t, []Coord{{7, 0}, {7, 1}, {7, 2}}, sel)
	})
}
