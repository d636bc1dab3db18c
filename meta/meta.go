// meta/meta.go
package meta

// HEX_RADIUS is the number of rings around the centre cell.
const HEX_RADIUS = 4

// CENTER is the index of the row that joins the two mirrored halves of the board.
const CENTER = HEX_RADIUS

// BOARD_CELLS is the number of cells on a radius 4 board.
const BOARD_CELLS = 61

// MARBLES_PER_SIDE is the number of marbles each colour starts with.
const MARBLES_PER_SIDE = 14

// VICTORY_REMOVALS is the number of pushed off marbles that loses the game.
const VICTORY_REMOVALS = 6

// MAX_SELECTION is the longest line a player may move at once.
const MAX_SELECTION = 3

// MAX_TURNS caps the number of moves the engine plays from a single source.
const MAX_TURNS = 300
