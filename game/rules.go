package game

type Rules interface {
	VictoryRemovals() int // Pushed off marbles of one colour that end the game
	MaxSelection() int    // Longest line a player may move
}
