package game

import "abalone/meta"

type StandardRules struct {
	Removals  int
	MaxMarble int
}

func NewStandardRules() *StandardRules {
	return &StandardRules{
		Removals:  meta.VICTORY_REMOVALS,
		MaxMarble: meta.MAX_SELECTION,
	}
}

func (sr *StandardRules) VictoryRemovals() int {
	return sr.Removals
}

func (sr *StandardRules) MaxSelection() int {
	return sr.MaxMarble
}
