package main

// MoveChoice is a strategy's selection: where to play and which piece kind
// to place.
type MoveChoice struct {
	Pos  Position
	Kind PieceKind
}

// Player is a move-choosing collaborator. Strategies see a cloned state and
// the rules; they never mutate the live game.
type Player interface {
	IsHuman() bool
	ChooseMove(state GameState, rules Rules) (MoveChoice, bool)
}

const (
	StrategyRandom = "random"
	StrategyGreedy = "greedy"
)

// strategyFactories is the explicit strategy registry, populated once here
// rather than through registration side effects.
var strategyFactories = map[string]func() Player{
	StrategyRandom: func() Player { return NewRandomPlayer() },
	StrategyGreedy: func() Player { return NewGreedyPlayer() },
}

func newPlayer(playerType PlayerType, strategy string) Player {
	if playerType == PlayerHuman {
		return NewHumanPlayer()
	}
	if factory, ok := strategyFactories[strategy]; ok {
		return factory()
	}
	return NewGreedyPlayer()
}

// StrategyNames lists the registered AI strategies.
func StrategyNames() []string {
	names := make([]string, 0, len(strategyFactories))
	for name := range strategyFactories {
		names = append(names, name)
	}
	return names
}
