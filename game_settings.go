package main

type PlayerType int

const (
	PlayerHuman PlayerType = iota
	PlayerAI
)

const (
	defaultVolatileSupply  = 3
	defaultImmutableSupply = 2
)

type GameSettings struct {
	PlayerOneType     PlayerType `json:"-"`
	PlayerTwoType     PlayerType `json:"-"`
	PlayerOneStrategy string     `json:"player_one_strategy"`
	PlayerTwoStrategy string     `json:"player_two_strategy"`
	VolatileSupply    int        `json:"volatile_supply"`
	ImmutableSupply   int        `json:"immutable_supply"`
	// AllowUndo is the embedding application's undo policy; the engine only
	// enforces it. The default mirrors the original game: undo is a
	// human-vs-human affordance.
	AllowUndo bool `json:"allow_undo"`
}

func DefaultGameSettings() GameSettings {
	return GameSettings{
		PlayerOneType:     PlayerHuman,
		PlayerTwoType:     PlayerAI,
		PlayerOneStrategy: "",
		PlayerTwoStrategy: StrategyGreedy,
		VolatileSupply:    defaultVolatileSupply,
		ImmutableSupply:   defaultImmutableSupply,
		AllowUndo:         false,
	}
}
