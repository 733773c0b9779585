package main

import "testing"

func TestGreedyPicksHighestFlipCount(t *testing.T) {
	board := emptyBoard()
	// (0,3) flips two pieces, every other legal position flips one.
	board.Place(Position{Row: 0, Col: 1}, Piece{Owner: PlayerOne, Kind: KindStandard})
	board.Place(Position{Row: 0, Col: 2}, Piece{Owner: PlayerTwo, Kind: KindStandard})
	board.Place(Position{Row: 1, Col: 2}, Piece{Owner: PlayerTwo, Kind: KindStandard})
	board.Place(Position{Row: 2, Col: 1}, Piece{Owner: PlayerOne, Kind: KindStandard})

	state := GameState{Board: board, ToMove: PlayerOne, Status: StatusRunning}
	player := NewGreedyPlayer()
	choice, ok := player.ChooseMove(state, NewRules())
	if !ok {
		t.Fatalf("expected greedy player to find a move")
	}
	if !choice.Pos.Equals(Position{Row: 0, Col: 3}) {
		t.Fatalf("expected greedy to pick (0,3), got %s", choice.Pos)
	}
	if choice.Kind != KindStandard {
		t.Fatalf("greedy always places standard pieces, got %s", choice.Kind)
	}
}

func TestGreedyTieBreaksRightmostThenBottom(t *testing.T) {
	// At the canonical start all four openings flip exactly one piece; the
	// tie goes to the rightmost column: (4,5).
	g := newRunningGame(t, DefaultGameSettings())
	player := NewGreedyPlayer()
	choice, ok := player.ChooseMove(g.State(), NewRules())
	if !ok {
		t.Fatalf("expected a move at the start position")
	}
	if !choice.Pos.Equals(Position{Row: 4, Col: 5}) {
		t.Fatalf("expected tie-break to pick (4,5), got %s", choice.Pos)
	}
}

func TestGreedyNoMoves(t *testing.T) {
	state := GameState{Board: emptyBoard(), ToMove: PlayerOne, Status: StatusRunning}
	if _, ok := NewGreedyPlayer().ChooseMove(state, NewRules()); ok {
		t.Fatalf("expected no choice on a board without legal moves")
	}
}

func TestRandomChoosesLegalMoveAndAvailableKind(t *testing.T) {
	g := newRunningGame(t, DefaultGameSettings())
	state := g.State()
	rules := NewRules()
	legal := rules.LegalMoves(state.Board, state.ToMove)
	player := NewRandomPlayer()
	for i := 0; i < 50; i++ {
		choice, ok := player.ChooseMove(state, rules)
		if !ok {
			t.Fatalf("expected random player to find a move")
		}
		if !containsPosition(legal, choice.Pos) {
			t.Fatalf("random player chose illegal position %s", choice.Pos)
		}
		switch choice.Kind {
		case KindStandard:
		case KindVolatile, KindImmutable:
			if state.PlayerStateOf(state.ToMove).Remaining(choice.Kind) <= 0 {
				t.Fatalf("random player chose %s with empty supply", choice.Kind)
			}
		default:
			t.Fatalf("unexpected kind %v", choice.Kind)
		}
	}
}

func TestRandomSticksToStandardWhenSupplyExhausted(t *testing.T) {
	settings := DefaultGameSettings()
	settings.VolatileSupply = 0
	settings.ImmutableSupply = 0
	g := newRunningGame(t, settings)
	state := g.State()
	player := NewRandomPlayer()
	for i := 0; i < 20; i++ {
		choice, ok := player.ChooseMove(state, NewRules())
		if !ok {
			t.Fatalf("expected a move")
		}
		if choice.Kind != KindStandard {
			t.Fatalf("expected only standard pieces with exhausted supply, got %s", choice.Kind)
		}
	}
}

func TestStrategyFactory(t *testing.T) {
	for _, name := range []string{StrategyRandom, StrategyGreedy} {
		player := newPlayer(PlayerAI, name)
		if player == nil || player.IsHuman() {
			t.Fatalf("expected an AI player for strategy %q", name)
		}
	}
	if player := newPlayer(PlayerHuman, ""); !player.IsHuman() {
		t.Fatalf("expected a human player")
	}
	// Unknown strategies fall back to greedy instead of failing.
	if player := newPlayer(PlayerAI, "does-not-exist"); player.IsHuman() {
		t.Fatalf("expected an AI fallback for unknown strategy names")
	}
	names := StrategyNames()
	if len(names) != 2 {
		t.Fatalf("expected 2 registered strategies, got %v", names)
	}
}

func TestHumanPendingChoiceMailbox(t *testing.T) {
	human := NewHumanPlayer()
	if human.HasPendingChoice() {
		t.Fatalf("expected no pending choice initially")
	}
	choice := MoveChoice{Pos: Position{Row: 2, Col: 3}, Kind: KindVolatile}
	human.SetPendingChoice(choice)
	if !human.HasPendingChoice() {
		t.Fatalf("expected pending choice after submit")
	}
	taken := human.TakePendingChoice()
	if taken != choice {
		t.Fatalf("expected to take back the submitted choice, got %+v", taken)
	}
	if human.HasPendingChoice() {
		t.Fatalf("take must clear the pending flag")
	}
}
