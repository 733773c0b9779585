package main

// GreedyPlayer always places a standard piece at the position flipping the
// most pieces; ties go to the rightmost column, then the bottom-most row.
type GreedyPlayer struct{}

func NewGreedyPlayer() *GreedyPlayer {
	return &GreedyPlayer{}
}

func (p *GreedyPlayer) IsHuman() bool {
	return false
}

func (p *GreedyPlayer) ChooseMove(state GameState, rules Rules) (MoveChoice, bool) {
	moves := rules.LegalMoves(state.Board, state.ToMove)
	if len(moves) == 0 {
		return MoveChoice{}, false
	}
	best := moves[0]
	bestFlips := rules.FlipCount(state.Board, best, state.ToMove)
	for _, pos := range moves[1:] {
		flips := rules.FlipCount(state.Board, pos, state.ToMove)
		if flips > bestFlips ||
			(flips == bestFlips && pos.Col > best.Col) ||
			(flips == bestFlips && pos.Col == best.Col && pos.Row > best.Row) {
			best = pos
			bestFlips = flips
		}
	}
	return MoveChoice{Pos: best, Kind: KindStandard}, true
}
