package main

import "math/rand"

// RandomPlayer plays a uniformly random legal position with a random piece
// kind among those it still has in supply.
type RandomPlayer struct {
	rng *rand.Rand
}

func NewRandomPlayer() *RandomPlayer {
	return &RandomPlayer{rng: rand.New(rand.NewSource(rand.Int63()))}
}

func (p *RandomPlayer) IsHuman() bool {
	return false
}

func (p *RandomPlayer) ChooseMove(state GameState, rules Rules) (MoveChoice, bool) {
	moves := rules.LegalMoves(state.Board, state.ToMove)
	if len(moves) == 0 {
		return MoveChoice{}, false
	}
	pos := moves[p.rng.Intn(len(moves))]
	return MoveChoice{Pos: pos, Kind: p.pickKind(state.PlayerStateOf(state.ToMove))}, true
}

func (p *RandomPlayer) pickKind(player PlayerState) PieceKind {
	kinds := []PieceKind{KindStandard}
	if player.VolatileLeft > 0 {
		kinds = append(kinds, KindVolatile)
	}
	if player.ImmutableLeft > 0 {
		kinds = append(kinds, KindImmutable)
	}
	return kinds[p.rng.Intn(len(kinds))]
}
