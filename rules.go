package main

// Rules implements the directional bracket scan. Legality depends only on
// ownership comparisons, never on the kind of the piece being placed.
type Rules struct{}

func NewRules() Rules {
	return Rules{}
}

// FlipSet walks the 8 directions from pos and returns every opponent
// position bracketed between pos and one of mover's own pieces. An empty
// result means the move is illegal. pos must be a valid, empty cell.
func (r Rules) FlipSet(board Board, pos Position, mover PlayerID) []Position {
	var flips []Position
	for _, dir := range directions {
		flips = append(flips, r.flipsInDirection(board, pos, mover, dir)...)
	}
	return flips
}

func (r Rules) flipsInDirection(board Board, pos Position, mover PlayerID, dir Direction) []Position {
	var run []Position
	current := pos.Step(dir)
	for current.IsValid() {
		piece, occupied := board.At(current)
		if !occupied {
			// Open line, no bracket.
			return nil
		}
		if piece.Owner == mover {
			// Own piece anchors the run, immutable or not.
			return run
		}
		if piece.Kind == KindImmutable {
			// Cannot bracket through an opponent immutable piece.
			return nil
		}
		run = append(run, current)
		current = current.Step(dir)
	}
	// Reached the board edge without an anchor.
	return nil
}

// FlipCount returns the number of pieces a move at pos would flip, 0 when
// the move is illegal or pos is not a valid empty cell.
func (r Rules) FlipCount(board Board, pos Position, mover PlayerID) int {
	if !board.IsEmpty(pos) {
		return 0
	}
	return len(r.FlipSet(board, pos, mover))
}

// LegalMoves returns every empty position where mover has a non-empty flip
// set, in row-major order.
func (r Rules) LegalMoves(board Board, mover PlayerID) []Position {
	var moves []Position
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			pos := Position{Row: row, Col: col}
			if board.IsEmpty(pos) && len(r.FlipSet(board, pos, mover)) > 0 {
				moves = append(moves, pos)
			}
		}
	}
	return moves
}

func (r Rules) HasLegalMove(board Board, mover PlayerID) bool {
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			pos := Position{Row: row, Col: col}
			if board.IsEmpty(pos) && len(r.FlipSet(board, pos, mover)) > 0 {
				return true
			}
		}
	}
	return false
}
