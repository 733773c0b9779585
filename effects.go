package main

// resolveFlips applies the flip set computed for a move, triggering chain
// reactions for volatile pieces. It returns the complete ordered list of
// positions whose owner actually changed, which is exactly what undo needs
// to restore the board.
func resolveFlips(board *Board, flips []Position, mover PlayerID) []Position {
	var changed []Position
	visited := make(map[Position]struct{})
	for _, pos := range flips {
		piece, occupied := board.At(pos)
		if !occupied {
			continue
		}
		if piece.Owner != mover {
			board.SetOwner(pos, mover)
			changed = append(changed, pos)
		}
		if piece.Kind == KindVolatile {
			changed = explode(board, pos, mover, visited, changed)
		}
	}
	return changed
}

// explode runs the chain reaction seeded at a volatile piece's position as
// an explicit work-list. The visited set is shared across all seeds of a
// single move so that no position is affected more than once, even with
// cyclic adjacency among volatile pieces.
func explode(board *Board, seed Position, mover PlayerID, visited map[Position]struct{}, changed []Position) []Position {
	queue := []Position{seed}
	for len(queue) > 0 {
		pos := queue[0]
		queue = queue[1:]
		if _, done := visited[pos]; done {
			continue
		}
		visited[pos] = struct{}{}
		for _, neighbor := range pos.Neighbors() {
			if _, done := visited[neighbor]; done {
				continue
			}
			piece, occupied := board.At(neighbor)
			if !occupied {
				continue
			}
			switch piece.Kind {
			case KindImmutable:
				// Explosions never flip immutable pieces.
			case KindVolatile:
				if piece.Owner != mover {
					board.SetOwner(neighbor, mover)
					changed = append(changed, neighbor)
				}
				queue = append(queue, neighbor)
			default:
				if piece.Owner != mover {
					board.SetOwner(neighbor, mover)
					changed = append(changed, neighbor)
				}
				visited[neighbor] = struct{}{}
			}
		}
	}
	return changed
}
