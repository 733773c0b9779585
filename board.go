package main

const BoardSize = 8

// Board is the fixed 8x8 grid of optional pieces, stored as a flat slice.
// An empty cell holds the zero Piece (Kind == KindNone).
type Board struct {
	cells []Piece
}

func NewBoard() Board {
	b := Board{}
	b.Reset()
	return b
}

// Reset clears the grid and places the four starting discs: player one on
// (3,4) and (4,3), player two on (3,3) and (4,4).
func (b *Board) Reset() {
	b.cells = make([]Piece, BoardSize*BoardSize)
	mid := BoardSize / 2
	b.Place(Position{Row: mid - 1, Col: mid}, Piece{Owner: PlayerOne, Kind: KindStandard})
	b.Place(Position{Row: mid, Col: mid - 1}, Piece{Owner: PlayerOne, Kind: KindStandard})
	b.Place(Position{Row: mid - 1, Col: mid - 1}, Piece{Owner: PlayerTwo, Kind: KindStandard})
	b.Place(Position{Row: mid, Col: mid}, Piece{Owner: PlayerTwo, Kind: KindStandard})
}

func (b Board) index(pos Position) int {
	return pos.Row*BoardSize + pos.Col
}

// At returns the piece at pos, if any.
func (b Board) At(pos Position) (Piece, bool) {
	piece := b.cells[b.index(pos)]
	return piece, piece.Kind != KindNone
}

func (b *Board) Place(pos Position, piece Piece) {
	b.cells[b.index(pos)] = piece
}

func (b *Board) Remove(pos Position) {
	b.cells[b.index(pos)] = Piece{}
}

// SetOwner reassigns the piece at pos without touching its kind.
func (b *Board) SetOwner(pos Position, owner PlayerID) {
	b.cells[b.index(pos)].Owner = owner
}

func (b Board) IsEmpty(pos Position) bool {
	return pos.IsValid() && b.cells[b.index(pos)].Kind == KindNone
}

func (b Board) CountByOwner(owner PlayerID) int {
	count := 0
	for _, piece := range b.cells {
		if piece.Kind != KindNone && piece.Owner == owner {
			count++
		}
	}
	return count
}

func (b Board) CountOccupied() int {
	count := 0
	for _, piece := range b.cells {
		if piece.Kind != KindNone {
			count++
		}
	}
	return count
}

func (b Board) Clone() Board {
	clone := Board{cells: make([]Piece, len(b.cells))}
	copy(clone.cells, b.cells)
	return clone
}
