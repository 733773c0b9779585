package main

import "testing"

func TestBoardStartLayout(t *testing.T) {
	board := NewBoard()
	checks := []struct {
		pos   Position
		owner PlayerID
	}{
		{Position{Row: 3, Col: 4}, PlayerOne},
		{Position{Row: 4, Col: 3}, PlayerOne},
		{Position{Row: 3, Col: 3}, PlayerTwo},
		{Position{Row: 4, Col: 4}, PlayerTwo},
	}
	for _, check := range checks {
		piece, ok := board.At(check.pos)
		if !ok {
			t.Fatalf("expected piece at %s", check.pos)
		}
		if piece.Owner != check.owner {
			t.Fatalf("expected owner %d at %s, got %d", check.owner, check.pos, piece.Owner)
		}
		if piece.Kind != KindStandard {
			t.Fatalf("expected standard piece at %s, got %s", check.pos, piece.Kind)
		}
	}
	if board.CountOccupied() != 4 {
		t.Fatalf("expected 4 occupied cells at start, got %d", board.CountOccupied())
	}
	if board.CountByOwner(PlayerOne) != 2 || board.CountByOwner(PlayerTwo) != 2 {
		t.Fatalf("expected 2 pieces per player at start")
	}
}

func TestBoardPlaceRemoveSetOwner(t *testing.T) {
	board := NewBoard()
	pos := Position{Row: 0, Col: 7}
	board.Place(pos, Piece{Owner: PlayerOne, Kind: KindVolatile})
	piece, ok := board.At(pos)
	if !ok || piece.Owner != PlayerOne || piece.Kind != KindVolatile {
		t.Fatalf("unexpected piece after place: %+v ok=%v", piece, ok)
	}
	board.SetOwner(pos, PlayerTwo)
	piece, _ = board.At(pos)
	if piece.Owner != PlayerTwo {
		t.Fatalf("expected owner to change to player two, got %d", piece.Owner)
	}
	if piece.Kind != KindVolatile {
		t.Fatalf("flip must not change the kind, got %s", piece.Kind)
	}
	board.Remove(pos)
	if _, ok := board.At(pos); ok {
		t.Fatalf("expected cell to be empty after remove")
	}
}

func TestBoardCloneIsIndependent(t *testing.T) {
	board := NewBoard()
	clone := board.Clone()
	board.Place(Position{Row: 0, Col: 0}, Piece{Owner: PlayerOne, Kind: KindStandard})
	if _, ok := clone.At(Position{Row: 0, Col: 0}); ok {
		t.Fatalf("mutating the original must not affect the clone")
	}
}

func TestPositionValidity(t *testing.T) {
	invalid := []Position{{-1, 0}, {0, -1}, {8, 0}, {0, 8}, {-3, 9}}
	for _, pos := range invalid {
		if pos.IsValid() {
			t.Fatalf("expected %s to be out of bounds", pos)
		}
	}
	if !(Position{Row: 0, Col: 0}).IsValid() || !(Position{Row: 7, Col: 7}).IsValid() {
		t.Fatalf("expected corners to be in bounds")
	}
}

func TestNeighborsAtCorner(t *testing.T) {
	neighbors := Position{Row: 0, Col: 0}.Neighbors()
	if len(neighbors) != 3 {
		t.Fatalf("expected 3 in-bounds neighbors at corner, got %d", len(neighbors))
	}
	neighbors = Position{Row: 4, Col: 4}.Neighbors()
	if len(neighbors) != 8 {
		t.Fatalf("expected 8 neighbors in the middle, got %d", len(neighbors))
	}
}
