package main

type PlayerID int

const (
	PlayerOne PlayerID = iota + 1
	PlayerTwo
)

func otherPlayer(player PlayerID) PlayerID {
	if player == PlayerOne {
		return PlayerTwo
	}
	return PlayerOne
}

// PieceKind tags the three disc variants. KindNone marks an empty cell
// inside the board store and never appears on a placed piece.
type PieceKind int

const (
	KindNone PieceKind = iota
	KindStandard
	KindImmutable
	KindVolatile
)

func (k PieceKind) String() string {
	switch k {
	case KindStandard:
		return "standard"
	case KindImmutable:
		return "immutable"
	case KindVolatile:
		return "volatile"
	default:
		return "none"
	}
}

// IsLimited reports whether the kind draws from a finite per-player supply.
func (k PieceKind) IsLimited() bool {
	return k == KindImmutable || k == KindVolatile
}

// Piece is a placed disc. Flips change Owner and never Kind.
type Piece struct {
	Owner PlayerID
	Kind  PieceKind
}
