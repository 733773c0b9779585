package main

// PlayerState tracks one side's limited-kind supply and cumulative wins.
// Supply moves only through placement, undo, and reset; wins only through
// game end, and they survive board resets.
type PlayerState struct {
	ID            PlayerID
	VolatileLeft  int
	ImmutableLeft int
	Wins          int
}

func (p PlayerState) Remaining(kind PieceKind) int {
	switch kind {
	case KindVolatile:
		return p.VolatileLeft
	case KindImmutable:
		return p.ImmutableLeft
	default:
		return -1
	}
}

func (p *PlayerState) consume(kind PieceKind) {
	switch kind {
	case KindVolatile:
		p.VolatileLeft--
	case KindImmutable:
		p.ImmutableLeft--
	}
}

func (p *PlayerState) restore(kind PieceKind) {
	switch kind {
	case KindVolatile:
		p.VolatileLeft++
	case KindImmutable:
		p.ImmutableLeft++
	}
}

func (p *PlayerState) resetSupply(settings GameSettings) {
	p.VolatileLeft = settings.VolatileSupply
	p.ImmutableLeft = settings.ImmutableSupply
}
