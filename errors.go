package main

import "errors"

// Move and undo failures are typed and recoverable; no operation leaves the
// game state partially mutated when one of these is returned.
var (
	ErrInvalidPosition    = errors.New("position out of bounds")
	ErrCellOccupied       = errors.New("cell already occupied")
	ErrNoBracket          = errors.New("move flips no pieces")
	ErrInsufficientSupply = errors.New("no pieces of that kind left")
	ErrNoHistory          = errors.New("no previous move to undo")
	ErrUndoNotAllowed     = errors.New("undo not allowed in this mode")
	ErrGameNotRunning     = errors.New("game not running")
	ErrNotHumanTurn       = errors.New("not a human player's turn")
	ErrHasLegalMoves      = errors.New("active player has legal moves")
)
