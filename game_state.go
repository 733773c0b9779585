package main

type GameStatus int

const (
	StatusNotStarted GameStatus = iota
	StatusRunning
	StatusFinished
)

// Winner reports the outcome of a finished game. WinnerNone covers both
// unfinished games and exact disc-count ties.
type Winner int

const (
	WinnerNone Winner = iota
	WinnerPlayerOne
	WinnerPlayerTwo
)

type GameState struct {
	Board       Board
	ToMove      PlayerID
	Status      GameStatus
	Players     [2]PlayerState
	Winner      Winner
	HasLastMove bool
	LastMove    Position
	LastMessage string
}

func DefaultGameState(settings GameSettings) GameState {
	state := GameState{}
	state.Reset(settings)
	return state
}

// Reset reinitializes the board to the four-center start, restores the
// limited-kind supplies, and hands the turn to player one. Win counters are
// deliberately preserved.
func (s *GameState) Reset(settings GameSettings) {
	s.Board = NewBoard()
	s.ToMove = PlayerOne
	s.Status = StatusNotStarted
	s.Winner = WinnerNone
	s.HasLastMove = false
	s.LastMove = Position{Row: -1, Col: -1}
	s.LastMessage = ""
	s.Players[0].ID = PlayerOne
	s.Players[1].ID = PlayerTwo
	s.Players[0].resetSupply(settings)
	s.Players[1].resetSupply(settings)
}

func (s GameState) Clone() GameState {
	clone := s
	clone.Board = s.Board.Clone()
	return clone
}

func (s *GameState) playerState(id PlayerID) *PlayerState {
	if id == PlayerOne {
		return &s.Players[0]
	}
	return &s.Players[1]
}

// PlayerStateOf returns a copy of the given side's counters.
func (s GameState) PlayerStateOf(id PlayerID) PlayerState {
	if id == PlayerOne {
		return s.Players[0]
	}
	return s.Players[1]
}
