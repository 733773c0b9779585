package main

import "log"

// Game owns one session: board state, turn flag, history, and the two
// player strategies. All mutation goes through ApplyMove, Undo, SkipTurn,
// and Reset; every operation is atomic (fully applied or fully rejected).
type Game struct {
	settings  GameSettings
	rules     Rules
	state     GameState
	history   MoveHistory
	playerOne Player
	playerTwo Player
}

func NewGame(settings GameSettings) Game {
	g := Game{}
	g.Reset(settings)
	return g
}

func (g *Game) Reset(settings GameSettings) {
	g.settings = settings
	g.rules = NewRules()
	g.state.Reset(settings)
	g.history.Clear()
	g.createPlayers()
}

func (g *Game) Start() {
	if g.state.Status == StatusNotStarted {
		g.state.Status = StatusRunning
	}
}

func (g *Game) State() GameState {
	return g.state.Clone()
}

func (g *Game) Settings() GameSettings {
	return g.settings
}

func (g *Game) History() MoveHistory {
	return g.history
}

// LegalMoves returns the active player's legal positions in row-major order.
func (g *Game) LegalMoves() []Position {
	return g.rules.LegalMoves(g.state.Board, g.state.ToMove)
}

// FlipCount returns how many pieces the active player would flip at pos,
// 0 when the move is illegal.
func (g *Game) FlipCount(pos Position) int {
	return g.rules.FlipCount(g.state.Board, pos, g.state.ToMove)
}

func (g *Game) PieceAt(pos Position) (Piece, bool) {
	if !pos.IsValid() {
		return Piece{}, false
	}
	return g.state.Board.At(pos)
}

// ApplyMove validates and executes a move for the active player: places the
// piece, flips the bracketed run, propagates chain reactions, records the
// move, and switches the turn. The returned record lists every position
// whose owner changed.
func (g *Game) ApplyMove(pos Position, kind PieceKind) (MoveRecord, error) {
	if g.state.Status != StatusRunning {
		return MoveRecord{}, ErrGameNotRunning
	}
	if !pos.IsValid() {
		return MoveRecord{}, ErrInvalidPosition
	}
	if !g.state.Board.IsEmpty(pos) {
		return MoveRecord{}, ErrCellOccupied
	}
	if kind == KindNone {
		kind = KindStandard
	}
	mover := g.state.ToMove
	// Supply is checked before bracket evaluation.
	if kind.IsLimited() && g.state.playerState(mover).Remaining(kind) <= 0 {
		return MoveRecord{}, ErrInsufficientSupply
	}
	flips := g.rules.FlipSet(g.state.Board, pos, mover)
	if len(flips) == 0 {
		return MoveRecord{}, ErrNoBracket
	}

	piece := Piece{Owner: mover, Kind: kind}
	g.state.Board.Place(pos, piece)
	if kind.IsLimited() {
		g.state.playerState(mover).consume(kind)
	}
	changed := resolveFlips(&g.state.Board, flips, mover)

	record := MoveRecord{
		Pos:         pos,
		Piece:       piece,
		Flipped:     changed,
		LimitedUsed: kind.IsLimited(),
	}
	g.history.Push(record)
	g.state.LastMove = pos
	g.state.HasLastMove = true
	g.logMovePlayed(record)

	g.state.ToMove = otherPlayer(mover)
	g.checkTerminal()
	return record, nil
}

// SkipTurn implements the implicit pass: it advances the turn when and only
// when the active player has no legal position. Passes are not recorded in
// the history.
func (g *Game) SkipTurn() error {
	if g.state.Status != StatusRunning {
		return ErrGameNotRunning
	}
	if g.rules.HasLegalMove(g.state.Board, g.state.ToMove) {
		return ErrHasLegalMoves
	}
	g.state.ToMove = otherPlayer(g.state.ToMove)
	g.checkTerminal()
	return nil
}

// UndoAllowed reports the undo capability under the current settings.
func (g *Game) UndoAllowed() bool {
	return g.settings.AllowUndo
}

// Undo pops the most recent record and replays its inverse: the placed
// piece is removed, every recorded flip is restored to the opposing owner,
// consumed supply is refunded, and the turn switches back. It never
// re-derives flip sets. Undoing the move that ended the game reopens it:
// the status returns to running, the winner is cleared, and the win it
// awarded is taken back.
func (g *Game) Undo() error {
	if g.history.Size() == 0 {
		return ErrNoHistory
	}
	if !g.settings.AllowUndo {
		return ErrUndoNotAllowed
	}
	if g.state.Status == StatusFinished {
		switch g.state.Winner {
		case WinnerPlayerOne:
			g.state.playerState(PlayerOne).Wins--
		case WinnerPlayerTwo:
			g.state.playerState(PlayerTwo).Wins--
		}
		g.state.Winner = WinnerNone
		g.state.Status = StatusRunning
	}
	record, _ := g.history.Pop()
	g.state.Board.Remove(record.Pos)
	for _, pos := range record.Flipped {
		piece, occupied := g.state.Board.At(pos)
		if !occupied {
			continue
		}
		g.state.Board.SetOwner(pos, otherPlayer(piece.Owner))
	}
	if record.LimitedUsed {
		g.state.playerState(record.Piece.Owner).restore(record.Piece.Kind)
	}
	g.state.ToMove = record.Piece.Owner
	if top := g.history.All(); len(top) > 0 {
		g.state.LastMove = top[len(top)-1].Pos
		g.state.HasLastMove = true
	} else {
		g.state.LastMove = Position{Row: -1, Col: -1}
		g.state.HasLastMove = false
	}
	return nil
}

// IsFinished reports whether neither side has a legal position left, and
// the winner by strict disc-count majority (WinnerNone on a tie).
func (g *Game) IsFinished() (bool, Winner) {
	if g.state.Status == StatusFinished {
		return true, g.state.Winner
	}
	if g.state.Status != StatusRunning {
		return false, WinnerNone
	}
	g.checkTerminal()
	if g.state.Status == StatusFinished {
		return true, g.state.Winner
	}
	return false, WinnerNone
}

// checkTerminal runs after every turn switch. The game ends when the active
// player has no legal position and, after a hypothetical turn switch, the
// other player has none either. The win counter is incremented exactly once,
// here, at the transition into the finished state.
func (g *Game) checkTerminal() {
	if g.state.Status != StatusRunning {
		return
	}
	if g.rules.HasLegalMove(g.state.Board, g.state.ToMove) {
		return
	}
	if g.rules.HasLegalMove(g.state.Board, otherPlayer(g.state.ToMove)) {
		return
	}
	g.state.Status = StatusFinished
	firstCount := g.state.Board.CountByOwner(PlayerOne)
	secondCount := g.state.Board.CountByOwner(PlayerTwo)
	switch {
	case firstCount > secondCount:
		g.state.Winner = WinnerPlayerOne
		g.state.playerState(PlayerOne).Wins++
	case secondCount > firstCount:
		g.state.Winner = WinnerPlayerTwo
		g.state.playerState(PlayerTwo).Wins++
	default:
		g.state.Winner = WinnerNone
	}
	g.logGameFinished(firstCount, secondCount)
}

// Tick advances the session by at most one move: a pending human move, a
// strategy choice, or an implicit pass. It returns true when the state
// changed.
func (g *Game) Tick() bool {
	if g.state.Status != StatusRunning {
		return false
	}
	if !g.rules.HasLegalMove(g.state.Board, g.state.ToMove) {
		if err := g.SkipTurn(); err != nil {
			return false
		}
		return true
	}
	player := g.currentPlayer()
	if player == nil {
		return false
	}
	if player.IsHuman() {
		human, ok := player.(*HumanPlayer)
		if !ok || !human.HasPendingChoice() {
			return false
		}
		choice := human.TakePendingChoice()
		_, err := g.ApplyMove(choice.Pos, choice.Kind)
		return err == nil
	}
	choice, ok := player.ChooseMove(g.state.Clone(), g.rules)
	if !ok {
		return false
	}
	_, err := g.ApplyMove(choice.Pos, choice.Kind)
	return err == nil
}

func (g *Game) SubmitHumanMove(choice MoveChoice) bool {
	player := g.currentPlayer()
	if player == nil || !player.IsHuman() {
		return false
	}
	human, ok := player.(*HumanPlayer)
	if !ok {
		return false
	}
	human.SetPendingChoice(choice)
	return true
}

func (g *Game) CurrentPlayerIsHuman() bool {
	player := g.currentPlayer()
	return player != nil && player.IsHuman()
}

func (g *Game) currentPlayer() Player {
	return g.playerForID(g.state.ToMove)
}

func (g *Game) playerForID(id PlayerID) Player {
	if id == PlayerOne {
		return g.playerOne
	}
	return g.playerTwo
}

func (g *Game) createPlayers() {
	g.playerOne = newPlayer(g.settings.PlayerOneType, g.settings.PlayerOneStrategy)
	g.playerTwo = newPlayer(g.settings.PlayerTwoType, g.settings.PlayerTwoStrategy)
}

func (g *Game) logMovePlayed(record MoveRecord) {
	if !GetConfig().LogMoves {
		return
	}
	log.Printf("[game] player %d placed a %s piece at %s, flipping %d",
		record.Piece.Owner, record.Piece.Kind, record.Pos, len(record.Flipped))
}

func (g *Game) logGameFinished(firstCount, secondCount int) {
	if !GetConfig().LogMoves {
		return
	}
	log.Printf("[game] finished %d-%d, winner=%d", firstCount, secondCount, g.state.Winner)
}
