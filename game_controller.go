package main

import "sync"

// GameController serializes access to the single game session. The engine
// itself is single-threaded by contract; the controller is the boundary
// where HTTP handlers, the websocket hub, and the tick loop meet.
type GameController struct {
	mu   sync.Mutex
	game Game
}

func NewGameController(settings GameSettings) *GameController {
	return &GameController{game: NewGame(settings)}
}

func (gc *GameController) ApplyHumanMove(choice MoveChoice) (MoveRecord, error) {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	if !gc.game.CurrentPlayerIsHuman() {
		return MoveRecord{}, ErrNotHumanTurn
	}
	return gc.game.ApplyMove(choice.Pos, choice.Kind)
}

func (gc *GameController) Undo() error {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	return gc.game.Undo()
}

func (gc *GameController) Tick() bool {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	return gc.game.Tick()
}

func (gc *GameController) State() GameState {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	return gc.game.State()
}

func (gc *GameController) Settings() GameSettings {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	return gc.game.Settings()
}

func (gc *GameController) History() MoveHistory {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	return gc.game.History()
}

func (gc *GameController) LatestRecord() (MoveRecord, bool) {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	history := gc.game.History()
	if history.Size() == 0 {
		return MoveRecord{}, false
	}
	records := history.All()
	return records[len(records)-1], true
}

func (gc *GameController) LegalMoves() []Position {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	return gc.game.LegalMoves()
}

func (gc *GameController) FlipCount(pos Position) int {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	return gc.game.FlipCount(pos)
}

func (gc *GameController) UndoAllowed() bool {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	return gc.game.UndoAllowed()
}

func (gc *GameController) IsFinished() (bool, Winner) {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	return gc.game.IsFinished()
}

func (gc *GameController) Reset(settings GameSettings) {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	gc.game.Reset(settings)
}

func (gc *GameController) StartGame(settings GameSettings) {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	gc.game.Reset(settings)
	gc.game.Start()
}

func (gc *GameController) UpdateSettings(update GameSettings, reset bool) {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	if reset {
		gc.game.Reset(update)
		return
	}
	gc.game.settings = update
	gc.game.createPlayers()
}
