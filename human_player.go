package main

type HumanPlayer struct {
	pending       bool
	pendingChoice MoveChoice
}

func NewHumanPlayer() *HumanPlayer {
	return &HumanPlayer{}
}

func (h *HumanPlayer) IsHuman() bool {
	return true
}

func (h *HumanPlayer) ChooseMove(GameState, Rules) (MoveChoice, bool) {
	return MoveChoice{}, false
}

func (h *HumanPlayer) SetPendingChoice(choice MoveChoice) {
	h.pendingChoice = choice
	h.pending = true
}

func (h *HumanPlayer) HasPendingChoice() bool {
	return h.pending
}

func (h *HumanPlayer) TakePendingChoice() MoveChoice {
	h.pending = false
	return h.pendingChoice
}
