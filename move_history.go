package main

// MoveRecord captures everything needed to reverse one move: the placed
// piece, and the complete post-resolution list of positions whose owner
// changed (direct bracket flips and chain-reaction casualties alike).
// Records hold values only, never references into the board store.
type MoveRecord struct {
	Pos         Position
	Piece       Piece
	Flipped     []Position
	LimitedUsed bool
}

type MoveHistory struct {
	records []MoveRecord
}

func (h *MoveHistory) Clear() {
	h.records = nil
}

func (h *MoveHistory) Push(record MoveRecord) {
	h.records = append(h.records, record)
}

func (h *MoveHistory) Pop() (MoveRecord, bool) {
	if len(h.records) == 0 {
		return MoveRecord{}, false
	}
	record := h.records[len(h.records)-1]
	h.records = h.records[:len(h.records)-1]
	return record, true
}

func (h MoveHistory) Size() int {
	return len(h.records)
}

func (h MoveHistory) All() []MoveRecord {
	return append([]MoveRecord(nil), h.records...)
}
