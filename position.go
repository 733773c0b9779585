package main

import "fmt"

// Position is a board coordinate. Row and Col are 0-indexed, row 0 at the top.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func NewPosition(row, col int) Position {
	return Position{Row: row, Col: col}
}

func (p Position) IsValid() bool {
	return p.Row >= 0 && p.Row < BoardSize && p.Col >= 0 && p.Col < BoardSize
}

func (p Position) Equals(other Position) bool {
	return p.Row == other.Row && p.Col == other.Col
}

func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.Row, p.Col)
}

// Direction is one of the 8 compass offsets used by the bracket scan and
// by explosion neighborhoods.
type Direction struct {
	RowChange int
	ColChange int
}

var directions = [8]Direction{
	{-1, 0},  // north
	{-1, 1},  // northeast
	{0, 1},   // east
	{1, 1},   // southeast
	{1, 0},   // south
	{1, -1},  // southwest
	{0, -1},  // west
	{-1, -1}, // northwest
}

func (p Position) Step(dir Direction) Position {
	return Position{Row: p.Row + dir.RowChange, Col: p.Col + dir.ColChange}
}

// Neighbors returns the in-bounds positions adjacent to p, in direction order.
func (p Position) Neighbors() []Position {
	neighbors := make([]Position, 0, 8)
	for _, dir := range directions {
		next := p.Step(dir)
		if next.IsValid() {
			neighbors = append(neighbors, next)
		}
	}
	return neighbors
}
