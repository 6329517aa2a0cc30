package ttt

import "fmt"

type WinReason uint8

const (
	// Three marks in a row or column
	RowOrColumn WinReason = iota + 1
	// Three marks on a diagonal
	Diagonal
	// The opponent had no move left to play
	Resignation
)

func (r WinReason) String() string {
	switch r {
	case RowOrColumn:
		return "RowOrColumn"
	case Diagonal:
		return "Diagonal"
	case Resignation:
		return "Resignation"
	}
	return "None"
}

// Result of a finished game. The zero value is a draw.
type GameResult struct {
	Winner Player
	Reason WinReason
}

func Draw() GameResult {
	return GameResult{}
}

func Win(winner Player, reason WinReason) GameResult {
	return GameResult{Winner: winner, Reason: reason}
}

func (r GameResult) IsDraw() bool {
	return r.Reason == 0
}

func (r GameResult) String() string {
	if r.IsDraw() {
		return "Draw"
	}
	return fmt.Sprintf("Win { winner: %v, reason: %v }", r.Winner, r.Reason)
}

// horizontal, vertical and diagonal patterns as bitboards
var (
	_rowPatterns      = [3]uint16{0b000000111, 0b000111000, 0b111000000}
	_columnPatterns   = [3]uint16{0b001001001, 0b010010010, 0b100100100}
	_diagonalPatterns = [2]uint16{0b100010001, 0b001010100}
)

func matchesAny(bb uint16, patterns []uint16) bool {
	for _, pattern := range patterns {
		if bb&pattern == pattern {
			return true
		}
	}
	return false
}

// Check if the given player has three in a row
func (b Board) HasRow(p Player) bool {
	return matchesAny(b.bitboards[bitboardIndex(p)], _rowPatterns[:])
}

// Check if the given player has three in a column
func (b Board) HasColumn(p Player) bool {
	return matchesAny(b.bitboards[bitboardIndex(p)], _columnPatterns[:])
}

// Check if the given player has three on a diagonal
func (b Board) HasDiagonal(p Player) bool {
	return matchesAny(b.bitboards[bitboardIndex(p)], _diagonalPatterns[:])
}

// Every cell holds a mark
func (b Board) IsFull() bool {
	return b.LegalMoves().IsEmpty()
}

// Given the player who made the last move, return the result if the game is over.
// A row or column takes priority over a diagonal completed by the same move.
func (b Board) Result(lastMover Player) (GameResult, bool) {
	switch {
	case b.HasRow(lastMover) || b.HasColumn(lastMover):
		return Win(lastMover, RowOrColumn), true
	case b.HasDiagonal(lastMover):
		return Win(lastMover, Diagonal), true
	case b.IsFull():
		return Draw(), true
	}
	return GameResult{}, false
}
