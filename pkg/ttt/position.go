package ttt

import (
	"fmt"
	"strings"
)

const (
	_bitboardCrossIdx  = 0
	_bitboardNaughtIdx = 1
)

// A tic-tac-toe position. The two bitboards (one per player) are the whole state,
// so a Board is comparable and can be used directly as a map key.
type Board struct {
	bitboards [2]uint16
}

// An empty board
func EmptyBoard() Board {
	return Board{}
}

func bitboardIndex(p Player) int {
	if p == Naughts {
		return _bitboardNaughtIdx
	}
	return _bitboardCrossIdx
}

// Cells occupied by the given player
func (b Board) Occupied(p Player) MoveSet {
	return MoveSet(b.bitboards[bitboardIndex(p)])
}

// Mark at given cell
func (b Board) At(m Move) Mark {
	switch {
	case b.bitboards[_bitboardCrossIdx]&(1<<m) != 0:
		return Cross
	case b.bitboards[_bitboardNaughtIdx]&(1<<m) != 0:
		return Naught
	}
	return Blank
}

// All legal moves in the position, ordered by index
func (b Board) LegalMoves() MoveSet {
	return FullMoveSet() &^ MoveSet(b.bitboards[0]|b.bitboards[1])
}

// Make a move with the given player's mark, the cell must be blank
func (b *Board) Play(m Move, p Player) {
	if !m.Valid() {
		panic(fmt.Sprintf("ttt: move %d out of range", m))
	}
	if mark := b.At(m); mark != Blank {
		panic(fmt.Sprintf("ttt: cannot play %v on %v, cell already holds %v", p, m, mark))
	}
	b.bitboards[bitboardIndex(p)] |= 1 << m
}

// Number of marks on the board
func (b Board) Ply() int {
	return MoveSet(b.bitboards[0] | b.bitboards[1]).Len()
}

// Render the board as a 3x3 grid with row letters and column digits
func (b Board) String() string {
	builder := strings.Builder{}
	builder.WriteString("  1 2 3\n")
	for row := 0; row < 3; row++ {
		builder.WriteByte('a' + byte(row))
		for col := 0; col < 3; col++ {
			builder.WriteByte(' ')
			builder.WriteRune(b.At(MakeMove(row, col)).Rune())
		}
		builder.WriteByte('\n')
	}
	return builder.String()
}
