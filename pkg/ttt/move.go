package ttt

import (
	"fmt"
	"iter"
	"math/bits"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Number of cells on the board, and so the number of distinct moves
const NMoves = 9

// Cell index, row-major: a1 = 0, a2 = 1, ... c3 = 8
//
//	    1   2   3
//	a   0 | 1 | 2
//	   -----------
//	b   3 | 4 | 5
//	   -----------
//	c   6 | 7 | 8
type Move uint8

// Set of moves, bit i set means Move(i) is in the set
type MoveSet uint16

const _moveSetMask MoveSet = 1<<NMoves - 1

// All moves, ordered by index
func AllMoves() [NMoves]Move {
	var moves [NMoves]Move
	for i := range moves {
		moves[i] = Move(i)
	}
	return moves
}

func MakeMove(row, col int) Move {
	return Move(row*3 + col)
}

func (m Move) Row() int {
	return int(m) / 3
}

func (m Move) Col() int {
	return int(m) % 3
}

func (m Move) Valid() bool {
	return m < NMoves
}

// Get string representation of the move, row letter followed by the column digit,
// for example the center is "b2"
func (m Move) String() string {
	if !m.Valid() {
		return "(none)"
	}
	builder := strings.Builder{}
	builder.WriteByte('a' + byte(m.Row()))
	builder.WriteByte('1' + byte(m.Col()))
	return builder.String()
}

type ParseErrorKind int

const (
	ParseEmpty ParseErrorKind = iota
	ParseLetterRange
	ParseColumnNotNumeric
	ParseColumnRange
)

func (k ParseErrorKind) String() string {
	switch k {
	case ParseEmpty:
		return "A move cannot be an empty string"
	case ParseLetterRange:
		return "The letter in a move must be between a and c"
	case ParseColumnNotNumeric:
		return "The move column should be represented by a number"
	case ParseColumnRange:
		return "The move column must be in the range [1, 3]"
	}
	return "unknown parse error"
}

// Returned by ParseMove, Kind tells which part of the move was wrong
type ParseError struct {
	Kind  ParseErrorKind
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("%s (got %q)", e.Kind, e.Input)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Convert given move text (as returned by Move.String) to a Move.
// Everything after the row letter is read as a decimal column number.
func ParseMove(str string) (Move, error) {
	if str == "" {
		return 0, &ParseError{Kind: ParseEmpty, Input: str}
	}

	letter := str[0]
	if letter < 'a' || letter > 'c' {
		return 0, &ParseError{Kind: ParseLetterRange, Input: str}
	}

	col, err := strconv.Atoi(str[1:])
	if err != nil {
		return 0, &ParseError{
			Kind:  ParseColumnNotNumeric,
			Input: str,
			Err:   errors.Wrapf(err, "column of %q", str),
		}
	}

	if col < 1 || col > 3 {
		return 0, &ParseError{Kind: ParseColumnRange, Input: str}
	}

	return MakeMove(int(letter-'a'), col-1), nil
}

func EmptyMoveSet() MoveSet {
	return 0
}

func FullMoveSet() MoveSet {
	return _moveSetMask
}

// Build a set of all moves for which f returns true
func MoveSetFromFunc(f func(Move) bool) MoveSet {
	return FullMoveSet().Filter(f)
}

func (s MoveSet) Contains(m Move) bool {
	return s&(1<<m) != 0
}

func (s MoveSet) Add(m Move) MoveSet {
	return s | (1 << m)
}

func (s MoveSet) Remove(m Move) MoveSet {
	return s &^ (1 << m)
}

// Keep only the moves for which f returns true
func (s MoveSet) Filter(f func(Move) bool) MoveSet {
	for m := range s.All() {
		if !f(m) {
			s = s.Remove(m)
		}
	}
	return s
}

func (s MoveSet) Len() int {
	return bits.OnesCount16(uint16(s & _moveSetMask))
}

func (s MoveSet) IsEmpty() bool {
	return s&_moveSetMask == 0
}

// Iterate the moves in ascending index order
func (s MoveSet) All() iter.Seq[Move] {
	return func(yield func(Move) bool) {
		free := uint(s & _moveSetMask)
		for free != 0 {
			if !yield(Move(bits.TrailingZeros(free))) {
				return
			}
			free &= free - 1
		}
	}
}

// Moves in ascending index order
func (s MoveSet) Moves() []Move {
	moves := make([]Move, 0, s.Len())
	for m := range s.All() {
		moves = append(moves, m)
	}
	return moves
}

func (s MoveSet) String() string {
	if s.IsEmpty() {
		return "empty"
	}

	strMoves := make([]string, 0, s.Len())
	for m := range s.All() {
		strMoves = append(strMoves, m.String())
	}
	return strings.Join(strMoves, " ")
}
