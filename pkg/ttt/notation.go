package ttt

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// String notation for the board, much like the FEN rows of a chessboard:
//
//	<row a>/<row b>/<row c>
//
// where every row is made of 'x', 'o' and digits telling how many blank cells
// to skip. For example:
//
//	x | o |
//	---------
//	  | x |
//	---------
//	  |   | o
//
// is written as "xo1/1x1/2o", and the empty board as "3/3/3".
func (b Board) Notation() string {
	builder := strings.Builder{}

	for row := 0; row < 3; row++ {
		counter := 0
		for col := 0; col < 3; col++ {
			mark := b.At(MakeMove(row, col))
			if mark == Blank {
				counter++
				continue
			}

			if counter > 0 {
				builder.WriteString(fmt.Sprintf("%d", counter))
				counter = 0
			}
			builder.WriteRune(mark.Rune())
		}

		if counter > 0 {
			builder.WriteString(fmt.Sprintf("%d", counter))
		}

		if row != 2 {
			builder.WriteByte('/')
		}
	}

	return builder.String()
}

// Create the board from given notation string. The mark counts are not checked,
// any combination of marks is accepted.
func ParseBoard(notation string) (Board, error) {
	board := EmptyBoard()
	rows := strings.Split(notation, "/")
	if len(rows) != 3 {
		return board, errors.Errorf("Invalid notation structure, expected 3 rows, got = %d", len(rows))
	}

	for row, str := range rows {
		col := 0
		for i, v := range str {
			switch {
			case v == 'x' || v == 'o':
				if col >= 3 {
					return board, errors.Errorf("Too many cells in row %d of %q", row+1, notation)
				}
				player := Crosses
				if v == 'o' {
					player = Naughts
				}
				board.Play(MakeMove(row, col), player)
				col++
			case '1' <= v && v <= '3':
				col += int(v - '0')
				if col > 3 {
					return board, errors.Errorf("Invalid number of skip cells %d, in row %d at index = %d", col, row+1, i)
				}
			default:
				return board, errors.Errorf("Invalid notation = %s, at token = %d (%c)", notation, i, v)
			}
		}

		if col != 3 {
			return board, errors.Errorf("Invalid number of cells in row %d, got = %d", row+1, col)
		}
	}

	return board, nil
}
