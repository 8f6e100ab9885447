package chess

import (
	"fmt"

	"github.com/lgbarn/chessmoves-go/internal/errors"
)

// Constants for board dimensions.
const (
	BoardSize  = 8
	NumSquares = BoardSize * BoardSize

	FirstCol  = 'a'
	LastCol   = FirstCol + BoardSize - 1
	FirstRank = '1'
	LastRank  = FirstRank + BoardSize - 1
)

// Square is a board index: row*8 + file, where row 0 is rank 8 and file 0
// is the a-file.
type Square uint8

// NoSquare is the "no en-passant target" sentinel.
const NoSquare Square = 100

// MakeSquare builds a square from a file (0 = a) and a row (0 = rank 8).
func MakeSquare(file, row int) Square {
	return Square(row*BoardSize + file)
}

// File returns the file index, 0 for the a-file.
func (sq Square) File() int {
	return int(sq) % BoardSize
}

// Row returns the row index, 0 for rank 8.
func (sq Square) Row() int {
	return int(sq) / BoardSize
}

// Valid reports whether the square is on the board.
func (sq Square) Valid() bool {
	return sq < NumSquares
}

// String returns the algebraic name, "-" for NoSquare.
func (sq Square) String() string {
	if !sq.Valid() {
		return "-"
	}
	return string([]byte{byte(FirstCol + sq.File()), byte(LastRank - sq.Row())})
}

// ParseSquare converts algebraic notation ("e4") to a board index:
// file = letter - 'a', row = 8 - digit. Uppercase file letters are accepted.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, fmt.Errorf("%q: %w", s, errors.ErrInvalidSquare)
	}
	col := s[0]
	if col >= 'A' && col <= 'H' {
		col = col - 'A' + 'a'
	}
	rank := s[1]
	if col < FirstCol || col > LastCol || rank < FirstRank || rank > LastRank {
		return NoSquare, fmt.Errorf("%q: %w", s, errors.ErrInvalidSquare)
	}
	file := int(col - FirstCol)
	row := BoardSize - int(rank-'0')
	return MakeSquare(file, row), nil
}

// MustParseSquare is ParseSquare for compile-time constants; it panics on bad input.
func MustParseSquare(s string) Square {
	sq, err := ParseSquare(s)
	if err != nil {
		panic(err)
	}
	return sq
}
