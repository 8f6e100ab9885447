package testutil

import (
	"testing"

	"github.com/lgbarn/chessmoves-go/internal/chess"
	"github.com/lgbarn/chessmoves-go/internal/engine"
)

// MustLoadFEN parses a FEN string and calls t.Fatal if it is malformed.
func MustLoadFEN(t *testing.T, fen string) *chess.Position {
	t.Helper()
	pos, err := engine.NewPositionFromFEN(fen)
	if err != nil {
		t.Fatalf("failed to load FEN %q: %v", fen, err)
	}
	return pos
}

// MustPlay applies moves given as "e2e4" strings and calls t.Fatal on the
// first one the executor rejects.
func MustPlay(t *testing.T, pos *chess.Position, moves ...string) {
	t.Helper()
	for _, m := range moves {
		if len(m) != 4 {
			t.Fatalf("malformed move %q", m)
		}
		if err := engine.MovePiece(pos, m[:2], m[2:]); err != nil {
			t.Fatalf("move %s rejected: %v", m, err)
		}
	}
}

// Squares converts algebraic names to squares, failing the test on bad input.
func Squares(t *testing.T, names ...string) []chess.Square {
	t.Helper()
	squares := make([]chess.Square, 0, len(names))
	for _, name := range names {
		sq, err := chess.ParseSquare(name)
		if err != nil {
			t.Fatalf("bad square %q: %v", name, err)
		}
		squares = append(squares, sq)
	}
	return squares
}

// MaskOf builds a mask with the named squares set.
func MaskOf(t *testing.T, names ...string) chess.Mask {
	t.Helper()
	var m chess.Mask
	for _, sq := range Squares(t, names...) {
		m[sq] = true
	}
	return m
}

// SquareNames converts a mask to sorted algebraic names for readable diffs.
func SquareNames(m chess.Mask) []string {
	names := []string{}
	for _, sq := range m.Squares() {
		names = append(names, sq.String())
	}
	return names
}
