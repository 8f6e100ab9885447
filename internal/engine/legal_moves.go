package engine

import "github.com/lgbarn/chessmoves-go/internal/chess"

// HasSafeMove returns true if the given colour has at least one generated
// move after which its own king is not in check.
func HasSafeMove(pos *chess.Position, colour chess.Color) bool {
	for from := chess.Square(0); from < chess.NumSquares; from++ {
		if !pos.Board[from].Belongs(colour) {
			continue
		}
		moves := GenerateMoves(pos, from)
		for _, to := range moves.Targets.Squares() {
			if tryMove(pos, from, to, moves, colour) {
				return true
			}
		}
	}
	return false
}

// tryMove makes a move on a copy of the board and checks whether it leaves
// the mover's king in check.
func tryMove(pos *chess.Position, from, to chess.Square, moves Moves, colour chess.Color) bool {
	test := *pos
	test.History = nil
	execute(&test, from, to, moves)
	return !IsInCheck(&test, colour)
}
