package engine

import "github.com/lgbarn/chessmoves-go/internal/chess"

// IsInCheck returns true if the given colour's king stands on a square the
// opponent's pieces can move to.
func IsInCheck(pos *chess.Position, colour chess.Color) bool {
	king := pos.Board.FindKing(colour)
	if king == chess.NoSquare {
		return false
	}
	return isSquareAttacked(&pos.Board, king, colour.Opposite())
}

// isSquareAttacked returns true if any piece of byColour has sq in its mask.
// The en-passant target is irrelevant here because sq is occupied.
func isSquareAttacked(board *chess.Board, sq chess.Square, byColour chess.Color) bool {
	for from := chess.Square(0); from < chess.NumSquares; from++ {
		if !board[from].Belongs(byColour) {
			continue
		}
		moves := generate(board, from, chess.NoSquare)
		if moves.Targets[sq] {
			return true
		}
	}
	return false
}
