package engine

import "github.com/lgbarn/chessmoves-go/internal/chess"

// IsCheckmate returns true if the position is checkmate for the side to move.
func IsCheckmate(pos *chess.Position) bool {
	colour := pos.ToMove
	return IsInCheck(pos, colour) && !HasSafeMove(pos, colour)
}

// IsStalemate returns true if the position is stalemate for the side to move.
func IsStalemate(pos *chess.Position) bool {
	colour := pos.ToMove
	return !IsInCheck(pos, colour) && !HasSafeMove(pos, colour)
}

// EvaluateStatus computes the status flags for the side to move. The flags
// are informational: the executor never consults them.
func EvaluateStatus(pos *chess.Position) chess.Status {
	colour := pos.ToMove
	check := IsInCheck(pos, colour)
	if pos.Board.FindKing(colour) == chess.NoSquare {
		return chess.Status{Check: check}
	}
	stuck := !HasSafeMove(pos, colour)
	return chess.Status{
		Check:     check,
		Checkmate: check && stuck,
		Draw:      !check && stuck,
	}
}
