// Package engine provides move generation, move execution and FEN handling.
package engine

import "github.com/lgbarn/chessmoves-go/internal/chess"

// Moves is the result of generating moves for one piece.
type Moves struct {
	// Targets marks every destination square. King safety is not considered.
	Targets chess.Mask

	// DoublePush is the square a pawn skips over when its two-step advance
	// is available, otherwise NoSquare. It becomes the en-passant target if
	// the two-step move is played.
	DoublePush chess.Square
}

// GenerateMoves computes the destination mask of the piece on from.
// An empty origin yields an empty mask.
func GenerateMoves(pos *chess.Position, from chess.Square) Moves {
	return generate(&pos.Board, from, pos.EnPassant)
}

// generate dispatches on the piece type of the occupant of from.
func generate(board *chess.Board, from chess.Square, enPassant chess.Square) Moves {
	result := Moves{DoublePush: chess.NoSquare}
	piece := board.Get(from)
	if piece == chess.Empty || !piece.Valid() {
		return result
	}
	colour := piece.Color()

	switch piece.Type() {
	case chess.King:
		result.Targets = kingMoves(board, from, colour)
	case chess.Queen:
		result.Targets = slidingMoves(board, from, colour, chess.AllDirections)
	case chess.Rook:
		result.Targets = slidingMoves(board, from, colour, chess.OrthogonalDirections)
	case chess.Bishop:
		result.Targets = slidingMoves(board, from, colour, chess.DiagonalDirections)
	case chess.Knight:
		result.Targets = knightMoves(board, from, colour)
	case chess.Pawn:
		result.Targets, result.DoublePush = pawnMoves(board, from, colour, enPassant)
	}
	return result
}
