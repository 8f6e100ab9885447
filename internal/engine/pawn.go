package engine

import "github.com/lgbarn/chessmoves-go/internal/chess"

// pawnGeometry describes one colour's pawn: which way it moves, where it
// starts, and the row it lands on when capturing en passant.
type pawnGeometry struct {
	forward      chess.Direction
	left         chess.Direction
	right        chess.Direction
	startLow     chess.Square
	startHigh    chess.Square
	enPassantRow int
}

var pawnGeometries = map[chess.Color]pawnGeometry{
	chess.White: {chess.North, chess.NorthWest, chess.NorthEast, 48, 55, 2},
	chess.Black: {chess.South, chess.SouthWest, chess.SouthEast, 8, 15, 5},
}

// isEnPassantRow reports whether sq lies on a row an en-passant target can
// occupy: rank 6 (White captures) or rank 3 (Black captures).
func isEnPassantRow(sq chess.Square) bool {
	return sq.Valid() && (sq.Row() == pawnGeometries[chess.White].enPassantRow ||
		sq.Row() == pawnGeometries[chess.Black].enPassantRow)
}

// pawnMoves returns the pawn's destinations and, when the two-step advance
// is available, the square it skips over.
func pawnMoves(board *chess.Board, from chess.Square, colour chess.Color, enPassant chess.Square) (chess.Mask, chess.Square) {
	var targets chess.Mask
	doublePush := chess.NoSquare

	geo, ok := pawnGeometries[colour]
	if !ok {
		return targets, doublePush
	}
	enemy := colour.Opposite()

	if chess.Distances.To(from, geo.forward) > 0 {
		one := chess.Square(int(from) + geo.forward.Offset())
		if board[one] == chess.Empty {
			targets[one] = true
			if from >= geo.startLow && from <= geo.startHigh {
				two := chess.Square(int(one) + geo.forward.Offset())
				if board[two] == chess.Empty {
					targets[two] = true
					doublePush = one
				}
			}
		}
	}

	for _, diag := range [2]chess.Direction{geo.left, geo.right} {
		if chess.Distances.To(from, diag) == 0 {
			continue
		}
		to := chess.Square(int(from) + diag.Offset())
		switch {
		case board[to].Belongs(enemy):
			targets[to] = true
		case to == enPassant && board[to] == chess.Empty && to.Row() == geo.enPassantRow:
			// Only the side the target was created against may take it.
			targets[to] = true
		}
	}

	return targets, doublePush
}
