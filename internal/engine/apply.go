package engine

import (
	"github.com/lgbarn/chessmoves-go/internal/chess"
	"github.com/lgbarn/chessmoves-go/internal/errors"
)

// MovePieceFromTo moves the piece on the algebraic square from to the square
// to. It returns false, leaving the position untouched, when the text is not
// a square, the origin is empty or belongs to the side not on move, or the
// destination is not in the piece's mask.
func MovePieceFromTo(pos *chess.Position, from, to string) bool {
	return MovePiece(pos, from, to) == nil
}

// MovePiece is MovePieceFromTo reporting why a move was rejected.
// Rejections wrap ErrInvalidSquare, ErrEmptySquare, ErrWrongSide or
// ErrIllegalMove in a *errors.MoveError.
func MovePiece(pos *chess.Position, from, to string) error {
	fromSq, err := chess.ParseSquare(from)
	if err != nil {
		return &errors.MoveError{From: from, To: to, Err: err}
	}
	toSq, err := chess.ParseSquare(to)
	if err != nil {
		return &errors.MoveError{From: from, To: to, Err: err}
	}

	moves, err := ValidateMove(pos, fromSq, toSq)
	if err != nil {
		return err
	}
	execute(pos, fromSq, toSq, moves)
	pos.Status = EvaluateStatus(pos)
	return nil
}

// ApplyMove is MovePieceFromTo for already resolved squares.
func ApplyMove(pos *chess.Position, from, to chess.Square) bool {
	moves, err := ValidateMove(pos, from, to)
	if err != nil {
		return false
	}
	execute(pos, from, to, moves)
	pos.Status = EvaluateStatus(pos)
	return true
}

// ValidateMove checks a move without applying it and returns the mover's
// generated moves for use by the caller.
func ValidateMove(pos *chess.Position, from, to chess.Square) (Moves, error) {
	fail := func(err error) (Moves, error) {
		return Moves{}, &errors.MoveError{From: from.String(), To: to.String(), Err: err}
	}

	if !from.Valid() || !to.Valid() {
		return fail(errors.ErrInvalidSquare)
	}
	piece := pos.Board[from]
	if piece == chess.Empty {
		return fail(errors.ErrEmptySquare)
	}
	if piece.Color() != pos.ToMove {
		return fail(errors.ErrWrongSide)
	}

	moves := GenerateMoves(pos, from)
	if !moves.Targets.Has(to) {
		return fail(errors.ErrIllegalMove)
	}
	return moves, nil
}

// execute applies a validated move. moves must be the generator result for
// the piece on from in the current position.
func execute(pos *chess.Position, from, to chess.Square, moves Moves) {
	piece := pos.Board[from]
	colour := piece.Color()
	captured := pos.Board[to]

	if piece.Type() == chess.Pawn {
		// Diagonal move onto the en-passant target removes the pawn that
		// skipped past it, one row behind the destination.
		if to == pos.EnPassant && from.File() != to.File() && captured == chess.Empty {
			behind := chess.Square(int(to) - pawnGeometries[colour].forward.Offset())
			if pos.Board[behind] == chess.MakePiece(chess.Pawn, colour.Opposite()) {
				captured = pos.Board[behind]
				pos.Board[behind] = chess.Empty
			}
		}
		if isDoublePush(from, to) {
			pos.EnPassant = moves.DoublePush
		} else {
			pos.EnPassant = chess.NoSquare
		}
	} else {
		pos.EnPassant = chess.NoSquare
	}

	pos.Board[from] = chess.Empty
	pos.Board[to] = piece

	updateCastlingRights(pos, piece, from, to)

	if piece.Type() == chess.Pawn || captured != chess.Empty {
		pos.HalfmoveClock = 0
	} else {
		pos.HalfmoveClock++
	}
	if colour == chess.Black {
		pos.FullmoveNumber++
	}

	pos.ToMove = colour.Opposite()
	pos.History = append(pos.History, chess.MoveRecord{From: from, To: to})
}

// isDoublePush reports whether a pawn move advanced two rows.
func isDoublePush(from, to chess.Square) bool {
	diff := int(to) - int(from)
	return diff == 16 || diff == -16
}
