package engine

import (
	"strconv"
	"strings"

	"github.com/lgbarn/chessmoves-go/internal/chess"
	"github.com/lgbarn/chessmoves-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// fenFields is the number of whitespace-separated fields in a FEN record.
const fenFields = 6

// NewPositionFromFEN creates a position from a FEN string. Every malformed
// field is reported as a *errors.FENError wrapping errors.ErrInvalidFEN.
func NewPositionFromFEN(fen string) (*chess.Position, error) {
	parts := strings.Fields(fen)
	if len(parts) != fenFields {
		return nil, &errors.FENError{
			Field:  "record",
			Value:  fen,
			Reason: "expected " + strconv.Itoa(fenFields) + " fields, got " + strconv.Itoa(len(parts)),
		}
	}

	pos := chess.NewPosition()

	if err := parsePiecePlacement(&pos.Board, parts[0]); err != nil {
		return nil, err
	}
	if err := parseSideToMove(pos, parts[1]); err != nil {
		return nil, err
	}
	if err := parseCastlingRights(pos, parts[2]); err != nil {
		return nil, err
	}
	if err := parseEnPassant(pos, parts[3]); err != nil {
		return nil, err
	}
	if err := parseClocks(pos, parts[4], parts[5]); err != nil {
		return nil, err
	}

	pos.Status = EvaluateStatus(pos)
	return pos, nil
}

// NewInitialPosition creates a position with the standard starting layout.
func NewInitialPosition() *chess.Position {
	pos, err := NewPositionFromFEN(InitialFEN)
	if err != nil {
		panic(err)
	}
	return pos
}

// parsePiecePlacement parses the piece placement field, rank 8 first.
func parsePiecePlacement(board *chess.Board, placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != chess.BoardSize {
		return &errors.FENError{
			Field:  "placement",
			Value:  placement,
			Reason: "expected 8 ranks, got " + strconv.Itoa(len(ranks)),
		}
	}

	for row, rank := range ranks {
		file := 0
		for _, c := range rank {
			if c >= '1' && c <= '8' {
				file += int(c - '0')
			} else {
				piece, ok := chess.PieceFromSymbol(c)
				if !ok {
					return &errors.FENError{Field: "placement", Value: string(c), Reason: "unknown piece symbol"}
				}
				if file >= chess.BoardSize {
					return rankLengthError(rank)
				}
				board[chess.MakeSquare(file, row)] = piece
				file++
			}
			if file > chess.BoardSize {
				return rankLengthError(rank)
			}
		}
		if file != chess.BoardSize {
			return rankLengthError(rank)
		}
	}
	return nil
}

func rankLengthError(rank string) error {
	return &errors.FENError{Field: "placement", Value: rank, Reason: "rank does not describe exactly 8 squares"}
}

// parseSideToMove parses the active colour field.
func parseSideToMove(pos *chess.Position, field string) error {
	switch field {
	case "w":
		pos.ToMove = chess.White
	case "b":
		pos.ToMove = chess.Black
	default:
		return &errors.FENError{Field: "active colour", Value: field, Reason: "expected w or b"}
	}
	return nil
}

// parseCastlingRights parses the castling availability field. Each of K, Q,
// k, q sets one flag; absent letters leave their flag false.
func parseCastlingRights(pos *chess.Position, field string) error {
	if field == "-" {
		return nil
	}
	for _, c := range field {
		switch c {
		case 'K':
			pos.Castling.WhiteKingside = true
		case 'Q':
			pos.Castling.WhiteQueenside = true
		case 'k':
			pos.Castling.BlackKingside = true
		case 'q':
			pos.Castling.BlackQueenside = true
		default:
			return &errors.FENError{Field: "castling", Value: field, Reason: "unexpected character " + strconv.QuoteRune(c)}
		}
	}
	return nil
}

// parseEnPassant parses the en-passant target field. Besides "-" and
// algebraic squares, a bare board index (0-63) is accepted because older
// position files wrote the target that way. Either form must name a square
// on rank 3 or rank 6.
func parseEnPassant(pos *chess.Position, field string) error {
	if field == "-" {
		pos.EnPassant = chess.NoSquare
		return nil
	}

	sq, err := chess.ParseSquare(field)
	if err != nil {
		index, convErr := strconv.Atoi(field)
		if convErr != nil || index < 0 || index >= chess.NumSquares {
			return &errors.FENError{Field: "en passant", Value: field, Reason: "expected -, a square, or a board index 0-63"}
		}
		sq = chess.Square(index)
	}
	if !isEnPassantRow(sq) {
		return &errors.FENError{Field: "en passant", Value: field, Reason: "target must be on rank 3 or rank 6"}
	}
	pos.EnPassant = sq
	return nil
}

// parseClocks parses the halfmove clock and fullmove number fields.
func parseClocks(pos *chess.Position, halfmove, fullmove string) error {
	h, err := strconv.ParseUint(halfmove, 10, 32)
	if err != nil {
		return &errors.FENError{Field: "halfmove clock", Value: halfmove, Reason: "expected a non-negative integer"}
	}
	f, err := strconv.ParseUint(fullmove, 10, 32)
	if err != nil {
		return &errors.FENError{Field: "fullmove number", Value: fullmove, Reason: "expected a non-negative integer"}
	}
	pos.HalfmoveClock = uint(h)
	pos.FullmoveNumber = uint(f)
	return nil
}

// PositionToFEN converts a position to a FEN string. The en-passant target
// is always written algebraically.
func PositionToFEN(pos *chess.Position) string {
	var sb strings.Builder

	writePiecePlacement(&sb, &pos.Board)
	sb.WriteByte(' ')
	if pos.ToMove == chess.Black {
		sb.WriteByte('b')
	} else {
		sb.WriteByte('w')
	}
	sb.WriteByte(' ')
	writeCastlingRights(&sb, pos.Castling)
	sb.WriteByte(' ')
	sb.WriteString(pos.EnPassant.String())
	sb.WriteByte(' ')
	sb.WriteString(strconv.FormatUint(uint64(pos.HalfmoveClock), 10))
	sb.WriteByte(' ')
	sb.WriteString(strconv.FormatUint(uint64(pos.FullmoveNumber), 10))

	return sb.String()
}

// writePiecePlacement writes the piece placement to the builder.
func writePiecePlacement(sb *strings.Builder, board *chess.Board) {
	for row := 0; row < chess.BoardSize; row++ {
		emptyCount := 0
		for file := 0; file < chess.BoardSize; file++ {
			piece := board[chess.MakeSquare(file, row)]
			if piece == chess.Empty {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.Symbol())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if row < chess.BoardSize-1 {
			sb.WriteByte('/')
		}
	}
}

// writeCastlingRights writes the castling availability to the builder.
func writeCastlingRights(sb *strings.Builder, rights chess.CastlingRights) {
	if !rights.Any() {
		sb.WriteByte('-')
		return
	}
	if rights.WhiteKingside {
		sb.WriteByte('K')
	}
	if rights.WhiteQueenside {
		sb.WriteByte('Q')
	}
	if rights.BlackKingside {
		sb.WriteByte('k')
	}
	if rights.BlackQueenside {
		sb.WriteByte('q')
	}
}
