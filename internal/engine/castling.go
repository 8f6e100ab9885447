package engine

import "github.com/lgbarn/chessmoves-go/internal/chess"

// Rook home squares and the right each one guards.
var rookHomes = []struct {
	square chess.Square
	clear  func(*chess.CastlingRights)
}{
	{63, func(c *chess.CastlingRights) { c.WhiteKingside = false }},  // h1
	{56, func(c *chess.CastlingRights) { c.WhiteQueenside = false }}, // a1
	{7, func(c *chess.CastlingRights) { c.BlackKingside = false }},   // h8
	{0, func(c *chess.CastlingRights) { c.BlackQueenside = false }},  // a8
}

// updateCastlingRights removes castling rights when a king moves, or when a
// rook moves from or is captured on its home square. Castling itself is
// never generated; the flags are kept for FEN output.
func updateCastlingRights(pos *chess.Position, piece chess.Piece, from, to chess.Square) {
	if !pos.Castling.Any() {
		return
	}

	if piece.Type() == chess.King {
		if piece.Color() == chess.White {
			pos.Castling.WhiteKingside = false
			pos.Castling.WhiteQueenside = false
		} else {
			pos.Castling.BlackKingside = false
			pos.Castling.BlackQueenside = false
		}
	}

	for _, home := range rookHomes {
		if from == home.square || to == home.square {
			home.clear(&pos.Castling)
		}
	}
}
