package chess

// CastlingRights records the four independent castling flags from FEN.
// They are kept up to date but never used to generate castling moves.
type CastlingRights struct {
	WhiteKingside  bool
	WhiteQueenside bool
	BlackKingside  bool
	BlackQueenside bool
}

// Any reports whether at least one right remains.
func (c CastlingRights) Any() bool {
	return c.WhiteKingside || c.WhiteQueenside || c.BlackKingside || c.BlackQueenside
}

// Status holds the informational game-state flags.
type Status struct {
	Check     bool
	Checkmate bool
	Draw      bool
}

// Position is the complete mutable game state.
type Position struct {
	// The 64 squares.
	Board Board

	// Who has the next move.
	ToMove Color

	// Square a pawn may capture onto en passant, or NoSquare.
	EnPassant Square

	Castling CastlingRights

	// Append-only history of successful moves.
	History []MoveRecord

	// Flags for the side to move, recomputed after every move.
	Status Status

	// FEN move counters.
	HalfmoveClock  uint
	FullmoveNumber uint
}

// NewPosition creates an empty board with White to move and no en-passant target.
func NewPosition() *Position {
	return &Position{
		ToMove:         White,
		EnPassant:      NoSquare,
		FullmoveNumber: 1,
	}
}

// Copy creates a deep copy of the position.
func (p *Position) Copy() *Position {
	c := *p
	if p.History != nil {
		c.History = make([]MoveRecord, len(p.History), len(p.History)+1)
		copy(c.History, p.History)
	}
	return &c
}

// Squares returns a copy of the occupant array for rendering.
func (p *Position) Squares() [NumSquares]Piece {
	return p.Board
}

// PlayedMoves returns the move history.
func (p *Position) PlayedMoves() []MoveRecord {
	return p.History
}

// WhiteToMove reports whether it is White's turn.
func (p *Position) WhiteToMove() bool {
	return p.ToMove == White
}

// InCheck reports whether the side to move is in check.
func (p *Position) InCheck() bool {
	return p.Status.Check
}

// Drawn reports whether the game is drawn (stalemate).
func (p *Position) Drawn() bool {
	return p.Status.Draw
}

// Checkmated reports whether the side to move is checkmated.
func (p *Position) Checkmated() bool {
	return p.Status.Checkmate
}

// GameStatus returns whose turn it is and the three status flags.
func (p *Position) GameStatus() (whiteToMove, check, draw, checkmate bool) {
	return p.WhiteToMove(), p.Status.Check, p.Status.Draw, p.Status.Checkmate
}
