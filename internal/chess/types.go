// Package chess provides core chess types and operations.
package chess

// Color is the colour field of a piece byte. NoColor marks an empty square.
type Color uint8

const (
	NoColor Color = 0
	White   Color = 64
	Black   Color = 128
)

const colorMask = uint8(White | Black)

// String returns the string representation of a colour.
func (c Color) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	default:
		return "None"
	}
}

// Opposite returns the opposite colour.
func (c Color) Opposite() Color {
	switch c {
	case White:
		return Black
	case Black:
		return White
	default:
		return NoColor
	}
}

// PieceType is the type field of a piece byte. Exactly one bit is set for a
// real piece.
type PieceType uint8

const (
	None   PieceType = 0
	Pawn   PieceType = 1
	Knight PieceType = 2
	Bishop PieceType = 4
	Rook   PieceType = 8
	Queen  PieceType = 16
	King   PieceType = 32
)

const typeMask = uint8(Pawn | Knight | Bishop | Rook | Queen | King)

// PieceTypes lists the six real piece types in ascending bit order.
var PieceTypes = [...]PieceType{Pawn, Knight, Bishop, Rook, Queen, King}

// String returns the string representation of a piece type.
func (t PieceType) String() string {
	switch t {
	case Pawn:
		return "Pawn"
	case Knight:
		return "Knight"
	case Bishop:
		return "Bishop"
	case Rook:
		return "Rook"
	case Queen:
		return "Queen"
	case King:
		return "King"
	case None:
		return "None"
	default:
		return "Unknown"
	}
}

// Letter returns the lowercase FEN letter of a piece type.
func (t PieceType) Letter() byte {
	switch t {
	case Pawn:
		return 'p'
	case Knight:
		return 'n'
	case Bishop:
		return 'b'
	case Rook:
		return 'r'
	case Queen:
		return 'q'
	case King:
		return 'k'
	default:
		return '?'
	}
}

// Piece is a square occupant: the OR of one PieceType bit and one Color bit.
// The zero value is an empty square.
type Piece uint8

// Empty is the occupant of a vacant square.
const Empty Piece = 0

// The twelve occupied values.
const (
	WhitePawn   = Piece(uint8(Pawn) | uint8(White))
	WhiteKnight = Piece(uint8(Knight) | uint8(White))
	WhiteBishop = Piece(uint8(Bishop) | uint8(White))
	WhiteRook   = Piece(uint8(Rook) | uint8(White))
	WhiteQueen  = Piece(uint8(Queen) | uint8(White))
	WhiteKing   = Piece(uint8(King) | uint8(White))
	BlackPawn   = Piece(uint8(Pawn) | uint8(Black))
	BlackKnight = Piece(uint8(Knight) | uint8(Black))
	BlackBishop = Piece(uint8(Bishop) | uint8(Black))
	BlackRook   = Piece(uint8(Rook) | uint8(Black))
	BlackQueen  = Piece(uint8(Queen) | uint8(Black))
	BlackKing   = Piece(uint8(King) | uint8(Black))
)

// MakePiece combines a type and a colour. None or NoColor yields Empty, so
// a half-specified piece can never be stored.
func MakePiece(t PieceType, c Color) Piece {
	if t == None || c == NoColor {
		return Empty
	}
	return Piece(uint8(t) | uint8(c))
}

// W creates a white piece.
func W(t PieceType) Piece {
	return MakePiece(t, White)
}

// B creates a black piece.
func B(t PieceType) Piece {
	return MakePiece(t, Black)
}

// Type extracts the type field.
func (p Piece) Type() PieceType {
	return PieceType(uint8(p) & typeMask)
}

// Color extracts the colour field.
func (p Piece) Color() Color {
	return Color(uint8(p) & colorMask)
}

// IsEmpty reports whether the square holds no piece.
func (p Piece) IsEmpty() bool {
	return p == Empty
}

// Is reports whether the piece has both the given type bit and colour bit set.
// It replaces the twelve is-<colour>-<type> predicates.
func (p Piece) Is(c Color, t PieceType) bool {
	return uint8(p)&uint8(t) != 0 && uint8(p)&uint8(c) != 0
}

// Belongs reports whether the piece carries the given colour bit.
func (p Piece) Belongs(c Color) bool {
	return c != NoColor && uint8(p)&uint8(c) != 0
}

// Valid reports whether the value is Empty or has exactly one type bit and
// exactly one colour bit and nothing else.
func (p Piece) Valid() bool {
	if p == Empty {
		return true
	}
	t := uint8(p) & typeMask
	c := uint8(p) & colorMask
	if uint8(p) != t|c {
		return false
	}
	return singleBit(t) && singleBit(c)
}

func singleBit(v uint8) bool {
	return v != 0 && v&(v-1) == 0
}

// Symbol returns the FEN letter: uppercase for White, lowercase for Black,
// and '.' for an empty square.
func (p Piece) Symbol() byte {
	if p == Empty {
		return '.'
	}
	letter := p.Type().Letter()
	if p.Color() == White && letter != '?' {
		return letter - 'a' + 'A'
	}
	return letter
}

// String returns e.g. "White Knight" or "Empty".
func (p Piece) String() string {
	if p == Empty {
		return "Empty"
	}
	return p.Color().String() + " " + p.Type().String()
}

var pieceTypeFromSymbol = map[rune]PieceType{
	'p': Pawn,
	'n': Knight,
	'b': Bishop,
	'r': Rook,
	'q': Queen,
	'k': King,
}

// PieceFromSymbol maps a FEN letter to a piece. Case selects the colour.
func PieceFromSymbol(r rune) (Piece, bool) {
	colour := Black
	if r >= 'A' && r <= 'Z' {
		colour = White
		r = r - 'A' + 'a'
	}
	t, ok := pieceTypeFromSymbol[r]
	if !ok {
		return Empty, false
	}
	return MakePiece(t, colour), true
}
