package chess

// Board is the 64-square occupant array, indexed by Square.
type Board [NumSquares]Piece

// Get returns the piece on sq, or Empty when sq is off the board.
func (b *Board) Get(sq Square) Piece {
	if !sq.Valid() {
		return Empty
	}
	return b[sq]
}

// Set places a piece on sq. Off-board squares are ignored.
func (b *Board) Set(sq Square, p Piece) {
	if sq.Valid() {
		b[sq] = p
	}
}

// Clear empties every square.
func (b *Board) Clear() {
	*b = Board{}
}

// FindKing returns the square of the given colour's king, or NoSquare.
func (b *Board) FindKing(c Color) Square {
	king := MakePiece(King, c)
	for sq := Square(0); sq < NumSquares; sq++ {
		if b[sq] == king {
			return sq
		}
	}
	return NoSquare
}

// Count returns the number of occupied squares.
func (b *Board) Count() int {
	n := 0
	for _, p := range b {
		if p != Empty {
			n++
		}
	}
	return n
}

// String draws the board as eight lines of FEN letters, rank 8 first.
func (b *Board) String() string {
	buf := make([]byte, 0, NumSquares+BoardSize)
	for sq := Square(0); sq < NumSquares; sq++ {
		buf = append(buf, b[sq].Symbol())
		if sq.File() == BoardSize-1 {
			buf = append(buf, '\n')
		}
	}
	return string(buf)
}
