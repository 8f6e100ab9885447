package chess

// MoveRecord is one entry of the move history: origin and destination squares.
type MoveRecord struct {
	From Square
	To   Square
}

// String returns the long-algebraic form, e.g. "e2e4".
func (m MoveRecord) String() string {
	return m.From.String() + m.To.String()
}

// Mask marks the squares a piece may move to.
type Mask [NumSquares]bool

// Has reports whether sq is marked.
func (m *Mask) Has(sq Square) bool {
	return sq.Valid() && m[sq]
}

// Count returns the number of marked squares.
func (m *Mask) Count() int {
	n := 0
	for _, ok := range m {
		if ok {
			n++
		}
	}
	return n
}

// Squares returns the marked squares in index order.
func (m *Mask) Squares() []Square {
	var squares []Square
	for i, ok := range m {
		if ok {
			squares = append(squares, Square(i))
		}
	}
	return squares
}

// Union marks every square marked in other.
func (m *Mask) Union(other *Mask) {
	for i, ok := range other {
		if ok {
			m[i] = true
		}
	}
}

// String draws the mask as eight lines, 'x' for marked squares.
func (m *Mask) String() string {
	buf := make([]byte, 0, NumSquares+BoardSize)
	for i, ok := range m {
		if ok {
			buf = append(buf, 'x')
		} else {
			buf = append(buf, '.')
		}
		if i%BoardSize == BoardSize-1 {
			buf = append(buf, '\n')
		}
	}
	return string(buf)
}
