package output

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/lgbarn/chessmoves-go/internal/chess"
	"github.com/lgbarn/chessmoves-go/internal/config"
	"github.com/lgbarn/chessmoves-go/internal/engine"
)

// Square fills of the SVG diagram.
const (
	lightFill  = "#f0d9b5"
	darkFill   = "#b58863"
	targetFill = "#cdd26a"
)

// glyphs maps each occupied piece value to its Unicode chess symbol.
var glyphs = map[chess.Piece]string{
	chess.WhiteKing:   "♔",
	chess.WhiteQueen:  "♕",
	chess.WhiteRook:   "♖",
	chess.WhiteBishop: "♗",
	chess.WhiteKnight: "♘",
	chess.WhitePawn:   "♙",
	chess.BlackKing:   "♚",
	chess.BlackQueen:  "♛",
	chess.BlackRook:   "♜",
	chess.BlackBishop: "♝",
	chess.BlackKnight: "♞",
	chess.BlackPawn:   "♟",
}

// SVGWriter writes each position as a standalone SVG document.
type SVGWriter struct {
	w           io.Writer
	squareSize  int
	coordinates bool
}

// NewSVGWriter creates a new SVG writer.
func NewSVGWriter(w io.Writer, cfg *config.Config) *SVGWriter {
	return &SVGWriter{
		w:           w,
		squareSize:  cfg.Output.SVGSquareSize,
		coordinates: cfg.Output.Coordinates,
	}
}

// WritePosition draws the board, rank 8 at the top. Coordinates, when
// enabled, go in a margin on the left and bottom edges.
func (sw *SVGWriter) WritePosition(pos *chess.Position, highlight *chess.Mask) error {
	ew := &errWriter{w: sw.w}
	canvas := svg.New(ew)

	size := sw.squareSize
	margin := 0
	if sw.coordinates {
		margin = size / 2
	}
	boardEdge := chess.BoardSize * size
	canvas.Start(margin+boardEdge, boardEdge+margin)
	canvas.Title(engine.PositionToFEN(pos))

	pieceStyle := fmt.Sprintf("font-size:%dpx;text-anchor:middle;font-family:serif", size*3/4)
	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		x := margin + sq.File()*size
		y := sq.Row() * size

		fill := lightFill
		if (sq.File()+sq.Row())%2 == 1 {
			fill = darkFill
		}
		if highlight != nil && highlight.Has(sq) {
			fill = targetFill
		}
		canvas.Rect(x, y, size, size, "fill:"+fill)

		if glyph, ok := glyphs[pos.Board[sq]]; ok {
			canvas.Text(x+size/2, y+size*3/4, glyph, pieceStyle)
		}
	}

	if sw.coordinates {
		labelStyle := fmt.Sprintf("font-size:%dpx;text-anchor:middle;font-family:sans-serif", margin*2/3)
		for i := 0; i < chess.BoardSize; i++ {
			canvas.Text(margin/2, i*size+size/2+margin/4, string(rune(chess.LastRank-i)), labelStyle)
			canvas.Text(margin+i*size+size/2, boardEdge+margin*3/4, string(rune(chess.FirstCol+i)), labelStyle)
		}
	}

	canvas.End()
	return ew.err
}

// Flush is a no-op; each document is written whole.
func (sw *SVGWriter) Flush() error {
	return nil
}

// Close closes the SVG writer.
func (sw *SVGWriter) Close() error {
	return nil
}
