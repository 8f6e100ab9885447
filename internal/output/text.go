package output

import (
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/lgbarn/chessmoves-go/internal/chess"
	"github.com/lgbarn/chessmoves-go/internal/config"
)

// Plain-text markers for highlighted squares.
const (
	emptyTarget   = '*'
	captureTarget = 'x'
)

// palette holds the ANSI styles of the coloured board.
type palette struct {
	light  [2]*color.Color // indexed by 0 = white piece, 1 = black piece
	dark   [2]*color.Color
	target [2]*color.Color
}

func newPalette() *palette {
	styles := func(bg color.Attribute) [2]*color.Color {
		white := color.New(bg, color.FgHiWhite, color.Bold)
		black := color.New(bg, color.FgBlack, color.Bold)
		white.EnableColor()
		black.EnableColor()
		return [2]*color.Color{white, black}
	}
	return &palette{
		light:  styles(color.BgYellow),
		dark:   styles(color.BgGreen),
		target: styles(color.BgRed),
	}
}

// TextWriter writes positions as character diagrams, rank 8 first.
type TextWriter struct {
	w           io.Writer
	coordinates bool
	colours     *palette
}

// NewTextWriter creates a new text writer. ANSI colours are used only when
// cfg.Output.Colour is set, whatever the terminal.
func NewTextWriter(w io.Writer, cfg *config.Config) *TextWriter {
	tw := &TextWriter{
		w:           w,
		coordinates: cfg.Output.Coordinates,
	}
	if cfg.Output.Colour {
		tw.colours = newPalette()
	}
	return tw
}

// WritePosition writes the board followed by a status line.
func (tw *TextWriter) WritePosition(pos *chess.Position, highlight *chess.Mask) error {
	var sb strings.Builder
	for row := 0; row < chess.BoardSize; row++ {
		if tw.coordinates {
			sb.WriteByte(byte(chess.LastRank - row))
			sb.WriteByte(' ')
		}
		for file := 0; file < chess.BoardSize; file++ {
			sq := chess.MakeSquare(file, row)
			target := highlight != nil && highlight.Has(sq)
			if tw.colours != nil {
				sb.WriteString(tw.colourCell(sq, pos.Board[sq], target))
				continue
			}
			if file > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteByte(plainCell(pos.Board[sq], target))
		}
		sb.WriteByte('\n')
	}
	if tw.coordinates {
		sb.WriteString(tw.fileLabels())
	}
	sb.WriteString(StatusLine(pos))
	sb.WriteByte('\n')

	_, err := io.WriteString(tw.w, sb.String())
	return err
}

// Flush is a no-op; text is written immediately.
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

func plainCell(piece chess.Piece, target bool) byte {
	switch {
	case target && piece == chess.Empty:
		return emptyTarget
	case target:
		return captureTarget
	default:
		return piece.Symbol()
	}
}

func (tw *TextWriter) colourCell(sq chess.Square, piece chess.Piece, target bool) string {
	styles := tw.colours.light
	if (sq.File()+sq.Row())%2 == 1 {
		styles = tw.colours.dark
	}
	if target {
		styles = tw.colours.target
	}

	symbol := " "
	if piece != chess.Empty {
		symbol = string(piece.Symbol())
	}
	style := styles[0]
	if piece.Color() == chess.Black {
		style = styles[1]
	}
	return style.Sprint(" " + symbol + " ")
}

func (tw *TextWriter) fileLabels() string {
	var sb strings.Builder
	sb.WriteString("  ")
	for file := 0; file < chess.BoardSize; file++ {
		letter := string(rune(chess.FirstCol + file))
		if tw.colours != nil {
			sb.WriteString(" " + letter + " ")
			continue
		}
		if file > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(letter)
	}
	sb.WriteByte('\n')
	return sb.String()
}
