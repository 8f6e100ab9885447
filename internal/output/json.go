package output

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/lgbarn/chessmoves-go/internal/chess"
	"github.com/lgbarn/chessmoves-go/internal/engine"
)

// JSONPosition represents a position in JSON format.
type JSONPosition struct {
	FEN       string   `json:"fen"`
	ToMove    string   `json:"toMove"` // "white" or "black"
	Check     bool     `json:"check,omitempty"`
	Checkmate bool     `json:"checkmate,omitempty"`
	Draw      bool     `json:"draw,omitempty"`
	Moves     []string `json:"moves,omitempty"`
	Targets   []string `json:"targets,omitempty"`
}

// JSONOutput holds multiple positions for array output.
type JSONOutput struct {
	Positions []*JSONPosition `json:"positions"`
}

// PositionToJSON converts a position, and optionally a destination mask, to
// JSON form.
func PositionToJSON(pos *chess.Position, highlight *chess.Mask) *JSONPosition {
	jp := &JSONPosition{
		FEN:       engine.PositionToFEN(pos),
		ToMove:    strings.ToLower(pos.ToMove.String()),
		Check:     pos.Status.Check,
		Checkmate: pos.Status.Checkmate,
		Draw:      pos.Status.Draw,
	}
	for _, m := range pos.PlayedMoves() {
		jp.Moves = append(jp.Moves, m.String())
	}
	if highlight != nil {
		for _, sq := range highlight.Squares() {
			jp.Targets = append(jp.Targets, sq.String())
		}
	}
	return jp
}

// JSONWriter writes positions in JSON format.
// It buffers positions and writes them as a JSON array on Close or Flush.
type JSONWriter struct {
	w         io.Writer
	positions []*JSONPosition
	single    bool // If true, write each position immediately instead of batching
}

// NewJSONWriter creates a new JSON writer.
// By default, it batches positions and writes them as an array on Close().
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{
		w:         w,
		positions: make([]*JSONPosition, 0),
	}
}

// NewJSONWriterSingle creates a JSON writer that writes each position immediately.
func NewJSONWriterSingle(w io.Writer) *JSONWriter {
	return &JSONWriter{
		w:      w,
		single: true,
	}
}

// WritePosition buffers a position for JSON output (or writes immediately in single mode).
func (jw *JSONWriter) WritePosition(pos *chess.Position, highlight *chess.Mask) error {
	jp := PositionToJSON(pos, highlight)
	if jw.single {
		enc := json.NewEncoder(jw.w)
		enc.SetIndent("", "  ")
		return enc.Encode(jp)
	}

	jw.positions = append(jw.positions, jp)
	return nil
}

// Flush writes all buffered positions as a JSON array.
func (jw *JSONWriter) Flush() error {
	if jw.single || len(jw.positions) == 0 {
		return nil
	}

	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	err := enc.Encode(&JSONOutput{Positions: jw.positions})

	// Clear buffer after writing
	jw.positions = jw.positions[:0]

	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}
