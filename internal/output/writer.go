// Package output renders positions as text, JSON or SVG.
package output

import (
	"io"

	"github.com/lgbarn/chessmoves-go/internal/chess"
	"github.com/lgbarn/chessmoves-go/internal/config"
)

// PositionWriter is the interface for writing positions to output.
// Different implementations handle different formats (text, JSON, SVG).
type PositionWriter interface {
	// WritePosition writes one position. Squares marked in highlight, which
	// may be nil, are drawn as move destinations.
	WritePosition(pos *chess.Position, highlight *chess.Mask) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// NewWriter creates the writer selected by cfg.Output.
func NewWriter(w io.Writer, cfg *config.Config) PositionWriter {
	if cfg.Output.JSONStream {
		return NewJSONWriterSingle(w)
	}
	if cfg.Output.JSONFormat {
		return NewJSONWriter(w)
	}
	return NewTextWriter(w, cfg)
}

// StatusLine describes whose turn it is and any check, mate or stalemate.
func StatusLine(pos *chess.Position) string {
	line := pos.ToMove.String() + " to move"
	switch {
	case pos.Status.Checkmate:
		line += ", checkmate"
	case pos.Status.Draw:
		line += ", stalemate"
	case pos.Status.Check:
		line += ", check"
	}
	return line
}

// errWriter remembers the first write error so that renderers without error
// returns can still report one.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}
