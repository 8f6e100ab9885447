package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/lgbarn/chessmoves-go/internal/chess"
	"github.com/lgbarn/chessmoves-go/internal/config"
	"github.com/lgbarn/chessmoves-go/internal/engine"
	"github.com/lgbarn/chessmoves-go/internal/testutil"
)

const initialDiagram = `8 r n b q k b n r
7 p p p p p p p p
6 . . . . . . . .
5 . . . . . . . .
4 . . . . . . . .
3 . . . . . . . .
2 P P P P P P P P
1 R N B Q K B N R
  a b c d e f g h
White to move
`

// TestTextWriter_Initial verifies the plain diagram layout
func TestTextWriter_Initial(t *testing.T) {
	var buf bytes.Buffer
	writer := NewTextWriter(&buf, config.NewConfig())

	if err := writer.WritePosition(engine.NewInitialPosition(), nil); err != nil {
		t.Fatalf("WritePosition failed: %v", err)
	}
	testutil.AssertEqual(t, buf.String(), initialDiagram)
}

// TestTextWriter_Highlight verifies destination markers
func TestTextWriter_Highlight(t *testing.T) {
	pos := testutil.MustLoadFEN(t, "4k3/8/8/8/8/2p5/1P6/4K3 w - - 0 1")
	moves := engine.GenerateMoves(pos, chess.MustParseSquare("b2"))

	cfg := config.NewConfig()
	cfg.Output.Coordinates = false
	var buf bytes.Buffer
	if err := NewTextWriter(&buf, cfg).WritePosition(pos, &moves.Targets); err != nil {
		t.Fatalf("WritePosition failed: %v", err)
	}

	lines := strings.Split(buf.String(), "\n")
	testutil.AssertEqual(t, lines[4], ". * . . . . . .")
	testutil.AssertEqual(t, lines[5], ". * x . . . . .")
	testutil.AssertEqual(t, lines[6], ". P . . . . . .")
}

// TestTextWriter_Colour verifies ANSI output is produced on request
func TestTextWriter_Colour(t *testing.T) {
	cfg := config.NewConfigBuilder().WithColour(true).Build()
	var buf bytes.Buffer
	if err := NewTextWriter(&buf, cfg).WritePosition(engine.NewInitialPosition(), nil); err != nil {
		t.Fatalf("WritePosition failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "\x1b[") {
		t.Error("coloured output has no ANSI escape sequences")
	}
	if !strings.Contains(out, " K ") {
		t.Error("coloured output is missing the white king")
	}
	if !strings.HasSuffix(out, "White to move\n") {
		t.Errorf("coloured output should end with the status line, got %q", out[len(out)-20:])
	}
}

// TestStatusLine verifies the status descriptions
func TestStatusLine(t *testing.T) {
	tests := []struct {
		fen  string
		want string
	}{
		{engine.InitialFEN, "White to move"},
		{"4k3/8/8/8/8/8/8/4R1K1 b - - 0 1", "Black to move, check"},
		{"4R1k1/5ppp/8/8/8/8/8/6K1 b - - 0 1", "Black to move, checkmate"},
		{"k7/8/1Q6/8/8/8/8/7K b - - 0 1", "Black to move, stalemate"},
	}

	for _, tt := range tests {
		pos := testutil.MustLoadFEN(t, tt.fen)
		testutil.AssertEqual(t, StatusLine(pos), tt.want)
	}
}

// TestJSONWriter_Batch verifies JSON writer batches positions into an array
func TestJSONWriter_Batch(t *testing.T) {
	var buf bytes.Buffer
	writer := NewJSONWriter(&buf)

	pos := engine.NewInitialPosition()
	testutil.MustPlay(t, pos, "e2e4")
	targets := engine.GenerateMoves(pos, chess.MustParseSquare("e7")).Targets

	if err := writer.WritePosition(pos, &targets); err != nil {
		t.Fatalf("WritePosition failed: %v", err)
	}
	if err := writer.WritePosition(engine.NewInitialPosition(), nil); err != nil {
		t.Fatalf("WritePosition failed: %v", err)
	}
	if buf.Len() != 0 {
		t.Error("JSON writer should buffer until Close")
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	var out JSONOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(out.Positions) != 2 {
		t.Fatalf("got %d positions, want 2", len(out.Positions))
	}

	first := out.Positions[0]
	testutil.AssertEqual(t, first.FEN, "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1")
	testutil.AssertEqual(t, first.ToMove, "black")
	testutil.AssertEqual(t, first.Moves, []string{"e2e4"})
	testutil.AssertEqual(t, first.Targets, []string{"e6", "e5"})

	if out.Positions[1].Moves != nil || out.Positions[1].Targets != nil {
		t.Errorf("second position should have no moves or targets: %+v", out.Positions[1])
	}
}

// TestJSONWriter_Single verifies single mode writes immediately
func TestJSONWriter_Single(t *testing.T) {
	var buf bytes.Buffer
	writer := NewJSONWriterSingle(&buf)

	pos := testutil.MustLoadFEN(t, "4R1k1/5ppp/8/8/8/8/8/6K1 b - - 0 1")
	if err := writer.WritePosition(pos, nil); err != nil {
		t.Fatalf("WritePosition failed: %v", err)
	}

	var jp JSONPosition
	if err := json.Unmarshal(buf.Bytes(), &jp); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if !jp.Check || !jp.Checkmate || jp.Draw {
		t.Errorf("status = check %v, mate %v, draw %v; want check and mate", jp.Check, jp.Checkmate, jp.Draw)
	}
}

// TestNewWriter verifies the format switch
func TestNewWriter(t *testing.T) {
	var buf bytes.Buffer
	if _, ok := NewWriter(&buf, config.NewConfig()).(*TextWriter); !ok {
		t.Error("default writer should be a TextWriter")
	}
	cfg := config.NewConfigBuilder().WithJSONOutput(true).Build()
	if _, ok := NewWriter(&buf, cfg).(*JSONWriter); !ok {
		t.Error("JSON config should give a JSONWriter")
	}

	stream := NewWriter(&buf, config.NewConfigBuilder().WithJSONStream(true).Build())
	if jw, ok := stream.(*JSONWriter); !ok || !jw.single {
		t.Error("JSON stream config should give a single-object JSONWriter")
	}
}

// TestSVGWriter verifies the SVG document structure
func TestSVGWriter(t *testing.T) {
	cfg := config.NewConfig()
	pos := engine.NewInitialPosition()
	targets := engine.GenerateMoves(pos, chess.MustParseSquare("g1")).Targets

	var buf bytes.Buffer
	if err := NewSVGWriter(&buf, cfg).WritePosition(pos, &targets); err != nil {
		t.Fatalf("WritePosition failed: %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, "<svg") || !strings.Contains(out, "</svg>") {
		t.Error("output is not an SVG document")
	}
	if got := strings.Count(out, "<rect"); got != chess.NumSquares {
		t.Errorf("got %d squares, want %d", got, chess.NumSquares)
	}
	if got := strings.Count(out, targetFill); got != 2 {
		t.Errorf("got %d highlighted squares, want 2", got)
	}
	for _, glyph := range []string{"♔", "♚", "♙", "♟"} {
		if !strings.Contains(out, glyph) {
			t.Errorf("output is missing %s", glyph)
		}
	}
	if !strings.Contains(out, engine.InitialFEN) {
		t.Error("output should carry the FEN as its title")
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errWrite
}

var errWrite = errors.New("write failed")

// TestSVGWriter_WriteError verifies write errors are reported
func TestSVGWriter_WriteError(t *testing.T) {
	err := NewSVGWriter(failingWriter{}, config.NewConfig()).WritePosition(engine.NewInitialPosition(), nil)
	if !errors.Is(err, errWrite) {
		t.Errorf("WritePosition error = %v, want %v", err, errWrite)
	}
}
