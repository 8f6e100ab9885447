package engine

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/chessmoves-go/internal/chess"
)

// maskNames converts a mask to algebraic names for readable diffs.
func maskNames(m chess.Mask) []string {
	names := []string{}
	for _, sq := range m.Squares() {
		names = append(names, sq.String())
	}
	return names
}

func mustLoad(t *testing.T, fen string) *chess.Position {
	t.Helper()
	pos, err := NewPositionFromFEN(fen)
	if err != nil {
		t.Fatalf("NewPositionFromFEN(%q) error = %v", fen, err)
	}
	return pos
}

func TestGenerateMoves_Counts(t *testing.T) {
	tests := []struct {
		name   string
		fen    string
		square string
		want   int
	}{
		{"rook alone on d5", "8/8/8/3R4/8/8/8/8 w - - 0 1", "d5", 14},
		{"bishop alone on d5", "8/8/8/3B4/8/8/8/8 w - - 0 1", "d5", 13},
		{"queen alone on d5", "8/8/8/3Q4/8/8/8/8 w - - 0 1", "d5", 27},
		{"king alone on d5", "8/8/8/3K4/8/8/8/8 w - - 0 1", "d5", 8},
		{"knight alone on d5", "8/8/8/3N4/8/8/8/8 w - - 0 1", "d5", 8},
		{"knight in corner a8", "N7/8/8/8/8/8/8/8 w - - 0 1", "a8", 2},
		{"knight in corner h1", "8/8/8/8/8/8/8/7n b - - 0 1", "h1", 2},
		{"knight on b7", "8/1N6/8/8/8/8/8/8 w - - 0 1", "b7", 4},
		{"king in corner a8", "K7/8/8/8/8/8/8/8 w - - 0 1", "a8", 3},
		{"rook in corner h1", "8/8/8/8/8/8/8/7R w - - 0 1", "h1", 14},
		{"empty square", "8/8/8/8/8/8/8/8 w - - 0 1", "e4", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := mustLoad(t, tt.fen)
			moves := GenerateMoves(pos, chess.MustParseSquare(tt.square))
			if got := moves.Targets.Count(); got != tt.want {
				t.Errorf("GenerateMoves(%s) = %d targets %v; want %d", tt.square, got, maskNames(moves.Targets), tt.want)
			}
		})
	}
}

func TestGenerateMoves_Targets(t *testing.T) {
	tests := []struct {
		name   string
		fen    string
		square string
		want   []string
	}{
		{
			name:   "rook stops before friend and on enemy",
			fen:    "8/8/8/8/8/P7/8/R2n4 w - - 0 1",
			square: "a1",
			want:   []string{"a2", "b1", "c1", "d1"},
		},
		{
			name:   "bishop blocked on every diagonal",
			fen:    "8/8/8/2p1P3/3b4/2P1p3/8/8 b - - 0 1",
			square: "d4",
			want:   []string{"c3", "e5"},
		},
		{
			name:   "queen from the initial position has no moves",
			fen:    InitialFEN,
			square: "d1",
			want:   []string{},
		},
		{
			name:   "knight from the initial position",
			fen:    InitialFEN,
			square: "g1",
			want:   []string{"f3", "h3"},
		},
		{
			name:   "king skips friendly squares",
			fen:    "8/8/8/8/8/8/3PP3/4K3 w - - 0 1",
			square: "e1",
			want:   []string{"f2", "d1", "f1"},
		},
		{
			name:   "knight on a-file does not wrap to h-file",
			fen:    "8/8/8/8/N7/8/8/8 w - - 0 1",
			square: "a4",
			want:   []string{"b6", "c5", "c3", "b2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := mustLoad(t, tt.fen)
			moves := GenerateMoves(pos, chess.MustParseSquare(tt.square))
			got := maskNames(moves.Targets)
			if diff := cmp.Diff(sortedNames(t, tt.want), got); diff != "" {
				t.Errorf("targets mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// sortedNames orders algebraic names by board index, matching maskNames.
func sortedNames(t *testing.T, names []string) []string {
	t.Helper()
	var m chess.Mask
	for _, n := range names {
		m[chess.MustParseSquare(n)] = true
	}
	return maskNames(m)
}

func TestPawnMoves(t *testing.T) {
	tests := []struct {
		name       string
		fen        string
		square     string
		want       []string
		doublePush string
	}{
		{
			name:       "white double push from start",
			fen:        "8/8/8/8/8/8/4P3/8 w - - 0 1",
			square:     "e2",
			want:       []string{"e3", "e4"},
			doublePush: "e3",
		},
		{
			name:       "black double push from start",
			fen:        "8/3p4/8/8/8/8/8/8 b - - 0 1",
			square:     "d7",
			want:       []string{"d6", "d5"},
			doublePush: "d6",
		},
		{
			name:   "two-step blocked",
			fen:    "8/8/8/8/4n3/8/4P3/8 w - - 0 1",
			square: "e2",
			want:   []string{"e3"},
		},
		{
			name:   "one-step blocked",
			fen:    "8/8/8/8/8/4N3/4P3/8 w - - 0 1",
			square: "e2",
			want:   []string{},
		},
		{
			name:   "single step off the start rank",
			fen:    "8/8/8/8/8/4P3/8/8 w - - 0 1",
			square: "e3",
			want:   []string{"e4"},
		},
		{
			name:   "diagonal captures only enemies",
			fen:    "8/8/8/3n1N2/4P3/8/8/8 w - - 0 1",
			square: "e4",
			want:   []string{"e5", "d5"},
		},
		{
			name:   "a-file pawn does not wrap to h-file",
			fen:    "8/8/7r/8/P7/8/8/8 w - - 0 1",
			square: "a4",
			want:   []string{"a5"},
		},
		{
			name:   "black pawn captures toward higher index",
			fen:    "8/8/8/4p3/3P1P2/8/8/8 b - - 0 1",
			square: "e5",
			want:   []string{"e4", "d4", "f4"},
		},
		{
			name:   "pawn on last rank has no moves",
			fen:    "4P3/8/8/8/8/8/8/8 w - - 0 1",
			square: "e8",
			want:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := mustLoad(t, tt.fen)
			moves := GenerateMoves(pos, chess.MustParseSquare(tt.square))
			if diff := cmp.Diff(sortedNames(t, tt.want), maskNames(moves.Targets)); diff != "" {
				t.Errorf("targets mismatch (-want +got):\n%s", diff)
			}
			wantDouble := chess.NoSquare
			if tt.doublePush != "" {
				wantDouble = chess.MustParseSquare(tt.doublePush)
			}
			if moves.DoublePush != wantDouble {
				t.Errorf("DoublePush = %v; want %v", moves.DoublePush, wantDouble)
			}
		})
	}
}

func TestPawnMoves_EnPassantTarget(t *testing.T) {
	pos := mustLoad(t, "8/8/8/3Pp3/8/8/8/8 w - e6 0 1")

	moves := GenerateMoves(pos, chess.MustParseSquare("d5"))
	if diff := cmp.Diff([]string{"d6", "e6"}, maskNames(moves.Targets)); diff != "" {
		t.Errorf("targets mismatch (-want +got):\n%s", diff)
	}

	pos.EnPassant = chess.NoSquare
	moves = GenerateMoves(pos, chess.MustParseSquare("d5"))
	if diff := cmp.Diff([]string{"d6"}, maskNames(moves.Targets)); diff != "" {
		t.Errorf("without target, mismatch (-want +got):\n%s", diff)
	}
}

func TestPawnMoves_EnPassantTargetGuards(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		from  string
		moves []string
		want  []string
	}{
		{
			name: "own piece on the target",
			fen:  "4k3/8/8/8/8/4N3/3P4/4K3 w - e3 0 1",
			from: "d2",
			want: []string{"d4", "d3"},
		},
		{
			name:  "target belongs to the other side",
			fen:   InitialFEN,
			moves: []string{"e2e4"},
			from:  "d2",
			want:  []string{"d4", "d3"},
		},
		{
			name:  "side the target was made against",
			fen:   "4k3/8/8/8/3p4/8/4P3/4K3 w - - 0 1",
			moves: []string{"e2e4"},
			from:  "d4",
			want:  []string{"d3", "e3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := mustLoad(t, tt.fen)
			for _, m := range tt.moves {
				if !MovePieceFromTo(pos, m[:2], m[2:]) {
					t.Fatalf("move %s rejected", m)
				}
			}
			moves := GenerateMoves(pos, chess.MustParseSquare(tt.from))
			if diff := cmp.Diff(tt.want, maskNames(moves.Targets)); diff != "" {
				t.Errorf("targets mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// TestGenerateMoves_DoesNotMutate checks that generation leaves the position alone.
func TestGenerateMoves_DoesNotMutate(t *testing.T) {
	pos := mustLoad(t, InitialFEN)
	before := *pos

	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		GenerateMoves(pos, sq)
	}

	if pos.Board != before.Board || pos.EnPassant != before.EnPassant || pos.ToMove != before.ToMove {
		t.Error("GenerateMoves modified the position")
	}
}
