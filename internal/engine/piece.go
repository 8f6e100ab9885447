package engine

import "github.com/lgbarn/chessmoves-go/internal/chess"

// kingMoves steps once in every direction that has room.
func kingMoves(board *chess.Board, from chess.Square, colour chess.Color) chess.Mask {
	var targets chess.Mask
	for _, dir := range chess.AllDirections {
		if chess.Distances.To(from, dir) == 0 {
			continue
		}
		to := chess.Square(int(from) + dir.Offset())
		if !board[to].Belongs(colour) {
			targets[to] = true
		}
	}
	return targets
}

// knightJump is one knight offset together with the edge distances it needs:
// two squares of room in the long direction and one in the short one.
type knightJump struct {
	offset int
	long   chess.Direction
	short  chess.Direction
}

var knightJumps = [8]knightJump{
	{-15, chess.North, chess.East},
	{-6, chess.East, chess.North},
	{10, chess.East, chess.South},
	{17, chess.South, chess.East},
	{15, chess.South, chess.West},
	{6, chess.West, chess.South},
	{-10, chess.West, chess.North},
	{-17, chess.North, chess.West},
}

// knightMoves applies the eight fixed jumps, skipping any that would wrap
// around a board edge.
func knightMoves(board *chess.Board, from chess.Square, colour chess.Color) chess.Mask {
	var targets chess.Mask
	for _, jump := range knightJumps {
		if chess.Distances.To(from, jump.long) < 2 || chess.Distances.To(from, jump.short) < 1 {
			continue
		}
		to := chess.Square(int(from) + jump.offset)
		if !board[to].Belongs(colour) {
			targets[to] = true
		}
	}
	return targets
}
