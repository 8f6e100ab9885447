package engine

import "github.com/lgbarn/chessmoves-go/internal/chess"

// slidingMoves walks outward in each direction up to the precomputed edge
// distance. A friendly piece stops the walk before its square, an enemy
// piece stops it on its square.
func slidingMoves(board *chess.Board, from chess.Square, colour chess.Color, dirs []chess.Direction) chess.Mask {
	var targets chess.Mask
	enemy := colour.Opposite()

	for _, dir := range dirs {
		offset := dir.Offset()
		for step := 1; step <= chess.Distances.To(from, dir); step++ {
			to := chess.Square(int(from) + offset*step)
			occupant := board[to]
			if occupant.Belongs(colour) {
				break
			}
			targets[to] = true
			if occupant.Belongs(enemy) {
				break
			}
		}
	}
	return targets
}
