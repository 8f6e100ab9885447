package engine

import (
	"sort"

	"github.com/lgbarn/chessmoves-go/internal/chess"
	"github.com/lgbarn/chessmoves-go/internal/hashing"
)

// Perft counts the leaf nodes of the move tree to the given depth, using the
// generators exactly as the executor does (no king-safety filtering).
func Perft(pos *chess.Position, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	var nodes uint64
	forEachMove(pos, func(from, to chess.Square, moves Moves) {
		if depth == 1 {
			nodes++
			return
		}
		child := *pos
		child.History = nil
		execute(&child, from, to, moves)
		nodes += Perft(&child, depth-1)
	})
	return nodes
}

// PerftCached is Perft with subtree counts memoised in table, so that
// transpositions are counted once. A nil table falls back to Perft.
func PerftCached(pos *chess.Position, depth int, table *hashing.PerftTable) uint64 {
	if table == nil || depth <= 1 {
		return Perft(pos, depth)
	}
	hash := hashing.GenerateZobristHash(pos)
	if nodes, ok := table.Lookup(hash, depth); ok {
		return nodes
	}

	var nodes uint64
	forEachMove(pos, func(from, to chess.Square, moves Moves) {
		child := *pos
		child.History = nil
		execute(&child, from, to, moves)
		nodes += PerftCached(&child, depth-1, table)
	})
	table.Store(hash, depth, nodes)
	return nodes
}

// DivideEntry is the node count below one root move.
type DivideEntry struct {
	Move  chess.MoveRecord
	Nodes uint64
}

// Divide returns the perft count below each root move, sorted by move text.
func Divide(pos *chess.Position, depth int) []DivideEntry {
	var entries []DivideEntry
	if depth <= 0 {
		return entries
	}
	forEachMove(pos, func(from, to chess.Square, moves Moves) {
		child := *pos
		child.History = nil
		execute(&child, from, to, moves)
		entries = append(entries, DivideEntry{
			Move:  chess.MoveRecord{From: from, To: to},
			Nodes: Perft(&child, depth-1),
		})
	})
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Move.String() < entries[j].Move.String()
	})
	return entries
}

// forEachMove calls fn for every generated move of the side to move.
func forEachMove(pos *chess.Position, fn func(from, to chess.Square, moves Moves)) {
	for from := chess.Square(0); from < chess.NumSquares; from++ {
		if !pos.Board[from].Belongs(pos.ToMove) {
			continue
		}
		moves := GenerateMoves(pos, from)
		for to, ok := range moves.Targets {
			if ok {
				fn(from, chess.Square(to), moves)
			}
		}
	}
}
