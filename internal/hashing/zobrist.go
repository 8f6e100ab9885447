// Package hashing provides Zobrist position hashes and a shared node-count
// cache keyed by them.
package hashing

import (
	"math/bits"

	"github.com/lgbarn/chessmoves-go/internal/chess"
)

// zobristSeed fixes the key table so hashes are stable across runs.
const zobristSeed = 0x9E3779B97F4A7C15

var (
	pieceKeys     [2][6][chess.NumSquares]uint64
	blackToMove   uint64
	castlingKeys  [4]uint64
	enPassantKeys [chess.NumSquares]uint64
)

func init() {
	state := uint64(zobristSeed)
	next := func() uint64 {
		state += 0x9E3779B97F4A7C15
		z := state
		z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
		z = (z ^ (z >> 27)) * 0x94D049BB133111EB
		return z ^ (z >> 31)
	}

	for c := range pieceKeys {
		for t := range pieceKeys[c] {
			for sq := range pieceKeys[c][t] {
				pieceKeys[c][t][sq] = next()
			}
		}
	}
	blackToMove = next()
	for i := range castlingKeys {
		castlingKeys[i] = next()
	}
	for sq := range enPassantKeys {
		enPassantKeys[sq] = next()
	}
}

// GenerateZobristHash hashes the placement, side to move, castling rights
// and en-passant target. The move clocks and history are not included, so
// transpositions hash equal.
func GenerateZobristHash(pos *chess.Position) uint64 {
	hash := BoardHash(&pos.Board)

	if pos.ToMove == chess.Black {
		hash ^= blackToMove
	}
	rights := [4]bool{
		pos.Castling.WhiteKingside,
		pos.Castling.WhiteQueenside,
		pos.Castling.BlackKingside,
		pos.Castling.BlackQueenside,
	}
	for i, ok := range rights {
		if ok {
			hash ^= castlingKeys[i]
		}
	}
	if pos.EnPassant.Valid() {
		hash ^= enPassantKeys[pos.EnPassant]
	}
	return hash
}

// BoardHash hashes the piece placement alone.
func BoardHash(board *chess.Board) uint64 {
	var hash uint64
	for sq, piece := range board {
		if piece == chess.Empty || !piece.Valid() {
			continue
		}
		colour := 0
		if piece.Color() == chess.Black {
			colour = 1
		}
		kind := bits.TrailingZeros8(uint8(piece.Type()))
		hash ^= pieceKeys[colour][kind][sq]
	}
	return hash
}
