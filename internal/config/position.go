package config

import (
	"fmt"

	"github.com/lgbarn/chessmoves-go/internal/chess"
	"github.com/lgbarn/chessmoves-go/internal/errors"
)

// MaxPerftDepth bounds -perft; the tree grows roughly thirty-fold per ply.
const MaxPerftDepth = 6

// PositionConfig holds the starting position and the commands applied to it.
type PositionConfig struct {
	// StartFEN is the position commands start from. Empty means the
	// standard initial position.
	StartFEN string

	// Moves are applied in order, each written as from+to ("e2e4").
	Moves []string

	// ShowSquare names the square whose legal destinations are printed.
	ShowSquare string

	// PerftDepth counts move paths to this depth when non-zero.
	PerftDepth int

	// Divide prints the perft count below each root move.
	Divide bool
}

// NewPositionConfig creates a PositionConfig with default values.
// All fields use Go zero values: start from the initial position and do nothing.
func NewPositionConfig() *PositionConfig {
	return &PositionConfig{}
}

// Validate checks that the position configuration is valid. FEN text is
// checked later by the loader, which reports the failing field.
func (p *PositionConfig) Validate() error {
	if p.PerftDepth < 0 || p.PerftDepth > MaxPerftDepth {
		return fmt.Errorf("perft depth %d outside 0-%d: %w",
			p.PerftDepth, MaxPerftDepth, errors.ErrInvalidConfig)
	}
	if p.ShowSquare != "" {
		if _, err := chess.ParseSquare(p.ShowSquare); err != nil {
			return fmt.Errorf("show square: %v: %w", err, errors.ErrInvalidConfig)
		}
	}
	for _, m := range p.Moves {
		if len(m) != 4 {
			return fmt.Errorf("move %q is not from+to like e2e4: %w", m, errors.ErrInvalidConfig)
		}
	}
	return nil
}
