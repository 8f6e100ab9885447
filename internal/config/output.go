package config

import (
	"fmt"

	"github.com/lgbarn/chessmoves-go/internal/errors"
)

// OutputConfig holds settings related to board rendering.
type OutputConfig struct {
	// Colour enables ANSI colours in the text board
	Colour bool

	// Coordinates prints file letters and rank digits around the text board
	Coordinates bool

	// JSONFormat enables JSON output instead of text diagrams
	JSONFormat bool

	// JSONStream writes one JSON object per position as it is produced
	// instead of a single array on close
	JSONStream bool

	// SVGFile receives an SVG diagram of the final position when set
	SVGFile string

	// SVGSquareSize is the edge length of one SVG square in pixels
	SVGSquareSize int
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Coordinates:   true,
		SVGSquareSize: 45,
	}
}

// Validate checks that the output configuration is valid.
func (o *OutputConfig) Validate() error {
	if o.SVGSquareSize <= 0 {
		return fmt.Errorf("SVG square size %d must be positive: %w", o.SVGSquareSize, errors.ErrInvalidConfig)
	}
	return nil
}
