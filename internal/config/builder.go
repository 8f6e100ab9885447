package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithStartFEN sets the starting position.
func (b *ConfigBuilder) WithStartFEN(fen string) *ConfigBuilder {
	b.cfg.Position.StartFEN = fen
	return b
}

// WithMoves sets the moves applied to the starting position.
func (b *ConfigBuilder) WithMoves(moves ...string) *ConfigBuilder {
	b.cfg.Position.Moves = moves
	return b
}

// WithShowSquare sets the square whose destinations are printed.
func (b *ConfigBuilder) WithShowSquare(square string) *ConfigBuilder {
	b.cfg.Position.ShowSquare = square
	return b
}

// WithPerft enables move path counting to the given depth.
func (b *ConfigBuilder) WithPerft(depth int, divide bool) *ConfigBuilder {
	b.cfg.Position.PerftDepth = depth
	b.cfg.Position.Divide = divide
	return b
}

// WithColour enables ANSI colours in the text board.
func (b *ConfigBuilder) WithColour(enabled bool) *ConfigBuilder {
	b.cfg.Output.Colour = enabled
	return b
}

// WithJSONOutput enables JSON output.
func (b *ConfigBuilder) WithJSONOutput(enabled bool) *ConfigBuilder {
	b.cfg.Output.JSONFormat = enabled
	return b
}

// WithJSONStream writes each position as its own JSON object. It implies
// JSON output.
func (b *ConfigBuilder) WithJSONStream(enabled bool) *ConfigBuilder {
	b.cfg.Output.JSONStream = enabled
	if enabled {
		b.cfg.Output.JSONFormat = true
	}
	return b
}

// WithCoordinates controls the file letters and rank digits of the text board.
func (b *ConfigBuilder) WithCoordinates(enabled bool) *ConfigBuilder {
	b.cfg.Output.Coordinates = enabled
	return b
}

// WithSVG sets the SVG output file and square size.
func (b *ConfigBuilder) WithSVG(path string, squareSize int) *ConfigBuilder {
	b.cfg.Output.SVGFile = path
	b.cfg.Output.SVGSquareSize = squareSize
	return b
}

// WithWorkers sets the number of concurrent scripts.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Run.Workers = n
	return b
}

// WithProfile selects a profile mode and output directory.
func (b *ConfigBuilder) WithProfile(mode, path string) *ConfigBuilder {
	b.cfg.Run.Profile = mode
	b.cfg.Run.ProfilePath = path
	return b
}

// StopOnReject controls whether a script stops at its first rejected move.
func (b *ConfigBuilder) StopOnReject(stop bool) *ConfigBuilder {
	b.cfg.Run.StopOnReject = stop
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the log writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
