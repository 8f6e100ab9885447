package main

import (
	"flag"
	"strings"

	"github.com/lgbarn/chessmoves-go/internal/config"
)

// Command-line flags
var (
	// Position options
	fenString  = flag.String("fen", "", "Starting position in FEN (default: initial position)")
	moveList   = flag.String("moves", "", "Comma-separated moves to apply, e.g. e2e4,e7e5")
	showSquare = flag.String("show", "", "Print the destinations of the piece on this square")
	perftDepth = flag.Int("perft", 0, "Count move paths to this depth instead of printing the board")
	divide     = flag.Bool("divide", false, "With -perft, also print the count below each root move")

	// Output options
	outputFile   = flag.String("o", "", "Output file (default: stdout)")
	appendOutput = flag.Bool("a", false, "Append to output file instead of overwrite")
	jsonOutput   = flag.Bool("J", false, "Output in JSON format")
	jsonStream   = flag.Bool("jsonstream", false, "Write each position as its own JSON object (implies -J)")
	colourOutput = flag.Bool("colour", false, "Use ANSI colours in the text board")
	noCoords     = flag.Bool("nocoords", false, "Don't print file letters and rank digits")
	svgFile      = flag.String("svg", "", "Write an SVG diagram of the final position to this file")
	svgSize      = flag.Int("svgsize", 45, "SVG square size in pixels")

	// Script options
	workers      = flag.Int("workers", 0, "Number of scripts run in parallel (0 = one per CPU core)")
	stopOnReject = flag.Bool("strict", false, "Stop a script at its first rejected move")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	appendLog = flag.String("L", "", "Append diagnostics to log file")
	verbosity = flag.Int("v", config.Summary, "Verbosity: 0 = silent, 1 = summaries, 2 = every move")
	quiet     = flag.Bool("s", false, "Silent mode (same as -v 0)")

	// Profiling
	profileMode = flag.String("profile", "", "Record a pprof profile: cpu or mem")
	profileDir  = flag.String("profiledir", ".", "Directory profiles are written to")

	// Other options
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// buildConfig builds the configuration from the command-line flags.
func buildConfig() *config.Config {
	b := config.NewConfigBuilder()
	applyPositionFlags(b)
	applyOutputFlags(b)
	applyRunFlags(b)

	level := *verbosity
	if *quiet {
		level = config.Quiet
	}
	return b.WithVerbosity(level).Build()
}

// applyPositionFlags applies the starting position and the commands run on it.
func applyPositionFlags(b *config.ConfigBuilder) {
	b.WithStartFEN(strings.TrimSpace(*fenString)).
		WithMoves(parseMoveList(*moveList)...).
		WithShowSquare(*showSquare).
		WithPerft(*perftDepth, *divide)
}

// applyOutputFlags applies board rendering flags.
func applyOutputFlags(b *config.ConfigBuilder) {
	b.WithJSONOutput(*jsonOutput).
		WithJSONStream(*jsonStream).
		WithColour(*colourOutput).
		WithCoordinates(!*noCoords).
		WithSVG(*svgFile, *svgSize)
}

// applyRunFlags applies script execution and profiling flags.
func applyRunFlags(b *config.ConfigBuilder) {
	b.WithWorkers(*workers).
		StopOnReject(*stopOnReject).
		WithProfile(*profileMode, *profileDir)
}

// parseMoveList splits "e2e4, e7e5" into trimmed, non-empty moves.
func parseMoveList(s string) []string {
	var moves []string
	for _, m := range strings.Split(s, ",") {
		if m = strings.TrimSpace(m); m != "" {
			moves = append(moves, m)
		}
	}
	return moves
}
