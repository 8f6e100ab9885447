// chessmoves generates piece moves, plays move sequences and renders positions.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"time"

	"github.com/pkg/profile"

	"github.com/lgbarn/chessmoves-go/internal/chess"
	"github.com/lgbarn/chessmoves-go/internal/config"
	"github.com/lgbarn/chessmoves-go/internal/engine"
	"github.com/lgbarn/chessmoves-go/internal/errors"
	"github.com/lgbarn/chessmoves-go/internal/hashing"
	"github.com/lgbarn/chessmoves-go/internal/output"
	"github.com/lgbarn/chessmoves-go/internal/worker"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chessmoves version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := buildConfig()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	// Set up logging and output files
	setupLogFile(cfg)
	setupOutputFile(cfg)

	os.Exit(run(cfg, flag.Args()))
}

// run executes the command-line commands, or the scripts when any are named,
// and returns the process exit status.
func run(cfg *config.Config, scripts []string) int {
	if p := startProfile(cfg); p != nil {
		defer p.Stop()
	}

	if len(scripts) > 0 {
		return runScripts(cfg, scripts)
	}
	if err := runCommands(cfg); err != nil {
		reportError(cfg, err)
		return 1
	}
	return 0
}

// startProfile starts the pprof profile selected by -profile, if any.
func startProfile(cfg *config.Config) interface{ Stop() } {
	var mode func(*profile.Profile)
	switch cfg.Run.Profile {
	case config.ProfileCPU:
		mode = profile.CPUProfile
	case config.ProfileMem:
		mode = profile.MemProfile
	default:
		return nil
	}
	return profile.Start(mode, profile.ProfilePath(cfg.Run.ProfilePath), profile.Quiet, profile.NoShutdownHook)
}

// runCommands loads the start position, plays -moves, then prints the board,
// the -show destinations or the -perft count, and writes -svg.
func runCommands(cfg *config.Config) error {
	pos, err := loadStartPosition(cfg)
	if err != nil {
		return err
	}

	applied, rejected, err := applyMoves(cfg, pos)
	if err != nil {
		return err
	}
	if len(cfg.Position.Moves) > 0 {
		cfg.Logf(config.Summary, "%d moves applied, %d rejected", applied, rejected)
	}

	highlight := showMask(cfg, pos)

	if cfg.Position.PerftDepth > 0 {
		err = writePerft(cfg, pos)
	} else {
		err = writeBoard(cfg, pos, highlight)
	}
	if err != nil {
		return err
	}

	if cfg.Output.SVGFile != "" {
		return writeSVG(cfg, pos, highlight)
	}
	return nil
}

// loadStartPosition returns the -fen position, or the initial position.
func loadStartPosition(cfg *config.Config) (*chess.Position, error) {
	if cfg.Position.StartFEN == "" {
		return engine.NewInitialPosition(), nil
	}
	pos, err := engine.NewPositionFromFEN(cfg.Position.StartFEN)
	if err != nil {
		return nil, errors.Wrap(err, "-fen")
	}
	return pos, nil
}

// applyMoves plays cfg.Position.Moves in order. Rejected moves are logged
// and skipped, or returned when cfg.Run.StopOnReject is set.
func applyMoves(cfg *config.Config, pos *chess.Position) (applied, rejected int, err error) {
	for _, m := range cfg.Position.Moves {
		var moveErr error
		if len(m) == 4 {
			moveErr = engine.MovePiece(pos, m[:2], m[2:])
		} else {
			moveErr = &errors.MoveError{From: m, Err: errors.ErrInvalidSquare}
		}

		if moveErr != nil {
			rejected++
			if cfg.Run.StopOnReject {
				return applied, rejected, moveErr
			}
			cfg.Logf(config.Summary, "rejected: %v", moveErr)
			continue
		}
		applied++
		cfg.Logf(config.Commentary, "%s: %s", m, engine.PositionToFEN(pos))
	}
	return applied, rejected, nil
}

// showMask returns the destinations of the -show square, or nil.
func showMask(cfg *config.Config, pos *chess.Position) *chess.Mask {
	if cfg.Position.ShowSquare == "" {
		return nil
	}
	sq, err := chess.ParseSquare(cfg.Position.ShowSquare)
	if err != nil {
		return nil
	}
	moves := engine.GenerateMoves(pos, sq)
	cfg.Logf(config.Commentary, "%s: %d destinations", sq, moves.Targets.Count())
	return &moves.Targets
}

// writeBoard renders the position in the configured format.
func writeBoard(cfg *config.Config, pos *chess.Position, highlight *chess.Mask) error {
	writer := output.NewWriter(cfg.OutputFile, cfg)
	if err := writer.WritePosition(pos, highlight); err != nil {
		writer.Close() //nolint:errcheck // reporting the write error
		return err
	}
	return writer.Close()
}

// writePerft prints the node count, preceded by one line per root move
// when -divide is set.
func writePerft(cfg *config.Config, pos *chess.Position) error {
	depth := cfg.Position.PerftDepth
	start := time.Now()

	var nodes uint64
	if cfg.Position.Divide {
		for _, e := range engine.Divide(pos, depth) {
			if _, err := fmt.Fprintf(cfg.OutputFile, "%s: %d\n", e.Move, e.Nodes); err != nil {
				return err
			}
			nodes += e.Nodes
		}
	} else {
		table := hashing.NewPerftTable(0)
		nodes = engine.PerftCached(pos, depth, table)
		cfg.Logf(config.Commentary, "perft table: %d entries, %d hits", table.Len(), table.Hits())
	}

	cfg.Logf(config.Summary, "perft(%d) took %v", depth, time.Since(start).Round(time.Millisecond))
	_, err := fmt.Fprintf(cfg.OutputFile, "perft(%d) = %d\n", depth, nodes)
	return err
}

// writeSVG writes an SVG diagram to cfg.Output.SVGFile.
func writeSVG(cfg *config.Config, pos *chess.Position, highlight *chess.Mask) error {
	file, err := os.Create(cfg.Output.SVGFile)
	if err != nil {
		return errors.Wrap(err, "creating SVG file")
	}

	sw := output.NewSVGWriter(file, cfg)
	if err := sw.WritePosition(pos, highlight); err != nil {
		file.Close() //nolint:errcheck // reporting the write error
		return errors.Wrapf(err, "writing %s", cfg.Output.SVGFile)
	}
	if err := sw.Close(); err != nil {
		file.Close() //nolint:errcheck // reporting the close error
		return err
	}
	return file.Close()
}

// runScripts runs every script through the worker pool and writes their
// output in command-line order. With -strict the first failing script
// skips those not yet started.
func runScripts(cfg *config.Config, paths []string) int {
	numWorkers := cfg.Run.Workers
	if numWorkers == 0 {
		numWorkers = runtime.NumCPU()
	}
	if numWorkers > len(paths) {
		numWorkers = len(paths)
	}

	pool := worker.NewPool(
		worker.ScriptProcessor(cfg),
		worker.WithWorkers(numWorkers),
		worker.WithBufferSize(len(paths)),
		worker.WithStopOnError(cfg.Run.StopOnReject),
	)
	pool.Start()

	go func() {
		for i, path := range paths {
			pool.Submit(worker.WorkItem{Path: path, Index: i})
		}
		pool.Close()
	}()

	// Results arrive in completion order; output is emitted in input order.
	results := make([]worker.ProcessResult, len(paths))
	for result := range pool.Results() {
		results[result.Index] = result
	}

	var applied, rejected, failed, skipped int
	for _, result := range results {
		if result.Skipped {
			cfg.Logf(config.Commentary, "%s: skipped", result.Path)
			skipped++
			continue
		}
		if len(result.Output) > 0 {
			if _, err := cfg.OutputFile.Write(result.Output); err != nil {
				reportError(cfg, errors.Wrap(err, "writing output"))
				return 1
			}
		}
		applied += result.Summary.Applied
		rejected += result.Summary.Rejected
		if result.Error != nil {
			reportError(cfg, result.Error)
			failed++
		}
	}

	if len(paths) > 1 {
		cfg.Logf(config.Summary, "%d scripts on %d workers: %d moves applied, %d rejected, %d failed",
			len(paths), pool.Workers(), applied, rejected, failed)
	}
	if skipped > 0 {
		cfg.Logf(config.Summary, "%d scripts skipped after a failure", skipped)
	}
	if failed > 0 {
		return 1
	}
	return 0
}

// reportError writes an error to the log regardless of verbosity.
func reportError(cfg *config.Config, err error) {
	var w io.Writer = os.Stderr
	if cfg.LogFile != nil {
		w = cfg.LogFile
	}
	fmt.Fprintf(w, "Error: %v\n", err)
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile != "" {
		file, err := os.Create(*logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
			os.Exit(1)
		}
		cfg.LogFile = file
	}

	if *appendLog != "" {
		file, err := os.OpenFile(*appendLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *appendLog, err)
			os.Exit(1)
		}
		cfg.LogFile = file
	}
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}

	var file *os.File
	var err error

	if *appendOutput {
		file, err = os.OpenFile(*outputFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created output files
	} else {
		file, err = os.Create(*outputFile)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.OutputFile = file
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chessmoves [options] [script-files...]\n\n")
	fmt.Fprintf(os.Stderr, "Generates piece moves, plays move sequences and renders positions.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nScript commands (one per line, # starts a comment):\n")
	fmt.Fprintf(os.Stderr, "  fen <six FEN fields>  replace the current position\n")
	fmt.Fprintf(os.Stderr, "  e2e4 | e2 e4          move a piece\n")
	fmt.Fprintf(os.Stderr, "  show <square>         print the destinations of the piece on square\n")
	fmt.Fprintf(os.Stderr, "  board                 print the current position\n")
	fmt.Fprintf(os.Stderr, "\nScripts ending in .bz2 or .zst are decompressed on the fly.\n")
}
