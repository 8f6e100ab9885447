// Package script runs line-oriented move scripts against a position.
//
// A script is plain text, one command per line; '#' starts a comment:
//
//	fen <six FEN fields>   replace the current position
//	e2e4 | e2 e4           move a piece
//	show <square>          write the position with that piece's destinations
//	board                  write the position
package script

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/lgbarn/chessmoves-go/internal/chess"
	"github.com/lgbarn/chessmoves-go/internal/config"
	"github.com/lgbarn/chessmoves-go/internal/engine"
	"github.com/lgbarn/chessmoves-go/internal/errors"
	"github.com/lgbarn/chessmoves-go/internal/output"
)

// Summary reports what a script did.
type Summary struct {
	Name     string
	Applied  int
	Rejected int
	Final    *chess.Position
}

// Runner executes scripts, writing requested positions to out.
type Runner struct {
	cfg *config.Config
	out output.PositionWriter
}

// NewRunner creates a runner. Scripts start from cfg.Position.StartFEN, or
// the initial position when it is empty.
func NewRunner(out output.PositionWriter, cfg *config.Config) *Runner {
	return &Runner{cfg: cfg, out: out}
}

// RunFile opens a plain, .bz2 or .zst script and runs it.
func (r *Runner) RunFile(path string) (Summary, error) {
	src, err := Open(path)
	if err != nil {
		return Summary{Name: path}, err
	}
	defer src.Close() //nolint:errcheck // read-only

	r.cfg.Logf(config.Commentary, "%s: %s script, %s stored", path, src.Format(), src.Size())
	sum, err := r.Run(src, path)
	r.cfg.Logf(config.Commentary, "%s: %s of script text read from %s of stored data",
		path, src.BytesRead(), src.CompressedRead())
	return sum, err
}

// Run executes the script read from in. name labels log lines and errors.
// A malformed line stops the script with a *errors.ParseError; rejected
// moves are counted and skipped unless cfg.Run.StopOnReject is set.
func (r *Runner) Run(in io.Reader, name string) (Summary, error) {
	sum := Summary{Name: name}
	start, err := r.startPosition()
	if err != nil {
		return sum, err
	}
	sum.Final = start

	scanner := bufio.NewScanner(in)
	line := 0
	for scanner.Scan() {
		line++
		if err := r.execLine(&sum, scanner.Text(), line); err != nil {
			return sum, err
		}
	}
	if err := scanner.Err(); err != nil {
		return sum, errors.Wrapf(err, "reading %s", name)
	}

	r.cfg.Logf(config.Summary, "%s: %d moves applied, %d rejected", name, sum.Applied, sum.Rejected)
	return sum, nil
}

func (r *Runner) startPosition() (*chess.Position, error) {
	if r.cfg.Position.StartFEN == "" {
		return engine.NewInitialPosition(), nil
	}
	pos, err := engine.NewPositionFromFEN(r.cfg.Position.StartFEN)
	if err != nil {
		return nil, errors.Wrap(err, "start position")
	}
	return pos, nil
}

func (r *Runner) execLine(sum *Summary, text string, line int) error {
	if i := strings.IndexByte(text, '#'); i >= 0 {
		text = text[:i]
	}
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return nil
	}

	fail := func(err error, expected, got string) error {
		return &errors.ParseError{Err: err, File: sum.Name, Line: line, Expected: expected, Got: got}
	}

	switch strings.ToLower(fields[0]) {
	case "fen":
		if len(fields) != 7 {
			return fail(errors.ErrParseFailure, "six FEN fields", strconv.Itoa(len(fields)-1))
		}
		pos, err := engine.NewPositionFromFEN(strings.Join(fields[1:], " "))
		if err != nil {
			return fail(err, "", "")
		}
		sum.Final = pos
		r.cfg.Logf(config.Commentary, "%s:%d: position %s", sum.Name, line, engine.PositionToFEN(pos))

	case "show":
		if len(fields) != 2 {
			return fail(errors.ErrParseFailure, "one square", strconv.Itoa(len(fields)-1)+" arguments")
		}
		sq, err := chess.ParseSquare(fields[1])
		if err != nil {
			return fail(err, "", "")
		}
		moves := engine.GenerateMoves(sum.Final, sq)
		r.cfg.Logf(config.Commentary, "%s:%d: %s has %d destinations", sum.Name, line, sq, moves.Targets.Count())
		return r.write(sum, &moves.Targets)

	case "board":
		if len(fields) != 1 {
			return fail(errors.ErrParseFailure, "no arguments", strings.Join(fields[1:], " "))
		}
		return r.write(sum, nil)

	default:
		from, to, ok := splitMove(fields)
		if !ok {
			return fail(errors.ErrParseFailure, "command or move", strings.Join(fields, " "))
		}
		if err := engine.MovePiece(sum.Final, from, to); err != nil {
			sum.Rejected++
			r.cfg.Logf(config.Commentary, "%s:%d: %v", sum.Name, line, err)
			if r.cfg.Run.StopOnReject {
				return fail(err, "", "")
			}
			return nil
		}
		sum.Applied++
		r.cfg.Logf(config.Commentary, "%s:%d: %s%s", sum.Name, line, from, to)
	}
	return nil
}

func (r *Runner) write(sum *Summary, highlight *chess.Mask) error {
	if err := r.out.WritePosition(sum.Final, highlight); err != nil {
		return errors.Wrapf(err, "writing %s", sum.Name)
	}
	return nil
}

// splitMove accepts "e2e4" or "e2 e4".
func splitMove(fields []string) (from, to string, ok bool) {
	switch {
	case len(fields) == 1 && len(fields[0]) == 4:
		return fields[0][:2], fields[0][2:], true
	case len(fields) == 2 && len(fields[0]) == 2 && len(fields[1]) == 2:
		return fields[0], fields[1], true
	default:
		return "", "", false
	}
}
