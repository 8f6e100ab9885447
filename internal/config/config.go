// Package config provides configuration for chessmoves.
package config

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/lgbarn/chessmoves-go/internal/errors"
)

// Verbosity levels understood by Logf.
const (
	Quiet      = 0 // nothing
	Summary    = 1 // one line per script or command
	Commentary = 2 // running commentary, one line per move
)

// Config holds all program configuration.
type Config struct {
	Verbosity int

	// Starting position, moves and queries.
	Position *PositionConfig

	// Board rendering.
	Output *OutputConfig

	// Script execution and profiling.
	Run *RunConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer

	logMu sync.Mutex // serialises Logf across script workers
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  Summary,
		Position:   NewPositionConfig(),
		Output:     NewOutputConfig(),
		Run:        NewRunConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the writer that boards, masks and counts are written to.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLog sets the writer that diagnostics are written to.
func (c *Config) SetLog(w io.Writer) {
	c.LogFile = w
}

// Logf writes a diagnostic line to LogFile when Verbosity is at least level.
// It is safe for concurrent use. A trailing newline is added if the format
// does not end with one.
func (c *Config) Logf(level int, format string, args ...any) {
	if c.LogFile == nil || c.Verbosity < level {
		return
	}
	msg := fmt.Sprintf(format, args...)
	if len(msg) == 0 || msg[len(msg)-1] != '\n' {
		msg += "\n"
	}
	c.logMu.Lock()
	defer c.logMu.Unlock()
	io.WriteString(c.LogFile, msg) //nolint:errcheck // diagnostics are best effort
}

// Validate checks every sub-configuration.
func (c *Config) Validate() error {
	if c.Verbosity < Quiet {
		return fmt.Errorf("verbosity %d is negative: %w", c.Verbosity, errors.ErrInvalidConfig)
	}
	if err := c.Position.Validate(); err != nil {
		return err
	}
	if err := c.Output.Validate(); err != nil {
		return err
	}
	return c.Run.Validate()
}
