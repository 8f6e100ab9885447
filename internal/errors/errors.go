// Package errors provides sentinel errors and error types for chessmoves.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrIllegalMove indicates a destination outside the piece's legal mask.
	ErrIllegalMove = errors.New("illegal move")

	// ErrWrongSide indicates an attempt to move a piece of the side not on move.
	ErrWrongSide = errors.New("piece does not belong to side to move")

	// ErrEmptySquare indicates an attempt to move from an empty square.
	ErrEmptySquare = errors.New("no piece on square")

	// ErrInvalidSquare indicates text that is not an algebraic square.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrParseFailure indicates a malformed move script.
	ErrParseFailure = errors.New("parse failure")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// FENError reports which field of a FEN record could not be parsed and why.
// It always unwraps to ErrInvalidFEN.
type FENError struct {
	Field  string // "record", "placement", "active colour", "castling", ...
	Value  string // Offending text, if any
	Reason string
}

// Error returns a message of the form "invalid FEN string: field: reason (value)".
func (e *FENError) Error() string {
	var sb strings.Builder
	sb.WriteString(ErrInvalidFEN.Error())
	if e.Field != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Field)
	}
	if e.Reason != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Reason)
	}
	if e.Value != "" {
		fmt.Fprintf(&sb, " (%q)", e.Value)
	}
	return sb.String()
}

// Unwrap returns ErrInvalidFEN.
func (e *FENError) Unwrap() error {
	return ErrInvalidFEN
}

// MoveError explains why a move command was rejected.
type MoveError struct {
	From string
	To   string
	Err  error
}

func (e *MoveError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("move %s-%s", e.From, e.To)
	}
	return fmt.Sprintf("move %s-%s: %v", e.From, e.To, e.Err)
}

// Unwrap returns the underlying error.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// ParseError represents a parsing error with file location context.
// It's used for move-script errors.
type ParseError struct {
	Err      error  // The underlying error
	File     string // Source file name
	Line     int    // Line number (1-based)
	Column   int    // Column number (1-based)
	Expected string // What was expected (for syntax errors)
	Got      string // What was found instead
}

// Error returns a formatted error message with location and context.
func (e *ParseError) Error() string {
	var parts []string

	if e.File != "" || e.Line > 0 {
		loc := e.File
		if loc == "" {
			loc = "<input>"
		}
		if e.Line > 0 {
			loc += fmt.Sprintf(":%d", e.Line)
			if e.Column > 0 {
				loc += fmt.Sprintf(":%d", e.Column)
			}
		}
		parts = append(parts, loc)
	}

	if e.Expected != "" && e.Got != "" {
		parts = append(parts, fmt.Sprintf("expected %s, got %s", e.Expected, e.Got))
	} else if e.Expected != "" {
		parts = append(parts, fmt.Sprintf("expected %s", e.Expected))
	} else if e.Got != "" {
		parts = append(parts, fmt.Sprintf("unexpected %s", e.Got))
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "parse error"
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
