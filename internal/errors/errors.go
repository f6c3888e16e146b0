// Package errors provides sentinel errors and error types for tilechess.
// The rules engine itself reports legality as booleans; these errors belong
// to the surfaces around it (sessions, FEN interchange, configuration, CLI
// input) and preserve context while allowing errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
var (
	// ErrInvalidColor indicates a color token other than black or white.
	ErrInvalidColor = errors.New("invalid color")

	// ErrInvalidSquare indicates a square that cannot be parsed or is off the board.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrIllegalMove indicates a move the piece's rules reject.
	ErrIllegalMove = errors.New("illegal move")

	// ErrEmptySquare indicates a move that starts on an empty tile.
	ErrEmptySquare = errors.New("no piece on square")

	// ErrGameOver indicates a command issued after the game ended.
	ErrGameOver = errors.New("game is over")

	// ErrNothingToUndo indicates there is no move left to take back.
	ErrNothingToUndo = errors.New("nothing to undo")

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrUnsupportedPiece indicates a piece kind FEN cannot express.
	ErrUnsupportedPiece = errors.New("piece not representable in FEN")

	// ErrInvalidLayout indicates an unknown starting layout name.
	ErrInvalidLayout = errors.New("invalid layout")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrUnknownCommand indicates an interactive command that does not exist.
	ErrUnknownCommand = errors.New("unknown command")
)

// MoveError wraps a rejected move with the context it was attempted in.
type MoveError struct {
	Err    error  // The underlying error
	Ply    int    // 1-based ply the move would have been (0 if unknown)
	Player string // Color of the player attempting the move
	From   string // Start square
	To     string // Destination square
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Ply > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.Ply))
	}
	if e.Player != "" {
		parts = append(parts, strings.ToLower(e.Player))
	}
	if e.From != "" || e.To != "" {
		parts = append(parts, fmt.Sprintf("%s-%s", e.From, e.To))
	}

	context := strings.Join(parts, ", ")
	if e.Err != nil {
		if context == "" {
			return e.Err.Error()
		}
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	if context == "" {
		return "move error"
	}
	return context
}

// Unwrap returns the underlying error.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// ParseError represents an input parsing error with location context.
// It's used for command lines and FEN lists read by the CLI.
type ParseError struct {
	Err      error  // The underlying error
	File     string // Source name
	Line     int    // Line number (1-based)
	Column   int    // Column number (1-based)
	Expected string // What was expected
	Got      string // What was found instead
}

// Error returns a formatted error message with location and context.
func (e *ParseError) Error() string {
	var parts []string

	if e.File != "" {
		loc := e.File
		if e.Line > 0 {
			loc += fmt.Sprintf(":%d", e.Line)
			if e.Column > 0 {
				loc += fmt.Sprintf(":%d", e.Column)
			}
		}
		parts = append(parts, loc)
	} else if e.Line > 0 {
		parts = append(parts, fmt.Sprintf("line %d", e.Line))
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

// New returns an error that formats as the given text.
func New(text string) error {
	return errors.New(text)
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
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
