// Package errors provides sentinel errors and error types for the move tracker.
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
	// ErrInvalidPosition indicates a label that is not a square on the board.
	ErrInvalidPosition = errors.New("invalid position")

	// ErrPieceNotFound indicates a registry key with no piece behind it.
	ErrPieceNotFound = errors.New("piece not found")

	// ErrKeyCollision indicates a move whose destination key is held by another piece.
	ErrKeyCollision = errors.New("registry key collision")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// PositionError reports a rejected square label, typically at piece construction.
type PositionError struct {
	Err   error  // The underlying error
	Label string // The rejected label
	Kind  string // The piece kind being constructed (if known)
}

// Error returns a formatted error message including the rejected label.
func (e *PositionError) Error() string {
	msg := fmt.Sprintf("%q not legal position to start at", e.Label)
	if e.Kind != "" {
		msg = e.Kind + ": " + msg
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the PositionError wrapper.
func (e *PositionError) Unwrap() error {
	return e.Err
}

// MoveError wraps errors raised by a match move with the registry key and
// destination involved.
type MoveError struct {
	Err      error  // The underlying error
	MatchID  string // Match identifier (if known)
	Key      string // Registry key of the piece asked to move
	Dest     string // Requested destination square
	Conflict string // Key already occupying the destination (collisions only)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.MatchID != "" {
		parts = append(parts, "match "+e.MatchID)
	}
	if e.Key != "" {
		parts = append(parts, fmt.Sprintf("piece %q", e.Key))
	}
	if e.Dest != "" {
		parts = append(parts, fmt.Sprintf("to %q", e.Dest))
	}
	if e.Conflict != "" {
		parts = append(parts, fmt.Sprintf("held by %q", e.Conflict))
	}

	context := strings.Join(parts, ", ")
	if e.Err == nil {
		return context
	}
	if context == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", context, e.Err)
}

// Unwrap returns the underlying error.
func (e *MoveError) Unwrap() error {
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
