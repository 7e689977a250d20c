package chess

import (
	"time"

	"github.com/lgbarn/chess-move-tracker/internal/errors"
)

// Piece is a single piece with its current square and private move history.
// A Piece is not safe for concurrent use.
type Piece struct {
	kind     Kind
	position string
	moves    []MoveRecord
	clock    Clock
}

// NewPiece creates a piece of the given kind standing on start.
// A nil clock means time.Now. It fails with a *errors.PositionError
// wrapping errors.ErrInvalidPosition if start is not a square.
func NewPiece(kind Kind, start string, clock Clock) (*Piece, error) {
	if !IsValidSquare(start) {
		return nil, &errors.PositionError{
			Err:   errors.ErrInvalidPosition,
			Label: start,
			Kind:  kind.String(),
		}
	}
	if clock == nil {
		clock = time.Now
	}
	return &Piece{
		kind:     kind,
		position: start,
		moves:    []MoveRecord{},
		clock:    clock,
	}, nil
}

// NewGeneric creates a piece with no geometric restriction.
func NewGeneric(start string) (*Piece, error) { return NewPiece(Generic, start, nil) }

// NewRook creates a rook.
func NewRook(start string) (*Piece, error) { return NewPiece(Rook, start, nil) }

// NewBishop creates a bishop.
func NewBishop(start string) (*Piece, error) { return NewPiece(Bishop, start, nil) }

// NewKing creates a king.
func NewKing(start string) (*Piece, error) { return NewPiece(King, start, nil) }

// Kind returns the movement rule of the piece.
func (p *Piece) Kind() Kind {
	return p.kind
}

// Prefix returns the registry prefix of the piece's kind.
func (p *Piece) Prefix() string {
	return p.kind.Prefix()
}

// Position returns the label of the square the piece stands on.
func (p *Piece) Position() string {
	return p.position
}

// Key returns the registry key for the piece at its current square, e.g. "Ra1".
func (p *Piece) Key() string {
	return p.kind.Prefix() + p.position
}

// History returns a copy of the moves this piece has made, oldest first.
func (p *Piece) History() []MoveRecord {
	out := make([]MoveRecord, len(p.moves))
	copy(out, p.moves)
	return out
}

// IsLegalMove reports whether moving to dest fits the piece's geometry.
// It never changes the piece.
func (p *Piece) IsLegalMove(dest string) bool {
	to, ok := ToNumeric(dest)
	if !ok {
		return false
	}
	cur, ok := ToNumeric(p.position)
	if !ok {
		return false
	}
	return legal(p.kind, cur, to)
}

// Move moves the piece to dest if the move is legal, appending the
// record to the piece's history. ok is false for an illegal move, in
// which case nothing changes.
func (p *Piece) Move(dest string) (rec MoveRecord, ok bool) {
	if !p.IsLegalMove(dest) {
		return MoveRecord{}, false
	}
	rec = MoveRecord{
		From: p.position,
		To:   dest,
		Time: p.clock(),
	}
	p.position = dest
	p.moves = append(p.moves, rec)
	return rec, true
}
