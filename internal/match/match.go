// Package match tracks a set of pieces and the log of moves made across them.
package match

import (
	"sort"

	"github.com/google/uuid"

	"github.com/lgbarn/chess-move-tracker/internal/chess"
	"github.com/lgbarn/chess-move-tracker/internal/config"
	"github.com/lgbarn/chess-move-tracker/internal/errors"
)

// Placement is one entry of a starting set.
type Placement struct {
	Kind   chess.Kind
	Square string
}

// Starting is the set Reset places on the board.
var Starting = []Placement{
	{chess.Rook, "a1"}, {chess.Rook, "h1"},
	{chess.Rook, "a8"}, {chess.Rook, "h8"},
	{chess.Bishop, "c1"}, {chess.Bishop, "f1"},
	{chess.Bishop, "c8"}, {chess.Bishop, "f8"},
	{chess.King, "e1"}, {chess.King, "e8"},
}

// Match owns a registry of pieces keyed by prefix and square ("Ra1") and
// the global log of accepted moves. A Match is not safe for concurrent
// use; wrap it in a ThreadSafeMatch for that.
type Match struct {
	id     string
	cfg    *config.Config
	pieces map[string]*chess.Piece
	log    []chess.MoveRecord
}

// New creates a match holding the Starting set. A nil cfg means config.NewConfig().
func New(cfg *config.Config) *Match {
	m := &Match{cfg: orDefault(cfg)}
	m.Reset()
	return m
}

// NewWithPieces creates a match over a pre-built registry. The log starts
// empty even if the pieces already have history. The map is copied; the
// pieces are shared.
func NewWithPieces(pieces map[string]*chess.Piece, cfg *config.Config) *Match {
	m := &Match{
		id:     uuid.New().String(),
		cfg:    orDefault(cfg),
		pieces: make(map[string]*chess.Piece, len(pieces)),
		log:    []chess.MoveRecord{},
	}
	for k, p := range pieces {
		m.pieces[k] = p
	}
	return m
}

func orDefault(cfg *config.Config) *config.Config {
	if cfg == nil {
		return config.NewConfig()
	}
	return cfg
}

// Reset discards the registry and the log, repopulates the Starting set
// and assigns a new match ID.
func (m *Match) Reset() {
	m.id = uuid.New().String()
	m.log = []chess.MoveRecord{}
	m.pieces = make(map[string]*chess.Piece, len(Starting))
	for _, pl := range Starting {
		p, err := chess.NewPiece(pl.Kind, pl.Square, m.cfg.Now)
		if err != nil {
			// Starting only holds board squares.
			panic(err)
		}
		m.pieces[p.Key()] = p
	}
}

// Move asks the piece under key to move to dest.
//
// An unknown key fails with errors.ErrPieceNotFound. A move whose
// destination key is held by another piece fails with
// errors.ErrKeyCollision under the reject policy and replaces that piece
// under the overwrite policy. An illegal move returns ok == false and a
// nil error. On success the record is appended to the log, the piece is
// re-keyed and the record is returned.
func (m *Match) Move(key, dest string) (rec chess.MoveRecord, ok bool, err error) {
	p, found := m.pieces[key]
	if !found {
		return chess.MoveRecord{}, false, &errors.MoveError{
			Err:     errors.ErrPieceNotFound,
			MatchID: m.id,
			Key:     key,
			Dest:    dest,
		}
	}

	newKey := p.Prefix() + dest
	if other, taken := m.pieces[newKey]; taken && other != p && p.IsLegalMove(dest) {
		if m.cfg.OnCollision != config.OverwriteCollisions {
			return chess.MoveRecord{}, false, &errors.MoveError{
				Err:      errors.ErrKeyCollision,
				MatchID:  m.id,
				Key:      key,
				Dest:     dest,
				Conflict: newKey,
			}
		}
		m.cfg.Logf(1, "warning: match %s: %s to %s replaces piece at %s", m.id, key, dest, newKey)
	}

	rec, ok = p.Move(dest)
	if !ok {
		return chess.MoveRecord{}, false, nil
	}

	m.log = append(m.log, rec)
	delete(m.pieces, key)
	m.pieces[newKey] = p
	m.cfg.Logf(2, "match %s: %s %s", m.id, key, rec)
	return rec, true, nil
}

// Len returns the number of moves made, not the number of pieces.
func (m *Match) Len() int {
	return len(m.log)
}

// ID returns the match identifier.
func (m *Match) ID() string {
	return m.id
}

// Log returns a copy of the accepted moves, oldest first.
func (m *Match) Log() []chess.MoveRecord {
	out := make([]chess.MoveRecord, len(m.log))
	copy(out, m.log)
	return out
}

// Piece returns the piece registered under key.
func (m *Match) Piece(key string) (*chess.Piece, bool) {
	p, ok := m.pieces[key]
	return p, ok
}

// Keys returns the registry keys in sorted order.
func (m *Match) Keys() []string {
	keys := make([]string, 0, len(m.pieces))
	for k := range m.pieces {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
