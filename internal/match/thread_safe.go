package match

import (
	"sync"

	"github.com/lgbarn/chess-move-tracker/internal/chess"
)

// ThreadSafeMatch wraps Match with mutex protection for concurrent access.
// Moves and resets are serialized so re-keying never interleaves.
type ThreadSafeMatch struct {
	match *Match
	mu    sync.RWMutex
}

// NewThreadSafeMatch wraps m. m must not be used directly afterwards.
func NewThreadSafeMatch(m *Match) *ThreadSafeMatch {
	return &ThreadSafeMatch{match: m}
}

// Move atomically moves the piece under key. See Match.Move.
func (t *ThreadSafeMatch) Move(key, dest string) (chess.MoveRecord, bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.match.Move(key, dest)
}

// Reset atomically resets the match. See Match.Reset.
func (t *ThreadSafeMatch) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.match.Reset()
}

// Len returns the number of moves made.
func (t *ThreadSafeMatch) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.match.Len()
}

// ID returns the match identifier.
func (t *ThreadSafeMatch) ID() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.match.ID()
}

// Log returns a copy of the accepted moves.
func (t *ThreadSafeMatch) Log() []chess.MoveRecord {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.match.Log()
}

// Keys returns the registry keys in sorted order.
func (t *ThreadSafeMatch) Keys() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.match.Keys()
}

// Position returns the square of the piece under key. The piece itself is
// not handed out since it is only guarded while the lock is held.
func (t *ThreadSafeMatch) Position(key string) (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	p, ok := t.match.Piece(key)
	if !ok {
		return "", false
	}
	return p.Position(), true
}
