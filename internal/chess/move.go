package chess

import "time"

// Clock supplies the timestamp recorded with each move.
type Clock func() time.Time

// MoveRecord is the immutable record of one accepted move.
type MoveRecord struct {
	// Square the piece left.
	From string

	// Square the piece arrived on.
	To string

	// When the move was made, as read from the piece's clock.
	Time time.Time
}

// String returns the move in "from-to" form, e.g. "a1-a5".
func (m MoveRecord) String() string {
	return m.From + "-" + m.To
}
