package chess

// Square is a zero-based (file, rank) pair. File 0 is the a-file and
// rank 0 is the first rank.
type Square struct {
	File int
	Rank int
}

// ToNumeric converts an algebraic label such as "e4" into a Square.
// ok is false unless the label is exactly one file letter 'a'-'h'
// followed by one rank digit '1'-'8'.
func ToNumeric(label string) (sq Square, ok bool) {
	if len(label) != 2 {
		return Square{}, false
	}
	f, r := label[0], label[1]
	if f < FirstFile || f > LastFile || r < FirstRank || r > LastRank {
		return Square{}, false
	}
	return Square{File: int(f - FileBase), Rank: int(r - RankBase)}, true
}

// IsValidSquare reports whether label names a square on the board.
func IsValidSquare(label string) bool {
	_, ok := ToNumeric(label)
	return ok
}

// OnBoard reports whether both coordinates are in range.
func (s Square) OnBoard() bool {
	return s.File >= 0 && s.File < BoardSize && s.Rank >= 0 && s.Rank < BoardSize
}

// String returns the algebraic label of the square, or "-" if it is off the board.
func (s Square) String() string {
	if !s.OnBoard() {
		return "-"
	}
	return string([]byte{byte(FileBase + s.File), byte(RankBase + s.Rank)})
}
