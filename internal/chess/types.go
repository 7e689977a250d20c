// Package chess provides the square translator, piece kinds and their
// movement rules for the move tracker.
package chess

// Kind represents the movement rule a piece follows.
type Kind int

const (
	Generic Kind = iota // Any valid square is legal
	Rook
	Bishop
	King
	NumKinds
)

// String returns the string representation of a kind.
func (k Kind) String() string {
	names := []string{"Generic", "Rook", "Bishop", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Prefix returns the registry prefix of a kind. Generic pieces have none.
func (k Kind) Prefix() string {
	prefixes := []string{"", "R", "B", "K"}
	if k >= 0 && int(k) < len(prefixes) {
		return prefixes[k]
	}
	return "?"
}

// KindFromPrefix maps a registry prefix back to its kind.
func KindFromPrefix(prefix string) (Kind, bool) {
	for k := Generic; k < NumKinds; k++ {
		if k.Prefix() == prefix {
			return k, true
		}
	}
	return Generic, false
}

// Constants for board dimensions and coordinates.
const (
	BoardSize = 8

	RankBase  = '1'
	FileBase  = 'a'
	FirstRank = RankBase
	LastRank  = RankBase + BoardSize - 1
	FirstFile = FileBase
	LastFile  = FileBase + BoardSize - 1
)
