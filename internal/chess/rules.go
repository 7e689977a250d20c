package chess

// legal applies the movement rule of kind k to a move from cur to dest.
// Both squares must already be on the board.
func legal(k Kind, cur, dest Square) bool {
	fileDiff := abs(cur.File - dest.File)
	rankDiff := abs(cur.Rank - dest.Rank)

	switch k {
	case Generic:
		return true
	case Rook:
		// Zero-length moves pass too.
		return fileDiff == 0 || rankDiff == 0
	case Bishop:
		return fileDiff == rankDiff
	case King:
		return fileDiff <= 1 && rankDiff <= 1
	default:
		return false
	}
}

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
