package domain

// HasConnect reports whether player has ToWin in a row anywhere on the board.
// It checks every 4-cell window in all four orientations rather than scanning
// out from a known move, so it works on arbitrary snapshots.
func (b Board) HasConnect(player PlayerID) bool {
	// horizontal
	for r := 0; r < Rows; r++ {
		for c := 0; c <= Columns-ToWin; c++ {
			if b[r][c] == player && b[r][c+1] == player && b[r][c+2] == player && b[r][c+3] == player {
				return true
			}
		}
	}

	// vertical
	for c := 0; c < Columns; c++ {
		for r := 0; r <= Rows-ToWin; r++ {
			if b[r][c] == player && b[r+1][c] == player && b[r+2][c] == player && b[r+3][c] == player {
				return true
			}
		}
	}

	// diagonal, down-right
	for r := 0; r <= Rows-ToWin; r++ {
		for c := 0; c <= Columns-ToWin; c++ {
			if b[r][c] == player && b[r+1][c+1] == player && b[r+2][c+2] == player && b[r+3][c+3] == player {
				return true
			}
		}
	}

	// diagonal, up-right
	for r := ToWin - 1; r < Rows; r++ {
		for c := 0; c <= Columns-ToWin; c++ {
			if b[r][c] == player && b[r-1][c+1] == player && b[r-2][c+2] == player && b[r-3][c+3] == player {
				return true
			}
		}
	}

	return false
}

// IsTerminal reports whether the position is over: someone connected four, or
// there is nowhere left to play.
func (b Board) IsTerminal() bool {
	return b.HasConnect(PlayerOne) || b.HasConnect(PlayerTwo) || b.IsFull()
}

// WinAt reports whether player has four in a row through (row, column). Only
// lines passing through that cell are checked, which is cheaper than a full
// board scan when the last move is known.
func (b Board) WinAt(row, column int, player PlayerID) bool {
	// horizontal through this row
	count := 0
	for c := 0; c < Columns; c++ {
		if b[row][c] == player {
			count++
			if count == ToWin {
				return true
			}
		} else {
			count = 0
		}
	}

	// vertical through this column
	count = 0
	for r := 0; r < Rows; r++ {
		if b[r][column] == player {
			count++
			if count == ToWin {
				return true
			}
		} else {
			count = 0
		}
	}

	// diagonal \ through this cell
	count = 0
	r, c := row, column
	for r > 0 && c > 0 {
		r--
		c--
	}
	for r < Rows && c < Columns {
		if b[r][c] == player {
			count++
			if count == ToWin {
				return true
			}
		} else {
			count = 0
		}
		r++
		c++
	}

	// diagonal / through this cell
	count = 0
	r, c = row, column
	for r < Rows-1 && c > 0 {
		r++
		c--
	}
	for r >= 0 && c < Columns {
		if b[r][c] == player {
			count++
			if count == ToWin {
				return true
			}
		} else {
			count = 0
		}
		r--
		c++
	}

	return false
}
