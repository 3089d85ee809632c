package domain

import "testing"

// rotate180 flips the board upside down and left to right. Win detection must
// be invariant under this: the rotation maps each diagonal orientation onto
// itself.
func rotate180(b Board) Board {
	var out Board
	for r := 0; r < Rows; r++ {
		for c := 0; c < Columns; c++ {
			out[Rows-1-r][Columns-1-c] = b[r][c]
		}
	}
	return out
}

func TestHasConnectOrientations(t *testing.T) {
	cases := []struct {
		name  string
		cells [][2]int
	}{
		{"horizontal", [][2]int{{5, 1}, {5, 2}, {5, 3}, {5, 4}}},
		{"vertical", [][2]int{{1, 6}, {2, 6}, {3, 6}, {4, 6}}},
		{"diagonal down-right", [][2]int{{1, 0}, {2, 1}, {3, 2}, {4, 3}}},
		{"diagonal up-right", [][2]int{{5, 3}, {4, 4}, {3, 5}, {2, 6}}},
	}

	for _, tc := range cases {
		var b Board
		for _, cell := range tc.cells {
			b[cell[0]][cell[1]] = PlayerOne
		}

		if !b.HasConnect(PlayerOne) {
			t.Fatalf("%s: connect not detected", tc.name)
		}
		if b.HasConnect(PlayerTwo) {
			t.Fatalf("%s: connect detected for wrong player", tc.name)
		}
		for _, cell := range tc.cells {
			if !b.WinAt(cell[0], cell[1], PlayerOne) {
				t.Fatalf("%s: WinAt missed the line through (%d,%d)", tc.name, cell[0], cell[1])
			}
		}
	}
}

func TestThreeInARowIsNotConnect(t *testing.T) {
	var b Board
	b[5][0] = PlayerOne
	b[5][1] = PlayerOne
	b[5][2] = PlayerOne

	if b.HasConnect(PlayerOne) {
		t.Fatal("three in a row reported as connect four")
	}
}

func TestHasConnectRotationInvariance(t *testing.T) {
	boards := []Board{}

	var win Board
	win[2][1] = PlayerTwo
	win[3][2] = PlayerTwo
	win[4][3] = PlayerTwo
	win[5][4] = PlayerTwo
	boards = append(boards, win)

	var noWin Board
	noWin[5][0] = PlayerOne
	noWin[5][1] = PlayerTwo
	noWin[4][0] = PlayerOne
	noWin[5][3] = PlayerOne
	noWin[5][4] = PlayerOne
	boards = append(boards, noWin)

	var vertical Board
	vertical[0][0] = PlayerOne
	vertical[1][0] = PlayerOne
	vertical[2][0] = PlayerOne
	vertical[3][0] = PlayerOne
	boards = append(boards, vertical)

	for i, b := range boards {
		r := rotate180(b)
		for _, p := range []PlayerID{PlayerOne, PlayerTwo} {
			if b.HasConnect(p) != r.HasConnect(p) {
				t.Fatalf("board %d: HasConnect(%d) changed under rotation", i, p)
			}
		}
	}
}

func TestIsTerminal(t *testing.T) {
	var b Board
	if b.IsTerminal() {
		t.Fatal("empty board reported terminal")
	}

	// Fill the whole board in a pattern with no four in a row: pair up
	// columns so every vertical and horizontal run breaks at length 2-3.
	pattern := [Columns]PlayerID{PlayerOne, PlayerTwo, PlayerOne, PlayerTwo, PlayerOne, PlayerTwo, PlayerOne}
	for r := 0; r < Rows; r++ {
		shift := (r / 2) % 2
		for c := 0; c < Columns; c++ {
			side := pattern[c]
			if shift == 1 {
				side = side.Opponent()
			}
			b[r][c] = side
		}
	}

	if b.HasConnect(PlayerOne) || b.HasConnect(PlayerTwo) {
		t.Fatal("draw pattern unexpectedly contains a connect four")
	}
	if !b.IsFull() || !b.IsTerminal() {
		t.Fatal("full board not reported terminal")
	}
}
