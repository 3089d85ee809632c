package engine

import (
	"testing"

	"github.com/iamasit07/connect4-engine/internal/domain"
)

func TestEvaluateEmptyBoardIsZero(t *testing.T) {
	e := New(DefaultConfig())
	var b domain.Board

	if score := e.Evaluate(b, domain.PlayerOne); score != 0 {
		t.Fatalf("expected 0 on empty board for player one, got %d", score)
	}
	if score := e.Evaluate(b, domain.PlayerTwo); score != 0 {
		t.Fatalf("expected 0 on empty board for player two, got %d", score)
	}
}

func TestEvaluateSinglePiece(t *testing.T) {
	e := New(DefaultConfig())
	var b domain.Board
	b[5][3] = domain.PlayerOne

	own := e.Evaluate(b, domain.PlayerOne)
	if own <= 0 {
		t.Fatalf("expected positive score for own piece, got %d", own)
	}
	opp := e.Evaluate(b, domain.PlayerTwo)
	if opp >= 0 {
		t.Fatalf("expected negative score for opponent piece, got %d", opp)
	}
}

// Four pieces on the floor, columns 0-3. Counting every window that touches
// them: horizontal row 5 gives +100+69+30+5, each of the four columns has one
// vertical window (+5 each), each floor cell starts one up-right window
// (+5 each), and one down-right window ends on (5,3) (+5).
func TestEvaluateWindowSumExact(t *testing.T) {
	e := New(DefaultConfig())
	var b domain.Board
	for c := 0; c < 4; c++ {
		b[5][c] = domain.PlayerOne
	}

	if score := e.Evaluate(b, domain.PlayerOne); score != 249 {
		t.Fatalf("expected 249, got %d", score)
	}
	// Opponent view of the same windows: -95-80-30-5 horizontal, -5 for each
	// of the nine single-piece windows.
	if score := e.Evaluate(b, domain.PlayerTwo); score != -255 {
		t.Fatalf("expected -255, got %d", score)
	}
}

func TestEvaluateMixedWindowIsDead(t *testing.T) {
	e := New(DefaultConfig())

	// A full bottom-left 4-window with pieces of both players contributes
	// nothing through its horizontal line.
	var own domain.Board
	own[5][0] = domain.PlayerOne
	own[5][1] = domain.PlayerOne
	ownScore := e.Evaluate(own, domain.PlayerOne)

	var mixed domain.Board
	mixed[5][0] = domain.PlayerOne
	mixed[5][1] = domain.PlayerTwo
	mixedScore := e.Evaluate(mixed, domain.PlayerOne)

	if mixedScore >= ownScore {
		t.Fatalf("mixed window should score below own pair: own=%d mixed=%d", ownScore, mixedScore)
	}
}

// The evaluator is deliberately asymmetric: an opponent's open three is a
// bigger penalty than an own open three is a reward.
func TestEvaluateOpponentThreatWeighsHeavier(t *testing.T) {
	e := New(DefaultConfig())
	var b domain.Board
	b[5][2] = domain.PlayerOne
	b[5][3] = domain.PlayerOne
	b[5][4] = domain.PlayerOne

	reward := e.Evaluate(b, domain.PlayerOne)
	penalty := e.Evaluate(b, domain.PlayerTwo)
	if reward <= 0 || penalty >= 0 {
		t.Fatalf("unexpected signs: reward=%d penalty=%d", reward, penalty)
	}
	if -penalty <= reward {
		t.Fatalf("expected |penalty| > reward, got reward=%d penalty=%d", reward, penalty)
	}
}

func TestEvaluateIsPure(t *testing.T) {
	e := New(DefaultConfig())
	var b domain.Board
	b[5][1] = domain.PlayerOne
	b[5][2] = domain.PlayerTwo
	b[4][2] = domain.PlayerOne

	first := e.Evaluate(b, domain.PlayerOne)
	for i := 0; i < 10; i++ {
		if got := e.Evaluate(b, domain.PlayerOne); got != first {
			t.Fatalf("evaluation changed between calls: %d then %d", first, got)
		}
	}
}

// The heuristic maximum over all 69 windows must stay below the win sentinel,
// otherwise a pile of near-threats could outbid a forced win.
func TestWinSentinelDominatesHeuristic(t *testing.T) {
	w := DefaultWeights()
	maxWeight := 0
	for _, v := range []int{w.OwnFour, w.OwnThree, w.OwnTwo, w.OwnOne, -w.OppFour, -w.OppThree, -w.OppTwo, -w.OppOne} {
		if v > maxWeight {
			maxWeight = v
		}
	}

	const windows = 69
	if windows*maxWeight >= WinScore {
		t.Fatalf("heuristic ceiling %d can reach win sentinel %d", windows*maxWeight, WinScore)
	}
}
