package game

import (
	"testing"
	"time"

	"github.com/iamasit07/connect4-engine/internal/domain"
	"github.com/iamasit07/connect4-engine/internal/engine"
)

func testManager(ttl time.Duration) *Manager {
	return NewManager(engine.DefaultConfig(), nil, nil, nil, ttl)
}

func TestCreateAndPlay(t *testing.T) {
	m := testManager(time.Hour)

	s, st, err := m.Create(engine.StrategyMinimax, 3, domain.PlayerOne)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if st.Status != domain.StatusActive || len(st.Moves) != 0 {
		t.Fatalf("unexpected initial state: %+v", st)
	}

	st, err = m.Play(s.ID, 3)
	if err != nil {
		t.Fatalf("play failed: %v", err)
	}
	if len(st.Moves) != 2 {
		t.Fatalf("expected caller move plus engine reply, got %d moves", len(st.Moves))
	}
	if st.Moves[0].Side != domain.PlayerOne || st.Moves[1].Side != domain.PlayerTwo {
		t.Fatalf("unexpected move order: %+v", st.Moves)
	}
	if st.EngineCol < 0 || st.EngineCol >= domain.Columns {
		t.Fatalf("engine column %d out of range", st.EngineCol)
	}
}

func TestEngineOpensWhenCallerIsPlayerTwo(t *testing.T) {
	m := testManager(time.Hour)

	_, st, err := m.Create(engine.StrategyMinimax, 2, domain.PlayerTwo)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if len(st.Moves) != 1 {
		t.Fatalf("expected the engine's opening move, got %d moves", len(st.Moves))
	}
	if st.Moves[0].Side != domain.PlayerOne {
		t.Fatalf("opening move by wrong side: %+v", st.Moves[0])
	}
	if st.ToMove != domain.PlayerTwo {
		t.Fatalf("expected caller to move, got %d", st.ToMove)
	}
}

func TestWinningMoveEndsGame(t *testing.T) {
	cfg := engine.DefaultConfig()
	cfg.Depth = 2
	s := newSession(cfg, domain.PlayerOne)

	// Caller one move from a horizontal connect on the floor.
	s.board[5][0] = domain.PlayerOne
	s.board[5][1] = domain.PlayerOne
	s.board[5][2] = domain.PlayerOne
	s.board[4][0] = domain.PlayerTwo
	s.board[4][1] = domain.PlayerTwo
	s.board[4][2] = domain.PlayerTwo

	st, err := s.Play(3)
	if err != nil {
		t.Fatalf("play failed: %v", err)
	}
	if st.Status != domain.StatusWon || st.Winner != domain.PlayerOne {
		t.Fatalf("expected caller win, got %+v", st)
	}
	// The engine must not have replied after the terminal move.
	if n := len(st.Moves); n != 1 {
		t.Fatalf("expected 1 move, got %d", n)
	}

	if _, err := s.Play(0); err != domain.ErrGameOver {
		t.Fatalf("expected ErrGameOver, got %v", err)
	}
}

func TestInvalidColumnRejected(t *testing.T) {
	cfg := engine.DefaultConfig()
	cfg.Depth = 2
	s := newSession(cfg, domain.PlayerOne)

	for r := 0; r < domain.Rows; r++ {
		side := domain.PlayerOne
		if r%2 == 0 {
			side = domain.PlayerTwo
		}
		s.board[r][5] = side
	}

	if _, err := s.Play(5); err != domain.ErrInvalidMove {
		t.Fatalf("expected ErrInvalidMove, got %v", err)
	}
	if _, err := s.Play(-1); err != domain.ErrInvalidMove {
		t.Fatalf("expected ErrInvalidMove, got %v", err)
	}
	if _, err := s.Play(domain.Columns); err != domain.ErrInvalidMove {
		t.Fatalf("expected ErrInvalidMove, got %v", err)
	}
}

func TestCleanupIdleSessions(t *testing.T) {
	m := testManager(10 * time.Millisecond)

	s, _, err := m.Create(engine.StrategyRandom, 1, domain.PlayerOne)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	time.Sleep(30 * time.Millisecond)
	if n := m.CleanupIdleSessions(); n != 1 {
		t.Fatalf("expected 1 expired session, got %d", n)
	}
	if _, err := m.Get(s.ID); err != domain.ErrGameNotFound {
		t.Fatalf("expected ErrGameNotFound after cleanup, got %v", err)
	}
}

func TestStateSnapshotIsDetached(t *testing.T) {
	m := testManager(time.Hour)
	s, _, err := m.Create(engine.StrategyMinimax, 2, domain.PlayerOne)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	before := s.State()
	if _, err := m.Play(s.ID, 0); err != nil {
		t.Fatalf("play failed: %v", err)
	}

	if len(before.Moves) != 0 {
		t.Fatal("earlier snapshot changed after a later move")
	}
	if before.Board[5][0] != 0 {
		t.Fatal("earlier snapshot board changed after a later move")
	}
}
