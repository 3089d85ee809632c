package game

import (
	"sync"
	"time"

	"github.com/iamasit07/connect4-engine/internal/domain"
	"github.com/iamasit07/connect4-engine/internal/engine"
	"github.com/iamasit07/connect4-engine/pkg/uid"
)

// Move is one placed piece, in play order.
type Move struct {
	Column int             `json:"column"`
	Row    int             `json:"row"`
	Side   domain.PlayerID `json:"side"`
}

// State is an immutable snapshot of a session, safe to hand to transports.
type State struct {
	GameID     string            `json:"gameId"`
	Board      [][]int           `json:"board"`
	Status     domain.GameStatus `json:"status"`
	Winner     domain.PlayerID   `json:"winner,omitempty"`
	ToMove     domain.PlayerID   `json:"toMove"`
	HumanSide  domain.PlayerID   `json:"humanSide"`
	Strategy   engine.Strategy   `json:"strategy"`
	Depth      int               `json:"depth"`
	Moves      []Move            `json:"moves"`
	EngineCol  int               `json:"engineCol"` // -1 until the engine has moved this turn
	CreatedAt  time.Time         `json:"createdAt"`
	FinishedAt time.Time         `json:"finishedAt,omitempty"`
}

// Session is one live game of a caller against the engine. All access goes
// through the mutex; the engine itself is stateless and never sees the live
// board, only value copies.
type Session struct {
	ID         string
	HumanSide  domain.PlayerID
	EngineSide domain.PlayerID

	mu         sync.Mutex
	board      domain.Board
	status     domain.GameStatus
	winner     domain.PlayerID
	toMove     domain.PlayerID
	moves      []Move
	createdAt  time.Time
	lastActive time.Time
	finishedAt time.Time
	persisted  bool

	eng *engine.Engine
}

func newSession(cfg engine.Config, humanSide domain.PlayerID) *Session {
	now := time.Now()
	return &Session{
		ID:         uid.GenerateGameID(),
		HumanSide:  humanSide,
		EngineSide: humanSide.Opponent(),
		status:     domain.StatusActive,
		toMove:     domain.PlayerOne,
		createdAt:  now,
		lastActive: now,
		eng:        engine.New(cfg),
	}
}

// Play applies the caller's move, then lets the engine reply if the game is
// still open. It returns the state after both plies.
func (s *Session) Play(column int) (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status != domain.StatusActive {
		return s.stateLocked(), domain.ErrGameOver
	}
	if !s.board.IsValidMove(column) {
		return s.stateLocked(), domain.ErrInvalidMove
	}

	s.applyLocked(column, s.HumanSide)

	if s.status == domain.StatusActive {
		if _, err := s.engineMoveLocked(); err != nil {
			return s.stateLocked(), err
		}
	}

	s.lastActive = time.Now()
	return s.stateLocked(), nil
}

// engineMoveLocked asks the engine for a column and applies it. Caller holds
// the lock.
func (s *Session) engineMoveLocked() (int, error) {
	col, err := s.eng.ChooseMove(s.board, s.EngineSide)
	if err != nil {
		return -1, err
	}
	s.applyLocked(col, s.EngineSide)
	return col, nil
}

// applyLocked drops a piece and updates game status. The column must already
// be legal.
func (s *Session) applyLocked(column int, side domain.PlayerID) {
	row, _ := s.board.Drop(column, side)
	s.moves = append(s.moves, Move{Column: column, Row: row, Side: side})
	s.toMove = side.Opponent()

	switch {
	case s.board.WinAt(row, column, side):
		s.status = domain.StatusWon
		s.winner = side
		s.finishedAt = time.Now()
	case s.board.IsFull():
		s.status = domain.StatusDraw
		s.finishedAt = time.Now()
	}
}

// State returns a snapshot of the session.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stateLocked()
}

func (s *Session) stateLocked() State {
	moves := make([]Move, len(s.moves))
	copy(moves, s.moves)

	engineCol := -1
	if n := len(s.moves); n > 0 && s.moves[n-1].Side == s.EngineSide {
		engineCol = s.moves[n-1].Column
	}

	return State{
		GameID:     s.ID,
		Board:      s.board.Grid(),
		Status:     s.status,
		Winner:     s.winner,
		ToMove:     s.toMove,
		HumanSide:  s.HumanSide,
		Strategy:   s.eng.Config().Strategy,
		Depth:      s.eng.Config().Depth,
		Moves:      moves,
		EngineCol:  engineCol,
		CreatedAt:  s.createdAt,
		FinishedAt: s.finishedAt,
	}
}

func (s *Session) idleSince(cutoff time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActive.Before(cutoff)
}
