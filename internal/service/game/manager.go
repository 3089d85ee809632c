package game

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/iamasit07/connect4-engine/internal/analytics"
	"github.com/iamasit07/connect4-engine/internal/domain"
	"github.com/iamasit07/connect4-engine/internal/engine"
	"github.com/iamasit07/connect4-engine/internal/repository/postgres"
	redisrepo "github.com/iamasit07/connect4-engine/internal/repository/redis"
)

// Manager owns all live sessions. Repo, cache and producer may each be nil;
// the manager then runs purely in memory.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session

	base     engine.Config
	repo     *postgres.GameRepo
	cache    *redisrepo.Cache
	producer *analytics.Producer
	ttl      time.Duration
}

// NewManager builds a manager. base supplies the engine defaults a Create
// request may override (strategy and depth).
func NewManager(base engine.Config, repo *postgres.GameRepo, cache *redisrepo.Cache, producer *analytics.Producer, ttl time.Duration) *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		base:     base,
		repo:     repo,
		cache:    cache,
		producer: producer,
		ttl:      ttl,
	}
}

// Create starts a new session. When the caller takes PlayerTwo the engine
// owns the opening move and plays it before the state is returned.
func (m *Manager) Create(strategy engine.Strategy, depth int, humanSide domain.PlayerID) (*Session, State, error) {
	if !humanSide.Valid() {
		humanSide = domain.PlayerOne
	}

	cfg := m.base
	if strategy.Valid() {
		cfg.Strategy = strategy
	}
	if depth > 0 {
		cfg.Depth = depth
	}

	s := newSession(cfg, humanSide)

	if s.EngineSide == domain.PlayerOne {
		s.mu.Lock()
		start := time.Now()
		col, err := s.engineMoveLocked()
		s.mu.Unlock()
		if err != nil {
			return nil, State{}, err
		}
		m.emitDecision(s, col, time.Since(start))
	}

	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()

	st := s.State()
	m.mirror(st)
	return s, st, nil
}

// Get returns a live session by ID.
func (m *Manager) Get(gameID string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[gameID]
	if !ok {
		return nil, domain.ErrGameNotFound
	}
	return s, nil
}

// Play applies the caller's move on a session, lets the engine answer, and
// persists the game once it finishes.
func (m *Manager) Play(gameID string, column int) (State, error) {
	s, err := m.Get(gameID)
	if err != nil {
		return State{}, err
	}

	start := time.Now()
	st, err := s.Play(column)
	if err != nil {
		return st, err
	}
	if st.EngineCol >= 0 {
		m.emitDecision(s, st.EngineCol, time.Since(start))
	}

	m.mirror(st)
	if st.Status != domain.StatusActive {
		m.flushResult(s, st)
	}
	return st, nil
}

// CleanupIdleSessions drops sessions idle past the TTL and returns how many
// were removed.
func (m *Manager) CleanupIdleSessions() int {
	cutoff := time.Now().Add(-m.ttl)

	m.mu.Lock()
	var expired []*Session
	for id, s := range m.sessions {
		if s.idleSince(cutoff) {
			expired = append(expired, s)
			delete(m.sessions, id)
		}
	}
	m.mu.Unlock()

	for _, s := range expired {
		if m.cache != nil {
			if err := m.cache.DelSession(context.Background(), s.ID); err != nil {
				log.Printf("[CACHE] failed to drop session %s: %v", s.ID, err)
			}
		}
	}
	return len(expired)
}

// LiveCount reports the number of sessions currently in memory.
func (m *Manager) LiveCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// flushResult persists a finished game and updates the leaderboard, once.
func (m *Manager) flushResult(s *Session, st State) {
	s.mu.Lock()
	if s.persisted {
		s.mu.Unlock()
		return
	}
	s.persisted = true
	s.mu.Unlock()

	if m.cache != nil {
		outcome := "draw"
		switch st.Winner {
		case s.EngineSide:
			outcome = "won"
		case s.HumanSide:
			outcome = "lost"
		}
		if err := m.cache.RecordOutcome(context.Background(), string(st.Strategy), outcome); err != nil {
			log.Printf("[CACHE] leaderboard update failed: %v", err)
		}
	}

	if m.repo == nil {
		return
	}

	reason := "board_full"
	var winnerSide *int
	if st.Status == domain.StatusWon {
		reason = "connect_four"
		side := int(st.Winner)
		winnerSide = &side
	}

	result := postgres.GameResult{
		GameID:          st.GameID,
		Strategy:        string(st.Strategy),
		Depth:           st.Depth,
		HumanSide:       int(st.HumanSide),
		WinnerSide:      winnerSide,
		Reason:          reason,
		TotalMoves:      len(st.Moves),
		DurationSeconds: int(st.FinishedAt.Sub(st.CreatedAt).Seconds()),
		CreatedAt:       st.CreatedAt,
		FinishedAt:      st.FinishedAt,
		BoardState:      st.Board,
	}
	if err := m.repo.SaveGame(result); err != nil {
		log.Printf("[DB] failed to save game %s: %v", st.GameID, err)
	}
}

// mirror pushes the session state into the cache for cheap reads.
func (m *Manager) mirror(st State) {
	if m.cache == nil {
		return
	}
	blob, err := json.Marshal(st)
	if err != nil {
		return
	}
	if err := m.cache.SetSession(context.Background(), st.GameID, blob, m.ttl); err != nil {
		log.Printf("[CACHE] failed to mirror session %s: %v", st.GameID, err)
	}
}

func (m *Manager) emitDecision(s *Session, column int, elapsed time.Duration) {
	m.producer.Emit("engine_move", map[string]any{
		"game_id":    s.ID,
		"strategy":   string(s.eng.Config().Strategy),
		"depth":      s.eng.Config().Depth,
		"column":     column,
		"elapsed_ms": elapsed.Milliseconds(),
	})
}
