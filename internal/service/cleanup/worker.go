package cleanup

import (
	"log"
	"time"

	"github.com/iamasit07/connect4-engine/internal/repository/postgres"
	"github.com/iamasit07/connect4-engine/internal/service/game"
)

type Worker struct {
	Manager    *game.Manager
	GameRepo   *postgres.GameRepo
	DaysToKeep int
}

func NewWorker(m *game.Manager, repo *postgres.GameRepo, daysToKeep int) *Worker {
	return &Worker{Manager: m, GameRepo: repo, DaysToKeep: daysToKeep}
}

// Start initiates the background ticker
func (w *Worker) Start() {
	go w.runCleanup()

	ticker := time.NewTicker(1 * time.Hour)
	go func() {
		for range ticker.C {
			w.runCleanup()
		}
	}()
	log.Println("[CLEANUP] Background worker started")
}

// runCleanup executes the actual cleanup logic
func (w *Worker) runCleanup() {
	log.Println("[CLEANUP] Starting scheduled cleanup task...")

	if n := w.Manager.CleanupIdleSessions(); n > 0 {
		log.Printf("[CLEANUP] Expired %d idle sessions", n)
	}

	if w.GameRepo == nil {
		return
	}
	deletedCount, err := w.GameRepo.CleanupOldGames(w.DaysToKeep)
	if err != nil {
		log.Printf("[CLEANUP] Error cleaning up old games: %v", err)
	} else if deletedCount > 0 {
		log.Printf("[CLEANUP] Removed %d old games from database", deletedCount)
	}
}
