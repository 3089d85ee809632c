package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	redisrepo "github.com/iamasit07/connect4-engine/internal/repository/redis"
)

type LeaderboardHandler struct {
	Cache *redisrepo.Cache
}

func NewLeaderboardHandler(cache *redisrepo.Cache) *LeaderboardHandler {
	return &LeaderboardHandler{Cache: cache}
}

// GetLeaderboard reports per-strategy engine outcomes (won/lost/draw counts).
func (h *LeaderboardHandler) GetLeaderboard(c *gin.Context) {
	if h.Cache == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "leaderboard is not configured"})
		return
	}

	board, err := h.Cache.Leaderboard(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch leaderboard"})
		return
	}
	c.JSON(http.StatusOK, board)
}
