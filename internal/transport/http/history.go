package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/iamasit07/connect4-engine/internal/repository/postgres"
)

type HistoryHandler struct {
	GameRepo *postgres.GameRepo
}

func NewHistoryHandler(gameRepo *postgres.GameRepo) *HistoryHandler {
	return &HistoryHandler{GameRepo: gameRepo}
}

type gameHistoryItem struct {
	ID         string    `json:"id"`
	Strategy   string    `json:"strategy"`
	Depth      int       `json:"depth"`
	Result     string    `json:"result"` // "engine", "caller", "draw"
	EndReason  string    `json:"endReason"`
	CreatedAt  time.Time `json:"createdAt"`
	MovesCount int       `json:"movesCount"`
}

func (h *HistoryHandler) GetHistory(c *gin.Context) {
	if h.GameRepo == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "history is not configured"})
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil || limit <= 0 || limit > 200 {
		limit = 50
	}

	rawHistory, err := h.GameRepo.ListRecent(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch history"})
		return
	}

	history := make([]gameHistoryItem, 0, len(rawHistory))
	for _, g := range rawHistory {
		item := gameHistoryItem{
			ID:         g.GameID,
			Strategy:   g.Strategy,
			Depth:      g.Depth,
			EndReason:  g.Reason,
			CreatedAt:  g.CreatedAt,
			MovesCount: g.TotalMoves,
		}

		if g.WinnerSide == nil {
			item.Result = "draw"
		} else if *g.WinnerSide == g.HumanSide {
			item.Result = "caller"
		} else {
			item.Result = "engine"
		}

		history = append(history, item)
	}

	c.JSON(http.StatusOK, history)
}

type gameDetails struct {
	ID              string    `json:"id"`
	Strategy        string    `json:"strategy"`
	Depth           int       `json:"depth"`
	HumanSide       int       `json:"humanSide"`
	WinnerSide      *int      `json:"winnerSide,omitempty"`
	EndReason       string    `json:"endReason"`
	MovesCount      int       `json:"movesCount"`
	DurationSeconds int       `json:"durationSeconds"`
	CreatedAt       time.Time `json:"createdAt"`
	FinishedAt      time.Time `json:"finishedAt"`
	Board           [][]int   `json:"board,omitempty"`
}

func (h *HistoryHandler) GetGameDetails(c *gin.Context) {
	if h.GameRepo == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "history is not configured"})
		return
	}

	g, err := h.GameRepo.GetGameByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch game"})
		return
	}
	if g == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "game not found"})
		return
	}

	c.JSON(http.StatusOK, gameDetails{
		ID:              g.GameID,
		Strategy:        g.Strategy,
		Depth:           g.Depth,
		HumanSide:       g.HumanSide,
		WinnerSide:      g.WinnerSide,
		EndReason:       g.Reason,
		MovesCount:      g.TotalMoves,
		DurationSeconds: g.DurationSeconds,
		CreatedAt:       g.CreatedAt,
		FinishedAt:      g.FinishedAt,
		Board:           g.BoardState,
	})
}
