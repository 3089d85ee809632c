package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/iamasit07/connect4-engine/internal/domain"
	"github.com/iamasit07/connect4-engine/internal/engine"
	"github.com/iamasit07/connect4-engine/internal/service/game"
	"github.com/iamasit07/connect4-engine/pkg/auth"
)

// GameHandler serves session creation and move play over REST.
type GameHandler struct {
	Manager  *game.Manager
	Secret   string
	TokenTTL time.Duration
}

func NewGameHandler(manager *game.Manager, secret string, tokenTTL time.Duration) *GameHandler {
	return &GameHandler{Manager: manager, Secret: secret, TokenTTL: tokenTTL}
}

type createGameRequest struct {
	Strategy string `json:"strategy"`
	Depth    int    `json:"depth"`
	Side     int    `json:"side"`
}

func (h *GameHandler) CreateGame(c *gin.Context) {
	var req createGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	s, state, err := h.Manager.Create(engine.Strategy(req.Strategy), req.Depth, domain.PlayerID(req.Side))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create game"})
		return
	}

	token, err := auth.GenerateGameToken(h.Secret, s.ID, int(s.HumanSide), h.TokenTTL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to issue token"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"state": state, "token": token})
}

type playMoveRequest struct {
	Column *int `json:"column"`
}

func (h *GameHandler) PlayMove(c *gin.Context) {
	gameID := c.Param("id")
	if !h.authorize(c, gameID) {
		return
	}

	var req playMoveRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Column == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "column is required"})
		return
	}

	state, err := h.Manager.Play(gameID, *req.Column)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrGameNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, domain.ErrInvalidMove), errors.Is(err, domain.ErrGameOver):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error(), "state": state})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "move failed"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"state": state})
}

func (h *GameHandler) GetGame(c *gin.Context) {
	s, err := h.Manager.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"state": s.State()})
}

// authorize checks the bearer token against the game in the path.
func (h *GameHandler) authorize(c *gin.Context, gameID string) bool {
	header := c.GetHeader("Authorization")
	tokenString := strings.TrimPrefix(header, "Bearer ")
	if tokenString == "" || tokenString == header {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
		return false
	}

	claims, err := auth.ValidateGameToken(h.Secret, tokenString)
	if err != nil || claims.GameID != gameID {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return false
	}
	return true
}
