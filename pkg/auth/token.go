package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// GameClaims are the JWT claims of a per-game token. A token is minted when a
// session is created and authorizes moves for exactly one side of that game.
type GameClaims struct {
	GameID string `json:"game_id"`
	Side   int    `json:"side"`
	jwt.RegisteredClaims
}

// GenerateGameToken creates a signed HS256 token for one side of a game.
func GenerateGameToken(secret, gameID string, side int, ttl time.Duration) (string, error) {
	claims := &GameClaims{
		GameID: gameID,
		Side:   side,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ValidateGameToken validates a token and returns its claims.
func ValidateGameToken(secret, tokenString string) (*GameClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &GameClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*GameClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, errors.New("invalid token")
}
