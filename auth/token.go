package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"gallery/config"
	"gallery/models"

	"github.com/golang-jwt/jwt/v5"
)

// Tokens stay valid for their full lifetime; there is no revocation list.
const tokenLifetime = 7 * 24 * time.Hour

var ErrInvalidToken = errors.New("invalid token")

// signingSecret is loaded once at startup and read-only afterwards.
var signingSecret []byte

type Claims struct {
	UserID   uint64 `json:"userId"`
	Email    string `json:"email"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

func Init() {
	if config.JWT_SECRET == "" {
		panic("JWT_SECRET is required")
	}
	signingSecret = []byte(config.JWT_SECRET)
}

// IssueToken signs a bearer token carrying the user's identity claims.
func IssueToken(user *models.User) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID:   user.ID,
		Email:    user.Email,
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(user.ID, 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenLifetime)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(signingSecret)
}

// VerifyToken checks signature, structure and expiry. Every failure mode
// comes back as ErrInvalidToken.
func VerifyToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return signingSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
