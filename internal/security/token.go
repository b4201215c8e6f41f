package security

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"lumenquest/internal/models"
)

var ErrInvalidToken = errors.New("invalid token")

// AccessClaims bind a bearer token to one persisted session.
type AccessClaims struct {
	SessionID string          `json:"sid"`
	Role      models.UserRole `json:"role"`
	jwt.RegisteredClaims
}

func (c AccessClaims) UserID() string {
	return c.Subject
}

func GenerateAccessToken(secret string, identity models.Identity, sessionID string, ttl time.Duration, now time.Time) (string, time.Time, error) {
	expiresAt := now.Add(ttl)
	claims := AccessClaims{
		SessionID: sessionID,
		Role:      identity.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "lumenquest",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			Subject:   identity.ID,
			ID:        sessionID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign jwt: %w", err)
	}
	return signed, expiresAt, nil
}

func ParseAccessToken(tokenStr string, secret string) (*AccessClaims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &AccessClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	}, jwt.WithIssuer("lumenquest"))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if claims, ok := token.Claims.(*AccessClaims); ok && token.Valid && claims.SessionID != "" {
		return claims, nil
	}
	return nil, ErrInvalidToken
}
