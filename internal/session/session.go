// Package session persists authenticated identities. Every record expires:
// a session outlives its TTL in neither backend.
package session

import (
	"context"
	"errors"

	"lumenquest/internal/models"
)

// KeyPrefix namespaces identity records; the full key is KeyPrefix + session id.
const KeyPrefix = "lumen-user:"

var ErrSessionNotFound = errors.New("session not found")

type Store interface {
	Save(ctx context.Context, session models.Session) error
	Get(ctx context.Context, id string) (models.Session, error)
	Delete(ctx context.Context, id string) error
}

func Key(id string) string {
	return KeyPrefix + id
}
