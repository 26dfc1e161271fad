package storage

import (
	"context"

	"github.com/goserg/engelserver/internal/domain"

	"github.com/google/uuid"
)

// AuthStorage keeps user credentials. Profile data is read through
// the main user storage.
type AuthStorage interface {
	CreateUser(ctx context.Context, user domain.User, passwordHash string) error
	GetUserIDByName(ctx context.Context, name string) (uuid.UUID, error)
	GetPasswordHash(ctx context.Context, id uuid.UUID) (string, error)
	SetPasswordHash(ctx context.Context, id uuid.UUID, hash string) error
}
