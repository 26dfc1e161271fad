package storage

import (
	"context"
	"errors"

	"github.com/goserg/engelserver/internal/domain"

	"github.com/google/uuid"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
)

type UserStorage interface {
	GetUser(ctx context.Context, id uuid.UUID) (domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	UpdateProfile(ctx context.Context, user domain.User) error
	UpdateSettings(ctx context.Context, id uuid.UUID, settings domain.Settings) error
	ListOAuth(ctx context.Context, id uuid.UUID) ([]domain.OAuthIdentity, error)
}

type AngelTypeStorage interface {
	GetAngelType(ctx context.Context, id int) (domain.AngelType, error)
	ListAngelTypes(ctx context.Context) ([]domain.AngelType, error)
	CreateAngelType(ctx context.Context, at domain.AngelType) (domain.AngelType, error)
}

type UserAngelTypeStorage interface {
	GetUserAngelType(ctx context.Context, id int) (domain.UserAngelType, error)
	FindUserAngelType(ctx context.Context, userID uuid.UUID, angelTypeID int) (domain.UserAngelType, error)
	ListMembers(ctx context.Context, angelTypeID int) ([]domain.Member, error)
	CountUnconfirmedForSupporter(ctx context.Context, supporterID uuid.UUID) ([]domain.UnconfirmedCount, error)

	CreateUserAngelType(ctx context.Context, userID uuid.UUID, angelTypeID int) (domain.UserAngelType, error)
	ConfirmUserAngelType(ctx context.Context, id int, confirmUserID uuid.UUID) error
	ConfirmAllUserAngelTypes(ctx context.Context, angelTypeID int, confirmUserID uuid.UUID) ([]domain.UserAngelType, error)
	SetSupporter(ctx context.Context, id int, supporter bool) error
	DeleteUserAngelType(ctx context.Context, id int) error
	DeleteUnconfirmedUserAngelTypes(ctx context.Context, angelTypeID int) error
}

type LogStorage interface {
	AddLogEntry(ctx context.Context, entry domain.LogEntry) error
}
