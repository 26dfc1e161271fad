package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/goserg/engelserver/auth/storage"
	"github.com/goserg/engelserver/gen/model"
	"github.com/goserg/engelserver/gen/table"
	"github.com/goserg/engelserver/internal/domain"
	mainstorage "github.com/goserg/engelserver/internal/storage"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/go-jet/jet/v2/sqlite"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	driver "github.com/mattn/go-sqlite3"
)

type Storage struct {
	db  *sql.DB
	log *logrus.Entry
}

var _ storage.AuthStorage = (*Storage)(nil)

func New(l *logrus.Logger, db *sql.DB) *Storage {
	log := l.WithFields(map[string]interface{}{
		"from": "auth-storage",
	})
	log.Info("auth storage connected")
	return &Storage{
		db:  db,
		log: log,
	}
}

// CreateUser inserts the user with its profile row and roles.
func (s *Storage) CreateUser(ctx context.Context, user domain.User, passwordHash string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	err = createUser(ctx, tx, user, passwordHash)
	if err != nil {
		return errors.Join(mapError(err), tx.Rollback())
	}
	return tx.Commit()
}

func createUser(ctx context.Context, tx *sql.Tx, user domain.User, passwordHash string) error {
	createdAt := user.RegisteredAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	_, err := table.Users.INSERT(table.Users.AllColumns).MODEL(model.Users{
		ID:           user.ID.String(),
		Name:         user.Name,
		Email:        user.Email,
		PasswordHash: passwordHash,
		CreatedAt:    createdAt,
	}).ExecContext(ctx, tx)
	if err != nil {
		return err
	}
	_, err = table.UserProfiles.
		INSERT(
			table.UserProfiles.UserID,
			table.UserProfiles.Language,
			table.UserProfiles.Theme,
			table.UserProfiles.EmailShiftinfo,
		).
		VALUES(user.ID.String(), user.Settings.Language, user.Settings.Theme, user.Settings.EmailShiftinfo).
		ExecContext(ctx, tx)
	if err != nil {
		return err
	}
	for _, role := range user.Roles {
		_, err = table.UserRoles.INSERT(table.UserRoles.AllColumns).MODEL(model.UserRoles{
			UserID: user.ID.String(),
			Role:   role,
		}).ExecContext(ctx, tx)
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *Storage) GetUserIDByName(ctx context.Context, name string) (uuid.UUID, error) {
	var dbUser model.Users
	err := table.Users.
		SELECT(table.Users.ID).
		FROM(table.Users).
		WHERE(table.Users.Name.EQ(sqlite.String(name)).
			AND(table.Users.DeletedAt.IS_NULL())).
		QueryContext(ctx, s.db, &dbUser)
	if err != nil {
		return uuid.Nil, mapError(err)
	}
	return uuid.Parse(dbUser.ID)
}

func (s *Storage) GetPasswordHash(ctx context.Context, id uuid.UUID) (string, error) {
	var dbUser model.Users
	err := table.Users.
		SELECT(table.Users.ID, table.Users.PasswordHash).
		FROM(table.Users).
		WHERE(table.Users.ID.EQ(sqlite.UUID(id))).
		QueryContext(ctx, s.db, &dbUser)
	if err != nil {
		return "", mapError(err)
	}
	return dbUser.PasswordHash, nil
}

func (s *Storage) SetPasswordHash(ctx context.Context, id uuid.UUID, hash string) error {
	res, err := table.Users.
		UPDATE(table.Users.PasswordHash).
		SET(sqlite.String(hash)).
		WHERE(table.Users.ID.EQ(sqlite.UUID(id))).
		ExecContext(ctx, s.db)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return mainstorage.ErrNotFound
	}
	return nil
}

func mapError(err error) error {
	if errors.Is(err, qrm.ErrNoRows) {
		return mainstorage.ErrNotFound
	}
	var sqliteErr driver.Error
	if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == driver.ErrConstraintUnique {
		return mainstorage.ErrAlreadyExists
	}
	return err
}
