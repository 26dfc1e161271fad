package sqlite

import (
	"context"
	"database/sql"

	"github.com/goserg/engelserver/gen/model"
	"github.com/goserg/engelserver/gen/table"
	"github.com/goserg/engelserver/internal/domain"
	"github.com/goserg/engelserver/internal/storage"

	"github.com/go-jet/jet/v2/sqlite"
	"github.com/google/uuid"
)

func selectUsers() sqlite.SelectStatement {
	return table.Users.
		SELECT(
			table.Users.AllColumns.Except(table.Users.PasswordHash),
			table.UserProfiles.AllColumns,
			table.UserRoles.AllColumns,
		).
		FROM(table.Users.
			INNER_JOIN(table.UserProfiles, table.UserProfiles.UserID.EQ(table.Users.ID)).
			LEFT_JOIN(table.UserRoles, table.UserRoles.UserID.EQ(table.Users.ID)))
}

func (s *Storage) GetUser(ctx context.Context, id uuid.UUID) (domain.User, error) {
	var dest userDest
	err := selectUsers().
		WHERE(table.Users.ID.EQ(sqlite.UUID(id)).
			AND(table.Users.DeletedAt.IS_NULL())).
		QueryContext(ctx, s.db, &dest)
	if err != nil {
		return domain.User{}, mapError(err)
	}
	return convertUserToDomain(dest)
}

func (s *Storage) ListUsers(ctx context.Context) ([]domain.User, error) {
	var dest []userDest
	err := selectUsers().
		WHERE(table.Users.DeletedAt.IS_NULL()).
		ORDER_BY(table.Users.Name.ASC()).
		QueryContext(ctx, s.db, &dest)
	if err != nil {
		return nil, mapError(err)
	}
	list := make([]domain.User, 0, len(dest))
	for _, d := range dest {
		u, err := convertUserToDomain(d)
		if err != nil {
			return nil, err
		}
		list = append(list, u)
	}
	return list, nil
}

// UpdateProfile stores the email address and every profile column of user.
func (s *Storage) UpdateProfile(ctx context.Context, user domain.User) error {
	return inTxSimple(ctx, s.db, func(tx *sql.Tx) error {
		res, err := table.Users.
			UPDATE(table.Users.Email).
			SET(sqlite.String(user.Email)).
			WHERE(table.Users.ID.EQ(sqlite.UUID(user.ID))).
			ExecContext(ctx, tx)
		if err != nil {
			return mapError(err)
		}
		if err := expectAffected(res); err != nil {
			return err
		}
		_, err = table.UserProfiles.
			UPDATE(table.UserProfiles.MutableColumns).
			MODEL(convertProfileFromDomain(user)).
			WHERE(table.UserProfiles.UserID.EQ(sqlite.UUID(user.ID))).
			ExecContext(ctx, tx)
		return mapError(err)
	})
}

func (s *Storage) UpdateSettings(ctx context.Context, id uuid.UUID, settings domain.Settings) error {
	profile := convertProfileFromDomain(domain.User{ID: id, Settings: settings})
	res, err := table.UserProfiles.
		UPDATE(
			table.UserProfiles.Language,
			table.UserProfiles.Theme,
			table.UserProfiles.EmailHuman,
			table.UserProfiles.EmailShiftinfo,
			table.UserProfiles.EmailNews,
			table.UserProfiles.EmailGoody,
			table.UserProfiles.MobileShow,
		).
		MODEL(profile).
		WHERE(table.UserProfiles.UserID.EQ(sqlite.UUID(id))).
		ExecContext(ctx, s.db)
	if err != nil {
		return mapError(err)
	}
	return expectAffected(res)
}

func (s *Storage) ListOAuth(ctx context.Context, id uuid.UUID) ([]domain.OAuthIdentity, error) {
	var dest []model.UserOauth
	err := table.UserOauth.
		SELECT(table.UserOauth.AllColumns).
		FROM(table.UserOauth).
		WHERE(table.UserOauth.UserID.EQ(sqlite.UUID(id))).
		ORDER_BY(table.UserOauth.Provider.ASC()).
		QueryContext(ctx, s.db, &dest)
	if err != nil {
		return nil, mapError(err)
	}
	identities := make([]domain.OAuthIdentity, 0, len(dest))
	for _, o := range dest {
		identities = append(identities, domain.OAuthIdentity{
			Provider:   o.Provider,
			Identifier: o.Identifier,
		})
	}
	return identities, nil
}

func expectAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return storage.ErrNotFound
	}
	return nil
}
