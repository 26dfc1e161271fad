package sqlite

import (
	"context"
	"database/sql"

	"github.com/goserg/engelserver/gen/model"
	"github.com/goserg/engelserver/gen/table"
	"github.com/goserg/engelserver/internal/domain"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/go-jet/jet/v2/sqlite"
	"github.com/google/uuid"
)

func (s *Storage) GetUserAngelType(ctx context.Context, id int) (domain.UserAngelType, error) {
	return s.getUserAngelType(ctx, table.UserAngelTypes.ID.EQ(sqlite.Int(int64(id))))
}

func (s *Storage) FindUserAngelType(ctx context.Context, userID uuid.UUID, angelTypeID int) (domain.UserAngelType, error) {
	return s.getUserAngelType(ctx,
		table.UserAngelTypes.UserID.EQ(sqlite.UUID(userID)).
			AND(table.UserAngelTypes.AngelTypeID.EQ(sqlite.Int(int64(angelTypeID)))))
}

func (s *Storage) getUserAngelType(ctx context.Context, where sqlite.BoolExpression) (domain.UserAngelType, error) {
	var dest model.UserAngelTypes
	err := table.UserAngelTypes.
		SELECT(table.UserAngelTypes.AllColumns).
		FROM(table.UserAngelTypes).
		WHERE(where).
		QueryContext(ctx, s.db, &dest)
	if err != nil {
		return domain.UserAngelType{}, mapError(err)
	}
	return convertUserAngelTypeToDomain(dest)
}

func (s *Storage) listUserAngelTypes(ctx context.Context, where sqlite.BoolExpression) ([]domain.UserAngelType, error) {
	return queryUserAngelTypes(ctx, s.db, where)
}

func queryUserAngelTypes(ctx context.Context, db qrm.Queryable, where sqlite.BoolExpression) ([]domain.UserAngelType, error) {
	var dest []model.UserAngelTypes
	err := table.UserAngelTypes.
		SELECT(table.UserAngelTypes.AllColumns).
		FROM(table.UserAngelTypes).
		WHERE(where).
		ORDER_BY(table.UserAngelTypes.ID.ASC()).
		QueryContext(ctx, db, &dest)
	if err != nil {
		return nil, mapError(err)
	}
	return convertUserAngelTypesToDomain(dest)
}

// ListMembers returns every membership of the angel type together with its user,
// ordered by user name.
func (s *Storage) ListMembers(ctx context.Context, angelTypeID int) ([]domain.Member, error) {
	uats, err := s.listUserAngelTypes(ctx, table.UserAngelTypes.AngelTypeID.EQ(sqlite.Int(int64(angelTypeID))))
	if err != nil {
		return nil, err
	}
	if len(uats) == 0 {
		return []domain.Member{}, nil
	}
	ids := make([]sqlite.Expression, 0, len(uats))
	for _, uat := range uats {
		ids = append(ids, sqlite.UUID(uat.UserID))
	}
	var dest []userDest
	err = selectUsers().
		WHERE(table.Users.ID.IN(ids...)).
		ORDER_BY(table.Users.Name.ASC()).
		QueryContext(ctx, s.db, &dest)
	if err != nil {
		return nil, mapError(err)
	}
	byUser := make(map[uuid.UUID]domain.UserAngelType, len(uats))
	for _, uat := range uats {
		byUser[uat.UserID] = uat
	}
	members := make([]domain.Member, 0, len(dest))
	for _, d := range dest {
		u, err := convertUserToDomain(d)
		if err != nil {
			return nil, err
		}
		members = append(members, domain.Member{UserAngelType: byUser[u.ID], User: u})
	}
	return members, nil
}

// CountUnconfirmedForSupporter counts unconfirmed memberships of every angel type
// the user supports. Angel types without pending memberships are left out.
func (s *Storage) CountUnconfirmedForSupporter(ctx context.Context, supporterID uuid.UUID) ([]domain.UnconfirmedCount, error) {
	supported, err := s.listUserAngelTypes(ctx,
		table.UserAngelTypes.UserID.EQ(sqlite.UUID(supporterID)).
			AND(table.UserAngelTypes.Supporter.IS_TRUE()))
	if err != nil {
		return nil, err
	}
	if len(supported) == 0 {
		return []domain.UnconfirmedCount{}, nil
	}
	ids := make([]sqlite.Expression, 0, len(supported))
	for _, uat := range supported {
		ids = append(ids, sqlite.Int(int64(uat.AngelTypeID)))
	}
	unconfirmed, err := s.listUserAngelTypes(ctx,
		table.UserAngelTypes.AngelTypeID.IN(ids...).
			AND(table.UserAngelTypes.ConfirmUserID.IS_NULL()))
	if err != nil {
		return nil, err
	}
	counts := make(map[int]int)
	for _, uat := range unconfirmed {
		counts[uat.AngelTypeID]++
	}

	var angelTypes []model.AngelTypes
	err = table.AngelTypes.
		SELECT(table.AngelTypes.AllColumns).
		FROM(table.AngelTypes).
		WHERE(table.AngelTypes.ID.IN(ids...)).
		ORDER_BY(table.AngelTypes.Name.ASC()).
		QueryContext(ctx, s.db, &angelTypes)
	if err != nil {
		return nil, mapError(err)
	}
	result := make([]domain.UnconfirmedCount, 0, len(counts))
	for _, at := range convertAngelTypesToDomain(angelTypes) {
		if counts[at.ID] == 0 {
			continue
		}
		result = append(result, domain.UnconfirmedCount{AngelType: at, Count: counts[at.ID]})
	}
	return result, nil
}

// CreateUserAngelType inserts an unconfirmed membership. A second membership
// of the same user in the same angel type fails with storage.ErrAlreadyExists.
func (s *Storage) CreateUserAngelType(ctx context.Context, userID uuid.UUID, angelTypeID int) (domain.UserAngelType, error) {
	res, err := table.UserAngelTypes.
		INSERT(table.UserAngelTypes.UserID, table.UserAngelTypes.AngelTypeID).
		VALUES(userID.String(), angelTypeID).
		ExecContext(ctx, s.db)
	if err != nil {
		return domain.UserAngelType{}, mapError(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.UserAngelType{}, err
	}
	return domain.UserAngelType{
		ID:          int(id),
		UserID:      userID,
		AngelTypeID: angelTypeID,
	}, nil
}

func (s *Storage) ConfirmUserAngelType(ctx context.Context, id int, confirmUserID uuid.UUID) error {
	res, err := table.UserAngelTypes.
		UPDATE(table.UserAngelTypes.ConfirmUserID).
		SET(sqlite.UUID(confirmUserID)).
		WHERE(table.UserAngelTypes.ID.EQ(sqlite.Int(int64(id)))).
		ExecContext(ctx, s.db)
	if err != nil {
		return mapError(err)
	}
	return expectAffected(res)
}

// ConfirmAllUserAngelTypes confirms the pending memberships of the angel type
// and returns exactly the rows it changed.
func (s *Storage) ConfirmAllUserAngelTypes(ctx context.Context, angelTypeID int, confirmUserID uuid.UUID) ([]domain.UserAngelType, error) {
	return inTx(ctx, s.db, func(tx *sql.Tx) ([]domain.UserAngelType, error) {
		pending, err := queryUserAngelTypes(ctx, tx,
			table.UserAngelTypes.AngelTypeID.EQ(sqlite.Int(int64(angelTypeID))).
				AND(table.UserAngelTypes.ConfirmUserID.IS_NULL()))
		if err != nil || len(pending) == 0 {
			return pending, err
		}
		ids := make([]sqlite.Expression, 0, len(pending))
		for _, uat := range pending {
			ids = append(ids, sqlite.Int(int64(uat.ID)))
		}
		_, err = table.UserAngelTypes.
			UPDATE(table.UserAngelTypes.ConfirmUserID).
			SET(sqlite.UUID(confirmUserID)).
			WHERE(table.UserAngelTypes.ID.IN(ids...)).
			ExecContext(ctx, tx)
		if err != nil {
			return nil, mapError(err)
		}
		for i := range pending {
			by := confirmUserID
			pending[i].ConfirmUserID = &by
		}
		return pending, nil
	})
}

func (s *Storage) SetSupporter(ctx context.Context, id int, supporter bool) error {
	res, err := table.UserAngelTypes.
		UPDATE(table.UserAngelTypes.Supporter).
		SET(sqlite.Bool(supporter)).
		WHERE(table.UserAngelTypes.ID.EQ(sqlite.Int(int64(id)))).
		ExecContext(ctx, s.db)
	if err != nil {
		return mapError(err)
	}
	return expectAffected(res)
}

func (s *Storage) DeleteUserAngelType(ctx context.Context, id int) error {
	res, err := table.UserAngelTypes.
		DELETE().
		WHERE(table.UserAngelTypes.ID.EQ(sqlite.Int(int64(id)))).
		ExecContext(ctx, s.db)
	if err != nil {
		return mapError(err)
	}
	return expectAffected(res)
}

// DeleteUnconfirmedUserAngelTypes removes all pending memberships of the angel
// type. Confirmed members stay.
func (s *Storage) DeleteUnconfirmedUserAngelTypes(ctx context.Context, angelTypeID int) error {
	_, err := table.UserAngelTypes.
		DELETE().
		WHERE(table.UserAngelTypes.AngelTypeID.EQ(sqlite.Int(int64(angelTypeID))).
			AND(table.UserAngelTypes.ConfirmUserID.IS_NULL())).
		ExecContext(ctx, s.db)
	return mapError(err)
}
