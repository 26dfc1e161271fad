package sqlite

import (
	"context"

	"github.com/goserg/engelserver/gen/model"
	"github.com/goserg/engelserver/gen/table"
	"github.com/goserg/engelserver/internal/domain"

	"github.com/go-jet/jet/v2/sqlite"
)

func (s *Storage) GetAngelType(ctx context.Context, id int) (domain.AngelType, error) {
	var dest model.AngelTypes
	err := table.AngelTypes.
		SELECT(table.AngelTypes.AllColumns).
		FROM(table.AngelTypes).
		WHERE(table.AngelTypes.ID.EQ(sqlite.Int(int64(id)))).
		QueryContext(ctx, s.db, &dest)
	if err != nil {
		return domain.AngelType{}, mapError(err)
	}
	return convertAngelTypeToDomain(dest), nil
}

func (s *Storage) ListAngelTypes(ctx context.Context) ([]domain.AngelType, error) {
	var dest []model.AngelTypes
	err := table.AngelTypes.
		SELECT(table.AngelTypes.AllColumns).
		FROM(table.AngelTypes).
		ORDER_BY(table.AngelTypes.Name.ASC()).
		QueryContext(ctx, s.db, &dest)
	if err != nil {
		return nil, mapError(err)
	}
	return convertAngelTypesToDomain(dest), nil
}

func (s *Storage) CreateAngelType(ctx context.Context, at domain.AngelType) (domain.AngelType, error) {
	res, err := table.AngelTypes.
		INSERT(table.AngelTypes.MutableColumns).
		MODEL(model.AngelTypes{
			Name:        at.Name,
			Description: at.Description,
			Restricted:  at.Restricted,
		}).
		ExecContext(ctx, s.db)
	if err != nil {
		return domain.AngelType{}, mapError(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.AngelType{}, err
	}
	at.ID = int(id)
	return at, nil
}
