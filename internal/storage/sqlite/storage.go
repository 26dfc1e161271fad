package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/goserg/engelserver/internal/migrate"
	"github.com/goserg/engelserver/internal/storage"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/sirupsen/logrus"

	driver "github.com/mattn/go-sqlite3"
)

type Storage struct {
	db  *sql.DB
	log *logrus.Entry
}

var _ storage.UserStorage = (*Storage)(nil)
var _ storage.AngelTypeStorage = (*Storage)(nil)
var _ storage.UserAngelTypeStorage = (*Storage)(nil)
var _ storage.LogStorage = (*Storage)(nil)

// Open connects to the sqlite file and brings the schema up to date.
func Open(fileName string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", buildSource(fileName))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	err = migrate.UpServerDB(db)
	if err != nil {
		return nil, err
	}

	err = db.Ping()
	if err != nil {
		return nil, err
	}
	return db, nil
}

func New(l *logrus.Logger, db *sql.DB) *Storage {
	log := l.WithFields(map[string]interface{}{
		"from": "storage",
	})
	log.Info("storage connected")
	return &Storage{
		db:  db,
		log: log,
	}
}

func buildSource(fileName string) string {
	return "file:" + fileName + "?cache=shared&_foreign_keys=on"
}

func mapError(err error) error {
	if errors.Is(err, qrm.ErrNoRows) {
		return storage.ErrNotFound
	}
	var sqliteErr driver.Error
	if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == driver.ErrConstraintUnique {
		return storage.ErrAlreadyExists
	}
	return err
}

func inTx[T any](ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) (T, error)) (T, error) {
	var zero T
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return zero, err
	}
	value, err := fn(tx)
	if err != nil {
		return zero, errors.Join(err, tx.Rollback())
	}
	return value, tx.Commit()
}

func inTxSimple(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) error {
	_, err := inTx(ctx, db, func(tx *sql.Tx) (struct{}, error) { return struct{}{}, fn(tx) })
	return err
}
