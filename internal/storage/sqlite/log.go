package sqlite

import (
	"context"
	"time"

	"github.com/goserg/engelserver/gen/model"
	"github.com/goserg/engelserver/gen/table"
	"github.com/goserg/engelserver/internal/domain"
)

func (s *Storage) AddLogEntry(ctx context.Context, entry domain.LogEntry) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	_, err := table.LogEntries.
		INSERT(table.LogEntries.MutableColumns).
		MODEL(model.LogEntries{
			Level:     entry.Level,
			Message:   entry.Message,
			CreatedAt: entry.CreatedAt,
		}).
		ExecContext(ctx, s.db)
	return mapError(err)
}
