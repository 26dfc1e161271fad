// Package audit appends operational log lines to the database.
package audit

import (
	"context"
	"fmt"

	"github.com/goserg/engelserver/internal/domain"
	"github.com/goserg/engelserver/internal/storage"

	"github.com/sirupsen/logrus"
)

// Publisher receives a copy of every audit line.
type Publisher interface {
	Publish(text string) error
}

type Log struct {
	storage storage.LogStorage
	log     *logrus.Entry
	mirrors []Publisher
}

func New(l *logrus.Logger, s storage.LogStorage, mirrors ...Publisher) *Log {
	return &Log{
		storage: s,
		log:     l.WithField("from", "audit"),
		mirrors: mirrors,
	}
}

// Infof records a line written by actor. Storage and mirror failures are
// logged only.
func (a *Log) Infof(ctx context.Context, actor domain.User, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if !actor.IsZero() {
		msg = actor.Name + ": " + msg
	}
	a.log.Info(msg)

	err := a.storage.AddLogEntry(ctx, domain.LogEntry{Level: "info", Message: msg})
	if err != nil {
		a.log.WithError(err).Error("unable to store log entry")
	}
	for _, m := range a.mirrors {
		if err := m.Publish(msg); err != nil {
			a.log.WithError(err).Warn("unable to mirror log entry")
		}
	}
}
