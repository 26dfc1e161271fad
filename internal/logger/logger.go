package logger

import (
	"time"

	"github.com/sirupsen/logrus"
)

func New(level string) *logrus.Logger {
	l := logrus.New()
	l.SetFormatter(&logrus.TextFormatter{
		TimestampFormat: time.DateTime,
		FullTimestamp:   true,
	})
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		l.WithError(err).Warn("unknown log level, falling back to info")
		lvl = logrus.InfoLevel
	}
	l.SetLevel(lvl)
	return l
}
