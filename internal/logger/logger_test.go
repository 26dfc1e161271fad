package logger

import (
	"testing"

	"github.com/sirupsen/logrus"
)

func TestNew(t *testing.T) {
	tests := []struct {
		level string
		want  logrus.Level
	}{
		{level: "debug", want: logrus.DebugLevel},
		{level: "warn", want: logrus.WarnLevel},
		{level: "nonsense", want: logrus.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			if got := New(tt.level).GetLevel(); got != tt.want {
				t.Errorf("New(%q) level = %v, want %v", tt.level, got, tt.want)
			}
		})
	}
}
