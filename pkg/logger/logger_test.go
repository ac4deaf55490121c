package logger_test

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/crm-api/pkg/logger"
)

func TestNew_NivelConfigurable(t *testing.T) {
	casos := []struct {
		level string
		want  zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"WARN", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"", zerolog.InfoLevel},
		{"verboso", zerolog.InfoLevel}, // nivel desconocido cae a info
	}
	for _, c := range casos {
		l := logger.New(logger.Config{Env: "production", Level: c.level})
		assert.Equal(t, c.want, l.Zerolog().GetLevel(), "level=%q", c.level)
	}
}
