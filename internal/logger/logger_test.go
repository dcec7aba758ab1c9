package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		level    string
		expected zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"DEBUG", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"nonsense", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, ParseLevel(tt.level), "level %q", tt.level)
	}
}

func TestNewFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, false, zerolog.WarnLevel)

	log.Info().Msg("скрыто")
	log.Warn().Msg("видно")

	assert.NotContains(t, buf.String(), "скрыто")
	assert.Contains(t, buf.String(), "видно")
}

func TestInitWritesSessionToFile(t *testing.T) {
	previous := zlog.Logger
	t.Cleanup(func() { zlog.Logger = previous })

	logPath := filepath.Join(t.TempDir(), "nested", "player.log")
	session, err := Init(Config{Output: logPath, Level: "info"})
	require.NoError(t, err)

	_, err = uuid.Parse(session)
	require.NoError(t, err)

	zlog.Info().Msg("запуск")

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), session)
	assert.Contains(t, string(data), "запуск")
}
