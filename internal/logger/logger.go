// Package logger настраивает структурированный журнал на основе zerolog
package logger

import (
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
)

// Config параметры журнала
type Config struct {
	Output string // "stdout", "stderr" или путь к файлу
	Level  string // "debug", "info", "warn", "error"
}

// Init настраивает глобальный журнал и возвращает идентификатор сессии.
// Интерфейс занимает альтернативный экран терминала, поэтому основной вывод идёт в файл.
func Init(cfg Config) (string, error) {
	writer, console, err := openOutput(cfg.Output)
	if err != nil {
		return "", err
	}

	session := uuid.NewString()
	logger := New(writer, console, ParseLevel(cfg.Level)).With().Str("session", session).Logger()

	zerolog.SetGlobalLevel(ParseLevel(cfg.Level))
	zerolog.DefaultContextLogger = &logger
	zlog.Logger = logger

	return session, nil
}

// New создает журнал поверх произвольного writer
func New(writer io.Writer, console bool, level zerolog.Level) zerolog.Logger {
	zerolog.TimeFieldFormat = time.TimeOnly
	zerolog.CallerMarshalFunc = shortCaller

	var ctx zerolog.Context
	if console {
		ctx = zerolog.New(zerolog.ConsoleWriter{
			Out:        writer,
			TimeFormat: time.TimeOnly,
		}).With().Timestamp()
	} else {
		ctx = zerolog.New(writer).With().Timestamp()
	}

	// Место вызова пишем только в режиме отладки
	if level == zerolog.DebugLevel {
		ctx = ctx.Caller()
	}
	return ctx.Logger().Level(level)
}

func openOutput(output string) (io.Writer, bool, error) {
	switch strings.ToLower(output) {
	case "stdout":
		return os.Stdout, true, nil
	case "stderr", "":
		return os.Stderr, true, nil
	}

	if err := os.MkdirAll(filepath.Dir(output), 0755); err != nil {
		return nil, false, errors.Wrapf(err, "не удалось создать директорию журнала %s", output)
	}
	f, err := os.OpenFile(output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, false, errors.Wrapf(err, "не удалось открыть файл журнала %s", output)
	}
	return f, false, nil
}

// ParseLevel разбирает строковый уровень журнала
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

func shortCaller(_ uintptr, file string, line int) string {
	parts := strings.Split(file, string(filepath.Separator))
	if len(parts) > 1 {
		return filepath.Join(parts[len(parts)-2:]...) + ":" + strconv.Itoa(line)
	}
	return filepath.Base(file) + ":" + strconv.Itoa(line)
}
