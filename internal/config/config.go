// Package config содержит функции для загрузки конфигурации приложения
package config

import (
	"os"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Стили отображения имени трека
const (
	NameStyleParsed = "parsed"
	NameStyleLegacy = "legacy"
)

// Config структура для хранения конфигурации приложения
type Config struct {
	MusicDir           string        `yaml:"music_dir" default:".." validate:"required"`
	Extension          string        `yaml:"extension" default:"mp3" validate:"required"`
	CaseInsensitiveExt bool          `yaml:"case_insensitive_ext"`
	NameStyle          string        `yaml:"name_style" default:"parsed" validate:"oneof=parsed legacy"`
	ReadTags           bool          `yaml:"read_tags" default:"true"`
	FPS                int           `yaml:"fps" default:"60" validate:"gte=1,lte=240"`
	SeekStep           time.Duration `yaml:"seek_step" default:"5s" validate:"gt=0"`
	SpeakerBuffer      time.Duration `yaml:"speaker_buffer" default:"100ms" validate:"gt=0"`
	Scroll             ScrollConfig  `yaml:"scroll"`
	Shuffle            ShuffleConfig `yaml:"shuffle"`
	Log                LogConfig     `yaml:"log"`
}

// ScrollConfig параметры плавной прокрутки списка
type ScrollConfig struct {
	WheelGain float32 `yaml:"wheel_gain" default:"5" validate:"gt=0"`
	Decay     float32 `yaml:"decay" default:"0.9" validate:"gt=0,lt=1"`
	RowPitch  float32 `yaml:"row_pitch" default:"30" validate:"gt=0"`
}

// ShuffleConfig параметры случайного порядка
type ShuffleConfig struct {
	// FullRange разрешает выбор последнего трека при перемешивании
	FullRange bool `yaml:"full_range"`
}

// LogConfig параметры журнала
type LogConfig struct {
	Level string `yaml:"level" default:"info" validate:"oneof=debug info warn warning error"`
	File  string `yaml:"file" default:"~/.dirplayer.log"`
}

// Default возвращает конфигурацию со значениями по умолчанию
func Default() (*Config, error) {
	config := &Config{}
	if err := defaults.Set(config); err != nil {
		return nil, errors.Wrap(err, "ошибка установки значений по умолчанию")
	}
	if err := config.expandPaths(); err != nil {
		return nil, err
	}
	return config, nil
}

// LoadConfig загружает конфигурацию приложения из указанного файла.
// Отсутствующий файл не является ошибкой: используются значения по умолчанию.
func LoadConfig(filePath string) (*Config, error) {
	config := &Config{}
	if err := defaults.Set(config); err != nil {
		return nil, errors.Wrap(err, "ошибка установки значений по умолчанию")
	}

	path, err := ExpandHome(filePath)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, errors.Wrap(err, "ошибка разбора yaml конфигурации")
		}
	case os.IsNotExist(err):
		// Файл конфигурации необязателен
	default:
		return nil, errors.Wrap(err, "ошибка чтения файла конфигурации")
	}

	config.overrideFromEnv()

	if err := config.Validate(); err != nil {
		return nil, err
	}

	if err := config.expandPaths(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate проверяет корректность конфигурации
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return errors.Wrap(err, "некорректная конфигурация")
	}
	return nil
}

// overrideFromEnv переопределяет значения из переменных окружения
func (c *Config) overrideFromEnv() {
	if v := os.Getenv("DIRPLAYER_MUSIC_DIR"); v != "" {
		c.MusicDir = v
	}
	if v := os.Getenv("DIRPLAYER_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("DIRPLAYER_LOG_FILE"); v != "" {
		c.Log.File = v
	}
}

func (c *Config) expandPaths() error {
	var err error
	if c.MusicDir, err = ExpandHome(c.MusicDir); err != nil {
		return err
	}
	if c.Log.File, err = ExpandHome(c.Log.File); err != nil {
		return err
	}
	return nil
}

// ExpandHome раскрывает тильду в начале пути
func ExpandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "не удалось определить домашнюю директорию")
	}
	return strings.Replace(path, "~", home, 1), nil
}
