// Package playlist содержит загрузку списка треков из директории
package playlist

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"

	"github.com/hazadus/go-dirplayer/internal/config"
	"github.com/hazadus/go-dirplayer/internal/metadata"
)

var (
	// ErrOpenDir директорию с музыкой не удалось открыть или прочитать
	ErrOpenDir = errors.New("не удалось открыть директорию")
	// ErrReadEntry не удалось прочитать элемент директории
	ErrReadEntry = errors.New("ошибка чтения элемента директории")
)

// Track представляет один трек списка воспроизведения
type Track struct {
	Path string // Путь к файлу в том виде, в каком он получен при сканировании
	Name string // Отображаемое имя

	// Метаданные из тегов, пустые если теги не читались
	Artist string
	Title  string
	Album  string
}

// Options параметры сканирования
type Options struct {
	Extension       string
	CaseInsensitive bool
	NameStyle       string
	ReadTags        bool
	Logger          zerolog.Logger
}

// OptionsFromConfig собирает параметры сканирования из конфигурации
func OptionsFromConfig(cfg *config.Config, logger zerolog.Logger) Options {
	return Options{
		Extension:       cfg.Extension,
		CaseInsensitive: cfg.CaseInsensitiveExt,
		NameStyle:       cfg.NameStyle,
		ReadTags:        cfg.ReadTags,
		Logger:          logger,
	}
}

// Playlist упорядоченный неизменяемый список треков
type Playlist struct {
	Dir    string
	tracks []Track
}

// New создает список из готовых треков
func New(dir string, tracks []Track) *Playlist {
	return &Playlist{Dir: dir, tracks: tracks}
}

// Len возвращает количество треков
func (p *Playlist) Len() int {
	return len(p.tracks)
}

// At возвращает трек по индексу
func (p *Playlist) At(i int) (Track, bool) {
	if i < 0 || i >= len(p.tracks) {
		return Track{}, false
	}
	return p.tracks[i], true
}

// Tracks возвращает копию списка треков
func (p *Playlist) Tracks() []Track {
	return slices.Clone(p.tracks)
}

// Load сканирует директорию (без вложенных) и собирает треки с нужным расширением.
// Любая ошибка чтения директории возвращается целиком, частичный список не возвращается.
func Load(dir string, opts Options) (*Playlist, error) {
	log := opts.Logger

	f, err := os.Open(dir)
	if err != nil {
		return nil, errors.Wrapf(errors.Mark(err, ErrOpenDir), "директория %s", dir)
	}
	defer f.Close()

	entries, err := f.ReadDir(-1)
	if err != nil {
		return nil, errors.Wrapf(errors.Mark(err, ErrReadEntry), "директория %s", dir)
	}
	slices.SortFunc(entries, func(a, b os.DirEntry) int {
		return strings.Compare(a.Name(), b.Name())
	})

	tracks := make([]Track, 0, len(entries))
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())

		info, err := entry.Info()
		if err != nil {
			return nil, errors.Wrapf(errors.Mark(err, ErrReadEntry), "элемент %s", path)
		}

		if info.Mode()&os.ModeSymlink != 0 {
			if info, err = os.Stat(path); err != nil {
				log.Warn().Err(err).Str("path", path).Msg("Битая символическая ссылка, пропускаем")
				continue
			}
		}

		if info.IsDir() {
			log.Info().Str("path", path).Msg("Найдена директория")
			continue
		}
		if !info.Mode().IsRegular() {
			continue
		}

		log.Info().Str("path", path).Msg("Найден файл")
		if !matchExtension(entry.Name(), opts.Extension, opts.CaseInsensitive) {
			continue
		}

		log.Info().Str("path", path).Msg("Файл подходит, добавляем в список")
		tracks = append(tracks, newTrack(path, opts))
	}

	if len(tracks) == 0 {
		log.Warn().Str("dir", dir).Msgf("Файлы %s не найдены. Добавьте их в директорию.", opts.Extension)
		log.Warn().Msg("Если файлы должны были быть загружены, проверьте, что загрузка завершилась.")
	}

	return &Playlist{Dir: dir, tracks: tracks}, nil
}

func newTrack(path string, opts Options) Track {
	track := Track{Path: path}

	if opts.NameStyle == config.NameStyleLegacy {
		track.Name = LegacyName(path)
	} else {
		name, ok := ParseName(path)
		if !ok {
			opts.Logger.Debug().Str("path", path).Msg("Имя файла без метки загрузчика")
		}
		track.Name = name
	}

	if opts.ReadTags {
		tags := readTags(path, opts.Logger)
		track.Artist, track.Title, track.Album = tags.Artist, tags.Title, tags.Album
	}
	return track
}

func matchExtension(name, want string, caseInsensitive bool) bool {
	got := extension(name)
	if got == "" {
		return false
	}
	if caseInsensitive {
		return strings.EqualFold(got, want)
	}
	return got == want
}

// readTags читает теги файла; ошибки чтения не критичны
func readTags(path string, logger zerolog.Logger) metadata.Tags {
	tags, err := metadata.ReadFile(path)
	if err != nil {
		logger.Debug().Err(err).Str("path", path).Msg("Теги не прочитаны")
	}
	return tags
}
