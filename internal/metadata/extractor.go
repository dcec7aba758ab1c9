// Package metadata извлекает теги и сведения о файлах треков
package metadata

import (
	"io"
	"os"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/dhowden/tag"
	"github.com/gopxl/beep/mp3"
)

// Tags теги трека
type Tags struct {
	Artist string
	Title  string
	Album  string
}

// Empty сообщает, что ни одного тега нет
func (t Tags) Empty() bool {
	return t.Artist == "" && t.Title == "" && t.Album == ""
}

// FileInfo содержит информацию о файле
type FileInfo struct {
	Size     int64
	Duration time.Duration
}

// ReadFrom читает теги из reader
func ReadFrom(reader io.ReadSeeker) (Tags, error) {
	// Сбрасываем reader в начало
	if _, err := reader.Seek(0, io.SeekStart); err != nil {
		return Tags{}, errors.Wrap(err, "ошибка перемотки")
	}

	metadata, err := tag.ReadFrom(reader)
	if err != nil {
		return Tags{}, errors.Wrap(err, "ошибка чтения тегов")
	}

	return Tags{
		Artist: metadata.Artist(),
		Title:  metadata.Title(),
		Album:  metadata.Album(),
	}, nil
}

// ReadFile читает теги из файла
func ReadFile(filePath string) (Tags, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return Tags{}, errors.Wrap(err, "ошибка открытия файла")
	}
	defer file.Close()

	return ReadFrom(file)
}

// Duration получает длительность MP3 файла без воспроизведения
func Duration(filePath string) (time.Duration, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return 0, errors.Wrap(err, "ошибка открытия файла")
	}

	// Декодер закрывает файл сам
	streamer, format, err := mp3.Decode(file)
	if err != nil {
		file.Close()
		return 0, errors.Wrap(err, "ошибка декодирования MP3")
	}
	defer streamer.Close()

	return format.SampleRate.D(streamer.Len()), nil
}

// Stat получает размер файла и, если файл декодируется, его длительность.
// Ошибка декодирования возвращается вместе с заполненным размером.
func Stat(filePath string) (*FileInfo, error) {
	fileInfo, err := os.Stat(filePath)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения информации о файле")
	}

	info := &FileInfo{Size: fileInfo.Size()}
	info.Duration, err = Duration(filePath)
	return info, err
}
