package playlist

import (
	"path/filepath"
	"regexp"
	"strings"
)

const (
	// legacyPrefixLen длина префикса "../" у путей, полученных при сканировании ".."
	legacyPrefixLen = 3
	// legacySuffixLen длина суффикса "[<id>].mp3" у загруженных файлов
	legacySuffixLen = 17
)

// downloadTag метка источника, которую загрузчик добавляет к имени файла: "[dQw4w9WgXcQ]"
var downloadTag = regexp.MustCompile(`\[[A-Za-z0-9_-]{11}\]$`)

// LegacyName воспроизводит исходное правило: отбросить первые 3 и последние 17 символов пути.
// Для слишком коротких путей возвращает пустую строку.
func LegacyName(path string) string {
	runes := []rune(path)
	if len(runes) < legacyPrefixLen+legacySuffixLen {
		return ""
	}
	return string(runes[legacyPrefixLen : len(runes)-legacySuffixLen])
}

// ParseName выделяет отображаемое имя из пути: убирает директорию, расширение
// и метку загрузчика. ok == false, если имя файла не содержит метки и,
// следовательно, не совпадает с ожидаемым форматом.
func ParseName(path string) (name string, ok bool) {
	base := filepath.Base(path)
	name = strings.TrimSuffix(base, filepath.Ext(base))

	loc := downloadTag.FindStringIndex(name)
	if loc == nil {
		return name, false
	}
	return name[:loc[0]], true
}

// extension возвращает расширение без точки. Как и для скрытых файлов вида ".mp3",
// у имени без основы расширения нет.
func extension(name string) string {
	ext := filepath.Ext(name)
	if ext == name {
		return ""
	}
	return strings.TrimPrefix(ext, ".")
}
