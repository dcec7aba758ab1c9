package playlist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLegacyName(t *testing.T) {
	tests := []struct {
		path     string
		expected string
	}{
		{"../Song Title[dQw4w9WgXcQ].mp3", "Song Title"},
		// Без метки загрузчика правило отрезает часть имени
		{"../Artist - Title.mp3", "A"},
		{"../Артист - Песня[abcdefghijk].mp3", "Артист - Песня"},
		// Ровно 20 символов: остается пустая строка
		{"../[abcdefghijk].mp3", ""},
		{"../a.mp3", ""},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, LegacyName(tt.path), "path %q", tt.path)
	}
}

func TestParseName(t *testing.T) {
	tests := []struct {
		path     string
		expected string
		ok       bool
	}{
		{"../Song Title[dQw4w9WgXcQ].mp3", "Song Title", true},
		{"/music/Artist - Title[a-b_c1234XY].mp3", "Artist - Title", true},
		{"../Artist - Title.mp3", "Artist - Title", false},
		{"../Track [live].mp3", "Track [live]", false},
		{"plain.mp3", "plain", false},
	}

	for _, tt := range tests {
		name, ok := ParseName(tt.path)
		assert.Equal(t, tt.expected, name, "path %q", tt.path)
		assert.Equal(t, tt.ok, ok, "path %q", tt.path)
	}
}

func TestParseNameMatchesLegacyForDownloadedFiles(t *testing.T) {
	paths := []string{
		"../Song Title[dQw4w9WgXcQ].mp3",
		"../01_Intro[0123456789A].mp3",
		"../x[___________].mp3",
	}

	for _, path := range paths {
		name, ok := ParseName(path)
		assert.True(t, ok, "path %q", path)
		assert.Equal(t, LegacyName(path), name, "path %q", path)
	}
}

func TestExtension(t *testing.T) {
	assert.Equal(t, "mp3", extension("a.mp3"))
	assert.Equal(t, "MP3", extension("a.MP3"))
	assert.Equal(t, "txt", extension("a.mp3.txt"))
	assert.Equal(t, "", extension(".mp3"))
	assert.Equal(t, "", extension("noext"))
}
