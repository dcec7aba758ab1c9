package metadata

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// id3v1 собирает минимальный тег ID3v1 в конце файла
func id3v1(title, artist, album string) []byte {
	field := func(s string, n int) []byte {
		b := make([]byte, n)
		copy(b, s)
		return b
	}

	var buf bytes.Buffer
	buf.WriteString("TAG")
	buf.Write(field(title, 30))
	buf.Write(field(artist, 30))
	buf.Write(field(album, 30))
	buf.Write(field("2024", 4))
	buf.Write(field("", 30))
	buf.WriteByte(255)
	return buf.Bytes()
}

func TestReadFileWithTags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tagged.mp3")
	require.NoError(t, os.WriteFile(path, id3v1("Song", "Band", "Record"), 0o644))

	tags, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, Tags{Artist: "Band", Title: "Song", Album: "Record"}, tags)
	assert.False(t, tags.Empty())
}

func TestReadFileWithoutTags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Artist - Title.mp3")
	require.NoError(t, os.WriteFile(path, []byte("fake content"), 0o644))

	tags, err := ReadFile(path)
	assert.Error(t, err)
	assert.True(t, tags.Empty())
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "missing.mp3"))
	assert.Error(t, err)
}

func TestStatCorruptedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.mp3")
	content := []byte("invalid mp3 data")
	require.NoError(t, os.WriteFile(path, content, 0o644))

	info, err := Stat(path)
	assert.Error(t, err, "недекодируемый файл")
	require.NotNil(t, info)
	assert.Equal(t, int64(len(content)), info.Size)
	assert.Zero(t, info.Duration)
}

func TestStatMissingFile(t *testing.T) {
	info, err := Stat(filepath.Join(t.TempDir(), "missing.mp3"))
	assert.Error(t, err)
	assert.Nil(t, info)
}

func TestDurationMissingFile(t *testing.T) {
	_, err := Duration(filepath.Join(t.TempDir(), "missing.mp3"))
	assert.Error(t, err)
}
