package audio_test

import (
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hazadus/go-dirplayer/internal/audio"
	"github.com/hazadus/go-dirplayer/internal/audio/audiotest"
)

func TestHandleReleaseExactlyOnce(t *testing.T) {
	opener := &audiotest.Opener{}
	h, err := audio.Acquire(opener, "../a.mp3")
	require.NoError(t, err)
	assert.Equal(t, "../a.mp3", h.Path())

	require.NoError(t, h.Release())
	assert.True(t, h.Released())
	assert.Equal(t, 1, opener.Last().Closed)

	err = h.Release()
	assert.True(t, errors.Is(err, audio.ErrReleased))
	assert.Equal(t, 1, opener.Last().Closed)
}

func TestHandleUseAfterRelease(t *testing.T) {
	opener := &audiotest.Opener{}
	h, err := audio.Acquire(opener, "../a.mp3")
	require.NoError(t, err)
	require.NoError(t, h.Play())
	require.NoError(t, h.Release())

	assert.True(t, errors.Is(h.Play(), audio.ErrReleased))
	assert.True(t, errors.Is(h.Pause(), audio.ErrReleased))
	assert.True(t, errors.Is(h.Resume(), audio.ErrReleased))
	assert.True(t, errors.Is(h.Seek(time.Second), audio.ErrReleased))
	assert.Zero(t, h.Position())
	assert.Zero(t, h.Length())
	assert.False(t, h.Playing())
	assert.Equal(t, 1, opener.Last().Plays)
}

func TestHandleSeekClamps(t *testing.T) {
	opener := &audiotest.Opener{Length: time.Minute}
	h, err := audio.Acquire(opener, "../a.mp3")
	require.NoError(t, err)

	require.NoError(t, h.Seek(2*time.Minute))
	assert.Equal(t, time.Minute, h.Position())

	require.NoError(t, h.Seek(-time.Second))
	assert.Equal(t, time.Duration(0), h.Position())
}

func TestAcquireError(t *testing.T) {
	opener := &audiotest.Opener{Fail: map[string]bool{"../bad.mp3": true}}
	h, err := audio.Acquire(opener, "../bad.mp3")
	require.Error(t, err)
	assert.Nil(t, h)
	assert.Contains(t, err.Error(), "../bad.mp3")
}

func TestClamp(t *testing.T) {
	assert.Equal(t, time.Duration(0), audio.Clamp(-5*time.Second, time.Minute))
	assert.Equal(t, time.Minute, audio.Clamp(2*time.Minute, time.Minute))
	assert.Equal(t, 30*time.Second, audio.Clamp(30*time.Second, time.Minute))
}
