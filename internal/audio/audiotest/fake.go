// Package audiotest содержит поддельные потоки для тестов без звуковой карты
package audiotest

import (
	"time"

	"github.com/cockroachdb/errors"

	"github.com/hazadus/go-dirplayer/internal/audio"
)

// Stream поток с ручным управлением временем
type Stream struct {
	Path     string
	Len      time.Duration
	Pos      time.Duration
	Started  bool
	Paused   bool
	Finished bool
	Closed   int
	Plays    int
}

var _ audio.Stream = (*Stream)(nil)

func (s *Stream) Play() {
	s.Started = true
	s.Finished = false
	s.Paused = false
	s.Plays++
}

func (s *Stream) Pause()  { s.Paused = true }
func (s *Stream) Resume() { s.Paused = false }

func (s *Stream) Seek(pos time.Duration) error {
	s.Pos = pos
	if s.Started && pos >= s.Len {
		s.Finished = true
	}
	return nil
}

func (s *Stream) Position() time.Duration { return s.Pos }
func (s *Stream) Length() time.Duration   { return s.Len }

func (s *Stream) Playing() bool {
	return s.Started && !s.Paused && !s.Finished
}

func (s *Stream) Close() error {
	s.Closed++
	return nil
}

// Finish имитирует окончание потока
func (s *Stream) Finish() {
	s.Pos = s.Len
	s.Finished = true
}

// Opener выдает поддельные потоки и запоминает все открытые
type Opener struct {
	Length time.Duration
	Fail   map[string]bool
	Opened []*Stream
}

var _ audio.Opener = (*Opener)(nil)

// Open открывает поддельный поток; пути из Fail возвращают ошибку
func (o *Opener) Open(path string) (audio.Stream, error) {
	if o.Fail[path] {
		return nil, errors.Newf("не удалось декодировать %s", path)
	}
	length := o.Length
	if length == 0 {
		length = 3 * time.Minute
	}
	s := &Stream{Path: path, Len: length}
	o.Opened = append(o.Opened, s)
	return s, nil
}

// Last возвращает последний открытый поток
func (o *Opener) Last() *Stream {
	if len(o.Opened) == 0 {
		return nil
	}
	return o.Opened[len(o.Opened)-1]
}

// Live количество открытых и еще не закрытых потоков
func (o *Opener) Live() int {
	live := 0
	for _, s := range o.Opened {
		if s.Closed == 0 {
			live++
		}
	}
	return live
}
