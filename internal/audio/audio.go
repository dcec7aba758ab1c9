// Package audio содержит декодирование и воспроизведение аудиопотоков
package audio

import (
	"time"

	"github.com/cockroachdb/errors"
)

// ErrReleased обращение к уже освобожденному потоку
var ErrReleased = errors.New("поток уже освобожден")

// Stream декодированный аудиопоток.
// Playing возвращает false до первого Play, на паузе и после окончания потока.
type Stream interface {
	Play()
	Pause()
	Resume()
	Seek(pos time.Duration) error
	Position() time.Duration
	Length() time.Duration
	Playing() bool
	Close() error
}

// Opener открывает поток для файла
type Opener interface {
	Open(path string) (Stream, error)
}

// Handle единственный владелец открытого потока. Поток закрывается ровно один раз,
// после Release любые операции возвращают ErrReleased.
type Handle struct {
	path     string
	stream   Stream
	released bool
}

// Acquire открывает поток и оборачивает его во владеющий Handle
func Acquire(opener Opener, path string) (*Handle, error) {
	stream, err := opener.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "не удалось открыть %s", path)
	}
	return &Handle{path: path, stream: stream}, nil
}

// Path возвращает путь открытого файла
func (h *Handle) Path() string {
	return h.path
}

// Released сообщает, освобожден ли поток
func (h *Handle) Released() bool {
	return h.released
}

// Release закрывает поток. Повторный вызов возвращает ErrReleased.
func (h *Handle) Release() error {
	if h.released {
		return ErrReleased
	}
	h.released = true
	stream := h.stream
	h.stream = nil
	return stream.Close()
}

// Play запускает воспроизведение
func (h *Handle) Play() error {
	if h.released {
		return ErrReleased
	}
	h.stream.Play()
	return nil
}

// Pause приостанавливает воспроизведение
func (h *Handle) Pause() error {
	if h.released {
		return ErrReleased
	}
	h.stream.Pause()
	return nil
}

// Resume снимает паузу
func (h *Handle) Resume() error {
	if h.released {
		return ErrReleased
	}
	h.stream.Resume()
	return nil
}

// Seek переходит на позицию, ограниченную диапазоном [0, Length]
func (h *Handle) Seek(pos time.Duration) error {
	if h.released {
		return ErrReleased
	}
	return h.stream.Seek(Clamp(pos, h.stream.Length()))
}

// Position текущая позиция воспроизведения
func (h *Handle) Position() time.Duration {
	if h.released {
		return 0
	}
	return h.stream.Position()
}

// Length длительность трека
func (h *Handle) Length() time.Duration {
	if h.released {
		return 0
	}
	return h.stream.Length()
}

// Playing сообщает, воспроизводится ли поток
func (h *Handle) Playing() bool {
	if h.released {
		return false
	}
	return h.stream.Playing()
}

// Clamp ограничивает позицию диапазоном [0, length]
func Clamp(pos, length time.Duration) time.Duration {
	if pos < 0 {
		return 0
	}
	if pos > length {
		return length
	}
	return pos
}
