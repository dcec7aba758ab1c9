// Package playback содержит конечный автомат воспроизведения списка треков
package playback

import (
	"math/rand/v2"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"

	"github.com/hazadus/go-dirplayer/internal/audio"
	"github.com/hazadus/go-dirplayer/internal/playlist"
)

// ErrNoActiveStream после синхронизации индекса нет открытого потока
var ErrNoActiveStream = errors.New("нет активного потока")

// DefaultSeekStep шаг перемотки по умолчанию
const DefaultSeekStep = 5 * time.Second

// State состояние автомата
type State int

// Состояния автомата воспроизведения
const (
	NoTrackLoaded State = iota
	LoadedPaused
	LoadedPlaying
	LoadedStopped // Поток остановился, ожидается переход к следующему треку
)

func (s State) String() string {
	switch s {
	case NoTrackLoaded:
		return "NO TRACK"
	case LoadedPaused:
		return "PAUSED"
	case LoadedPlaying:
		return "PLAYING"
	case LoadedStopped:
		return "STOPPED"
	default:
		return "UNKNOWN"
	}
}

// Options параметры автомата
type Options struct {
	Opener    audio.Opener
	SeekStep  time.Duration
	Shuffle   bool
	FullRange bool // Разрешить выбор последнего трека при перемешивании
	Logger    zerolog.Logger
	IntN      func(n int) int // Источник случайных чисел, по умолчанию rand.IntN
}

// Machine владеет списком треков, индексами, флагами и единственным открытым потоком
type Machine struct {
	tracks     *playlist.Playlist
	opener     audio.Opener
	log        zerolog.Logger
	seekStep   time.Duration
	fullRange  bool
	intN       func(n int) int
	current    int
	lastLoaded int
	paused     bool
	shuffled   bool
	started    bool
	handle     *audio.Handle
	loadErr    error
}

// New создает автомат: пауза на треке 0, поток откроется на первом кадре
func New(tracks *playlist.Playlist, opts Options) *Machine {
	m := &Machine{
		tracks:     tracks,
		opener:     opts.Opener,
		log:        opts.Logger,
		seekStep:   opts.SeekStep,
		fullRange:  opts.FullRange,
		intN:       opts.IntN,
		lastLoaded: -1,
		paused:     true,
		shuffled:   opts.Shuffle,
	}
	if m.seekStep <= 0 {
		m.seekStep = DefaultSeekStep
	}
	if m.intN == nil {
		m.intN = rand.IntN
	}
	return m
}

// Frame выполняет один шаг автомата: синхронизирует поток с индексом,
// запускает трек или переходит к следующему после окончания.
func (m *Machine) Frame() error {
	if m.tracks.Len() == 0 {
		return nil
	}

	m.sync()
	if m.handle == nil {
		track, _ := m.tracks.At(m.current)
		m.log.Error().
			Int("index", m.current).
			Int("last_loaded", m.lastLoaded).
			Str("path", track.Path).
			Msg("Нет активного потока")
		if m.loadErr != nil {
			return errors.Mark(errors.Wrapf(m.loadErr, "трек %d", m.current), ErrNoActiveStream)
		}
		return errors.Wrapf(ErrNoActiveStream, "трек %d", m.current)
	}

	if !m.handle.Playing() && !m.paused {
		if !m.started {
			if err := m.handle.Play(); err != nil {
				return err
			}
			m.started = true
		} else {
			m.setIndex(m.NextIndex())
		}
	}
	return nil
}

// sync освобождает старый поток и открывает новый при смене индекса
func (m *Machine) sync() {
	if m.current == m.lastLoaded {
		return
	}

	if m.handle != nil {
		m.log.Info().Str("path", m.handle.Path()).Msg("Освобождаем поток")
		if err := m.handle.Release(); err != nil {
			m.log.Warn().Err(err).Msg("Ошибка освобождения потока")
		}
		m.handle = nil
	} else if m.lastLoaded >= 0 {
		m.log.Warn().Msg("Нечего освобождать: предыдущий трек не был загружен")
	}

	track, _ := m.tracks.At(m.current)
	m.log.Info().Int("index", m.current).Str("path", track.Path).Msg("Загружаем трек")

	m.lastLoaded = m.current
	m.started = false
	m.loadErr = nil

	handle, err := audio.Acquire(m.opener, track.Path)
	if err != nil {
		m.loadErr = err
		return
	}
	m.handle = handle
}

// NextIndex вычисляет индекс следующего трека для автоматического перехода.
// При перемешивании верхняя граница исключает последний трек, если не задан FullRange.
func (m *Machine) NextIndex() int {
	n := m.tracks.Len()
	if n == 0 {
		return 0
	}
	if !m.shuffled {
		return (m.current + 1) % n
	}

	upper := n - 1
	if m.fullRange {
		upper = n
	}
	candidates := upper
	if m.current < upper {
		candidates--
	}
	// Выбирать не из чего: переходим по порядку
	if candidates <= 0 {
		return (m.current + 1) % n
	}

	for {
		if i := m.intN(upper); i != m.current {
			return i
		}
	}
}

func (m *Machine) setIndex(i int) {
	m.current = i
	m.started = false
}

// Next переходит к следующему треку по порядку, не учитывая перемешивание
func (m *Machine) Next() {
	if m.handle == nil {
		return
	}
	m.setIndex((m.current + 1) % m.tracks.Len())
}

// Prev переходит к предыдущему треку; с первого трека на последний
func (m *Machine) Prev() {
	if m.handle == nil {
		return
	}
	n := m.tracks.Len()
	m.setIndex((m.current - 1 + n) % n)
}

// TogglePause переключает паузу
func (m *Machine) TogglePause() {
	if m.handle == nil {
		return
	}
	if m.paused {
		m.paused = false
		m.logErr(m.handle.Resume())
	} else {
		m.paused = true
		m.logErr(m.handle.Pause())
	}
}

// ToggleShuffle переключает случайный порядок
func (m *Machine) ToggleShuffle() {
	if m.handle == nil {
		return
	}
	m.shuffled = !m.shuffled
}

// SeekBy сдвигает позицию на delta в пределах [0, длина трека]
func (m *Machine) SeekBy(delta time.Duration) {
	if m.handle == nil {
		return
	}
	m.logErr(m.handle.Seek(m.handle.Position() + delta))
}

// SeekForward перематывает вперед на шаг
func (m *Machine) SeekForward() {
	m.SeekBy(m.seekStep)
}

// SeekBackward перематывает назад на шаг
func (m *Machine) SeekBackward() {
	m.SeekBy(-m.seekStep)
}

// SeekStart переходит в начало трека
func (m *Machine) SeekStart() {
	if m.handle == nil {
		return
	}
	m.logErr(m.handle.Seek(0))
}

// SeekEnd переходит в конец трека
func (m *Machine) SeekEnd() {
	if m.handle == nil {
		return
	}
	m.logErr(m.handle.Seek(m.handle.Length()))
}

// Close освобождает поток при завершении программы
func (m *Machine) Close() error {
	if m.handle == nil {
		return nil
	}
	err := m.handle.Release()
	m.handle = nil
	return err
}

// Track возвращает трек по индексу
func (m *Machine) Track(i int) (playlist.Track, bool) {
	return m.tracks.At(i)
}

// State возвращает текущее состояние автомата
func (m *Machine) State() State {
	switch {
	case m.handle == nil:
		return NoTrackLoaded
	case m.paused:
		return LoadedPaused
	case m.handle.Playing():
		return LoadedPlaying
	default:
		return LoadedStopped
	}
}

// Status снимок состояния для отрисовки
type Status struct {
	State    State
	Index    int
	Count    int
	Track    playlist.Track
	Paused   bool
	Shuffled bool
	Elapsed  time.Duration
	Total    time.Duration
}

// Progress доля прослушанного трека от 0 до 1
func (s Status) Progress() float64 {
	if s.Total <= 0 {
		return 0
	}
	p := float64(s.Elapsed) / float64(s.Total)
	if p > 1 {
		return 1
	}
	return p
}

// Snapshot возвращает снимок состояния
func (m *Machine) Snapshot() Status {
	track, _ := m.tracks.At(m.current)
	status := Status{
		State:    m.State(),
		Index:    m.current,
		Count:    m.tracks.Len(),
		Track:    track,
		Paused:   m.paused,
		Shuffled: m.shuffled,
	}
	if m.handle != nil {
		status.Elapsed = m.handle.Position()
		status.Total = m.handle.Length()
	}
	return status
}

func (m *Machine) logErr(err error) {
	if err != nil {
		m.log.Warn().Err(err).Msg("Ошибка управления потоком")
	}
}
