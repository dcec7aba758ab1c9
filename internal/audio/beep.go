package audio

import (
	"os"
	"sync/atomic"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/speaker"
	"github.com/rs/zerolog"
)

// resampleQuality качество передискретизации для треков с другой частотой
const resampleQuality = 4

// BeepOpener открывает mp3 файлы и воспроизводит их через speaker.
// Динамики инициализируются один раз по частоте первого трека.
type BeepOpener struct {
	buffer      time.Duration
	logger      zerolog.Logger
	initialized bool
	sampleRate  beep.SampleRate
}

// NewBeepOpener создает BeepOpener с указанным размером буфера динамиков
func NewBeepOpener(buffer time.Duration, logger zerolog.Logger) *BeepOpener {
	return &BeepOpener{buffer: buffer, logger: logger}
}

// Open декодирует файл. Воспроизведение начинается только после Play.
func (o *BeepOpener) Open(path string) (Stream, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка открытия файла")
	}

	decoder, format, err := mp3.Decode(file)
	if err != nil {
		file.Close()
		return nil, errors.Wrap(err, "ошибка декодирования MP3")
	}

	if !o.initialized {
		if err := speaker.Init(format.SampleRate, format.SampleRate.N(o.buffer)); err != nil {
			decoder.Close()
			return nil, errors.Wrap(err, "ошибка инициализации динамиков")
		}
		o.initialized = true
		o.sampleRate = format.SampleRate
		o.logger.Info().Int("sample_rate", int(format.SampleRate)).Msg("Динамики инициализированы")
	}

	s := &beepStream{
		decoder: decoder,
		format:  format,
		ctrl:    &beep.Ctrl{Streamer: decoder, Paused: true},
	}
	s.output = s.ctrl
	if format.SampleRate != o.sampleRate {
		s.output = beep.Resample(resampleQuality, format.SampleRate, o.sampleRate, s.ctrl)
	}
	return s, nil
}

// beepStream поток поверх mp3 декодера. done выставляется из горутины динамиков.
type beepStream struct {
	decoder beep.StreamSeekCloser
	format  beep.Format
	ctrl    *beep.Ctrl
	output  beep.Streamer
	started bool
	done    atomic.Bool
}

func (s *beepStream) Play() {
	if s.started && !s.done.Load() {
		return
	}
	if s.done.Load() {
		speaker.Lock()
		_ = s.decoder.Seek(0)
		speaker.Unlock()
		s.done.Store(false)
	}
	s.started = true

	speaker.Lock()
	s.ctrl.Paused = false
	speaker.Unlock()

	speaker.Play(beep.Seq(s.output, beep.Callback(func() {
		s.done.Store(true)
	})))
}

func (s *beepStream) Pause() {
	speaker.Lock()
	s.ctrl.Paused = true
	speaker.Unlock()
}

func (s *beepStream) Resume() {
	speaker.Lock()
	s.ctrl.Paused = false
	speaker.Unlock()
}

func (s *beepStream) Seek(pos time.Duration) error {
	speaker.Lock()
	defer speaker.Unlock()
	return s.decoder.Seek(s.format.SampleRate.N(pos))
}

func (s *beepStream) Position() time.Duration {
	speaker.Lock()
	defer speaker.Unlock()
	return s.format.SampleRate.D(s.decoder.Position())
}

func (s *beepStream) Length() time.Duration {
	return s.format.SampleRate.D(s.decoder.Len())
}

func (s *beepStream) Playing() bool {
	if !s.started || s.done.Load() {
		return false
	}
	speaker.Lock()
	defer speaker.Unlock()
	return !s.ctrl.Paused
}

func (s *beepStream) Close() error {
	if s.started {
		speaker.Clear()
	}
	return s.decoder.Close()
}
