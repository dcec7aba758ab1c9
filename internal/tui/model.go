// Package tui содержит терминальный интерфейс плеера: цикл кадров и отрисовку
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/hazadus/go-dirplayer/internal/input"
	"github.com/hazadus/go-dirplayer/internal/playback"
	"github.com/hazadus/go-dirplayer/internal/scroll"
)

// frameMsg отправляется на каждом кадре
type frameMsg time.Time

// Model модель интерфейса. Порядок кадра: ввод → автомат → прокрутка → отрисовка.
type Model struct {
	machine  *playback.Machine
	scroll   *scroll.State
	keys     input.KeyMap
	help     help.Model
	progress progress.Model
	log      zerolog.Logger

	frameInterval time.Duration
	wheel         float32 // Смещение колеса, накопленное с прошлого кадра

	width  int
	height int

	fps        int
	frames     int
	fpsStarted time.Time

	err      error
	quitting bool
}

// Options параметры модели
type Options struct {
	FPS    int
	Scroll scroll.Params
	Logger zerolog.Logger
}

// NewModel создает модель интерфейса поверх автомата воспроизведения
func NewModel(machine *playback.Machine, opts Options) *Model {
	fps := opts.FPS
	if fps <= 0 {
		fps = 60
	}

	prog := progress.New(
		progress.WithSolidFill(string(colorLight0)),
		progress.WithoutPercentage(),
	)
	prog.EmptyColor = string(colorDark2)
	prog.Width = 40

	h := help.New()
	h.Styles.ShortKey = h.Styles.ShortKey.Foreground(colorFrost1)
	h.Styles.ShortDesc = h.Styles.ShortDesc.Foreground(colorLight2)

	return &Model{
		machine:       machine,
		scroll:        scroll.New(opts.Scroll),
		keys:          input.DefaultKeyMap(),
		help:          h,
		progress:      prog,
		log:           opts.Logger,
		frameInterval: time.Second / time.Duration(fps),
		width:         80,
		height:        24,
	}
}

// Init запускает цикл кадров
func (m *Model) Init() tea.Cmd {
	return m.nextFrame()
}

// Update обрабатывает сообщения
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = max(10, min(60, msg.Width-30))
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m, m.apply(m.keys.Route(msg))

	case tea.MouseMsg:
		m.wheel += input.Wheel(msg)
		return m, nil

	case frameMsg:
		if err := m.machine.Frame(); err != nil {
			m.err = err
			return m, tea.Quit
		}
		m.scroll.Update(m.wheel, m.machine.Snapshot().Count, m.viewport())
		m.wheel = 0
		m.countFrame(time.Time(msg))
		return m, m.nextFrame()
	}

	return m, nil
}

// apply передает команду автомату
func (m *Model) apply(cmd input.Command) tea.Cmd {
	if cmd != input.None {
		m.log.Debug().Stringer("command", cmd).Msg("Команда")
	}

	switch cmd {
	case input.SeekForward:
		m.machine.SeekForward()
	case input.SeekBackward:
		m.machine.SeekBackward()
	case input.SeekStart:
		m.machine.SeekStart()
	case input.SeekEnd:
		m.machine.SeekEnd()
	case input.NextTrack:
		m.machine.Next()
	case input.PrevTrack:
		m.machine.Prev()
	case input.TogglePause:
		m.machine.TogglePause()
	case input.ToggleShuffle:
		m.machine.ToggleShuffle()
	case input.Quit:
		m.quitting = true
		return tea.Quit
	}
	return nil
}

func (m *Model) nextFrame() tea.Cmd {
	return tea.Tick(m.frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// countFrame считает кадры в секунду
func (m *Model) countFrame(now time.Time) {
	if m.fpsStarted.IsZero() {
		m.fpsStarted = now
	}
	m.frames++
	if elapsed := now.Sub(m.fpsStarted); elapsed >= time.Second {
		m.fps = int(float64(m.frames) / elapsed.Seconds())
		m.frames = 0
		m.fpsStarted = now
	}
}

// listRows количество строк, доступных списку
func (m *Model) listRows() int {
	return max(1, m.height-headerHeight-footerHeight-panelBorder)
}

// viewport высота видимой области списка в мировых единицах
func (m *Model) viewport() float32 {
	return float32(m.listRows()) * m.scroll.Params.RowPitch
}

// Err возвращает фатальную ошибку, завершившую цикл
func (m *Model) Err() error {
	return m.err
}
