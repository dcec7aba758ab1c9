package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/cockroachdb/errors"

	"github.com/hazadus/go-dirplayer/internal/playback"
)

// App представляет основное TUI приложение
type App struct {
	machine *playback.Machine
	opts    Options
}

// NewApp создает новый экземпляр TUI приложения
func NewApp(machine *playback.Machine, opts Options) *App {
	return &App{
		machine: machine,
		opts:    opts,
	}
}

// Run запускает TUI приложение и возвращает фатальную ошибку цикла, если она была
func (tuiApp *App) Run() error {
	model := NewModel(tuiApp.machine, tuiApp.opts)

	// Колесо мыши нужно для прокрутки списка
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())

	_, err := p.Run()

	// Освобождаем поток после завершения программы
	if closeErr := tuiApp.machine.Close(); closeErr != nil {
		tuiApp.opts.Logger.Warn().Err(closeErr).Msg("Ошибка освобождения потока")
	}

	if err != nil {
		return errors.Wrap(err, "ошибка интерфейса")
	}
	return model.Err()
}
