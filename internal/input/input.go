// Package input сопоставляет нажатия клавиш командам управления воспроизведением
package input

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Command команда управления
type Command int

// Команды управления
const (
	None Command = iota
	SeekForward
	SeekBackward
	SeekStart
	SeekEnd
	NextTrack
	PrevTrack
	TogglePause
	ToggleShuffle
	Quit
)

func (c Command) String() string {
	switch c {
	case SeekForward:
		return "seek-forward"
	case SeekBackward:
		return "seek-backward"
	case SeekStart:
		return "seek-start"
	case SeekEnd:
		return "seek-end"
	case NextTrack:
		return "next"
	case PrevTrack:
		return "prev"
	case TogglePause:
		return "pause"
	case ToggleShuffle:
		return "shuffle"
	case Quit:
		return "quit"
	default:
		return "none"
	}
}

// KeyMap привязки клавиш. Ctrl меняет смысл стрелок с перемотки на переключение треков.
type KeyMap struct {
	SeekForward   key.Binding
	SeekBackward  key.Binding
	SeekStart     key.Binding
	SeekEnd       key.Binding
	NextTrack     key.Binding
	PrevTrack     key.Binding
	TogglePause   key.Binding
	ToggleShuffle key.Binding
	Quit          key.Binding
}

// DefaultKeyMap привязки по умолчанию
func DefaultKeyMap() KeyMap {
	return KeyMap{
		SeekForward: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "+5с"),
		),
		SeekBackward: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "-5с"),
		),
		SeekStart: key.NewBinding(
			key.WithKeys("ctrl+down", "home"),
			key.WithHelp("ctrl+↓", "в начало"),
		),
		SeekEnd: key.NewBinding(
			key.WithKeys("ctrl+up", "end"),
			key.WithHelp("ctrl+↑", "в конец"),
		),
		NextTrack: key.NewBinding(
			key.WithKeys("ctrl+right", "n"),
			key.WithHelp("ctrl+→", "следующий"),
		),
		PrevTrack: key.NewBinding(
			key.WithKeys("ctrl+left", "p"),
			key.WithHelp("ctrl+←", "предыдущий"),
		),
		TogglePause: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("пробел", "пауза"),
		),
		ToggleShuffle: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "перемешать"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "выход"),
		),
	}
}

// Route возвращает команду для нажатия. Состояния между вызовами нет.
func (k KeyMap) Route(msg tea.KeyMsg) Command {
	switch {
	case key.Matches(msg, k.NextTrack):
		return NextTrack
	case key.Matches(msg, k.PrevTrack):
		return PrevTrack
	case key.Matches(msg, k.SeekEnd):
		return SeekEnd
	case key.Matches(msg, k.SeekStart):
		return SeekStart
	case key.Matches(msg, k.SeekForward):
		return SeekForward
	case key.Matches(msg, k.SeekBackward):
		return SeekBackward
	case key.Matches(msg, k.TogglePause):
		return TogglePause
	case key.Matches(msg, k.ToggleShuffle):
		return ToggleShuffle
	case key.Matches(msg, k.Quit):
		return Quit
	default:
		return None
	}
}

// ShortHelp реализует help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.TogglePause, k.SeekBackward, k.SeekForward, k.NextTrack, k.ToggleShuffle, k.Quit}
}

// FullHelp реализует help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.TogglePause, k.ToggleShuffle, k.Quit},
		{k.SeekBackward, k.SeekForward, k.SeekStart, k.SeekEnd},
		{k.PrevTrack, k.NextTrack},
	}
}

// Wheel возвращает смещение колеса мыши: +1 вверх, -1 вниз, 0 для прочих событий
func Wheel(msg tea.MouseMsg) float32 {
	if msg.Action != tea.MouseActionPress {
		return 0
	}
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		return 1
	case tea.MouseButtonWheelDown:
		return -1
	default:
		return 0
	}
}
