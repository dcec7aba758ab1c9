package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hazadus/go-dirplayer/internal/playback"
	"github.com/hazadus/go-dirplayer/internal/utils"
)

const (
	headerHeight = 4
	footerHeight = 3
	panelBorder  = 2

	iconPaused  = "⏸"
	iconPlaying = "▶"
)

var (
	nowPlayingStyle = lipgloss.NewStyle().Bold(true).Foreground(colorLight0)
	nameStyle       = lipgloss.NewStyle().Foreground(colorLight2)
	fpsStyle        = lipgloss.NewStyle().Foreground(colorGreen)
	modeStyle       = lipgloss.NewStyle().Foreground(colorLight2)
	timeStyle       = lipgloss.NewStyle().Foreground(colorLight0)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDark3).
			Background(colorDark0)

	rowStyle = lipgloss.NewStyle().
			Foreground(colorLight0).
			Background(colorDark2).
			PaddingLeft(1)

	currentRowStyle = lipgloss.NewStyle().
			Foreground(colorDark0).
			Background(colorFrost0).
			Bold(true).
			PaddingLeft(1)

	emptyStyle = lipgloss.NewStyle().
			Foreground(colorLight2).
			Background(colorDark0).
			Italic(true).
			PaddingLeft(1)

	screenStyle = lipgloss.NewStyle().Background(colorDark1)
)

// View отображает модель. Отрисовка только читает состояние автомата и прокрутки.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	status := m.machine.Snapshot()
	panelWidth := max(20, m.width-4)

	sections := []string{
		m.headerView(status),
		panelStyle.Width(panelWidth).Render(m.listView(status, panelWidth)),
		m.progressView(status),
		"",
		m.help.View(m.keys),
	}
	return screenStyle.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m *Model) headerView(status playback.Status) string {
	nowPlaying := nowPlayingStyle.Render(fmt.Sprintf("NOW PLAYING SONG ID: %d/%d", displayIndex(status), status.Count))
	fps := fpsStyle.Render(fmt.Sprintf("FPS: %d", m.fps))

	gap := max(1, m.width-lipgloss.Width(nowPlaying)-lipgloss.Width(fps))
	first := nowPlaying + strings.Repeat(" ", gap) + fps

	name := nameStyle.Render("SONG NAME: " + utils.TruncateString(trackTitle(status), max(10, m.width-12)))

	mode := "ORDER"
	if status.Shuffled {
		mode = "SHUFFLE"
	}
	icon := iconPlaying
	if status.Paused {
		icon = iconPaused
	}
	modeLine := modeStyle.Render(fmt.Sprintf("%s  %s  %s", icon, mode, status.State))

	return lipgloss.JoinVertical(lipgloss.Left, first, name, modeLine, "")
}

// listView отрисовывает только строки, попавшие в видимую область
func (m *Model) listView(status playback.Status, width int) string {
	rows := m.listRows()
	lines := make([]string, 0, rows)

	if status.Count == 0 {
		lines = append(lines, emptyStyle.Width(width).Render("Треки не найдены"))
	} else {
		first, last := m.scroll.Range(status.Count, m.viewport())
		for i := first; i < last; i++ {
			lines = append(lines, m.rowView(i, status, width))
		}
	}

	blank := lipgloss.NewStyle().Background(colorDark0).Width(width).Render("")
	for len(lines) < rows {
		lines = append(lines, blank)
	}
	return strings.Join(lines, "\n")
}

func (m *Model) rowView(i int, status playback.Status, width int) string {
	track, _ := m.machine.Track(i)
	text := utils.TruncateString(fmt.Sprintf("%d: %s", i+1, track.Name), max(1, width-2))

	style := rowStyle
	if i == status.Index {
		style = currentRowStyle
	}
	return style.Width(width).Render(text)
}

func (m *Model) progressView(status playback.Status) string {
	elapsed := timeStyle.Render(utils.FormatClock(status.Elapsed))
	total := timeStyle.Render(utils.FormatClock(status.Total))
	bar := m.progress.ViewAs(status.Progress())

	line := lipgloss.JoinHorizontal(lipgloss.Center, elapsed, " ", bar, " ", total)
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, line)
}

// displayIndex номер трека для отображения, начиная с 1
func displayIndex(status playback.Status) int {
	if status.Count == 0 {
		return 0
	}
	return status.Index + 1
}

// trackTitle имя трека, дополненное тегами при наличии
func trackTitle(status playback.Status) string {
	track := status.Track
	if track.Artist != "" && track.Title != "" {
		return fmt.Sprintf("%s (%s - %s)", track.Name, track.Artist, track.Title)
	}
	return track.Name
}
