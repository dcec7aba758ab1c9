package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hazadus/go-dirplayer/internal/metadata"
	"github.com/hazadus/go-dirplayer/internal/playlist"
	"github.com/hazadus/go-dirplayer/internal/utils"
)

// createListCommand создает команду list с привязкой к экземпляру приложения
func (app *Application) createListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List tracks found in the music directory",
		Long:  `Scan the music directory the same way the player does and print the tracks.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.listTracks(cmd.OutOrStdout())
		},
	}
}

func (app *Application) listTracks(out io.Writer) error {
	tracks, err := playlist.Load(app.Config.MusicDir, playlist.OptionsFromConfig(app.Config, app.Log))
	if err != nil {
		return err
	}

	if tracks.Len() == 0 {
		fmt.Fprintf(out, "📂 Треки не найдены в %s. Проверьте music_dir или флаг --dir.\n", tracks.Dir)
		return nil
	}

	fmt.Fprintf(out, "📚 Найдено треков: %d\n\n", tracks.Len())

	// Выводим заголовок таблицы
	fmt.Fprintf(out, "%-4s %-40s %-24s %-24s %-12s %-10s\n",
		"ID", "Название", "Исполнитель", "Заголовок", "Длительность", "Размер")
	fmt.Fprintln(out, strings.Repeat("-", 120))

	for i, track := range tracks.Tracks() {
		duration, size := "N/A", "N/A"
		info, err := metadata.Stat(track.Path)
		if err != nil {
			app.Log.Debug().Err(err).Str("path", track.Path).Msg("Не удалось определить длительность")
		}
		if info != nil {
			size = utils.FormatFileSize(info.Size)
			if info.Duration > 0 {
				duration = utils.FormatClock(info.Duration)
			}
		}

		fmt.Fprintf(out, "%-4d %-40s %-24s %-24s %-12s %-10s\n",
			i+1,
			utils.TruncateString(track.Name, 38),
			utils.TruncateString(track.Artist, 22),
			utils.TruncateString(track.Title, 22),
			duration,
			size)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "💡 Запустите 'dirplayer' для воспроизведения")
	return nil
}
