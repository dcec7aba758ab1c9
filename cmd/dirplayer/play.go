package main

import (
	"github.com/spf13/cobra"

	"github.com/hazadus/go-dirplayer/internal/audio"
	"github.com/hazadus/go-dirplayer/internal/playback"
	"github.com/hazadus/go-dirplayer/internal/playlist"
	"github.com/hazadus/go-dirplayer/internal/scroll"
	"github.com/hazadus/go-dirplayer/internal/tui"
)

// play сканирует каталог и запускает интерфейс плеера
func (app *Application) play(_ *cobra.Command) error {
	cfg := app.Config

	tracks, err := playlist.Load(cfg.MusicDir, playlist.OptionsFromConfig(cfg, app.Log))
	if err != nil {
		return err
	}
	app.step(2, "каталог просканирован")

	opener := audio.NewBeepOpener(cfg.SpeakerBuffer, app.Log)
	machine := playback.New(tracks, playback.Options{
		Opener:    opener,
		SeekStep:  cfg.SeekStep,
		Shuffle:   app.flags.shuffle,
		FullRange: cfg.Shuffle.FullRange,
		Logger:    app.Log,
	})
	app.step(3, "автомат воспроизведения готов")

	tuiApp := tui.NewApp(machine, tui.Options{
		FPS: cfg.FPS,
		Scroll: scroll.Params{
			WheelGain: cfg.Scroll.WheelGain,
			Decay:     cfg.Scroll.Decay,
			RowPitch:  cfg.Scroll.RowPitch,
		},
		Logger: app.Log,
	})
	app.step(4, "запуск интерфейса")

	return tuiApp.Run()
}
