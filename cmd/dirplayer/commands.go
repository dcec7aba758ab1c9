package main

import (
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/hazadus/go-dirplayer/internal/config"
	"github.com/hazadus/go-dirplayer/internal/logger"
)

// createRootCommand создает корневую команду с настроенными подкомандами
func (app *Application) createRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "dirplayer",
		Short: "Play every mp3 file from a directory",
		Long: `A terminal music player: scans a directory for mp3 files once at startup,
shows them as a scrollable list and plays them in order or shuffled.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return app.setup()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.play(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&app.flags.configPath, "config", defaultConfigPath, "path to the YAML config file")
	flags.StringVar(&app.flags.dir, "dir", "", "directory with tracks (overrides music_dir)")
	flags.StringVar(&app.flags.logFile, "log-file", "", "log output: file path, stdout or stderr")
	flags.BoolVarP(&app.flags.verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.Flags().BoolVar(&app.flags.shuffle, "shuffle", false, "start in shuffle mode")

	// Добавляем команды, передавая в них экземпляр приложения
	rootCmd.AddCommand(app.createListCommand())

	return rootCmd
}

// setup загружает конфигурацию и настраивает журнал
func (app *Application) setup() error {
	cfg, err := config.LoadConfig(app.flags.configPath)
	if err != nil {
		return err
	}

	if app.flags.dir != "" {
		if cfg.MusicDir, err = config.ExpandHome(app.flags.dir); err != nil {
			return err
		}
	}
	if app.flags.logFile != "" {
		cfg.Log.File = app.flags.logFile
	}
	if app.flags.verbose {
		cfg.Log.Level = zerolog.DebugLevel.String()
	}

	if _, err := logger.Init(logger.Config{Output: cfg.Log.File, Level: cfg.Log.Level}); err != nil {
		return err
	}

	app.Config = cfg
	app.Log = zlog.Logger
	app.step(1, "конфигурация загружена")
	app.Log.Debug().
		Str("config", app.flags.configPath).
		Str("music_dir", cfg.MusicDir).
		Str("name_style", cfg.NameStyle).
		Int("fps", cfg.FPS).
		Msg("Параметры")

	return nil
}

// step пишет в журнал шаг загрузки
func (app *Application) step(n int, what string) {
	app.Log.Info().Str("step", what).Msgf("Loading... %d/%d", n, loadingSteps)
}
