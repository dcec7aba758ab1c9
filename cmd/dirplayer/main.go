package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"

	"github.com/hazadus/go-dirplayer/internal/config"
)

const (
	defaultConfigPath = "~/.dirplayer.yaml"
	loadingSteps      = 4
)

// Application содержит конфигурацию и журнал, общие для всех команд
type Application struct {
	Config *config.Config
	Log    zerolog.Logger

	flags rootFlags
}

// rootFlags флаги корневой команды, общие для подкоманд
type rootFlags struct {
	configPath string
	dir        string
	logFile    string
	shuffle    bool
	verbose    bool
}

func main() {
	// Файл .env необязателен
	_ = godotenv.Load()

	app := &Application{}
	rootCmd := app.createRootCommand()

	if err := rootCmd.Execute(); err != nil {
		zlog.Error().Err(err).Msg("Завершение с ошибкой")
		fmt.Fprintln(os.Stderr, "Ошибка:", err)
		os.Exit(1)
	}
}
