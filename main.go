package main

import (
	"log/slog"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/kova98/karmakaze/commands"
	"github.com/kova98/karmakaze/config"
)

func main() {
	config.LoadConfig()

	opts := slog.HandlerOptions{Level: config.Config.LogLevel}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &opts))
	slog.SetDefault(logger)

	if err := commands.Execute(logger); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(commands.ExitCode(err))
	}
}
