package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle-engine/internal/cli"
	"github.com/robalobadob/wordle-engine/internal/config"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	if err := cli.New(cfg).Execute(context.Background()); err != nil {
		log.Error().Err(err).Msg("wordle")
		os.Exit(1)
	}
}
