package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/stgibson/boggle/internal/config"
	"github.com/stgibson/boggle/internal/httpserver"
	"github.com/stgibson/boggle/internal/store"
	"github.com/stgibson/boggle/internal/words"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	setupLogging(cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	src := words.Source{File: cfg.Words.File, DSN: cfg.Words.DSN, Table: cfg.Words.Table}
	if err := words.Init(ctx, src); err != nil {
		log.Fatal().Err(err).Msg("failed to load dictionary")
	}

	mem := store.NewMemoryStore(cfg.Game.TTL)
	srv, err := httpserver.New(cfg, mem, words.Default())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build server")
	}

	log.Info().
		Str("port", cfg.Server.Port).
		Str("distribution", cfg.Board.Distribution).
		Int("words", words.Default().Len()).
		Msg("starting boggle server")
	if err := srv.Start(ctx, ":"+cfg.Server.Port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

func setupLogging(c config.LogConfig) {
	if lvl, err := zerolog.ParseLevel(c.Level); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	if c.Format == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}
