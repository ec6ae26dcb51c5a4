package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"

	"github.com/censodigital/censo_registro_bot/internal/bot"
	"github.com/censodigital/censo_registro_bot/internal/config"
	"github.com/censodigital/censo_registro_bot/internal/files"
	"github.com/censodigital/censo_registro_bot/internal/session"
	"github.com/censodigital/censo_registro_bot/internal/sheets"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("error loading config")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	botAPI, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		logger.Fatal().Err(err).Msg("error creating telegram bot")
	}

	writer, err := sheets.NewWriter(ctx, cfg.CredentialsFile, cfg.SpreadsheetID, cfg.SheetRange)
	if err != nil {
		logger.Fatal().Err(err).Msg("error creating sheets writer")
	}

	fileService, err := files.NewFileService(botAPI, cfg.DocDir)
	if err != nil {
		logger.Fatal().Err(err).Msg("error creating file service")
	}

	store := session.NewStore()

	botService := bot.New(botAPI, store, writer, fileService, logger)

	logger.Info().Str("username", botAPI.Self.UserName).Msg("bot started")

	if err := botService.Start(ctx); err != nil {
		logger.Fatal().Err(err).Msg("bot stopped with error")
	}

	logger.Info().Msg("bot stopped")
}
