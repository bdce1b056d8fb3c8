// Package main runs the FridgeSavvy Telegram bot frontend.
package main

import (
	"context"
	"errors"
	"log"
	"os/signal"
	"syscall"

	"fridgesavvy/internal/config"
	"fridgesavvy/internal/database"
	"fridgesavvy/internal/metrics"
	"fridgesavvy/internal/telegram"
)

func main() {
	cfg, err := config.NewFromEnv()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if cfg.TelegramBotToken == "" {
		log.Fatal("TELEGRAM_BOT_TOKEN is required for the bot frontend")
	}

	db, err := database.Open(cfg.MetricsDB)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	bot, err := telegram.NewBot(cfg, metrics.NewStore(db.SQL))
	if err != nil {
		log.Fatalf("Failed to initialize Telegram Bot: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Println("Bot polling for updates...")
	if err := bot.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("Bot stopped: %v", err)
	}
	log.Println("Bot exiting")
}
