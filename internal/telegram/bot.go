// Package telegram exposes the interpreter over a Telegram bot. Each
// chat gets its own session, so collections are not shared across users.
package telegram

import (
	"context"
	"fmt"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"fridgesavvy/internal/app"
	"fridgesavvy/internal/config"
	"fridgesavvy/internal/metrics"
)

// Bot wraps the Telegram API and the per-chat interpreter sessions.
type Bot struct {
	api      *tgbotapi.BotAPI
	cfg      *config.Config
	store    *metrics.Store
	sessions map[int64]*app.App
}

// NewBot initializes the Telegram bot using the token from cfg.
func NewBot(cfg *config.Config, store *metrics.Store) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(cfg.TelegramBotToken)
	if err != nil {
		return nil, fmt.Errorf("failed to init telegram api: %w", err)
	}

	log.Printf("Authorized on account %s", api.Self.UserName)

	return &Bot{
		api:      api,
		cfg:      cfg,
		store:    store,
		sessions: make(map[int64]*app.App),
	}, nil
}

// Run polls for updates until ctx is cancelled. Messages are handled
// sequentially, keeping session mutation single-threaded.
func (b *Bot) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30
	updates := b.api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			if update.Message == nil {
				continue
			}
			b.processMessage(update.Message)
		}
	}
}

func (b *Bot) processMessage(msg *tgbotapi.Message) {
	if !b.allowed(msg.From.ID) {
		log.Printf("Unauthorized access attempt from UserID: %d (@%s)", msg.From.ID, msg.From.UserName)
		return
	}

	session, ok := b.sessions[msg.Chat.ID]
	if !ok {
		session = app.New(b.cfg, b.store, nil)
		b.sessions[msg.Chat.ID] = session
	}

	resp, cont := session.HandleLine(msg.Text)
	if !cont {
		// 'exit' ends this chat's session; the next message starts fresh.
		delete(b.sessions, msg.Chat.ID)
	}

	reply := tgbotapi.NewMessage(msg.Chat.ID, resp)
	if _, err := b.api.Send(reply); err != nil {
		log.Printf("Failed to send reply to chat %d: %v", msg.Chat.ID, err)
	}
}

// allowed reports whether the user is on the allow-list. An empty list
// denies everyone, so the bot is closed by default.
func (b *Bot) allowed(userID int64) bool {
	for _, id := range b.cfg.TelegramAllowedUserIDs {
		if userID == id {
			return true
		}
	}
	return false
}
