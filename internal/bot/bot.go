package bot

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/vmaleev/nutriplan-bot/internal/bot/handlers"
	"github.com/vmaleev/nutriplan-bot/internal/bot/state"
	"github.com/vmaleev/nutriplan-bot/internal/logger"
)

type Bot struct {
	api           *tgbotapi.BotAPI
	updateHandler *handlers.UpdateHandler
}

func NewBot(token string, deps handlers.Dependencies, stateManager state.Manager) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}

	logger.Info("Bot authorized", "username", api.Self.UserName)

	return &Bot{
		api:           api,
		updateHandler: handlers.NewUpdateHandler(api, deps, stateManager),
	}, nil
}

// Start polls for updates until the context is cancelled. Updates are
// handled concurrently; the per-user session lock inside the update
// handler keeps a single user's events sequential.
func (b *Bot) Start(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)
	logger.Info("Bot is now listening for updates")

	for {
		select {
		case <-ctx.Done():
			logger.Info("Bot is shutting down")
			b.api.StopReceivingUpdates()
			return ctx.Err()
		case update := <-updates:
			go b.handleUpdate(ctx, update)
		}
	}
}

func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Recovered from panic while processing update", "panic", r)
		}
	}()

	if err := b.updateHandler.Handle(ctx, update); err != nil {
		logger.Error("Error handling update", "error", err)
	}
}
