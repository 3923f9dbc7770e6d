package handlers

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/vmaleev/nutriplan-bot/internal/bot/keyboards"
	"github.com/vmaleev/nutriplan-bot/internal/bot/state"
	"github.com/vmaleev/nutriplan-bot/internal/domain"
	"github.com/vmaleev/nutriplan-bot/internal/logger"
)

// CommandHandler handles bot commands
type CommandHandler struct {
	api          *tgbotapi.BotAPI
	deps         Dependencies
	stateManager state.Manager
}

// NewCommandHandler creates a new command handler
func NewCommandHandler(api *tgbotapi.BotAPI, deps Dependencies, stateManager state.Manager) *CommandHandler {
	return &CommandHandler{api: api, deps: deps, stateManager: stateManager}
}

// Handle processes a command message. Any command cancels an in-progress
// wizard, so /start doubles as the universal escape hatch.
func (h *CommandHandler) Handle(ctx context.Context, message *tgbotapi.Message, user *domain.User) error {
	logger.Infof("Handling command %s from user %d", message.Command(), user.TelegramID)

	chatID := message.Chat.ID
	userID := user.TelegramID

	switch message.Command() {
	case "start", "cancel", "menu":
		return openMainMenu(h.deps, h.stateManager, h.api, chatID, userID)
	case "plan":
		h.stateManager.Clear(userID)
		return startWizard(ctx, h.deps, h.stateManager, h.api, chatID, userID)
	case "checkin":
		return openCheckIn(h.stateManager, h.api, chatID, userID)
	case "myplan":
		h.stateManager.Clear(userID)
		return sendLatestPlan(ctx, h.deps, h.api, chatID, userID)
	case "history":
		h.stateManager.Clear(userID)
		return sendHistory(ctx, h.deps, h.api, chatID, userID)
	case "help":
		h.stateManager.Clear(userID)
		return h.handleHelp(chatID)
	case "admin":
		return h.handleAdmin(ctx, chatID, userID)
	default:
		return h.handleUnknownCommand(chatID)
	}
}

func (h *CommandHandler) handleHelp(chatID int64) error {
	text := `Доступные команды:
/start - Главное меню
/plan - Собрать новый план питания
/myplan - Показать текущий план
/checkin - Записать чек-ин
/history - Последние чек-ины
/help - Показать это сообщение`

	return sendWithMenu(h.api, chatID, text)
}

func (h *CommandHandler) handleAdmin(ctx context.Context, chatID, userID int64) error {
	if !h.deps.QuotaSvc.IsAdmin(userID) {
		return sendText(h.api, chatID, "Неизвестная команда. Используйте /help для просмотра доступных команд.")
	}

	h.stateManager.Clear(userID)
	msg := tgbotapi.NewMessage(chatID, "Панель администратора:")
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📊 Статистика", keyboards.TokenAdminStats),
			tgbotapi.NewInlineKeyboardButtonData("🔄 Сброс лимитов", keyboards.TokenAdminReset),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("◀️ Главное меню", keyboards.TokenMainMenu),
		),
	)
	_, err := h.api.Send(msg)
	return err
}

func (h *CommandHandler) handleUnknownCommand(chatID int64) error {
	return sendText(h.api, chatID, "Неизвестная команда. Используйте /help для просмотра доступных команд.")
}
