package handlers

import (
	"context"
	"errors"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/vmaleev/nutriplan-bot/internal/bot/menus"
	"github.com/vmaleev/nutriplan-bot/internal/bot/state"
	"github.com/vmaleev/nutriplan-bot/internal/domain"
	apperrors "github.com/vmaleev/nutriplan-bot/internal/errors"
	"github.com/vmaleev/nutriplan-bot/internal/logger"
)

// TextHandler handles free-text messages
type TextHandler struct {
	api          *tgbotapi.BotAPI
	deps         Dependencies
	stateManager state.Manager
}

// NewTextHandler creates a new text handler
func NewTextHandler(api *tgbotapi.BotAPI, deps Dependencies, stateManager state.Manager) *TextHandler {
	return &TextHandler{api: api, deps: deps, stateManager: stateManager}
}

// Handle processes a text message according to the user's wizard step.
func (h *TextHandler) Handle(ctx context.Context, message *tgbotapi.Message, user *domain.User) error {
	chatID := message.Chat.ID
	userID := user.TelegramID
	text := strings.TrimSpace(message.Text)

	if isCancel(text) {
		return openMainMenu(h.deps, h.stateManager, h.api, chatID, userID)
	}

	session := h.stateManager.Get(userID)

	switch session.Step {
	case state.StepAwaitingDetails:
		return h.handleDetails(ctx, chatID, userID, session, text)
	case state.StepAwaitingCheckIn:
		return h.handleCheckIn(ctx, chatID, userID, text)
	case state.StepAwaitingAdminInput:
		return h.handleAdminInput(ctx, chatID, userID, text)
	default:
		return h.handleDefaultText(chatID)
	}
}

func isCancel(text string) bool {
	switch strings.ToLower(text) {
	case "отмена", "меню", "cancel":
		return true
	}
	return false
}

// handleDetails finishes the wizard: validate the final answer, merge it
// into the collected attributes, generate and persist the plan, stamp the
// quota. Validation failures keep the user on this step; anything after a
// successful validation clears the session: on generation failure the
// wizard must be restarted from the beginning.
func (h *TextHandler) handleDetails(ctx context.Context, chatID, userID int64, session *state.Session, text string) error {
	details, err := ParseDetails(text)
	if err != nil {
		return h.replyValidation(chatID, err)
	}

	session.Collected[state.KeyAge] = strconv.Itoa(details.Age)
	session.Collected[state.KeyHeight] = strconv.Itoa(details.Height)
	session.Collected[state.KeyWeight] = strconv.FormatFloat(details.Weight, 'f', -1, 64)
	h.stateManager.Set(userID, session)

	attrs := domain.PlanAttributes{
		Gender:   session.Collected[state.KeyGender],
		Goal:     session.Collected[state.KeyGoal],
		Activity: session.Collected[state.KeyActivity],
		Age:      details.Age,
		Height:   details.Height,
		Weight:   details.Weight,
	}

	artifact, err := h.deps.PlanSvc.Generate(ctx, userID, attrs)
	if err != nil {
		logger.Error("Plan generation failed", "user_id", userID, "error", err)
		h.stateManager.Clear(userID)
		return sendWithMenu(h.api, chatID,
			"😔 Не получилось сохранить план. Попробуйте собрать его заново чуть позже.")
	}

	h.deps.QuotaSvc.RecordSuccessfulPlan(ctx, userID)
	h.stateManager.Clear(userID)

	if err := sendText(h.api, chatID, menus.FormatPlan(artifact)); err != nil {
		return err
	}
	return menus.SendMainMenu(h.api, chatID, h.deps.QuotaSvc.IsAdmin(userID))
}

// handleCheckIn validates and persists one check-in. A failed write keeps
// the user on this step so they can retry.
func (h *TextHandler) handleCheckIn(ctx context.Context, chatID, userID int64, text string) error {
	input, err := ParseCheckIn(text)
	if err != nil {
		return h.replyValidation(chatID, err)
	}

	if err := h.deps.CheckInSvc.Record(ctx, userID, input.Weight, input.Waist, input.Wellbeing, input.Sleep); err != nil {
		logger.Error("Check-in save failed", "user_id", userID, "error", err)
		return sendText(h.api, chatID, "Не удалось сохранить чек-ин. Попробуйте еще раз.")
	}

	h.stateManager.Clear(userID)
	if err := sendText(h.api, chatID, "✅ Чек-ин сохранен."); err != nil {
		return err
	}
	return menus.SendMainMenu(h.api, chatID, h.deps.QuotaSvc.IsAdmin(userID))
}

// handleAdminInput resets one user's quota or all of them.
func (h *TextHandler) handleAdminInput(ctx context.Context, chatID, userID int64, text string) error {
	if !h.deps.QuotaSvc.IsAdmin(userID) {
		return openMainMenu(h.deps, h.stateManager, h.api, chatID, userID)
	}

	defer h.stateManager.Clear(userID)

	if strings.EqualFold(text, "all") {
		if err := h.deps.QuotaSvc.ResetAllLimits(ctx); err != nil {
			logger.Error("Failed to reset all limits", "error", err)
			return sendWithMenu(h.api, chatID, "Не удалось сбросить лимиты, попробуйте еще раз.")
		}
		return sendWithMenu(h.api, chatID, "✅ Лимиты всех пользователей сброшены.")
	}

	targetID, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return sendWithMenu(h.api, chatID, "Ожидается числовой ID пользователя или \"all\".")
	}
	if err := h.deps.QuotaSvc.ResetLimit(ctx, targetID); err != nil {
		logger.Error("Failed to reset limit", "target_id", targetID, "error", err)
		return sendWithMenu(h.api, chatID, "Не удалось сбросить лимит, попробуйте еще раз.")
	}
	return sendWithMenu(h.api, chatID, "✅ Лимит пользователя сброшен.")
}

func (h *TextHandler) replyValidation(chatID int64, err error) error {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return sendText(h.api, chatID, appErr.Message)
	}
	return sendText(h.api, chatID, "Неверный формат, попробуйте еще раз.")
}

// handleDefaultText handles text when no specific state is set
func (h *TextHandler) handleDefaultText(chatID int64) error {
	return sendText(h.api, chatID, "Пожалуйста, используйте меню для выбора действия.")
}
