package handlers

import (
	"context"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/vmaleev/nutriplan-bot/internal/bot/keyboards"
	"github.com/vmaleev/nutriplan-bot/internal/bot/menus"
	"github.com/vmaleev/nutriplan-bot/internal/bot/state"
	"github.com/vmaleev/nutriplan-bot/internal/domain"
)

// Each wizard choice category maps to the step that presents it. A choice
// arriving in any other step comes from a stale keyboard and is ignored.
var choiceSteps = map[string]state.Step{
	"gender":   state.StepGender,
	"goal":     state.StepGoal,
	"activity": state.StepActivity,
}

var choiceValues = map[string]map[string]bool{
	"gender":   {"male": true, "female": true},
	"goal":     {"loss": true, "maintain": true, "mass": true},
	"activity": {"low": true, "medium": true, "high": true},
}

// CallbackHandler handles callback query messages
type CallbackHandler struct {
	api          *tgbotapi.BotAPI
	deps         Dependencies
	stateManager state.Manager
}

// NewCallbackHandler creates a new callback handler
func NewCallbackHandler(api *tgbotapi.BotAPI, deps Dependencies, stateManager state.Manager) *CallbackHandler {
	return &CallbackHandler{api: api, deps: deps, stateManager: stateManager}
}

// Handle processes a callback query
func (h *CallbackHandler) Handle(ctx context.Context, query *tgbotapi.CallbackQuery, user *domain.User) error {
	// Answer the callback query first
	callback := tgbotapi.NewCallback(query.ID, "")
	if _, err := h.api.Request(callback); err != nil {
		return err
	}

	chatID := query.Message.Chat.ID
	userID := user.TelegramID

	switch query.Data {
	case keyboards.TokenMainMenu:
		return openMainMenu(h.deps, h.stateManager, h.api, chatID, userID)
	case keyboards.TokenNewPlan:
		h.stateManager.Clear(userID)
		return startWizard(ctx, h.deps, h.stateManager, h.api, chatID, userID)
	case keyboards.TokenNewCheckIn:
		return openCheckIn(h.stateManager, h.api, chatID, userID)
	case keyboards.TokenMyPlan:
		h.stateManager.Clear(userID)
		return sendLatestPlan(ctx, h.deps, h.api, chatID, userID)
	case keyboards.TokenHistory:
		h.stateManager.Clear(userID)
		return sendHistory(ctx, h.deps, h.api, chatID, userID)
	case keyboards.TokenHelp:
		h.stateManager.Clear(userID)
		return menus.SendHelp(h.api, chatID)
	case keyboards.TokenAdminStats:
		if !h.deps.QuotaSvc.IsAdmin(userID) {
			return h.handleUnknownToken(chatID, userID)
		}
		return sendStats(ctx, h.deps, h.api, chatID)
	case keyboards.TokenAdminReset:
		if !h.deps.QuotaSvc.IsAdmin(userID) {
			return h.handleUnknownToken(chatID, userID)
		}
		return openAdminReset(h.stateManager, h.api, chatID, userID)
	case keyboards.TokenBack:
		return h.handleBack(chatID, userID)
	}

	if category, value, ok := strings.Cut(query.Data, "_"); ok {
		if _, known := choiceSteps[category]; known {
			return h.handleChoice(chatID, userID, category, value)
		}
	}

	return h.handleUnknownToken(chatID, userID)
}

// handleChoice stores a wizard answer and advances one step forward.
func (h *CallbackHandler) handleChoice(chatID, userID int64, category, value string) error {
	session := h.stateManager.Get(userID)
	if session.Step != choiceSteps[category] {
		// Stale keyboard from an earlier message.
		return h.handleUnknownToken(chatID, userID)
	}
	if !choiceValues[category][value] {
		return h.handleUnknownToken(chatID, userID)
	}

	session.Collected[category] = value

	switch session.Step {
	case state.StepGender:
		session.Step = state.StepGoal
		h.stateManager.Set(userID, session)
		return menus.SendGoalStep(h.api, chatID)
	case state.StepGoal:
		session.Step = state.StepActivity
		h.stateManager.Set(userID, session)
		return menus.SendActivityStep(h.api, chatID)
	default: // state.StepActivity
		session.Step = state.StepAwaitingDetails
		h.stateManager.Set(userID, session)
		return menus.SendDetailsPrompt(h.api, chatID)
	}
}

// handleBack moves exactly one step backward. Collected answers are kept,
// so correcting an earlier choice does not force redoing later ones.
func (h *CallbackHandler) handleBack(chatID, userID int64) error {
	session := h.stateManager.Get(userID)

	switch session.Step {
	case state.StepGoal:
		session.Step = state.StepGender
		h.stateManager.Set(userID, session)
		return menus.SendGenderStep(h.api, chatID)
	case state.StepActivity:
		session.Step = state.StepGoal
		h.stateManager.Set(userID, session)
		return menus.SendGoalStep(h.api, chatID)
	default:
		return openMainMenu(h.deps, h.stateManager, h.api, chatID, userID)
	}
}

// handleUnknownToken reports generically and redisplays the menu. The
// session is left untouched.
func (h *CallbackHandler) handleUnknownToken(chatID, userID int64) error {
	if err := sendText(h.api, chatID, "Неизвестная команда."); err != nil {
		return err
	}
	return menus.SendMainMenu(h.api, chatID, h.deps.QuotaSvc.IsAdmin(userID))
}
